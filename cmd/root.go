// Package cmd implements the native-components CLI: a widget gallery TUI
// plus helper subcommands for themes and configuration.
package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/federicobaldini/native-components/internal/showcase"
	"github.com/federicobaldini/native-components/internal/ui"
	"github.com/federicobaldini/native-components/pkg/components"
	"github.com/federicobaldini/native-components/pkg/logger"
	"github.com/federicobaldini/native-components/pkg/settings"
)

var (
	themeName      string
	configFile     string
	noColor        bool
	debug          bool
	openAtStart    bool
	modalTitle     string
	modalBody      string
	tooltipText    string
	guardCondition string
	renderSnapshot bool
	snapshotHover  bool
	runWidth       int
	runHeight      int

	rootCtx context.Context
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "A terminal widget gallery: confirm modal, hover tooltip, guarded links",
	Long: `native-components showcases a small widget library for Bubble Tea
programs: a confirmation modal driven by an "open" attribute, a hover
tooltip driven by a "text" attribute, and a navigation guard that asks
before links open.`,
	Example: "\n  native-components\n  native-components --open --title \"Unsaved changes\"\n  native-components --condition 'link.external == true'\n  native-components --snapshot --width 80 --height 24\n",
	Args:    cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		var level int8 = 0
		if debug {
			level = -1
		}
		lgr := logger.Get(level)
		lgr = logger.WithValues(lgr, "command", cmd.Name())
		rootCtx = logger.WithLogger(context.Background(), lgr)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := logger.FromContext(rootCtx)

		if err := applyThemeSelection(cmd.Flags(), themeName, configFile); err != nil {
			return err
		}

		var cond *showcase.GuardCondition
		if strings.TrimSpace(guardCondition) != "" {
			var err error
			cond, err = showcase.CompileGuardCondition(guardCondition)
			if err != nil {
				return err
			}
			for _, f := range cond.UnknownFields {
				log.Info("guard condition references unknown link field", "field", f)
			}
		}

		w, h := runWidth, runHeight
		if w <= 0 || h <= 0 {
			dw, dh := components.DetectTerminalSize()
			if w <= 0 {
				w = dw
			}
			if h <= 0 {
				h = dh
			}
		}

		cfg := showcase.Config{
			ModalTitle:  modalTitle,
			ModalBody:   modalBody,
			TooltipText: tooltipText,
			OpenAtStart: openAtStart,
			NoColor:     noColor,
			Width:       w,
			Height:      h,
			Log:         *log,
		}

		if renderSnapshot {
			fmt.Fprintln(cmd.OutOrStdout(), showcase.Snapshot(cfg, cond, snapshotHover))
			return nil
		}

		m := showcase.NewModel(cfg, cond)
		prog := tea.NewProgram(m, tea.WithContext(rootCtx))
		_, err := prog.Run()
		return err
	},
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available theme presets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		merged, err := loadMergedThemes(resolveConfigPath(configFile))
		if err != nil {
			return err
		}
		names := make([]string, 0, len(merged))
		for name := range merged {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the merged theme configuration as YAML",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := renderMergedConfig(resolveConfigPath(configFile))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		v := settings.VersionInformation
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n",
			settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime)
	},
}

// applyThemeSelection installs the requested theme, preferring config-file
// themes over built-in presets. An unknown name is an error listing what
// exists.
func applyThemeSelection(flags *pflag.FlagSet, name, cfgPath string) error {
	path := resolveConfigPath(cfgPath)
	merged, err := loadMergedThemes(path)
	if err != nil {
		return err
	}
	if name == "" {
		if flags.Changed("theme") {
			return fmt.Errorf("empty theme name")
		}
		if name, err = configuredDefaultTheme(path); err != nil {
			return err
		}
		if name == "" {
			return nil
		}
	}
	th, ok := merged[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		names := make([]string, 0, len(merged))
		for n := range merged {
			names = append(names, n)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(names, ", "))
	}
	ui.SetTheme(th)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "theme name (built-in presets or themes from --config-file)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", "", "path to a YAML or TOML theme config file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose structured logging to stderr")

	rootCmd.Flags().BoolVar(&openAtStart, "open", false, "start with the confirm modal open")
	rootCmd.Flags().StringVar(&modalTitle, "title", "", "modal title slot content")
	rootCmd.Flags().StringVar(&modalBody, "body", "", "modal body slot content")
	rootCmd.Flags().StringVar(&tooltipText, "text", "", "tooltip text attribute")
	rootCmd.Flags().StringVar(&guardCondition, "condition", "", "guard condition expression over the \"link\" variable, e.g. 'link.external == true'")
	rootCmd.Flags().BoolVar(&renderSnapshot, "snapshot", false, "render a single frame and exit (dev/test); honors --width/--height")
	rootCmd.Flags().BoolVar(&snapshotHover, "hover", false, "with --snapshot, render the tooltip hovered")
	rootCmd.Flags().IntVar(&runWidth, "width", 0, "output width in columns (0 = auto-detect)")
	rootCmd.Flags().IntVar(&runHeight, "height", 0, "output height in rows (0 = auto-detect)")

	rootCmd.AddCommand(themesCmd, configCmd, versionCmd)
}
