// Command generate_gallery builds the static gallery page published with
// releases: it converts README.md to HTML and embeds the snapshot frames
// found in the given directory (produced by `native-components --snapshot`)
// as terminal-styled blocks.
package main

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <dist-dir>\n", os.Args[0])
		os.Exit(1)
	}

	distDir := os.Args[1]
	indexPath := filepath.Join(distDir, "index.html")

	readmeContent, err := os.ReadFile("README.md")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading README.md: %v\n", err)
		os.Exit(1)
	}

	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse(readmeContent)

	htmlFlags := mdhtml.CommonFlags | mdhtml.HrefTargetBlank
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: htmlFlags})
	readmeHTML := markdown.Render(doc, renderer)

	snapshotsHTML := generateSnapshotsHTML(distDir)
	readmeHTML = replaceGallerySection(readmeHTML, snapshotsHTML)

	f, err := os.Create(indexPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating index.html: %v\n", err)
		os.Exit(1)
	}

	writeHeader(f)
	if _, err := f.Write(readmeHTML); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error writing README content: %v\n", err)
		os.Exit(1)
	}
	writeFooter(f)
	f.Close()

	fmt.Fprintf(os.Stderr, "Generated %s\n", indexPath)
}

// generateSnapshotsHTML embeds every *.txt snapshot frame in distDir as a
// captioned terminal block. Frame names become captions: modal-open.txt
// renders as "modal open".
func generateSnapshotsHTML(distDir string) string {
	files, err := os.ReadDir(distDir)
	if err != nil {
		return ""
	}

	var names []string
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".txt") {
			continue
		}
		names = append(names, file.Name())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(`  <div class="gallery">
    <h2>🖼 Gallery</h2>
`)
	for _, name := range names {
		frame, err := os.ReadFile(filepath.Join(distDir, name))
		if err != nil {
			continue
		}
		caption := strings.ReplaceAll(strings.TrimSuffix(name, ".txt"), "-", " ")
		sb.WriteString(fmt.Sprintf(`    <div class="frame">
      <h3>%s</h3>
      <pre class="terminal">%s</pre>
    </div>
`, html.EscapeString(caption), html.EscapeString(string(frame))))
	}
	sb.WriteString("  </div>\n")
	return sb.String()
}

func writeHeader(w io.Writer) {
	fmt.Fprint(w, `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>native-components - Terminal Widget Library</title>
  <style>
    body { font-family: system-ui, -apple-system, sans-serif; max-width: 900px; margin: 40px auto; padding: 0 20px; line-height: 1.6; color: #333; }
    h1 { color: #2563eb; border-bottom: 2px solid #2563eb; padding-bottom: 10px; }
    h2 { color: #1e40af; margin-top: 30px; }
    h3 { color: #1e3a8a; margin-top: 20px; }
    code { background: #f1f5f9; padding: 2px 6px; border-radius: 3px; font-family: Monaco, Menlo, monospace; font-size: 0.9em; }
    pre { background: #1e293b; color: #e2e8f0; padding: 16px; border-radius: 6px; overflow-x: auto; }
    pre code { background: none; color: inherit; padding: 0; }
    .gallery { background: #eff6ff; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #2563eb; }
    .gallery h2 { margin-top: 0; color: #1e40af; }
    .frame { margin: 15px 0; padding: 10px; background: white; border-radius: 4px; }
    .frame h3 { margin: 0 0 10px 0; color: #1e3a8a; font-size: 1.1em; }
    .terminal { font-family: Monaco, Menlo, monospace; font-size: 0.8em; line-height: 1.2; }
  </style>
</head>
<body>
`)
}

func writeFooter(w io.Writer) {
	fmt.Fprint(w, `</body>
</html>
`)
}

// replaceGallerySection swaps the README's Gallery section for the embedded
// snapshot frames. Without a Gallery heading the frames are appended at the
// end instead.
func replaceGallerySection(htmlContent []byte, snapshotsHTML string) []byte {
	if snapshotsHTML == "" {
		return htmlContent
	}
	page := string(htmlContent)

	galleryStart := strings.Index(page, `<h2 id="gallery">`)
	if galleryStart == -1 {
		return []byte(page + "\n" + snapshotsHTML)
	}

	nextH2 := strings.Index(page[galleryStart+17:], `<h2 id="`)
	if nextH2 == -1 {
		return []byte(page[:galleryStart] + snapshotsHTML)
	}
	nextH2 += galleryStart + 17

	return []byte(page[:galleryStart] + snapshotsHTML + page[nextH2:])
}
