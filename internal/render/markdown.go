// Package render writes the Markdown API reference for a catalog.
package render

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/usestring/capture-apidoc/internal/catalog"
	"github.com/usestring/capture-apidoc/pkg/types"
)

// NoneMarker stands in for an absent payload or response.
const NoneMarker = "None."

// Options controls document rendering.
type Options struct {
	Title       string // Top-level heading
	MaxExamples int    // Examples per endpoint, <= 0 uses types.DefaultMaxExamples
	Limits      Limits // Body trimming, zero value prints bodies in full
}

// Renderer renders catalogs as Markdown.
type Renderer struct {
	opts Options
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	if opts.Title == "" {
		opts.Title = "API Documentation"
	}
	if opts.MaxExamples <= 0 {
		opts.MaxExamples = types.DefaultMaxExamples
	}
	return &Renderer{opts: opts}
}

// Render writes the whole document for cat to w.
func (r *Renderer) Render(w io.Writer, cat *catalog.Catalog) error {
	_, err := io.WriteString(w, r.Document(cat))
	return err
}

// Document returns the whole document for cat.
func (r *Renderer) Document(cat *catalog.Catalog) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.opts.Title)
	b.WriteString("*Generated automatically from intercepted requests.*\n\n")
	b.WriteString("*HTTP methods are inferred, not recorded: an endpoint is listed as POST when any captured request sent a payload, otherwise as GET.*\n\n")

	if cat.HasAssets() {
		r.writeAssets(&b, cat.Assets())
	}
	r.writeEndpoints(&b, cat.Endpoints(r.opts.MaxExamples))

	return b.String()
}

func (r *Renderer) writeAssets(b *strings.Builder, categories []types.AssetCategory) {
	b.WriteString("## Static Resources (Assets)\n\n")
	b.WriteString("Grouped list of requested static files.\n\n")

	for _, category := range categories {
		fmt.Fprintf(b, "### %s\n\n", category.Label)
		for _, dir := range category.Directories {
			fmt.Fprintf(b, "#### Path: `%s`\n\n", dir.Dir)
			b.WriteString("<details>\n")
			fmt.Fprintf(b, "<summary>Click to view the list (%d files)</summary>\n\n", len(dir.Files))
			for _, f := range dir.Files {
				fmt.Fprintf(b, "- `%s`\n", f)
			}
			b.WriteString("\n</details>\n\n")
		}
	}
	b.WriteString("---\n\n")
}

func (r *Renderer) writeEndpoints(b *strings.Builder, endpoints []types.Endpoint) {
	b.WriteString("## API Endpoints\n\n")
	if len(endpoints) == 0 {
		b.WriteString("No API requests found to document.\n")
		return
	}

	for _, ep := range endpoints {
		fmt.Fprintf(b, "### ` %s %s `\n\n", ep.Method, ep.Path)
		if ep.AuthRequired {
			b.WriteString("*Captured requests to this endpoint carried an Authorization header.*\n\n")
		}

		for i, ex := range ep.Examples {
			fmt.Fprintf(b, "#### Example %d\n\n", i+1)
			fmt.Fprintf(b, "**Full request URL:**\n`%s`\n\n", DecodeURL(ex.Endpoint))
			if ex.Timestamp != "" {
				fmt.Fprintf(b, "**Captured at:** `%s`\n\n", ex.Timestamp)
			}
			b.WriteString("**Request body (Payload):**\n")
			b.WriteString(r.FormatBody(ex.Payload, "Click to view Payload"))
			b.WriteString("\n\n")
			fmt.Fprintf(b, "**Server response (Code: %s):**\n", ex.ReturnCode)
			b.WriteString(r.FormatBody(ex.Response, "Click to view Response"))
			b.WriteString("\n\n")
		}

		b.WriteString("---\n\n")
	}
}

// FormatBody renders a payload or response inside a collapsible block.
// Strings holding JSON are pretty-printed like structured values; other
// strings go into a plain block. Absent values render as NoneMarker.
func (r *Renderer) FormatBody(raw json.RawMessage, summary string) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return NoneMarker
	}

	var content, lang string
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			content = string(raw)
		} else if pretty, err := PrettyJSON([]byte(s), r.opts.Limits); err == nil {
			content, lang = pretty, "json"
		} else {
			content = r.opts.Limits.truncate(s)
		}
	} else if pretty, err := PrettyJSON(raw, r.opts.Limits); err == nil {
		content, lang = pretty, "json"
	} else {
		content = string(raw)
	}

	return fmt.Sprintf("<details>\n<summary>%s</summary>\n\n%s\n</details>", summary, fenced(lang, content))
}

// fenced wraps content in a code fence longer than any backtick run inside it.
func fenced(lang, content string) string {
	fence := "```"
	for strings.Contains(content, fence) {
		fence += "`"
	}
	return fence + lang + "\n" + content + "\n" + fence
}

// DecodeURL percent-decodes a URL for display. Each valid %XX escape is
// decoded on its own and invalid escapes are kept as written. Decoded bytes that
// do not form UTF-8 are shown as U+FFFD.
func DecodeURL(raw string) string {
	if !strings.Contains(raw, "%") {
		return raw
	}

	buf := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '%' && i+2 < len(raw) {
			if b, err := hex.DecodeString(raw[i+1 : i+3]); err == nil {
				buf = append(buf, b[0])
				i += 2
				continue
			}
		}
		buf = append(buf, raw[i])
	}
	return strings.ToValidUTF8(string(buf), "\uFFFD")
}
