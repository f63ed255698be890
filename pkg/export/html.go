package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/timeutil"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// toHTML renders a standalone page. Entry content is treated as
// markdown so plain prose passes through untouched.
func toHTML(entries []*entry.Entry, opts Options) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	buf.WriteString("<meta charset=\"utf-8\">\n")
	buf.WriteString("<title>Daybook export</title>\n")
	buf.WriteString("<style>\n")
	buf.WriteString("body { font-family: sans-serif; max-width: 42em; margin: 2em auto; padding: 0 1em; }\n")
	buf.WriteString("article { border-bottom: 1px solid #ddd; padding: 1em 0; }\n")
	buf.WriteString(".mood { color: #666; }\n")
	buf.WriteString(".meta { color: #999; font-size: 0.8em; }\n")
	buf.WriteString("</style>\n</head>\n<body>\n")

	buf.WriteString("<h1>Daybook export</h1>\n")
	buf.WriteString(fmt.Sprintf("<p class=\"meta\">Exported %s · %d entries</p>\n",
		html.EscapeString(time.Now().Format(time.RFC1123)), len(entries)))

	for _, e := range entries {
		buf.WriteString("<article>\n")
		buf.WriteString(fmt.Sprintf("<h2>%s</h2>\n", html.EscapeString(timeutil.DisplayDate(e.Date))))
		if opts.IncludeMood {
			g := e.Mood.Glyph()
			buf.WriteString(fmt.Sprintf("<p class=\"mood\">%s %s</p>\n",
				html.EscapeString(g.Symbol), html.EscapeString(g.Label)))
		}
		// Neutralize '<' before conversion so inline HTML in an entry
		// shows up as visible text instead of being dropped as markup.
		safe := strings.ReplaceAll(e.Content, "<", "&lt;")
		if err := markdown.Convert([]byte(safe), &buf); err != nil {
			return nil, fmt.Errorf("export: render %s: %w", e.Date, err)
		}
		if opts.IncludeMetadata {
			buf.WriteString(fmt.Sprintf("<p class=\"meta\">Created %s · Updated %s</p>\n",
				html.EscapeString(e.Created.Time.Format(time.RFC1123)),
				html.EscapeString(e.Updated.Time.Format(time.RFC1123))))
		}
		buf.WriteString("</article>\n")
	}

	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}
