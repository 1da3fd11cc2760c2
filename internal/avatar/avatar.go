// Package avatar generates default profile pictures for accounts that have
// not uploaded a photo: an SVG data URI with the user's initial on a colored
// circle. The color is a deterministic function of the name, so the same
// name always gets the same avatar.
package avatar

import (
	"fmt"
	"net/url"
	"unicode"
	"unicode/utf8"
)

// palette of background colors; the first rune of the name picks one.
var palette = [...]string{
	"#e74c3c", "#3498db", "#2ecc71", "#9b59b6", "#f39c12", "#1abc9c", "#e67e22",
}

const svgTemplate = "data:image/svg+xml," +
	"%%3Csvg xmlns='http://www.w3.org/2000/svg' width='100' height='100'%%3E" +
	"%%3Crect width='100' height='100' rx='50' fill='%s'/%%3E" +
	"%%3Ctext x='50' y='62' text-anchor='middle' fill='white' font-size='42' " +
	"font-family='system-ui'%%3E%s%%3C/text%%3E%%3C/svg%%3E"

// Default returns the generated avatar for the given display name as an SVG
// data URI. An empty name falls back to a "?" initial on the first palette
// color.
func Default(name string) string {
	initial := "?"
	color := palette[0]

	if name != "" {
		r, _ := utf8.DecodeRuneInString(name)
		initial = string(unicode.ToUpper(r))
		color = palette[int(r)%len(palette)]
	}

	return fmt.Sprintf(svgTemplate, escape(color), escape(initial))
}

// escape percent-encodes s the way encodeURIComponent does for the subset of
// characters that can appear here (a palette color or a single initial).
func escape(s string) string {
	return url.PathEscape(s)
}
