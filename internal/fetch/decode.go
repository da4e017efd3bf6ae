package fetch

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// decodeBody converts a response body to UTF-8 text. It trusts the declared
// or sniffed charset first, then walks the encodings the site has historically
// served, and finally strips invalid sequences rather than failing: the
// heuristics downstream would rather see slightly mangled text than nothing.
func decodeBody(body []byte, contentType string) string {
	if r, err := charset.NewReader(bytes.NewReader(body), contentType); err == nil {
		if out, err := io.ReadAll(r); err == nil && utf8.Valid(out) {
			return string(out)
		}
	}
	if utf8.Valid(body) {
		return string(body)
	}
	for _, enc := range []encoding.Encoding{charmap.ISO8859_1, charmap.Windows1252} {
		if out, err := enc.NewDecoder().Bytes(body); err == nil && utf8.Valid(out) {
			return string(out)
		}
	}
	return strings.ToValidUTF8(string(body), "")
}
