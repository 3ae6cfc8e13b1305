package documents

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText converts a stored document to UTF-8. A byte order mark selects
// UTF-8 or UTF-16 and is dropped. Anything else that is not valid UTF-8 is
// read as Windows-1252, the usual encoding of text exported from office tools.
func decodeText(data []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(encoding.Nop.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("decode document: %w", err)
	}
	if utf8.Valid(out) {
		return string(out), nil
	}
	out, err = charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode document: %w", err)
	}
	return string(out), nil
}
