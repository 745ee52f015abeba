package css

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeText reads all of r as UTF-8 text. Invalid byte sequences are
// replaced with U+FFFD, a leading UTF-8 byte order mark is dropped. Other
// encodings are not recognized. Only I/O errors are returned.
func DecodeText(r io.Reader) ([]byte, error) {
	return io.ReadAll(transform.NewReader(r, unicode.UTF8BOM.NewDecoder()))
}
