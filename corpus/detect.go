package corpus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// filetype needs at most that many bytes to recognize content.
const sniffLen = 262

func isStylesheet(name string) bool {
	return strings.HasSuffix(name, ".css")
}

// isArchiveFile checks if file has zip extension and zip content.
func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

// checkText rejects content which is recognizable binary (images, fonts,
// archives) sitting under stylesheet name.
func checkText(data []byte) error {
	kind, _ := filetype.Match(data[:min(len(data), sniffLen)])
	if kind != filetype.Unknown {
		return fmt.Errorf("binary content detected: %s", kind.MIME.Value)
	}
	return nil
}
