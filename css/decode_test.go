package css

import (
	"bytes"
	"testing"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"plain", []byte("p { color: red; }"), "p { color: red; }"},
		{"utf8 bom", append([]byte{0xEF, 0xBB, 0xBF}, []byte("a {}")...), "a {}"},
		{"invalid bytes", []byte("p { content: \"\xff\xfe\"; }"), "p { content: \"��\"; }"},
		{"utf16 bom is not honored", []byte{0xFF, 0xFE, 'a', 0}, "\uFFFD\uFFFDa\x00"},
		{"multibyte", []byte("p::before { content: \"→\"; }"), "p::before { content: \"→\"; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText(bytes.NewReader(tt.input))
			if err != nil {
				t.Fatalf("DecodeText() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("DecodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}
