package bank

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hawarnekar/pyquiz/internal/problemgen"
)

// NewFile wraps questions in a bank document at CurrentVersion.
func NewFile(topic string, qs []problemgen.Question) *File {
	return &File{Version: CurrentVersion, Topic: topic, Questions: qs}
}

// Write encodes f to w. JSON output escapes <, > and & so the text can be
// dropped into HTML without further processing.
func Write(w io.Writer, f *File, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(true)
		return enc.Encode(f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}
