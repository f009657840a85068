package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/hawarnekar/pyquiz/internal/problemgen"
)

// CurrentVersion is the bank file format this build writes. Files with the
// same major version load.
const CurrentVersion = "v1.0.0"

// File is a static question bank on disk.
type File struct {
	Version   string                `json:"version" yaml:"version"`
	Topic     string                `json:"topic,omitempty" yaml:"topic,omitempty"`
	Questions []problemgen.Question `json:"questions" yaml:"questions"`
}

// Format is a bank file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want json or yaml)", s)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%s: no file extension", path)
	}
	return ParseFormat(ext)
}

// Issue is one problem found in a bank file. Index is the record index, or
// -1 for file-level problems.
type Issue struct {
	Index   int
	Field   string
	Message string
}

func (i Issue) String() string {
	var loc string
	switch {
	case i.Index >= 0 && i.Field != "":
		loc = fmt.Sprintf("questions[%d].%s", i.Index, i.Field)
	case i.Index >= 0:
		loc = fmt.Sprintf("questions[%d]", i.Index)
	case i.Field != "":
		loc = i.Field
	default:
		loc = "file"
	}
	return loc + ": " + i.Message
}

// LoadError collects every problem found in one bank file.
type LoadError struct {
	Path   string
	Issues []Issue
}

func (e *LoadError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d problem(s)", e.Path, len(e.Issues))
	for _, is := range e.Issues {
		b.WriteString("\n  ")
		b.WriteString(is.String())
	}
	return b.String()
}

// Load reads and validates one bank file.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	f, err := Parse(data, format)
	if err != nil {
		var lerr *LoadError
		if errors.As(err, &lerr) {
			lerr.Path = path
		}
		return nil, err
	}
	return f, nil
}

// Parse decodes and validates a bank document. Records are checked
// against FileSchema, then against the same structural rules generated
// questions follow. A record without a topic inherits the file's.
func Parse(data []byte, format Format) (*File, error) {
	doc, err := decodeGeneric(data, format)
	if err != nil {
		return nil, &LoadError{Issues: []Issue{{Index: -1, Message: err.Error()}}}
	}
	issues, err := validateDocument(doc)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		return nil, &LoadError{Issues: issues}
	}

	var f File
	if err := decodeStrict(data, format, &f); err != nil {
		return nil, &LoadError{Issues: []Issue{{Index: -1, Message: err.Error()}}}
	}

	if f.Version == "" {
		f.Version = CurrentVersion
	}
	v := f.Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		issues = append(issues, Issue{Index: -1, Field: "version", Message: fmt.Sprintf("%q is not a semantic version", f.Version)})
	} else if semver.Major(v) != semver.Major(CurrentVersion) {
		issues = append(issues, Issue{Index: -1, Field: "version", Message: fmt.Sprintf("%s is not compatible with %s", f.Version, CurrentVersion)})
	}

	explicitCase := caseFlags(doc)
	for i := range f.Questions {
		q := &f.Questions[i]
		if q.Topic == "" {
			q.Topic = f.Topic
		}
		if q.Topic == "" {
			q.Topic = problemgen.DefaultTopic
		}
		if i < len(explicitCase) && !explicitCase[i] {
			q.CaseSensitive = true
		}
		if err := problemgen.CheckStructure(q); err != nil {
			issues = append(issues, Issue{Index: i, Message: err.Error()})
		}
	}
	if len(issues) > 0 {
		return nil, &LoadError{Issues: issues}
	}
	return &f, nil
}

// caseFlags reports, per record, whether caseSensitive was written out.
// Static answers are exact-match unless a file says otherwise.
func caseFlags(doc any) []bool {
	root, _ := doc.(map[string]any)
	records, _ := root["questions"].([]any)
	out := make([]bool, len(records))
	for i, r := range records {
		if m, ok := r.(map[string]any); ok {
			_, out[i] = m["caseSensitive"]
		}
	}
	return out
}

// decodeGeneric decodes data into plain JSON values for schema validation.
// YAML is normalized through encoding/json so numbers and maps have the
// shapes the validator expects.
func decodeGeneric(data []byte, format Format) (any, error) {
	var doc any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return doc, nil
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("YAML is not representable as JSON: %w", err)
		}
		var normalized any
		if err := json.Unmarshal(raw, &normalized); err != nil {
			return nil, err
		}
		return normalized, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// decodeStrict decodes data into f, rejecting unknown fields and, for
// YAML, trailing documents.
func decodeStrict(data []byte, format Format, f *File) error {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(f)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil {
			return err
		}
		var extra any
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("bank must be a single YAML document")
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

// LoadFiles loads every path concurrently and returns the questions in
// path order. The first failure cancels the rest.
func LoadFiles(ctx context.Context, paths []string) ([]problemgen.Question, error) {
	files := make([]*File, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := Load(path)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []problemgen.Question
	for _, f := range files {
		out = append(out, f.Questions...)
	}
	return out, nil
}
