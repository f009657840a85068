package bank

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawarnekar/pyquiz/internal/problemgen"
)

func TestLoad_YAML(t *testing.T) {
	f, err := Load("testdata/basics.yaml")
	require.NoError(t, err)
	require.Len(t, f.Questions, 3)

	mc := f.Questions[0]
	assert.Equal(t, problemgen.TypeMultiple, mc.Type)
	opt, ok := mc.CorrectOption()
	require.True(t, ok)
	assert.Equal(t, "append", opt)

	fill := f.Questions[1]
	assert.Equal(t, "3", fill.Answer)
	assert.Contains(t, fill.Text, "print(7 // 2)")
	assert.True(t, fill.CaseSensitive, "missing caseSensitive means exact match")

	hex := f.Questions[2]
	assert.False(t, hex.CaseSensitive)
	assert.True(t, problemgen.CheckAnswer("1A", &hex))
}

func TestLoad_JSONTopicFallsBack(t *testing.T) {
	f, err := Load("testdata/loops.json")
	require.NoError(t, err)
	require.Len(t, f.Questions, 1)
	assert.Equal(t, problemgen.DefaultTopic, f.Questions[0].Topic)
	assert.Equal(t, problemgen.SubtopicLoops, f.Questions[0].Subtopic)
}

func TestParse_RecordTopicOverridesFile(t *testing.T) {
	doc := `{"topic": "python", "questions": [
		{"topic": "py-basics", "subtopic": "lists", "difficulty": "easy", "type": "fill", "question": "q", "answer": "1"},
		{"subtopic": "lists", "difficulty": "easy", "type": "fill", "question": "r", "answer": "2"}
	]}`
	f, err := Parse([]byte(doc), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "py-basics", f.Questions[0].Topic)
	assert.Equal(t, "python", f.Questions[1].Topic)
	assert.Equal(t, CurrentVersion, f.Version)
}

func TestParse_SchemaIssuesPointAtRecords(t *testing.T) {
	doc := `{"questions": [
		{"subtopic": "lists", "difficulty": "easy", "type": "fill", "question": "ok", "answer": "1"},
		{"subtopic": "lists", "difficulty": "extreme", "type": "fill", "question": "bad", "answer": "1"}
	]}`
	_, err := Parse([]byte(doc), FormatJSON)
	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	require.NotEmpty(t, lerr.Issues)
	for _, is := range lerr.Issues {
		assert.Equal(t, 1, is.Index, "issue %s", is)
	}
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	doc := `{"questions": [
		{"subtopic": "lists", "difficulty": "easy", "type": "fill", "question": "q", "answer": "1", "hint": "sum"}
	]}`
	_, err := Parse([]byte(doc), FormatJSON)
	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 0, lerr.Issues[0].Index)
}

func TestParse_MissingRequiredField(t *testing.T) {
	doc := "questions:\n  - subtopic: lists\n    difficulty: easy\n    type: fill\n    answer: \"1\"\n"
	_, err := Parse([]byte(doc), FormatYAML)
	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 0, lerr.Issues[0].Index)
}

func TestParse_StructuralRules(t *testing.T) {
	tests := []struct {
		name   string
		record string
	}{
		{"fill without answer", `{"subtopic": "lists", "difficulty": "easy", "type": "fill", "question": "q"}`},
		{"fill with options", `{"subtopic": "lists", "difficulty": "easy", "type": "fill", "question": "q", "answer": "1", "options": ["a", "b"], "correct": 0}`},
		{"correct out of range", `{"subtopic": "lists", "difficulty": "easy", "type": "multiple", "question": "q", "options": ["a", "b"], "correct": 2}`},
		{"duplicate options", `{"subtopic": "lists", "difficulty": "easy", "type": "multiple", "question": "q", "options": ["a", "a"], "correct": 0}`},
		{"markup in answer", `{"subtopic": "lists", "difficulty": "easy", "type": "fill", "question": "q", "answer": "<b>"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(`{"questions": [`+tt.record+`]}`), FormatJSON)
			var lerr *LoadError
			require.ErrorAs(t, err, &lerr)
			require.Len(t, lerr.Issues, 1)
			assert.Equal(t, 0, lerr.Issues[0].Index)
		})
	}
}

func TestParse_Version(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"1.0.0", true},
		{"v1.4.2", true},
		{"v2.0.0", false},
		{"one", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			doc := `{"version": "` + tt.version + `", "questions": []}`
			_, err := Parse([]byte(doc), FormatJSON)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var lerr *LoadError
			require.ErrorAs(t, err, &lerr)
			assert.Equal(t, "version", lerr.Issues[0].Field)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{"questions": [`), FormatJSON)
	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, -1, lerr.Issues[0].Index)

	_, err = Parse([]byte("questions: []\n---\nquestions: []\n"), FormatYAML)
	assert.Error(t, err)
}

func TestLoadError_Message(t *testing.T) {
	err := &LoadError{Path: "b.json", Issues: []Issue{
		{Index: 2, Field: "answer", Message: "answer is empty"},
		{Index: -1, Field: "version", Message: "bad"},
		{Index: -1, Message: "invalid JSON"},
	}}
	want := "b.json: 3 problem(s)\n  questions[2].answer: answer is empty\n  version: bad\n  file: invalid JSON"
	assert.Equal(t, want, err.Error())
}

func TestLoad_SetsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"questions": 3}`), 0o644))

	_, err := Load(path)
	var lerr *LoadError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, path, lerr.Path)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b.yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromPath("bank.toml")
	assert.Error(t, err)
	_, err = FormatFromPath("bank")
	assert.Error(t, err)
}

func TestLoadFiles_PreservesOrder(t *testing.T) {
	qs, err := LoadFiles(context.Background(), []string{"testdata/loops.json", "testdata/basics.yaml"})
	require.NoError(t, err)
	require.Len(t, qs, 4)
	assert.Equal(t, problemgen.SubtopicLoops, qs[0].Subtopic)
	assert.Equal(t, problemgen.SubtopicLists, qs[1].Subtopic)
}

func TestLoadFiles_FailsOnAnyBadFile(t *testing.T) {
	_, err := LoadFiles(context.Background(), []string{"testdata/basics.yaml", "testdata/missing.json"})
	assert.Error(t, err)
}
