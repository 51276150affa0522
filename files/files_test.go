package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func expectLabels(want, got []string, t *testing.T) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("expected '%v' at %d, got '%v'", want[i], i, got[i])
		}
	}
}

func TestLabelsJSON(t *testing.T) {
	path := writeFile(t, "data.json", `[{"string": "one"}, {"string": "two words"}]`)
	labels, err := Labels(path)
	if err != nil {
		t.Fatal(err)
	}
	expectLabels([]string{"one", "two words"}, labels, t)
}

func TestLabelsYAML(t *testing.T) {
	path := writeFile(t, "data.yaml", "- string: one\n- string: \"two: words\"\n")
	labels, err := Labels(path)
	if err != nil {
		t.Fatal(err)
	}
	expectLabels([]string{"one", "two: words"}, labels, t)
}

func TestLabelsMissingFile(t *testing.T) {
	_, err := Labels(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestLabelsMalformed(t *testing.T) {
	tests := map[string]string{
		"bad.json":    `[{"string": "one"`,
		"object.json": `{"string": "one"}`,
		"number.json": `[{"string": 1}]`,
		"empty.json":  `[{"string": "one"}, {}]`,
		"bad.yaml":    "string: [",
	}
	for name, content := range tests {
		_, err := Labels(writeFile(t, name, content))
		if !errors.Is(err, ErrMalformedData) {
			t.Errorf("%s: expected ErrMalformedData, got %v", name, err)
		}
	}
}

func TestBundledData(t *testing.T) {
	labels, err := Labels("../data/bingo_data.json")
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) < 25 {
		t.Fatalf("bundled data has only %d labels", len(labels))
	}
}
