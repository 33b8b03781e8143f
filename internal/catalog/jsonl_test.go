package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestJSONL(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "records.jsonl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	return path
}

func TestReadRecords(t *testing.T) {
	path := writeTestJSONL(t, `{"name":"VisionBot","provider":"LocalLab","description":"Image analysis assistant","capabilities":"vision,ocr","tags":"offline,image"}

{"name":"CodePal","provider":"DevTools Inc","description":"Pair programming assistant","capabilities":"coding,debug","tags":"developer,code"}
`)

	recs, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("ReadRecords() len = %d, want 2", len(recs))
	}
	if recs[0].Name != "VisionBot" {
		t.Errorf("ReadRecords()[0].Name = %q, want VisionBot", recs[0].Name)
	}
	if recs[1].Capabilities != "coding,debug" {
		t.Errorf("ReadRecords()[1].Capabilities = %q, want coding,debug", recs[1].Capabilities)
	}
}

func TestReadRecords_EmptyFile(t *testing.T) {
	path := writeTestJSONL(t, "")

	recs, err := ReadRecords(path)
	if err != nil {
		t.Fatalf("ReadRecords() error = %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("ReadRecords() len = %d, want 0", len(recs))
	}
}

func TestReadRecords_MalformedLine(t *testing.T) {
	path := writeTestJSONL(t, `{"name":"ok","provider":"p","description":"d","capabilities":"c","tags":"t"}
not json
`)

	_, err := ReadRecords(path)
	if err == nil {
		t.Fatal("ReadRecords() error = nil, want parse error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("ReadRecords() error = %v, want line number 2", err)
	}
}

func TestReadRecords_MissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "nope.jsonl"))
	if err == nil {
		t.Fatal("ReadRecords() error = nil, want error for missing file")
	}
}
