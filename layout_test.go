package tableau

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	nt "tableau/entity"
)

var layoutYaml = `
columns:
  - key: id
    field: id
    width: 6
  - key: msg
    title: Message
    field: msg
    width: 40
key_field: id
table:
  overscan: 3
  threshold: 100
  infinite_loading: true
`

func TestLoadLayout(t *testing.T) {

	path := writeLayout(t, layoutYaml)

	layout, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}

	wantColumns := []nt.Column{
		{Key: "id", Field: "id", Width: 6},
		{Key: "msg", Title: "Message", Field: "msg", Width: 40},
	}
	if diff := cmp.Diff(wantColumns, layout.Columns, cmpopts.IgnoreFields(nt.Column{}, "Project")); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}

	if layout.Table.Overscan != 3 || layout.Table.Threshold != 100 || !layout.Table.InfiniteLoading {
		t.Errorf("table config = %+v", layout.Table)
	}
}

func TestLoadLayoutRejectsDuplicateKeys(t *testing.T) {

	path := writeLayout(t, `
columns:
  - key: id
    width: 6
  - key: id
    width: 8
`)

	_, err := LoadLayout(path)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "duplicate column key") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {

	_, err := LoadLayout(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestKeyFn(t *testing.T) {

	rec := nt.Record{
		"id":   nt.Value{Raw: "abc"},
		"name": nt.Value{Raw: "widget"},
	}

	layout := &Layout{}
	if got := layout.KeyFn()(rec); got != "abc" {
		t.Errorf("default key = %q, want %q", got, "abc")
	}

	layout.KeyField = "name"
	if got := layout.KeyFn()(rec); got != "widget" {
		t.Errorf("named key = %q, want %q", got, "widget")
	}
}

func TestSampleLayout(t *testing.T) {

	path := filepath.Join(t.TempDir(), "layout.yaml")

	err := SampleLayout(path)
	if err != nil {
		t.Fatalf("SampleLayout: %v", err)
	}

	layout, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout on sample: %v", err)
	}
	if len(layout.Columns) == 0 {
		t.Error("sample has no columns")
	}

	// second call leaves an existing file alone
	err = os.WriteFile(path, []byte("columns: [{key: only, width: 4}]\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	err = SampleLayout(path)
	if err != nil {
		t.Fatalf("SampleLayout: %v", err)
	}
	layout, err = LoadLayout(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(layout.Columns) != 1 {
		t.Error("sample overwrote an existing layout")
	}
}

func writeLayout(t *testing.T, yml string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "layout.yaml")
	err := os.WriteFile(path, []byte(yml), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}
