package tableau

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	nt "tableau/entity"
	"tableau/table"
)

// fakeSource serves synthetic records without a database.
type fakeSource struct {
	count    int
	failPage bool
}

func (src *fakeSource) Name() string {
	return "fake"
}

func (src *fakeSource) Fields() ([]nt.Field, error) {
	return []nt.Field{{Name: "id", Type: "BIGINT"}, {Name: "msg", Type: "VARCHAR"}}, nil
}

func (src *fakeSource) Count() (int, error) {
	return src.count, nil
}

func (src *fakeSource) Page(offset, size int) (records []nt.Record, err error) {
	if src.failPage {
		return nil, fmt.Errorf("page boom")
	}

	for i := offset; i < offset+size && i < src.count; i++ {
		records = append(records, nt.Record{
			"id":  nt.Value{Raw: int64(i + 1)},
			"msg": nt.Value{Raw: fmt.Sprintf("event %d", i+1)},
		})
	}
	return records, nil
}

func (src *fakeSource) Get(key string) (map[string]any, error) {
	return map[string]any{"id": key}, nil
}

func (src *fakeSource) SetView(filter nt.Filter, sorts []nt.Sort) error {
	return nil
}

func newTestModel(t *testing.T, src *fakeSource, layoutYaml string) Model {
	t.Helper()

	path := filepath.Join(t.TempDir(), "layout.yaml")
	err := os.WriteFile(path, []byte(layoutYaml), 0644)
	if err != nil {
		t.Fatal(err)
	}

	model, err := NewModel(context.Background(), src, nil, path, nil)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return model
}

var smallLayout = `
columns:
  - key: id
    field: id
    width: 6
  - key: msg
    field: msg
    width: 30
`

var pagedLayout = smallLayout + `
table:
  infinite_loading: true
  load_size: 10
`

func TestGetDataLoadsWholeSmallDataset(t *testing.T) {

	src := &fakeSource{count: 7}
	model := newTestModel(t, src, smallLayout)

	msg := model.getData()()
	data, ok := msg.(table.DataMsg)
	if !ok {
		t.Fatalf("msg = %T, want table.DataMsg", msg)
	}
	if len(data.Records) != 7 || data.Total != 7 {
		t.Errorf("records/total = %d/%d, want 7/7", len(data.Records), data.Total)
	}
}

func TestGetDataLoadsFirstPageWhenPaging(t *testing.T) {

	src := &fakeSource{count: 100}
	model := newTestModel(t, src, pagedLayout)

	msg := model.getData()()
	data, ok := msg.(table.DataMsg)
	if !ok {
		t.Fatalf("msg = %T, want table.DataMsg", msg)
	}
	if len(data.Records) != 10 || data.Total != 100 {
		t.Errorf("records/total = %d/%d, want 10/100", len(data.Records), data.Total)
	}
}

func TestLoadMoreReportsFailure(t *testing.T) {

	src := &fakeSource{count: 100, failPage: true}
	model := newTestModel(t, src, pagedLayout)

	msg := model.loadMore(10, 10)()
	appended, ok := msg.(table.AppendMsg)
	if !ok {
		t.Fatalf("msg = %T, want table.AppendMsg", msg)
	}
	if appended.Err == nil {
		t.Error("expected Err on the append")
	}
}

func TestLoadMoreClampsAtEnd(t *testing.T) {

	src := &fakeSource{count: 15}
	model := newTestModel(t, src, pagedLayout)

	msg := model.loadMore(10, 10)()
	appended, ok := msg.(table.AppendMsg)
	if !ok {
		t.Fatalf("msg = %T, want table.AppendMsg", msg)
	}
	if len(appended.Records) != 5 || appended.Total != 15 {
		t.Errorf("records/total = %d/%d, want 5/15", len(appended.Records), appended.Total)
	}
}

func TestRenderFooter(t *testing.T) {

	footer := RenderFooter(3, 120, 2, "events.ndjson", false, 60)
	if footer == "" {
		t.Fatal("empty footer")
	}

	loading := RenderFooter(3, 120, 0, "events.ndjson", true, 60)
	if loading == footer {
		t.Error("loading state should show")
	}
}
