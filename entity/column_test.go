package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLabel(t *testing.T) {

	col := Column{Key: "ts", Title: "Timestamp"}
	if col.Label() != "Timestamp" {
		t.Errorf("Label() = %q, want %q", col.Label(), "Timestamp")
	}

	col.Title = ""
	if col.Label() != "ts" {
		t.Errorf("Label() = %q, want %q", col.Label(), "ts")
	}
}

func TestValidateColumns(t *testing.T) {

	tests := []struct {
		name    string
		columns []Column
		wantErr string
	}{
		{
			name:    "valid",
			columns: []Column{{Key: "id"}, {Key: "msg"}},
		},
		{
			name:    "empty set",
			columns: []Column{},
		},
		{
			name:    "blank key",
			columns: []Column{{Key: "id"}, {}},
			wantErr: "column 1 has a blank key",
		},
		{
			name:    "duplicate key",
			columns: []Column{{Key: "id"}, {Key: "msg"}, {Key: "id"}},
			wantErr: "duplicate column key: id",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateColumns(test.columns)
			if test.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != test.wantErr {
				t.Errorf("err = %v, want %q", err, test.wantErr)
			}
		})
	}
}

func TestNormalizeColumns(t *testing.T) {

	columns := []Column{
		{Key: "msg", Width: 10},
		{Key: "secret", Hidden: true},
		{Key: "id", Pinned: PinLeft},
		{Key: "level", Width: 4},
		{Key: "actions", Pinned: PinRight},
		{Key: "level", Width: 8}, // later declaration wins
	}

	want := []Column{
		{Key: "id", Pinned: PinLeft},
		{Key: "msg", Width: 10},
		{Key: "level", Width: 8},
		{Key: "actions", Pinned: PinRight},
	}

	got := NormalizeColumns(columns)
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Column{}, "Project")); diff != "" {
		t.Errorf("NormalizeColumns mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeColumnsKeepsNothingHidden(t *testing.T) {

	got := NormalizeColumns([]Column{{Key: "a", Hidden: true}, {Key: "b", Hidden: true}})
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
