package duck

import (
	"testing"

	nt "tableau/entity"
)

func TestFilterExpr(t *testing.T) {

	tests := []struct {
		name   string
		filter nt.Filter
		want   string
	}{
		{
			name: "zero filter vanishes",
		},
		{
			name:   "eq",
			filter: nt.Filter{Op: nt.Eq, Field: "level", Value: "warn"},
			want:   "level = 'warn'",
		},
		{
			name:   "eq without a field vanishes",
			filter: nt.Filter{Op: nt.Eq, Value: "warn"},
		},
		{
			name:   "ne without a field vanishes",
			filter: nt.Filter{Op: nt.Ne, Value: "warn"},
		},
		{
			name:   "contains without a field vanishes",
			filter: nt.Filter{Op: nt.Contains, Value: "timeout"},
		},
		{
			name:   "comparison without a field vanishes",
			filter: nt.Filter{Op: nt.Gte, Value: 100},
		},
		{
			name:   "contains",
			filter: nt.Filter{Op: nt.Contains, Field: "msg", Value: "timeout"},
			want:   "msg LIKE '%timeout%'",
		},
		{
			name:   "comparison",
			filter: nt.Filter{Op: nt.Gte, Field: "id", Value: 100},
			want:   "id >= 100",
		},
		{
			name: "and",
			filter: nt.Filter{Op: nt.And, Children: []nt.Filter{
				{Op: nt.Eq, Field: "level", Value: "error"},
				{Op: nt.Lt, Field: "id", Value: 50},
			}},
			want: "(level = 'error' AND id < 50)",
		},
		{
			name: "or with an empty child",
			filter: nt.Filter{Op: nt.Or, Children: []nt.Filter{
				{Op: nt.Eq, Field: "level", Value: "warn"},
				{},
			}},
			want: "(level = 'warn')",
		},
		{
			name: "not",
			filter: nt.Filter{Op: nt.Not, Children: []nt.Filter{
				{Op: nt.Eq, Field: "level", Value: "debug"},
			}},
			want: "NOT (level = 'debug')",
		},
		{
			name:   "not without children vanishes",
			filter: nt.Filter{Op: nt.Not},
		},
		{
			name: "nested",
			filter: nt.Filter{Op: nt.And, Children: []nt.Filter{
				{Op: nt.Gt, Field: "id", Value: 10},
				{Op: nt.Or, Children: []nt.Filter{
					{Op: nt.Eq, Field: "level", Value: "warn"},
					{Op: nt.Eq, Field: "level", Value: "error"},
				}},
			}},
			want: "(id > 10 AND (level = 'warn' OR level = 'error'))",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := filterExpr(test.filter); got != test.want {
				t.Errorf("filterExpr = %q, want %q", got, test.want)
			}
		})
	}
}

func TestWhereClause(t *testing.T) {

	dk := &Duck{}
	if got := dk.whereClause(); got != "" {
		t.Errorf("empty filter whereClause = %q, want empty", got)
	}

	dk.filter = nt.Filter{Op: nt.Eq, Field: "level", Value: "warn"}
	want := "WHERE level = 'warn'"
	if got := dk.whereClause(); got != want {
		t.Errorf("whereClause = %q, want %q", got, want)
	}
}

func TestOrderClause(t *testing.T) {

	dk := &Duck{keyField: "id"}
	if got := dk.orderClause(); got != "ORDER BY id" {
		t.Errorf("default orderClause = %q", got)
	}

	dk.sorts = []nt.Sort{
		{Field: "timestamp", Desc: true},
		{Field: "level"},
	}
	want := "ORDER BY timestamp DESC, level ASC"
	if got := dk.orderClause(); got != want {
		t.Errorf("orderClause = %q, want %q", got, want)
	}
}
