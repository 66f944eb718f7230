// Package selection tracks selected row keys across the whole dataset,
// independent of whatever slice of it happens to be on screen.
package selection

import (
	"sort"

	"tableau/entity"
)

// ChangeFn is notified after every selection change with the selected keys
// and the matching records the coordinator could resolve. It is the only
// channel from selection state to the surrounding application.
type ChangeFn func(keys []string, records []entity.Record)

// Set is a selection coordinator. The zero value is unusable; construct
// with New.
type Set struct {
	keys     map[string]struct{}
	enabled  bool
	onChange ChangeFn
	resolve  func(keys []string) []entity.Record
}

// New returns an enabled selection set. onChange may be nil.
func New(onChange ChangeFn) *Set {
	return &Set{
		keys:     map[string]struct{}{},
		enabled:  true,
		onChange: onChange,
	}
}

// SetResolver installs the lookup used to turn selected keys into records
// for change notifications. Without one, notifications carry keys only.
func (set *Set) SetResolver(resolve func(keys []string) []entity.Record) {
	set.resolve = resolve
}

// SetEnabled switches selection affordances on or off without losing the
// current set.
func (set *Set) SetEnabled(enabled bool) {
	set.enabled = enabled
}

// Enabled reports whether selection affordances are shown.
func (set *Set) Enabled() bool {
	return set.enabled
}

// IsSelected reports whether key is in the set.
func (set *Set) IsSelected(key string) bool {
	_, ok := set.keys[key]
	return ok
}

// Count returns the number of selected keys.
func (set *Set) Count() int {
	return len(set.keys)
}

// Keys returns the selected keys in stable order.
func (set *Set) Keys() []string {
	keys := make([]string, 0, len(set.keys))
	for key := range set.keys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Toggle adds key to the set, or removes it when already present.
func (set *Set) Toggle(key string) {
	if key == "" {
		return
	}

	if _, ok := set.keys[key]; ok {
		delete(set.keys, key)
	} else {
		set.keys[key] = struct{}{}
	}
	set.notify()
}

// SelectAll replaces the set with the given keys.
func (set *Set) SelectAll(keys []string) {
	set.keys = make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key != "" {
			set.keys[key] = struct{}{}
		}
	}
	set.notify()
}

// ClearAll empties the set.
func (set *Set) ClearAll() {
	if len(set.keys) == 0 {
		return
	}
	set.keys = map[string]struct{}{}
	set.notify()
}

// Reconcile drops any selected key not present among the given records.
// Keys of rows that left the dataset disappear silently; a notification
// fires only when something was dropped.
func (set *Set) Reconcile(records []entity.Record, keyFn entity.KeyFn) {
	if keyFn == nil || len(set.keys) == 0 {
		return
	}

	present := make(map[string]struct{}, len(records))
	for _, rec := range records {
		present[keyFn(rec)] = struct{}{}
	}

	dropped := false
	for key := range set.keys {
		if _, ok := present[key]; !ok {
			delete(set.keys, key)
			dropped = true
		}
	}

	if dropped {
		set.notify()
	}
}

// unexported

func (set *Set) notify() {
	if set.onChange == nil {
		return
	}

	keys := set.Keys()
	var records []entity.Record
	if set.resolve != nil {
		records = set.resolve(keys)
	}
	set.onChange(keys, records)
}
