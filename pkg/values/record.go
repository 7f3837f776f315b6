package values

import (
	"github.com/goliatone/go-cardform/pkg/model"
)

// Record tracks user-entered values for a form model. Every field in the
// model owns exactly one entry; text, date, and textarea fields default to the
// empty string while file fields default to a nil value until an attachment is
// captured. A Record is not safe for concurrent use; callers owning a shared
// record must serialise access.
type Record struct {
	fields []model.SmartField
	values map[string]any
}

// NewRecord builds a record with one default entry per field.
func NewRecord(fields []model.SmartField) *Record {
	r := &Record{}
	r.reset(fields)
	return r
}

// Get returns the stored value for a field identifier.
func (r *Record) Get(id string) (any, bool) {
	value, ok := r.values[id]
	return value, ok
}

// Set merges the supplied updates into the record. Updates for identifiers
// outside the current field list are dropped; entries not named in the update
// keep their value. The merge never removes keys.
func (r *Record) Set(updates map[string]any) {
	for id, value := range updates {
		if _, ok := r.values[id]; !ok {
			continue
		}
		r.values[id] = value
	}
}

// Sync reconciles the record with a field list. When the list matches the one
// the record was built from, entered values survive. Any change, including a
// pure reorder, discards the record wholesale and rebuilds defaults: a changed
// template invalidates assumptions about what each entry meant.
func (r *Record) Sync(fields []model.SmartField) {
	if sameFields(r.fields, fields) {
		return
	}
	r.reset(fields)
}

// Reset discards all entered values and restores per-type defaults.
func (r *Record) Reset() {
	r.reset(r.fields)
}

// Snapshot returns a copy of the current values keyed by field identifier.
func (r *Record) Snapshot() map[string]any {
	out := make(map[string]any, len(r.values))
	for id, value := range r.values {
		out[id] = value
	}
	return out
}

// Len reports the number of tracked entries.
func (r *Record) Len() int {
	return len(r.values)
}

func (r *Record) reset(fields []model.SmartField) {
	r.fields = append([]model.SmartField(nil), fields...)
	r.values = make(map[string]any, len(fields))
	for _, field := range fields {
		r.values[field.ID] = defaultFor(field.Type)
	}
}

func defaultFor(fieldType model.FieldType) any {
	if fieldType == model.FieldTypeFile {
		return nil
	}
	return ""
}

func sameFields(a, b []model.SmartField) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Type != b[i].Type || a[i].Side != b[i].Side {
			return false
		}
	}
	return true
}
