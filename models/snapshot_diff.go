package models

import (
	"bytes"
	"encoding/json"
	"reflect"
	"slices"
	"sort"
	"time"
)

// RelationHandler overrides the default comparison for one field, for fields
// whose change semantics are structural (e.g. a linked collection). It returns
// nil when the field did not change.
type RelationHandler func(oldValue, newValue any) *FieldChange

// DefaultIgnoredFields are skipped by DiffSnapshots unless an explicit ignore
// list is given: creation/update timestamps change on every write and would
// drown the audit trail.
var DefaultIgnoredFields = []string{"createdAt", "updatedAt", "created_at", "updated_at"}

type DiffOptions struct {
	// FieldsToTrack restricts the diff to the listed fields. When empty, all
	// keys of the after snapshot are compared.
	FieldsToTrack []string
	// FieldsToIgnore defaults to DefaultIgnoredFields when nil.
	FieldsToIgnore   []string
	RelationHandlers map[string]RelationHandler
}

// DiffSnapshots compares two snapshots of an entity field by field and returns
// one FieldChange per difference. Both snapshots must be present: diffing
// against a missing state is meaningless and yields no changes.
func DiffSnapshots(before, after map[string]any, opts DiffOptions) []FieldChange {
	if before == nil || after == nil {
		return nil
	}

	ignored := opts.FieldsToIgnore
	if ignored == nil {
		ignored = DefaultIgnoredFields
	}

	fields := opts.FieldsToTrack
	if len(fields) == 0 {
		fields = make([]string, 0, len(after))
		for field := range after {
			fields = append(fields, field)
		}
		sort.Strings(fields)
	}

	var changes []FieldChange
	for _, field := range fields {
		if slices.Contains(ignored, field) {
			continue
		}

		oldValue := before[field]
		newValue := after[field]

		if handler, ok := opts.RelationHandlers[field]; ok {
			if change := handler(oldValue, newValue); change != nil {
				changes = append(changes, *change)
			}
			continue
		}

		if !ValuesEqual(oldValue, newValue) {
			changes = append(changes, FieldChange{
				Field:    field,
				OldValue: oldValue,
				NewValue: newValue,
			})
		}
	}
	return changes
}

// ValuesEqual implements the comparison policy of the change tracker:
//   - both nil: equal
//   - one nil: changed
//   - both time.Time: compared by epoch millisecond
//   - both slices, or both maps/structs: deep equality via canonical JSON
//     serialization. Slices are order-sensitive: reordering without value
//     change registers as a change. This is intentional.
//   - both scalars: compared by value
//   - anything else (kind mismatch, unserializable values): changed. The
//     tracker fails toward over-reporting rather than silently dropping a
//     change.
func ValuesEqual(a, b any) bool {
	a = derefPointer(a)
	b = derefPointer(b)
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	aTime, aIsTime := asTime(a)
	bTime, bIsTime := asTime(b)
	if aIsTime || bIsTime {
		if !aIsTime || !bIsTime {
			return false
		}
		return aTime.UnixMilli() == bTime.UnixMilli()
	}

	aKind := valueKind(a)
	bKind := valueKind(b)
	if aKind != bKind {
		return false
	}

	switch aKind {
	case kindScalar:
		return scalarsEqual(a, b)
	case kindSlice, kindObject:
		return jsonEqual(a, b)
	}
	return false
}

// derefPointer collapses a typed nil pointer into an untyped nil and unwraps
// non-nil pointers to their pointee, so a missing value and a nil pointer
// compare equal, and two pointers compare by value rather than identity.
func derefPointer(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

type comparisonKind int

const (
	kindScalar comparisonKind = iota
	kindSlice
	kindObject
	kindOther
)

func valueKind(v any) comparisonKind {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return kindSlice
	case reflect.Map, reflect.Struct:
		return kindObject
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return kindScalar
	default:
		return kindOther
	}
}

func scalarsEqual(a, b any) bool {
	if reflect.TypeOf(a) == reflect.TypeOf(b) {
		return a == b
	}
	// Numbers of different underlying types (e.g. int vs a json-decoded
	// float64) are still the same value to the business.
	aFloat, aOk := asFloat(a)
	bFloat, bOk := asFloat(b)
	if aOk && bOk {
		return aFloat == bFloat
	}
	return false
}

func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	}
	return time.Time{}, false
}

func jsonEqual(a, b any) bool {
	aJson, aErr := json.Marshal(a)
	bJson, bErr := json.Marshal(b)
	if aErr != nil || bErr != nil {
		return false
	}
	return bytes.Equal(aJson, bJson)
}
