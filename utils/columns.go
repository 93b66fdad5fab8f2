package utils

import (
	"reflect"
)

// ColumnList returns the list of "db" tagged column names of a db model
// struct, in declaration order. Embedded structs are flattened.
func ColumnList[T any]() []string {
	var model T
	return columnsOf(reflect.TypeOf(model))
}

func columnsOf(t reflect.Type) []string {
	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, columnsOf(field.Type)...)
			continue
		}
		tag, ok := field.Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		columns = append(columns, tag)
	}
	return columns
}
