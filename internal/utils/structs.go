package utils

import (
	"fmt"
	"reflect"
	"strings"
)

var ColumnTag = "db"

// StructTagValues lists the column names declared by the db tags of input,
// in field order.
func StructTagValues(input any) []string {

	targetValue := structValue(input)
	targetType := targetValue.Type()

	result := make([]string, 0, targetValue.NumField())

	for i := 0; i < targetValue.NumField(); i++ {
		if column, ok := columnName(targetType.Field(i)); ok {
			result = append(result, column)
		}
	}

	return result

}

// StructToMap keys every db tagged field of input by its column name.
func StructToMap(input any, omit ...string) map[string]any {

	itemValue := structValue(input)
	itemType := itemValue.Type()

	result := make(map[string]any)

fields:
	for i := 0; i < itemValue.NumField(); i++ {
		column, ok := columnName(itemType.Field(i))
		if !ok {
			continue
		}

		for _, o := range omit {
			if o == column {
				continue fields
			}
		}

		result[column] = itemValue.Field(i).Interface()
	}

	return result

}

func structValue(input any) reflect.Value {
	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		panic("input must be a pointer to a struct or a struct")
	}

	return v
}

func columnName(field reflect.StructField) (string, bool) {
	if field.PkgPath != "" {
		return "", false
	}

	tagValue := field.Tag.Get(ColumnTag)
	if tagValue == "" || tagValue == "-" {
		return "", false
	}

	return tagValue, true
}

// QuoteIdentifier wraps name in double quotes so mixed-case column and
// table names survive on both sqlite and postgres.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func QuoteIdentifiers(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = QuoteIdentifier(n)
	}
	return out
}

func QuoteKeys(input map[string]any) map[string]any {
	out := make(map[string]any, len(input))
	for k, v := range input {
		out[QuoteIdentifier(k)] = v
	}
	return out
}

func ErrorWrapOrNil(err error, msg string) error {
	if err == nil {
		return nil
	}

	if msg == "" {
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)

}
