package request

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

var (
	ErrMissingParam = errors.New("missing required parameter")
)

// Populates a struct object containing exported data members with the `param:""` tag set,
// with all the values that the urlValues contains. Be mindfull to only pass the query string, and not anything host related.
// A tag of the form `param:"name,required"` fails with ErrMissingParam when the parameter is absent.
func MarshallParams[T any](urlValues url.Values, dest *T) error {
	val := reflect.ValueOf(dest).Elem()
	valType := val.Type()

	if valType.Kind() != reflect.Struct {
		return fmt.Errorf("cannot marshall params, destination is not a struct")
	}

	numFields := val.NumField()
	for i := range numFields {
		field := val.Field(i)
		fieldType := valType.Field(i)

		rawTag, tagOK := fieldType.Tag.Lookup("param")
		if !tagOK {
			continue
		}
		tag, required := parseTag(rawTag)

		if !urlValues.Has(tag) {
			if required {
				return fmt.Errorf("%w: %s", ErrMissingParam, tag)
			}
			continue
		}

		value := urlValues.Get(tag)
		if value == "" && field.Kind() != reflect.String {
			continue
		}

		err := setField(field, value)
		if err != nil {
			return fmt.Errorf("unable to marshall url param %s: %w", tag, err)
		}
	}

	return nil
}

func UnMarshallParams[T any](params *T) url.Values {
	values := make(url.Values)
	val := reflect.ValueOf(params).Elem()
	if val.Kind() == reflect.Interface && !val.IsNil() {
		val = val.Elem()
	}
	if val.Kind() == reflect.Pointer && !val.IsNil() {
		val = val.Elem()
	}
	valType := val.Type()

	if valType.Kind() != reflect.Struct {
		return values
	}

	numFields := val.NumField()
	for i := range numFields {
		field := val.Field(i)
		fieldType := valType.Field(i)

		rawTag, ok := fieldType.Tag.Lookup("param")
		if !ok {
			continue
		}
		tag, _ := parseTag(rawTag)

		switch field.Kind() {
		case reflect.String:
			values.Add(tag, field.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			values.Add(tag, strconv.FormatInt(field.Int(), 10))
		case reflect.Bool:
			values.Add(tag, strconv.FormatBool(field.Bool()))
		}
	}

	return values
}

func parseTag(tag string) (name string, required bool) {
	name, opts, _ := strings.Cut(tag, ",")
	return name, opts == "required"
}

// populates the field with the value of value
func setField(field reflect.Value, value string) error {
	if !field.CanSet() {
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		num, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("unable to convert value: %w", err)
		}
		field.SetInt(num)
	case reflect.Bool:
		boolean, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("unable to convert value: %w", err)
		}
		field.SetBool(boolean)
	}

	return nil
}
