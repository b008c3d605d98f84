package loaders

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

type EnvLoader struct{}

func NewEnvloader() *EnvLoader {
	return &EnvLoader{}
}

func (e *EnvLoader) Load(dest any) error {
	return applyTagged(dest, "env", func(tag string) (string, bool) {
		return os.LookupEnv(tag)
	})
}

// applyTagged walks the exported fields of the struct behind dest and sets
// every field carrying tagKey for which lookup yields a value.
func applyTagged(dest any, tagKey string, lookup func(tag string) (string, bool)) error {
	val := reflect.ValueOf(dest)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("unable to load config into destination: destination must be a struct pointer")
	}
	val = val.Elem()
	typ := val.Type()

	for i := range val.NumField() {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() { // skip all fields that cannot be set
			continue
		}

		tag, ok := fieldType.Tag.Lookup(tagKey)
		if !ok {
			continue
		}

		value, ok := lookup(tag)
		if ok {
			if err := setEnvironmentVariable(field, value); err != nil {
				return fmt.Errorf("unable to load %s: %w", tag, err)
			}
		}
	}

	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

func setEnvironmentVariable(field reflect.Value, value string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		num, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(num)
	case reflect.Bool:
		boolean, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(boolean)
	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.String {
			values := make([]string, 0)
			for v := range strings.SplitSeq(value, ",") {
				if v = strings.TrimSpace(v); v != "" {
					values = append(values, v)
				}
			}
			field.Set(reflect.ValueOf(values))
		}
	}
	return nil
}
