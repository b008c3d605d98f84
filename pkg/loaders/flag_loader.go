package loaders

import (
	"fmt"
	"reflect"

	"github.com/spf13/pflag"
)

// FlagLoader applies command-line flags that were explicitly set.
type FlagLoader struct {
	flags *pflag.FlagSet
}

func NewFlagLoader(flags *pflag.FlagSet) *FlagLoader {
	return &FlagLoader{flags: flags}
}

func (f *FlagLoader) Load(dest any) error {
	if f.flags == nil {
		return nil
	}
	return applyTagged(dest, "flag", func(tag string) (string, bool) {
		flag := f.flags.Lookup(tag)
		if flag == nil || !flag.Changed {
			return "", false
		}
		return flag.Value.String(), true
	})
}

// RegisterFlags defines a string flag for every `flag:""` tagged field of the
// struct behind dest. Already defined flags are left alone.
func RegisterFlags(flags *pflag.FlagSet, dest any) error {
	val := reflect.ValueOf(dest)
	if val.Kind() != reflect.Pointer || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("unable to register flags: destination must be a struct pointer")
	}
	typ := val.Elem().Type()

	for i := range typ.NumField() {
		field := typ.Field(i)
		name, ok := field.Tag.Lookup("flag")
		if !ok || flags.Lookup(name) != nil {
			continue
		}

		usage := field.Tag.Get("usage")
		if env, ok := field.Tag.Lookup("env"); ok {
			usage = fmt.Sprintf("%s (env %s)", usage, env)
		}
		flags.String(name, "", usage)
	}
	return nil
}
