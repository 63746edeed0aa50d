package keys

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMapToSlice takes a struct, or a pointer to a struct, whose fields are of
// type key.Binding and returns the bindings as a slice, in field order.
// Fields of any other type are skipped.
func KeyMapToSlice(t any) (bindings []key.Binding) {
	v := reflect.Indirect(reflect.ValueOf(t))
	if v.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < v.NumField(); i++ {
		if kb, ok := v.Field(i).Interface().(key.Binding); ok {
			bindings = append(bindings, kb)
		}
	}
	return
}
