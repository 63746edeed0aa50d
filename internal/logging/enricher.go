package logging

import (
	"reflect"

	"github.com/leg100/tabstrip/internal/resource"
)

// enricher enriches a log record with attributes that aren't readily
// available to the caller.
type enricher struct {
	updaters []ArgsUpdater
}

func (e *enricher) AddArgsUpdater(updater ArgsUpdater) {
	e.updaters = append(e.updaters, updater)
}

func (e *enricher) enrich(args ...any) []any {
	for _, u := range e.updaters {
		args = u.UpdateArgs(args...)
	}
	return args
}

// ArgsUpdater updates a log message's arguments.
type ArgsUpdater interface {
	UpdateArgs(args ...any) []any
}

// Getter retrieves T by its identifier.
type Getter[T any] interface {
	Get(resource.ID) (T, error)
}

// IDResolver swaps identifiers of a given kind for the entity they identify,
// so that a log record reads "tab=Inbox(#2)" rather than an opaque ID. An
// identifier is found either as an argument in its own right or as the named
// field of a struct argument, in which case the entity is appended under
// Name.
type IDResolver[T any] struct {
	Getter[T]

	Kind  resource.Kind
	Name  string
	Field string
}

func (r *IDResolver[T]) UpdateArgs(args ...any) []any {
	for i, arg := range args {
		if id, ok := arg.(resource.ID); ok {
			if id.Kind() != r.Kind {
				continue
			}
			if t, err := r.Get(id); err == nil {
				args[i] = t
				return args
			}
			continue
		}
		id, ok := r.fieldID(arg)
		if !ok {
			continue
		}
		if t, err := r.Get(id); err == nil {
			return append(args, r.Name, t)
		}
	}
	return args
}

func (r *IDResolver[T]) fieldID(arg any) (resource.ID, bool) {
	if r.Field == "" {
		return resource.ID{}, false
	}
	v := reflect.Indirect(reflect.ValueOf(arg))
	if v.Kind() != reflect.Struct {
		return resource.ID{}, false
	}
	f := reflect.Indirect(v.FieldByName(r.Field))
	if !f.IsValid() {
		return resource.ID{}, false
	}
	id, ok := f.Interface().(resource.ID)
	if !ok || id.Kind() != r.Kind {
		return resource.ID{}, false
	}
	return id, true
}
