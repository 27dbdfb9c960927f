package rootgc

import (
	"fmt"
	"reflect"
	"strconv"
)

// traceType is the reflect.Type of the Trace interface, used to ask whether
// a concrete type carries rootgc's own tracing obligation.
var traceType = reflect.TypeOf((*Trace)(nil)).Elem()

// typePaths accumulates the field paths at which a disqualifying type was
// found, so a failed check reports every offending field, not just the
// first.
type typePaths struct {
	paths []string

	// visiting holds the types on the current walk path, so a
	// self-referential type (e.g. a struct reaching itself through a
	// pointer) is not walked again.
	visiting map[reflect.Type]bool
}

func (p *typePaths) addPath(path string) {
	p.paths = append(p.paths, path)
}

func (p *typePaths) Len() int {
	return len(p.paths)
}

func (p *typePaths) String() string {
	if p.Len() == 0 {
		return ""
	}
	result := ""
	for _, path := range p.paths {
		result += path + ","
	}
	return result[:len(result)-1]
}

// validateNullTrace reports an error naming every field of O that could
// require tracing: anything implementing Trace, and anything whose dynamic
// shape reflection cannot rule that out (interfaces, channels, funcs,
// unsafe.Pointer).
//
// This walks the same way offheap's pointer checker does, but the admission
// rule is different, because the risk it is guarding against is different.
// offheap stores objects off the Go heap, so any Go pointer, string, slice or
// map buried inside one is invisible to Go's own collector and must be
// banned outright. An Allocation here always lives on the ordinary Go heap
// (see allocation.go), so Go's collector already keeps a plain *int, string
// or []byte alive correctly on its own; the only thing this package itself
// must never silently skip is a value that implements Trace, because that is
// the one case only rootgc's own mark/sweep — not Go's collector — is
// responsible for.
func validateNullTrace[O any]() error {
	t := reflect.TypeFor[O]()
	paths := &typePaths{}
	searchForTrace(t, "", paths)
	if paths.Len() != 0 {
		return fmt.Errorf("rootgc: type cannot be NullTrace, found traceable field(s): %s", paths)
	}
	return nil
}

func searchForTrace(t reflect.Type, path string, paths *typePaths) {
	if t.Implements(traceType) || reflect.PointerTo(t).Implements(traceType) {
		paths.addPath(path + "<" + t.String() + ">")
		return
	}

	if paths.visiting[t] {
		return
	}
	if paths.visiting == nil {
		paths.visiting = map[reflect.Type]bool{}
	}
	paths.visiting[t] = true
	defer delete(paths.visiting, t)

	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		// Inert data: Go's own collector, not this package's sweep, is
		// responsible for anything these hold (a string's backing
		// array, in particular).

	case reflect.Array:
		size := strconv.Itoa(t.Len())
		searchForTrace(t.Elem(), path+"["+size+"]", paths)

	case reflect.Slice:
		searchForTrace(t.Elem(), path+"[]"+t.Elem().String(), paths)

	case reflect.Pointer:
		searchForTrace(t.Elem(), path+"*"+t.Elem().String(), paths)

	case reflect.Map:
		searchForTrace(t.Key(), path+"<key:"+t.Key().String()+">", paths)
		searchForTrace(t.Elem(), path+"<val:"+t.Elem().String()+">", paths)

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			searchForTrace(f.Type, path+"("+t.String()+")"+f.Name, paths)
		}

	case reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		// Dynamic or opaque: reflection cannot rule out a Trace value
		// hiding inside, so these are rejected outright.
		paths.addPath(path + "<" + t.String() + ">")

	default:
		paths.addPath(path + "<" + t.String() + ">")
	}
}
