package structpages

import (
	"fmt"
	"reflect"
)

// argRegistry holds the values injected into page methods, keyed by type.
// Lookups for interface types scan in registration order so the result is
// deterministic.
type argRegistry struct {
	byType map[reflect.Type]reflect.Value
	order  []reflect.Type
}

func newArgRegistry() *argRegistry {
	return &argRegistry{byType: make(map[reflect.Type]reflect.Value)}
}

func (args *argRegistry) addArg(v any) error {
	if v == nil {
		return nil
	}
	typ := reflect.TypeOf(v)
	if _, ok := args.byType[typ]; ok {
		return fmt.Errorf("duplicate type %s in args registry", typ)
	}
	args.byType[typ] = reflect.ValueOf(v)
	args.order = append(args.order, typ)
	return nil
}

func (args *argRegistry) getArg(want reflect.Type) (reflect.Value, bool) {
	if v, ok := args.byType[want]; ok {
		return v, true
	}
	// a registered *T satisfies a parameter of type T
	if want.Kind() != reflect.Ptr {
		if v, ok := args.byType[reflect.PointerTo(want)]; ok && !v.IsNil() {
			return v.Elem(), true
		}
	}
	if want.Kind() == reflect.Interface {
		for _, typ := range args.order {
			if typ.Implements(want) {
				return args.byType[typ], true
			}
		}
	}
	return reflect.Value{}, false
}
