package structpages

import (
	"fmt"
	"reflect"
	"testing"
)

type testStruct struct {
	Value string
}

type namer interface {
	Name() string
}

type firstNamer struct{}

func (*firstNamer) Name() string { return "first" }

type secondNamer struct{}

func (*secondNamer) Name() string { return "second" }

func TestArgRegistry_addArg(t *testing.T) {
	tests := []struct {
		name    string
		args    []any
		wantLen int
		wantErr bool
	}{
		{name: "add nil value", args: []any{nil}, wantLen: 0},
		{name: "add single value", args: []any{&testStruct{Value: "test"}}, wantLen: 1},
		{name: "add multiple different types", args: []any{&testStruct{}, "string", 42}, wantLen: 3},
		{
			name:    "add duplicate type returns error",
			args:    []any{&testStruct{Value: "first"}, &testStruct{Value: "second"}},
			wantLen: 1,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := newArgRegistry()
			var gotErr error
			for _, arg := range tt.args {
				if err := args.addArg(arg); err != nil {
					gotErr = err
				}
			}
			if (gotErr != nil) != tt.wantErr {
				t.Errorf("addArg() error = %v, wantErr %v", gotErr, tt.wantErr)
			}
			if len(args.byType) != tt.wantLen {
				t.Errorf("expected %d args, got %d", tt.wantLen, len(args.byType))
			}
		})
	}
}

func TestArgRegistry_getArg(t *testing.T) {
	args := newArgRegistry()
	ts := &testStruct{Value: "test"}
	for _, v := range []any{ts, &firstNamer{}, &secondNamer{}, 42} {
		if err := args.addArg(v); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("exact pointer", func(t *testing.T) {
		v, ok := args.getArg(reflect.TypeOf(ts))
		if !ok || v.Interface() != ts {
			t.Errorf("expected registered pointer, got %v %v", v, ok)
		}
	})
	t.Run("value from pointer", func(t *testing.T) {
		v, ok := args.getArg(reflect.TypeOf(testStruct{}))
		if !ok || v.Interface().(testStruct).Value != "test" {
			t.Errorf("expected dereferenced value, got %v %v", v, ok)
		}
	})
	t.Run("interface takes first registered implementation", func(t *testing.T) {
		for range 10 {
			v, ok := args.getArg(reflect.TypeOf((*namer)(nil)).Elem())
			if !ok || v.Interface().(namer).Name() != "first" {
				t.Fatalf("expected first namer, got %v %v", v, ok)
			}
		}
	})
	t.Run("plain value", func(t *testing.T) {
		v, ok := args.getArg(reflect.TypeOf(0))
		if !ok || v.Int() != 42 {
			t.Errorf("expected 42, got %v %v", v, ok)
		}
	})
	t.Run("missing", func(t *testing.T) {
		if v, ok := args.getArg(reflect.TypeOf("")); ok {
			t.Errorf("expected no string arg, got %s", fmt.Sprint(v))
		}
	})
}
