package scripts

import (
	"math/big"
	"strings"
	"testing"

	"go.starlark.net/starlark"
)

func TestToValue(t *testing.T) {
	type testStruct struct {
		Exported   string
		unexported int
	}

	ptrStruct := &testStruct{
		Exported:   "hello",
		unexported: 42,
	}

	exportedDict := func(s string) starlark.Value {
		d := starlark.NewDict(1)
		d.SetKey(starlark.String("Exported"), starlark.String(s))
		return d
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "hello", starlark.String("hello")},
		{"int", int(42), starlark.MakeInt(42)},
		{"int8", int8(-42), starlark.MakeInt(-42)},
		{"int64", int64(42), starlark.MakeInt64(42)},
		{"uint16", uint16(42), starlark.MakeUint(42)},
		{"big", big.NewInt(7), starlark.MakeInt(7)},
		{"float32", float32(3.5), starlark.Float(3.5)},
		{"float64", float64(3.14), starlark.Float(3.14)},
		{"starlark value", starlark.String("as is"), starlark.String("as is")},
		{"[]any", []any{1, "a", true}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a"), starlark.True})},
		{"[]int", []int{1, 2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})},
		{"map[string]any", map[string]any{"a": 1, "b": "c"}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			d.SetKey(starlark.String("b"), starlark.String("c"))
			return d
		}()},
		{"map[int]bool", map[int]bool{1: true}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.MakeInt(1), starlark.True)
			return d
		}()},
		{"struct", testStruct{Exported: "hello"}, exportedDict("hello")},
		{"pointer to struct", ptrStruct, exportedDict("hello")},
		{"pointer to pointer", &ptrStruct, exportedDict("hello")},
		{"nil pointer", (*testStruct)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := ToValue(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Fatalf("got %v, want %v", actual, tc.expected)
			}
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		_, err := ToValue(map[string]any{"ch": make(chan bool)})
		if err == nil || !strings.Contains(err.Error(), "ch: unsupported type") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestToGlobals(t *testing.T) {
	globals, err := ToGlobals(map[string]any{
		"answer": 42,
		"names":  []string{"a", "b"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := globals["answer"].String(); got != "42" {
		t.Fatalf("got %v", got)
	}
	if got := globals["names"].String(); got != `["a", "b"]` {
		t.Fatalf("got %v", got)
	}
}
