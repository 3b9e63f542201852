package zone

import (
	"reflect"
	"testing"
)

func TestColorMapTotal(t *testing.T) {
	categories := []string{"A = foo", "B = bar", "C = baz", "D = qux"}
	colors := ColorMap(categories)

	if len(colors) != len(categories) {
		t.Fatalf("len = %d, want %d", len(colors), len(categories))
	}
	for _, c := range categories {
		hex, ok := colors[c]
		if !ok {
			t.Fatalf("no color for %q", c)
		}
		if len(hex) != 7 || hex[0] != '#' {
			t.Fatalf("color for %q = %q, want #rrggbb", c, hex)
		}
	}
}

func TestColorMapDeterministic(t *testing.T) {
	categories := []string{"A = foo", "B = bar", "C = baz"}
	if !reflect.DeepEqual(ColorMap(categories), ColorMap(categories)) {
		t.Fatal("same input produced different color maps")
	}
}

func TestColorMapDistinct(t *testing.T) {
	colors := ColorMap([]string{"A = foo", "B = bar", "C = baz", "D = qux"})
	seen := make(map[string]string)
	for name, hex := range colors {
		if other, dup := seen[hex]; dup {
			t.Fatalf("%q and %q share color %s", name, other, hex)
		}
		seen[hex] = name
	}
}

func TestColorMapEmpty(t *testing.T) {
	if colors := ColorMap(nil); len(colors) != 0 {
		t.Fatalf("len = %d, want 0", len(colors))
	}
}
