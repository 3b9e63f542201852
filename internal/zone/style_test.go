package zone

import "testing"

var testColors = map[string]string{
	"A = foo": "#aa0000",
	"B = bar": "#00bb00",
}

func TestStyleLineShowAll(t *testing.T) {
	for category, want := range testColors {
		st := StyleLine(category, "", testColors)
		if st.Color != want {
			t.Fatalf("color = %q, want %q", st.Color, want)
		}
		if st.Weight != 3 || st.Opacity != 0.8 {
			t.Fatalf("weight/opacity = %v/%v, want defaults", st.Weight, st.Opacity)
		}
	}
}

func TestStyleLineSelected(t *testing.T) {
	st := StyleLine("B = bar", "B = bar", testColors)
	if st.Color != testColors["B = bar"] {
		t.Fatalf("color = %q, want %q", st.Color, testColors["B = bar"])
	}
	if st.Weight != 6 || st.Opacity != 1 {
		t.Fatalf("weight/opacity = %v/%v, want emphasized", st.Weight, st.Opacity)
	}
}

func TestStyleLineFilteredOut(t *testing.T) {
	st := StyleLine("A = foo", "B = bar", testColors)
	if st.Color != FilteredColor {
		t.Fatalf("color = %q, want %q", st.Color, FilteredColor)
	}
	if st.Weight != 1 || st.Opacity != 0.25 {
		t.Fatalf("weight/opacity = %v/%v, want dimmed", st.Weight, st.Opacity)
	}
}

func TestStyleLineUnknownCategory(t *testing.T) {
	// No color map entry: the fixed fallback base color, then the
	// show-all rules apply.
	st := StyleLine("Z = unknown", "", testColors)
	if st.Color != FallbackColor {
		t.Fatalf("color = %q, want %q", st.Color, FallbackColor)
	}
	if st.Weight != 3 {
		t.Fatalf("weight = %v, want default", st.Weight)
	}
}

func TestStylePoint(t *testing.T) {
	if st := StylePoint("A = foo", "", testColors); st.Radius != 6 || st.Color != testColors["A = foo"] {
		t.Fatalf("show all: got %+v", st)
	}
	if st := StylePoint("A = foo", "A = foo", testColors); st.Radius != 9 || st.Opacity != 1 {
		t.Fatalf("selected: got %+v", st)
	}
	if st := StylePoint("A = foo", "B = bar", testColors); st.Radius != 3 || st.Color != FilteredColor {
		t.Fatalf("filtered: got %+v", st)
	}
}
