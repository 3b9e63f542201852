package zone

import (
	"strings"
	"testing"

	"github.com/paulmach/orb/geojson"
)

func TestSegmentPopup(t *testing.T) {
	html := SegmentPopup(geojson.Properties{
		"zone": "E = alter Friedhof",
		"code": "E",
		"area": "12",
	})
	for _, want := range []string{"E Alter Friedhof", "Code: E", "Area: 12"} {
		if !strings.Contains(html, want) {
			t.Fatalf("popup %q missing %q", html, want)
		}
	}
}

func TestSegmentPopupMissingValues(t *testing.T) {
	html := SegmentPopup(geojson.Properties{"zone": "E = alter Friedhof"})
	if !strings.Contains(html, "Code: "+placeholder) {
		t.Fatalf("popup %q missing placeholder for code", html)
	}
}

func TestPointPopup(t *testing.T) {
	html := PointPopup(geojson.Properties{
		"zone":        "B = bahnhof",
		"street":      "Poststraße",
		"housenumber": float64(17), // JSON numbers arrive as float64
		"type":        "Wohnhaus",
	})
	for _, want := range []string{"B Bahnhof", "Poststraße 17", "Type: Wohnhaus"} {
		if !strings.Contains(html, want) {
			t.Fatalf("popup %q missing %q", html, want)
		}
	}
}
