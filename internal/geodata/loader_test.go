package geodata

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const segmentsJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[8.0, 50.0], [8.1, 50.1]]},
     "properties": {"zone": "A = foo", "code": "A", "area": "1"}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[8.3, 50.3], [8.4, 50.4]]},
     "properties": {"zone": "B = bar", "code": "B", "area": "2"}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[8.2, 50.2], [8.25, 50.25]]},
     "properties": {"zone": "A = foo", "code": "A", "area": "1"}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[8.9, 50.9], [8.95, 50.95]]},
     "properties": {"zone": ""}}
  ]
}`

const pointsJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [8.05, 50.05]},
     "properties": {"zone": "A = foo", "street": "Hauptstraße", "housenumber": 3, "type": "Wohnhaus"}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [8.5, 50.45]},
     "properties": {"zone": "B = bar", "street": "Poststraße", "housenumber": 17, "type": "Geschäft"}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [8.6, 50.6]},
     "properties": {"street": "Ohne Zone"}}
  ]
}`

func writeDataset(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	segPath := filepath.Join(dir, "segments.geojson")
	ptPath := filepath.Join(dir, "points.geojson")
	if err := os.WriteFile(segPath, []byte(segmentsJSON), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ptPath, []byte(pointsJSON), 0644); err != nil {
		t.Fatal(err)
	}
	return segPath, ptPath
}

func TestLoad(t *testing.T) {
	segPath, ptPath := writeDataset(t)
	ds, err := Load(segPath, ptPath)
	if err != nil {
		t.Fatal(err)
	}

	if len(ds.Segments.Features) != 4 {
		t.Fatalf("segments = %d, want 4", len(ds.Segments.Features))
	}
	if len(ds.Points.Features) != 3 {
		t.Fatalf("points = %d, want 3", len(ds.Points.Features))
	}

	// Duplicates collapsed, empty/missing zones skipped, sorted.
	want := []string{"A = foo", "B = bar"}
	if !reflect.DeepEqual(ds.Categories, want) {
		t.Fatalf("categories = %v, want %v", ds.Categories, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	segPath, _ := writeDataset(t)
	if _, err := Load(segPath, filepath.Join(t.TempDir(), "nope.geojson")); err == nil {
		t.Fatal("want error for missing points file")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	_, ptPath := writeDataset(t)
	bad := filepath.Join(t.TempDir(), "segments.geojson")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad, ptPath); err == nil {
		t.Fatal("want error for invalid JSON")
	}
}

func TestBoundAll(t *testing.T) {
	segPath, ptPath := writeDataset(t)
	ds, err := Load(segPath, ptPath)
	if err != nil {
		t.Fatal(err)
	}

	bound, ok := ds.Bound("")
	if !ok {
		t.Fatal("want bound for full dataset")
	}
	want := orb.Bound{Min: orb.Point{8.0, 50.0}, Max: orb.Point{8.95, 50.95}}
	if bound != want {
		t.Fatalf("bound = %v, want %v", bound, want)
	}
}

func TestBoundZone(t *testing.T) {
	segPath, ptPath := writeDataset(t)
	ds, err := Load(segPath, ptPath)
	if err != nil {
		t.Fatal(err)
	}

	bound, ok := ds.Bound("B = bar")
	if !ok {
		t.Fatal("want bound for B = bar")
	}
	want := orb.Bound{Min: orb.Point{8.3, 50.3}, Max: orb.Point{8.5, 50.45}}
	if bound != want {
		t.Fatalf("bound = %v, want %v", bound, want)
	}
}

func TestBoundNoMatchingGeometry(t *testing.T) {
	segments := geojson.NewFeatureCollection()
	points := geojson.NewFeatureCollection()
	points.Append(&geojson.Feature{
		Type:       "Feature",
		Properties: geojson.Properties{ZoneProperty: "C = closed"},
	})
	ds := &Dataset{Segments: segments, Points: points, Categories: []string{"C = closed"}}

	if _, ok := ds.Bound("C = closed"); ok {
		t.Fatal("want no bound for zone without geometry")
	}
}

func TestCountByZone(t *testing.T) {
	segPath, ptPath := writeDataset(t)
	ds, err := Load(segPath, ptPath)
	if err != nil {
		t.Fatal(err)
	}

	counts := ds.CountByZone()
	if c := counts["A = foo"]; c.Segments != 2 || c.Points != 1 {
		t.Fatalf("A = foo counts = %+v", c)
	}
	if c := counts["B = bar"]; c.Segments != 1 || c.Points != 1 {
		t.Fatalf("B = bar counts = %+v", c)
	}
}

func TestHasCategory(t *testing.T) {
	segPath, ptPath := writeDataset(t)
	ds, err := Load(segPath, ptPath)
	if err != nil {
		t.Fatal(err)
	}

	if !ds.HasCategory("A = foo") {
		t.Fatal("A = foo should be present")
	}
	if ds.HasCategory("Z = nope") {
		t.Fatal("Z = nope should be absent")
	}
}
