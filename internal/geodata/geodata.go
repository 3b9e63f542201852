// Package geodata loads the two pre-generated GeoJSON datasets (street
// segments and address points) and derives the category set and bounds
// the map view works from.
package geodata

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ZoneProperty is the feature property carrying the raw zone name.
const ZoneProperty = "zone"

// Dataset holds both feature collections plus the derived category set.
// A Dataset is never mutated after loading; filtering and styling work
// on copies.
type Dataset struct {
	Segments *geojson.FeatureCollection
	Points   *geojson.FeatureCollection

	// Categories is the sorted, duplicate-free list of raw zone names
	// present in either collection.
	Categories []string
}

// HasCategory reports whether name is a member of the category set.
func (d *Dataset) HasCategory(name string) bool {
	for _, c := range d.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Bound returns the union bound of every feature matching the given
// zone, across both collections. An empty zone matches everything. The
// second return is false when no matching feature has a geometry, in
// which case the caller leaves the viewport alone.
func (d *Dataset) Bound(zone string) (orb.Bound, bool) {
	var bound orb.Bound
	found := false

	extend := func(f *geojson.Feature) {
		if f.Geometry == nil {
			return
		}
		b := f.Geometry.Bound()
		if found {
			bound = bound.Union(b)
		} else {
			bound = b
			found = true
		}
	}

	for _, f := range d.Segments.Features {
		if matches(f, zone) {
			extend(f)
		}
	}
	for _, f := range d.Points.Features {
		if matches(f, zone) {
			extend(f)
		}
	}
	return bound, found
}

// ZoneCount holds per-zone feature counts.
type ZoneCount struct {
	Segments int
	Points   int
}

// CountByZone tallies segment and point features per raw zone name.
// Features without a zone are not counted.
func (d *Dataset) CountByZone() map[string]ZoneCount {
	counts := make(map[string]ZoneCount, len(d.Categories))
	for _, f := range d.Segments.Features {
		if name := zoneOf(f); name != "" {
			c := counts[name]
			c.Segments++
			counts[name] = c
		}
	}
	for _, f := range d.Points.Features {
		if name := zoneOf(f); name != "" {
			c := counts[name]
			c.Points++
			counts[name] = c
		}
	}
	return counts
}

func zoneOf(f *geojson.Feature) string {
	name, _ := f.Properties[ZoneProperty].(string)
	return name
}

func matches(f *geojson.Feature, zone string) bool {
	return zone == "" || zoneOf(f) == zone
}
