package geodata

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/paulmach/orb/geojson"
)

// Load reads both collections concurrently and joins before deriving
// anything. It fails as a whole if either file is unreadable or not
// valid GeoJSON; there is no partial dataset.
func Load(segmentsPath, pointsPath string) (*Dataset, error) {
	var (
		wg               sync.WaitGroup
		segments, points *geojson.FeatureCollection
		segErr, ptErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		segments, segErr = loadCollection(segmentsPath)
	}()
	go func() {
		defer wg.Done()
		points, ptErr = loadCollection(pointsPath)
	}()
	wg.Wait()

	if segErr != nil {
		return nil, fmt.Errorf("loading segments: %w", segErr)
	}
	if ptErr != nil {
		return nil, fmt.Errorf("loading points: %w", ptErr)
	}

	return &Dataset{
		Segments:   segments,
		Points:     points,
		Categories: categorySet(segments, points),
	}, nil
}

func loadCollection(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return fc, nil
}

// categorySet scans every feature's zone property in both collections,
// skipping missing or empty values, and returns the sorted distinct
// names.
func categorySet(fcs ...*geojson.FeatureCollection) []string {
	seen := make(map[string]struct{})
	for _, fc := range fcs {
		for _, f := range fc.Features {
			if name := zoneOf(f); name != "" {
				seen[name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
