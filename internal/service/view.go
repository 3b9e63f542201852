package service

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"parkmap/internal/geodata"
	"parkmap/internal/metrics"
	"parkmap/internal/zone"
)

// ViewService owns the loaded datasets and derives everything the map
// view needs: category set, color map, styled feature collections and
// fit bounds. All derivations are pure functions of (dataset, selection);
// the selection itself lives in the browser and arrives as an argument.
type ViewService struct {
	segmentsPath string
	pointsPath   string

	mu      sync.RWMutex
	ds      *geodata.Dataset
	colors  map[string]string
	loadErr error
}

// NewViewService loads both datasets from dataDir. A load failure is
// retained and reported by every data accessor instead of aborting the
// server; the viewer surfaces it to the user.
func NewViewService(dataDir, segmentsFile, pointsFile string) *ViewService {
	s := &ViewService{
		segmentsPath: filepath.Join(dataDir, segmentsFile),
		pointsPath:   filepath.Join(dataDir, pointsFile),
	}
	if err := s.Reload(); err != nil {
		log.Printf("geodata load failed: %v", err)
	}
	return s
}

// Reload re-reads both collections and swaps the dataset atomically.
// On failure the previous dataset is discarded and the error retained,
// matching the load-once semantics of the view: either both files are
// good or there is no data.
func (s *ViewService) Reload() error {
	ds, err := geodata.Load(s.segmentsPath, s.pointsPath)

	s.mu.Lock()
	if err != nil {
		s.ds = nil
		s.colors = nil
		s.loadErr = err
		s.mu.Unlock()
		metrics.DatasetLoadFailuresTotal.Inc()
		return err
	}
	action := "reloaded"
	if s.ds == nil {
		action = "loaded"
	}
	s.ds = ds
	s.colors = zone.ColorMap(ds.Categories)
	s.loadErr = nil
	s.mu.Unlock()

	metrics.DatasetLoadsTotal.Inc()
	DefaultBus.Publish(Event{Action: action, Categories: len(ds.Categories)})
	return nil
}

// Err returns the retained load error, if any.
func (s *ViewService) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// HasZone reports whether name is a member of the current category set.
func (s *ViewService) HasZone(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds != nil && s.ds.HasCategory(name)
}

// Categories returns the sorted category set with display names and
// assigned colors.
func (s *ViewService) Categories() []CategoryInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ds == nil {
		return nil
	}

	infos := make([]CategoryInfo, 0, len(s.ds.Categories))
	for _, name := range s.ds.Categories {
		infos = append(infos, CategoryInfo{
			Name:    name,
			Display: zone.DisplayName(name),
			Color:   s.colors[name],
		})
	}
	return infos
}

// Segments returns the segment collection styled for the given
// selection, with popup HTML attached per feature.
func (s *ViewService) Segments(selected string) (*geojson.FeatureCollection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}

	styled := geojson.NewFeatureCollection()
	for _, f := range s.ds.Segments.Features {
		st := zone.StyleLine(zoneName(f), selected, s.colors)
		clone := cloneFeature(f)
		clone.Properties["color"] = st.Color
		clone.Properties["weight"] = st.Weight
		clone.Properties["opacity"] = st.Opacity
		clone.Properties["popup"] = zone.SegmentPopup(f.Properties)
		styled.Append(clone)
	}
	return styled, nil
}

// Points returns the point collection styled for the given selection,
// with popup HTML attached per feature.
func (s *ViewService) Points(selected string) (*geojson.FeatureCollection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}

	styled := geojson.NewFeatureCollection()
	for _, f := range s.ds.Points.Features {
		st := zone.StylePoint(zoneName(f), selected, s.colors)
		clone := cloneFeature(f)
		clone.Properties["color"] = st.Color
		clone.Properties["radius"] = st.Radius
		clone.Properties["weight"] = st.Weight
		clone.Properties["opacity"] = st.Opacity
		clone.Properties["popup"] = zone.PointPopup(f.Properties)
		styled.Append(clone)
	}
	return styled, nil
}

// FitBound returns the union bound of the features matching the
// selection across both collections. ok is false when nothing matches;
// the viewport then stays where it is.
func (s *ViewService) FitBound(selected string) (bound orb.Bound, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ds == nil {
		return orb.Bound{}, false
	}
	return s.ds.Bound(selected)
}

// Stats returns per-zone feature counts, sorted by zone name.
func (s *ViewService) Stats() []ZoneStat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ds == nil {
		return nil
	}

	counts := s.ds.CountByZone()
	stats := make([]ZoneStat, 0, len(counts))
	for name, c := range counts {
		stats = append(stats, ZoneStat{Zone: name, Segments: c.Segments, Points: c.Points})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Zone < stats[j].Zone })
	return stats
}

// Describe returns a short status line for the info endpoint.
func (s *ViewService) Describe() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loadErr != nil {
		return fmt.Sprintf("load failed: %v", s.loadErr)
	}
	return fmt.Sprintf("%d segments, %d points, %d zones",
		len(s.ds.Segments.Features), len(s.ds.Points.Features), len(s.ds.Categories))
}

// cloneFeature copies a feature's properties so styling never touches
// the loaded dataset. The geometry is shared; nothing downstream
// mutates it.
func cloneFeature(f *geojson.Feature) *geojson.Feature {
	clone := &geojson.Feature{
		Type:       f.Type,
		Geometry:   f.Geometry,
		Properties: make(geojson.Properties, len(f.Properties)+5),
	}
	for k, v := range f.Properties {
		clone.Properties[k] = v
	}
	return clone
}

func zoneName(f *geojson.Feature) string {
	name, _ := f.Properties[geodata.ZoneProperty].(string)
	return name
}
