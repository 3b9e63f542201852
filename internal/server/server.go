// Package server wires the parkmap HTTP surface: the Huma REST API, the
// Datastar viewer handlers, static files and the raw dataset downloads.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/paulmach/orb/geojson"

	"parkmap/internal/api"
	"parkmap/internal/api/viewer"
	"parkmap/internal/db"
	"parkmap/internal/metrics"
	"parkmap/internal/service"
	"parkmap/internal/templates"
)

// Config holds the server configuration.
type Config struct {
	Host         string
	Port         string
	DataDir      string // directory holding the two GeoJSON datasets
	WebDir       string // path to web/ directory for static files and templates
	SegmentsFile string // segments dataset file name within DataDir
	PointsFile   string // points dataset file name within DataDir
}

// Server is the parkmap HTTP server.
type Server struct {
	config   Config
	mux      *http.ServeMux
	humaAPI  huma.API
	services *api.Services
	renderer *templates.Renderer
}

// New creates a new parkmap server and loads the datasets.
func New(cfg Config) *Server {
	mux := http.NewServeMux()

	humaConfig := huma.DefaultConfig("parkmap API", "1.0.0")
	humaConfig.Info.Description = "Parking-zone map service: filtered street segments and address points with per-zone styling."
	humaConfig.Servers = []*huma.Server{
		{URL: fmt.Sprintf("http://%s:%s", cfg.Host, cfg.Port), Description: "Local server"},
	}
	humaAPI := humago.New(mux, humaConfig)

	services := &api.Services{
		View: service.NewViewService(cfg.DataDir, cfg.SegmentsFile, cfg.PointsFile),
	}

	var renderer *templates.Renderer
	if cfg.WebDir != "" {
		fragmentsDir := filepath.Join(cfg.WebDir, "templates", "fragments")
		if r, err := templates.New(fragmentsDir); err == nil {
			renderer = r
		} else {
			log.Printf("fragment templates unavailable: %v", err)
		}
	}

	// Statistics database is optional; everything keeps working from
	// the in-memory counts when it cannot be opened.
	if conn, err := db.Get(db.Config{DataDir: cfg.DataDir, DBName: "parkmap"}); err == nil {
		services.DB = conn
	} else {
		log.Printf("duckdb unavailable: %v", err)
	}

	s := &Server{
		config:   cfg,
		mux:      mux,
		humaAPI:  humaAPI,
		services: services,
		renderer: renderer,
	}

	s.routes()

	if services.DB != nil {
		s.refreshStats()
		go s.watchReloads()
	}
	return s
}

// ServeHTTP implements http.Handler, counting every request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.mux.ServeHTTP(w, r)
	metrics.RequestsTotal.WithLabelValues(r.URL.Path).Inc()
	metrics.RequestDurationMs.Observe(float64(time.Since(start).Milliseconds()))
}

// OpenAPI returns the generated OpenAPI document.
func (s *Server) OpenAPI() *huma.OpenAPI {
	return s.humaAPI.OpenAPI()
}

// Close closes server resources.
func (s *Server) Close() error {
	return db.Close()
}

func (s *Server) routes() {
	api.RegisterRoutes(s.humaAPI, s.services)

	if s.renderer != nil {
		viewer.NewFilterHandler(s.services.View, s.renderer).RegisterRoutes(s.humaAPI)
	}

	// Styled GeoJSON stays on the plain mux: orb's FeatureCollection
	// marshals itself and has no OpenAPI schema.
	s.mux.HandleFunc("/api/v1/features/segments", s.handleSegments)
	s.mux.HandleFunc("/api/v1/features/points", s.handlePoints)

	s.mux.HandleFunc("/api/v1/query", s.handleQuery)
	s.mux.HandleFunc("/api/v1/tables", s.handleTables)

	s.mux.Handle("/metrics", metrics.Handler())

	if s.config.WebDir != "" {
		staticDir := filepath.Join(s.config.WebDir, "static")
		s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	}
	s.mux.Handle("/data/", http.StripPrefix("/data/", s.handleData(s.config.DataDir)))

	s.mux.HandleFunc("/viewer", s.handleViewer)
	s.mux.HandleFunc("/", s.handleRoot)
}

// refreshStats pushes the current per-zone counts into DuckDB.
func (s *Server) refreshStats() {
	if err := db.RefreshZoneStats(s.services.DB, s.services.View.Stats()); err != nil {
		log.Printf("refreshing zone stats: %v", err)
	}
}

// watchReloads re-populates the stats table whenever the dataset is
// swapped.
func (s *Server) watchReloads() {
	ch := service.DefaultBus.Subscribe()
	defer service.DefaultBus.Unsubscribe(ch)
	for range ch {
		s.refreshStats()
	}
}

func (s *Server) handleSegments(w http.ResponseWriter, r *http.Request) {
	s.writeFeatures(w, r, s.services.View.Segments)
}

func (s *Server) handlePoints(w http.ResponseWriter, r *http.Request) {
	s.writeFeatures(w, r, s.services.View.Points)
}

func (s *Server) writeFeatures(w http.ResponseWriter, r *http.Request, styled func(string) (*geojson.FeatureCollection, error)) {
	zone := r.URL.Query().Get("zone")
	if zone != "" && !s.services.View.HasZone(zone) {
		http.Error(w, "unknown zone: "+zone, http.StatusBadRequest)
		return
	}

	fc, err := styled(zone)
	if err != nil {
		log.Printf("features: %v", err)
		http.Error(w, "datasets not loaded: "+err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	json.NewEncoder(w).Encode(fc)
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.services.DB == nil {
		http.Error(w, "Database not available", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	rows, err := s.services.DB.Query(req.Query)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var results []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			continue
		}

		row := make(map[string]interface{})
		for i, col := range columns {
			row[col] = values[i]
		}
		results = append(results, row)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"columns": columns,
		"rows":    results,
		"count":   len(results),
	})
}

func (s *Server) handleTables(w http.ResponseWriter, r *http.Request) {
	if s.services.DB == nil {
		http.Error(w, "Database not available", http.StatusServiceUnavailable)
		return
	}

	rows, err := s.services.DB.Query("SHOW TABLES")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err == nil {
			tables = append(tables, name)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"tables": tables})
}

// handleData serves the raw GeoJSON files with CORS headers so other
// tools can fetch them directly.
func (s *Server) handleData(dataDir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		http.FileServer(http.Dir(dataDir)).ServeHTTP(w, r)
	})
}

func (s *Server) handleViewer(w http.ResponseWriter, r *http.Request) {
	templatePath := filepath.Join(s.config.WebDir, "templates", "viewer.html")
	http.ServeFile(w, r, templatePath)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"service": "parkmap",
		"status":  "running",
	})
}
