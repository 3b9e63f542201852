// Package api defines the Huma API routes and handlers.
package api

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"parkmap/internal/db"
	"parkmap/internal/service"
)

// Services holds the dependencies for API handlers.
type Services struct {
	View *service.ViewService
	DB   *sql.DB // nil when DuckDB is unavailable
}

// Types

type ZoneQuery struct {
	Zone string `query:"zone" doc:"Raw zone name to filter by; empty shows all zones" example:"E = alter Friedhof"`
}

type CategoriesOutput struct {
	Body []service.CategoryInfo
}

type BoundsBody struct {
	West  float64 `json:"west" doc:"Western longitude of the fit bound"`
	South float64 `json:"south" doc:"Southern latitude of the fit bound"`
	East  float64 `json:"east" doc:"Eastern longitude of the fit bound"`
	North float64 `json:"north" doc:"Northern latitude of the fit bound"`
}

type StatsOutput struct {
	Body []service.ZoneStat
}

type MessageBody struct {
	Message string `json:"message" doc:"Result message"`
}

type HealthBody struct {
	Status  string `json:"status" doc:"Health status" example:"ok"`
	Version string `json:"version" doc:"API version" example:"1.0.0"`
}

type InfoBody struct {
	Name     string `json:"name" doc:"Service name" example:"parkmap"`
	Version  string `json:"version" doc:"Service version"`
	Datasets string `json:"datasets" doc:"Dataset status line"`
	DB       bool   `json:"db" doc:"Whether the statistics database is available"`
}

// Handler holds the REST API handlers.
type Handler struct {
	svc *Services
}

// RegisterRoutes registers all REST routes on the given API.
func RegisterRoutes(humaAPI huma.API, svc *Services) {
	h := &Handler{svc: svc}

	huma.Get(humaAPI, "/health", h.GetHealth, huma.OperationTags("health"))
	huma.Get(humaAPI, "/api/v1/info", h.GetInfo, huma.OperationTags("info"))
	huma.Get(humaAPI, "/api/v1/categories", h.GetCategories, huma.OperationTags("zones"))
	huma.Get(humaAPI, "/api/v1/bounds", h.GetBounds, huma.OperationTags("zones"))
	huma.Get(humaAPI, "/api/v1/stats", h.GetStats, huma.OperationTags("zones"))
	huma.Post(humaAPI, "/api/v1/reload", h.Reload, huma.OperationTags("admin"))
}

// Handlers

func (h *Handler) GetHealth(ctx context.Context, input *struct{}) (*struct{ Body HealthBody }, error) {
	return &struct{ Body HealthBody }{Body: HealthBody{Status: "ok", Version: "1.0.0"}}, nil
}

func (h *Handler) GetInfo(ctx context.Context, input *struct{}) (*struct{ Body InfoBody }, error) {
	return &struct{ Body InfoBody }{Body: InfoBody{
		Name:     "parkmap",
		Version:  "1.0.0",
		Datasets: h.svc.View.Describe(),
		DB:       h.svc.DB != nil,
	}}, nil
}

func (h *Handler) GetCategories(ctx context.Context, input *struct{}) (*CategoriesOutput, error) {
	if err := h.svc.View.Err(); err != nil {
		return nil, huma.NewError(http.StatusServiceUnavailable, "datasets not loaded: "+err.Error())
	}
	return &CategoriesOutput{Body: h.svc.View.Categories()}, nil
}

func (h *Handler) GetBounds(ctx context.Context, input *ZoneQuery) (*struct{ Body BoundsBody }, error) {
	if err := h.svc.View.Err(); err != nil {
		return nil, huma.NewError(http.StatusServiceUnavailable, "datasets not loaded: "+err.Error())
	}
	if input.Zone != "" && !h.svc.View.HasZone(input.Zone) {
		return nil, huma.Error400BadRequest("unknown zone: " + input.Zone)
	}

	bound, ok := h.svc.View.FitBound(input.Zone)
	if !ok {
		return nil, huma.Error404NotFound("no features match the selected zone")
	}
	return &struct{ Body BoundsBody }{Body: BoundsBody{
		West:  bound.Min[0],
		South: bound.Min[1],
		East:  bound.Max[0],
		North: bound.Max[1],
	}}, nil
}

func (h *Handler) GetStats(ctx context.Context, input *struct{}) (*StatsOutput, error) {
	if err := h.svc.View.Err(); err != nil {
		return nil, huma.NewError(http.StatusServiceUnavailable, "datasets not loaded: "+err.Error())
	}
	if h.svc.DB != nil {
		if stats, err := db.QueryZoneStats(h.svc.DB); err == nil {
			return &StatsOutput{Body: stats}, nil
		}
	}
	// DuckDB missing or stale, fall back to the in-memory counts.
	return &StatsOutput{Body: h.svc.View.Stats()}, nil
}

func (h *Handler) Reload(ctx context.Context, input *struct{}) (*struct{ Body MessageBody }, error) {
	if err := h.svc.View.Reload(); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "reload failed: "+err.Error())
	}
	return &struct{ Body MessageBody }{Body: MessageBody{Message: "Datasets reloaded"}}, nil
}
