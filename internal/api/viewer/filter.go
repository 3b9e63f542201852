package viewer

import (
	"bytes"
	"context"
	"log"

	"github.com/danielgtaylor/huma/v2"

	"parkmap/internal/metrics"
	"parkmap/internal/service"
	"parkmap/internal/templates"
)

// FilterHandler serves the zone filter controls and reacts to
// selections.
type FilterHandler struct {
	view     *service.ViewService
	renderer *templates.Renderer
}

// NewFilterHandler creates a new filter handler.
func NewFilterHandler(view *service.ViewService, renderer *templates.Renderer) *FilterHandler {
	return &FilterHandler{view: view, renderer: renderer}
}

func (h *FilterHandler) RegisterRoutes(api huma.API) {
	huma.Get(api, "/api/v1/viewer/filter", h.LoadFilter, huma.OperationTags("viewer"))
	huma.Post(api, "/api/v1/viewer/select", h.SelectZone, huma.OperationTags("viewer"))
	huma.Get(api, "/api/v1/viewer/events", h.Events, huma.OperationTags("viewer"))
}

// LoadFilter renders the dropdown and legend into the freshly loaded
// page. A failed dataset load surfaces here as a blocking error signal
// and the view stays empty.
func (h *FilterHandler) LoadFilter(ctx context.Context, input *EmptyInput) (*huma.StreamResponse, error) {
	return &huma.StreamResponse{
		Body: func(humaCtx huma.Context) {
			sse := NewSSE(humaCtx)
			if err := h.view.Err(); err != nil {
				log.Printf("viewer: datasets unavailable: %v", err)
				sse.Error("Could not load map data: " + err.Error())
				return
			}
			sse.Patch(h.renderOptions(), "#zone-select")
			sse.Patch(h.renderLegend(""), "#zone-legend")
		},
	}, nil
}

// SelectZone handles a dropdown change: it re-renders the legend with
// the selection emphasized and dispatches a zone-changed event carrying
// the fit bounds. No bounds are attached when the selection is "all"
// (the viewport keeps its last fit) or when no feature matches.
func (h *FilterHandler) SelectZone(ctx context.Context, input *SignalsInput) (*huma.StreamResponse, error) {
	signals, err := input.Parse()
	if err != nil {
		return nil, err
	}
	selected := signals.String("zone")
	if selected != "" && !h.view.HasZone(selected) {
		return nil, huma.Error400BadRequest("unknown zone: " + selected)
	}

	return &huma.StreamResponse{
		Body: func(humaCtx huma.Context) {
			sse := NewSSE(humaCtx)

			label := selected
			if label == "" {
				label = "all"
			}
			metrics.ZoneSelectionsTotal.WithLabelValues(label).Inc()

			sse.Patch(h.renderLegend(selected), "#zone-legend")

			detail := map[string]any{"zone": selected}
			if selected != "" {
				if b, ok := h.view.FitBound(selected); ok {
					detail["bounds"] = [][]float64{
						{b.Min[0], b.Min[1]},
						{b.Max[0], b.Max[1]},
					}
				}
			}
			sse.Event("zone-changed", detail)
		},
	}, nil
}

// Events streams dataset-change notifications so open pages re-render
// their controls after a reload.
func (h *FilterHandler) Events(ctx context.Context, input *EmptyInput) (*huma.StreamResponse, error) {
	return &huma.StreamResponse{
		Body: func(humaCtx huma.Context) {
			sse := NewSSE(humaCtx)
			ch := service.DefaultBus.Subscribe()
			defer service.DefaultBus.Unsubscribe(ch)

			for {
				select {
				case <-ctx.Done():
					return
				case ev := <-ch:
					sse.Patch(h.renderOptions(), "#zone-select")
					sse.Patch(h.renderLegend(""), "#zone-legend")
					sse.Signals(map[string]any{"zone": ""})
					sse.Event("dataset-changed", map[string]any{
						"action": ev.Action, "categories": ev.Categories,
					})
				}
			}
		},
	}, nil
}

// OptionData is the select-option fragment payload.
type OptionData struct {
	Value string
	Label string
}

// LegendItemData is the legend-item fragment payload.
type LegendItemData struct {
	Name     string
	Display  string
	Color    string
	Selected bool
}

func (h *FilterHandler) renderOptions() string {
	var buf bytes.Buffer
	h.renderer.RenderToBuffer(&buf, "select-option", OptionData{Value: "", Label: "– all –"})
	for _, c := range h.view.Categories() {
		h.renderer.RenderToBuffer(&buf, "select-option", OptionData{Value: c.Name, Label: c.Display})
	}
	return buf.String()
}

func (h *FilterHandler) renderLegend(selected string) string {
	categories := h.view.Categories()
	if len(categories) == 0 {
		s, _ := h.renderer.Render("empty-state", map[string]string{
			"Title": "No zones", "Message": "The loaded datasets contain no parking zones",
		})
		return s
	}

	var buf bytes.Buffer
	for _, c := range categories {
		h.renderer.RenderToBuffer(&buf, "legend-item", LegendItemData{
			Name:     c.Name,
			Display:  c.Display,
			Color:    c.Color,
			Selected: selected == c.Name,
		})
	}
	return buf.String()
}
