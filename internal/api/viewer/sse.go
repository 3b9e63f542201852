// Package viewer contains the Datastar SSE handlers driving the map
// page: the zone dropdown, the legend and the zone-changed events the
// front end listens for.
package viewer

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/starfederation/datastar-go/datastar"
)

// EmptyInput is a shared empty input struct for handlers with no
// parameters.
type EmptyInput struct{}

// SSEContext wraps the Datastar SSE generator with helper methods.
type SSEContext struct {
	SSE *datastar.ServerSentEventGenerator
}

// NewSSE creates an SSE context from a Huma streaming context.
func NewSSE(humaCtx huma.Context) *SSEContext {
	r, w := humago.Unwrap(humaCtx)
	return &SSEContext{SSE: datastar.NewSSE(w, r)}
}

// Patch sends HTML to replace the inner content at a CSS selector.
func (c *SSEContext) Patch(html, selector string) {
	c.SSE.PatchElements(html, datastar.WithSelector(selector), datastar.WithModeInner())
}

// Error sends an error signal; the page shows it as a blocking banner.
func (c *SSEContext) Error(msg string) {
	c.SSE.MarshalAndPatchSignals(map[string]any{"error": msg})
}

// Signals sends arbitrary signals to the client.
func (c *SSEContext) Signals(signals map[string]any) {
	c.SSE.MarshalAndPatchSignals(signals)
}

// Event dispatches a custom DOM event with the given detail payload.
func (c *SSEContext) Event(name string, detail map[string]any) {
	c.SSE.DispatchCustomEvent(name, detail)
}
