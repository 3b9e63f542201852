package viewer

import (
	"encoding/json"

	"github.com/danielgtaylor/huma/v2"
)

// Signals provides access to Datastar signal values. Datastar sends all
// signals as a flat JSON object in the request body.
type Signals map[string]any

// String returns a string signal value, or empty string if not found.
func (s Signals) String(key string) string {
	if v, ok := s[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

// SignalsInput captures the raw request body of a Datastar request.
type SignalsInput struct {
	RawBody []byte
}

// Parse parses the signals, returning a Huma 400 error on bad input.
func (i *SignalsInput) Parse() (Signals, error) {
	var signals Signals
	if err := json.Unmarshal(i.RawBody, &signals); err != nil {
		return nil, huma.Error400BadRequest("Invalid request data: " + err.Error())
	}
	return signals, nil
}
