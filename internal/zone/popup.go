package zone

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"
)

// Placeholder shown for missing optional property values.
const placeholder = "–"

var segmentPopup = template.Must(template.New("segment-popup").Parse(
	`<div class="popup"><strong>{{.Title}}</strong><br>Code: {{.Code}}<br>Area: {{.Area}}</div>`))

var pointPopup = template.Must(template.New("point-popup").Parse(
	`<div class="popup"><strong>{{.Title}}</strong><br>{{.Street}} {{.Number}}<br>Type: {{.Type}}</div>`))

// SegmentPopup renders the popup HTML for a street-segment feature:
// the zone display name, the letter code and the area code.
func SegmentPopup(props geojson.Properties) string {
	var buf bytes.Buffer
	segmentPopup.Execute(&buf, struct {
		Title, Code, Area string
	}{
		Title: DisplayName(propString(props, "zone")),
		Code:  propString(props, "code"),
		Area:  propString(props, "area"),
	})
	return buf.String()
}

// PointPopup renders the popup HTML for an address-point feature: the
// zone display name, street plus house number, and the object type.
func PointPopup(props geojson.Properties) string {
	var buf bytes.Buffer
	pointPopup.Execute(&buf, struct {
		Title, Street, Number, Type string
	}{
		Title:  DisplayName(propString(props, "zone")),
		Street: propString(props, "street"),
		Number: propString(props, "housenumber"),
		Type:   propString(props, "type"),
	})
	return buf.String()
}

// propString stringifies a property value, falling back to a fixed
// placeholder for anything missing or blank. House numbers arrive as
// JSON numbers in some exports.
func propString(props geojson.Properties, key string) string {
	switch v := props[key].(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	}
	return placeholder
}
