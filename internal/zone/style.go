package zone

// Neutral colors used when a feature is filtered out or its zone has no
// assigned color.
const (
	FilteredColor = "#999999"
	FallbackColor = "#777777"
)

// LineStyle describes the rendering of one street-segment polyline.
type LineStyle struct {
	Color   string  `json:"color"`
	Weight  float64 `json:"weight"`
	Opacity float64 `json:"opacity"`
}

// PointStyle describes the rendering of one address-point marker.
type PointStyle struct {
	Color   string  `json:"color"`
	Radius  float64 `json:"radius"`
	Weight  float64 `json:"weight"`
	Opacity float64 `json:"opacity"`
}

// StyleLine derives the style for a segment in the given zone under the
// current selection. An empty selection shows every zone in its own
// color; a non-empty selection emphasizes matching segments and grays
// out the rest.
func StyleLine(category, selected string, colors map[string]string) LineStyle {
	color, ok := colors[category]
	if !ok {
		color = FallbackColor
	}
	switch {
	case selected == "":
		return LineStyle{Color: color, Weight: 3, Opacity: 0.8}
	case selected == category:
		return LineStyle{Color: color, Weight: 6, Opacity: 1}
	default:
		return LineStyle{Color: FilteredColor, Weight: 1, Opacity: 0.25}
	}
}

// StylePoint is the point-marker counterpart of StyleLine, with the
// marker radius growing for matches and shrinking for filtered points.
func StylePoint(category, selected string, colors map[string]string) PointStyle {
	color, ok := colors[category]
	if !ok {
		color = FallbackColor
	}
	switch {
	case selected == "":
		return PointStyle{Color: color, Radius: 6, Weight: 1, Opacity: 0.9}
	case selected == category:
		return PointStyle{Color: color, Radius: 9, Weight: 2, Opacity: 1}
	default:
		return PointStyle{Color: FilteredColor, Radius: 3, Weight: 1, Opacity: 0.25}
	}
}
