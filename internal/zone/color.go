package zone

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Saturation and lightness are fixed; only the hue varies per zone.
const (
	colorSaturation = 0.65
	colorLightness  = 0.45
)

// ColorMap assigns each category a color by spreading hues evenly around
// the hue circle: category i of n gets hue round(i*360/n). Input order
// determines hue order, so the sorted category set always yields the
// same mapping.
func ColorMap(categories []string) map[string]string {
	colors := make(map[string]string, len(categories))
	n := float64(len(categories))
	for i, name := range categories {
		hue := math.Round(float64(i) * 360 / n)
		colors[name] = colorful.Hsl(hue, colorSaturation, colorLightness).Hex()
	}
	return colors
}
