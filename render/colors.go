package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lensing/vmath"
)

// Scene colors
var (
	RgbBackground   = tcell.NewRGBColor(0, 0, 0)
	RgbHorizon      = tcell.NewRGBColor(0, 0, 0)
	RgbHorizonEdge  = tcell.NewRGBColor(120, 30, 30)   // Dark red rim
	RgbPhotonRing   = tcell.NewRGBColor(255, 170, 60)  // Warm orange
	RgbAbsorbedRay  = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbTrailHead    = tcell.NewRGBColor(240, 240, 240) // Near white
	RgbTrailTail    = tcell.NewRGBColor(70, 70, 80)    // Dim gray
	RgbStatusText   = tcell.NewRGBColor(200, 200, 200)
	RgbStatusPaused = tcell.NewRGBColor(255, 200, 0)
)

// fieldStops is the density palette: black → dark blue → blue → cyan → white
var fieldStops = [5][3]float64{
	{0, 0, 0},
	{0, 0, 96},
	{0, 64, 255},
	{0, 255, 255},
	{255, 255, 255},
}

// FieldColor maps a normalized density in [0,1] onto the palette
func FieldColor(t float64) tcell.Color {
	t = vmath.Clamp(t, 0, 1)
	if t == 0 {
		return RgbBackground
	}

	segments := float64(len(fieldStops) - 1)
	pos := t * segments
	i := int(pos)
	if i >= len(fieldStops)-1 {
		i = len(fieldStops) - 2
	}
	f := pos - float64(i)

	a, b := fieldStops[i], fieldStops[i+1]
	return tcell.NewRGBColor(
		int32(vmath.Lerp(a[0], b[0], f)),
		int32(vmath.Lerp(a[1], b[1], f)),
		int32(vmath.Lerp(a[2], b[2], f)),
	)
}

// TrailColor fades from the head color to the tail color with age in [0,1]
func TrailColor(age float64) tcell.Color {
	age = vmath.Clamp(age, 0, 1)
	hr, hg, hb := RgbTrailHead.RGB()
	tr, tg, tb := RgbTrailTail.RGB()
	return tcell.NewRGBColor(
		int32(vmath.Lerp(float64(hr), float64(tr), age)),
		int32(vmath.Lerp(float64(hg), float64(tg), age)),
		int32(vmath.Lerp(float64(hb), float64(tb), age)),
	)
}
