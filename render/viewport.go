package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/lensing/parameter"
)

// Viewport maps world coordinates onto terminal cells
// Rows span [Center.Y-HalfHeight, Center.Y+HalfHeight]; columns follow from the cell aspect
type Viewport struct {
	Width, Height int
	Center        r2.Vec
	HalfHeight    float64
	// Aspect is cell height over cell width
	Aspect float64
}

func NewViewport(width, height int) Viewport {
	return Viewport{
		Width:      width,
		Height:     height,
		HalfHeight: parameter.ViewHalfHeight,
		Aspect:     parameter.CellAspect,
	}
}

// Resize updates the cell dimensions, keeping the world framing
func (v *Viewport) Resize(width, height int) {
	v.Width = width
	v.Height = height
}

// rowsPerUnit and colsPerUnit are the cell densities along each axis
func (v Viewport) rowsPerUnit() float64 {
	if v.HalfHeight <= 0 {
		return 0
	}
	return float64(v.Height) / (2 * v.HalfHeight)
}

func (v Viewport) colsPerUnit() float64 {
	return v.rowsPerUnit() * v.Aspect
}

// HalfWidth returns the world half-width visible across the columns
func (v Viewport) HalfWidth() float64 {
	c := v.colsPerUnit()
	if c == 0 {
		return 0
	}
	return float64(v.Width) / (2 * c)
}

// ToCell returns the cell containing p, with ok false when it falls off screen
// Cell coordinates are unclamped so lines can be drawn through the edges
func (v Viewport) ToCell(p r2.Vec) (x, y int, ok bool) {
	fx := float64(v.Width)/2 + (p.X-v.Center.X)*v.colsPerUnit()
	fy := float64(v.Height)/2 - (p.Y-v.Center.Y)*v.rowsPerUnit()
	x = int(math.Floor(fx))
	y = int(math.Floor(fy))
	return x, y, v.Contains(x, y)
}

// ToWorld returns the world point at the center of cell (x, y)
func (v Viewport) ToWorld(x, y int) r2.Vec {
	c, r := v.colsPerUnit(), v.rowsPerUnit()
	if c == 0 || r == 0 {
		return v.Center
	}
	return r2.Vec{
		X: v.Center.X + (float64(x)+0.5-float64(v.Width)/2)/c,
		Y: v.Center.Y - (float64(y)+0.5-float64(v.Height)/2)/r,
	}
}

// Contains reports whether (x, y) is a screen cell
func (v Viewport) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.Width && y < v.Height
}
