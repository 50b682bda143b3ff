package physics

import (
	"errors"
	"fmt"
	"strings"
)

// Model selects the integration path a ray uses; one model per ray config, never mixed
type Model uint8

const (
	// ModelNewtonian integrates a capped inverse-power pull and renormalizes speed
	ModelNewtonian Model = iota
	// ModelGeodesic integrates the geodesic heuristic with time dilation and angular momentum
	ModelGeodesic
)

// ErrUnknownModel is returned by ParseModel for unrecognized names
var ErrUnknownModel = errors.New("unknown physics model")

func (m Model) String() string {
	switch m {
	case ModelNewtonian:
		return "newtonian"
	case ModelGeodesic:
		return "geodesic"
	default:
		return fmt.Sprintf("model(%d)", uint8(m))
	}
}

// ParseModel maps a config or flag value to a Model
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "newtonian", "newton", "simple", "":
		return ModelNewtonian, nil
	case "geodesic", "gr":
		return ModelGeodesic, nil
	}
	return ModelNewtonian, fmt.Errorf("%w: %q", ErrUnknownModel, s)
}
