package geom

import "fmt"

// Axis selects a coordinate axis for reflection.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis converts an external axis tag ("x" or "y") to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	}
	return 0, fmt.Errorf("%w: axis must be \"x\" or \"y\", got %q", ErrInvalidArgument, s)
}

// ShearDirection selects the axis a shear offsets.
type ShearDirection int

const (
	// ShearHorizontal offsets x proportionally to y.
	ShearHorizontal ShearDirection = iota
	// ShearVertical offsets y proportionally to x.
	ShearVertical
)

func (d ShearDirection) String() string {
	switch d {
	case ShearHorizontal:
		return "horizontal"
	case ShearVertical:
		return "vertical"
	}
	return fmt.Sprintf("ShearDirection(%d)", int(d))
}

// ParseShearDirection converts an external direction tag ("horizontal" or
// "vertical") to a ShearDirection.
func ParseShearDirection(s string) (ShearDirection, error) {
	switch s {
	case "horizontal":
		return ShearHorizontal, nil
	case "vertical":
		return ShearVertical, nil
	}
	return 0, fmt.Errorf("%w: direction must be \"horizontal\" or \"vertical\", got %q", ErrInvalidArgument, s)
}
