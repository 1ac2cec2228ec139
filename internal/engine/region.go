package engine

// TapPoint is a user-supplied coordinate on the displayed image, expressed
// as percentages of the image width and height.
type TapPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RegionLabel is a qualitative 3x3 grid descriptor such as "top-left".
type RegionLabel struct {
	Horizontal string
	Vertical   string
}

// String renders the label in "vertical-horizontal" form, e.g. "bottom-right".
// Center of the grid collapses to just "center".
func (l RegionLabel) String() string {
	if l.Horizontal == "center" && l.Vertical == "middle" {
		return "center"
	}
	return l.Vertical + "-" + l.Horizontal
}

// ResolveRegion maps a tap point to its grid cell. Each axis splits into
// three bands at 33 and 66: [0,33], [34,66], [67,100]. Out-of-range
// coordinates clamp to the nearest band instead of failing.
func ResolveRegion(p TapPoint) RegionLabel {
	return RegionLabel{
		Horizontal: band(p.X, "left", "center", "right"),
		Vertical:   band(p.Y, "top", "middle", "bottom"),
	}
}

func band(v float64, low, mid, high string) string {
	switch {
	case v <= 33:
		return low
	case v <= 66:
		return mid
	default:
		return high
	}
}
