package reveal

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidRootMargin is returned when a root margin string cannot be parsed.
var ErrInvalidRootMargin = errors.New("invalid root margin")

// Length is a single margin component in pixels or percent of the root.
type Length struct {
	Value   float64
	Percent bool
}

// resolve converts the length to pixels against the given root dimension.
func (l Length) resolve(base float64) float64 {
	if l.Percent {
		return base * l.Value / 100
	}
	return l.Value
}

func (l Length) String() string {
	if l.Percent {
		return strconv.FormatFloat(l.Value, 'f', -1, 64) + "%"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + "px"
}

// Margin holds the four root margin edges in CSS order.
type Margin struct {
	Top    Length
	Right  Length
	Bottom Length
	Left   Length
}

// IsZero reports whether the margin leaves the root unchanged.
func (m Margin) IsZero() bool {
	return m.Top.Value == 0 && m.Right.Value == 0 && m.Bottom.Value == 0 && m.Left.Value == 0
}

// Apply grows (or shrinks, for negative values) root by the margin.
// Percentages resolve against root height for top/bottom and width for
// left/right.
func (m Margin) Apply(root Rect) Rect {
	w, h := root.Width(), root.Height()
	return root.Expand(
		m.Top.resolve(h),
		m.Right.resolve(w),
		m.Bottom.resolve(h),
		m.Left.resolve(w),
	)
}

func (m Margin) String() string {
	return strings.Join([]string{m.Top.String(), m.Right.String(), m.Bottom.String(), m.Left.String()}, " ")
}

// ParseRootMargin parses CSS margin shorthand ("10px", "10% 0px",
// "0px 0px -20% 0px"). An empty string means no adjustment.
func ParseRootMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Margin{}, nil
	}
	if len(fields) > 4 {
		return Margin{}, fmt.Errorf("%w: %q has %d values", ErrInvalidRootMargin, s, len(fields))
	}

	lengths := make([]Length, len(fields))
	for i, f := range fields {
		l, err := parseLength(f)
		if err != nil {
			return Margin{}, fmt.Errorf("%w: %q: %v", ErrInvalidRootMargin, s, err)
		}
		lengths[i] = l
	}

	switch len(lengths) {
	case 1:
		return Margin{Top: lengths[0], Right: lengths[0], Bottom: lengths[0], Left: lengths[0]}, nil
	case 2:
		return Margin{Top: lengths[0], Right: lengths[1], Bottom: lengths[0], Left: lengths[1]}, nil
	case 3:
		return Margin{Top: lengths[0], Right: lengths[1], Bottom: lengths[2], Left: lengths[1]}, nil
	default:
		return Margin{Top: lengths[0], Right: lengths[1], Bottom: lengths[2], Left: lengths[3]}, nil
	}
}

func parseLength(s string) (Length, error) {
	var l Length
	num := s
	switch {
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		num = strings.TrimSuffix(s, "%")
		l.Percent = true
	case s != "0":
		// Only a bare zero may omit the unit
		return l, fmt.Errorf("length %q must be in px or %%", s)
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return l, fmt.Errorf("length %q is not a number", s)
	}
	l.Value = v
	return l, nil
}
