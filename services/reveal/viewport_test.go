package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRootMargin(t *testing.T) {
	px := func(v float64) Length { return Length{Value: v} }
	pct := func(v float64) Length { return Length{Value: v, Percent: true} }

	tests := []struct {
		name  string
		input string
		want  Margin
	}{
		{"Empty", "", Margin{}},
		{"Bare zero", "0", Margin{}},
		{"One value", "10px", Margin{px(10), px(10), px(10), px(10)}},
		{"Two values", "10% 5px", Margin{pct(10), px(5), pct(10), px(5)}},
		{"Three values", "1px 2px 3px", Margin{px(1), px(2), px(3), px(2)}},
		{"Four values", "0px 0px -20% 0px", Margin{px(0), px(0), pct(-20), px(0)}},
		{"Extra whitespace", "  4px   8px ", Margin{px(4), px(8), px(4), px(8)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRootMargin(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"10", "px", "10em", "1px 2px 3px 4px 5px", "NaN%", "abc"} {
		t.Run("Invalid "+bad, func(t *testing.T) {
			_, err := ParseRootMargin(bad)
			assert.ErrorIs(t, err, ErrInvalidRootMargin)
		})
	}
}

func TestMarginApply(t *testing.T) {
	root := RectFromLTWH(0, 100, 1000, 800)
	m, err := ParseRootMargin("10% 0px -25% 20px")
	require.NoError(t, err)

	got := m.Apply(root)
	assert.Equal(t, Rect{Left: -20, Top: 20, Right: 1000, Bottom: 700}, got)
	assert.Equal(t, "10% 0px -25% 20px", m.String())
}

func TestIntersectionRatio(t *testing.T) {
	root := RectFromLTWH(0, 0, 100, 100)

	ratio, ok := intersectionRatio(RectFromLTWH(0, 50, 100, 100), root)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, ratio, 1e-9)

	ratio, ok = intersectionRatio(RectFromLTWH(0, 100, 100, 50), root)
	assert.True(t, ok, "edge-adjacent touches")
	assert.Equal(t, 0.0, ratio)

	_, ok = intersectionRatio(RectFromLTWH(0, 150, 100, 50), root)
	assert.False(t, ok)

	ratio, ok = intersectionRatio(RectFromLTWH(10, 10, 0, 0), root)
	assert.True(t, ok)
	assert.Equal(t, 1.0, ratio, "zero-area target inside the root")
}

func TestViewport_RevealsOnScroll(t *testing.T) {
	vp := NewViewport(1000, 800)
	features := Element("services")
	vp.Place(features, RectFromLTWH(0, 1000, 1000, 600))

	obs, release := Observe(vp, features, Options{Threshold: 0.1})
	defer release()
	assert.False(t, obs.Visible(), "below the fold")

	vp.ScrollTo(250) // 50px of 600 visible
	assert.False(t, obs.Visible())

	vp.ScrollTo(300) // 100px of 600 visible
	assert.True(t, obs.Visible())

	vp.ScrollTo(0)
	assert.False(t, obs.Visible())
}

func TestViewport_InitialMeasurement(t *testing.T) {
	vp := NewViewport(1000, 800)
	hero := Element("home")
	vp.Place(hero, RectFromLTWH(0, 0, 1000, 900))

	obs, release := Observe(vp, hero, Options{Threshold: 0.1})
	defer release()
	assert.True(t, obs.Visible(), "above the fold on first measurement")
}

func TestViewport_StartReportsInitialTransition(t *testing.T) {
	vp := NewViewport(1000, 800)
	hero := Element("home")
	vp.Place(hero, RectFromLTWH(0, 0, 1000, 900))

	obs := NewObserver(vp, hero, Options{Threshold: 0.1})
	var changes []bool
	obs.OnChange(func(visible bool) { changes = append(changes, visible) })
	assert.False(t, obs.Observing(), "nothing registered before Start")

	obs.Start()
	defer obs.Close()
	obs.Start()

	assert.Equal(t, []bool{true}, changes)
	assert.Equal(t, 1, vp.Registrations())
}

func TestViewport_RootMargin(t *testing.T) {
	vp := NewViewport(1000, 800)
	target := Element("about")
	vp.Place(target, RectFromLTWH(0, 850, 1000, 100))

	plain, releasePlain := Observe(vp, target, Options{})
	defer releasePlain()
	grown, releaseGrown := Observe(vp, target, Options{RootMargin: "0px 0px 100px 0px"})
	defer releaseGrown()

	assert.False(t, plain.Visible())
	assert.True(t, grown.Visible(), "margin extends the viewport bottom")

	vp.ScrollTo(100)
	shrunk, releaseShrunk := Observe(vp, target, Options{Threshold: 1, RootMargin: "0px 0px -10% 0px"})
	defer releaseShrunk()
	assert.True(t, plain.Visible())
	assert.False(t, shrunk.Visible(), "bottom 80px of the viewport excluded")
}

func TestViewport_OnceReleasesRegistration(t *testing.T) {
	vp := NewViewport(1000, 800)
	target := Element("contact")
	vp.Place(target, RectFromLTWH(0, 2000, 1000, 500))

	obs, release := Observe(vp, target, Options{Threshold: 0.1, Once: true})
	defer release()
	assert.Equal(t, 1, vp.Registrations())

	vp.ScrollTo(1500)
	assert.True(t, obs.Visible())
	assert.Equal(t, 0, vp.Registrations())

	vp.ScrollTo(0)
	assert.True(t, obs.Visible())
}

func TestViewport_OnceLatchOnInitialMeasurement(t *testing.T) {
	vp := NewViewport(1000, 800)
	target := Element("home")
	vp.Place(target, RectFromLTWH(0, 0, 1000, 800))

	obs, release := Observe(vp, target, Options{Threshold: 0.1, Once: true})
	defer release()
	assert.True(t, obs.Visible())
	assert.Equal(t, 0, vp.Registrations(), "released even though the latch happened inside Observe")
}

func TestViewport_ReleaseAndRemove(t *testing.T) {
	vp := NewViewport(1000, 800)
	target := Element("faq")
	vp.Place(target, RectFromLTWH(0, 100, 1000, 100))

	obs, release := Observe(vp, target, Options{})
	require.True(t, obs.Visible())

	vp.Remove(target)
	assert.False(t, obs.Visible(), "detached targets never intersect")

	release()
	assert.Equal(t, 0, vp.Registrations())

	vp.Place(target, RectFromLTWH(0, 100, 1000, 100))
	assert.False(t, obs.Visible())
}

func TestViewport_Resize(t *testing.T) {
	vp := NewViewport(1000, 400)
	target := Element("case-studies")
	vp.Place(target, RectFromLTWH(0, 500, 1000, 100))

	obs, release := Observe(vp, target, Options{Threshold: 0.5})
	defer release()
	assert.False(t, obs.Visible())

	vp.Resize(1000, 600)
	assert.True(t, obs.Visible())
	assert.Equal(t, RectFromLTWH(0, 0, 1000, 600), vp.Bounds())
}
