package gibbs

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The ten supported derivative order triples.
var triples = [][3]int{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	{1, 1, 0}, {1, 0, 1}, {0, 1, 1},
	{2, 0, 0}, {0, 2, 0}, {0, 0, 2},
}

func TestGibbsPureWaterOrigin(t *testing.T) {
	// At SA = 0, t = 0, p = 0 every polynomial term but the leading
	// pure-water constant vanishes, so the value is exact.
	assert.Equal(t, 101.342743139674, Gibbs(0, 0, 0, 0, 0, 0))
}

func TestGibbsZeroSalinitySingularities(t *testing.T) {
	assert.True(t, math.IsNaN(Gibbs(1, 0, 0, 0, 0, 0)))
	assert.True(t, math.IsNaN(Gibbs(2, 0, 0, 0, 0, 0)))

	// The mixed SA-t derivative is NaN at SA = 0 regardless of t and p.
	for _, tp := range [][2]float64{{0, 0}, {25.5, 1023}, {-1.5, 4000}, {40, 10000}} {
		assert.True(t, math.IsNaN(Gibbs(1, 1, 0, 0, tp[0], tp[1])),
			"Gibbs(1,1,0, 0, %g, %g)", tp[0], tp[1])
	}

	// The remaining branches are finite at zero salinity.
	for _, d := range triples {
		if d == [3]int{1, 0, 0} || d == [3]int{2, 0, 0} || d == [3]int{1, 1, 0} {
			continue
		}
		v := Gibbs(d[0], d[1], d[2], 0, 10, 500)
		assert.False(t, math.IsNaN(v), "Gibbs(%d,%d,%d) at SA=0", d[0], d[1], d[2])
	}
}

func TestGibbsNegativeSalinityClamp(t *testing.T) {
	// Negative salinity is clamped, so any negative SA behaves exactly
	// like SA = 0 in every branch.
	for _, sa := range []float64{-1e-12, -0.5, -35} {
		for _, d := range triples {
			got := Gibbs(d[0], d[1], d[2], sa, 12.5, 800)
			want := Gibbs(d[0], d[1], d[2], 0, 12.5, 800)
			if math.IsNaN(want) {
				assert.True(t, math.IsNaN(got), "Gibbs(%d,%d,%d, SA=%g)", d[0], d[1], d[2], sa)
			} else {
				assert.Equal(t, want, got, "Gibbs(%d,%d,%d, SA=%g)", d[0], d[1], d[2], sa)
			}
		}
	}
}

// Pinned evaluations at the standard check point SA = 35.7 g/kg,
// t = 25.5 degC, p = 1023 dbar. Through the thermodynamic identities
// these reproduce the published TEOS-10 check values for density,
// heat capacity, sound speed, and enthalpy (see the properties tests).
func TestGibbsCheckPoint(t *testing.T) {
	const sa, tt, p = 35.7, 25.5, 1023.0
	cases := []struct {
		ns, nt, np int
		want       float64
	}{
		{0, 0, 0, 5407.378471307008},
		{1, 0, 0, 71.81414792639572},
		{0, 1, 0, -352.8187977152797},
		{0, 0, 1, 9.728076021579714e-4},
		{1, 1, 0, 0.7814064157694781},
		{1, 0, 1, -7.059954644500218e-7},
		{0, 1, 1, 3.0141260552598043e-7},
		{2, 0, 0, 2.205843107175958},
		{0, 2, 0, -13.307970576250755},
		{0, 0, 2, -3.992439313560819e-13},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("d%d%d%d", c.ns, c.nt, c.np), func(t *testing.T) {
			got := Gibbs(c.ns, c.nt, c.np, sa, tt, p)
			assert.InEpsilon(t, c.want, got, 1e-11)
		})
	}
}

// Central finite differences of lower-order branches must agree with
// the analytic higher-order branches away from the SA = 0 singularity.
func TestGibbsDerivativeConsistency(t *testing.T) {
	points := []struct{ sa, t, p float64 }{
		{35.7, 25.5, 1023},
		{20, 5, 3000},
		{5, -1.5, 100},
	}
	for _, pt := range points {
		sa, tt, p := pt.sa, pt.t, pt.p
		name := fmt.Sprintf("SA=%g,t=%g,p=%g", sa, tt, p)
		t.Run(name, func(t *testing.T) {
			const hs, ht, hp = 1e-3, 1e-3, 0.1 // g/kg, degC, dbar

			// First derivatives from the value.
			dt := (Gibbs(0, 0, 0, sa, tt+ht, p) - Gibbs(0, 0, 0, sa, tt-ht, p)) / (2 * ht)
			assert.InEpsilon(t, Gibbs(0, 1, 0, sa, tt, p), dt, 1e-6)

			ds := (Gibbs(0, 0, 0, sa+hs, tt, p) - Gibbs(0, 0, 0, sa-hs, tt, p)) / (2 * hs)
			assert.InEpsilon(t, Gibbs(1, 0, 0, sa, tt, p), ds, 1e-6)

			// The pressure derivative is per Pa, the step is in dbar.
			dp := (Gibbs(0, 0, 0, sa, tt, p+hp) - Gibbs(0, 0, 0, sa, tt, p-hp)) / (2 * hp) * 1e-4
			assert.InEpsilon(t, Gibbs(0, 0, 1, sa, tt, p), dp, 1e-6)

			// Second derivatives from the first.
			dtt := (Gibbs(0, 1, 0, sa, tt+ht, p) - Gibbs(0, 1, 0, sa, tt-ht, p)) / (2 * ht)
			assert.InEpsilon(t, Gibbs(0, 2, 0, sa, tt, p), dtt, 1e-5)

			dss := (Gibbs(1, 0, 0, sa+hs, tt, p) - Gibbs(1, 0, 0, sa-hs, tt, p)) / (2 * hs)
			assert.InEpsilon(t, Gibbs(2, 0, 0, sa, tt, p), dss, 1e-5)

			dpp := (Gibbs(0, 0, 1, sa, tt, p+hp) - Gibbs(0, 0, 1, sa, tt, p-hp)) / (2 * hp) * 1e-4
			assert.InEpsilon(t, Gibbs(0, 0, 2, sa, tt, p), dpp, 1e-5)

			dst := (Gibbs(1, 0, 0, sa, tt+ht, p) - Gibbs(1, 0, 0, sa, tt-ht, p)) / (2 * ht)
			assert.InEpsilon(t, Gibbs(1, 1, 0, sa, tt, p), dst, 1e-5)

			dsp := (Gibbs(1, 0, 0, sa, tt, p+hp) - Gibbs(1, 0, 0, sa, tt, p-hp)) / (2 * hp) * 1e-4
			assert.InEpsilon(t, Gibbs(1, 0, 1, sa, tt, p), dsp, 1e-5)

			dtp := (Gibbs(0, 1, 0, sa, tt, p+hp) - Gibbs(0, 1, 0, sa, tt, p-hp)) / (2 * hp) * 1e-4
			assert.InEpsilon(t, Gibbs(0, 1, 1, sa, tt, p), dtp, 1e-5)
		})
	}
}

func TestGibbsUnsupportedOrderPanics(t *testing.T) {
	bad := [][3]int{
		{3, 0, 0}, {0, 3, 0}, {0, 0, 3},
		{1, 1, 1}, {2, 1, 0}, {1, 2, 0}, {0, 2, 1},
		{-1, 0, 0}, {0, -1, 0},
	}
	for _, d := range bad {
		assert.False(t, Supported(d[0], d[1], d[2]))
		assert.Panics(t, func() {
			Gibbs(d[0], d[1], d[2], 35, 10, 100)
		}, "(%d,%d,%d)", d[0], d[1], d[2])
	}
	for _, d := range triples {
		assert.True(t, Supported(d[0], d[1], d[2]))
	}
}

// Non-finite inputs propagate through ordinary floating point; the
// evaluator performs no range validation.
func TestGibbsNonFiniteInputs(t *testing.T) {
	assert.True(t, math.IsNaN(Gibbs(0, 0, 0, math.NaN(), 10, 100)))
	assert.True(t, math.IsNaN(Gibbs(0, 0, 0, 35, math.NaN(), 100)))
	assert.False(t, math.IsNaN(Gibbs(0, 0, 0, 200, 90, 12000)),
		"out-of-range inputs evaluate, they do not fail")
}
