// Package gibbs evaluates the specific Gibbs energy of seawater and its
// partial derivatives with respect to Absolute Salinity, in-situ
// temperature, and pressure, using the TEOS-10 polynomial fit of the
// thermodynamic potential (IOC, SCOR and IAPSO, 2010).
//
// The Gibbs function is the single generating potential of seawater
// thermodynamics: entropy, density, enthalpy, heat capacity, and sound
// speed all follow from its first and second derivatives. The fit is
// expressed in normalized coordinates x = sqrt(sfac*SA), y = t/40 degC,
// z = p/1e4 dbar. The square root gives the fit the non-analytic
// behavior of a dilute electrolyte near zero salinity, which is why the
// salinity-derivative branches carry log(x) and 1/x terms and are
// reported as NaN at SA = 0 rather than at their finite limits.
package gibbs

import (
	"fmt"
	"math"
)

// sfac scales Absolute Salinity (g/kg) into the normalized coordinate
// x2 = sfac*SA of the polynomial fit.
const sfac = 0.0248826675584615

// Gibbs returns the (ns,nt,np)-th partial derivative of the specific
// Gibbs energy with respect to Absolute Salinity sa (g/kg), in-situ
// temperature t (deg C, ITS-90), and pressure, evaluated at sea
// pressure p (dbar). Pressure derivatives are taken with respect to
// pressure in Pa even though p is supplied in dbar.
//
// Ten derivative orders are supported: the value itself, the three
// first derivatives, and the six second derivatives (ns, nt, np each at
// most 2, ns+nt+np at most 2). Any other order is a programming error
// and panics.
//
// Negative salinity is treated as a data anomaly and clamped to zero.
// The first and second salinity derivatives, and the mixed
// salinity-temperature derivative, return NaN at zero salinity.
// Inputs are not range-checked: values outside the fit's oceanographic
// envelope are evaluated anyway and simply lose accuracy.
func Gibbs(ns, nt, np int, sa, t, p float64) float64 {
	if sa < 0 {
		sa = 0
	}
	x2 := sfac * sa
	x := math.Sqrt(x2)
	y := t * 0.025
	z := p * 1e-4

	switch {
	case ns == 0 && nt == 0 && np == 0:
		return gibbsValue(x2, x, y, z)
	case ns == 1 && nt == 0 && np == 0:
		return gibbsSA(x2, x, y, z)
	case ns == 0 && nt == 1 && np == 0:
		return gibbsT(x2, x, y, z)
	case ns == 0 && nt == 0 && np == 1:
		return gibbsP(x2, x, y, z)
	case ns == 1 && nt == 1 && np == 0:
		return gibbsSAT(x2, x, y, z)
	case ns == 1 && nt == 0 && np == 1:
		return gibbsSAP(x2, x, y, z)
	case ns == 0 && nt == 1 && np == 1:
		return gibbsTP(x2, x, y, z)
	case ns == 2 && nt == 0 && np == 0:
		return gibbsSASA(x2, x, y, z)
	case ns == 0 && nt == 2 && np == 0:
		return gibbsTT(x2, x, y, z)
	case ns == 0 && nt == 0 && np == 2:
		return gibbsPP(x2, x, y, z)
	}
	panic(fmt.Sprintf("gibbs: unsupported derivative order (%d,%d,%d)", ns, nt, np))
}

// Supported reports whether the derivative order triple (ns,nt,np) is
// one of the ten orders Gibbs evaluates.
func Supported(ns, nt, np int) bool {
	if ns < 0 || nt < 0 || np < 0 {
		return false
	}
	return ns+nt+np <= 2
}
