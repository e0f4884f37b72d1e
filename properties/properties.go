// Package properties derives standard seawater properties from the
// Gibbs function. Each property calls the evaluator once per required
// derivative order and combines the results algebraically; none of
// them carries coefficients of its own.
//
// Arguments follow the evaluator's units: Absolute Salinity in g/kg,
// in-situ temperature in degC (ITS-90), sea pressure in dbar. Results
// are SI. Properties that need a salinity derivative return NaN at
// zero salinity, inherited from the evaluator.
package properties

import (
	"math"

	"github.com/PaulMBarker/seawater/gibbs"
)

const (
	kelvinOffset = 273.15  // degC to K
	dbarToPa     = 1e4     // sea pressure unit conversion
	atmPressure  = 101325. // one standard atmosphere, Pa
)

// SpecificVolume is dg/dP, m3/kg.
func SpecificVolume(sa, t, p float64) float64 {
	return gibbs.Gibbs(0, 0, 1, sa, t, p)
}

// Rho is the in-situ density, kg/m3.
func Rho(sa, t, p float64) float64 {
	return 1 / gibbs.Gibbs(0, 0, 1, sa, t, p)
}

// Entropy is the specific entropy -dg/dt, J/(kg K).
func Entropy(sa, t, p float64) float64 {
	return -gibbs.Gibbs(0, 1, 0, sa, t, p)
}

// Enthalpy is the specific enthalpy g - T*dg/dt, J/kg.
func Enthalpy(sa, t, p float64) float64 {
	g := gibbs.Gibbs(0, 0, 0, sa, t, p)
	gt := gibbs.Gibbs(0, 1, 0, sa, t, p)
	return g - (t+kelvinOffset)*gt
}

// InternalEnergy is the specific internal energy u = g - T*g_t - P*g_P,
// J/kg, with P the absolute pressure in Pa.
func InternalEnergy(sa, t, p float64) float64 {
	g := gibbs.Gibbs(0, 0, 0, sa, t, p)
	gt := gibbs.Gibbs(0, 1, 0, sa, t, p)
	gp := gibbs.Gibbs(0, 0, 1, sa, t, p)
	return g - (t+kelvinOffset)*gt - (p*dbarToPa+atmPressure)*gp
}

// HeatCapacity is the isobaric specific heat cp = -T*d2g/dt2, J/(kg K).
func HeatCapacity(sa, t, p float64) float64 {
	return -(t + kelvinOffset) * gibbs.Gibbs(0, 2, 0, sa, t, p)
}

// SoundSpeed is the speed of sound, m/s.
func SoundSpeed(sa, t, p float64) float64 {
	gp := gibbs.Gibbs(0, 0, 1, sa, t, p)
	gtt := gibbs.Gibbs(0, 2, 0, sa, t, p)
	gtp := gibbs.Gibbs(0, 1, 1, sa, t, p)
	gpp := gibbs.Gibbs(0, 0, 2, sa, t, p)
	return gp * math.Sqrt(gtt/(gtp*gtp-gtt*gpp))
}

// ThermalExpansion is the thermal expansion coefficient with respect to
// in-situ temperature, 1/K.
func ThermalExpansion(sa, t, p float64) float64 {
	return gibbs.Gibbs(0, 1, 1, sa, t, p) / gibbs.Gibbs(0, 0, 1, sa, t, p)
}

// HalineContraction is the saline contraction coefficient at constant
// in-situ temperature, kg/g.
func HalineContraction(sa, t, p float64) float64 {
	return -gibbs.Gibbs(1, 0, 1, sa, t, p) / gibbs.Gibbs(0, 0, 1, sa, t, p)
}

// AdiabaticLapseRate is dt/dP along an isentrope, K/Pa.
func AdiabaticLapseRate(sa, t, p float64) float64 {
	return -gibbs.Gibbs(0, 1, 1, sa, t, p) / gibbs.Gibbs(0, 2, 0, sa, t, p)
}

// IsothermalCompressibility is -g_PP/g_P, 1/Pa.
func IsothermalCompressibility(sa, t, p float64) float64 {
	return -gibbs.Gibbs(0, 0, 2, sa, t, p) / gibbs.Gibbs(0, 0, 1, sa, t, p)
}

// IsentropicCompressibility is (g_tP^2 - g_tt*g_PP)/(g_P*g_tt), 1/Pa.
// It combines all three second derivatives in t and P, and ties sound
// speed to density: c = 1/sqrt(rho*kappa).
func IsentropicCompressibility(sa, t, p float64) float64 {
	gp := gibbs.Gibbs(0, 0, 1, sa, t, p)
	gtt := gibbs.Gibbs(0, 2, 0, sa, t, p)
	gtp := gibbs.Gibbs(0, 1, 1, sa, t, p)
	gpp := gibbs.Gibbs(0, 0, 2, sa, t, p)
	return (gtp*gtp - gtt*gpp) / (gp * gtt)
}

// ChemicalPotentialRelative is dg/dSA, the difference between the salt
// and water chemical potentials, J/g.
func ChemicalPotentialRelative(sa, t, p float64) float64 {
	return gibbs.Gibbs(1, 0, 0, sa, t, p)
}

// ChemicalPotentialWater is the chemical potential of water in
// seawater, g - SA*dg/dSA, J/kg. NaN at zero salinity through the
// salinity derivative.
func ChemicalPotentialWater(sa, t, p float64) float64 {
	g := gibbs.Gibbs(0, 0, 0, sa, t, p)
	gs := gibbs.Gibbs(1, 0, 0, sa, t, p)
	return g - sa*gs
}
