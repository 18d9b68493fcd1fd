// SPDX-License-Identifier: MIT

package units

import (
	"fmt"
	"math"
)

// Defaults at single-qubit freeze-out.
const (
	DefaultB    = 1.391 // GHz
	DefaultMAFM = 1.647 // pH
)

// Params describe the device point used by the bias conversions.
//
// When Ip is nil the persistent current is inferred from B and MAFM through
// B = 2·MAFM·Ip²; otherwise MAFM is ignored. B is always required.
type Params struct {
	Ip        *float64
	B         float64
	MAFM      float64
	UnitsIp   CurrentUnit
	UnitsB    EnergyUnit
	UnitsMAFM InductanceUnit
}

// DefaultParams returns B = 1.391 GHz, MAFM = 1.647 pH, Ip inferred.
func DefaultParams() Params {
	return Params{B: DefaultB, MAFM: DefaultMAFM}
}

// IpInUnitsOfB returns the persistent current times Φ0 expressed in the
// energy unit of B, i.e. the energy scale multiplying a unit flux bias.
func IpInUnitsOfB(p Params) (float64, error) {
	bMult, err := p.UnitsB.joulesPer()
	if err != nil {
		return 0, fmt.Errorf("IpInUnitsOfB: %w", err)
	}
	var ip float64
	if p.Ip == nil {
		hMult, err := p.UnitsMAFM.henriesPer()
		if err != nil {
			return 0, fmt.Errorf("IpInUnitsOfB: %w", err)
		}
		ip = math.Sqrt(p.B * bMult / (2 * p.MAFM * hMult))
	} else {
		aMult, err := p.UnitsIp.ampsPer()
		if err != nil {
			return 0, fmt.Errorf("IpInUnitsOfB: %w", err)
		}
		ip = *p.Ip * aMult
	}
	return ip * FluxQuantum / bMult, nil
}

// ScheduleFromIp inverts the persistent-current relation: it returns
// B = 2·MAFM·Ip² in unitsB.
func ScheduleFromIp(ip float64, unitsIp CurrentUnit, mafm float64, unitsMAFM InductanceUnit, unitsB EnergyUnit) (float64, error) {
	aMult, err := unitsIp.ampsPer()
	if err != nil {
		return 0, fmt.Errorf("ScheduleFromIp: %w", err)
	}
	hMult, err := unitsMAFM.henriesPer()
	if err != nil {
		return 0, fmt.Errorf("ScheduleFromIp: %w", err)
	}
	bMult, err := unitsB.joulesPer()
	if err != nil {
		return 0, fmt.Errorf("ScheduleFromIp: %w", err)
	}
	a := ip * aMult
	return 2 * mafm * hMult * a * a / bMult, nil
}

// HToFluxBias converts a unitless bias h to the flux bias (in Φ0) producing
// the same longitudinal field: B/2·h = -Ip·Φ.
func HToFluxBias(h float64, p Params) (float64, error) {
	ip, err := IpInUnitsOfB(p)
	if err != nil {
		return 0, fmt.Errorf("HToFluxBias: %w", err)
	}
	return -p.B / 2 / ip * h, nil
}

// FluxBiasToH is the inverse of HToFluxBias.
func FluxBiasToH(phi float64, p Params) (float64, error) {
	ip, err := IpInUnitsOfB(p)
	if err != nil {
		return 0, fmt.Errorf("FluxBiasToH: %w", err)
	}
	return -2 * ip / p.B * phi, nil
}

// HToFluxBiases applies HToFluxBias to every entry of hs.
func HToFluxBiases(hs []float64, p Params) ([]float64, error) {
	ip, err := IpInUnitsOfB(p)
	if err != nil {
		return nil, fmt.Errorf("HToFluxBiases: %w", err)
	}
	out := make([]float64, len(hs))
	for i, h := range hs {
		out[i] = -p.B / 2 / ip * h
	}
	return out, nil
}

// FluxBiasesToH applies FluxBiasToH to every entry of phis.
func FluxBiasesToH(phis []float64, p Params) ([]float64, error) {
	ip, err := IpInUnitsOfB(p)
	if err != nil {
		return nil, fmt.Errorf("FluxBiasesToH: %w", err)
	}
	out := make([]float64, len(phis))
	for i, phi := range phis {
		out[i] = -2 * ip / p.B * phi
	}
	return out, nil
}

// FreezeoutEffectiveTemperature returns the unitless temperature 2·kB·T/B
// of a device at physical temperature T whose dynamics freeze at schedule
// energy B. It applies to problems sampled without auto-scaling.
//
// 3.91 GHz at 15.4 mK gives about 0.164.
func FreezeoutEffectiveTemperature(b float64, unitsB EnergyUnit, t float64, unitsT TemperatureUnit) (float64, error) {
	bMult, err := unitsB.joulesPer()
	if err != nil {
		return 0, fmt.Errorf("FreezeoutEffectiveTemperature: %w", err)
	}
	kMult, err := unitsT.kelvinPer()
	if err != nil {
		return 0, fmt.Errorf("FreezeoutEffectiveTemperature: %w", err)
	}
	return 2 * t * kMult * Boltzmann / (b * bMult), nil
}
