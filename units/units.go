// SPDX-License-Identifier: MIT

package units

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit indicates a unit tag outside the supported set.
var ErrUnknownUnit = errors.New("units: unknown unit")

// Physical constants in SI units.
const (
	Planck      = 6.62607e-34   // J·s
	FluxQuantum = 2.0678e-15    // Wb, h/2e
	Boltzmann   = 1.3806503e-23 // J/K
)

// EnergyUnit tags a schedule energy.
type EnergyUnit int

const (
	// GHz is energy as a frequency, E/h in gigahertz; the default.
	GHz EnergyUnit = iota
	// Joule is energy in joules.
	Joule
)

// InductanceUnit tags a mutual inductance.
type InductanceUnit int

const (
	// PicoHenry is inductance in picohenries; the default.
	PicoHenry InductanceUnit = iota
	// Henry is inductance in henries.
	Henry
)

// CurrentUnit tags a persistent current.
type CurrentUnit int

const (
	// MicroAmp is current in microamperes; the default.
	MicroAmp CurrentUnit = iota
	// Amp is current in amperes.
	Amp
)

// TemperatureUnit tags a physical temperature.
type TemperatureUnit int

const (
	// MilliKelvin is temperature in millikelvin; the default.
	MilliKelvin TemperatureUnit = iota
	// Kelvin is temperature in kelvin.
	Kelvin
)

func (u EnergyUnit) String() string {
	switch u {
	case GHz:
		return "GHz"
	case Joule:
		return "J"
	}
	return fmt.Sprintf("EnergyUnit(%d)", int(u))
}

func (u InductanceUnit) String() string {
	switch u {
	case PicoHenry:
		return "pH"
	case Henry:
		return "H"
	}
	return fmt.Sprintf("InductanceUnit(%d)", int(u))
}

func (u CurrentUnit) String() string {
	switch u {
	case MicroAmp:
		return "uA"
	case Amp:
		return "A"
	}
	return fmt.Sprintf("CurrentUnit(%d)", int(u))
}

func (u TemperatureUnit) String() string {
	switch u {
	case MilliKelvin:
		return "mK"
	case Kelvin:
		return "K"
	}
	return fmt.Sprintf("TemperatureUnit(%d)", int(u))
}

// ParseEnergyUnit accepts "GHz" or "J" (case-insensitive).
func ParseEnergyUnit(s string) (EnergyUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ghz":
		return GHz, nil
	case "j", "joule":
		return Joule, nil
	}
	return 0, fmt.Errorf("energy %q: %w", s, ErrUnknownUnit)
}

// ParseInductanceUnit accepts "pH" or "H".
func ParseInductanceUnit(s string) (InductanceUnit, error) {
	switch strings.TrimSpace(s) {
	case "pH", "ph":
		return PicoHenry, nil
	case "H", "h":
		return Henry, nil
	}
	return 0, fmt.Errorf("inductance %q: %w", s, ErrUnknownUnit)
}

// ParseCurrentUnit accepts "uA", "µA" or "A".
func ParseCurrentUnit(s string) (CurrentUnit, error) {
	switch strings.TrimSpace(s) {
	case "uA", "µA", "ua":
		return MicroAmp, nil
	case "A", "a":
		return Amp, nil
	}
	return 0, fmt.Errorf("current %q: %w", s, ErrUnknownUnit)
}

// ParseTemperatureUnit accepts "mK" or "K".
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch strings.TrimSpace(s) {
	case "mK", "mk":
		return MilliKelvin, nil
	case "K", "k":
		return Kelvin, nil
	}
	return 0, fmt.Errorf("temperature %q: %w", s, ErrUnknownUnit)
}

// joulesPer returns the factor converting u to joules.
func (u EnergyUnit) joulesPer() (float64, error) {
	switch u {
	case GHz:
		return 1e9 * Planck, nil
	case Joule:
		return 1, nil
	}
	return 0, fmt.Errorf("energy %s: %w", u, ErrUnknownUnit)
}

func (u InductanceUnit) henriesPer() (float64, error) {
	switch u {
	case PicoHenry:
		return 1e-12, nil
	case Henry:
		return 1, nil
	}
	return 0, fmt.Errorf("inductance %s: %w", u, ErrUnknownUnit)
}

func (u CurrentUnit) ampsPer() (float64, error) {
	switch u {
	case MicroAmp:
		return 1e-6, nil
	case Amp:
		return 1, nil
	}
	return 0, fmt.Errorf("current %s: %w", u, ErrUnknownUnit)
}

func (u TemperatureUnit) kelvinPer() (float64, error) {
	switch u {
	case MilliKelvin:
		return 1e-3, nil
	case Kelvin:
		return 1, nil
	}
	return 0, fmt.Errorf("temperature %s: %w", u, ErrUnknownUnit)
}
