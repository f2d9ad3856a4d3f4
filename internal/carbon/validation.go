package carbon

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownMaterial is returned by EstimateStrict when the material is not in the table.
	ErrUnknownMaterial = errors.New("unknown material")

	// ErrInvalidVolume is returned by EstimateStrict when the volume is negative, NaN or infinite.
	ErrInvalidVolume = errors.New("invalid volume")
)

// ValidateVolume checks that volume is a finite, non-negative number of cubic meters.
// Zero is valid.
func ValidateVolume(volume float64) error {
	if math.IsNaN(volume) || math.IsInf(volume, 0) {
		return fmt.Errorf("%w: %v is not a finite number", ErrInvalidVolume, volume)
	}
	if volume < 0 {
		return fmt.Errorf("%w: %v is negative", ErrInvalidVolume, volume)
	}
	return nil
}

// EstimateStrict behaves like Estimate but rejects unknown materials and
// invalid volumes instead of returning 0 or propagating NaN.
func EstimateStrict(material string, volume float64) (float64, error) {
	spec, ok := GetMaterialSpec(material)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMaterial, material)
	}
	if err := ValidateVolume(volume); err != nil {
		return 0, err
	}
	return CalculateEmbodiedCarbonKg(spec.Density, volume, spec.EmissionFactor), nil
}
