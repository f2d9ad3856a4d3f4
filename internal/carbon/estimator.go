package carbon

import "fmt"

// CarbonEstimator provides embodied carbon estimation for materials.
type CarbonEstimator interface {
	// EstimateCarbonKg calculates embodied carbon for a volume of material.
	// Returns carbon in kilograms CO2e and whether the material is known.
	// Returns (0, false) if the material is not in the table.
	EstimateCarbonKg(material string, volume float64) (float64, bool)
}

// Estimator implements CarbonEstimator using the compiled-in material table.
type Estimator struct{}

// NewEstimator creates a new carbon estimator.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// EstimateCarbonKg calculates embodied carbon for a volume of material.
//
// The calculation is:
//  1. Mass (kg) = density (kg/m³) × volume (m³)
//  2. Carbon (kgCO2e) = mass × emission factor (kgCO2e/kg)
//
// Volume is not validated. Zero and negative volumes pass through the
// arithmetic unchanged and NaN propagates. Use EstimateStrict to reject them.
//
// Returns (0, false) if the material is not found.
func (e *Estimator) EstimateCarbonKg(material string, volume float64) (float64, bool) {
	spec, ok := GetMaterialSpec(material)
	if !ok {
		return UnknownMaterialCarbonKg, false
	}

	return CalculateEmbodiedCarbonKg(spec.Density, volume, spec.EmissionFactor), true
}

// EstimateCarbonGrams returns embodied carbon in grams CO2e for convenience.
func (e *Estimator) EstimateCarbonGrams(material string, volume float64) (float64, bool) {
	carbonKg, ok := e.EstimateCarbonKg(material, volume)
	if !ok {
		return 0, false
	}
	return carbonKg * GramsPerKg, true
}

// Estimate returns the embodied carbon in kgCO2e for the given material and
// volume in cubic meters. An unknown material yields 0, not an error.
func Estimate(material string, volume float64) float64 {
	carbonKg, _ := NewEstimator().EstimateCarbonKg(material, volume)
	return carbonKg
}

// CalculateEmbodiedCarbonKg applies density × volume × emission factor.
// The multiplication order is fixed so results are reproducible bit for bit.
func CalculateEmbodiedCarbonKg(density, volume, emissionFactor float64) float64 {
	return density * volume * emissionFactor
}

// GetBillingDetail returns a human-readable explanation of the embodied carbon calculation.
func GetBillingDetail(material string, volume float64) string {
	spec, ok := GetMaterialSpec(material)
	if !ok {
		return "Unknown material for embodied carbon calculation"
	}

	return fmt.Sprintf("Embodied carbon: %s %s m³ × %s kg/m³ × %s kgCO2e/kg",
		spec.Name, formatFloat(volume), formatFloat(spec.Density), formatFloat(spec.EmissionFactor))
}

// Describe builds an EstimateResult for the given material and volume.
func Describe(material string, volume float64) EstimateResult {
	result := EstimateResult{
		Material: material,
		VolumeM3: volume,
		Detail:   GetBillingDetail(material, volume),
	}

	spec, ok := GetMaterialSpec(material)
	if !ok {
		return result
	}

	result.Known = true
	result.Density = spec.Density
	result.EmissionFactor = spec.EmissionFactor
	result.CarbonKg = CalculateEmbodiedCarbonKg(spec.Density, volume, spec.EmissionFactor)
	return result
}
