// Package carbon provides embodied carbon estimation for construction materials
// using a compiled-in table of material densities and emission factors.
package carbon

const (
	// GramsPerKg converts kilograms CO2e to grams CO2e.
	GramsPerKg = 1000.0

	// UnknownMaterialCarbonKg is returned by Estimate when the material name
	// has no entry in the material table.
	UnknownMaterialCarbonKg = 0.0
)
