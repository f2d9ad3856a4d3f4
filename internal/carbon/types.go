package carbon

// MaterialSpec contains the physical and emission properties of a construction material.
type MaterialSpec struct {
	// Name is the material name as it appears in the table (e.g., "Steel").
	// Lookups match it exactly, including case.
	Name string

	// Density is the material density in kilograms per cubic meter.
	Density float64

	// EmissionFactor is the embodied carbon per kilogram of material in kgCO2e/kg.
	EmissionFactor float64
}

// MassKg returns the mass in kilograms of the given volume in cubic meters.
func (s MaterialSpec) MassKg(volumeM3 float64) float64 {
	return s.Density * volumeM3
}

// EstimateResult describes a single embodied carbon estimate.
type EstimateResult struct {
	// Material is the requested material name, unmodified.
	Material string `json:"material" yaml:"material"`

	// VolumeM3 is the requested volume in cubic meters.
	VolumeM3 float64 `json:"volume_m3" yaml:"volume_m3"`

	// Density is the table density in kg/m³ (0 when the material is unknown).
	Density float64 `json:"density_kg_m3" yaml:"density_kg_m3"`

	// EmissionFactor is the table emission factor in kgCO2e/kg (0 when the material is unknown).
	EmissionFactor float64 `json:"emission_factor_kgco2e_kg" yaml:"emission_factor_kgco2e_kg"`

	// CarbonKg is the estimated embodied carbon in kgCO2e.
	CarbonKg float64 `json:"carbon_kgco2e" yaml:"carbon_kgco2e"`

	// Known reports whether the material was found in the table.
	Known bool `json:"known" yaml:"known"`

	// Detail is a human-readable explanation of the calculation.
	Detail string `json:"detail" yaml:"detail"`
}
