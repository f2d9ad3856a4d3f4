package carbon

import (
	_ "embed"
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// CSV column indices for material specs.
const (
	colMaterialName           = 0 // name (Aluminium, Concrete, ...)
	colMaterialDensity        = 1 // density_kg_per_m3
	colMaterialEmissionFactor = 2 // emission_factor_kgco2e_per_kg
)

//go:embed data/material_specs.csv
var materialSpecsCSV string

var (
	materialSpecs     map[string]MaterialSpec
	materialSpecsOnce sync.Once
)

// parseMaterialSpecs initializes the package-level materialSpecs map by parsing
// the embedded CSV of material specifications.
func parseMaterialSpecs() {
	materialSpecs = make(map[string]MaterialSpec)

	reader := csv.NewReader(strings.NewReader(materialSpecsCSV))
	reader.FieldsPerRecord = -1

	// Skip header row
	_, err := reader.Read()
	if err != nil {
		logger.Error().Err(err).Msg("failed to read material specs CSV header")
		return
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn().Err(err).Msg("skipping malformed material specs CSV row")
			continue
		}

		if len(record) <= colMaterialEmissionFactor {
			logger.Warn().Int("columns", len(record)).Msg("skipping short material specs CSV row")
			continue
		}

		// Names are stored verbatim: lookups are exact and case-sensitive.
		name := record[colMaterialName]
		if name == "" {
			logger.Warn().Msg("skipping material with empty name")
			continue
		}

		density, err := strconv.ParseFloat(strings.TrimSpace(record[colMaterialDensity]), 64)
		if err != nil || density <= 0 {
			logger.Warn().Str("material", name).Msg("skipping material with invalid density")
			continue
		}

		emissionFactor, err := strconv.ParseFloat(strings.TrimSpace(record[colMaterialEmissionFactor]), 64)
		if err != nil || emissionFactor < 0 {
			logger.Warn().Str("material", name).Msg("skipping material with invalid emission factor")
			continue
		}

		materialSpecs[name] = MaterialSpec{
			Name:           name,
			Density:        density,
			EmissionFactor: emissionFactor,
		}
	}
}

// GetMaterialSpec retrieves the MaterialSpec for the given material name.
// The match is exact and case-sensitive: "Steel" is known, "steel" and " Steel" are not.
// Returns the MaterialSpec and true if found, or an empty MaterialSpec and false otherwise.
func GetMaterialSpec(name string) (MaterialSpec, bool) {
	materialSpecsOnce.Do(parseMaterialSpecs)
	spec, ok := materialSpecs[name]
	return spec, ok
}

// MaterialSpecCount reports the number of loaded material specifications.
func MaterialSpecCount() int {
	materialSpecsOnce.Do(parseMaterialSpecs)
	return len(materialSpecs)
}

// Materials returns the known material names in ascending order.
// The returned slice is a fresh copy.
func Materials() []string {
	materialSpecsOnce.Do(parseMaterialSpecs)
	names := make([]string, 0, len(materialSpecs))
	for name := range materialSpecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MaterialSpecs returns every loaded MaterialSpec ordered by name.
func MaterialSpecs() []MaterialSpec {
	names := Materials()
	specs := make([]MaterialSpec, 0, len(names))
	for _, name := range names {
		specs = append(specs, materialSpecs[name])
	}
	return specs
}
