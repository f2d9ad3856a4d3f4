package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rshade/embodied-carbon/internal/carbon"
)

// materialEntry is the serialized form of a table row.
type materialEntry struct {
	Name           string  `json:"name" yaml:"name"`
	Density        float64 `json:"density_kg_m3" yaml:"density_kg_m3"`
	EmissionFactor float64 `json:"emission_factor_kgco2e_kg" yaml:"emission_factor_kgco2e_kg"`
}

func writeEstimate(w io.Writer, format outputFormat, result carbon.EstimateResult) error {
	switch format {
	case outputJSON:
		return writeJSON(w, result)
	case outputYAML:
		return writeYAML(w, result)
	}

	if !result.Known {
		_, err := fmt.Fprintf(w, "%s: unknown material, 0 kgCO2e\n", result.Material)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %.2f kgCO2e\n  %s\n", result.Material, result.CarbonKg, result.Detail)
	return err
}

func writeMaterials(w io.Writer, format outputFormat, specs []carbon.MaterialSpec) error {
	entries := make([]materialEntry, 0, len(specs))
	for _, s := range specs {
		entries = append(entries, materialEntry{
			Name:           s.Name,
			Density:        s.Density,
			EmissionFactor: s.EmissionFactor,
		})
	}

	switch format {
	case outputJSON:
		return writeJSON(w, entries)
	case outputYAML:
		return writeYAML(w, entries)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MATERIAL\tDENSITY (kg/m³)\tEMISSION FACTOR (kgCO2e/kg)")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%g\t%g\n", e.Name, e.Density, e.EmissionFactor)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
