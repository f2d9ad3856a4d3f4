package main

import (
	"github.com/spf13/cobra"

	"github.com/rshade/embodied-carbon/internal/carbon"
)

func estimateCmd(a *app) *cobra.Command {
	var (
		material string
		volume   float64
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate embodied carbon for a volume of one material",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(a.output)
			if err != nil {
				return err
			}

			if strict {
				if _, err := carbon.EstimateStrict(material, volume); err != nil {
					a.logger.Error().Err(err).
						Str("material", material).
						Float64("volume_m3", volume).
						Msg("strict estimate rejected")
					return err
				}
			}

			result := carbon.Describe(material, volume)
			if !result.Known {
				a.logger.Warn().Str("material", material).Msg("unknown material, reporting 0 kgCO2e")
			}
			a.logger.Debug().
				Str("material", material).
				Float64("volume_m3", volume).
				Float64("carbon_kgco2e", result.CarbonKg).
				Msg("estimate computed")

			return writeEstimate(cmd.OutOrStdout(), format, result)
		},
	}

	cmd.Flags().StringVarP(&material, "material", "m", "", "Material name, matched exactly (e.g. Steel)")
	cmd.Flags().Float64VarP(&volume, "volume", "v", 0, "Volume in cubic meters")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unknown materials and negative or non-finite volumes")
	_ = cmd.MarkFlagRequired("material")
	_ = cmd.MarkFlagRequired("volume")

	return cmd
}

func materialsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List the materials in the embodied carbon table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(a.output)
			if err != nil {
				return err
			}

			specs := carbon.MaterialSpecs()
			a.logger.Debug().Int("count", len(specs)).Msg("listing materials")

			return writeMaterials(cmd.OutOrStdout(), format, specs)
		},
	}
}
