package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/embodied-carbon/internal/carbon"
)

// app holds state shared by the subcommands of a single invocation.
type app struct {
	logLevel string
	output   string
	logger   zerolog.Logger
	traceID  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:          "embodied-carbon",
		Short:        "Estimate embodied carbon (kgCO2e) for construction materials",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"Log level (trace, debug, info, warn, error); defaults to $"+envLogLevel+" or info")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", string(outputText),
		"Output format: text, json or yaml")

	rootCmd.AddCommand(estimateCmd(a))
	rootCmd.AddCommand(materialsCmd(a))

	return rootCmd
}

// init configures logging for the invocation and injects the logger into the carbon package.
func (a *app) init(cmd *cobra.Command) error {
	base := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		With().Timestamp().Logger()

	level := parseLogLevel(a.logLevel, base)
	a.traceID = uuid.New().String()
	a.logger = base.Level(level).With().Str("trace_id", a.traceID).Logger()

	carbon.SetLogger(a.logger)

	if _, err := parseOutputFormat(a.output); err != nil {
		return err
	}
	return nil
}
