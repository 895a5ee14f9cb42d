package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wlbtid/calculator/internal/output"
)

func newProjectCmd(g *globalOptions) *cobra.Command {
	var (
		configFile string
		format     string
		outputDir  string
		realView   bool
	)
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run a projection and print or save a report",
		Example: `  wlbtid project --config inputs.yaml
  wlbtid project --format html --output ./reports
  wlbtid project --format all --real --output .`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := g.logger(cmd.ErrOrStderr())
			cfg, err := g.loadInputs(configFile, logger)
			if err != nil {
				return err
			}

			view := output.Nominal
			if realView {
				view = output.Real
			}
			result, err := g.engine(logger).RunProjection(cmd.Context(), cfg)
			if err != nil {
				logger.Warn("projection failed, reporting empty result", "error", err)
			}
			report := output.NewReport(cfg, result, view)

			if outputDir != "" {
				files, err := output.GenerateReport(report, format, outputDir)
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", f)
				}
				return nil
			}

			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
			}
			data, err := f.Format(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML inputs file (default: saved inputs)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", fmt.Sprintf("report format: %v or all", output.AvailableFormatterNames()))
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "write the report to a timestamped file in this directory")
	cmd.Flags().BoolVar(&realView, "real", false, "show values in today's dollars")
	return cmd
}
