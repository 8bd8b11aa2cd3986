package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rvb/rent-vs-buy/internal/calculation"
	"github.com/rvb/rent-vs-buy/internal/config"
	"github.com/rvb/rent-vs-buy/internal/domain"
	"github.com/rvb/rent-vs-buy/internal/output"
)

var (
	flagAll        bool
	flagWithPaths  bool
	flagCSVDir     string
	flagBracket    float64
	flagInitOutput string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <config-file>",
	Short: "Run the base projection, optionally with every configured analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(args[0])
		if err != nil {
			return err
		}
		opts := calculation.RunOptions{PricePaths: flagWithPaths}
		if flagAll {
			opts = calculation.AllAnalyses()
		}
		report, err := s.run(cmd.Context(), opts)
		if err != nil {
			return err
		}
		return emit(cmd.OutOrStdout(), report)
	},
}

var sensitivityCmd = analysisCommand("sensitivity", "Rerun the base case with interest, price and rent perturbed both ways",
	calculation.RunOptions{Sensitivity: true},
	requireBlock("sensitivity", func(c *domain.Configuration) bool { return c.Sensitivity != nil }), nil)

var scenariosCmd = analysisCommand("scenarios", "Run every named scenario side by side",
	calculation.RunOptions{Scenarios: true},
	requireBlock("scenarios", func(c *domain.Configuration) bool { return len(c.Scenarios) > 0 }), nil)

var heatmapCmd = analysisCommand("heatmap", "Compute break-even months over a timeline by down payment grid",
	calculation.RunOptions{Heatmap: true},
	requireBlock("heatmap", func(c *domain.Configuration) bool { return c.Heatmap != nil }), nil)

var monteCarloCmd = analysisCommand("monte-carlo", "Resample growth and return rates and report the spread of outcomes",
	calculation.RunOptions{MonteCarlo: true}, nil, writeStochasticCSV)

var pricePathsCmd = analysisCommand("price-paths", "Simulate home price paths and report yearly percentile bands",
	calculation.RunOptions{PricePaths: true}, nil, writeStochasticCSV)

var taxSavingsCmd = &cobra.Command{
	Use:   "tax-savings <config-file>",
	Short: "Estimate the yearly itemized-deduction benefit of owning",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(args[0])
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("bracket") {
			if err := config.ValidateTaxBracket(flagBracket); err != nil {
				return err
			}
			bracket := flagBracket
			s.cfg.TaxBracket = &bracket
		}
		report, err := s.run(cmd.Context(), calculation.RunOptions{})
		if err != nil {
			return err
		}
		return output.WriteTaxSavings(cmd.OutOrStdout(), report.Output.TaxSavings, flagFormat)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		parser := config.NewInputParser()
		if _, err := os.Stat(flagInitOutput); err == nil {
			return fmt.Errorf("%s already exists", flagInitOutput)
		}
		if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), flagInitOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", flagInitOutput)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&flagAll, "all", false, "Run every analysis the configuration defines")
	analyzeCmd.Flags().BoolVar(&flagWithPaths, "price-paths", false, "Attach home price path percentiles")
	monteCarloCmd.Flags().StringVar(&flagCSVDir, "csv-dir", "", "Also write run-level CSV reports to this directory")
	pricePathsCmd.Flags().StringVar(&flagCSVDir, "csv-dir", "", "Also write the percentile CSV to this directory")
	taxSavingsCmd.Flags().Float64Var(&flagBracket, "bracket", calculation.DefaultTaxBracket, "Marginal tax bracket as a decimal; 0 disables the benefit")
	initCmd.Flags().StringVar(&flagInitOutput, "output", "rvb.yaml", "Destination file (.yaml, .json or .toml)")

	rootCmd.AddCommand(analyzeCmd, sensitivityCmd, scenariosCmd, heatmapCmd, monteCarloCmd, pricePathsCmd, taxSavingsCmd, initCmd)
}

// requireBlock rejects a configuration that has nothing for the command to run.
func requireBlock(name string, present func(*domain.Configuration) bool) func(*domain.Configuration) error {
	return func(cfg *domain.Configuration) error {
		if !present(cfg) {
			return fmt.Errorf("configuration has no %s block", name)
		}
		return nil
	}
}

func writeStochasticCSV(_ *cobra.Command, report *domain.AnalysisReport) error {
	if flagCSVDir == "" {
		return nil
	}
	r := &output.MonteCarloCSVReport{Result: report.MonteCarlo, PricePaths: report.PricePaths}
	written, err := r.GenerateAllCSVReports(flagCSVDir)
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Fprintf(os.Stderr, "  wrote %s\n", path)
	}
	return nil
}
