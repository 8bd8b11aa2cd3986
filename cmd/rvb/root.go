package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rvb/rent-vs-buy/internal/calculation"
	"github.com/rvb/rent-vs-buy/internal/config"
	"github.com/rvb/rent-vs-buy/internal/domain"
	"github.com/rvb/rent-vs-buy/internal/growth"
	"github.com/rvb/rent-vs-buy/internal/logging"
	"github.com/rvb/rent-vs-buy/internal/output"
)

var (
	flagFormat    string
	flagOutputDir string
	flagVerbose   bool
	flagZIP       string
	flagDataset   string
	flagWorkers   int
)

var rootCmd = &cobra.Command{
	Use:           "rvb",
	Short:         "Rent vs buy projection engine",
	Long:          "Simulate month by month whether buying a home or renting and investing the difference builds more net worth.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "console", "Output format ("+formatList()+" or all)")
	rootCmd.PersistentFlags().StringVarP(&flagOutputDir, "output-dir", "o", "", "Write reports to this directory instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagZIP, "zip", "", "Location key for growth lookup (overrides the config location)")
	rootCmd.PersistentFlags().StringVar(&flagDataset, "dataset", "", "Location growth dataset CSV")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", calculation.DefaultWorkers, "Concurrent pipeline runs")
}

func formatList() string {
	return strings.Join(output.AvailableFormatterNames(), ", ")
}

// session bundles what every analysis command needs.
type session struct {
	logger   *slog.Logger
	cfg      *domain.Configuration
	engine   *calculation.CalculationEngine
	provider growth.Provider
	location string
}

// newSession loads the configuration, wires logging and substitutes
// location growth rates into the base case and every scenario.
func newSession(path string) (*session, error) {
	logger := logging.Setup(flagVerbose)

	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration loaded", "path", path, "name", cfg.Name)

	engine := calculation.NewCalculationEngine()
	engine.Workers = flagWorkers
	engine.SetLogger(logging.NewPrintf(logger))

	s := &session{logger: logger, cfg: cfg, engine: engine, provider: growth.StaticProvider{}}
	s.location = cfg.Location
	if flagZIP != "" {
		s.location = flagZIP
	}

	if flagDataset != "" {
		ds, err := growth.LoadLocationDataset(flagDataset)
		if err != nil {
			return nil, err
		}
		tp := growth.NewTableProvider(ds)
		tp.Logger = logger
		s.provider = tp
		logger.Debug("location dataset loaded", "path", flagDataset, "locations", ds.Len(), "features", ds.FeatureNames())
	}

	if s.location != "" {
		cfg.Location = s.location
		cfg.Base = growth.ApplyGrowthRates(s.provider, s.location, cfg.Base)
		for i := range cfg.Scenarios {
			cfg.Scenarios[i].Inputs = growth.ApplyGrowthRates(s.provider, s.location, cfg.Scenarios[i].Inputs)
		}
		logger.Info("growth rates applied", "location", s.location,
			"home", cfg.Base.HomeAppreciationRate, "rent", cfg.Base.RentGrowthRate)
	}
	return s, nil
}

// volatility resolves the GBM sigma for the session location.
func (s *session) volatility() float64 {
	return s.provider.HomeVolatility(s.location, s.cfg.PricePaths.FallbackSigma)
}

func (s *session) run(ctx context.Context, opts calculation.RunOptions) (*domain.AnalysisReport, error) {
	if opts.PricePaths {
		opts.PriceVolatility = s.volatility()
	}
	return s.engine.RunConfiguration(ctx, s.cfg, opts)
}

// emit renders report to stdout, or writes files when --output-dir is set.
func emit(w io.Writer, report *domain.AnalysisReport) error {
	if flagOutputDir == "" {
		if output.NormalizeFormatName(flagFormat) == "all" {
			return fmt.Errorf("format \"all\" requires --output-dir")
		}
		return output.RenderReport(w, report, flagFormat)
	}
	written, err := output.GenerateReport(report, flagFormat, flagOutputDir)
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Fprintf(os.Stderr, "  wrote %s\n", path)
	}
	return nil
}

// analysisCommand builds a subcommand that runs the given analyses against
// a configuration file. check, when set, vets the configuration first; after
// runs once the report has been emitted.
func analysisCommand(use, short string, opts calculation.RunOptions, check func(*domain.Configuration) error, after func(*cobra.Command, *domain.AnalysisReport) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <config-file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(args[0])
			if err != nil {
				return err
			}
			if check != nil {
				if err := check(s.cfg); err != nil {
					return err
				}
			}
			report, err := s.run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := emit(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if after != nil {
				return after(cmd, report)
			}
			return nil
		},
	}
}
