package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/classlens-org/classlens/analysis"
	"github.com/classlens-org/classlens/config"
	"github.com/classlens-org/classlens/dataset"
)

// ============================================================================
// CLASSLENS CLI — AI impact analysis for student performance data
// ============================================================================

const version = "0.1.0"

var (
	inputFile  string
	outputDir  string
	configPath string
	noCharts   bool
	noReport   bool
	welch      bool
	alpha      float64

	rootCmd = &cobra.Command{
		Use:   "classlens [dataset.csv]",
		Short: "Analyze the impact of AI tool usage on student performance",
		Long: `Classlens loads a student performance dataset, validates it, and
produces summary statistics, correlation analysis, a two-sample t-test
comparing AI users with non-users, twelve PNG figures, and a text report.

Examples:
  classlens                                   # default dataset, ./outputs
  classlens data/students.csv --out results
  classlens --welch --alpha 0.01 --no-charts`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE:          run,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "Path to the CSV dataset (overrides config)")
	rootCmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory for figures and report")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().BoolVar(&noCharts, "no-charts", false, "Skip figure rendering")
	rootCmd.Flags().BoolVar(&noReport, "no-report", false, "Skip the text report")
	rootCmd.Flags().BoolVar(&welch, "welch", false, "Use the unpooled (Welch) t-test variant")
	rootCmd.Flags().Float64Var(&alpha, "alpha", 0, "Significance level for the t-test")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags and the positional argument override the config file.
	if len(args) == 1 {
		cfg.InputFile = args[0]
	}
	if inputFile != "" {
		cfg.InputFile = inputFile
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if noCharts {
		cfg.Charts.Enabled = false
	}
	if noReport {
		cfg.Report.Enabled = false
	}
	if welch {
		cfg.Stats.Welch = true
	}
	if alpha != 0 {
		cfg.Stats.Alpha = alpha
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	outcome, err := analysis.Run(analysis.Config{
		Input:     cfg.InputFile,
		OutputDir: cfg.OutputDir,
		Thresholds: dataset.Thresholds{
			PassScore: cfg.Thresholds.PassScore,
			HighScore: cfg.Thresholds.HighScore,
		},
		Alpha:      cfg.Stats.Alpha,
		Welch:      cfg.Stats.Welch,
		Charts:     cfg.Charts.Enabled,
		Report:     cfg.Report.Enabled,
		ReportFile: cfg.Report.Filename,
	})
	if err != nil {
		return err
	}

	if cfg.Report.Styled {
		fmt.Println(outcome.Report.Styled())
	} else {
		fmt.Println(outcome.Report.Text())
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, dataset.ErrDataFormat) || errors.Is(err, dataset.ErrInsufficientSample) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
