package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rsharma/taxwise/internal/calculation"
	"github.com/rsharma/taxwise/internal/compare"
	"github.com/rsharma/taxwise/internal/config"
	"github.com/rsharma/taxwise/internal/domain"
	"github.com/rsharma/taxwise/internal/output"
)

// zapCLILogger implements calculation.Logger over a zap sugared logger.
type zapCLILogger struct {
	s *zap.SugaredLogger
}

func (l zapCLILogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l zapCLILogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l zapCLILogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l zapCLILogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }

func newDebugLogger() (zapCLILogger, func()) {
	cfg := zap.NewDevelopmentConfig()
	logger, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}
	return zapCLILogger{s: logger.Sugar()}, func() { _ = logger.Sync() }
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxwise %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

var rootCmd = &cobra.Command{
	Use:   "taxwise",
	Short: "India income tax regime comparison CLI",
	Long:  "Compares the old and new income tax regimes for salaried taxpayers and recommends the cheaper one",
}

// loadEngine builds a calculation engine, applying a rules override file
// when one is given or when rules.yaml sits in the working directory.
func loadEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	rulesFile, _ := cmd.Flags().GetString("rules")
	if rulesFile == "" && fileExists("rules.yaml") {
		rulesFile = "rules.yaml"
	}

	if rulesFile == "" {
		return calculation.NewEngine(), nil
	}

	loader := config.NewLoader()
	rules, err := loader.LoadRules(rulesFile)
	if err != nil {
		return nil, err
	}
	return calculation.NewEngineWithRules(rules), nil
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare old vs new regime tax liability",
	Long: `Compare the tax liability under both regimes for one taxpayer profile.

The profile comes from a YAML file, or from environment variables
(BASIC_SALARY, HRA_RECEIVED, ...) when no file is given.

Examples:
  taxwise compare profile.yaml
  taxwise compare profile.yaml --format json
  taxwise compare profile.yaml --format pdf -o report.pdf
  BASIC_SALARY=1200000 taxwise compare
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		loader := config.NewLoader()

		profile, err := loadProfile(loader, args)
		if err != nil {
			log.Fatal(err)
		}

		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			logger, sync := newDebugLogger()
			defer sync()
			engine.SetLogger(logger)
		}

		if !profile.HasEarnings() {
			fmt.Println("No salary data found. Provide a profile file or set environment")
			fmt.Println("variables such as BASIC_SALARY before running a comparison.")
			fmt.Println()
			fmt.Print(output.RenderLimitReference(engine.Rules))
			return
		}

		comparison := compare.NewEngine(engine).Compare(profile)

		outputFormat, _ := cmd.Flags().GetString("format")
		formatter := compare.GetFormatterByName(outputFormat)
		if formatter == nil {
			log.Fatalf("unknown output format %q (want table, json, csv or pdf)", outputFormat)
		}

		data, err := formatter.Format(comparison)
		if err != nil {
			log.Fatal(err)
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile == "" && outputFormat == "pdf" {
			log.Fatal("pdf output requires --output FILE")
		}
		if outputFile != "" {
			if err := os.WriteFile(outputFile, data, 0o644); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Report written to %s\n", outputFile)
			return
		}
		fmt.Print(string(data))
	},
}

func loadProfile(loader *config.Loader, args []string) (*domain.TaxpayerProfile, error) {
	if len(args) == 1 {
		return loader.LoadProfileFromFile(args[0])
	}
	return loader.LoadProfileFromEnv()
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a taxpayer profile file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		loader := config.NewLoader()
		if _, err := loader.LoadProfileFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Profile file %s is valid\n", args[0])
	},
}

var slabsCmd = &cobra.Command{
	Use:   "slabs",
	Short: "Show the tax slabs for both regimes",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(output.RenderSlabReference(engine.Rules))
	},
}

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Show exemption and deduction limits",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(output.RenderLimitReference(engine.Rules))
	},
}

func init() {
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, json, csv, pdf)")
	compareCmd.Flags().StringP("output", "o", "", "Write output to file instead of stdout (required for pdf)")
	compareCmd.Flags().String("rules", "", "Path to a rules override file (default: rules.yaml if it exists)")
	compareCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	slabsCmd.Flags().String("rules", "", "Path to a rules override file (default: rules.yaml if it exists)")
	limitsCmd.Flags().String("rules", "", "Path to a rules override file (default: rules.yaml if it exists)")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(slabsCmd)
	rootCmd.AddCommand(limitsCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
