package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/mapleplan/retirement-planner/internal/batch"
	"github.com/mapleplan/retirement-planner/internal/calculation"
	"github.com/mapleplan/retirement-planner/internal/config"
	"github.com/mapleplan/retirement-planner/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mapleplan",
	Short: "Canadian Retirement Planner CLI",
	Long:  "Retirement projection engine for Canadian households: RRSP/RRIF, TFSA, CPP, OAS and provincial taxes",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "mapleplan %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Project a single retirement plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		plan, err := parser.LoadPlanFromFile(args[0])
		if err != nil {
			return err
		}

		engine := calculation.NewEngine()
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			engine.SetLogger(simpleCLILogger{})
		}

		result, err := engine.ProjectPlan(context.Background(), plan)
		if err != nil {
			return err
		}

		formatName, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(formatName)
		if formatter == nil {
			return fmt.Errorf("unknown format %q, available: %v", formatName, output.AvailableFormatterNames())
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			filename, err := output.WriteFormatted(formatter, result)
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", filename)
			return nil
		}

		data, err := formatter.Format(result)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch [input-file]",
	Short: "Expand parameter ranges and project every scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		batchInput, err := parser.LoadBatchFromFile(args[0])
		if err != nil {
			return err
		}

		engine := calculation.NewEngine()
		runner := batch.NewRunner(engine)
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger := simpleCLILogger{}
			engine.SetLogger(logger)
			runner.SetLogger(logger)
		}
		if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
			runner.Workers = workers
		}

		if estimateOnly, _ := cmd.Flags().GetBool("estimate"); estimateOnly {
			est, err := runner.Estimate(batchInput)
			if err != nil {
				return err
			}
			fmt.Printf("Scenarios:          %d (%d variable fields)\n", est.Scenarios, est.VariableFields)
			fmt.Printf("Estimated duration: %s\n", est.EstimatedDuration)
			if est.OverSoftLimit {
				fmt.Println("Warning: batch exceeds the recommended scenario count")
			}
			return nil
		}

		result, err := runner.Run(context.Background(), batchInput)
		if err != nil {
			return err
		}

		formatName, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(formatName)
		if formatter == nil {
			return fmt.Errorf("unknown format %q, available: %v", formatName, output.AvailableFormatterNames())
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			filename, err := output.WriteBatchFormatted(formatter, result)
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", filename)
			return nil
		}

		data, err := formatter.FormatBatch(result)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write example plan and batch input files",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		files := map[string]any{
			"plan.yaml":  parser.CreateExamplePlan(),
			"batch.yaml": parser.CreateExampleBatch(),
		}
		for name, v := range files {
			data, err := yaml.Marshal(v)
			if err != nil {
				return err
			}
			if err := os.WriteFile(name, data, 0644); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", name)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{calculateCmd, batchCmd} {
		c.Flags().String("format", "console", "output format (console, csv, json)")
		c.Flags().Bool("save", false, "write output to a timestamped file")
		c.Flags().Bool("verbose", false, "enable engine logging")
	}
	batchCmd.Flags().Bool("estimate", false, "size the batch without running it")
	batchCmd.Flags().Int("workers", 0, "concurrent scenario limit (default 10)")

	rootCmd.AddCommand(calculateCmd, batchCmd, initCmd, versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
