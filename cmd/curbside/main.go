package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/boristopalov/curbside/pkg/config"
	"github.com/boristopalov/curbside/pkg/experiment"
)

// promptSeed keeps interactive runs reproducible unless --seed is given
const promptSeed int64 = 25

type runFlags struct {
	configPath string
	locations  int
	day        string
	seed       int64
	pItem      float64
	pContam    float64
	pMiss      float64
	maxSteps   int
	output     string
}

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "curbside",
		Short: "Curbside simulates a waste collector working a street, followed by a municipal inspection.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				log.SetOutput(io.Discard)
			}
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log run progress to stderr")

	rootCmd.AddCommand(newRunCmd(), newPromptCmd())

	for _, envFile := range []string{
		".env",
		"../../.env",
	} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one collection day and print the audit log and fines",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, f)
			if err != nil {
				return err
			}
			res, err := experiment.Run(cfg)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, f.output)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML file with simulation settings")
	cmd.Flags().IntVarP(&f.locations, "locations", "n", config.DefaultLocations, "number of locations on the street")
	cmd.Flags().StringVarP(&f.day, "day", "d", "garbage", "collection day: garbage or recycle")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed for a reproducible run")
	cmd.Flags().Float64Var(&f.pItem, "p-item", config.DefaultPItem, "chance of a correct item in each bin")
	cmd.Flags().Float64Var(&f.pContam, "p-contam", config.DefaultPContam, "chance of a contaminating item in each bin")
	cmd.Flags().Float64Var(&f.pMiss, "p-miss", config.DefaultPMiss, "chance a pickup is missed")
	cmd.Flags().IntVar(&f.maxSteps, "max-steps", 0, "step budget (default two per location)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "text", "output format: text or yaml")
	return cmd
}

func newPromptCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Ask for the collection day and street length, then run",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			day, err := p.day()
			if err != nil {
				return err
			}
			n := p.locations()

			cfg, err := config.FromEnv(config.Default())
			if err != nil {
				return err
			}
			cfg.Day = day.String()
			cfg.Locations = n
			cfg.Seed = &seed

			res, err := experiment.Run(cfg)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), res, "text")
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", promptSeed, "seed for the run")
	return cmd
}

// buildConfig layers defaults, the config file, CURBSIDE_* variables and
// explicitly set flags, in that order
func buildConfig(cmd *cobra.Command, f *runFlags) (config.SimulationConfig, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	cfg, err := config.FromEnv(cfg)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("locations") {
		cfg.Locations = f.locations
	}
	if flags.Changed("day") {
		cfg.Day = f.day
	}
	if flags.Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if flags.Changed("p-item") {
		cfg.PItem = f.pItem
	}
	if flags.Changed("p-contam") {
		cfg.PContam = f.pContam
	}
	if flags.Changed("p-miss") {
		cfg.PMiss = f.pMiss
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = f.maxSteps
	}
	return cfg, nil
}

func writeResult(w io.Writer, res *experiment.Result, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(res)
	case "text", "":
		_, err := io.WriteString(w, renderText(res, useColor(w)))
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}

// useColor is true only when w is an interactive terminal, so redirected
// output stays free of escape codes
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
