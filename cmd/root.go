package cmd

import (
	"fmt"
	"log"
	"os"

	"ormcheatsheet/config"
	"ormcheatsheet/pkg/logger"

	"github.com/spf13/cobra"
)

type rootConfig struct {
	seed     int64
	policies int
	claims   int
	verbose  bool
}

var rootCfg rootConfig

var rootCmd = &cobra.Command{
	Use:   "ormcheatsheet [command]",
	Short: "ORM query cheatsheet over a sample policies and claims dataset",
	Long: `Generates a seeded insurance dataset, loads it into an in-memory MySQL-compatible store
and shows, for each catalog query, the GORM expression, the SQL it renders to and its rows.
Without a command the HTTP API is started.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentPreRunE = initRuntime
	rootCmd.PersistentFlags().Int64Var(&rootCfg.seed, "seed", 0, "Dataset seed (default 41, or DATASET_SEED env)")
	rootCmd.PersistentFlags().IntVar(&rootCfg.policies, "policies", 0, "Number of policies (default 100, or POLICY_COUNT env)")
	rootCmd.PersistentFlags().IntVar(&rootCfg.claims, "claims", 0, "Number of claims (default 30, or CLAIM_COUNT env)")
	rootCmd.PersistentFlags().BoolVarP(&rootCfg.verbose, "verbose", "v", false, "Log at the configured level for non-server commands")
}

// initRuntime loads configuration, applies flag overrides and starts the logger.
func initRuntime(cmd *cobra.Command, _ []string) error {
	if err := config.LoadConfig(); err != nil {
		return fmt.Errorf("LoadConfig error: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		config.Cfg.DatasetSeed = rootCfg.seed
	}
	if flags.Changed("policies") {
		config.Cfg.PolicyCount = rootCfg.policies
	}
	if flags.Changed("claims") {
		config.Cfg.ClaimCount = rootCfg.claims
	}

	level := logger.ParseLogLevel(config.Cfg.LogLevel)
	if err := logger.InitWithConfig(
		config.Cfg.LogFile,
		level,
		config.Cfg.LogMaxSize,
		config.Cfg.LogMaxBackups,
		config.Cfg.LogMaxAge,
		config.Cfg.LogCompress,
	); err != nil {
		return fmt.Errorf("logger init error: %w", err)
	}

	// Table output goes to stdout; keep it readable unless asked otherwise.
	if !isServe(cmd) && !rootCfg.verbose && level < logger.WARN {
		logger.SetLevel(logger.WARN)
	}
	return nil
}

func isServe(cmd *cobra.Command) bool {
	return cmd == rootCmd || cmd == serveCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}
