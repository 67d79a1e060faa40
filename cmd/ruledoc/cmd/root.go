// Package cmd implements the ruledoc command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Gobd/ruledoc"
)

const (
	keyVerbose           = "verbose"
	keyDocumentationRule = "documentation-rule"
	keyDelimiter         = "delimiter"
	keySeed              = "seed"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "ruledoc",
	Short: "Document body parameters from validation rules",
	Long: `ruledoc reads a ruleset file (YAML, JSON or TOML) mapping field paths to
Laravel-style validation rules and prints the documented parameters: type,
required flag, description and an example value.

Only fields carrying the documentation rule are printed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (YAML or TOML)")
	flags.BoolP(keyVerbose, "v", false, "verbose output")
	flags.String(keyDocumentationRule, ruledoc.DocumentationRule, "name of the documentation rule")
	flags.String(keyDelimiter, ruledoc.DocumentationDelimiter, "separator between description and example")
	for _, key := range []string{keyVerbose, keyDocumentationRule, keyDelimiter} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(buildCmd, lintCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "error: read config %s: %v\n", cfgFile, err)
			os.Exit(1)
		}
	}
	viper.SetEnvPrefix("RULEDOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func newLogger() (*zap.Logger, error) {
	if viper.GetBool(keyVerbose) {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func ruleOptions(logger *zap.Logger) []ruledoc.Option {
	return []ruledoc.Option{
		ruledoc.WithLogger(logger),
		ruledoc.WithDocumentationRule(viper.GetString(keyDocumentationRule)),
		ruledoc.WithDelimiter(viper.GetString(keyDelimiter)),
	}
}
