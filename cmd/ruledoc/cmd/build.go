package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Gobd/ruledoc"
	"github.com/Gobd/ruledoc/fake"
	"github.com/Gobd/ruledoc/internal/rulefile"
	"github.com/Gobd/ruledoc/resolve"
)

var buildCmd = &cobra.Command{
	Use:   "build FILE",
	Short: "Print the documented parameters of a ruleset as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().Uint64(keySeed, 0, "seed for example values (0 picks a random one)")
	_ = viper.BindPFlag(keySeed, buildCmd.Flags().Lookup(keySeed))
}

func runBuild(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	rules, err := rulefile.Load(args[0])
	if err != nil {
		return err
	}
	logger.Debug("ruleset loaded", zap.String("file", args[0]), zap.Int("fields", len(rules)))

	b := ruledoc.New(resolve.New(), fake.New(viper.GetUint64(keySeed)), ruleOptions(logger)...)
	params, err := b.Build(rules)
	if err != nil {
		return fmt.Errorf("build %s: %w", args[0], err)
	}

	out, err := json.MarshalIndent(params, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
