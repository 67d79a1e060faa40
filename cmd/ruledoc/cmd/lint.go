package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Gobd/ruledoc"
	"github.com/Gobd/ruledoc/internal/rulefile"
)

var lintCmd = &cobra.Command{
	Use:   "lint FILE [EXCLUDED_FIELD...]",
	Short: "List fields that have rules but no documentation rule",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLint,
}

func runLint(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	rules, err := rulefile.Load(args[0])
	if err != nil {
		return err
	}

	missing := ruledoc.MissingDocumentationWith(rules, ruleOptions(logger), args[1:]...)
	for _, path := range missing {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	if len(missing) > 0 {
		logger.Debug("undocumented fields", zap.Strings("fields", missing))
		return fmt.Errorf("%d undocumented field(s)", len(missing))
	}
	return nil
}
