package root

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/motreid/reidrun/cmd/reidrun/root/catalogue"
	"github.com/motreid/reidrun/cmd/reidrun/root/config"
	"github.com/motreid/reidrun/cmd/reidrun/root/testemb"
	"github.com/motreid/reidrun/cmd/reidrun/root/train"
	"github.com/motreid/reidrun/cmd/reidrun/root/version"
	"github.com/motreid/reidrun/internal/cliutil"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reidrun <command> <subcommand> [flags]",
		Short: "Launch MOT ReID training and embedding evaluation runs",
		Long: heredoc.Doc(`
			reidrun starts the training and embedding-test programs of a MOT
			re-identification model with a fixed set of named options, from the
			program's source directory, and exits with the program's status.
		`),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(cliutil.GetString(cmd, "log-level"))
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			log.SetLevel(level)
			return nil
		},
	}

	cmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	cmd.AddCommand(train.NewTrainCmd())
	cmd.AddCommand(testemb.NewTestEmbCmd())
	cmd.AddCommand(catalogue.NewOptionsCmd())
	cmd.AddCommand(config.NewConfigCmd())
	cmd.AddCommand(version.NewVersionCmd())

	return cmd
}
