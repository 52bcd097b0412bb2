package config

import (
	"fmt"
	"strings"

	"github.com/motreid/reidrun/cmd/reidrun/root/config/set"
	"github.com/spf13/cobra"
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Configuration commands",
		Long: fmt.Sprintf(`Manage the interpreter, source directory, task and entry scripts used to
launch training and embedding-test runs.

Settings live in $HOME/.reidrun.yaml (or --config) and can be overridden
per invocation with REIDRUN_<KEY> environment variables, dashes replaced
by underscores (e.g. REIDRUN_TRAIN_SCRIPT).

Keys: %s`, strings.Join(set.ValidConfigKeys, ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(set.NewSetCmd())

	return cmd
}
