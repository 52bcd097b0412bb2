package set

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ValidConfigKeys defines the allowed configuration keys
var ValidConfigKeys = []string{
	"python",
	"workdir",
	"task",
	"train-script",
	"test-emb-script",
	"tty",
	"log-level",
}

func NewSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  `Set a configuration value that will be persisted in the config file.`,
		Example: heredoc.Doc(`
			# Use the interpreter of a virtualenv
			$ reidrun config set python ~/venvs/fairmot/bin/python

			# Run the entry scripts from a checkout outside the current directory
			$ reidrun config set workdir ~/src/FairMOT/src
		`),
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return ValidConfigKeys, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			if !slices.Contains(ValidConfigKeys, key) {
				return fmt.Errorf("invalid config key: %s. Valid keys are: %v", key, ValidConfigKeys)
			}

			viper.Set(key, value)

			if err := viper.WriteConfig(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully set %s = %s\n", key, value)
			return nil
		},
	}

	return cmd
}
