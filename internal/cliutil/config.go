package cliutil

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// GetString returns the flag value when it was set on the command line and
// falls back to the config file / REIDRUN_ environment value otherwise.
func GetString(cmd *cobra.Command, flag string) string {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		return f.Value.String()
	}

	if value := viper.GetString(flag); value != "" {
		return value
	}

	value, _ := cmd.Flags().GetString(flag)
	return value
}
