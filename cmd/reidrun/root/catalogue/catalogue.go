package catalogue

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/motreid/reidrun/internal/cliutil"
	"github.com/motreid/reidrun/internal/runconfig"
	"github.com/spf13/cobra"
)

// NewOptionsCmd lists the run options train and test-emb understand.
func NewOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the recognised run options",
		Long:  `List every run option with the argument it becomes on the external program's command line.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			tmpl, _ := cmd.Flags().GetString("template")
			if format == "table" && tmpl == "" {
				return printTable(cmd)
			}
			return cliutil.HandleOutput(cmd, runconfig.Catalogue())
		},
	}

	cliutil.AddOutputFlags(cmd, "table")

	return cmd
}

func printTable(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FLAG\tARGUMENT\tKIND\tDESCRIPTION")
	for _, opt := range runconfig.Catalogue() {
		usage := opt.Usage
		if len(opt.Hints) > 0 {
			usage += " [" + strings.Join(opt.Hints, ", ") + "]"
		}
		fmt.Fprintf(w, "--%s\t%s\t%s\t%s\n", opt.Name, opt.Arg, opt.Kind, usage)
	}
	return w.Flush()
}
