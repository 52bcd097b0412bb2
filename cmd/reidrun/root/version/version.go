package version

import (
	"github.com/motreid/reidrun/internal/cliutil"
	"github.com/motreid/reidrun/internal/launcher"
	"github.com/spf13/cobra"
)

// Version is set at build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// NewVersionCmd reports the build of reidrun and the entry scripts it
// starts when no config overrides them.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long: `Display the version, git commit and build date of reidrun, with the
default interpreter, source directory and entry scripts it launches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := launcher.DefaultConfig()
			return cliutil.HandleOutput(cmd, map[string]any{
				"version":   Version,
				"gitCommit": GitCommit,
				"buildDate": BuildDate,
				"defaults": map[string]any{
					"python":  defaults.Interpreter,
					"workdir": defaults.WorkDir,
					"task":    defaults.Task,
					"scripts": defaults.Scripts,
				},
			})
		},
	}

	cliutil.AddOutputFlags(cmd, "json")

	return cmd
}
