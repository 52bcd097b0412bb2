package launch

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/motreid/reidrun/internal/cliutil"
	"github.com/motreid/reidrun/internal/launcher"
	"github.com/motreid/reidrun/internal/runconfig"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Fs is the filesystem presets are read from.
var Fs = afero.NewOsFs()

// AddLaunchSupport turns cmd into a launcher for entry: it registers the run
// option flags and a RunE that resolves and starts the external program.
func AddLaunchSupport(cmd *cobra.Command, entry launcher.EntryPoint) *cobra.Command {
	var (
		preset string
		extras []string
		dryRun bool
		grace  time.Duration
	)

	runconfig.BindFlags(cmd.Flags())
	for _, opt := range runconfig.Catalogue() {
		if len(opt.Hints) == 0 {
			continue
		}
		cmd.RegisterFlagCompletionFunc(opt.Name, cobra.FixedCompletions(opt.Hints, cobra.ShellCompDirectiveNoFileComp))
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", "", "YAML file with run options; flags override its values")
	cmd.Flags().StringArrayVarP(&extras, "extra", "e", nil, "Argument outside the known options, forwarded as --key value (e.g. --extra num_workers=8)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the resolved invocation instead of running it")
	cmd.Flags().String("tty", "auto", "Run under a pseudo-terminal: auto, true or false")
	cmd.Flags().String("task", "", "Task passed as the first argument of the entry script (default from config, mot)")
	cmd.Flags().DurationVar(&grace, "grace-period", 10*time.Second, "Time the program gets to exit after an interrupt before it is killed")
	cliutil.AddOutputFlags(cmd, "json")

	cmd.SilenceUsage = true
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		rc := runconfig.New()
		if preset != "" {
			fromPreset, err := runconfig.LoadPreset(Fs, preset)
			if err != nil {
				return err
			}
			rc.Merge(fromPreset)
		}

		fromFlags, err := runconfig.FromFlags(cmd.Flags())
		if err != nil {
			return err
		}
		rc.Merge(fromFlags)

		for _, extra := range extras {
			key, value, err := cliutil.SplitAssignment(extra)
			if err != nil {
				return err
			}
			if err := rc.SetExtra(key, value); err != nil {
				return err
			}
		}

		cfg, err := configFromViper(cmd)
		if err != nil {
			return err
		}

		tty, err := resolveTTY(cliutil.GetString(cmd, "tty"))
		if err != nil {
			return err
		}

		l, err := launcher.New(cfg,
			launcher.WithTTY(tty),
			launcher.WithGracePeriod(grace),
		)
		if err != nil {
			return err
		}

		inv, err := l.Prepare(entry, rc)
		if err != nil {
			return err
		}

		if dryRun {
			return cliutil.HandleOutput(cmd, inv)
		}

		log.Info("Launching run",
			"entry", entry,
			"launch_id", inv.LaunchID,
			"dir", inv.Dir,
			"options", rc.Len(),
		)
		return l.Run(cmd.Context(), inv)
	}

	return cmd
}

// configFromViper builds the launcher configuration from the config file
// and environment, falling back to the defaults for unset keys.
func configFromViper(cmd *cobra.Command) (launcher.Config, error) {
	cfg := launcher.DefaultConfig()

	if v := viper.GetString("python"); v != "" {
		interpreter, err := homedir.Expand(v)
		if err != nil {
			return cfg, fmt.Errorf("failed to expand python: %w", err)
		}
		cfg.Interpreter = interpreter
	}
	if v := viper.GetString("workdir"); v != "" {
		dir, err := homedir.Expand(v)
		if err != nil {
			return cfg, fmt.Errorf("failed to expand workdir: %w", err)
		}
		cfg.WorkDir = dir
	}
	if v := cliutil.GetString(cmd, "task"); v != "" {
		cfg.Task = v
	}
	if v := viper.GetString("train-script"); v != "" {
		cfg.Scripts[launcher.Train] = v
	}
	if v := viper.GetString("test-emb-script"); v != "" {
		cfg.Scripts[launcher.TestEmb] = v
	}
	return cfg, nil
}

func resolveTTY(mode string) (bool, error) {
	switch strings.ToLower(mode) {
	case "", "auto":
		return launcher.IsTerminal(os.Stdout), nil
	}
	tty, err := strconv.ParseBool(mode)
	if err != nil {
		return false, fmt.Errorf("invalid tty mode %q, expected auto, true or false", mode)
	}
	return tty, nil
}
