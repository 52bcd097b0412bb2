package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/motreid/reidrun/cmd/reidrun/root"
	"github.com/motreid/reidrun/internal/launcher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cmd     = root.NewRootCmd()
)

func init() {
	cobra.OnInitialize(initConfig)
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.reidrun.yaml)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	var exitErr *launcher.ExitError
	if errors.As(err, &exitErr) {
		log.Error("Run failed", "entry", exitErr.Entry, "exit_code", exitErr.Code)
		os.Exit(exitErr.Code)
	}
	log.Error(err)
	os.Exit(1)
}

func initConfig() {
	viper.SetEnvPrefix("REIDRUN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Fatal("Can't find home directory", "error", err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".reidrun")
		viper.SetConfigType("yaml")
		viper.SafeWriteConfig()
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Fatal("Can't read config", "error", err)
	}
}
