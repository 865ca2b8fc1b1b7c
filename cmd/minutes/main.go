package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
)

func main() {
	// A missing .env is fine; MINUTES_* variables may come from the shell.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "minutes",
		Short:         "Turn meeting recordings into formatted minutes with a local LLM",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultConfigPath, "config file path")

	root.AddCommand(newGenerateCmd(&cfgPath))
	root.AddCommand(newTranscribeCmd(&cfgPath))
	root.AddCommand(newWatchCmd(&cfgPath))
	root.AddCommand(newLogsCmd(&cfgPath))
	root.AddCommand(newModelsCmd(&cfgPath))
	root.AddCommand(newCheckCmd(&cfgPath))
	root.AddCommand(newConfigCmd(&cfgPath))

	return root
}
