package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nguyentantai21042004/meeting-minutes/internal/config"
)

func newModelsCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models the Ollama host serves",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			names, err := a.llm.ListModels(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				marker := " "
				if name == a.cfg.LLM.Model {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
}

func newCheckCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check external tools, the model file and the Ollama endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			failed := 0

			report := func(name string, err error) {
				if err != nil {
					failed++
					fmt.Fprintf(out, "✗ %-10s %v\n", name, err)
					return
				}
				fmt.Fprintf(out, "✓ %s\n", name)
			}

			for _, bin := range []string{a.cfg.Audio.FFmpegPath, a.cfg.Audio.FFprobePath} {
				_, err := a.exec.Execute(ctx, bin, "-version")
				report(bin, err)
			}

			if a.exec.Available(a.cfg.Whisper.BinaryPath) {
				report(a.cfg.Whisper.BinaryPath, nil)
			} else {
				report(a.cfg.Whisper.BinaryPath, errors.New("not found in PATH"))
			}

			if _, err := os.Stat(a.cfg.Whisper.ModelPath); err != nil {
				report("model", fmt.Errorf("whisper model %s: %w", a.cfg.Whisper.ModelPath, err))
			} else {
				report("model", nil)
			}

			report("ollama", a.llm.Probe(ctx))

			if failed > 0 {
				return fmt.Errorf("%d checks failed", failed)
			}
			return nil
		},
	}
}

func newConfigCmd(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with every default filled in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(*cfgPath); err == nil && !force {
				fmt.Fprintln(cmd.OutOrStdout(), "exists", *cfgPath)
				return nil
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			cfg := &config.Config{}
			cfg.SetDefaults()
			if err := config.Save(cfg, *cfgPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "created", *cfgPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
