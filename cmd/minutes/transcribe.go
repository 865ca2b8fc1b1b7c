package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newTranscribeCmd(cfgPath *string) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "transcribe <recording>",
		Short: "Transcribe a recording to plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			transcript, err := a.minutes.Transcribe(ctx, args[0])
			if err != nil {
				return err
			}

			if outFile == "" {
				fmt.Fprintln(cmd.OutOrStdout(), transcript.Text)
				return nil
			}
			if err := os.WriteFile(outFile, []byte(transcript.Text+"\n"), 0644); err != nil {
				return fmt.Errorf("write transcript: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "transcript: %s (%.1fs audio)\n", outFile, transcript.Duration)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the transcript to a file instead of stdout")
	return cmd
}
