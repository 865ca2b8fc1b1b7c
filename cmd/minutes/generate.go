package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-minutes/internal/document"
	"github.com/nguyentantai21042004/meeting-minutes/internal/minutes"
)

func newGenerateCmd(cfgPath *string) *cobra.Command {
	var meeting meetingFlags
	var transcriptFile, outputDir string

	cmd := &cobra.Command{
		Use:   "generate [recording]",
		Short: "Transcribe a recording (or read a transcript) and generate minutes documents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && transcriptFile == "" {
				return fmt.Errorf("either a recording or --transcript is required")
			}

			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			defer a.cleanupTemp(context.Background())

			meeting.hint(cmd.ErrOrStderr())
			info, err := meeting.info()
			if err != nil {
				return err
			}
			prompt, err := meeting.prompt()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				res, err := a.minutes.Process(ctx, minutes.ProcessInput{
					AudioPath:    args[0],
					MeetingInfo:  info,
					CustomPrompt: prompt,
					OutputDir:    outputDir,
					Observer:     progressPrinter(ctx, a.log),
				})
				if err != nil {
					return reportGeneration(cmd, generationOf(res), err)
				}
				printDocuments(cmd, res.MinutesPath, res.CompletePath, res.Generation.SessionID)
				return nil
			}

			return generateFromTranscript(ctx, cmd, a, info, prompt, transcriptFile, outputDir)
		},
	}

	meeting.register(cmd)
	cmd.Flags().StringVar(&transcriptFile, "transcript", "", "use an existing transcript instead of a recording")
	cmd.Flags().StringVar(&outputDir, "output", "", "output directory (default from config)")
	return cmd
}

func generateFromTranscript(ctx context.Context, cmd *cobra.Command, a *app, info, prompt, transcriptFile, outputDir string) error {
	data, err := os.ReadFile(transcriptFile)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	transcript := string(data)

	gen, err := a.minutes.Generate(ctx, minutes.GenerateInput{
		MeetingInfo:   info,
		Transcription: transcript,
		CustomPrompt:  prompt,
		Observer:      progressPrinter(ctx, a.log),
	})
	if err != nil {
		return reportGeneration(cmd, gen, err)
	}

	if outputDir == "" {
		outputDir = a.cfg.Paths.Output
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	at := time.Now()
	meeting := document.Meeting{Info: info, Minutes: gen.Minutes, Transcript: transcript, GeneratedAt: at}

	minutesPath := filepath.Join(outputDir, document.MinutesFileName(at))
	if err := a.writer.WriteMinutes(meeting, minutesPath); err != nil {
		return err
	}
	var completePath string
	if a.cfg.Document.WantsTranscript() {
		completePath = filepath.Join(outputDir, document.CompleteFileName(at))
		if err := a.writer.WriteComplete(meeting, completePath); err != nil {
			return err
		}
	}

	printDocuments(cmd, minutesPath, completePath, gen.SessionID)
	return nil
}

// generationOf tolerates a nil result from an early pipeline failure.
func generationOf(r *minutes.ProcessResult) *minutes.GenerateResult {
	if r == nil {
		return nil
	}
	return r.Generation
}

func reportGeneration(cmd *cobra.Command, gen *minutes.GenerateResult, err error) error {
	if gen != nil && gen.SessionID != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "attempt logged as session %s\n", gen.SessionID)
	}
	return err
}

func printDocuments(cmd *cobra.Command, minutesPath, completePath, sessionID string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "minutes:", minutesPath)
	if completePath != "" {
		fmt.Fprintln(out, "complete:", completePath)
	}
	if sessionID != "" {
		fmt.Fprintln(out, "session:", sessionID)
	}
}
