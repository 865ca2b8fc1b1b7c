package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-minutes/internal/minutes"
	"github.com/nguyentantai21042004/meeting-minutes/internal/processor"
	"github.com/nguyentantai21042004/meeting-minutes/internal/watcher"
)

func newWatchCmd(cfgPath *string) *cobra.Command {
	var meeting meetingFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Process every recording dropped into the inbox directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			meeting.hint(cmd.ErrOrStderr())
			info, err := meeting.info()
			if err != nil {
				return err
			}
			prompt, err := meeting.prompt()
			if err != nil {
				return err
			}

			inbox := a.cfg.Paths.Inbox
			if err := os.MkdirAll(inbox, 0755); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w, err := watcher.New(watcher.Options{
				Dir:    inbox,
				Accept: processor.IsSupported,
				Logger: a.log,
				Handler: func(ctx context.Context, path string) error {
					res, err := a.minutes.Process(ctx, minutes.ProcessInput{
						AudioPath:    path,
						MeetingInfo:  info,
						CustomPrompt: prompt,
					})
					if err != nil {
						return err
					}
					a.log.Info(ctx, "Minutes ready: %s", res.MinutesPath)
					return nil
				},
			})
			if err != nil {
				return err
			}
			defer a.cleanupTemp(context.Background())
			defer w.Stop()

			a.log.Info(ctx, "========================================")
			a.log.Info(ctx, "Meeting minutes watcher is ready!")
			a.log.Info(ctx, "Monitoring: %s", inbox)
			a.log.Info(ctx, "Output: %s", a.cfg.Paths.Output)
			a.log.Info(ctx, "Model: %s at %s", a.cfg.LLM.Model, a.cfg.LLM.APIURL)
			a.log.Info(ctx, "Press Ctrl+C to stop")
			a.log.Info(ctx, "========================================")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			a.log.Info(context.Background(), "Watcher stopped")
			return nil
		},
	}

	meeting.register(cmd)
	return cmd
}
