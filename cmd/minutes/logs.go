package main

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meeting-minutes/internal/convlog"
	"github.com/nguyentantai21042004/meeting-minutes/internal/convstats"
	"github.com/nguyentantai21042004/meeting-minutes/internal/logview"
)

// logQuery selects which day's records a logs subcommand loads.
type logQuery struct {
	date  string
	limit int
}

func (q *logQuery) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&q.date, "date", "", "day to read (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&q.limit, "limit", logview.DefaultLimit, "maximum records to load")
}

func (q *logQuery) open(ctx context.Context, a *app) (logview.Viewer, error) {
	v := logview.New(a.store)
	if q.date == "" {
		v.Open(ctx, q.limit)
		return v, nil
	}
	day, err := time.ParseInLocation(time.DateOnly, q.date, convlog.Beijing)
	if err != nil {
		return nil, fmt.Errorf("invalid --date %q: %w", q.date, err)
	}
	v.OpenDay(ctx, day, q.limit)
	return v, nil
}

func newLogsCmd(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Inspect the conversation log",
	}
	cmd.AddCommand(newLogsListCmd(cfgPath))
	cmd.AddCommand(newLogsShowCmd(cfgPath))
	cmd.AddCommand(newLogsStatsCmd(cfgPath))
	cmd.AddCommand(newLogsPruneCmd(cfgPath))
	cmd.AddCommand(newLogsExportCmd(cfgPath))
	return cmd
}

func newLogsListCmd(cfgPath *string) *cobra.Command {
	var q logQuery
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged completion attempts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			v, err := q.open(cmd.Context(), a)
			if err != nil {
				return err
			}

			records := v.Filter(filter)
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header(logview.Columns)
			for _, r := range records {
				if err := table.Append(logview.NewRow(r).Values()); err != nil {
					return err
				}
			}
			if err := table.Render(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d records\n", len(records), len(v.Records()))
			return nil
		},
	}

	q.register(cmd)
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "case-insensitive match on session, model, meeting info or error")
	return cmd
}

func newLogsShowCmd(cfgPath *string) *cobra.Command {
	var q logQuery

	cmd := &cobra.Command{
		Use:   "show [session-id]",
		Short: "Show one logged attempt in full (default: the newest)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			v, err := q.open(cmd.Context(), a)
			if err != nil {
				return err
			}

			var rec convlog.Record
			if len(args) == 0 {
				records := v.Records()
				if len(records) == 0 {
					return fmt.Errorf("no conversation records")
				}
				rec = records[0]
			} else {
				var ok bool
				if rec, ok = v.Find(args[0]); !ok {
					return fmt.Errorf("no log record for session %s", args[0])
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), logview.Detail(rec))
			return nil
		},
	}

	q.register(cmd)
	return cmd
}

func newLogsStatsCmd(cfgPath *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise today's conversation log",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			stats := convstats.FromStore(cmd.Context(), a.store)

			if asJSON {
				data, err := json.MarshalIndent(stats, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), convstats.Format(stats))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newLogsPruneCmd(cfgPath *string) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove records and log files older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*cfgPath, true)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("days") {
				days = a.store.RetentionDays()
			}
			res := a.store.Prune(cmd.Context(), days)
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d records and %d files older than %d days\n",
				res.RecordsRemoved, res.FilesRemoved, days)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "retention in days (default from config); runs instead of the startup prune")
	return cmd
}

func newLogsExportCmd(cfgPath *string) *cobra.Command {
	var q logQuery
	var filter string

	cmd := &cobra.Command{
		Use:   "export <file.json|file.csv|file.xlsx>",
		Short: "Export the loaded records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath)
			if err != nil {
				return err
			}
			v, err := q.open(cmd.Context(), a)
			if err != nil {
				return err
			}
			records := v.Filter(filter)
			if err := logview.Export(args[0], records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d records to %s\n", len(records), args[0])
			return nil
		},
	}

	q.register(cmd)
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "export only records matching this term")
	return cmd
}
