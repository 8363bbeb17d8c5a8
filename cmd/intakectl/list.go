package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/justsurfingit/sales-intake/internal/services"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var listLimit int

//nolint:gochecknoglobals // Cobra boilerplate
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print stored applications, newest first",
	RunE:  runList,
}

//nolint:gochecknoglobals // Cobra boilerplate
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of stored applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		log, _, closeFn, err := openLog(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		fmt.Fprintln(cmd.OutOrStdout(), log.Len())
		return nil
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(listCmd, countCmd)
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "Maximum rows to print (0 prints all)")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log, cfg, closeFn, err := openLog(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	entries := services.NewReviewService(log, services.XLSXWriter{}, nil, cfg.Location()).List()
	printEntries(cmd, entries, listLimit)
	return nil
}

func printEntries(cmd *cobra.Command, entries []services.ReviewEntry, limit int) {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "№\tДата\tАИА\tТелефон\tШаар\tГрафик")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", e.Number, e.Timestamp, e.Name, e.Phone, e.City, e.Schedule)
	}
	w.Flush()
}
