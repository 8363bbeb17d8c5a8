package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/justsurfingit/sales-intake/internal/services"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all applications to an .xlsx workbook",
	Long: `Write every stored application to Арыздар_<DD-MM-YYYY>.xlsx, one row per
application in submission order. Nothing is written when the log is empty.

Example:
  intakectl export
  intakectl export --output-dir ~/Documents`,
	RunE: runExport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOutputDir, "output-dir", ".", "Directory to write the workbook into")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log, cfg, closeFn, err := openLog(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	review := services.NewReviewService(log, services.XLSXWriter{}, nil, cfg.Location())
	path, err := writeExport(review, exportOutputDir)
	if errors.Is(err, services.ErrNothingToExport) {
		fmt.Fprintln(cmd.OutOrStdout(), "No applications to export.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d applications to %s\n", log.Len(), path)
	return nil
}

// writeExport renders the workbook in memory first so an empty log or a
// render failure leaves no file behind.
func writeExport(review *services.ReviewService, dir string) (string, error) {
	var buf bytes.Buffer
	name, err := review.Export(&buf)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}
