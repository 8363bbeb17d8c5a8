package services

import (
	"io"
	"time"

	"github.com/justsurfingit/sales-intake/internal/models"
	"github.com/pkg/errors"
)

// SpreadsheetWriter renders applications as a workbook, one row each, in the given order.
type SpreadsheetWriter interface {
	Write(w io.Writer, apps []models.Application) error
}

// ReviewEntry is one application as listed on the admin screen.
type ReviewEntry struct {
	Number int `json:"number"`
	models.Application
}

type ReviewService struct {
	Log     *ApplicationLog
	Writer  SpreadsheetWriter
	Metrics *Metrics
	Loc     *time.Location
	Now     func() time.Time
}

func NewReviewService(log *ApplicationLog, writer SpreadsheetWriter, metrics *Metrics, loc *time.Location) *ReviewService {
	return &ReviewService{Log: log, Writer: writer, Metrics: metrics, Loc: loc, Now: time.Now}
}

// List returns the log newest first. Number counts down from the total.
func (r *ReviewService) List() []ReviewEntry {
	apps := r.Log.All()
	entries := make([]ReviewEntry, 0, len(apps))
	for i := len(apps) - 1; i >= 0; i-- {
		entries = append(entries, ReviewEntry{Number: i + 1, Application: apps[i]})
	}
	return entries
}

// Export writes the whole log in stored order and returns the download name.
// An empty log produces nothing and ErrNothingToExport.
func (r *ReviewService) Export(w io.Writer) (string, error) {
	apps := r.Log.All()
	if len(apps) == 0 {
		return "", ErrNothingToExport
	}
	if err := r.Writer.Write(w, apps); err != nil {
		return "", errors.Wrap(err, "write workbook")
	}
	r.Metrics.export()
	return ExportFileName(r.Now().In(r.Loc)), nil
}

func ExportFileName(t time.Time) string {
	return "Арыздар_" + t.Format("02-01-2006") + ".xlsx"
}
