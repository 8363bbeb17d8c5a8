package services

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/justsurfingit/sales-intake/internal/database"
	"github.com/justsurfingit/sales-intake/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type countingWriter struct{ calls int }

func (c *countingWriter) Write(io.Writer, []models.Application) error {
	c.calls++
	return nil
}

func logWith(t *testing.T, names ...string) *ApplicationLog {
	t.Helper()
	l := LoadApplicationLog(context.Background(), database.NewMemorySlotStore(), testKey, zap.NewNop())
	for i, n := range names {
		require.NoError(t, l.Append(context.Background(), models.Application{
			ID:        int64(i + 1),
			Timestamp: "05.03.2026, 09:07",
			Name:      n,
			Phone:     "+996 (700) 123-456",
			Languages: "Кыргызча — Эркин",
		}))
	}
	return l
}

func TestReviewListNewestFirst(t *testing.T) {
	r := NewReviewService(logWith(t, "A", "B", "C"), XLSXWriter{}, nil, bishkek)

	entries := r.List()
	require.Len(t, entries, 3)
	assert.Equal(t, "C", entries[0].Name)
	assert.Equal(t, 3, entries[0].Number)
	assert.Equal(t, "A", entries[2].Name)
	assert.Equal(t, 1, entries[2].Number)
}

func TestReviewExportEmptyLog(t *testing.T) {
	w := &countingWriter{}
	r := NewReviewService(logWith(t), w, nil, bishkek)

	var buf bytes.Buffer
	name, err := r.Export(&buf)
	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.Empty(t, name)
	assert.Zero(t, w.calls)
	assert.Zero(t, buf.Len())
}

func TestReviewExportWorkbook(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	r := NewReviewService(logWith(t, "Алиев Азамат", "Сыдыкова Айгүл"), XLSXWriter{}, metrics, bishkek)
	r.Now = func() time.Time { return time.Date(2026, 3, 5, 20, 0, 0, 0, time.UTC) }

	var buf bytes.Buffer
	name, err := r.Export(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Арыздар_06-03-2026.xlsx", name)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.exports))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, exportSheet, f.GetSheetName(0))
	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{
		"№", "Дата", "АИА", "Телефон", "Шаар", "График", "Тажрыйба",
		"Багыт", "Айлык", "Башталуу", "Тилдер", "Өзү жөнүндө", "Булак",
	}, rows[0])
	assert.Equal(t, []string{"1", "05.03.2026, 09:07", "Алиев Азамат", "+996 (700) 123-456"}, rows[1][:4])
	assert.Equal(t, "Кыргызча — Эркин", rows[1][10])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "Сыдыкова Айгүл", rows[2][2])

	width, err := f.GetColWidth(exportSheet, "M")
	require.NoError(t, err)
	assert.Equal(t, 35.0, width)
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "Арыздар_01-12-2026.xlsx", ExportFileName(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)))
}
