package services

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/justsurfingit/sales-intake/internal/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
)

func TestNotifyNewApplication(t *testing.T) {
	var raws []string
	s := NewNotifyService(func(_ context.Context, raw string) error {
		raws = append(raws, raw)
		return nil
	}, "hr@example.kg", zap.NewNop())

	app := models.Application{ID: 5, Name: "Азамат", Phone: "+996 (700) 123-456", City: "Бишкек"}
	require.NoError(t, s.NewApplication(context.Background(), app))
	require.Len(t, raws, 1)

	msg, err := base64.URLEncoding.DecodeString(raws[0])
	require.NoError(t, err)
	text := string(msg)
	assert.True(t, strings.HasPrefix(text, "To: hr@example.kg\r\n"))
	assert.Contains(t, text, "Телефон: +996 (700) 123-456")
	assert.NotContains(t, text, "Айлык:", "empty fields are skipped")
}

func TestNotifyRetriesServerErrors(t *testing.T) {
	calls := 0
	s := NewNotifyService(func(context.Context, string) error {
		calls++
		if calls < 3 {
			return &googleapi.Error{Code: 503}
		}
		return nil
	}, "hr@example.kg", zap.NewNop())
	s.backoff = time.Millisecond

	require.NoError(t, s.NewApplication(context.Background(), models.Application{ID: 1}))
	assert.Equal(t, 3, calls)
}

func TestNotifyStopsOnClientError(t *testing.T) {
	calls := 0
	s := NewNotifyService(func(context.Context, string) error {
		calls++
		return errors.Wrap(&googleapi.Error{Code: 403}, "send")
	}, "hr@example.kg", zap.NewNop())
	s.backoff = time.Millisecond

	assert.Error(t, s.NewApplication(context.Background(), models.Application{ID: 1}))
	assert.Equal(t, 1, calls)
}

func TestNotifyGivesUp(t *testing.T) {
	calls := 0
	s := NewNotifyService(func(context.Context, string) error {
		calls++
		return errors.New("connection reset")
	}, "hr@example.kg", zap.NewNop())
	s.backoff = time.Millisecond

	assert.Error(t, s.NewApplication(context.Background(), models.Application{ID: 1}))
	assert.Equal(t, 3, calls)
}

func TestNilNotifyServiceIsNoop(t *testing.T) {
	var s *NotifyService
	assert.NotPanics(t, func() { s.NewApplicationAsync(models.Application{}) })
}
