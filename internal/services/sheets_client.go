package services

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/justsurfingit/sales-intake/internal/models"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Sender delivers one application to the remote collector.
type Sender interface {
	Send(ctx context.Context, payload models.SheetsPayload) error
}

// SheetsClient posts applications to a Google Apps Script web app (or any
// JSON endpoint). The response body is not inspected: any HTTP response
// counts as delivered, only transport errors fail.
type SheetsClient struct {
	URL    string
	client *resty.Client
	logger *zap.Logger
}

// NewSheetsClient leaves the transport without a timeout when timeout is 0.
func NewSheetsClient(url string, timeout time.Duration, logger *zap.Logger) *SheetsClient {
	c := resty.New().SetHeader("Content-Type", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &SheetsClient{URL: url, client: c, logger: logger.Named("sheets")}
}

func (s *SheetsClient) Send(ctx context.Context, payload models.SheetsPayload) error {
	if s.URL == "" {
		return ErrSenderNotConfigured
	}
	s.logger.Debug("sending application", zap.Any("payload", payload))

	resp, err := s.client.R().SetContext(ctx).SetBody(payload).Post(s.URL)
	if err != nil {
		return errors.Wrap(err, "post application")
	}
	s.logger.Debug("collector responded", zap.Int("status", resp.StatusCode()))
	return nil
}
