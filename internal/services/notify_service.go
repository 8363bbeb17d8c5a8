package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/justsurfingit/sales-intake/internal/models"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
)

// RawMailer sends one RFC 2822 message encoded as base64url.
type RawMailer func(ctx context.Context, raw string) error

// GmailMailer sends through the authenticated mailbox ("me").
func GmailMailer(svc *gmail.Service) RawMailer {
	return func(ctx context.Context, raw string) error {
		_, err := svc.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
		return err
	}
}

// NotifyService mails HR a copy of every new application.
// A nil *NotifyService is valid and does nothing.
type NotifyService struct {
	send   RawMailer
	to     string
	logger *zap.Logger

	attempts int
	backoff  time.Duration
}

func NewNotifyService(send RawMailer, to string, logger *zap.Logger) *NotifyService {
	return &NotifyService{
		send:     send,
		to:       to,
		logger:   logger.Named("notify"),
		attempts: 3,
		backoff:  time.Second,
	}
}

// NewApplicationAsync notifies on a detached goroutine with a 2 minute limit.
func (s *NotifyService) NewApplicationAsync(app models.Application) {
	if s == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := s.NewApplication(ctx, app); err != nil {
			s.logger.Error("hr notification failed", zap.Int64("id", app.ID), zap.Error(err))
		}
	}()
}

func (s *NotifyService) NewApplication(ctx context.Context, app models.Application) error {
	raw := base64.URLEncoding.EncodeToString(composeMessage(s.to, app))
	err := retry(ctx, s.attempts, s.backoff, s.logger, func() error {
		return s.send(ctx, raw)
	})
	if err != nil {
		return err
	}
	s.logger.Info("hr notified", zap.Int64("id", app.ID))
	return nil
}

func composeMessage(to string, app models.Application) []byte {
	var body strings.Builder
	for _, line := range [][2]string{
		{"Дата", app.Timestamp},
		{"АИА", app.Name},
		{"Телефон", app.Phone},
		{"Шаар", app.City},
		{"График", app.Schedule},
		{"Тажрыйба", app.Experience},
		{"Багыт", app.SalesType},
		{"Айлык", app.Salary},
		{"Башталуу", app.StartDate},
		{"Тилдер", app.Languages},
		{"Өзү жөнүндө", app.About},
		{"Булак", app.Source},
	} {
		if line[1] == "" {
			continue
		}
		fmt.Fprintf(&body, "%s: %s\r\n", line[0], line[1])
	}

	subject := mime.BEncoding.Encode("UTF-8", "Жаңы арыз: "+app.Name)
	msg := "To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n" +
		"\r\n" + body.String()
	return []byte(msg)
}

// retry executes f with exponential backoff. Client errors (4xx) are not retried.
func retry(ctx context.Context, attempts int, sleep time.Duration, logger *zap.Logger, f func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = f(); err == nil {
			return nil
		}
		if isClientError(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		logger.Warn("api error, retrying", zap.Error(err), zap.Duration("in", sleep))
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "retry aborted")
		case <-time.After(sleep):
		}
		sleep *= 2
	}
	return errors.Wrapf(err, "failed after %d attempts", attempts)
}

func isClientError(err error) bool {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code >= 400 && gErr.Code < 500
	}
	return false
}
