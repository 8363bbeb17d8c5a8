package services

import (
	"context"

	"github.com/justsurfingit/sales-intake/internal/models"
	"go.uber.org/zap"
)

// IntakeService is the delivery leg of a submission:
// assemble, send to the collector, append to the log, notify HR.
type IntakeService struct {
	Assembler *Assembler
	Sender    Sender
	Log       *ApplicationLog
	Notify    *NotifyService
	Metrics   *Metrics
	logger    *zap.Logger
}

func NewIntakeService(assembler *Assembler, sender Sender, log *ApplicationLog, notify *NotifyService, metrics *Metrics, logger *zap.Logger) *IntakeService {
	return &IntakeService{
		Assembler: assembler,
		Sender:    sender,
		Log:       log,
		Notify:    notify,
		Metrics:   metrics,
		logger:    logger.Named("intake"),
	}
}

// Deliver expects a validated draft. Nothing is appended when the send fails.
func (s *IntakeService) Deliver(ctx context.Context, d models.Draft) (models.Application, error) {
	app := s.Assembler.Assemble(d)

	if err := s.Sender.Send(ctx, s.Assembler.Payload(d, app)); err != nil {
		s.Metrics.submission("failed")
		s.logger.Warn("application not delivered", zap.Int64("id", app.ID), zap.Error(err))
		return models.Application{}, err
	}
	s.Metrics.submission("sent")

	if err := s.Log.Append(ctx, app); err != nil {
		// The collector already has the record; the local copy is a cache.
		s.logger.Error("application log not persisted", zap.Int64("id", app.ID), zap.Error(err))
	}
	s.logger.Info("application received", zap.Int64("id", app.ID), zap.Int("total", s.Log.Len()))

	s.Notify.NewApplicationAsync(app)
	return app, nil
}
