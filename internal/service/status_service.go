package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"fireclub-api/internal/logging"
	"fireclub-api/internal/models"
	"fireclub-api/internal/repository"
)

type StatusService struct {
	repo   repository.StatusRepository
	logger *logging.ContextLogger
	tracer trace.Tracer
}

func NewStatusService(repo repository.StatusRepository, logger *logging.ContextLogger) *StatusService {
	return &StatusService{
		repo:   repo,
		logger: logger,
		tracer: otel.Tracer("status-service"),
	}
}

func (s *StatusService) Create(ctx context.Context, clientName string) (*models.StatusCheck, error) {
	ctx, span := s.tracer.Start(ctx, "status.service.create",
		trace.WithAttributes(
			attribute.String("status.client_name", clientName),
		))
	defer span.End()

	check := models.NewStatusCheck(clientName)

	if err := s.repo.Insert(ctx, check); err != nil {
		s.logger.ErrorWithTracing(ctx, "Failed to persist status check", err, logrus.Fields{
			"client_name": clientName,
		})
		span.RecordError(err)
		return nil, err
	}

	s.logger.InfoWithTracing(ctx, "Recorded status check", logrus.Fields{
		"status_id":   check.ID,
		"client_name": check.ClientName,
	})

	span.SetAttributes(
		attribute.String("status.id", check.ID),
		attribute.Bool("success", true),
	)
	return check, nil
}

func (s *StatusService) List(ctx context.Context) ([]*models.StatusCheck, error) {
	ctx, span := s.tracer.Start(ctx, "status.service.list")
	defer span.End()

	checks, err := s.repo.List(ctx, repository.ListLimit)
	if err != nil {
		s.logger.ErrorWithTracing(ctx, "Failed to list status checks", err, nil)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("status.count", len(checks)),
		attribute.Bool("success", true),
	)
	return checks, nil
}
