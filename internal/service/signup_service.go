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
	"fireclub-api/internal/validation"
)

type SignupService struct {
	repo   repository.SignupRepository
	logger *logging.ContextLogger
	tracer trace.Tracer
}

func NewSignupService(repo repository.SignupRepository, logger *logging.ContextLogger) *SignupService {
	return &SignupService{
		repo:   repo,
		logger: logger,
		tracer: otel.Tracer("signup-service"),
	}
}

// Create validates and persists a marketing signup. The duplicate check is a
// lookup followed by an insert, not an atomic upsert: two concurrent requests
// with the same email can both pass the check. Kept that way on purpose so
// the duplicate failure mode stays a clean 400, not a driver write error.
func (s *SignupService) Create(ctx context.Context, req *models.CreateSignupRequest) (*models.EmailSignup, error) {
	ctx, span := s.tracer.Start(ctx, "signup.service.create",
		trace.WithAttributes(
			attribute.String("signup.email", req.Email),
			attribute.String("signup.state", req.State),
		))
	defer span.End()

	nickname, err := validation.SanitizeNickname(req.Nickname)
	if err != nil {
		span.SetAttributes(attribute.String("reject.reason", "nickname"))
		return nil, err
	}
	if err := validation.ValidateState(req.State); err != nil {
		span.SetAttributes(attribute.String("reject.reason", "state"))
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.ErrorWithTracing(ctx, "Duplicate-email lookup failed", err, logrus.Fields{
			"email": req.Email,
		})
		span.RecordError(err)
		return nil, err
	}
	if existing != nil {
		s.logger.WarnWithTracing(ctx, "Rejected duplicate signup", logrus.Fields{
			"email": req.Email,
		})
		span.SetAttributes(attribute.String("reject.reason", "duplicate"))
		return nil, models.ErrEmailTaken
	}

	signup := models.NewEmailSignup(nickname, req.Email, req.State, req.UTMSource, req.UTMCampaign)

	if err := s.repo.Insert(ctx, signup); err != nil {
		s.logger.ErrorWithTracing(ctx, "Failed to persist signup", err, logrus.Fields{
			"email": req.Email,
		})
		span.RecordError(err)
		return nil, err
	}

	s.logger.InfoWithTracing(ctx, "Created signup", logrus.Fields{
		"signup_id": signup.ID,
		"email":     signup.Email,
		"state":     signup.State,
	})

	span.SetAttributes(
		attribute.String("signup.id", signup.ID),
		attribute.Bool("success", true),
	)
	return signup, nil
}

func (s *SignupService) List(ctx context.Context) ([]*models.EmailSignup, error) {
	ctx, span := s.tracer.Start(ctx, "signup.service.list")
	defer span.End()

	signups, err := s.repo.ListNewestFirst(ctx, repository.ListLimit)
	if err != nil {
		s.logger.ErrorWithTracing(ctx, "Failed to list signups", err, nil)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("signup.count", len(signups)),
		attribute.Bool("success", true),
	)
	return signups, nil
}
