package repository

import (
	"context"
	"sort"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"fireclub-api/internal/models"
)

// In-memory implementations used in tests and local runs without a database.

type InMemoryStatusRepository struct {
	mu     sync.RWMutex
	checks []*models.StatusCheck
	tracer trace.Tracer
}

func NewInMemoryStatusRepository() *InMemoryStatusRepository {
	return &InMemoryStatusRepository{
		checks: make([]*models.StatusCheck, 0),
		tracer: otel.Tracer("status-repository"),
	}
}

func (r *InMemoryStatusRepository) Insert(ctx context.Context, check *models.StatusCheck) error {
	_, span := r.tracer.Start(ctx, "status.repository.insert",
		trace.WithAttributes(
			attribute.String("status.id", check.ID),
			attribute.String("operation", "database.write"),
		))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.checks = append(r.checks, check)
	span.SetAttributes(attribute.Bool("success", true))
	return nil
}

func (r *InMemoryStatusRepository) List(ctx context.Context, limit int64) ([]*models.StatusCheck, error) {
	_, span := r.tracer.Start(ctx, "status.repository.list",
		trace.WithAttributes(attribute.String("operation", "database.read")))
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.checks)
	if int64(n) > limit {
		n = int(limit)
	}
	out := make([]*models.StatusCheck, n)
	copy(out, r.checks[:n])

	span.SetAttributes(
		attribute.Int("status.count", len(out)),
		attribute.Bool("success", true),
	)
	return out, nil
}

type InMemorySignupRepository struct {
	mu      sync.RWMutex
	signups []*models.EmailSignup
	tracer  trace.Tracer
}

func NewInMemorySignupRepository() *InMemorySignupRepository {
	return &InMemorySignupRepository{
		signups: make([]*models.EmailSignup, 0),
		tracer:  otel.Tracer("signup-repository"),
	}
}

func (r *InMemorySignupRepository) FindByEmail(ctx context.Context, email string) (*models.EmailSignup, error) {
	_, span := r.tracer.Start(ctx, "signup.repository.find_by_email",
		trace.WithAttributes(
			attribute.String("signup.email", email),
			attribute.String("operation", "database.read"),
		))
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.signups {
		if s.Email == email {
			span.SetAttributes(attribute.Bool("found", true))
			return s, nil
		}
	}

	span.SetAttributes(attribute.Bool("found", false))
	return nil, nil
}

func (r *InMemorySignupRepository) Insert(ctx context.Context, signup *models.EmailSignup) error {
	_, span := r.tracer.Start(ctx, "signup.repository.insert",
		trace.WithAttributes(
			attribute.String("signup.id", signup.ID),
			attribute.String("signup.email", signup.Email),
			attribute.String("operation", "database.write"),
		))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.signups = append(r.signups, signup)
	span.SetAttributes(attribute.Bool("success", true))
	return nil
}

func (r *InMemorySignupRepository) ListNewestFirst(ctx context.Context, limit int64) ([]*models.EmailSignup, error) {
	_, span := r.tracer.Start(ctx, "signup.repository.list_newest_first",
		trace.WithAttributes(attribute.String("operation", "database.read")))
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.EmailSignup, len(r.signups))
	copy(out, r.signups)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}

	span.SetAttributes(
		attribute.Int("signup.count", len(out)),
		attribute.Bool("success", true),
	)
	return out, nil
}
