package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"fireclub-api/internal/models"
)

const (
	statusCollection = "status_checks"
	signupCollection = "email_signups"
)

type MongoStatusRepository struct {
	coll   *mongo.Collection
	tracer trace.Tracer
}

func NewMongoStatusRepository(db *mongo.Database) *MongoStatusRepository {
	return &MongoStatusRepository{
		coll:   db.Collection(statusCollection),
		tracer: otel.Tracer("status-repository"),
	}
}

func (r *MongoStatusRepository) Insert(ctx context.Context, check *models.StatusCheck) error {
	ctx, span := r.tracer.Start(ctx, "status.repository.insert",
		trace.WithAttributes(
			attribute.String("status.id", check.ID),
			attribute.String("operation", "database.write"),
			attribute.String("db.collection", statusCollection),
		))
	defer span.End()

	if _, err := r.coll.InsertOne(ctx, check); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to insert status check: %w", err)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return nil
}

func (r *MongoStatusRepository) List(ctx context.Context, limit int64) ([]*models.StatusCheck, error) {
	ctx, span := r.tracer.Start(ctx, "status.repository.list",
		trace.WithAttributes(
			attribute.String("operation", "database.read"),
			attribute.String("db.collection", statusCollection),
		))
	defer span.End()

	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetLimit(limit))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to query status checks: %w", err)
	}

	checks := make([]*models.StatusCheck, 0)
	if err := cursor.All(ctx, &checks); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to decode status checks: %w", err)
	}

	span.SetAttributes(
		attribute.Int("status.count", len(checks)),
		attribute.Bool("success", true),
	)
	return checks, nil
}

type MongoSignupRepository struct {
	coll   *mongo.Collection
	tracer trace.Tracer
}

func NewMongoSignupRepository(db *mongo.Database) *MongoSignupRepository {
	return &MongoSignupRepository{
		coll:   db.Collection(signupCollection),
		tracer: otel.Tracer("signup-repository"),
	}
}

func (r *MongoSignupRepository) FindByEmail(ctx context.Context, email string) (*models.EmailSignup, error) {
	ctx, span := r.tracer.Start(ctx, "signup.repository.find_by_email",
		trace.WithAttributes(
			attribute.String("signup.email", email),
			attribute.String("operation", "database.read"),
			attribute.String("db.collection", signupCollection),
		))
	defer span.End()

	var signup models.EmailSignup
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&signup)
	if errors.Is(err, mongo.ErrNoDocuments) {
		span.SetAttributes(attribute.Bool("found", false))
		return nil, nil
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to look up signup by email: %w", err)
	}

	span.SetAttributes(
		attribute.Bool("found", true),
		attribute.String("signup.id", signup.ID),
	)
	return &signup, nil
}

func (r *MongoSignupRepository) Insert(ctx context.Context, signup *models.EmailSignup) error {
	ctx, span := r.tracer.Start(ctx, "signup.repository.insert",
		trace.WithAttributes(
			attribute.String("signup.id", signup.ID),
			attribute.String("signup.email", signup.Email),
			attribute.String("operation", "database.write"),
			attribute.String("db.collection", signupCollection),
		))
	defer span.End()

	if _, err := r.coll.InsertOne(ctx, signup); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to insert signup: %w", err)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return nil
}

func (r *MongoSignupRepository) ListNewestFirst(ctx context.Context, limit int64) ([]*models.EmailSignup, error) {
	ctx, span := r.tracer.Start(ctx, "signup.repository.list_newest_first",
		trace.WithAttributes(
			attribute.String("operation", "database.read"),
			attribute.String("db.collection", signupCollection),
		))
	defer span.End()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to query signups: %w", err)
	}

	signups := make([]*models.EmailSignup, 0)
	if err := cursor.All(ctx, &signups); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to decode signups: %w", err)
	}

	span.SetAttributes(
		attribute.Int("signup.count", len(signups)),
		attribute.Bool("success", true),
	)
	return signups, nil
}
