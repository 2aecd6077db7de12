package repository

import (
	"context"

	"fireclub-api/internal/models"
)

// ListLimit caps every listing query. There is no pagination beyond this.
const ListLimit = 1000

type StatusRepository interface {
	Insert(ctx context.Context, check *models.StatusCheck) error
	// List returns up to limit records in store-native order. No sort is
	// requested; insertion order is typical but not guaranteed.
	List(ctx context.Context, limit int64) ([]*models.StatusCheck, error)
}

type SignupRepository interface {
	// FindByEmail does an exact, case-sensitive match on the stored email.
	// A miss returns (nil, nil).
	FindByEmail(ctx context.Context, email string) (*models.EmailSignup, error)
	Insert(ctx context.Context, signup *models.EmailSignup) error
	// ListNewestFirst returns up to limit signups ordered by createdAt descending.
	ListNewestFirst(ctx context.Context, limit int64) ([]*models.EmailSignup, error)
}
