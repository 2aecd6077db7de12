package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmailTaken is returned when a signup email is already registered.
// The check is a pre-insert lookup, not a store-level constraint, so two
// concurrent signups for the same email can still both land.
var ErrEmailTaken = errors.New("email already registered")

// ValidationError carries a human-readable reason for rejecting signup input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// EmailSignup is the persisted marketing signup document. The generated UUID
// doubles as the Mongo _id so no ObjectId ever reaches the wire.
type EmailSignup struct {
	ID          string    `json:"id" bson:"_id"`
	Nickname    string    `json:"nickname" bson:"nickname"`
	Email       string    `json:"email" bson:"email"`
	State       string    `json:"state" bson:"state"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UTMSource   *string   `json:"utm_source,omitempty" bson:"utm_source,omitempty"`
	UTMCampaign *string   `json:"utm_campaign,omitempty" bson:"utm_campaign,omitempty"`
}

type CreateSignupRequest struct {
	Nickname    string  `json:"nickname" binding:"required,min=2,max=50"`
	Email       string  `json:"email" binding:"required,email"`
	State       string  `json:"state" binding:"required"`
	UTMSource   *string `json:"utm_source"`
	UTMCampaign *string `json:"utm_campaign"`
}

func NewEmailSignup(nickname, email, state string, utmSource, utmCampaign *string) *EmailSignup {
	return &EmailSignup{
		ID:          uuid.New().String(),
		Nickname:    nickname,
		Email:       email,
		State:       state,
		CreatedAt:   time.Now().UTC(),
		UTMSource:   utmSource,
		UTMCampaign: utmCampaign,
	}
}
