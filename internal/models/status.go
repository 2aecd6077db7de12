package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusCheck is a lightweight heartbeat record: proof that a client was here.
type StatusCheck struct {
	ID         string    `json:"id" bson:"_id"`
	ClientName string    `json:"client_name" bson:"client_name"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}

type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

func NewStatusCheck(clientName string) *StatusCheck {
	return &StatusCheck{
		ID:         uuid.New().String(),
		ClientName: clientName,
		Timestamp:  time.Now().UTC(),
	}
}
