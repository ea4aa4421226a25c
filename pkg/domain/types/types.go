package types

import (
	"github.com/google/uuid"
)

// SubscriptionID identifies a tenant integration in the subscription store
type SubscriptionID string

// String returns the string representation
func (id SubscriptionID) String() string {
	return string(id)
}

// NewSubscriptionID creates a new SubscriptionID
func NewSubscriptionID() SubscriptionID {
	return SubscriptionID(uuid.New().String())
}

// ObjectID is the upstream directory object identifier of a user
type ObjectID string

// String returns the string representation
func (id ObjectID) String() string {
	return string(id)
}

// RequestID correlates log lines of one operation
type RequestID string

// String returns the string representation
func (id RequestID) String() string {
	return string(id)
}

// NewRequestID creates a new time-ordered RequestID
func NewRequestID() RequestID {
	id, err := uuid.NewV7()
	if err != nil {
		return RequestID(uuid.New().String())
	}
	return RequestID(id.String())
}
