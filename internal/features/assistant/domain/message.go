package domain

import (
	"errors"
	"fmt"
)

// Role identifies the author of a chat message.
type Role string

const (
	// RoleUser marks messages written by the site visitor.
	RoleUser Role = "user"
	// RoleModel marks messages written by the assistant.
	RoleModel Role = "model"
)

var (
	// ErrInvalidRole is returned for history entries outside the closed set.
	ErrInvalidRole = errors.New("invalid message role")
	// ErrEmptyQuestion is returned when the visitor submits a blank message.
	ErrEmptyQuestion = errors.New("question must not be empty")
)

// ParseRole validates a raw string against the closed role set.
func ParseRole(raw string) (Role, error) {
	switch r := Role(raw); r {
	case RoleUser, RoleModel:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, raw)
	}
}

// Message is one turn of the assistant conversation.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}
