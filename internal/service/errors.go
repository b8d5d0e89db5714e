package service

import (
	"errors"
	"fmt"

	"github.com/donatehub/donatehub-go/internal/model"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNotOwner           = errors.New("requester does not own this resource")
	ErrValidation         = errors.New("validation failed")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already taken")
)

// NotFoundError reports a lookup by id that matched nothing.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// AuthorizationError reports a mutation attempted by someone other than the
// resource owner.
type AuthorizationError struct {
	RequesterID string
	OwnerID     string
}

func (e *AuthorizationError) Error() string {
	return ErrNotOwner.Error()
}

func (e *AuthorizationError) Is(target error) bool { return target == ErrNotOwner }

// ValidationError lists the fields of a request that failed validation.
type ValidationError struct {
	Fields []model.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	msg := fmt.Sprintf("%s: %s", e.Fields[0].Field, e.Fields[0].Message)
	if len(e.Fields) > 1 {
		msg = fmt.Sprintf("%s (and %d more errors)", msg, len(e.Fields)-1)
	}
	return msg
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
