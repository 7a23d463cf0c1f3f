package domain

import "errors"

// Error categories for everything the services can fail with. Raise sites
// wrap these with fmt.Errorf("%w: ...") so the handler layer can classify
// with errors.Is while keeping the human-readable message.
var (
	// ErrValidation marks malformed or missing input.
	ErrValidation = errors.New("validation failed")

	// ErrAuthentication marks bad credentials or a bad/expired/missing token.
	ErrAuthentication = errors.New("authentication failed")

	// ErrConflict marks a duplicate unique field, e.g. an email that is
	// already registered.
	ErrConflict = errors.New("conflict")

	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDependency marks an unexpected failure from the external store.
	// It is logged in full server-side and never shown to the client.
	ErrDependency = errors.New("dependency failure")
)

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

func IsAuthentication(err error) bool { return errors.Is(err, ErrAuthentication) }

func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsDependency(err error) bool { return errors.Is(err, ErrDependency) }

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
