package errors

import "portal/internal/errors"

// Resolve finds the AppError in err's chain. Errors without one are reported
// as ErrInternalError and ok is false.
func Resolve(err error) (appErr AppError, ok bool) {
	if err == nil {
		return nil, false
	}
	if found, isApp := errors.AsType[AppError](err); isApp {
		return found, true
	}

	return ErrInternalError, false
}

// IsUnauthorized reports whether err is a gate rejection.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
