package passgen

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is matched by every ConfigError.
var ErrInvalidConfiguration = errors.New("invalid configuration")

var (
	ErrNoCategories  = &ConfigError{Reason: "select at least one character set"}
	ErrEmptyAlphabet = &ConfigError{Reason: "character set is empty after exclusions"}
)

// ConfigError reports a request that cannot produce passwords.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Reason
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

func invalidf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
