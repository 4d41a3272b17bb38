package entities

import "fmt"

// Store domains, one backing file each
const (
	DomainEconomy       = "economy"
	DomainEconomyConfig = "economy_config"
	DomainXP            = "xp"
	DomainXPConfig      = "xp_config"
	DomainVIP           = "vip"
	DomainVIPConfig     = "vip_config"
)

// StoreCorruptError is returned when a backing file exists but cannot be parsed.
// The affected domain must not be used until an operator fixes the file.
type StoreCorruptError struct {
	Domain string
	Path   string
	Err    error
}

func (e *StoreCorruptError) Error() string {
	return fmt.Sprintf("%s store %s is corrupt: %v", e.Domain, e.Path, e.Err)
}

func (e *StoreCorruptError) Unwrap() error {
	return e.Err
}

// StoreWriteError is returned when persisting a mutation failed.
// The mutation is not committed.
type StoreWriteError struct {
	Domain string
	Path   string
	Err    error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("failed to write %s store %s: %v", e.Domain, e.Path, e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}

// ValidationError reports a malformed argument
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
