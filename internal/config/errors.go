package config

import "fmt"

// InvalidError reports a malformed configuration value. Field identifies the
// offending entry well enough for the user to find it in the YAML file.
type InvalidError struct {
	Field  string
	Reason string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...interface{}) *InvalidError {
	return &InvalidError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
