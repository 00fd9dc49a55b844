//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

// ConfigError represents a settings file loading or parsing error.
type ConfigError struct {
	Base Error `json:"error"`

	// Path is the settings file that could not be loaded.
	Path string `json:"path,omitempty"`
}

// NewConfigError creates a ConfigError for a broken settings file.
func NewConfigError(path string, cause error) *ConfigError {
	return &ConfigError{
		Base: Error{
			Category: CategoryConfig,
			Code:     CodeConfigParse,
			Message:  "failed to parse settings file",
			Cause:    cause,
			Hint:     "fix or remove the file; matome falls back to default settings",
		},
		Path: path,
	}
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
