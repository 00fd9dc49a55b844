//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

// PlanError represents a failure to load a Terraform plan file.
type PlanError struct {
	Base Error `json:"error"`

	// Path is the plan file that could not be loaded.
	Path string `json:"path,omitempty"`
}

// NewExtensionError creates a PlanError for a path without a .json extension.
func NewExtensionError(path string) *PlanError {
	return &PlanError{
		Base: Error{
			Category: CategoryPlan,
			Code:     CodePlanExtension,
			Message:  "plan file is not a JSON file",
			Hint:     "export the plan with: terraform show -json <plan> > plan.json",
		},
		Path: path,
	}
}

// NewReadError creates a PlanError for an unreadable plan file.
func NewReadError(path string, cause error) *PlanError {
	return &PlanError{
		Base: Error{
			Category: CategoryPlan,
			Code:     CodePlanRead,
			Message:  "could not read plan file",
			Cause:    cause,
			Hint:     "check that the file exists and is readable",
		},
		Path: path,
	}
}

// NewParseError creates a PlanError for malformed JSON content.
func NewParseError(path string, cause error) *PlanError {
	return &PlanError{
		Base: Error{
			Category: CategoryPlan,
			Code:     CodePlanParse,
			Message:  "invalid JSON format in plan file",
			Cause:    cause,
			Hint:     "regenerate the file with: terraform show -json <plan> > plan.json",
		},
		Path: path,
	}
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *PlanError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *PlanError) Is(target error) bool {
	t, ok := target.(*PlanError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
