package models

// FieldError is a single user-visible validation problem.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// WizardState is the externally visible state of a multi-step flow.
type WizardState struct {
	Flow             string            `json:"flow"`
	CurrentStep      int               `json:"currentStep"`
	TotalSteps       int               `json:"totalSteps"`
	StepName         string            `json:"stepName"`
	Fields           map[string]string `json:"fields"`
	ValidationErrors []FieldError      `json:"validationErrors,omitempty"`
}
