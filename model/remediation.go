package model

// RemediationResult is the terminal state of a remediation action.
type RemediationResult struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func Succeeded(message string, details map[string]any) RemediationResult {
	return RemediationResult{Success: true, Message: message, Details: details}
}

func Failed(message string) RemediationResult {
	return RemediationResult{Success: false, Message: message}
}
