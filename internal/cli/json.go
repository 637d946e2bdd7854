package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Global structured output flags
var (
	jsonOutput bool
	yamlOutput bool
)

// Response is the standard envelope for all structured CLI output.
type Response struct {
	OK       bool        `json:"ok" yaml:"ok"`
	Data     interface{} `json:"data,omitempty" yaml:"data,omitempty"`
	Error    *ErrorInfo  `json:"error,omitempty" yaml:"error,omitempty"`
	Warnings []Warning   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// ErrorInfo contains structured error information.
type ErrorInfo struct {
	Code       string `json:"code" yaml:"code"`
	Message    string `json:"message" yaml:"message"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Warning represents a non-fatal warning.
type Warning struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// outputStructured writes the response as JSON or YAML to stdout.
func outputStructured(resp Response) {
	if yamlOutput {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		_ = enc.Encode(resp)
		_ = enc.Close()
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

// outputSuccess outputs a successful response.
func outputSuccess(data interface{}) {
	outputStructured(Response{OK: true, Data: data})
}

// outputSuccessWithWarnings outputs a successful response with warnings.
func outputSuccessWithWarnings(data interface{}, warnings []Warning) {
	outputStructured(Response{OK: true, Data: data, Warnings: warnings})
}

// outputError outputs an error response.
func outputError(code, message, suggestion string) {
	outputStructured(Response{
		OK: false,
		Error: &ErrorInfo{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
		},
	})
}

// isStructuredOutput returns true if JSON or YAML output is enabled.
func isStructuredOutput() bool {
	return jsonOutput || yamlOutput
}

// handleError handles an error appropriately based on output mode.
// In structured mode, outputs an error envelope. In text mode, returns the error for Cobra.
func handleError(code string, err error, suggestion string) error {
	if isStructuredOutput() {
		outputError(code, err.Error(), suggestion)
		return nil // Don't let Cobra also print the error
	}
	if suggestion != "" {
		return fmt.Errorf("%w\n\n%s", err, suggestion)
	}
	return err
}

// handleErrorMsg handles an error message appropriately based on output mode.
func handleErrorMsg(code, message, suggestion string) error {
	return handleError(code, fmt.Errorf("%s", message), suggestion)
}
