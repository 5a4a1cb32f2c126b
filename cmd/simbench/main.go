package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Exit codes for different failure modes
const (
	ExitSuccess          = 0 // Command completed
	ExitValidationFailed = 1 // Input data failed validation
	ExitError            = 2 // Configuration or runtime error
)

// ValidationError indicates that a command ran successfully but the input
// data failed schema validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func main() {
	// Optional .env file for local overrides; absence is fine.
	godotenv.Load() //nolint:errcheck

	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			os.Exit(ExitValidationFailed)
		}

		// All other errors are configuration/runtime errors
		os.Exit(ExitError)
	}
}
