package services

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredential = errors.New("gemini api key not configured")
	ErrExternalService   = errors.New("text generation failed")
	ErrDetectionFailure  = errors.New("emotion detection failed")
	ErrUnsupportedImage  = errors.New("unsupported image")
	ErrIncompleteAnswers = errors.New("questionnaire incomplete")
	ErrRateLimited       = errors.New("advice rate limit exceeded")
)

// DetectionFailure describes why the emotion classifier produced no usable
// category. It never leaves the emotion analyzer.
type DetectionFailure struct {
	Reason string
	Err    error
}

func (f *DetectionFailure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrDetectionFailure, f.Reason, f.Err)
	}
	return fmt.Sprintf("%s: %s", ErrDetectionFailure, f.Reason)
}

func (f *DetectionFailure) Unwrap() []error {
	if f.Err != nil {
		return []error{ErrDetectionFailure, f.Err}
	}
	return []error{ErrDetectionFailure}
}
