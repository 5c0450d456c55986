package genai

import "errors"

// Sentinel errors for the generation path. Each message is suitable for
// direct user display; handlers surface it as the notification text.
var (
	// ErrMissingAPIKey means no AI credential is configured. Checked before
	// any network call — the rest of the app functions without the key.
	ErrMissingAPIKey = errors.New("AI API key is missing, please check your environment configuration")

	// ErrEmptyResponse means the service replied with no usable text.
	ErrEmptyResponse = errors.New("no response from AI")

	// ErrMalformedResponse means the response text did not parse as JSON
	// after fence-stripping.
	ErrMalformedResponse = errors.New("AI response was not a valid itinerary")

	// ErrService wraps network/service-level failures from the underlying
	// client. The upstream message is attached when available.
	ErrService = errors.New("failed to generate itinerary")
)
