// Package genai implements the itinerary generation client.
// It builds a natural-language prompt plus a structural JSON schema from the
// trip input, invokes the AI service, and parses the textual response into
// the domain itinerary contract. Every call is a fresh request — there is no
// caching, no deduplication, and no retry: a single failed attempt surfaces
// immediately to the caller.
package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/lic521/wanderai/internal/domain"
)

// temperature biases the model toward determinism over variety, for
// response-shape stability.
const temperature = 0.4

// Generator produces an itinerary for a trip input, or fails with one of the
// package sentinel errors. The planner depends on this interface, not the
// concrete Client, so it can be unit-tested without a network.
type Generator interface {
	Generate(ctx context.Context, input domain.TripInput) (domain.ItineraryData, error)
}

// Config holds the generation client settings.
type Config struct {
	// APIKey is the AI service credential. May be empty: Generate then fails
	// with ErrMissingAPIKey before any network call is made.
	APIKey string
	// Model is the chat model name, e.g. "gpt-5-mini".
	Model string
	// Language is the language the itinerary must be written in,
	// e.g. "简体中文 (Simplified Chinese)".
	Language string
}

// Client is the OpenAI-backed Generator implementation.
type Client struct {
	api      openai.Client
	apiKey   string
	model    string
	language string
	log      *slog.Logger
}

// compile-time check: Client must satisfy Generator.
var _ Generator = (*Client)(nil)

// NewClient constructs a Client from cfg. The underlying SDK client is built
// eagerly but opens no connection until the first call.
func NewClient(cfg Config, log *slog.Logger) *Client {
	return &Client{
		api:      openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		apiKey:   strings.TrimSpace(cfg.APIKey),
		model:    cfg.Model,
		language: cfg.Language,
		log:      log,
	}
}

// Generate requests a structured itinerary for input and parses the reply.
// The response is constrained to the itinerary JSON schema at low temperature;
// the text is fence-stripped before parsing because models wrap JSON in
// markdown fences regardless of instructions.
func (c *Client) Generate(ctx context.Context, input domain.TripInput) (domain.ItineraryData, error) {
	if c.apiKey == "" {
		return domain.ItineraryData{}, fmt.Errorf("genai.Client.Generate: %w", ErrMissingAPIKey)
	}

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(input, c.language)),
		},
		Temperature: openai.Float(temperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "itinerary",
					Description: openai.String("A complete day-by-day travel itinerary"),
					Schema:      itinerarySchema(),
				},
			},
		},
	})
	if err != nil {
		c.log.Error("itinerary generation call failed", "error", err, "destination", input.Destination)
		return domain.ItineraryData{}, serviceError(err)
	}

	if len(resp.Choices) == 0 {
		return domain.ItineraryData{}, fmt.Errorf("genai.Client.Generate: %w", ErrEmptyResponse)
	}
	return ParseItinerary(resp.Choices[0].Message.Content)
}

// ParseItinerary strips an optional code fence from text and unmarshals the
// remainder into the itinerary contract. It never returns a partially
// populated itinerary: either the whole document parses or it fails.
func ParseItinerary(text string) (domain.ItineraryData, error) {
	cleaned := StripFence(text)
	if cleaned == "" {
		return domain.ItineraryData{}, fmt.Errorf("genai.Client.Generate: %w", ErrEmptyResponse)
	}

	var data domain.ItineraryData
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return domain.ItineraryData{}, fmt.Errorf("genai.Client.Generate: %w: %v", ErrMalformedResponse, err)
	}
	return data, nil
}

// serviceError wraps an SDK failure in ErrService, passing the upstream
// message through when the API supplied one.
func serviceError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return fmt.Errorf("genai.Client.Generate: %w: %s", ErrService, apiErr.Message)
	}
	return fmt.Errorf("genai.Client.Generate: %w: please check your network and try again", ErrService)
}
