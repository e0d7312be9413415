// Package openai provides the optional generative fallback responder. It is
// a drop-in variant of the template responder behind the same capability;
// the default deployment never loads it, keeping query serving free of
// network calls.
package openai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultChatModel is the model used for generative fallback responses.
const DefaultChatModel = openai.GPT4oMini

// systemPrompt constrains the assistant to guidance-only BFSI answers.
// Concrete rates, limits, and charges must come from pre-authored artifacts,
// never from the model.
const systemPrompt = "You are a banking, financial services, and insurance (BFSI) " +
	"call-center assistant. Answer only BFSI questions, in general guidance terms. " +
	"Never state specific interest rates, fees, limits, or other financial figures; " +
	"direct the customer to official documents or their branch for exact numbers."

var (
	// ErrNoAPIKey is returned when the OpenAI API key is not set
	ErrNoAPIKey = errors.New("OPENAI_API_KEY environment variable not set")
	// ErrEmptyResponse is returned when the API returns no choices
	ErrEmptyResponse = errors.New("no completion returned")
)

// ChatAPI defines the interface for chat completion generation
type ChatAPI interface {
	CreateCompletion(ctx context.Context, query string) (string, error)
}

// Client wraps the OpenAI API client as a fallback responder.
type Client struct {
	api ChatAPI
}

type openAIAdapter struct {
	client *openai.Client
	model  string
}

func newOpenAIAdapter(apiKey, model string) *openAIAdapter {
	if model == "" {
		model = DefaultChatModel
	}
	return &openAIAdapter{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// CreateCompletion calls the OpenAI API to generate a response
func (a *openAIAdapter) CreateCompletion(ctx context.Context, query string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// NewClient creates a new OpenAI-backed fallback responder.
func NewClient(apiKey string) *Client {
	return &Client{api: newOpenAIAdapter(apiKey, "")}
}

// NewClientFromEnv creates a Client using the OPENAI_API_KEY environment variable
func NewClientFromEnv() (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	return NewClient(apiKey), nil
}

// Respond generates a response for the query. The category is always empty:
// generative answers do not belong to a catalog category.
func (c *Client) Respond(ctx context.Context, query string) (string, string, error) {
	text, err := c.api.CreateCompletion(ctx, query)
	if err != nil {
		return "", "", fmt.Errorf("failed to create completion: %w", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", "", ErrEmptyResponse
	}
	return text, "", nil
}
