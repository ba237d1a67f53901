package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

const llmPrompt = `You are a geocoder. Reply with a single JSON object of the form ` +
	`{"latitude": <number>, "longitude": <number>} giving the coordinates of the place the user names. ` +
	`If the place cannot be located reply {"error": "unknown"}.`

// LLMResolver asks a chat-completion model for the coordinates of an address.
type LLMResolver struct {
	client *goopenai.Client
	model  string
}

type llmOptions struct {
	token      string
	model      string
	baseURL    string
	httpClient *http.Client
}

type LLMOption func(*llmOptions)

func WithToken(token string) LLMOption {
	return func(o *llmOptions) { o.token = token }
}

func WithModel(model string) LLMOption {
	return func(o *llmOptions) { o.model = model }
}

func WithBaseURL(u string) LLMOption {
	return func(o *llmOptions) { o.baseURL = u }
}

func WithHTTPClient(c *http.Client) LLMOption {
	return func(o *llmOptions) { o.httpClient = c }
}

func NewLLMResolver(opts ...LLMOption) (*LLMResolver, error) {
	o := &llmOptions{model: "gpt-4o-mini"}
	for _, opt := range opts {
		opt(o)
	}

	if o.token == "" {
		return nil, errors.New("llm resolver: missing API key, set OPENAI_API_KEY")
	}

	cfg := goopenai.DefaultConfig(o.token)
	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}
	if o.httpClient != nil {
		cfg.HTTPClient = o.httpClient
	}

	return &LLMResolver{
		client: goopenai.NewClientWithConfig(cfg),
		model:  o.model,
	}, nil
}

type llmCoordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Error     string   `json:"error"`
}

func (l *LLMResolver) ResolveCoordinates(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "llm.ResolveCoordinates")(&err)

	norm := normalize(address)
	if norm == "" {
		return domain.Coordinates{}, errors.New("llm geocode: address must be non-empty")
	}

	resp, err := l.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: l.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: llmPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: norm},
		},
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("llm geocode %q: chat completion: %w", norm, err)
	}

	if len(resp.Choices) == 0 {
		return domain.Coordinates{}, fmt.Errorf("llm geocode %q: empty response", norm)
	}

	return parseLLMCoordinates(resp.Choices[0].Message.Content)
}

// parseLLMCoordinates decodes the model reply, tolerating markdown fences.
func parseLLMCoordinates(content string) (domain.Coordinates, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var out llmCoordinates
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &out); err != nil {
		return domain.Coordinates{}, fmt.Errorf("llm geocode: decode reply: %w", err)
	}

	if out.Error != "" {
		return domain.Coordinates{}, fmt.Errorf("llm geocode: model could not locate address: %s", out.Error)
	}
	if out.Latitude == nil || out.Longitude == nil {
		return domain.Coordinates{}, errors.New("llm geocode: reply missing latitude or longitude")
	}

	lat, lon := *out.Latitude, *out.Longitude
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return domain.Coordinates{}, fmt.Errorf("llm geocode: coordinates out of range lat=%v lon=%v", lat, lon)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
