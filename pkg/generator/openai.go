package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/kaptinlin/jsonrepair"
	"github.com/sashabaranov/go-openai"
	"github.com/soundprediction/ramify/pkg/prompts"
	"github.com/soundprediction/ramify/pkg/types"
)

// Default model settings.
const (
	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.7
)

// Config holds configuration for the OpenAI-backed generator.
type Config struct {
	APIKey      string  `json:"api_key" mapstructure:"api_key"`
	Model       string  `json:"model" mapstructure:"model"`
	BaseURL     string  `json:"base_url,omitempty" mapstructure:"base_url"` // Custom base URL for OpenAI-compatible services
	Temperature float32 `json:"temperature,omitempty" mapstructure:"temperature"`
	MaxTokens   int     `json:"max_tokens,omitempty" mapstructure:"max_tokens"`
}

// OpenAIGenerator implements Generator against any OpenAI-compatible chat
// completion API.
type OpenAIGenerator struct {
	client *openai.Client
	config Config
}

// NewOpenAIGenerator creates a generator backed by the OpenAI chat API.
func NewOpenAIGenerator(config Config) *OpenAIGenerator {
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Temperature == 0 {
		config.Temperature = DefaultTemperature
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}
}

// Generate implements Generator. Any transport or parse failure is reported
// as a *GenerationError so callers can treat it as transient.
func (g *OpenAIGenerator) Generate(ctx context.Context, parent types.Entity, count int) ([]Candidate, error) {
	messages := prompts.ExpandConcept(parent, count)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.config.Model,
		Messages:    toOpenAIMessages(messages),
		Temperature: g.config.Temperature,
		MaxTokens:   g.config.MaxTokens,
	})
	if err != nil {
		return nil, NewGenerationError("chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return nil, NewGenerationError("chat completion returned no choices", ErrEmptyResponse)
	}

	candidates, err := parseCandidates(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, NewGenerationError("failed to parse candidates", err)
	}
	if len(candidates) > count {
		candidates = candidates[:count]
	}
	for i := range candidates {
		candidates[i].Score = ClampScore(candidates[i].Score)
	}
	return candidates, nil
}

// Close implements Generator.
func (g *OpenAIGenerator) Close() error { return nil }

func toOpenAIMessages(messages []types.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		switch m.Role {
		case RoleSystem:
			role = openai.ChatMessageRoleSystem
		case RoleAssistant:
			role = openai.ChatMessageRoleAssistant
		}
		out = append(out, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	return out
}

// parseCandidates unmarshals the model output into candidates. Models
// occasionally fence the array in markdown or emit slightly broken JSON;
// both cases are repaired before giving up.
func parseCandidates(content string) ([]Candidate, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var candidates []Candidate
	if err := json.Unmarshal([]byte(content), &candidates); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(content)
		if repairErr != nil {
			return nil, fmt.Errorf("unmarshal failed (%w) and repair failed (%v)", err, repairErr)
		}
		if err := json.Unmarshal([]byte(repaired), &candidates); err != nil {
			return nil, fmt.Errorf("unmarshal of repaired JSON failed: %w", err)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrEmptyResponse
	}
	return candidates, nil
}
