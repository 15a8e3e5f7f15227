package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/LinguaLabs/golingo"
)

// OpenAIProvider implements Provider using OpenAI's API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate translates one text using OpenAI.
func (p *OpenAIProvider) Translate(ctx context.Context, req TranslateRequest) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", nil
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.buildSystemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: p.buildUserMessage(req)},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", &golingo.ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &golingo.ProviderError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return p.parseResponse(resp.Choices[0].Message.Content)
}

func (p *OpenAIProvider) buildSystemPrompt(req TranslateRequest) string {
	sourceName := golingo.GetLanguageName(req.SourceLang)
	targetName := golingo.GetLanguageName(req.TargetLang)

	contextText := "The text is a short phrase from a traveler."
	if req.Context != "" {
		contextText = fmt.Sprintf("The text is for: %s. Adapt the tone to be appropriate for this context.", req.Context)
	}

	prompt := fmt.Sprintf(`# Role
You are an expert native translator. You translate short %s phrases into idiomatic %s with the fluency of a highly educated native speaker.

# Context
%s

# Style Guide
- **Natural Flow**: Avoid literal translations. Rephrase to sound completely natural to a native speaker.
- **Idioms**: Never translate idioms literally. Replace them with natural %s equivalents.
- **Formatting**: Preserve meaningful whitespace and use idiomatic punctuation for the target language.`,
		sourceName, targetName, contextText, targetName)

	if len(req.Glossary) > 0 {
		prompt += "\n\n# Glossary\nWhen you encounter these phrases, prefer these translations (unless context demands otherwise):"
		for source, target := range req.Glossary {
			prompt += fmt.Sprintf("\n- %q → %s", source, target)
		}
	}

	prompt += `

# Format
Return a valid JSON object with a single key "translation" containing the translated string.
Example: { "translation": "translated text" }
Do NOT wrap the output in Markdown code blocks.`

	return prompt
}

func (p *OpenAIProvider) buildUserMessage(req TranslateRequest) string {
	data, _ := json.Marshal(map[string]string{"text": req.Text})
	return string(data)
}

func (p *OpenAIProvider) parseResponse(content string) (string, error) {
	var obj map[string]string
	if err := json.Unmarshal([]byte(content), &obj); err == nil {
		if translation, ok := obj["translation"]; ok {
			return translation, nil
		}
		// Fallback: single-key object with any name
		if len(obj) == 1 {
			for _, v := range obj {
				return v, nil
			}
		}
	}

	// Some models return the bare string despite the format instruction.
	var s string
	if err := json.Unmarshal([]byte(content), &s); err == nil {
		return s, nil
	}

	return "", &golingo.ProviderError{
		Message:   "invalid response format from OpenAI",
		Retryable: false,
	}
}

func isRetryableError(err error) bool {
	// Check for common retryable conditions
	errStr := err.Error()
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(strings.ToLower(errStr), pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements Provider
var _ Provider = (*OpenAIProvider)(nil)
