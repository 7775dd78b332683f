// Package llm translates text with an OpenAI-compatible chat completion API.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/Rorical/RoriLingo/internal/langs"
)

var ErrEmptyCompletion = errors.New("model returned no content")

const translatePrompt = `You are a translation engine. Translate the user's text from %s to %s.
Reply with the translation only: no quotes, no notes, no transliteration.
Preserve line breaks and punctuation.`

const detectPrompt = `Identify the language of the user's text.
Reply with its ISO 639-1 code only (for example: en, hi, fr).`

// Translator wraps a go-openai client.
type Translator struct {
	client *openai.Client
	model  string
}

func NewTranslator(apiKey, baseURL, model string) *Translator {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	return &Translator{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

func (t *Translator) Model() string {
	return t.model
}

func languageName(code langs.Code) string {
	if code == langs.Auto || code == "" {
		return "the detected source language"
	}
	if label, ok := langs.Label(code); ok {
		return fmt.Sprintf("%s (%s)", label, code)
	}
	return string(code)
}

// Translate returns text rendered in target.
func (t *Translator) Translate(ctx context.Context, text string, source, target langs.Code) (string, error) {
	out, err := t.complete(ctx, fmt.Sprintf(translatePrompt, languageName(source), languageName(target)), text)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	return out, nil
}

// Detect asks the model for the language of text. Codes outside the
// supported set come back as auto.
func (t *Translator) Detect(ctx context.Context, text string) (langs.Code, error) {
	out, err := t.complete(ctx, detectPrompt, text)
	if err != nil {
		return langs.Auto, fmt.Errorf("detection request failed: %w", err)
	}
	fields := strings.Fields(strings.Trim(out, " .\"'`"))
	if len(fields) == 0 {
		return langs.Auto, nil
	}
	if code, ok := langs.Normalize(fields[0]); ok {
		return code, nil
	}
	return langs.Auto, nil
}

func (t *Translator) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}
