package docai

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"finsight/internal/finerror"
	"finsight/internal/logging"
	"finsight/internal/normalizer"
)

// GeminiExtractor implements Extractor against the Google Gemini API.
type GeminiExtractor struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  logging.Logger
}

// NewGeminiExtractor creates a Gemini-backed extractor. The API key is
// injected here; the extractor never reads ambient process state.
func NewGeminiExtractor(ctx context.Context, apiKey, model string, timeout time.Duration, logger logging.Logger) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured, set GEMINI_API_KEY")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiExtractor{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiExtractor) Close() error {
	return g.client.Close()
}

// Extract sends the document with the source-specific prompt and returns the
// raw response text. The response is untrusted; shape validation happens in
// the normalizer.
func (g *GeminiExtractor) Extract(ctx context.Context, doc Document, source normalizer.Source) (string, error) {
	if err := ValidateDocument(doc); err != nil {
		return "", err
	}

	prompt, ok := promptFor(source)
	if !ok {
		return "", &finerror.UnsupportedInputError{
			Reason: "unknown document source: " + string(source),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	g.logger.Debug("Sending document to Gemini",
		logging.Field{Key: logging.FieldModel, Value: g.model},
		logging.Field{Key: logging.FieldSource, Value: string(source)},
		logging.Field{Key: logging.FieldMimeType, Value: doc.MimeType})

	model := g.client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.Blob{MIMEType: doc.MimeType, Data: doc.Data},
	)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", &finerror.MalformedResponseError{
			Source: string(source),
			Reason: "empty response from model",
		}
	}

	return text, nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}
	return text
}
