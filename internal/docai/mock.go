package docai

import (
	"context"

	"finsight/internal/normalizer"
)

// MockExtractor is a canned-response Extractor for tests. It records the
// documents it was asked to extract.
type MockExtractor struct {
	Response string
	Err      error

	Calls []MockCall
}

// MockCall captures one Extract invocation.
type MockCall struct {
	Doc    Document
	Source normalizer.Source
}

// Extract returns the canned response after validating the document the same
// way the real extractor does.
func (m *MockExtractor) Extract(ctx context.Context, doc Document, source normalizer.Source) (string, error) {
	if err := ValidateDocument(doc); err != nil {
		return "", err
	}
	m.Calls = append(m.Calls, MockCall{Doc: doc, Source: source})
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
