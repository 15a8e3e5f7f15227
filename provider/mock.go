package provider

import (
	"context"
	"fmt"
)

// MockProvider is a mock online provider for testing and the CLI's
// --mock path.
type MockProvider struct {
	Translations map[string]string // Map of source text to translation
	CallCount    int               // Number of times Translate was called
	LastRequest  *TranslateRequest // Last request received
	Err          error             // If set, Translate returns this error
}

// NewMockProvider creates a new mock provider with default translations.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]string{
			"Hello":                  "Hola",
			"Goodbye":                "Adiós",
			"Thank you":              "Gracias",
			"Where is the bathroom?": "¿Dónde está el baño?",
		},
	}
}

// Translate returns mock translations.
func (m *MockProvider) Translate(ctx context.Context, req TranslateRequest) (string, error) {
	m.CallCount++
	m.LastRequest = &req

	if m.Err != nil {
		return "", m.Err
	}

	if translation, ok := m.Translations[req.Text]; ok {
		return translation, nil
	}
	// Return bracketed text for unknown translations
	return fmt.Sprintf("[%s]", req.Text), nil
}

// Reset resets the call count and last request.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockProvider implements Provider
var _ Provider = (*MockProvider)(nil)
