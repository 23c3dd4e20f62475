package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// MockLLMClient is a mock implementation of port.LLMClient.
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) Complete(ctx context.Context, prompt, systemPrompt string) (string, error) {
	args := m.Called(ctx, prompt, systemPrompt)
	return args.String(0), args.Error(1)
}

func (m *MockLLMClient) CompleteStructured(ctx context.Context, prompt, systemPrompt string, schema json.RawMessage) (json.RawMessage, error) {
	args := m.Called(ctx, prompt, systemPrompt, schema)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockLLMClient) ExtractText(ctx context.Context, pdfPath string) (string, error) {
	args := m.Called(ctx, pdfPath)
	return args.String(0), args.Error(1)
}
