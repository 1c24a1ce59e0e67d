package testutil

import (
	"context"

	"github.com/arthur-debert/here/pkg/types"
)

// MockLocator is a mock implementation of the types.Locator interface for testing.
type MockLocator struct {
	LocateFunc func(ctx context.Context, term string) ([]types.Candidate, error)
	Calls      []string
}

// Locate records the term and runs the mock's locate function.
func (m *MockLocator) Locate(ctx context.Context, term string) ([]types.Candidate, error) {
	m.Calls = append(m.Calls, term)
	if m.LocateFunc != nil {
		return m.LocateFunc(ctx, term)
	}
	return nil, nil
}

// StaticLocator returns a MockLocator that always reports candidates.
func StaticLocator(candidates ...string) *MockLocator {
	out := make([]types.Candidate, len(candidates))
	for i, c := range candidates {
		out[i] = types.Candidate(c)
	}
	return &MockLocator{
		LocateFunc: func(context.Context, string) ([]types.Candidate, error) {
			return out, nil
		},
	}
}

// MockPrompter is a mock implementation of the types.Prompter interface for testing.
type MockPrompter struct {
	SelectFunc func(message string, options []string) (string, error)
	Calls      int
	Options    []string
}

// Select records the options and runs the mock's select function.
func (m *MockPrompter) Select(message string, options []string) (string, error) {
	m.Calls++
	m.Options = options
	if m.SelectFunc != nil {
		return m.SelectFunc(message, options)
	}
	return options[0], nil
}

// MockClipboard is a mock implementation of the types.Clipboard interface for testing.
type MockClipboard struct {
	Err      error
	Contents []string
}

// Write records text unless Err is set.
func (m *MockClipboard) Write(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Contents = append(m.Contents, text)
	return nil
}

// MockTypist is a mock implementation of the types.Typist interface for testing.
type MockTypist struct {
	TypeErr   error
	SubmitErr error
	Typed     []string
	Submits   int
}

// Type records text unless TypeErr is set.
func (m *MockTypist) Type(text string) error {
	if m.TypeErr != nil {
		return m.TypeErr
	}
	m.Typed = append(m.Typed, text)
	return nil
}

// Submit counts submits unless SubmitErr is set.
func (m *MockTypist) Submit() error {
	if m.SubmitErr != nil {
		return m.SubmitErr
	}
	m.Submits++
	return nil
}
