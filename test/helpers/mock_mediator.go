package helpers

import (
	"context"
	"fmt"
	"reflect"

	"github.com/dstapl/osrs-gph/internal/application/mediator"
)

// MockMediator is a test double for the Mediator interface.
// It records the type of every request and answers through sendFunc.
type MockMediator struct {
	sendFunc func(ctx context.Context, request mediator.Request) (mediator.Response, error)
	callLog  []string
}

// NewMockMediator creates a new MockMediator
func NewMockMediator() *MockMediator {
	return &MockMediator{
		callLog: []string{},
	}
}

// Send implements the Mediator interface
func (m *MockMediator) Send(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	m.callLog = append(m.callLog, fmt.Sprintf("%T", request))

	if m.sendFunc != nil {
		return m.sendFunc(ctx, request)
	}
	return nil, fmt.Errorf("unsupported request type: %T", request)
}

// SetSendFunc sets a custom function for Send calls
func (m *MockMediator) SetSendFunc(fn func(ctx context.Context, request mediator.Request) (mediator.Response, error)) {
	m.sendFunc = fn
}

// GetCallLog returns the request types sent so far
func (m *MockMediator) GetCallLog() []string {
	return append([]string{}, m.callLog...)
}

// Register implements the Mediator interface (no-op for tests)
func (m *MockMediator) Register(requestType reflect.Type, handler mediator.RequestHandler) error {
	return nil
}

// Use implements the Mediator interface (no-op for tests)
func (m *MockMediator) Use(middleware mediator.Middleware) {}

var _ mediator.Mediator = (*MockMediator)(nil)
