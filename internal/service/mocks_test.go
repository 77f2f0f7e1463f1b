package service_test

import (
	"context"

	"interview-prep/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockGenerator ---
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) SendPrompt(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// --- MockInterviewRepository ---
type MockInterviewRepository struct {
	mock.Mock
}

func (m *MockInterviewRepository) Insert(ctx context.Context, interview *domain.MockInterview) (string, error) {
	args := m.Called(ctx, interview)
	return args.String(0), args.Error(1)
}

func (m *MockInterviewRepository) GetByID(ctx context.Context, mockID string) (*domain.MockInterview, error) {
	args := m.Called(ctx, mockID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MockInterview), args.Error(1)
}

func (m *MockInterviewRepository) ListByCreator(ctx context.Context, createdBy string) ([]*domain.MockInterview, error) {
	args := m.Called(ctx, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MockInterview), args.Error(1)
}

// --- MockSessionStore ---
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, session *domain.InterviewSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*domain.InterviewSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewSession), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
