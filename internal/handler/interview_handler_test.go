package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/handler"
	"interview-prep/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockInterviewService
type MockInterviewService struct {
	GeneratePrerequisitesFunc func(ctx context.Context, profile domain.JobProfile) (*dto.PrerequisitesResponse, error)
	GenerateExplanationsFunc  func(ctx context.Context, sessionID string) (*dto.ExplanationsResponse, error)
	GetMindMapFunc            func(ctx context.Context, sessionID string) (*dto.MindMapResponse, error)
	StartInterviewFunc        func(ctx context.Context, sessionID, createdBy string) (*dto.StartInterviewResponse, error)
	GetInterviewFunc          func(ctx context.Context, mockID string) (*dto.MockInterviewResponse, error)
	ListInterviewsFunc        func(ctx context.Context, createdBy string) (*dto.MockInterviewListResponse, error)
}

func (m *MockInterviewService) GeneratePrerequisites(ctx context.Context, profile domain.JobProfile) (*dto.PrerequisitesResponse, error) {
	if m.GeneratePrerequisitesFunc != nil {
		return m.GeneratePrerequisitesFunc(ctx, profile)
	}
	panic("MockInterviewService.GeneratePrerequisitesFunc not implemented")
}

func (m *MockInterviewService) GenerateExplanations(ctx context.Context, sessionID string) (*dto.ExplanationsResponse, error) {
	if m.GenerateExplanationsFunc != nil {
		return m.GenerateExplanationsFunc(ctx, sessionID)
	}
	panic("MockInterviewService.GenerateExplanationsFunc not implemented")
}

func (m *MockInterviewService) GetMindMap(ctx context.Context, sessionID string) (*dto.MindMapResponse, error) {
	if m.GetMindMapFunc != nil {
		return m.GetMindMapFunc(ctx, sessionID)
	}
	panic("MockInterviewService.GetMindMapFunc not implemented")
}

func (m *MockInterviewService) StartInterview(ctx context.Context, sessionID, createdBy string) (*dto.StartInterviewResponse, error) {
	if m.StartInterviewFunc != nil {
		return m.StartInterviewFunc(ctx, sessionID, createdBy)
	}
	panic("MockInterviewService.StartInterviewFunc not implemented")
}

func (m *MockInterviewService) GetInterview(ctx context.Context, mockID string) (*dto.MockInterviewResponse, error) {
	if m.GetInterviewFunc != nil {
		return m.GetInterviewFunc(ctx, mockID)
	}
	panic("MockInterviewService.GetInterviewFunc not implemented")
}

func (m *MockInterviewService) ListInterviews(ctx context.Context, createdBy string) (*dto.MockInterviewListResponse, error) {
	if m.ListInterviewsFunc != nil {
		return m.ListInterviewsFunc(ctx, createdBy)
	}
	panic("MockInterviewService.ListInterviewsFunc not implemented")
}

const (
	sessionID = "01HGZ8VNRYXS8QKNJV5GRWPWDQ"
	mockID    = "01HH0000000000000000000000"
)

func setupApp(svc *MockInterviewService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	handler.NewInterviewHandler(svc).RegisterRoutes(app.Group("/api"), middleware.NewValidationMiddleware())
	return app
}

func TestInterviewHandler_GeneratePrerequisites(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(svc *MockInterviewService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Success",
			body: `{"job_position":"Backend Engineer","job_description":"Go","job_experience":"3"}`,
			setupMock: func(svc *MockInterviewService) {
				svc.GeneratePrerequisitesFunc = func(ctx context.Context, profile domain.JobProfile) (*dto.PrerequisitesResponse, error) {
					assert.Equal(t, "Backend Engineer", profile.JobPosition)
					assert.Equal(t, "3", profile.JobExperience)
					return &dto.PrerequisitesResponse{
						SessionID:     sessionID,
						Stage:         string(domain.StagePrerequisitesReady),
						Prerequisites: []domain.PrerequisiteItem{{Title: "Arrays", Descriptions: []string{"Indexing"}}},
					}, nil
				}
			},
			expectedStatus: fiber.StatusOK,
		},
		{
			name:           "Malformed Body",
			body:           `{"job_position":`,
			setupMock:      func(svc *MockInterviewService) {},
			expectedStatus: fiber.StatusBadRequest,
			expectedCode:   "INVALID_INPUT",
		},
		{
			name:           "Experience Out Of Range",
			body:           `{"job_position":"SRE","job_description":"k8s","job_experience":"99"}`,
			setupMock:      func(svc *MockInterviewService) {},
			expectedStatus: fiber.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name: "Empty Generator Response",
			body: `{"job_position":"SRE","job_description":"k8s","job_experience":"2"}`,
			setupMock: func(svc *MockInterviewService) {
				svc.GeneratePrerequisitesFunc = func(ctx context.Context, profile domain.JobProfile) (*dto.PrerequisitesResponse, error) {
					return nil, domain.NewEmptyResponseError()
				}
			},
			expectedStatus: fiber.StatusBadGateway,
			expectedCode:   "EMPTY_RESPONSE",
		},
		{
			name: "LLM Unavailable",
			body: `{"job_position":"SRE","job_description":"k8s","job_experience":"2"}`,
			setupMock: func(svc *MockInterviewService) {
				svc.GeneratePrerequisitesFunc = func(ctx context.Context, profile domain.JobProfile) (*dto.PrerequisitesResponse, error) {
					return nil, domain.NewLLMServiceError(errors.New("timeout"))
				}
			},
			expectedStatus: fiber.StatusServiceUnavailable,
			expectedCode:   "LLM_SERVICE_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockInterviewService{}
			tt.setupMock(svc)
			app := setupApp(svc)

			req := httptest.NewRequest("POST", "/api/interviews/prerequisites", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, body["code"])
			} else {
				assert.Equal(t, sessionID, body["session_id"])
			}
		})
	}
}

func TestInterviewHandler_GenerateExplanations(t *testing.T) {
	svc := &MockInterviewService{
		GenerateExplanationsFunc: func(ctx context.Context, id string) (*dto.ExplanationsResponse, error) {
			if id != sessionID {
				return nil, domain.NewSessionNotFoundError(id)
			}
			return &dto.ExplanationsResponse{
				SessionID:    id,
				Stage:        string(domain.StageExplanationReady),
				Explanations: []domain.TopicExplanation{{Topic: "Arrays", Example: "No example provided."}},
			}, nil
		},
	}
	app := setupApp(svc)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/interviews/sessions/"+sessionID+"/explanations", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got dto.ExplanationsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Arrays", got.Explanations[0].Topic)

	resp, err = app.Test(httptest.NewRequest("POST", "/api/interviews/sessions/01HH0000000000000000000001/explanations", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/api/interviews/sessions/bogus/explanations", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestInterviewHandler_GetMindMap(t *testing.T) {
	svc := &MockInterviewService{
		GetMindMapFunc: func(ctx context.Context, id string) (*dto.MindMapResponse, error) {
			return &dto.MindMapResponse{
				SessionID: id,
				Nodes:     []*domain.MindMapNode{{ID: "Arrays", Label: "Arrays"}},
			}, nil
		},
	}
	app := setupApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/interviews/sessions/"+sessionID+"/mindmap", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got dto.MindMapResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Nodes, 1)
	assert.Equal(t, "Arrays", got.Nodes[0].Label)
}

func TestInterviewHandler_StartInterview(t *testing.T) {
	t.Run("With Creator", func(t *testing.T) {
		svc := &MockInterviewService{
			StartInterviewFunc: func(ctx context.Context, id, createdBy string) (*dto.StartInterviewResponse, error) {
				assert.Equal(t, sessionID, id)
				assert.Equal(t, "dev@example.com", createdBy)
				return &dto.StartInterviewResponse{MockID: mockID, Path: "dashboard/interview/" + mockID}, nil
			},
		}
		app := setupApp(svc)

		req := httptest.NewRequest("POST", "/api/interviews/sessions/"+sessionID+"/start", nil)
		req.Header.Set(middleware.UserEmailHeader, "dev@example.com")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var got dto.StartInterviewResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "dashboard/interview/"+mockID, got.Path)
	})

	t.Run("Anonymous", func(t *testing.T) {
		svc := &MockInterviewService{
			StartInterviewFunc: func(ctx context.Context, id, createdBy string) (*dto.StartInterviewResponse, error) {
				assert.Empty(t, createdBy)
				return &dto.StartInterviewResponse{MockID: mockID}, nil
			},
		}
		resp, err := setupApp(svc).Test(httptest.NewRequest("POST", "/api/interviews/sessions/"+sessionID+"/start", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("Malformed Payload", func(t *testing.T) {
		svc := &MockInterviewService{
			StartInterviewFunc: func(ctx context.Context, id, createdBy string) (*dto.StartInterviewResponse, error) {
				return nil, domain.NewMalformedPayloadError(errors.New("invalid character"))
			},
		}
		resp, err := setupApp(svc).Test(httptest.NewRequest("POST", "/api/interviews/sessions/"+sessionID+"/start", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	})
}

func TestInterviewHandler_GetInterview(t *testing.T) {
	svc := &MockInterviewService{
		GetInterviewFunc: func(ctx context.Context, id string) (*dto.MockInterviewResponse, error) {
			if id != mockID {
				return nil, domain.NewInterviewNotFoundError(id)
			}
			return &dto.MockInterviewResponse{
				MockID:    id,
				Questions: []domain.InterviewQuestion{{Question: "Q1", Answer: "A1"}},
			}, nil
		},
	}
	app := setupApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/interviews/"+mockID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got dto.MockInterviewResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, []domain.InterviewQuestion{{Question: "Q1", Answer: "A1"}}, got.Questions)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/interviews/01HH0000000000000000000009", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInterviewHandler_ListInterviews(t *testing.T) {
	svc := &MockInterviewService{
		ListInterviewsFunc: func(ctx context.Context, createdBy string) (*dto.MockInterviewListResponse, error) {
			assert.Equal(t, "dev@example.com", createdBy)
			return &dto.MockInterviewListResponse{Interviews: []dto.MockInterviewSummary{{MockID: mockID}}}, nil
		},
	}
	app := setupApp(svc)

	req := httptest.NewRequest("GET", "/api/interviews", nil)
	req.Header.Set(middleware.UserEmailHeader, "dev@example.com")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/interviews", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
