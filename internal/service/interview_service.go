package service

import (
	"context"
	"encoding/json"
	"fmt"

	"interview-prep/internal/config"
	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/logger"
	"interview-prep/internal/mindmap"
	"interview-prep/internal/parser"
	"interview-prep/internal/prompt"
	"interview-prep/internal/util"

	"go.uber.org/zap"
)

// InterviewDetailPathPrefix is prepended to the mock id to build the dashboard link.
const InterviewDetailPathPrefix = "dashboard/interview/"

// InterviewService drives the three-stage mock interview flow and its read side.
type InterviewService interface {
	GeneratePrerequisites(ctx context.Context, profile domain.JobProfile) (*dto.PrerequisitesResponse, error)
	GenerateExplanations(ctx context.Context, sessionID string) (*dto.ExplanationsResponse, error)
	GetMindMap(ctx context.Context, sessionID string) (*dto.MindMapResponse, error)
	StartInterview(ctx context.Context, sessionID, createdBy string) (*dto.StartInterviewResponse, error)
	GetInterview(ctx context.Context, mockID string) (*dto.MockInterviewResponse, error)
	ListInterviews(ctx context.Context, createdBy string) (*dto.MockInterviewListResponse, error)
}

type interviewService struct {
	generator     domain.TextGenerator
	repo          domain.MockInterviewRepository
	sessions      SessionStore
	questionCount int
	newID         func() string
}

// NewInterviewService creates a new instance of interviewService
func NewInterviewService(
	generator domain.TextGenerator,
	repo domain.MockInterviewRepository,
	sessions SessionStore,
	cfg *config.Config,
) InterviewService {
	return &interviewService{
		generator:     generator,
		repo:          repo,
		sessions:      sessions,
		questionCount: cfg.Interview.QuestionCount,
		newID:         util.NewULID,
	}
}

// GeneratePrerequisites implements InterviewService
func (s *interviewService) GeneratePrerequisites(ctx context.Context, profile domain.JobProfile) (*dto.PrerequisitesResponse, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	session := domain.NewInterviewSession(s.newID(), profile)
	l := logger.Get().With(zap.String("sessionID", session.ID))

	raw, err := s.generator.SendPrompt(ctx, prompt.Prerequisites(profile))
	if err != nil {
		l.Error("Failed to generate prerequisites", zap.Error(err))
		return nil, asDomainError(err, "failed to generate prerequisites")
	}

	items, err := parser.ParsePrerequisites(raw)
	if err != nil {
		l.Error("Failed to parse prerequisites", zap.Error(err))
		return nil, err
	}

	session.Prerequisites = items
	session.Advance(domain.StagePrerequisitesReady)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	l.Info("Prerequisites generated", zap.Int("count", len(items)))
	return &dto.PrerequisitesResponse{
		SessionID:     session.ID,
		Stage:         string(session.Stage),
		Prerequisites: items,
		MindMap:       mindmap.Build(items),
	}, nil
}

// GenerateExplanations implements InterviewService
func (s *interviewService) GenerateExplanations(ctx context.Context, sessionID string) (*dto.ExplanationsResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Prerequisites) == 0 {
		return nil, domain.NewInvalidInputError("No prerequisites available for detailed explanation.")
	}
	l := logger.Get().With(zap.String("sessionID", sessionID))

	session.Advance(domain.StageAwaitingExplanation)
	raw, err := s.generator.SendPrompt(ctx, prompt.Explanations(session.Profile, session.PrerequisiteTitles()))
	if err != nil {
		l.Error("Failed to generate explanations", zap.Error(err))
		return nil, asDomainError(err, "failed to generate explanations")
	}

	explanations, err := parser.ParseTopicExplanations(raw)
	if err != nil {
		l.Error("Failed to parse explanations", zap.Error(err))
		return nil, err
	}

	session.Explanations = explanations
	session.Advance(domain.StageExplanationReady)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	l.Info("Explanations generated", zap.Int("count", len(explanations)))
	return &dto.ExplanationsResponse{
		SessionID:    sessionID,
		Stage:        string(session.Stage),
		Explanations: explanations,
	}, nil
}

// GetMindMap implements InterviewService
func (s *interviewService) GetMindMap(ctx context.Context, sessionID string) (*dto.MindMapResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &dto.MindMapResponse{
		SessionID: sessionID,
		Nodes:     mindmap.Build(session.Prerequisites),
	}, nil
}

// StartInterview implements InterviewService.
// The session is discarded whether or not the interview is stored.
func (s *interviewService) StartInterview(ctx context.Context, sessionID, createdBy string) (*dto.StartInterviewResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Stage != domain.StageExplanationReady {
		return nil, domain.NewInvalidInputError("Explanations must be generated before starting the interview.").
			WithContext("stage", string(session.Stage))
	}
	l := logger.Get().With(zap.String("sessionID", sessionID))
	defer s.discardSession(ctx, sessionID)

	session.Advance(domain.StageAwaitingQuestions)
	raw, err := s.generator.SendPrompt(ctx, prompt.InterviewQuestions(session.Profile, s.questionCount))
	if err != nil {
		l.Error("Failed to generate interview questions", zap.Error(err))
		return nil, asDomainError(err, "failed to generate interview questions")
	}

	questions, err := parser.ExtractInterviewQuestions(raw)
	if err != nil {
		l.Error("Failed to extract interview questions", zap.Error(err))
		return nil, err
	}

	serialized, err := json.Marshal(questions)
	if err != nil {
		return nil, domain.NewInternalError("failed to serialize interview questions", err)
	}

	interview := domain.NewMockInterview(session.Profile, string(serialized), createdBy)
	if err := interview.Validate(); err != nil {
		return nil, err
	}

	mockID, err := s.repo.Insert(ctx, interview)
	if err != nil {
		l.Error("Failed to store mock interview", zap.Error(err))
		return nil, asDomainError(err, "failed to store mock interview")
	}

	l.Info("Mock interview created",
		zap.String("mockID", mockID),
		zap.Int("questions", len(questions)),
		zap.String("createdBy", createdBy))
	return &dto.StartInterviewResponse{
		MockID: mockID,
		Path:   InterviewDetailPathPrefix + mockID,
	}, nil
}

func (s *interviewService) discardSession(ctx context.Context, sessionID string) {
	if err := s.sessions.Delete(context.WithoutCancel(ctx), sessionID); err != nil {
		logger.Get().Warn("Failed to discard interview session", zap.String("sessionID", sessionID), zap.Error(err))
	}
}

// GetInterview implements InterviewService
func (s *interviewService) GetInterview(ctx context.Context, mockID string) (*dto.MockInterviewResponse, error) {
	interview, err := s.repo.GetByID(ctx, mockID)
	if err != nil {
		logger.Get().Error("Failed to get mock interview", zap.String("mockID", mockID), zap.Error(err))
		return nil, asDomainError(err, "failed to get mock interview")
	}
	if interview == nil {
		return nil, domain.NewInterviewNotFoundError(mockID)
	}

	var questions []domain.InterviewQuestion
	if err := json.Unmarshal([]byte(interview.JSONMockResp), &questions); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("stored questions for %s are not valid JSON", mockID), err)
	}

	return &dto.MockInterviewResponse{
		MockID:        interview.MockID,
		JobPosition:   interview.JobPosition,
		JobDesc:       interview.JobDesc,
		JobExperience: interview.JobExperience,
		CreatedBy:     interview.CreatedBy,
		CreatedAt:     interview.CreatedAt,
		Questions:     questions,
	}, nil
}

// ListInterviews implements InterviewService
func (s *interviewService) ListInterviews(ctx context.Context, createdBy string) (*dto.MockInterviewListResponse, error) {
	interviews, err := s.repo.ListByCreator(ctx, createdBy)
	if err != nil {
		logger.Get().Error("Failed to list mock interviews", zap.String("createdBy", createdBy), zap.Error(err))
		return nil, asDomainError(err, "failed to list mock interviews")
	}

	summaries := make([]dto.MockInterviewSummary, 0, len(interviews))
	for _, m := range interviews {
		summaries = append(summaries, dto.MockInterviewSummary{
			MockID:        m.MockID,
			JobPosition:   m.JobPosition,
			JobExperience: m.JobExperience,
			CreatedAt:     m.CreatedAt,
		})
	}
	return &dto.MockInterviewListResponse{Interviews: summaries}, nil
}

// asDomainError passes domain errors through and wraps anything else as internal.
func asDomainError(err error, message string) error {
	if _, ok := domain.AsDomainError(err); ok {
		return err
	}
	return domain.NewInternalError(message, err)
}
