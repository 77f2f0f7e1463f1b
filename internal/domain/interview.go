package domain

import (
	"context"
	"time"
)

// JobProfile holds the three form fields every stage of the flow is built from.
type JobProfile struct {
	JobPosition    string `json:"job_position"`
	JobDescription string `json:"job_description"`
	JobExperience  string `json:"job_experience"` // 경력 연수, 폼에서 문자열로 들어옴
}

// Validate checks that all three fields are present
func (p JobProfile) Validate() error {
	var errs ValidationErrors
	if p.JobPosition == "" {
		errs = append(errs, NewMissingFieldError("job_position"))
	}
	if p.JobDescription == "" {
		errs = append(errs, NewMissingFieldError("job_description"))
	}
	if p.JobExperience == "" {
		errs = append(errs, NewMissingFieldError("job_experience"))
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PrerequisiteItem is one blank-line delimited section of a prerequisites response.
type PrerequisiteItem struct {
	Title        string   `json:"title"`
	Descriptions []string `json:"descriptions"`
}

// TopicExplanation is one labelled topic block of an explanation response.
type TopicExplanation struct {
	Topic              string `json:"topic"`
	Explanation        string `json:"explanation"`
	UseCases           string `json:"use_cases"`
	Example            string `json:"example"`
	AdvancedTechniques string `json:"advanced_techniques"`
	CommonPitfalls     string `json:"common_pitfalls"`
}

// InterviewQuestion is one entry of the JSON array embedded in a questions response.
type InterviewQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// MindMapNode is a node of the prerequisites diagram handed to the renderer.
type MindMapNode struct {
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	Parent   string         `json:"parent,omitempty"`
	Children []*MindMapNode `json:"children,omitempty"`
}

// FlowStage tracks how far a session got through the interview flow.
type FlowStage string

const (
	StageIdle                  FlowStage = "idle"
	StageAwaitingPrerequisites FlowStage = "awaiting-prerequisites"
	StagePrerequisitesReady    FlowStage = "prerequisites-ready"
	StageAwaitingExplanation   FlowStage = "awaiting-explanation"
	StageExplanationReady      FlowStage = "explanation-ready"
	StageAwaitingQuestions     FlowStage = "awaiting-questions"
)

// InterviewSession is the transient state carried between the three stages.
type InterviewSession struct {
	ID            string             `json:"id"`
	Profile       JobProfile         `json:"profile"`
	Stage         FlowStage          `json:"stage"`
	Prerequisites []PrerequisiteItem `json:"prerequisites"`
	Explanations  []TopicExplanation `json:"explanations"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// NewInterviewSession creates a session waiting on its prerequisites.
func NewInterviewSession(id string, profile JobProfile) *InterviewSession {
	now := time.Now()
	return &InterviewSession{
		ID:        id,
		Profile:   profile,
		Stage:     StageAwaitingPrerequisites,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Advance moves the session to the given stage.
func (s *InterviewSession) Advance(stage FlowStage) {
	s.Stage = stage
	s.UpdatedAt = time.Now()
}

// PrerequisiteTitles returns the titles in response order.
func (s *InterviewSession) PrerequisiteTitles() []string {
	titles := make([]string, 0, len(s.Prerequisites))
	for _, p := range s.Prerequisites {
		titles = append(titles, p.Title)
	}
	return titles
}

// MockInterviewDateLayout is the DD-MM-YYYY layout used for CreatedAt.
const MockInterviewDateLayout = "02-01-2006"

// MockInterview is the row written once a flow completes.
type MockInterview struct {
	MockID        string
	JSONMockResp  string // 직렬화된 []InterviewQuestion
	JobPosition   string
	JobDesc       string
	JobExperience string
	CreatedBy     string
	CreatedAt     string
}

// NewMockInterview creates a MockInterview stamped with today's date.
func NewMockInterview(profile JobProfile, serializedQuestions, createdBy string) *MockInterview {
	return &MockInterview{
		JSONMockResp:  serializedQuestions,
		JobPosition:   profile.JobPosition,
		JobDesc:       profile.JobDescription,
		JobExperience: profile.JobExperience,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now().Format(MockInterviewDateLayout),
	}
}

// Validate validates the mock interview
func (m *MockInterview) Validate() error {
	if m.JSONMockResp == "" {
		return NewInvalidInputError("serialized questions are required")
	}
	if m.JobPosition == "" {
		return NewInvalidInputError("job position is required")
	}
	return nil
}

// MockInterviewRepository defines the interface for mock interview persistence.
type MockInterviewRepository interface {
	// Insert persists the interview and returns its generated ID.
	Insert(ctx context.Context, interview *MockInterview) (string, error)
	// GetByID returns nil, nil when no row matches.
	GetByID(ctx context.Context, mockID string) (*MockInterview, error)
	ListByCreator(ctx context.Context, createdBy string) ([]*MockInterview, error)
}

// TextGenerator is the text-generation service every prompt is sent to.
type TextGenerator interface {
	SendPrompt(ctx context.Context, prompt string) (string, error)
}
