package dto

import "interview-prep/internal/domain"

// JobProfileRequest is the body of the prerequisites request
// @Description Job profile the interview is generated for
type JobProfileRequest struct {
	JobPosition    string `json:"job_position" example:"Backend Engineer"`
	JobDescription string `json:"job_description" example:"Go, Redis, Oracle"`
	JobExperience  string `json:"job_experience" example:"3"`
}

// ToDomain converts the request into a domain.JobProfile
func (r JobProfileRequest) ToDomain() domain.JobProfile {
	return domain.JobProfile{
		JobPosition:    r.JobPosition,
		JobDescription: r.JobDescription,
		JobExperience:  r.JobExperience,
	}
}

// PrerequisitesResponse is returned once the first stage completes
// @Description Parsed prerequisites and the mind map built from them
type PrerequisitesResponse struct {
	SessionID     string                    `json:"session_id"`
	Stage         string                    `json:"stage"`
	Prerequisites []domain.PrerequisiteItem `json:"prerequisites"`
	MindMap       []*domain.MindMapNode     `json:"mind_map"`
}

// ExplanationsResponse is returned once the second stage completes
type ExplanationsResponse struct {
	SessionID    string                    `json:"session_id"`
	Stage        string                    `json:"stage"`
	Explanations []domain.TopicExplanation `json:"explanations"`
}

// MindMapResponse wraps the prerequisites diagram of a session
type MindMapResponse struct {
	SessionID string                `json:"session_id"`
	Nodes     []*domain.MindMapNode `json:"nodes"`
}

// StartInterviewResponse carries the id of the persisted mock interview
type StartInterviewResponse struct {
	MockID string `json:"mock_id"`
	Path   string `json:"path"` // 대시보드 상세 페이지 경로
}

// MockInterviewResponse is a stored mock interview with its questions decoded
// @Description Mock interview detail
type MockInterviewResponse struct {
	MockID        string                     `json:"mock_id"`
	JobPosition   string                     `json:"job_position"`
	JobDesc       string                     `json:"job_desc"`
	JobExperience string                     `json:"job_experience"`
	CreatedBy     string                     `json:"created_by,omitempty"`
	CreatedAt     string                     `json:"created_at"`
	Questions     []domain.InterviewQuestion `json:"questions"`
}

// MockInterviewSummary is one row of the dashboard list
type MockInterviewSummary struct {
	MockID        string `json:"mock_id"`
	JobPosition   string `json:"job_position"`
	JobExperience string `json:"job_experience"`
	CreatedAt     string `json:"created_at"`
}

// MockInterviewListResponse lists the interviews created by one user
type MockInterviewListResponse struct {
	Interviews []MockInterviewSummary `json:"interviews"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
