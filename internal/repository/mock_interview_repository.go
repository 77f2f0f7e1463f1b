package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"interview-prep/internal/domain"
	"interview-prep/internal/repository/models"
	"interview-prep/internal/util"
)

const mockInterviewColumns = `mock_id, json_mock_resp, job_position, job_desc, job_experience, created_by, created_at`

// sqlxMockInterviewRepository implements domain.MockInterviewRepository using sqlx.
type sqlxMockInterviewRepository struct {
	db DBTX
}

// NewMockInterviewRepository creates a new instance of sqlxMockInterviewRepository.
func NewMockInterviewRepository(db DBTX) domain.MockInterviewRepository {
	return &sqlxMockInterviewRepository{db: db}
}

// Insert assigns a new ULID to the interview and stores it.
func (r *sqlxMockInterviewRepository) Insert(ctx context.Context, interview *domain.MockInterview) (string, error) {
	if interview.MockID == "" {
		interview.MockID = util.NewULID()
	}

	query := `INSERT INTO mock_interviews (` + mockInterviewColumns + `)
	          VALUES (:mock_id, :json_mock_resp, :job_position, :job_desc, :job_experience, :created_by, :created_at)`

	_, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, toMockInterviewArgs(fromDomainMockInterview(interview)))
	if err != nil {
		return "", fmt.Errorf("failed to insert mock interview: %w", err)
	}
	return interview.MockID, nil
}

// GetByID returns nil, nil when no row matches.
func (r *sqlxMockInterviewRepository) GetByID(ctx context.Context, mockID string) (*domain.MockInterview, error) {
	var m models.MockInterview
	query := `SELECT ` + mockInterviewColumns + ` FROM mock_interviews WHERE mock_id = :1`

	err := GetExecutor(ctx, r.db).GetContext(ctx, &m, query, mockID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mock interview by id: %w", err)
	}
	return toDomainMockInterview(&m), nil
}

// ListByCreator returns the creator's interviews, newest first.
func (r *sqlxMockInterviewRepository) ListByCreator(ctx context.Context, createdBy string) ([]*domain.MockInterview, error) {
	var rows []models.MockInterview
	query := `SELECT ` + mockInterviewColumns + ` FROM mock_interviews WHERE created_by = :1 ORDER BY mock_id DESC`

	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, createdBy); err != nil {
		return nil, fmt.Errorf("failed to list mock interviews: %w", err)
	}

	result := make([]*domain.MockInterview, 0, len(rows))
	for i := range rows {
		result = append(result, toDomainMockInterview(&rows[i]))
	}
	return result, nil
}

// --- converters ---

func toDomainMockInterview(m *models.MockInterview) *domain.MockInterview {
	if m == nil {
		return nil
	}
	return &domain.MockInterview{
		MockID:        m.MockID,
		JSONMockResp:  m.JSONMockResp,
		JobPosition:   m.JobPosition,
		JobDesc:       m.JobDesc,
		JobExperience: m.JobExperience,
		CreatedBy:     util.NullStringToString(m.CreatedBy),
		CreatedAt:     m.CreatedAt,
	}
}

func fromDomainMockInterview(d *domain.MockInterview) *models.MockInterview {
	if d == nil {
		return nil
	}
	return &models.MockInterview{
		MockID:        d.MockID,
		JSONMockResp:  d.JSONMockResp,
		JobPosition:   d.JobPosition,
		JobDesc:       d.JobDesc,
		JobExperience: d.JobExperience,
		CreatedBy:     util.StringToNullString(d.CreatedBy),
		CreatedAt:     d.CreatedAt,
	}
}

// toMockInterviewArgs maps the lowercase bind names used in the insert.
// sqlx resolves named binds against db tags, which are uppercase for Oracle scans.
func toMockInterviewArgs(m *models.MockInterview) map[string]interface{} {
	return map[string]interface{}{
		"mock_id":        m.MockID,
		"json_mock_resp": m.JSONMockResp,
		"job_position":   m.JobPosition,
		"job_desc":       m.JobDesc,
		"job_experience": m.JobExperience,
		"created_by":     m.CreatedBy,
		"created_at":     m.CreatedAt,
	}
}
