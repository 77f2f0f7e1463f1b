package models

import "database/sql"

// MockInterview represents a row of the mock_interviews table.
type MockInterview struct {
	MockID        string         `db:"MOCK_ID"`        // ULID
	JSONMockResp  string         `db:"JSON_MOCK_RESP"` // CLOB, serialized question/answer array
	JobPosition   string         `db:"JOB_POSITION"`
	JobDesc       string         `db:"JOB_DESC"`
	JobExperience string         `db:"JOB_EXPERIENCE"`
	CreatedBy     sql.NullString `db:"CREATED_BY"`
	CreatedAt     string         `db:"CREATED_AT"` // DD-MM-YYYY
}
