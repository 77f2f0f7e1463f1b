package validation

import (
	"regexp"
	"strconv"
	"strings"

	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
)

const (
	MinJobExperience     = 1
	MaxJobExperience     = 70
	maxJobPositionLen    = 255
	maxJobDescriptionLen = 4000
	maxEmailLen          = 320
)

var (
	// Crockford's Base32
	ulidPattern  = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateJobProfile validates the prerequisites request body.
// Experience is a whole number of years between 1 and 70.
func (v *Validator) ValidateJobProfile(req dto.JobProfileRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	position := strings.TrimSpace(req.JobPosition)
	if position == "" {
		errors = append(errors, domain.NewMissingFieldError("job_position"))
	} else if len(position) > maxJobPositionLen {
		errors = append(errors, domain.NewOutOfRangeError("job_position", len(position), 1, maxJobPositionLen))
	}

	description := strings.TrimSpace(req.JobDescription)
	if description == "" {
		errors = append(errors, domain.NewMissingFieldError("job_description"))
	} else if len(description) > maxJobDescriptionLen {
		errors = append(errors, domain.NewOutOfRangeError("job_description", len(description), 1, maxJobDescriptionLen))
	}

	experience := strings.TrimSpace(req.JobExperience)
	if experience == "" {
		errors = append(errors, domain.NewMissingFieldError("job_experience"))
	} else if years, err := strconv.Atoi(experience); err != nil {
		errors = append(errors, domain.NewInvalidFormatError("job_experience", req.JobExperience))
	} else if years < MinJobExperience || years > MaxJobExperience {
		errors = append(errors, domain.NewOutOfRangeError("job_experience", years, MinJobExperience, MaxJobExperience))
	}

	return errors
}

// ValidateID validates a ULID path parameter
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if !isValidULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, id)}
	}
	return nil
}

// ValidateUserEmail validates the identity forwarded by the upstream proxy
func (v *Validator) ValidateUserEmail(email string) domain.ValidationErrors {
	if email == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("user_email")}
	}
	if len(email) > maxEmailLen || !emailPattern.MatchString(email) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("user_email", email)}
	}
	return nil
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	return ulidPattern.MatchString(s)
}
