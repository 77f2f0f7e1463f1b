package middleware

import (
	"interview-prep/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	// UserEmailHeader carries the identity set by the upstream proxy.
	UserEmailHeader = "X-User-Email"
	// UserEmailLocal is the fiber.Ctx locals key holding the validated email.
	UserEmailLocal = "user_email"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateIDParam validates that the named path parameter is a ULID
func (vm *ValidationMiddleware) ValidateIDParam(param, field string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidateID(field, c.Params(param)); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}
		return c.Next()
	}
}

// RequireUserEmail rejects requests without a well-formed X-User-Email header
func (vm *ValidationMiddleware) RequireUserEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Get(UserEmailHeader)
		if errors := vm.validator.ValidateUserEmail(email); len(errors) > 0 {
			return errors
		}
		c.Locals(UserEmailLocal, email)
		return c.Next()
	}
}

// OptionalUserEmail stores X-User-Email when it is present and well-formed
// and otherwise treats the caller as anonymous.
func (vm *ValidationMiddleware) OptionalUserEmail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Get(UserEmailHeader)
		if email == "" {
			return c.Next()
		}
		if errors := vm.validator.ValidateUserEmail(email); len(errors) > 0 {
			return errors
		}
		c.Locals(UserEmailLocal, email)
		return c.Next()
	}
}
