package handler

import (
	"interview-prep/internal/domain"
	"interview-prep/internal/dto"
	"interview-prep/internal/middleware"
	"interview-prep/internal/service"
	"interview-prep/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// InterviewHandler handles mock interview HTTP requests
type InterviewHandler struct {
	service   service.InterviewService
	validator *validation.Validator
}

// NewInterviewHandler creates a new InterviewHandler instance
func NewInterviewHandler(service service.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// RegisterRoutes mounts the interview endpoints on the given router
func (h *InterviewHandler) RegisterRoutes(router fiber.Router, vm *middleware.ValidationMiddleware) {
	interviews := router.Group("/interviews")
	interviews.Post("/prerequisites", h.GeneratePrerequisites)
	interviews.Get("/", vm.RequireUserEmail(), h.ListInterviews)
	interviews.Get("/:mockId", vm.ValidateIDParam("mockId", "mock_id"), h.GetInterview)

	validSession := vm.ValidateIDParam("sessionId", "session_id")
	interviews.Post("/sessions/:sessionId/explanations", validSession, h.GenerateExplanations)
	interviews.Get("/sessions/:sessionId/mindmap", validSession, h.GetMindMap)
	interviews.Post("/sessions/:sessionId/start", validSession, vm.OptionalUserEmail(), h.StartInterview)
}

// GeneratePrerequisites godoc
// @Summary Generate interview prerequisites
// @Description Starts a session for the job profile and returns the prerequisite topics with their mind map
// @Tags interviews
// @Accept json
// @Produce json
// @Param profile body dto.JobProfileRequest true "Job profile"
// @Success 200 {object} dto.PrerequisitesResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /interviews/prerequisites [post]
func (h *InterviewHandler) GeneratePrerequisites(c *fiber.Ctx) error {
	var req dto.JobProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateJobProfile(req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.GeneratePrerequisites(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GenerateExplanations godoc
// @Summary Generate topic explanations
// @Description Explains every prerequisite topic of the session
// @Tags interviews
// @Produce json
// @Param sessionId path string true "Session ID (ULID)"
// @Success 200 {object} dto.ExplanationsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /interviews/sessions/{sessionId}/explanations [post]
func (h *InterviewHandler) GenerateExplanations(c *fiber.Ctx) error {
	resp, err := h.service.GenerateExplanations(c.UserContext(), c.Params("sessionId"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetMindMap godoc
// @Summary Get the prerequisites mind map
// @Tags interviews
// @Produce json
// @Param sessionId path string true "Session ID (ULID)"
// @Success 200 {object} dto.MindMapResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /interviews/sessions/{sessionId}/mindmap [get]
func (h *InterviewHandler) GetMindMap(c *fiber.Ctx) error {
	resp, err := h.service.GetMindMap(c.UserContext(), c.Params("sessionId"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// StartInterview godoc
// @Summary Start the mock interview
// @Description Generates the interview questions, stores them and ends the session
// @Tags interviews
// @Produce json
// @Param sessionId path string true "Session ID (ULID)"
// @Param X-User-Email header string false "Creator email"
// @Success 201 {object} dto.StartInterviewResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /interviews/sessions/{sessionId}/start [post]
func (h *InterviewHandler) StartInterview(c *fiber.Ctx) error {
	createdBy, _ := c.Locals(middleware.UserEmailLocal).(string)

	resp, err := h.service.StartInterview(c.UserContext(), c.Params("sessionId"), createdBy)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetInterview godoc
// @Summary Get a mock interview
// @Tags interviews
// @Produce json
// @Param mockId path string true "Mock interview ID (ULID)"
// @Success 200 {object} dto.MockInterviewResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /interviews/{mockId} [get]
func (h *InterviewHandler) GetInterview(c *fiber.Ctx) error {
	resp, err := h.service.GetInterview(c.UserContext(), c.Params("mockId"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ListInterviews godoc
// @Summary List my mock interviews
// @Tags interviews
// @Produce json
// @Param X-User-Email header string true "Creator email"
// @Success 200 {object} dto.MockInterviewListResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /interviews [get]
func (h *InterviewHandler) ListInterviews(c *fiber.Ctx) error {
	email, _ := c.Locals(middleware.UserEmailLocal).(string)

	resp, err := h.service.ListInterviews(c.UserContext(), email)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
