package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"communityhub_backend/internals/features/questions/dto"
	"communityhub_backend/internals/features/questions/model"
	"communityhub_backend/internals/features/questions/repository"
	helper "communityhub_backend/internals/helpers"
)

type QuestionAdminController struct {
	Store    repository.QuestionStore
	Validate *validator.Validate
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewQuestionAdminController(store repository.QuestionStore) *QuestionAdminController {
	return &QuestionAdminController{
		Store:    store,
		Validate: validator.New(),
		Now:      time.Now,
	}
}

// 🟢 GET /api/a/questions
// Every question regardless of status or owner, newest first.
func (ctrl *QuestionAdminController) ListAll(c *fiber.Ctx) error {
	questions, err := ctrl.Store.ListAll()
	if err != nil {
		log.Printf("[ERROR] failed to list questions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}
	return helper.JsonOK(c, "", dto.ToQuestionResponseList(questions))
}

// 🟡 PUT /api/a/questions/status
// Moves a question through its moderation lifecycle. Approving stamps
// approved_at; any other status clears it back to null.
func (ctrl *QuestionAdminController) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateQuestionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var approvedAt *time.Time
	if req.Status == model.StatusApproved {
		now := ctrl.Now()
		approvedAt = &now
	}

	affected, err := ctrl.Store.UpdateStatus(req.QuestionID, req.Status, approvedAt)
	if err != nil {
		log.Printf("[ERROR] failed to update question status: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question status")
	}
	if affected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	return helper.JsonOK(c, "Question status updated", fiber.Map{
		"question_id": req.QuestionID,
		"status":      req.Status,
		"approved_at": approvedAt,
	})
}
