package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"communityhub_backend/internals/features/questions/dto"
	"communityhub_backend/internals/features/questions/repository"
	helper "communityhub_backend/internals/helpers"
)

type QuestionUserController struct {
	Store repository.QuestionStore
}

func NewQuestionUserController(store repository.QuestionStore) *QuestionUserController {
	return &QuestionUserController{Store: store}
}

// 🟢 GET /api/u/questions/all
// The caller's own questions, approved status only.
func (ctrl *QuestionUserController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	questions, err := ctrl.Store.ListApprovedByUser(userID)
	if err != nil {
		log.Printf("[ERROR] failed to list questions: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	return helper.JsonOK(c, "", dto.ToQuestionResponseList(questions))
}

// 🟢 GET /api/u/questions/:id
// Approved question detail; each read bumps the view counter.
func (ctrl *QuestionUserController) Detail(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return err
	}

	id64, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	questionID := uint(id64)

	q, err := ctrl.Store.GetApproved(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		log.Printf("[ERROR] question lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch question")
	}

	if err := ctrl.Store.IncrementViews(questionID); err != nil {
		// a lost view count is not worth failing the read
		log.Printf("[WARN] view increment failed for question %d: %v", questionID, err)
	} else {
		q.QuestionViews++
	}

	return helper.JsonOK(c, "", dto.ToQuestionResponse(q))
}
