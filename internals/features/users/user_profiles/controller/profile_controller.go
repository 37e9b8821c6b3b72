package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gamificationDTO "communityhub_backend/internals/features/gamification/dto"
	gamificationRepo "communityhub_backend/internals/features/gamification/repository"
	"communityhub_backend/internals/features/users/user_profiles/dto"
	"communityhub_backend/internals/features/users/user_profiles/repository"
	"communityhub_backend/internals/features/users/user_profiles/service"
	helper "communityhub_backend/internals/helpers"
)

type ProfileController struct {
	Store        repository.ProfileStore
	Gamification gamificationRepo.GamificationStore
	GitHub       service.GitHubFetcher
}

func NewProfileController(store repository.ProfileStore, gam gamificationRepo.GamificationStore, gh service.GitHubFetcher) *ProfileController {
	return &ProfileController{Store: store, Gamification: gam, GitHub: gh}
}

// 🟢 GET /api/u/profile
// One aggregate payload for the profile page: user row, totals, badges and
// the achievement counters.
func (ctrl *ProfileController) Profile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	user, err := ctrl.Store.GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] user lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	points, err := ctrl.Gamification.PointTotal(userID)
	if err != nil {
		log.Printf("[ERROR] point total failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	coins, err := ctrl.Gamification.CoinTotal(userID)
	if err != nil {
		log.Printf("[ERROR] coin total failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	userBadges, err := ctrl.Gamification.BadgesByUser(userID)
	if err != nil {
		log.Printf("[ERROR] badges query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	badges := make([]gamificationDTO.UserBadgeResponse, 0, len(userBadges))
	for _, ub := range userBadges {
		badges = append(badges, gamificationDTO.UserBadgeResponse{
			BadgeID:     ub.UserBadgeBadgeID,
			Name:        ub.Badge.BadgeName,
			Description: ub.Badge.BadgeDescription,
			IconURL:     ub.Badge.BadgeIconURL,
			AwardedAt:   ub.UserBadgeAwardedAt,
		})
	}

	certCount, err := ctrl.Store.CertificateCount(userID)
	if err != nil {
		log.Printf("[ERROR] certificate count failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	questionCount, err := ctrl.Store.QuestionCount(userID)
	if err != nil {
		log.Printf("[ERROR] question count failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	answerCount, err := ctrl.Store.AnswerCount(userID)
	if err != nil {
		log.Printf("[ERROR] answer count failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	activityCount, err := ctrl.Store.ActivityCount(userID)
	if err != nil {
		log.Printf("[ERROR] activity count failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	return helper.JsonOK(c, "", dto.ProfileResponse{
		ID:               user.ID,
		UserName:         user.UserName,
		Email:            user.Email,
		GithubUsername:   user.GithubUsername,
		StudentID:        user.StudentID,
		MemberSince:      user.CreatedAt,
		TotalPoints:      points,
		CodeCoins:        coins,
		Badges:           badges,
		CertificateCount: certCount,
		QuestionCount:    questionCount,
		AnswerCount:      answerCount,
		ActivityCount:    activityCount,
	})
}

// 🟢 GET /api/u/profile/github
// Proxies the public GitHub profile for the caller's linked username so the
// browser never talks to GitHub directly (and the rate limit is ours).
func (ctrl *ProfileController) GitHubProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	user, err := ctrl.Store.GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] user lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	username := strings.TrimSpace(user.GithubUsername)
	if username == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "No GitHub account linked")
	}

	status, body, err := ctrl.GitHub.FetchUser(username)
	if err != nil {
		log.Printf("[ERROR] github fetch failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "GitHub profile fetch failed")
	}
	if status != fiber.StatusOK {
		return helper.JsonError(c, fiber.StatusBadGateway, "GitHub profile fetch failed")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
