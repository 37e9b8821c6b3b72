package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"communityhub_backend/internals/features/gamification/dto"
	"communityhub_backend/internals/features/gamification/repository"
	helper "communityhub_backend/internals/helpers"
)

const leaderboardLimit = 100

type GamificationController struct {
	Store repository.GamificationStore
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewGamificationController(store repository.GamificationStore) *GamificationController {
	return &GamificationController{Store: store, Now: time.Now}
}

// 🟢 GET /api/u/gamification/summary
// The caller's point and coin totals.
func (ctrl *GamificationController) Summary(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	points, err := ctrl.Store.PointTotal(userID)
	if err != nil {
		log.Printf("[ERROR] point total failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch totals")
	}
	coins, err := ctrl.Store.CoinTotal(userID)
	if err != nil {
		log.Printf("[ERROR] coin total failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch totals")
	}

	return helper.JsonOK(c, "", dto.SummaryResponse{
		TotalPoints: points,
		CodeCoins:   coins,
	})
}

// 🟢 GET /api/u/gamification/leaderboard?period=all-time|monthly|weekly
func (ctrl *GamificationController) Leaderboard(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return err
	}

	period := c.Query("period", dto.PeriodAllTime)
	if !dto.ValidPeriod(period) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid period")
	}

	since := periodCutoff(period, ctrl.Now())
	entries, err := ctrl.Store.Leaderboard(since, leaderboardLimit)
	if err != nil {
		log.Printf("[ERROR] leaderboard query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch leaderboard")
	}

	return helper.JsonOK(c, "", entries)
}

// 🟢 GET /api/u/gamification/badges
func (ctrl *GamificationController) Badges(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	userBadges, err := ctrl.Store.BadgesByUser(userID)
	if err != nil {
		log.Printf("[ERROR] badges query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch badges")
	}

	out := make([]dto.UserBadgeResponse, 0, len(userBadges))
	for _, ub := range userBadges {
		out = append(out, dto.UserBadgeResponse{
			BadgeID:     ub.UserBadgeBadgeID,
			Name:        ub.Badge.BadgeName,
			Description: ub.Badge.BadgeDescription,
			IconURL:     ub.Badge.BadgeIconURL,
			AwardedAt:   ub.UserBadgeAwardedAt,
		})
	}
	return helper.JsonOK(c, "", out)
}

// periodCutoff maps the dropdown period to a rolling window start.
// nil = no cutoff (all time).
func periodCutoff(period string, now time.Time) *time.Time {
	var since time.Time
	switch period {
	case dto.PeriodWeekly:
		since = now.AddDate(0, 0, -7)
	case dto.PeriodMonthly:
		since = now.AddDate(0, -1, 0)
	default:
		return nil
	}
	return &since
}
