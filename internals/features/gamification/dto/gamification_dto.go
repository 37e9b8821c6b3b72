package dto

import (
	"time"

	"github.com/google/uuid"
)

// Leaderboard period selector values, matching the dashboard dropdown.
const (
	PeriodAllTime = "all-time"
	PeriodMonthly = "monthly"
	PeriodWeekly  = "weekly"
)

func ValidPeriod(p string) bool {
	return p == PeriodAllTime || p == PeriodMonthly || p == PeriodWeekly
}

// 🔹 One leaderboard row. The dashboard computes the viewer's own rank as
// the index of their id in this (server-ordered) array, so ordering is part
// of the contract.
type LeaderboardEntry struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	GithubUsername string    `json:"github_username"`
	TotalPoints    int64     `json:"total_points"`
	BadgeCount     int64     `json:"badge_count"`
}

// 🔹 Point/coin totals of the calling user
type SummaryResponse struct {
	TotalPoints int64 `json:"total_points"`
	CodeCoins   int64 `json:"code_coins"`
}

// 🔹 A badge earned by the calling user
type UserBadgeResponse struct {
	BadgeID     uint      `json:"badge_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IconURL     string    `json:"icon_url"`
	AwardedAt   time.Time `json:"awarded_at"`
}
