package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"communityhub_backend/internals/features/gamification/dto"
	"communityhub_backend/internals/features/gamification/model"
)

// GamificationStore is the read-side persistence surface for points, coins,
// badges and the leaderboard. Award computation happens elsewhere.
type GamificationStore interface {
	PointTotal(userID uuid.UUID) (int64, error)
	CoinTotal(userID uuid.UUID) (int64, error)
	// Leaderboard sums points per user since the given cutoff (nil = all
	// time), ordered total desc with user id as a stable tie-break.
	Leaderboard(since *time.Time, limit int) ([]dto.LeaderboardEntry, error)
	BadgesByUser(userID uuid.UUID) ([]model.UserBadgeModel, error)
}

type GormGamificationStore struct {
	DB *gorm.DB
}

func NewGormGamificationStore(db *gorm.DB) *GormGamificationStore {
	return &GormGamificationStore{DB: db}
}

func (r *GormGamificationStore) PointTotal(userID uuid.UUID) (int64, error) {
	var total int64
	err := r.DB.Model(&model.UserPointLog{}).
		Where("user_point_log_user_id = ?", userID).
		Select("COALESCE(SUM(user_point_log_points), 0)").
		Scan(&total).Error
	return total, err
}

func (r *GormGamificationStore) CoinTotal(userID uuid.UUID) (int64, error) {
	var total int64
	err := r.DB.Model(&model.UserCoinLog{}).
		Where("user_coin_log_user_id = ?", userID).
		Select("COALESCE(SUM(user_coin_log_coins), 0)").
		Scan(&total).Error
	return total, err
}

func (r *GormGamificationStore) Leaderboard(since *time.Time, limit int) ([]dto.LeaderboardEntry, error) {
	// Points and badges are aggregated separately before joining; joining the
	// raw badge rows into the point aggregation would multiply every point
	// log by the user's badge count.
	points := r.DB.Table("user_point_logs").
		Select("user_point_log_user_id AS user_id, SUM(user_point_log_points) AS total_points").
		Group("user_point_log_user_id")
	if since != nil {
		points = points.Where("created_at >= ?", *since)
	}

	badges := r.DB.Table("user_badges").
		Select("user_badge_user_id AS user_id, COUNT(*) AS badge_count").
		Group("user_badge_user_id")

	var entries []dto.LeaderboardEntry
	err := r.DB.Table("(?) AS p", points).
		Select(`users.id, users.user_name AS name, users.github_username,
			p.total_points, COALESCE(b.badge_count, 0) AS badge_count`).
		Joins("JOIN users ON users.id = p.user_id").
		Joins("LEFT JOIN (?) AS b ON b.user_id = users.id", badges).
		Where("users.is_active = true").
		Order("p.total_points DESC, users.id ASC").
		Limit(limit).
		Scan(&entries).Error
	return entries, err
}

func (r *GormGamificationStore) BadgesByUser(userID uuid.UUID) ([]model.UserBadgeModel, error) {
	var badges []model.UserBadgeModel
	err := r.DB.
		Preload("Badge").
		Where("user_badge_user_id = ?", userID).
		Order("user_badge_awarded_at DESC").
		Find(&badges).Error
	return badges, err
}
