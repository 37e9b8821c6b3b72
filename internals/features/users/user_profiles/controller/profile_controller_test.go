package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	gamificationDTO "communityhub_backend/internals/features/gamification/dto"
	gamificationModel "communityhub_backend/internals/features/gamification/model"
	userModel "communityhub_backend/internals/features/users/user/model"
	"communityhub_backend/internals/features/users/user_profiles/dto"
)

/* ===== fakes ===== */

type fakeProfileStore struct {
	user *userModel.UserModel

	certificates int64
	questions    int64
	answers      int64
	activities   int64
}

func (f *fakeProfileStore) GetUser(uuid.UUID) (*userModel.UserModel, error) {
	if f.user == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f.user
	return &cp, nil
}

func (f *fakeProfileStore) CertificateCount(uuid.UUID) (int64, error) { return f.certificates, nil }
func (f *fakeProfileStore) QuestionCount(uuid.UUID) (int64, error)    { return f.questions, nil }
func (f *fakeProfileStore) AnswerCount(uuid.UUID) (int64, error)      { return f.answers, nil }
func (f *fakeProfileStore) ActivityCount(uuid.UUID) (int64, error)    { return f.activities, nil }

type fakeGamification struct {
	points int64
	coins  int64
	badges []gamificationModel.UserBadgeModel
}

func (f *fakeGamification) PointTotal(uuid.UUID) (int64, error) { return f.points, nil }
func (f *fakeGamification) CoinTotal(uuid.UUID) (int64, error)  { return f.coins, nil }
func (f *fakeGamification) Leaderboard(*time.Time, int) ([]gamificationDTO.LeaderboardEntry, error) {
	return nil, nil
}
func (f *fakeGamification) BadgesByUser(uuid.UUID) ([]gamificationModel.UserBadgeModel, error) {
	return f.badges, nil
}

type fakeGitHub struct {
	status  int
	body    []byte
	err     error
	fetched string
}

func (f *fakeGitHub) FetchUser(username string) (int, []byte, error) {
	f.fetched = username
	return f.status, f.body, f.err
}

/* ===== fixture ===== */

var profileUserID = uuid.MustParse("dddddddd-0000-0000-0000-000000000004")

func sampleUser() *userModel.UserModel {
	return &userModel.UserModel{
		ID:             profileUserID,
		UserName:       "ada",
		Email:          "ada@example.com",
		GithubUsername: "adalovelace",
		StudentID:      "S-1815",
		CreatedAt:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func newProfileApp(store *fakeProfileStore, gam *fakeGamification, gh *fakeGitHub) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", profileUserID.String())
		return c.Next()
	})

	ctrl := NewProfileController(store, gam, gh)
	app.Get("/api/u/profile", ctrl.Profile)
	app.Get("/api/u/profile/github", ctrl.GitHubProfile)
	return app
}

func do(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
	require.NoError(t, err)
	return resp
}

/* ===== profile aggregate ===== */

func TestProfile_Aggregate(t *testing.T) {
	store := &fakeProfileStore{user: sampleUser(), certificates: 2, questions: 5, answers: 9, activities: 31}
	gam := &fakeGamification{
		points: 1200,
		coins:  40,
		badges: []gamificationModel.UserBadgeModel{
			{UserBadgeBadgeID: 1, Badge: gamificationModel.BadgeModel{BadgeID: 1, BadgeName: "Early Bird"}},
		},
	}
	app := newProfileApp(store, gam, &fakeGitHub{})

	resp := do(t, app, "/api/u/profile")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data dto.ProfileResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ada", body.Data.UserName)
	assert.Equal(t, "adalovelace", body.Data.GithubUsername)
	assert.EqualValues(t, 1200, body.Data.TotalPoints)
	assert.EqualValues(t, 40, body.Data.CodeCoins)
	require.Len(t, body.Data.Badges, 1)
	assert.Equal(t, "Early Bird", body.Data.Badges[0].Name)
	assert.EqualValues(t, 2, body.Data.CertificateCount)
	assert.EqualValues(t, 5, body.Data.QuestionCount)
	assert.EqualValues(t, 9, body.Data.AnswerCount)
	assert.EqualValues(t, 31, body.Data.ActivityCount)
}

func TestProfile_UnknownUser(t *testing.T) {
	app := newProfileApp(&fakeProfileStore{}, &fakeGamification{}, &fakeGitHub{})
	resp := do(t, app, "/api/u/profile")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

/* ===== github proxy ===== */

func TestGitHubProfile_Passthrough(t *testing.T) {
	gh := &fakeGitHub{status: fiber.StatusOK, body: []byte(`{"login":"adalovelace","public_repos":12}`)}
	app := newProfileApp(&fakeProfileStore{user: sampleUser()}, &fakeGamification{}, gh)

	resp := do(t, app, "/api/u/profile/github")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "adalovelace", gh.fetched)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"login":"adalovelace","public_repos":12}`, string(raw))
}

func TestGitHubProfile_NoLinkedAccount(t *testing.T) {
	user := sampleUser()
	user.GithubUsername = "  "
	app := newProfileApp(&fakeProfileStore{user: user}, &fakeGamification{}, &fakeGitHub{})

	resp := do(t, app, "/api/u/profile/github")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGitHubProfile_UpstreamError(t *testing.T) {
	gh := &fakeGitHub{status: fiber.StatusNotFound, body: []byte(`{"message":"Not Found"}`)}
	app := newProfileApp(&fakeProfileStore{user: sampleUser()}, &fakeGamification{}, gh)

	resp := do(t, app, "/api/u/profile/github")
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}
