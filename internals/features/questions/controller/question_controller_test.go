package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"communityhub_backend/internals/features/questions/dto"
	"communityhub_backend/internals/features/questions/model"
)

/* ===== in-memory store fake ===== */

type fakeQuestionStore struct {
	questions map[uint]*model.QuestionModel
}

func (f *fakeQuestionStore) ListApprovedByUser(userID uuid.UUID) ([]model.QuestionModel, error) {
	var out []model.QuestionModel
	for _, q := range f.questions {
		if q.QuestionUserID == userID && q.QuestionStatus == model.StatusApproved {
			out = append(out, *q)
		}
	}
	sortByIDDesc(out)
	return out, nil
}

func (f *fakeQuestionStore) ListAll() ([]model.QuestionModel, error) {
	out := make([]model.QuestionModel, 0, len(f.questions))
	for _, q := range f.questions {
		out = append(out, *q)
	}
	sortByIDDesc(out)
	return out, nil
}

func (f *fakeQuestionStore) GetApproved(questionID uint) (*model.QuestionModel, error) {
	if q, ok := f.questions[questionID]; ok && q.QuestionStatus == model.StatusApproved {
		cp := *q
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeQuestionStore) IncrementViews(questionID uint) error {
	if q, ok := f.questions[questionID]; ok {
		q.QuestionViews++
	}
	return nil
}

func (f *fakeQuestionStore) UpdateStatus(questionID uint, status string, approvedAt *time.Time) (int64, error) {
	q, ok := f.questions[questionID]
	if !ok {
		return 0, nil
	}
	q.QuestionStatus = status
	q.QuestionApprovedAt = approvedAt
	return 1, nil
}

func sortByIDDesc(qs []model.QuestionModel) {
	sort.Slice(qs, func(i, j int) bool { return qs[i].QuestionID > qs[j].QuestionID })
}

/* ===== fixture ===== */

var (
	aliceID = uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	bobID   = uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000002")

	frozenNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
)

func seededStore() *fakeQuestionStore {
	approvedAt := frozenNow.Add(-24 * time.Hour)
	return &fakeQuestionStore{
		questions: map[uint]*model.QuestionModel{
			5: {QuestionID: 5, QuestionUserID: aliceID, QuestionTitle: "Goroutine leaks", QuestionTags: "go,concurrency", QuestionStatus: model.StatusApproved, QuestionViews: 3, QuestionApprovedAt: &approvedAt},
			6: {QuestionID: 6, QuestionUserID: bobID, QuestionTitle: "Channel idioms", QuestionStatus: model.StatusApproved, QuestionApprovedAt: &approvedAt},
			7: {QuestionID: 7, QuestionUserID: aliceID, QuestionTitle: "Context timeouts", QuestionStatus: model.StatusPending},
		},
	}
}

func newQuestionApp(store *fakeQuestionStore, caller uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", caller.String())
		return c.Next()
	})

	userCtrl := NewQuestionUserController(store)
	adminCtrl := NewQuestionAdminController(store)
	adminCtrl.Now = func() time.Time { return frozenNow }

	app.Get("/api/u/questions/all", userCtrl.ListMine)
	app.Get("/api/u/questions/:id", userCtrl.Detail)
	app.Get("/api/a/questions", adminCtrl.ListAll)
	app.Put("/api/a/questions/status", adminCtrl.UpdateStatus)
	return app
}

func getJSON(t *testing.T, app *fiber.App, target string, out interface{}) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func putStatus(t *testing.T, app *fiber.App, payload interface{}) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPut, "/api/a/questions/status", bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

/* ===== user endpoints ===== */

func TestListMine_OwnApprovedOnly(t *testing.T) {
	app := newQuestionApp(seededStore(), aliceID)

	var body struct {
		Data []dto.QuestionResponse `json:"data"`
	}
	resp := getJSON(t, app, "/api/u/questions/all", &body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// bob's question and alice's pending question are both filtered out
	require.Len(t, body.Data, 1)
	assert.EqualValues(t, 5, body.Data[0].QuestionID)
	assert.Equal(t, []string{"go", "concurrency"}, body.Data[0].Tags)
}

func TestDetail_BumpsViews(t *testing.T) {
	store := seededStore()
	app := newQuestionApp(store, aliceID)

	var body struct {
		Data dto.QuestionResponse `json:"data"`
	}
	resp := getJSON(t, app, "/api/u/questions/5", &body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 4, body.Data.Views)
	assert.Equal(t, 4, store.questions[5].QuestionViews)
}

func TestDetail_PendingIsHidden(t *testing.T) {
	app := newQuestionApp(seededStore(), aliceID)
	resp := getJSON(t, app, "/api/u/questions/7", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDetail_BadID(t *testing.T) {
	app := newQuestionApp(seededStore(), aliceID)
	resp := getJSON(t, app, "/api/u/questions/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

/* ===== admin endpoints ===== */

func TestListAll_EveryStatusNewestFirst(t *testing.T) {
	app := newQuestionApp(seededStore(), aliceID)

	var body struct {
		Data []dto.QuestionResponse `json:"data"`
	}
	resp := getJSON(t, app, "/api/a/questions", &body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, body.Data, 3)
	assert.EqualValues(t, 7, body.Data[0].QuestionID)
	assert.Equal(t, model.StatusPending, body.Data[0].Status)
	assert.EqualValues(t, 5, body.Data[2].QuestionID)
}

func TestUpdateStatus_ApproveThenReject(t *testing.T) {
	store := seededStore()
	app := newQuestionApp(store, aliceID)

	resp := putStatus(t, app, dto.UpdateQuestionStatusRequest{QuestionID: 7, Status: model.StatusApproved})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, store.questions[7].QuestionApprovedAt)
	assert.Equal(t, frozenNow, *store.questions[7].QuestionApprovedAt)
	assert.Equal(t, model.StatusApproved, store.questions[7].QuestionStatus)

	// rejecting afterwards clears the approval timestamp
	resp = putStatus(t, app, dto.UpdateQuestionStatusRequest{QuestionID: 7, Status: model.StatusRejected})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, store.questions[7].QuestionApprovedAt)
	assert.Equal(t, model.StatusRejected, store.questions[7].QuestionStatus)
}

func TestUpdateStatus_BackToPendingClearsApprovedAt(t *testing.T) {
	store := seededStore()
	app := newQuestionApp(store, aliceID)

	resp := putStatus(t, app, dto.UpdateQuestionStatusRequest{QuestionID: 5, Status: model.StatusPending})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, store.questions[5].QuestionApprovedAt)
}

func TestUpdateStatus_UnknownQuestion(t *testing.T) {
	app := newQuestionApp(seededStore(), aliceID)
	resp := putStatus(t, app, dto.UpdateQuestionStatusRequest{QuestionID: 999, Status: model.StatusApproved})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	app := newQuestionApp(seededStore(), aliceID)
	resp := putStatus(t, app, map[string]interface{}{"question_id": 7, "status": "archived"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdateStatus_MalformedBody(t *testing.T) {
	app := newQuestionApp(seededStore(), aliceID)
	req := httptest.NewRequest(fiber.MethodPut, "/api/a/questions/status", bytes.NewReader([]byte("{not json")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
