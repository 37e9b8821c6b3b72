package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})
	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
	require.NoError(t, err)
	return got
}

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   Paging
	}{
		{"defaults", "/", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"explicit", "/?page=3&per_page=10", Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{"limit alias", "/?limit=5", Paging{Page: 1, PerPage: 5, Offset: 0, Limit: 5}},
		{"per_page wins over limit", "/?per_page=10&limit=5", Paging{Page: 1, PerPage: 10, Offset: 0, Limit: 10}},
		{"capped at max", "/?per_page=500", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"garbage falls back", "/?page=abc&per_page=xyz", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"negative page clamps", "/?page=-2", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, resolveFor(t, tc.target))
		})
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(Paging{Page: 2, PerPage: 10}, 35, 10)
	assert.Equal(t, 2, p.Page)
	assert.EqualValues(t, 35, p.Total)
	assert.Equal(t, 4, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 10, p.Count)

	last := BuildPagination(Paging{Page: 4, PerPage: 10}, 35, 5)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	empty := BuildPagination(Paging{Page: 1, PerPage: 10}, 0, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
