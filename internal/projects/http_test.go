package projects_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kizzylord/portfolio-backend/internal/bootstrap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := bootstrap.OpenDB(context.Background(), bootstrap.DBOptions{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "portfolio-backend",
		Version:     "test",
		DB:          db,
	})
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type projectBody struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func TestProjects_CRUDScenario(t *testing.T) {
	r := newTestRouter(t)

	// create
	w := do(t, r, http.MethodPost, "/projects/", `{"title":"A","description":"B"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created projectBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, projectBody{ID: 1, Title: "A", Description: "B"}, created)

	// read back
	w = do(t, r, http.MethodGet, "/projects/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got projectBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created, got)

	// full overwrite, id preserved
	w = do(t, r, http.MethodPut, "/projects/1", `{"title":"C","description":"D"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated projectBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, projectBody{ID: 1, Title: "C", Description: "D"}, updated)

	// delete echoes the prior values
	w = do(t, r, http.MethodDelete, "/projects/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var deleted projectBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deleted))
	assert.Equal(t, updated, deleted)

	// gone now
	w = do(t, r, http.MethodGet, "/projects/1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "project not found")
}

func TestProjects_NotFound(t *testing.T) {
	r := newTestRouter(t)

	for _, tc := range []struct {
		method string
		body   string
	}{
		{http.MethodGet, ""},
		{http.MethodPut, `{"title":"x","description":"y"}`},
		{http.MethodDelete, ""},
	} {
		w := do(t, r, tc.method, "/projects/123", tc.body)
		assert.Equal(t, http.StatusNotFound, w.Code, tc.method)
		assert.Contains(t, w.Body.String(), "project not found", tc.method)
	}
}

func TestProjects_InvalidBody(t *testing.T) {
	r := newTestRouter(t)

	t.Run("missing field", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/projects/", `{"title":"A"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "description")
	})

	t.Run("wrong type", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/projects/", `{"title":5,"description":"B"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/projects/", `{"title":`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("empty strings are accepted", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/projects/", `{"title":"","description":""}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("put validates before touching the store", func(t *testing.T) {
		w := do(t, r, http.MethodPut, "/projects/999", `{"title":"A"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestProjects_InvalidID(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/projects/abc", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "must be an integer")
}

func TestProjects_ListPagination(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/projects/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	for i := 0; i < 12; i++ {
		w := do(t, r, http.MethodPost, "/projects/", `{"title":"p","description":"d"}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var list []projectBody

	// default limit is 10
	w = do(t, r, http.MethodGet, "/projects/", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 10)
	assert.Equal(t, int64(1), list[0].ID)

	// skip past the first page
	w = do(t, r, http.MethodGet, "/projects/?skip=10", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, int64(11), list[0].ID)

	// explicit limit
	w = do(t, r, http.MethodGet, "/projects/?skip=2&limit=3", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 3)
	assert.Equal(t, int64(3), list[0].ID)

	// malformed values fall back to defaults
	w = do(t, r, http.MethodGet, "/projects/?skip=abc&limit=zz", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 10)
}
