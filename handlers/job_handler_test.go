package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thehellodigital/job-khuiji/handlers"
	"github.com/thehellodigital/job-khuiji/internal/testutils"
	"github.com/thehellodigital/job-khuiji/services"
)

func setupRouter(t *testing.T) (*gin.Engine, *testutils.FakeJobRepo, *testutils.FakeApplicationRepo, *testutils.FakeAcceptedTaskRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repos, jobs, apps, tasks := testutils.NewFakeRepos()
	h := handlers.New(services.New(repos))

	r := gin.New()
	r.POST("/freelance", h.Job.CreateJob)
	r.GET("/freelance", h.Job.GetJobs)
	r.GET("/freelance/job/:id", h.Job.GetJobByID)
	r.GET("/freelance/:email", h.Job.GetJobsByEmail)
	r.PATCH("/freelance/:id", h.Job.UpdateJob)
	r.PUT("/freelance/:id", h.Job.UpdateJob)
	r.DELETE("/freelance/:id", h.Job.DeleteJob)
	r.POST("/applications", h.Application.SubmitApplication)
	r.GET("/applications", h.Application.GetApplications)
	r.PATCH("/applications/:id", h.Application.DecideApplication)
	r.DELETE("/applications/:id", h.Application.DeleteApplication)
	r.GET("/acceptedTasks", h.AcceptedTask.GetAcceptedTasks)
	r.DELETE("/acceptedTasks/:id", h.AcceptedTask.DeleteAcceptedTask)
	r.POST("/upload", h.Upload.UploadFile)

	return r, jobs, apps, tasks
}

func performRequest(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func TestJobRoundTrip(t *testing.T) {
	r, _, _, _ := setupRouter(t)

	w := performRequest(t, r, http.MethodPost, "/freelance", map[string]any{
		"title":     "T",
		"userEmail": "a@x.com",
		"budget":    300,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON(t, w)
	assert.Equal(t, "T", created["title"])
	assert.Equal(t, float64(300), created["budget"], "extra field flattened back")
	require.NotZero(t, created["id"])

	w = performRequest(t, r, http.MethodGet, "/freelance/job/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeJSON(t, w)
	assert.Equal(t, "T", got["title"])
	assert.Equal(t, "a@x.com", got["userEmail"])
	assert.Equal(t, float64(300), got["budget"])

	w = performRequest(t, r, http.MethodGet, "/freelance/a@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "T", list[0]["title"])
}

func TestGetJobErrors(t *testing.T) {
	r, _, _, _ := setupRouter(t)

	w := performRequest(t, r, http.MethodGet, "/freelance/job/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, r, http.MethodGet, "/freelance/job/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListJobsLatestFirst(t *testing.T) {
	r, _, _, _ := setupRouter(t)
	for _, title := range []string{"one", "two"} {
		w := performRequest(t, r, http.MethodPost, "/freelance", map[string]any{"title": title})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := performRequest(t, r, http.MethodGet, "/freelance?sort=latest", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "two", list[0]["title"])
}

func TestEmptyListsAreArrays(t *testing.T) {
	r, _, _, _ := setupRouter(t)
	for _, path := range []string{
		"/freelance",
		"/freelance/nobody@x.com",
		"/applications",
		"/applications?posterEmail=nobody@x.com",
		"/applications?jobId=42",
		"/applications?applicantEmail=nobody@x.com",
		"/acceptedTasks?userEmail=nobody@x.com",
	} {
		w := performRequest(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "[]", w.Body.String(), path)
	}
}

func TestUpdateJob(t *testing.T) {
	r, jobs, _, _ := setupRouter(t)
	w := performRequest(t, r, http.MethodPost, "/freelance", map[string]any{"title": "old"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(t, r, http.MethodPatch, "/freelance/1", map[string]any{"title": "new"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeJSON(t, w)["matchedCount"])
	assert.Equal(t, "new", jobs.LastUpdate["title"])

	// PUT shares the PATCH semantics
	w = performRequest(t, r, http.MethodPut, "/freelance/1", map[string]any{"title": "newer"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "newer", jobs.LastUpdate["title"])

	w = performRequest(t, r, http.MethodPatch, "/freelance/99", map[string]any{"title": "x"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeJSON(t, w)["matchedCount"])

	w = performRequest(t, r, http.MethodPatch, "/freelance/oops", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, r, http.MethodPatch, "/freelance/1", map[string]any{"title": 123})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "newer", jobs.LastUpdate["title"], "rejected update writes nothing")
}

func TestDeleteJob(t *testing.T) {
	r, _, _, _ := setupRouter(t)
	w := performRequest(t, r, http.MethodPost, "/freelance", map[string]any{"title": "t"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(t, r, http.MethodDelete, "/freelance/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeJSON(t, w)["deletedCount"])

	w = performRequest(t, r, http.MethodDelete, "/freelance/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeJSON(t, w)["deletedCount"])
}
