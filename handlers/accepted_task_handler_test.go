package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thehellodigital/job-khuiji/models"
)

func TestGetAcceptedTasks(t *testing.T) {
	r, _, _, tasks := setupRouter(t)
	tasks.Add(models.AcceptedTask{JobID: "1", Title: "T", UserEmail: "worker@x.com"})
	tasks.Add(models.AcceptedTask{JobID: "2", Title: "U", UserEmail: "other@x.com"})

	w := performRequest(t, r, http.MethodGet, "/acceptedTasks", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "userEmail is mandatory")

	w = performRequest(t, r, http.MethodGet, "/acceptedTasks?userEmail=worker@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.AcceptedTask
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "T", list[0].Title)
}

func TestDeleteAcceptedTask(t *testing.T) {
	r, _, _, tasks := setupRouter(t)
	task := tasks.Add(models.AcceptedTask{JobID: "1", UserEmail: "worker@x.com"})

	w := performRequest(t, r, http.MethodDelete, "/acceptedTasks/bad", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, r, http.MethodDelete, "/acceptedTasks/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeJSON(t, w)["deletedCount"])
	assert.NotContains(t, tasks.Tasks, task.ID)

	w = performRequest(t, r, http.MethodDelete, "/acceptedTasks/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeJSON(t, w)["deletedCount"])
}
