package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thehellodigital/job-khuiji/models"
	"gorm.io/datatypes"
)

func TestJobMarshalFlattensExtra(t *testing.T) {
	job := models.Job{
		ID:        1,
		Title:     "T",
		UserEmail: "a@x.com",
		Extra: datatypes.JSONMap{
			"budget": float64(250),
			"title":  "shadowed",
		},
	}

	raw, err := json.Marshal(job)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, float64(250), m["budget"])
	assert.Equal(t, "T", m["title"], "known fields win over extra keys")
	assert.NotContains(t, m, "extra")
}

func TestApplicationMarshalFlattensExtra(t *testing.T) {
	app := models.Application{
		ID:             1,
		JobID:          "1",
		ApplicantEmail: "w@x.com",
		Status:         models.StatusPending,
		Extra:          datatypes.JSONMap{"portfolio": "https://w.example"},
	}

	raw, err := json.Marshal(app)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "https://w.example", m["portfolio"])
	assert.Equal(t, "pending", m["status"])
}

func TestApplicationStatusValid(t *testing.T) {
	assert.True(t, models.StatusPending.Valid())
	assert.True(t, models.StatusApproved.Valid())
	assert.True(t, models.StatusRejected.Valid())
	assert.False(t, models.ApplicationStatus("done").Valid())
}
