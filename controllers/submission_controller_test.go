package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibejobhunter/config"
	"vibejobhunter/models"
	"vibejobhunter/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	submissionLog, err := services.NewSubmissionLog(t.TempDir())
	require.NoError(t, err)

	cfg := config.ATSConfig{
		DryRun:              true,
		NavigationTimeout:   30 * time.Second,
		VerificationTimeout: time.Second,
	}
	profile := models.LoadApplicantProfile(config.ApplicantConfig{FirstName: "Elena", LastName: "Revicheva"})
	submitter := services.NewATSSubmitter(cfg, profile, submissionLog, services.NewEmailVerifier(config.MailboxConfig{}))
	t.Cleanup(submitter.Close)

	ctrl := NewSubmissionController(submitter, submissionLog)

	r := gin.New()
	r.GET("/health", ctrl.Health)
	r.GET("/api/applications", ctrl.ListSubmissions)
	r.POST("/api/applications/submit", ctrl.SubmitApplication)
	return r
}

func TestSubmitApplication_Endpoint(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(SubmitApplicationRequest{
		Job: models.Job{
			ID:      "job-1",
			URL:     "https://boards.greenhouse.io/acme/jobs/123",
			Company: "Acme",
			Title:   "Engineer",
			Source:  "greenhouse",
		},
		CoverLetter: "Dear team,",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/applications/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                    `json:"success"`
		Data    models.SubmissionResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Data.DryRun)
	assert.Equal(t, models.DryRunConfirmationID, resp.Data.ConfirmationID)
}

func TestSubmitApplication_MissingURL(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(SubmitApplicationRequest{Job: models.Job{ID: "job-1"}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/applications/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListSubmissions_Endpoint(t *testing.T) {
	router := newTestRouter(t)

	// Seed one dry-run submission.
	body, _ := json.Marshal(SubmitApplicationRequest{
		Job: models.Job{ID: "job-2", URL: "https://jobs.lever.co/acme/1", Source: "lever"},
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/applications/submit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/applications", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jobs.lever.co/acme/1")
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestHealth_Endpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
