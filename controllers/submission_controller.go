package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibejobhunter/models"
	"vibejobhunter/services"
	"vibejobhunter/utils"
)

// SubmissionController is the programmatic invocation surface for the
// upstream auto-application orchestrator. The submitter itself serializes
// submissions, so concurrent API calls queue rather than race.
type SubmissionController struct {
	Submitter     *services.ATSSubmitter
	SubmissionLog *services.SubmissionLog
}

func NewSubmissionController(submitter *services.ATSSubmitter, submissionLog *services.SubmissionLog) *SubmissionController {
	return &SubmissionController{
		Submitter:     submitter,
		SubmissionLog: submissionLog,
	}
}

type SubmitApplicationRequest struct {
	Job         models.Job `json:"job"`
	CoverLetter string     `json:"cover_letter"`
}

// SubmitApplication runs one submission attempt. The HTTP status is always
// 200 for a processed job: failure is a result, not a transport error.
func (ctrl *SubmissionController) SubmitApplication(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Job.URL == "" {
		utils.SendBadRequest(c, "job.url is required")
		return
	}

	result := ctrl.Submitter.SubmitApplication(req.Job, req.CoverLetter)
	utils.SendSuccess(c, http.StatusOK, result, "")
}

// ListSubmissions returns the persisted submission log, oldest first.
func (ctrl *SubmissionController) ListSubmissions(c *gin.Context) {
	entries := ctrl.SubmissionLog.Entries()
	utils.SendSuccess(c, http.StatusOK, gin.H{
		"count":       len(entries),
		"submissions": entries,
	}, "")
}

// Health reports service liveness.
func (ctrl *SubmissionController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
