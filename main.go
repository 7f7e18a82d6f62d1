package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"vibejobhunter/config"
	"vibejobhunter/controllers"
	"vibejobhunter/middleware"
	"vibejobhunter/models"
	"vibejobhunter/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment as-is")
	}

	cfg := config.GetAppConfig()
	profile := models.LoadApplicantProfile(cfg.Applicant)

	submissionLog, err := services.NewSubmissionLog(cfg.ATS.DataDir)
	if err != nil {
		log.Fatalf("Failed to open submission log: %v", err)
	}

	verifier := services.NewEmailVerifier(cfg.Mailbox)
	submitter := services.NewATSSubmitter(cfg.ATS, profile, submissionLog, verifier)
	defer submitter.Close()

	if cfg.ATS.DryRun {
		log.Printf("ATS_DRY_RUN is enabled: no live submissions will be made")
	}

	ctrl := controllers.NewSubmissionController(submitter, submissionLog)
	limiters := middleware.CreateRateLimiters()

	r := gin.Default()
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	r.GET("/health", ctrl.Health)

	api := r.Group("/api")
	api.Use(limiters["general"].Limit())
	{
		api.GET("/applications", ctrl.ListSubmissions)
		api.POST("/applications/submit", limiters["submit"].Limit(), ctrl.SubmitApplication)
	}

	log.Printf("Listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
