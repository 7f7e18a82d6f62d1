package services

import (
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"
)

// ScreenshotService archives full-page screenshots of submission stages to
// S3. Strictly best-effort: without AWS configuration every capture is a
// no-op, and a failed capture never affects the submission.
type ScreenshotService struct {
	s3 *S3Service
}

func NewScreenshotService() *ScreenshotService {
	s3Service, err := NewS3Service()
	if err != nil {
		log.Printf("Warning: S3 not available, submission screenshots disabled: %v", err)
		return &ScreenshotService{}
	}
	return &ScreenshotService{s3: s3Service}
}

// Capture takes a full-page screenshot tagged with the submission stage
// ("filled", "confirmation", ...) and uploads it. Returns the S3 key, or
// "" when screenshots are disabled or the capture failed.
func (s *ScreenshotService) Capture(page playwright.Page, jobID, stage string) string {
	if s.s3 == nil {
		return ""
	}

	content, err := page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		log.Printf("⚠ Screenshot capture failed (%s): %v", stage, err)
		return ""
	}

	key := fmt.Sprintf("submissions/%s/%s_%d.png", jobID, stage, time.Now().Unix())
	if _, err := s.s3.UploadBytes(content, key, "image/png"); err != nil {
		log.Printf("⚠ Screenshot upload failed (%s): %v", stage, err)
		return ""
	}

	return key
}
