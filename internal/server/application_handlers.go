package server

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/avikm/job-board/internal/entities"
	"github.com/avikm/job-board/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type applyRequest struct {
	ApplicantName   string `form:"applicantName" binding:"required"`
	Phone           string `form:"phone" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	Address         string `form:"address"`
	Education       string `form:"education" binding:"omitempty,education"`
	AdditionalSkill string `form:"additionalSkill"`
	Gender          string `form:"gender" binding:"required,oneof=Male Female"`
}

// apply handles the public multipart submission. The uploaded resume file is
// the only persisted representation; a resume link form field is not stored.
func (s *Server) apply(c *gin.Context) {
	id, found := jobID(c)
	if !found {
		return
	}

	var req applyRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing or invalid applicant fields")
		return
	}

	application := entities.Application{
		ApplicantName:   req.ApplicantName,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		Education:       entities.Education(req.Education),
		AdditionalSkill: req.AdditionalSkill,
		Gender:          entities.Gender(req.Gender),
	}

	var savedResume string
	if file, err := c.FormFile("resume"); err == nil {
		resumeURL, saveErr := s.saveResume(c, file)
		if saveErr != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeUpload).Errorf("failed to save resume: %v", saveErr)
			fail(c, http.StatusBadRequest, "Could not store resume file")
			return
		}
		application.ResumeURL = &resumeURL
		savedResume = filepath.Join(s.uploads.Dir, filepath.Base(resumeURL))
	}

	created, err := s.applications.Apply(c.Request.Context(), id, application)
	if err != nil {
		// a rejected submission must not leave its resume behind
		if savedResume != "" {
			if removeErr := os.Remove(savedResume); removeErr != nil {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeUpload).Errorf("failed to remove resume: %v", removeErr)
			}
		}
		failFromError(c, err)
		return
	}

	ok(c, gin.H{"message": "Application submitted successfully", "application": created})
}

// saveResume stores the upload under a random name, keeping only the original
// extension, and returns the public path.
func (s *Server) saveResume(c *gin.Context, file *multipart.FileHeader) (string, error) {

	if s.uploads.MaxSizeBytes > 0 && file.Size > s.uploads.MaxSizeBytes {
		return "", errors.New("resume exceeds the size limit")
	}

	if err := os.MkdirAll(s.uploads.Dir, 0755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(s.uploads.Dir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

func (s *Server) employerApplications(c *gin.Context) {
	applications, err := s.applications.ListForEmployer(c.Request.Context(), employerID(c))
	if err != nil {
		failFromError(c, err)
		return
	}
	ok(c, gin.H{"applications": applications})
}
