package server

import (
	"net/http"
	"strconv"

	"github.com/avikm/job-board/internal/entities"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type createJobRequest struct {
	JobTitle           string  `json:"jobTitle" binding:"required"`
	WorkMode           string  `json:"workMode" binding:"required,workmode"`
	Location           string  `json:"location"`
	Education          string  `json:"education" binding:"omitempty,education"`
	AdditionalSkill    string  `json:"additionalSkill" binding:"omitempty,skillcategory"`
	SalaryOffered      float64 `json:"salaryOffered"`
	ExperienceRequired string  `json:"experienceRequired"`
	Gender             string  `json:"gender" binding:"omitempty,genderpreference"`
	Description        string  `json:"description"`
}

type updateJobRequest struct {
	JobTitle           *string  `json:"jobTitle"`
	WorkMode           *string  `json:"workMode" binding:"omitempty,workmode"`
	Location           *string  `json:"location"`
	Education          *string  `json:"education" binding:"omitempty,education"`
	AdditionalSkill    *string  `json:"additionalSkill" binding:"omitempty,skillcategory"`
	SalaryOffered      *float64 `json:"salaryOffered"`
	ExperienceRequired *string  `json:"experienceRequired"`
	Gender             *string  `json:"gender" binding:"omitempty,genderpreference"`
	Description        *string  `json:"description"`
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required,jobstatus"`
}

// publicJobView trims a job down to what listings expose: employer details are
// reduced to the company name.
type publicJobView struct {
	entities.Job
	Employer gin.H `json:"employer"`
}

func toPublicView(job entities.Job) publicJobView {
	view := publicJobView{Job: job, Employer: gin.H{}}
	if job.Employer != nil {
		view.Employer = gin.H{"companyName": job.Employer.CompanyName}
	}
	return view
}

// toDetailView exposes only the employer fields an applicant needs. Contact
// details stay private; applications flow through the apply endpoint.
func toDetailView(job entities.Job) publicJobView {
	view := publicJobView{Job: job, Employer: gin.H{}}
	if job.Employer != nil {
		view.Employer = gin.H{
			"companyName": job.Employer.CompanyName,
			"ownerName":   job.Employer.OwnerName,
			"address":     job.Employer.Address,
		}
	}
	return view
}

func jobID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid job id")
		return 0, false
	}
	return uint(id), true
}

func (s *Server) listPublicJobs(c *gin.Context) {
	jobs, err := s.jobs.ListPublic(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, gin.H{"jobs": lo.Map(jobs, func(job entities.Job, _ int) publicJobView {
		return toPublicView(job)
	})})
}

func (s *Server) employerJobs(c *gin.Context) {
	jobs, err := s.jobs.ListForEmployer(c.Request.Context(), employerID(c))
	if err != nil {
		failFromError(c, err)
		return
	}
	ok(c, gin.H{"jobs": jobs})
}

func (s *Server) adminListJobs(c *gin.Context) {
	jobs, err := s.jobs.ListAll(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	ok(c, gin.H{"jobs": jobs})
}

func (s *Server) getJob(c *gin.Context) {
	id, found := jobID(c)
	if !found {
		return
	}

	job, err := s.jobs.GetByID(c.Request.Context(), id, s.callerFromToken(c))
	if err != nil {
		failFromError(c, err)
		return
	}
	ok(c, gin.H{"job": toDetailView(*job)})
}

func (s *Server) createJob(c *gin.Context) {
	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid job fields")
		return
	}

	draft := entities.Job{
		JobTitle:           req.JobTitle,
		WorkMode:           entities.WorkMode(req.WorkMode),
		Location:           req.Location,
		Education:          entities.Education(req.Education),
		AdditionalSkill:    entities.Skill(req.AdditionalSkill),
		SalaryOffered:      req.SalaryOffered,
		ExperienceRequired: req.ExperienceRequired,
		Gender:             entities.GenderPreference(req.Gender),
		Description:        req.Description,
	}
	if draft.ExperienceRequired == "" {
		draft.ExperienceRequired = "0"
	}
	if draft.Gender == "" {
		draft.Gender = entities.Both
	}

	job, err := s.jobs.Create(c.Request.Context(), employerID(c), draft)
	if err != nil {
		failFromError(c, err)
		return
	}
	ok(c, gin.H{"job": job})
}

func (s *Server) updateJob(c *gin.Context) {
	id, found := jobID(c)
	if !found {
		return
	}

	var req updateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid job fields")
		return
	}

	fields := map[string]any{}
	if req.JobTitle != nil {
		fields["job_title"] = *req.JobTitle
	}
	if req.WorkMode != nil {
		fields["work_mode"] = *req.WorkMode
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Education != nil {
		fields["education"] = *req.Education
	}
	if req.AdditionalSkill != nil {
		fields["additional_skill"] = *req.AdditionalSkill
	}
	if req.SalaryOffered != nil {
		fields["salary_offered"] = *req.SalaryOffered
	}
	if req.ExperienceRequired != nil {
		fields["experience_required"] = *req.ExperienceRequired
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if len(fields) == 0 {
		fail(c, http.StatusBadRequest, "No fields to update")
		return
	}

	job, err := s.jobs.Update(c.Request.Context(), id, employerID(c), fields)
	if err != nil {
		failFromError(c, err)
		return
	}
	ok(c, gin.H{"job": job})
}

func (s *Server) deleteJob(c *gin.Context) {
	id, found := jobID(c)
	if !found {
		return
	}

	if err := s.jobs.Delete(c.Request.Context(), id, employerID(c)); err != nil {
		failFromError(c, err)
		return
	}
	ok(c, gin.H{"message": "Job deleted successfully"})
}

func (s *Server) adminSetJobStatus(c *gin.Context) {
	id, found := jobID(c)
	if !found {
		return
	}

	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid status")
		return
	}

	job, err := s.jobs.SetStatus(c.Request.Context(), id, entities.JobStatus(req.Status))
	if err != nil {
		failFromError(c, err)
		return
	}
	ok(c, gin.H{"job": job})
}
