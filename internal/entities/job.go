package entities

import "time"

// Job is a posting created by an employer. It stays invisible to the public
// until an admin moves Status to Accepted.
type Job struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	EmployerID         uint             `gorm:"index;not null" json:"employerId"`
	Employer           *Employer        `json:"employer,omitempty"`
	CompanyName        string           `json:"companyName"`
	JobTitle           string           `gorm:"not null" json:"jobTitle"`
	WorkMode           WorkMode         `gorm:"not null" json:"workMode"`
	Location           string           `json:"location"`
	Education          Education        `json:"education"`
	AdditionalSkill    Skill            `json:"additionalSkill"`
	SalaryOffered      float64          `json:"salaryOffered"`
	ExperienceRequired string           `gorm:"default:0" json:"experienceRequired"`
	Gender             GenderPreference `gorm:"default:Both" json:"gender"`
	Status             JobStatus        `gorm:"default:New;index" json:"status"`
	Description        string           `json:"description"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// Application is an applicant's submission against a job. EmployerID is
// denormalized from the job at creation so employer dashboards can query
// applications without joining through jobs.
type Application struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	JobID           uint      `gorm:"index;not null" json:"jobId"`
	Job             *Job      `json:"job,omitempty"`
	EmployerID      uint      `gorm:"index;not null" json:"employerId"`
	ApplicantName   string    `gorm:"not null" json:"applicantName"`
	Phone           string    `gorm:"not null" json:"phone"`
	Email           string    `gorm:"not null" json:"email"`
	Address         string    `json:"address"`
	Education       Education `json:"education,omitempty"`
	AdditionalSkill string    `json:"additionalSkill"`
	Gender          Gender    `gorm:"not null" json:"gender"`
	ResumeURL       *string   `json:"resumeUrl"`
	AppliedAt       time.Time `gorm:"autoCreateTime" json:"appliedAt"`
}
