package entities

import "errors"

type WorkMode string

const (
	PartTime   WorkMode = "Part Time"
	FullTime   WorkMode = "Full Time"
	Remote     WorkMode = "Remote"
	Hybrid     WorkMode = "Hybrid"
	DayShift   WorkMode = "Day Shift"
	NightShift WorkMode = "Night Shift"
)

func ToWorkMode(s string) (WorkMode, error) {
	switch s {
	case string(PartTime), string(FullTime), string(Remote), string(Hybrid), string(DayShift), string(NightShift):
		return WorkMode(s), nil
	default:
		return "", errors.New("invalid work mode")
	}
}

type Education string

const (
	TenPass    Education = "10 Pass"
	TwelvePass Education = "12 Pass"
	Graduate   Education = "Graduate"
	Master     Education = "Master"
)

func ToEducation(s string) (Education, error) {
	switch s {
	case string(TenPass), string(TwelvePass), string(Graduate), string(Master):
		return Education(s), nil
	default:
		return "", errors.New("invalid education")
	}
}

type Skill string

var skills = []Skill{
	"Social Media Marketing", "Content Writer", "HR", "Web Developer",
	"App Developer", "Doctor", "Nurse", "Teacher", "Yoga", "Accountant",
}

func ToSkill(s string) (Skill, error) {
	for _, skill := range skills {
		if s == string(skill) {
			return skill, nil
		}
	}
	return "", errors.New("invalid skill category")
}

// GenderPreference is the employer-side requirement on a job posting.
type GenderPreference string

const (
	MaleOnly   GenderPreference = "Male Only"
	FemaleOnly GenderPreference = "Female Only"
	Both       GenderPreference = "Both"
)

func ToGenderPreference(s string) (GenderPreference, error) {
	switch s {
	case string(MaleOnly), string(FemaleOnly), string(Both):
		return GenderPreference(s), nil
	default:
		return "", errors.New("invalid gender preference")
	}
}

// Gender is the applicant-side field on an application.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

func ToGender(s string) (Gender, error) {
	switch s {
	case string(Male), string(Female):
		return Gender(s), nil
	default:
		return "", errors.New("invalid gender")
	}
}

type JobStatus string

const (
	StatusNew      JobStatus = "New"
	StatusAccepted JobStatus = "Accepted"
	StatusRejected JobStatus = "Rejected"
)

func ToJobStatus(s string) (JobStatus, error) {
	switch s {
	case string(StatusNew), string(StatusAccepted), string(StatusRejected):
		return JobStatus(s), nil
	default:
		return "", errors.New("invalid job status")
	}
}
