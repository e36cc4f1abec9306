package tests

import (
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployerRegistration_RejectsDuplicateContact(t *testing.T) {
	app := newTestApp(t)

	app.registerEmployer(t, "+911234567890", "first@acme.test")

	status, resp := app.request(t, http.MethodPost, "/api/employer/register", "", map[string]any{
		"companyName": "Other Co",
		"ownerName":   "Road R.",
		"phone":       "+911234567890",
		"email":       "other@acme.test",
		"password":    "secret123",
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, resp.Success)
	assert.Equal(t, "Phone or email already registered", resp.Message)
}

func TestEmployerLogin(t *testing.T) {
	app := newTestApp(t)
	app.registerEmployer(t, "+911111111111", "login@acme.test")

	status, resp := app.request(t, http.MethodPost, "/api/employer/login", "", map[string]any{
		"phone":    "+911111111111",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "login@acme.test", resp.Employer["email"])

	status, resp = app.request(t, http.MethodPost, "/api/employer/login", "", map[string]any{
		"phone":    "+911111111111",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid credentials", resp.Message)
}

func TestJobLifecycle_HiddenUntilAccepted(t *testing.T) {
	app := newTestApp(t)
	employerToken := app.registerEmployer(t, "+912222222222", "jobs@acme.test")
	adminToken := app.signupAdmin(t)

	jobID := app.createJob(t, employerToken)

	// freshly created jobs default to New and stay out of the public listing
	status, resp := app.request(t, http.MethodGet, "/api/jobs", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, resp.Jobs)

	// the public detail endpoint does not reveal the hidden job either
	status, resp = app.request(t, http.MethodGet, fmt.Sprintf("/api/jobs/%d", jobID), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Job not available", resp.Message)

	// the owner still sees it
	status, resp = app.request(t, http.MethodGet, fmt.Sprintf("/api/jobs/%d", jobID), employerToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "New", resp.Job["status"])

	app.acceptJob(t, adminToken, jobID)

	status, resp = app.request(t, http.MethodGet, "/api/jobs", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "Accepted", resp.Jobs[0]["status"])
	assert.Equal(t, map[string]any{"companyName": "Acme"}, resp.Jobs[0]["employer"])
}

func TestJobDetail_HidesEmployerContact(t *testing.T) {
	app := newTestApp(t)
	employerToken := app.registerEmployer(t, "+917000000001", "detail@acme.test")
	adminToken := app.signupAdmin(t)

	jobID := app.createJob(t, employerToken)
	app.acceptJob(t, adminToken, jobID)

	status, resp := app.request(t, http.MethodGet, fmt.Sprintf("/api/jobs/%d", jobID), "", nil)
	require.Equal(t, http.StatusOK, status)

	employer, isMap := resp.Job["employer"].(map[string]any)
	require.True(t, isMap)
	assert.Equal(t, "Acme", employer["companyName"])
	assert.Contains(t, employer, "ownerName")
	assert.NotContains(t, employer, "phone")
	assert.NotContains(t, employer, "email")
	assert.NotContains(t, employer, "isActive")
	assert.NotContains(t, employer, "createdAt")
}

func TestEmployerJobs_OmitEmptyEmployer(t *testing.T) {
	app := newTestApp(t)
	employerToken := app.registerEmployer(t, "+917000000002", "omit@acme.test")
	app.createJob(t, employerToken)

	status, resp := app.request(t, http.MethodGet, "/api/employer/me/jobs", employerToken, nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp.Jobs, 1)
	assert.NotContains(t, resp.Jobs[0], "employer")
}

func TestApply_RejectsDuplicateContacts(t *testing.T) {
	app := newTestApp(t)
	employerToken := app.registerEmployer(t, "+913333333333", "apply@acme.test")
	adminToken := app.signupAdmin(t)

	jobID := app.createJob(t, employerToken)
	app.acceptJob(t, adminToken, jobID)

	first := map[string]string{
		"applicantName": "Asha",
		"phone":         "+919999999999",
		"email":         "asha@mail.test",
		"gender":        "Female",
	}
	status, resp := app.applyForm(t, jobID, first)
	require.Equal(t, http.StatusOK, status)
	require.True(t, resp.Success)
	assert.Equal(t, "Application submitted successfully", resp.Message)

	samePhone := map[string]string{
		"applicantName": "Asha Again",
		"phone":         "+919999999999",
		"email":         "different@mail.test",
		"gender":        "Female",
	}
	status, resp = app.applyForm(t, jobID, samePhone)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, resp.Success)

	sameEmail := map[string]string{
		"applicantName": "Asha Again",
		"phone":         "+918888888888",
		"email":         "asha@mail.test",
		"gender":        "Female",
	}
	status, resp = app.applyForm(t, jobID, sameEmail)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, resp.Success)

	// the employer dashboard holds the single accepted submission
	status, resp = app.request(t, http.MethodGet, "/api/employer/me/applications", employerToken, nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp.Applications, 1)
	assert.Equal(t, "Asha", resp.Applications[0]["applicantName"])
}

func TestApply_RemovesResumeOnRejection(t *testing.T) {
	app := newTestApp(t)
	employerToken := app.registerEmployer(t, "+917000000003", "resume@acme.test")
	adminToken := app.signupAdmin(t)

	jobID := app.createJob(t, employerToken)
	app.acceptJob(t, adminToken, jobID)

	fields := map[string]string{
		"applicantName": "Meera",
		"phone":         "+916000000000",
		"email":         "meera@mail.test",
		"gender":        "Female",
	}
	status, resp := app.applyMultipart(t, jobID, fields, "cv.pdf")
	require.Equal(t, http.StatusOK, status)
	require.True(t, resp.Success)

	stored, err := os.ReadDir(app.uploadsDir)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	// the duplicate rejection must not leave a second file behind
	status, resp = app.applyMultipart(t, jobID, fields, "cv-again.pdf")
	require.Equal(t, http.StatusBadRequest, status)
	assert.False(t, resp.Success)

	stored, err = os.ReadDir(app.uploadsDir)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestApply_RejectsPendingJob(t *testing.T) {
	app := newTestApp(t)
	employerToken := app.registerEmployer(t, "+914444444444", "pending@acme.test")

	jobID := app.createJob(t, employerToken)

	status, resp := app.applyForm(t, jobID, map[string]string{
		"applicantName": "Ravi",
		"phone":         "+917777777777",
		"email":         "ravi@mail.test",
		"gender":        "Male",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Job not available", resp.Message)
}

func TestRoleGuards_RejectCrossRoleTokens(t *testing.T) {
	app := newTestApp(t)
	employerToken := app.registerEmployer(t, "+915555555555", "guard@acme.test")
	adminToken := app.signupAdmin(t)

	status, resp := app.request(t, http.MethodGet, "/api/admin/jobs", employerToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Forbidden: admin only", resp.Message)

	status, resp = app.request(t, http.MethodGet, "/api/employer/me/jobs", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Forbidden", resp.Message)

	status, _ = app.request(t, http.MethodGet, "/api/employer/me/jobs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestJobUpdateAndDelete_ScopedToOwner(t *testing.T) {
	app := newTestApp(t)
	ownerToken := app.registerEmployer(t, "+916666666666", "owner@acme.test")
	otherToken := app.registerEmployer(t, "+916666666667", "other@acme.test")
	adminToken := app.signupAdmin(t)

	jobID := app.createJob(t, ownerToken)
	app.acceptJob(t, adminToken, jobID)

	// another employer cannot tell the job apart from a missing one
	status, resp := app.request(t, http.MethodPut,
		fmt.Sprintf("/api/jobs/%d", jobID), otherToken,
		map[string]any{"jobTitle": "Hijacked"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not found", resp.Message)

	status, resp = app.request(t, http.MethodPut,
		fmt.Sprintf("/api/jobs/%d", jobID), ownerToken,
		map[string]any{"jobTitle": "Senior Tester", "salaryOffered": 50000.0})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Senior Tester", resp.Job["jobTitle"])

	status, _ = app.request(t, http.MethodDelete,
		fmt.Sprintf("/api/jobs/%d", jobID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = app.request(t, http.MethodDelete,
		fmt.Sprintf("/api/jobs/%d", jobID), ownerToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, resp = app.request(t, http.MethodGet, "/api/jobs", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, resp.Jobs)
}
