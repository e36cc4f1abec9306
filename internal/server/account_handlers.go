package server

import (
	"net/http"

	"github.com/avikm/job-board/internal/entities"
	"github.com/avikm/job-board/internal/services"
	"github.com/gin-gonic/gin"
)

type adminSignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type employerRegisterRequest struct {
	CompanyName string `json:"companyName" binding:"required"`
	OwnerName   string `json:"ownerName" binding:"required"`
	Sector      string `json:"sector"`
	Address     string `json:"address"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

type employerLoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func adminSummary(admin *entities.Admin) gin.H {
	return gin.H{"id": admin.ID, "name": admin.Name, "email": admin.Email, "role": admin.Role}
}

func employerSummary(employer *entities.Employer) gin.H {
	return gin.H{
		"id":          employer.ID,
		"companyName": employer.CompanyName,
		"ownerName":   employer.OwnerName,
		"phone":       employer.Phone,
		"email":       employer.Email,
	}
}

func (s *Server) adminSignup(c *gin.Context) {
	var req adminSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing fields")
		return
	}

	admin, token, err := s.accounts.SignupAdmin(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, gin.H{"token": token, "admin": adminSummary(admin)})
}

func (s *Server) adminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing fields")
		return
	}

	admin, token, err := s.accounts.LoginAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, gin.H{"token": token, "admin": adminSummary(admin)})
}

func (s *Server) employerRegister(c *gin.Context) {
	var req employerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	employer, token, err := s.accounts.RegisterEmployer(c.Request.Context(), services.EmployerRegistration{
		CompanyName: req.CompanyName,
		OwnerName:   req.OwnerName,
		Sector:      req.Sector,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, gin.H{"token": token, "employer": employerSummary(employer)})
}

func (s *Server) employerLogin(c *gin.Context) {
	var req employerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Enter phone and password")
		return
	}

	employer, token, err := s.accounts.LoginEmployer(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		failFromError(c, err)
		return
	}

	ok(c, gin.H{"token": token, "employer": employerSummary(employer)})
}

func (s *Server) employerProfile(c *gin.Context) {
	employer, err := s.accounts.GetEmployer(c.Request.Context(), employerID(c))
	if err != nil {
		failFromError(c, err)
		return
	}

	// PasswordHash is excluded by its json tag
	ok(c, gin.H{"employer": employer})
}
