// Package fakeapi is an in-memory stand-in for the remote recruitment API,
// used as an httptest backend. It implements the same endpoints and failure
// envelope the real service exposes, plus call counters for asserting
// request ordering and counts.
package fakeapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/campushire/recruit-portal/internal/core/domain"
)

const tokenTTL = time.Hour

type account struct {
	user     domain.User
	password string
}

// Server holds the fixture state behind an echo handler.
type Server struct {
	e      *echo.Echo
	secret string

	mu           sync.Mutex
	accounts     map[string]*account
	jobs         []domain.JobListing
	applications []domain.Application
	nextID       int

	uploadCalls     int
	applyCalls      int
	listCalls       int
	transitionCalls int
	// calls records the order of upload/apply/list/transition requests.
	calls []string
}

func New() *Server {
	s := &Server{
		e:        echo.New(),
		secret:   "fakeapi-secret",
		accounts: make(map[string]*account),
	}
	s.e.HideBanner = true
	s.routes()
	return s
}

// Handler returns the root handler for httptest.NewServer.
func (s *Server) Handler() http.Handler { return s.e }

// SeedUser registers an account without going through /auth/register.
func (s *Server) SeedUser(user domain.User, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == "" {
		user.ID = s.newID("user")
	}
	s.accounts[user.Email] = &account{user: user, password: password}
}

func (s *Server) SeedJob(job domain.JobListing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job.ID == "" {
		job.ID = s.newID("job")
	}
	s.jobs = append(s.jobs, job)
}

func (s *Server) SeedApplication(app domain.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if app.ID == "" {
		app.ID = s.newID("app")
	}
	if app.Status == "" {
		app.Status = domain.StatusPending
	}
	s.applications = append(s.applications, app)
}

// TokenFor mints a valid bearer token for a seeded account.
func (s *Server) TokenFor(email string) string {
	s.mu.Lock()
	acct, ok := s.accounts[email]
	s.mu.Unlock()
	if !ok {
		return ""
	}
	return s.mint(acct.user)
}

// Applications returns a snapshot of the stored applications.
func (s *Server) Applications() []domain.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Application, len(s.applications))
	copy(out, s.applications)
	return out
}

// Calls returns the ordered log of workflow-relevant requests.
func (s *Server) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

func (s *Server) UploadCalls() int     { s.mu.Lock(); defer s.mu.Unlock(); return s.uploadCalls }
func (s *Server) ApplyCalls() int      { s.mu.Lock(); defer s.mu.Unlock(); return s.applyCalls }
func (s *Server) ListCalls() int       { s.mu.Lock(); defer s.mu.Unlock(); return s.listCalls }
func (s *Server) TransitionCalls() int { s.mu.Lock(); defer s.mu.Unlock(); return s.transitionCalls }

func (s *Server) routes() {
	s.e.POST("/auth/login", s.login)
	s.e.POST("/auth/register", s.register)
	s.e.GET("/auth/me", s.me, s.auth)
	s.e.PUT("/auth/update", s.updateProfile, s.auth)

	s.e.GET("/jobs", s.listJobs)
	s.e.POST("/jobs", s.createJob, s.auth)

	s.e.POST("/upload/resume", s.uploadResume, s.auth)
	s.e.POST("/applications/jobs/:id/apply", s.apply, s.auth)
	s.e.GET("/applications/company", s.listCompany, s.auth)
	s.e.PATCH("/applications/:id", s.transition, s.auth)

	s.e.GET("/admin/stats", s.stats, s.auth)
	s.e.GET("/admin/users", s.recentUsers, s.auth)
	s.e.GET("/admin/jobs", s.recentJobs, s.auth)
	s.e.PATCH("/admin/users/:id", s.moderateUser, s.auth)
	s.e.PATCH("/admin/jobs/:id", s.moderateJob, s.auth)
}

func (s *Server) auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "missing token"})
		}
		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(parts[1], claims, func(*jwt.Token) (any, error) {
			return []byte(s.secret), nil
		})
		if err != nil || !tkn.Valid {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid token"})
		}
		c.Set("email", claims["email"])
		c.Set("role", claims["role"])
		return next(c)
	}
}

func (s *Server) login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
	}
	s.mu.Lock()
	acct, ok := s.accounts[req.Email]
	s.mu.Unlock()
	if !ok || acct.password != req.Password {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": s.mint(acct.user), "user": acct.user})
}

func (s *Server) register(c echo.Context) error {
	var req struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		Role        string `json:"role"`
		CompanyName string `json:"companyName"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[req.Email]; exists {
		return c.JSON(http.StatusConflict, echo.Map{"message": "email already registered"})
	}
	user := domain.User{
		ID:          s.newID("user"),
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		CompanyName: req.CompanyName,
	}
	s.accounts[req.Email] = &account{user: user, password: req.Password}
	return c.JSON(http.StatusCreated, echo.Map{"user": user})
}

func (s *Server) me(c echo.Context) error {
	email, _ := c.Get("email").(string)
	s.mu.Lock()
	acct, ok := s.accounts[email]
	s.mu.Unlock()
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unknown account"})
	}
	return c.JSON(http.StatusOK, acct.user)
}

func (s *Server) updateProfile(c echo.Context) error {
	var req struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
	}
	email, _ := c.Get("email").(string)
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[email]
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unknown account"})
	}
	if req.NewPassword != "" {
		if acct.password != req.CurrentPassword {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "current password does not match"})
		}
		acct.password = req.NewPassword
	}
	if req.Name != "" {
		acct.user.Name = req.Name
	}
	if req.Email != "" && req.Email != email {
		delete(s.accounts, email)
		acct.user.Email = req.Email
		s.accounts[req.Email] = acct
	}
	return c.JSON(http.StatusOK, echo.Map{"user": acct.user})
}

func (s *Server) listJobs(c echo.Context) error {
	q := strings.ToLower(c.QueryParam("q"))
	location := strings.ToLower(c.QueryParam("location"))

	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []domain.JobListing{}
	for _, job := range s.jobs {
		if q != "" && !strings.Contains(strings.ToLower(job.Title), q) &&
			!strings.Contains(strings.ToLower(job.Description), q) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(job.Location), location) {
			continue
		}
		matched = append(matched, job)
	}
	return c.JSON(http.StatusOK, matched)
}

func (s *Server) createJob(c echo.Context) error {
	role, _ := c.Get("role").(string)
	if role != domain.RoleCompany {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "only companies can post jobs"})
	}
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Location    string `json:"location"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
	}
	email, _ := c.Get("email").(string)
	s.mu.Lock()
	defer s.mu.Unlock()
	acct := s.accounts[email]
	job := domain.JobListing{
		ID:          s.newID("job"),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Company:     domain.CompanyRef{ID: acct.user.ID, Name: acct.user.CompanyName},
	}
	s.jobs = append(s.jobs, job)
	return c.JSON(http.StatusCreated, job)
}

func (s *Server) uploadResume(c echo.Context) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "resume file is required"})
	}
	s.mu.Lock()
	s.uploadCalls++
	s.calls = append(s.calls, "upload")
	n := s.uploadCalls
	s.mu.Unlock()
	url := fmt.Sprintf("https://files.fakeapi.test/resumes/%d-%s", n, file.Filename)
	return c.JSON(http.StatusOK, echo.Map{"success": true, "url": url})
}

func (s *Server) apply(c echo.Context) error {
	var req struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		ResumeURL string `json:"resumeUrl"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
	}
	jobID := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.applyCalls++
	s.calls = append(s.calls, "apply")

	var job *domain.JobListing
	for i := range s.jobs {
		if s.jobs[i].ID == jobID {
			job = &s.jobs[i]
			break
		}
	}
	if job == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "job not found"})
	}
	app := domain.Application{
		ID:     s.newID("app"),
		Status: domain.StatusPending,
		Job:    domain.JobRef{ID: job.ID, Title: job.Title, Location: job.Location, Company: job.Company},
		Student: domain.Applicant{
			User:      domain.User{Name: req.Name, Email: req.Email},
			Phone:     req.Phone,
			ResumeURL: req.ResumeURL,
		},
		CreatedAt: time.Now().UTC(),
	}
	s.applications = append(s.applications, app)
	return c.JSON(http.StatusCreated, app)
}

func (s *Server) listCompany(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	s.calls = append(s.calls, "list")
	out := make([]domain.Application, len(s.applications))
	copy(out, s.applications)
	return c.JSON(http.StatusOK, out)
}

func (s *Server) transition(c echo.Context) error {
	var req struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
	}
	status, ok := domain.ParseStatus(req.Status)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown status"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transitionCalls++
	s.calls = append(s.calls, "transition")
	for i := range s.applications {
		if s.applications[i].ID != c.Param("id") {
			continue
		}
		if !s.applications[i].Status.CanTransitionTo(status) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "invalid status transition"})
		}
		s.applications[i].Status = status
		s.applications[i].Message = req.Message
		return c.JSON(http.StatusOK, s.applications[i])
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": "application not found"})
}

func (s *Server) stats(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	students, companies := 0, 0
	for _, acct := range s.accounts {
		switch acct.user.Role {
		case domain.RoleStudent:
			students++
		case domain.RoleCompany:
			companies++
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"users":        len(s.accounts),
		"students":     students,
		"companies":    companies,
		"jobs":         len(s.jobs),
		"applications": len(s.applications),
	})
}

func (s *Server) recentUsers(c echo.Context) error {
	limit := intParam(c.QueryParam("limit"), 5)
	s.mu.Lock()
	defer s.mu.Unlock()
	users := []domain.User{}
	for _, acct := range s.accounts {
		users = append(users, acct.user)
		if len(users) == limit {
			break
		}
	}
	return c.JSON(http.StatusOK, users)
}

func (s *Server) recentJobs(c echo.Context) error {
	limit := intParam(c.QueryParam("limit"), 5)
	s.mu.Lock()
	defer s.mu.Unlock()
	jobs := s.jobs
	if len(jobs) > limit {
		jobs = jobs[len(jobs)-limit:]
	}
	out := make([]domain.JobListing, len(jobs))
	copy(out, jobs)
	return c.JSON(http.StatusOK, out)
}

func (s *Server) moderateUser(c echo.Context) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acct := range s.accounts {
		if acct.user.ID == c.Param("id") {
			acct.user.Status = req.Status
			return c.JSON(http.StatusOK, acct.user)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
}

func (s *Server) moderateJob(c echo.Context) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.jobs {
		if s.jobs[i].ID == c.Param("id") {
			s.jobs[i].Status = req.Status
			return c.JSON(http.StatusOK, s.jobs[i])
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": "job not found"})
}

func (s *Server) mint(user domain.User) string {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	return signed
}

func (s *Server) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

func intParam(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
