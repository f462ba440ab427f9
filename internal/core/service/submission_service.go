package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/core/ports"
)

// MaxResumeSize is the attachment limit enforced at selection time, before
// any submission attempt.
const MaxResumeSize = 10 << 20 // 10 MiB

type resumeFile struct {
	name    string
	size    int64
	content []byte
}

type applicantForm struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Phone string `validate:"required"`
}

// SubmissionService files one application against one job listing: collect
// applicant data and a resume, upload the file, then submit referencing the
// stored URL. The two phases are strictly ordered and non-retryable as a
// unit.
type SubmissionService struct {
	uploads  ports.UploadAPI
	apps     ports.ApplicationAPI
	validate *validator.Validate
	log      zerolog.Logger

	mu       sync.Mutex
	job      *domain.JobListing
	form     applicantForm
	resume   *resumeFile
	inFlight bool
}

func NewSubmissionService(uploads ports.UploadAPI, apps ports.ApplicationAPI, log zerolog.Logger) *SubmissionService {
	return &SubmissionService{
		uploads:  uploads,
		apps:     apps,
		validate: validator.New(),
		log:      log,
	}
}

// SelectJob opens the submission surface for a listing and pre-fills the
// applicant fields from the current identity, when available.
func (s *SubmissionService) SelectJob(job domain.JobListing, identity *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.job = &job
	s.form = applicantForm{}
	s.resume = nil
	if identity != nil {
		s.form.Name = identity.Name
		s.form.Email = identity.Email
		s.form.Phone = identity.Phone
	}
}

// SetApplicant overwrites the applicant fields.
func (s *SubmissionService) SetApplicant(name, email, phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = applicantForm{Name: name, Email: email, Phone: phone}
}

// AttachResume stages the resume file. An oversized file is rejected
// immediately with a blocking notice and the previous selection, if any, is
// left unchanged.
func (s *SubmissionService) AttachResume(name string, size int64, content io.Reader) error {
	if size > MaxResumeSize {
		return domain.ErrResumeTooLarge
	}
	staged, err := io.ReadAll(io.LimitReader(content, MaxResumeSize+1))
	if err != nil {
		return err
	}
	if int64(len(staged)) > MaxResumeSize {
		return domain.ErrResumeTooLarge
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resume = &resumeFile{name: name, size: int64(len(staged)), content: staged}
	return nil
}

// Submit runs the two-phase submission: upload first, then apply with the
// durable URL. Phase-1 failure aborts everything; phase-2 failure leaves the
// uploaded file orphaned (no compensating delete) and is reported
// distinctly. On success the form state is cleared and the surface closes.
func (s *SubmissionService) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return domain.ErrSubmitInFlight
	}
	if s.job == nil {
		s.mu.Unlock()
		return domain.ErrNoJobSelected
	}
	if s.resume == nil {
		s.mu.Unlock()
		return domain.ErrResumeRequired
	}
	job := *s.job
	form := s.form
	resume := *s.resume
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if err := s.validate.Struct(form); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			return &domain.ValidationError{Field: ve[0].Field(), Reason: validationReason(ve[0])}
		}
		return err
	}

	upload, err := s.uploads.UploadResume(ctx, resume.name, resume.size, bytes.NewReader(resume.content))
	if err != nil {
		s.log.Error().Err(err).Str("job_id", job.ID).Msg("resume upload failed")
		return &domain.SubmitError{Phase: "upload", Err: err}
	}
	if !upload.Success || upload.URL == "" {
		msg := upload.Message
		if msg == "" {
			msg = domain.FallbackMessage
		}
		return &domain.SubmitError{Phase: "upload", Err: &domain.RequestError{Message: msg}}
	}

	_, err = s.apps.Apply(ctx, job.ID, ports.ApplyInput{
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		ResumeURL: upload.URL,
	})
	if err != nil {
		// The uploaded file stays orphaned; the attachment store owns cleanup.
		s.log.Error().Err(err).Str("job_id", job.ID).Str("resume_url", upload.URL).Msg("application submit failed after upload")
		if errors.Is(err, domain.ErrAuthRejected) {
			return err
		}
		return &domain.SubmitError{Phase: "apply", Err: err}
	}

	s.mu.Lock()
	s.job = nil
	s.form = applicantForm{}
	s.resume = nil
	s.mu.Unlock()

	s.log.Info().Str("job_id", job.ID).Msg("application submitted")
	return nil
}

// InFlight reports whether a submission is currently outstanding.
func (s *SubmissionService) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Open reports whether the submission surface has a selected job.
func (s *SubmissionService) Open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.job != nil
}

func validationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	default:
		return "failed validation (" + fe.Tag() + ")"
	}
}
