package domain

import "time"

// ApplicationStatus represents the lifecycle state of a job application.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "PENDING"
	StatusAccepted  ApplicationStatus = "ACCEPTED"
	StatusRejected  ApplicationStatus = "REJECTED"
	StatusInterview ApplicationStatus = "INTERVIEW"
)

// validTransitions defines the allowed state machine transitions. Every
// transition is company-initiated and only valid from PENDING; INTERVIEW is
// treated as terminal on the client, the server owns anything beyond it.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending: {StatusAccepted, StatusRejected, StatusInterview},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseStatus converts a raw status string into an ApplicationStatus.
func ParseStatus(raw string) (ApplicationStatus, bool) {
	switch ApplicationStatus(raw) {
	case StatusPending, StatusAccepted, StatusRejected, StatusInterview:
		return ApplicationStatus(raw), true
	}
	return "", false
}

// JobRef is the listing summary embedded in an application.
type JobRef struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Location string     `json:"location,omitempty"`
	Company  CompanyRef `json:"company,omitempty"`
}

// Applicant carries the student-side details attached to an application.
// User holds the account record; the remaining fields come from the
// student profile at submission time.
type Applicant struct {
	User           User   `json:"user"`
	Phone          string `json:"phone,omitempty"`
	Course         string `json:"course,omitempty"`
	College        string `json:"college,omitempty"`
	GraduationYear string `json:"graduationYear,omitempty"`
	ResumeURL      string `json:"resumeUrl,omitempty"`
}

// Application is a student's request to be considered for a listing.
// Created by a student, mutated only by the owning company through status
// transitions, never deleted.
type Application struct {
	ID          string            `json:"id"`
	Status      ApplicationStatus `json:"status"`
	Job         JobRef            `json:"job"`
	Student     Applicant         `json:"student"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	Message     string            `json:"message,omitempty"`
	CreatedAt   time.Time         `json:"createdAt,omitempty"`
}
