package domain

import "time"

type ApplicationStatus string

const (
	ApplicationSubmitted ApplicationStatus = "submitted"
	ApplicationReviewed  ApplicationStatus = "reviewed"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

var applicationLabels = map[ApplicationStatus]string{
	ApplicationSubmitted: "Submitted",
	ApplicationReviewed:  "Under review",
	ApplicationAccepted:  "Accepted",
	ApplicationRejected:  "Rejected",
}

// Valid reports whether s is a status the backend accepts.
func (s ApplicationStatus) Valid() bool {
	_, ok := applicationLabels[s]
	return ok
}

// Label is the human-readable status; unknown statuses render as-is.
func (s ApplicationStatus) Label() string {
	if l, ok := applicationLabels[s]; ok {
		return l
	}
	return string(s)
}

// Application is a student's application to a job.
type Application struct {
	ID          int64             `json:"id"`
	JobID       int64             `json:"job_id"`
	UserID      int64             `json:"user_id"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"cover_letter,omitempty"`
	ResumeURL   string            `json:"resume_url,omitempty"`
	SubmittedAt *time.Time        `json:"submitted_at,omitempty"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty"`
}

// ApplicationInput is the create-application payload.
type ApplicationInput struct {
	JobID       int64  `json:"job_id"`
	CoverLetter string `json:"cover_letter"`
	ResumeURL   string `json:"resume_url,omitempty"`
}

// ApplicationWithJob pairs an application with the posting it targets.
// Job is nil when the posting could not be loaded.
type ApplicationWithJob struct {
	Application Application
	Job         *Job
}

// ResumeUpload is the response of the resume upload endpoint.
type ResumeUpload struct {
	FileURL string `json:"file_url"`
}
