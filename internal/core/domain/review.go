package domain

import "time"

// Review is a student's review of a job posting.
type Review struct {
	ID         int64      `json:"id"`
	JobID      int64      `json:"job_id"`
	EmployerID int64      `json:"employer_id"`
	UserID     int64      `json:"user_id"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

type ReviewInput struct {
	JobID   int64  `json:"job_id"`
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

// EmployerReview is an employer's review of an applicant.
type EmployerReview struct {
	ID            int64      `json:"id"`
	ApplicationID int64      `json:"application_id"`
	JobID         int64      `json:"job_id"`
	StudentID     int64      `json:"student_id"`
	EmployerID    int64      `json:"employer_id"`
	Rating        int        `json:"rating"`
	Comment       string     `json:"comment,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

type EmployerReviewInput struct {
	ApplicationID int64  `json:"application_id"`
	Rating        int    `json:"rating" validate:"min=1,max=5"`
	Comment       string `json:"comment,omitempty"`
}
