package domain

import (
	"net/url"
	"strconv"
)

type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
)

// Job is an internship or job posting.
type Job struct {
	ID             int64     `json:"id"`
	EmployerID     int64     `json:"employer_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location,omitempty"`
	EmploymentType string    `json:"employment_type,omitempty"`
	Remote         bool      `json:"remote"`
	StartDate      string    `json:"start_date,omitempty"`
	EndDate        string    `json:"end_date,omitempty"`
	Spots          *int      `json:"spots,omitempty"`
	Status         JobStatus `json:"status"`
}

// JobInput is the create-posting payload.
type JobInput struct {
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description" validate:"required"`
	Location       string `json:"location,omitempty"`
	EmploymentType string `json:"employment_type,omitempty"`
	Remote         bool   `json:"remote"`
	StartDate      string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate        string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Spots          *int   `json:"spots,omitempty" validate:"omitempty,gte=0"`
}

// JobFilter narrows the public listing. Zero values are not sent; Remote is
// sent whenever it is non-nil, including false.
type JobFilter struct {
	Search         string
	EmploymentType string
	Location       string
	Remote         *bool
	Status         JobStatus
}

// Query encodes the filter as URL parameters.
func (f JobFilter) Query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.EmploymentType != "" {
		q.Set("employment_type", f.EmploymentType)
	}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.Remote != nil {
		q.Set("remote", strconv.FormatBool(*f.Remote))
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	return q
}
