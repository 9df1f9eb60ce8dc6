package ports

import (
	"context"
	"io"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

// JobsAPI covers job postings.
type JobsAPI interface {
	List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error)
	Get(ctx context.Context, id int64) (*domain.Job, error)
	Create(ctx context.Context, in domain.JobInput) (*domain.Job, error)
	Mine(ctx context.Context) ([]domain.Job, error)
}

// ApplicationsAPI covers applications and resume uploads.
type ApplicationsAPI interface {
	List(ctx context.Context) ([]domain.Application, error)
	Get(ctx context.Context, id int64) (*domain.Application, error)
	Create(ctx context.Context, in domain.ApplicationInput) (*domain.Application, error)
	ByJob(ctx context.Context, jobID int64) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error)
	UploadResume(ctx context.Context, fileName string, r io.Reader) (*domain.ResumeUpload, error)
}

// DepartmentsAPI covers the employer's own department.
type DepartmentsAPI interface {
	// Mine returns nil with a nil error when the employer has no department yet.
	Mine(ctx context.Context) (*domain.Department, error)
	Create(ctx context.Context, in domain.DepartmentInput) (*domain.Department, error)
	UpdateMine(ctx context.Context, in domain.DepartmentInput) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}
