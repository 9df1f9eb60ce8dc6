package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/campusjobs/jobboard/internal/core/domain"
	"github.com/campusjobs/jobboard/internal/core/ports"
)

const defaultJobLookups = 4

// Resume is an attached file awaiting upload.
type Resume struct {
	Name string
	Size int64
	Body io.Reader
}

// SubmitInput is the apply form as entered by a student.
type SubmitInput struct {
	JobID       int64
	CoverLetter string
	// ResumeURL is used as-is when no Resume file is attached.
	ResumeURL string
	Resume    *Resume
}

// ApplicationService composes application calls the way the student and
// employer screens use them.
type ApplicationService struct {
	apps      ports.ApplicationsAPI
	jobs      ports.JobsAPI
	validator *Validator
	lookups   int
	log       zerolog.Logger
}

// NewApplicationService wires the service. lookups bounds concurrent job
// detail fetches in ListWithJobs; <= 0 selects the default.
func NewApplicationService(apps ports.ApplicationsAPI, jobs ports.JobsAPI, v *Validator, lookups int, log zerolog.Logger) *ApplicationService {
	if lookups <= 0 {
		lookups = defaultJobLookups
	}
	return &ApplicationService{apps: apps, jobs: jobs, validator: v, lookups: lookups, log: log}
}

// Submit validates the form, uploads the resume when one is attached, and
// creates the application. An upload failure aborts the submission.
func (s *ApplicationService) Submit(ctx context.Context, in SubmitInput) (*domain.Application, error) {
	payload := domain.ApplicationInput{JobID: in.JobID, CoverLetter: in.CoverLetter, ResumeURL: in.ResumeURL}
	if err := s.validator.Application(payload); err != nil {
		return nil, err
	}

	if in.Resume != nil {
		if err := s.validator.Resume(ResumeFile{Name: in.Resume.Name, Size: in.Resume.Size}); err != nil {
			return nil, err
		}
		uploaded, err := s.apps.UploadResume(ctx, in.Resume.Name, in.Resume.Body)
		if err != nil {
			return nil, err
		}
		payload.ResumeURL = uploaded.FileURL
	}

	app, err := s.apps.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("application_id", app.ID).Int64("job_id", app.JobID).Msg("application submitted")
	return app, nil
}

// ListWithJobs returns the caller's applications, each paired with its job.
// Job lookups run concurrently; a failed lookup leaves Job nil rather than
// failing the listing.
func (s *ApplicationService) ListWithJobs(ctx context.Context) ([]domain.ApplicationWithJob, error) {
	apps, err := s.apps.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ApplicationWithJob, len(apps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.lookups)
	for i, app := range apps {
		out[i].Application = app
		g.Go(func() error {
			job, err := s.jobs.Get(gctx, app.JobID)
			if err != nil {
				s.log.Warn().Err(err).Int64("job_id", app.JobID).Msg("job lookup failed")
				return nil
			}
			out[i].Job = job
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return out, nil
}

// Review moves an application to a new status after checking it is one the
// backend accepts.
func (s *ApplicationService) Review(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, &ValidationError{Fields: map[string]string{
			"status": "status must be one of: submitted reviewed accepted rejected",
		}}
	}
	return s.apps.UpdateStatus(ctx, id, status)
}
