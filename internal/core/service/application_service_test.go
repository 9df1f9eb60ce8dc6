package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubApplicationsAPI struct {
	mu        sync.Mutex
	apps      []domain.Application
	created   []domain.ApplicationInput
	uploaded  []string
	uploadErr error
	statusSet map[int64]domain.ApplicationStatus
}

func (s *stubApplicationsAPI) List(context.Context) ([]domain.Application, error) { return s.apps, nil }

func (s *stubApplicationsAPI) Get(_ context.Context, id int64) (*domain.Application, error) {
	for _, a := range s.apps {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, errors.New("Application not found")
}

func (s *stubApplicationsAPI) Create(_ context.Context, in domain.ApplicationInput) (*domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, in)
	return &domain.Application{ID: int64(len(s.created)), JobID: in.JobID, ResumeURL: in.ResumeURL, Status: domain.ApplicationSubmitted}, nil
}

func (s *stubApplicationsAPI) ByJob(context.Context, int64) ([]domain.Application, error) {
	return nil, nil
}

func (s *stubApplicationsAPI) UpdateStatus(_ context.Context, id int64, st domain.ApplicationStatus) (*domain.Application, error) {
	if s.statusSet == nil {
		s.statusSet = map[int64]domain.ApplicationStatus{}
	}
	s.statusSet[id] = st
	return &domain.Application{ID: id, Status: st}, nil
}

func (s *stubApplicationsAPI) UploadResume(_ context.Context, name string, r io.Reader) (*domain.ResumeUpload, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	body, _ := io.ReadAll(r)
	s.uploaded = append(s.uploaded, name+":"+string(body))
	return &domain.ResumeUpload{FileURL: "/uploads/resumes/" + name}, nil
}

type stubJobsAPI struct {
	jobs     map[int64]domain.Job
	inflight atomic.Int32
	peak     atomic.Int32
	gate     chan struct{}
}

func (s *stubJobsAPI) List(context.Context, domain.JobFilter) ([]domain.Job, error) { return nil, nil }
func (s *stubJobsAPI) Create(context.Context, domain.JobInput) (*domain.Job, error) { return nil, nil }
func (s *stubJobsAPI) Mine(context.Context) ([]domain.Job, error)                   { return nil, nil }

func (s *stubJobsAPI) Get(_ context.Context, id int64) (*domain.Job, error) {
	n := s.inflight.Add(1)
	defer s.inflight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if s.gate != nil {
		<-s.gate
	}
	j, ok := s.jobs[id]
	if !ok {
		return nil, errors.New("Job not found")
	}
	return &j, nil
}

var longLetter = strings.Repeat("I would love to join the team. ", 3)

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

func TestApplicationService_Submit_WithResume(t *testing.T) {
	apps := &stubApplicationsAPI{}
	svc := NewApplicationService(apps, &stubJobsAPI{}, NewValidator(), 0, zerolog.Nop())

	app, err := svc.Submit(context.Background(), SubmitInput{
		JobID:       3,
		CoverLetter: longLetter,
		ResumeURL:   "https://ignored.example",
		Resume:      &Resume{Name: "cv.pdf", Size: 4, Body: strings.NewReader("%PDF")},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"cv.pdf:%PDF"}, apps.uploaded)
	require.Len(t, apps.created, 1)
	assert.Equal(t, "/uploads/resumes/cv.pdf", apps.created[0].ResumeURL)
	assert.Equal(t, int64(3), app.JobID)
}

func TestApplicationService_Submit_WithoutResumeKeepsURL(t *testing.T) {
	apps := &stubApplicationsAPI{}
	svc := NewApplicationService(apps, &stubJobsAPI{}, NewValidator(), 0, zerolog.Nop())

	_, err := svc.Submit(context.Background(), SubmitInput{JobID: 3, CoverLetter: longLetter, ResumeURL: "https://cv.example/ann"})
	require.NoError(t, err)

	assert.Empty(t, apps.uploaded)
	assert.Equal(t, "https://cv.example/ann", apps.created[0].ResumeURL)
}

func TestApplicationService_Submit_ValidationNeverReachesAPI(t *testing.T) {
	apps := &stubApplicationsAPI{}
	svc := NewApplicationService(apps, &stubJobsAPI{}, NewValidator(), 0, zerolog.Nop())

	_, err := svc.Submit(context.Background(), SubmitInput{JobID: 3, CoverLetter: "too short"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, apps.created)

	_, err = svc.Submit(context.Background(), SubmitInput{
		JobID: 3, CoverLetter: longLetter,
		Resume: &Resume{Name: "cv.exe", Size: 10, Body: strings.NewReader("MZ")},
	})
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, apps.uploaded)
	assert.Empty(t, apps.created)
}

func TestApplicationService_Submit_UploadFailureAborts(t *testing.T) {
	apps := &stubApplicationsAPI{uploadErr: errors.New("Error sending request")}
	svc := NewApplicationService(apps, &stubJobsAPI{}, NewValidator(), 0, zerolog.Nop())

	_, err := svc.Submit(context.Background(), SubmitInput{
		JobID: 3, CoverLetter: longLetter,
		Resume: &Resume{Name: "cv.pdf", Size: 4, Body: strings.NewReader("%PDF")},
	})
	require.EqualError(t, err, "Error sending request")
	assert.Empty(t, apps.created)
}

// ---------------------------------------------------------------------------
// ListWithJobs
// ---------------------------------------------------------------------------

func TestApplicationService_ListWithJobs(t *testing.T) {
	apps := &stubApplicationsAPI{apps: []domain.Application{
		{ID: 1, JobID: 10}, {ID: 2, JobID: 20}, {ID: 3, JobID: 99},
	}}
	jobs := &stubJobsAPI{jobs: map[int64]domain.Job{
		10: {ID: 10, Title: "Backend intern"},
		20: {ID: 20, Title: "Data intern"},
	}}
	svc := NewApplicationService(apps, jobs, NewValidator(), 2, zerolog.Nop())

	out, err := svc.ListWithJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, int64(1), out[0].Application.ID)
	assert.Equal(t, "Backend intern", out[0].Job.Title)
	assert.Equal(t, "Data intern", out[1].Job.Title)
	assert.Nil(t, out[2].Job, "missing job must not fail the listing")
}

func TestApplicationService_ListWithJobs_BoundedConcurrency(t *testing.T) {
	var list []domain.Application
	jobMap := map[int64]domain.Job{}
	for i := int64(1); i <= 8; i++ {
		list = append(list, domain.Application{ID: i, JobID: i})
		jobMap[i] = domain.Job{ID: i}
	}
	gate := make(chan struct{})
	jobs := &stubJobsAPI{jobs: jobMap, gate: gate}
	svc := NewApplicationService(&stubApplicationsAPI{apps: list}, jobs, NewValidator(), 3, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = svc.ListWithJobs(context.Background())
	}()
	for range list {
		gate <- struct{}{}
	}
	<-done

	assert.LessOrEqual(t, jobs.peak.Load(), int32(3))
}

func TestApplicationService_Review(t *testing.T) {
	apps := &stubApplicationsAPI{}
	svc := NewApplicationService(apps, &stubJobsAPI{}, NewValidator(), 0, zerolog.Nop())

	app, err := svc.Review(context.Background(), 5, domain.ApplicationAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationAccepted, app.Status)

	_, err = svc.Review(context.Background(), 5, "withdrawn")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, apps.statusSet, 1)
}
