package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/campusjobs/jobboard/internal/core/domain"
	"github.com/campusjobs/jobboard/internal/core/ports"
)

var _ ports.JobsAPI = (*JobsClient)(nil)

// JobsClient covers /jobs.
type JobsClient struct{ g *Gateway }

// List returns the public listing narrowed by filter.
func (c *JobsClient) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.g.get(ctx, "/jobs/", filter.Query(), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *JobsClient) Get(ctx context.Context, id int64) (*domain.Job, error) {
	var job domain.Job
	if err := c.g.get(ctx, fmt.Sprintf("/jobs/%d", id), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *JobsClient) Create(ctx context.Context, in domain.JobInput) (*domain.Job, error) {
	var job domain.Job
	if err := c.g.sendJSON(ctx, http.MethodPost, "/jobs/", in, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Mine lists the postings owned by the calling employer.
func (c *JobsClient) Mine(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := c.g.get(ctx, "/jobs/my", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
