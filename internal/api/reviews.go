package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

// ReviewsClient covers /reviews.
type ReviewsClient struct{ g *Gateway }

func (c *ReviewsClient) ForJob(ctx context.Context, jobID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.g.get(ctx, fmt.Sprintf("/reviews/job/%d", jobID), nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *ReviewsClient) Create(ctx context.Context, in domain.ReviewInput) (*domain.Review, error) {
	var r domain.Review
	if err := c.g.sendJSON(ctx, http.MethodPost, "/reviews/", in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// EmployerReviewsClient covers /employer-reviews.
type EmployerReviewsClient struct{ g *Gateway }

// ForApplication returns the employer's review of an applicant, or nil when
// none has been written.
func (c *EmployerReviewsClient) ForApplication(ctx context.Context, applicationID int64) (*domain.EmployerReview, error) {
	var r *domain.EmployerReview
	if err := c.g.get(ctx, fmt.Sprintf("/employer-reviews/application/%d", applicationID), nil, &r); err != nil {
		return nil, err
	}
	return r, nil
}

func (c *EmployerReviewsClient) Create(ctx context.Context, in domain.EmployerReviewInput) (*domain.EmployerReview, error) {
	var r domain.EmployerReview
	if err := c.g.sendJSON(ctx, http.MethodPost, "/employer-reviews/", in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
