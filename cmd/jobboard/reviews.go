package main

import (
	"fmt"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

func runReviews(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "reviews")
	jobID := fs.Int64("job", 0, "Job ID (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("job", *jobID); err != nil {
		return err
	}

	reviews, err := cc.Gateway.Reviews().ForJob(cc.Ctx, *jobID)
	if err != nil {
		return err
	}
	return printReviews(cc.Out, reviews)
}

func runReview(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "review")
	var in domain.ReviewInput
	fs.Int64Var(&in.JobID, "job", 0, "Job ID (required)")
	fs.IntVar(&in.Rating, "rating", 0, "1 to 5 (required)")
	fs.StringVar(&in.Comment, "comment", "", "Optional comment")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("job", in.JobID); err != nil {
		return err
	}
	if err := cc.Validate.Review(in); err != nil {
		return err
	}

	review, err := cc.Gateway.Reviews().Create(cc.Ctx, in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "Review %d saved: %s\n", review.ID, stars(review.Rating))
	return err
}

func runEmployerReview(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "employer-review")
	appID := fs.Int64("application", 0, "Application ID (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("application", *appID); err != nil {
		return err
	}

	review, err := cc.Gateway.EmployerReviews().ForApplication(cc.Ctx, *appID)
	if err != nil {
		return err
	}
	if review == nil {
		_, err := fmt.Fprintln(cc.Out, "Not reviewed yet")
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "%s %s\n", stars(review.Rating), review.Comment)
	return err
}

func runEmployerReviewCreate(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "employer-review-create")
	var in domain.EmployerReviewInput
	fs.Int64Var(&in.ApplicationID, "application", 0, "Application ID (required)")
	fs.IntVar(&in.Rating, "rating", 0, "1 to 5 (required)")
	fs.StringVar(&in.Comment, "comment", "", "Optional comment")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("application", in.ApplicationID); err != nil {
		return err
	}
	if err := cc.Validate.EmployerReview(in); err != nil {
		return err
	}

	review, err := cc.Gateway.EmployerReviews().Create(cc.Ctx, in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "Review %d saved: %s\n", review.ID, stars(review.Rating))
	return err
}
