package main

import (
	"fmt"
	"strconv"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

func runJobs(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "jobs")
	var f domain.JobFilter
	var remote, status string
	fs.StringVar(&f.Search, "search", "", "Match title or description")
	fs.StringVar(&f.EmploymentType, "type", "", "Employment type, e.g. internship")
	fs.StringVar(&f.Location, "location", "", "Location substring")
	fs.StringVar(&remote, "remote", "", "true for remote only, false for on-site only")
	fs.StringVar(&status, "status", "", "open or closed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if remote != "" {
		b, err := strconv.ParseBool(remote)
		if err != nil {
			return fmt.Errorf("-remote must be true or false, got %q", remote)
		}
		f.Remote = &b
	}
	f.Status = domain.JobStatus(status)

	jobs, err := cc.Gateway.Jobs().List(cc.Ctx, f)
	if err != nil {
		return err
	}
	return printJobs(cc.Out, jobs)
}

func runJob(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "job")
	id := fs.Int64("id", 0, "Job ID (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("id", *id); err != nil {
		return err
	}

	job, err := cc.Gateway.Jobs().Get(cc.Ctx, *id)
	if err != nil {
		return err
	}
	return printJob(cc.Out, job)
}

func runJobCreate(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "job-create")
	var in domain.JobInput
	spots := fs.Int("spots", -1, "Open positions; omitted when negative")
	fs.StringVar(&in.Title, "title", "", "Title (required)")
	fs.StringVar(&in.Description, "description", "", "Description (required)")
	fs.StringVar(&in.Location, "location", "", "Location")
	fs.StringVar(&in.EmploymentType, "type", "", "Employment type")
	fs.BoolVar(&in.Remote, "remote", false, "Remote position")
	fs.StringVar(&in.StartDate, "start", "", "Start date, YYYY-MM-DD")
	fs.StringVar(&in.EndDate, "end", "", "End date, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *spots >= 0 {
		in.Spots = spots
	}

	if err := cc.Validate.JobInput(in); err != nil {
		return err
	}
	job, err := cc.Gateway.Jobs().Create(cc.Ctx, in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "Published job %d: %s\n", job.ID, job.Title)
	return err
}

func runMyJobs(cc *commandContext, _ []string) error {
	jobs, err := cc.Gateway.Jobs().Mine(cc.Ctx)
	if err != nil {
		return err
	}
	return printJobs(cc.Out, jobs)
}
