package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/campusjobs/jobboard/internal/core/domain"
	"github.com/campusjobs/jobboard/internal/core/service"
)

func runApply(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "apply")
	in := service.SubmitInput{}
	var coverFile, resumePath string
	fs.Int64Var(&in.JobID, "job", 0, "Job ID (required)")
	fs.StringVar(&in.CoverLetter, "cover", "", "Cover letter text")
	fs.StringVar(&coverFile, "cover-file", "", "Read the cover letter from a file")
	fs.StringVar(&in.ResumeURL, "resume-url", "", "Link to an already hosted resume")
	fs.StringVar(&resumePath, "resume", "", "Resume file to upload (.pdf, .doc, .docx)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("job", in.JobID); err != nil {
		return err
	}
	if coverFile != "" {
		raw, err := os.ReadFile(coverFile)
		if err != nil {
			return fmt.Errorf("read cover letter: %w", err)
		}
		in.CoverLetter = string(raw)
	}

	if resumePath != "" {
		f, err := os.Open(resumePath)
		if err != nil {
			return fmt.Errorf("open resume: %w", err)
		}
		defer f.Close()
		st, err := f.Stat()
		if err != nil {
			return fmt.Errorf("open resume: %w", err)
		}
		in.Resume = &service.Resume{Name: filepath.Base(resumePath), Size: st.Size(), Body: f}
	}

	app, err := cc.Apps.Submit(cc.Ctx, in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "Application %d submitted for job %d\n", app.ID, app.JobID)
	return err
}

func runApplications(cc *commandContext, _ []string) error {
	apps, err := cc.Apps.ListWithJobs(cc.Ctx)
	if err != nil {
		return err
	}
	return printApplications(cc.Out, apps)
}

func runApplication(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "application")
	id := fs.Int64("id", 0, "Application ID (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("id", *id); err != nil {
		return err
	}

	apps := cc.Gateway.Applications()
	app, err := apps.Get(cc.Ctx, *id)
	if err != nil {
		return err
	}
	return printApplication(cc.Out, app, apps.ResumeURL(app.ResumeURL))
}

func runJobApplications(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "job-applications")
	jobID := fs.Int64("job", 0, "Job ID (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("job", *jobID); err != nil {
		return err
	}

	apps, err := cc.Gateway.Applications().ByJob(cc.Ctx, *jobID)
	if err != nil {
		return err
	}
	return printApplicants(cc.Out, apps)
}

func runSetStatus(cc *commandContext, args []string) error {
	fs := newFlagSet(cc, "set-status")
	id := fs.Int64("id", 0, "Application ID (required)")
	status := fs.String("status", "", "submitted, reviewed, accepted or rejected (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireID("id", *id); err != nil {
		return err
	}
	if *status == "" {
		return errors.New("-status is required")
	}

	app, err := cc.Apps.Review(cc.Ctx, *id, domain.ApplicationStatus(*status))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "Application %d is now %s\n", app.ID, app.Status.Label())
	return err
}
