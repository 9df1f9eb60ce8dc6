package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

func newTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printJobs(w io.Writer, jobs []domain.Job) error {
	if len(jobs) == 0 {
		_, err := fmt.Fprintln(w, "No postings found")
		return err
	}
	tw := newTable(w, "ID", "TITLE", "LOCATION", "TYPE", "REMOTE", "STATUS")
	for _, j := range jobs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			j.ID, j.Title, orDash(j.Location), orDash(j.EmploymentType), yesNo(j.Remote), j.Status)
	}
	return tw.Flush()
}

func printJob(w io.Writer, j *domain.Job) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", j.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", j.Title)
	fmt.Fprintf(tw, "Status:\t%s\n", j.Status)
	fmt.Fprintf(tw, "Location:\t%s\n", orDash(j.Location))
	fmt.Fprintf(tw, "Type:\t%s\n", orDash(j.EmploymentType))
	fmt.Fprintf(tw, "Remote:\t%s\n", yesNo(j.Remote))
	if j.StartDate != "" || j.EndDate != "" {
		fmt.Fprintf(tw, "Dates:\t%s .. %s\n", orDash(j.StartDate), orDash(j.EndDate))
	}
	if j.Spots != nil {
		fmt.Fprintf(tw, "Spots:\t%d\n", *j.Spots)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%s\n", j.Description)
	return err
}

func printApplications(w io.Writer, apps []domain.ApplicationWithJob) error {
	if len(apps) == 0 {
		_, err := fmt.Fprintln(w, "No applications yet")
		return err
	}
	tw := newTable(w, "ID", "JOB", "TITLE", "STATUS")
	for _, a := range apps {
		title := "(unavailable)"
		if a.Job != nil {
			title = a.Job.Title
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", a.Application.ID, a.Application.JobID, title, a.Application.Status.Label())
	}
	return tw.Flush()
}

func printApplicants(w io.Writer, apps []domain.Application) error {
	if len(apps) == 0 {
		_, err := fmt.Fprintln(w, "No applications yet")
		return err
	}
	tw := newTable(w, "ID", "STUDENT", "STATUS", "RESUME")
	for _, a := range apps {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", a.ID, a.UserID, a.Status.Label(), orDash(a.ResumeURL))
	}
	return tw.Flush()
}

// printApplication renders one application; resumeURL is already absolute.
func printApplication(w io.Writer, a *domain.Application, resumeURL string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", a.ID)
	fmt.Fprintf(tw, "Job:\t%d\n", a.JobID)
	fmt.Fprintf(tw, "Student:\t%d\n", a.UserID)
	fmt.Fprintf(tw, "Status:\t%s\n", a.Status.Label())
	fmt.Fprintf(tw, "Resume:\t%s\n", orDash(resumeURL))
	if a.SubmittedAt != nil {
		fmt.Fprintf(tw, "Submitted:\t%s\n", a.SubmittedAt.Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if a.CoverLetter == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%s\n", a.CoverLetter)
	return err
}

func printDepartment(w io.Writer, d *domain.Department) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", d.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", d.Name)
	fmt.Fprintf(tw, "Office:\t%s\n", orDash(d.Office))
	fmt.Fprintf(tw, "Phone:\t%s\n", orDash(d.Phone))
	return tw.Flush()
}

func printReviews(w io.Writer, reviews []domain.Review) error {
	if len(reviews) == 0 {
		_, err := fmt.Fprintln(w, "No reviews yet")
		return err
	}
	tw := newTable(w, "ID", "RATING", "COMMENT")
	for _, r := range reviews {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.ID, stars(r.Rating), orDash(r.Comment))
	}
	return tw.Flush()
}

func stars(n int) string {
	n = max(0, min(n, 5))
	return strings.Repeat("*", n) + strings.Repeat(".", 5-n)
}
