package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/campushire/recruit-portal/internal/core/domain"
)

func runApply(app *appContext, args []string) error {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	jobID := fs.String("job", "", "job listing id")
	name := fs.String("name", "", "applicant name (defaults to your profile)")
	email := fs.String("email", "", "applicant email (defaults to your profile)")
	phone := fs.String("phone", "", "applicant phone")
	resumePath := fs.String("resume", "", "path to the resume file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireRole(app, domain.RoleStudent); err != nil {
		return err
	}
	if *jobID == "" {
		return &domain.ValidationError{Field: "job", Reason: "is required"}
	}
	if *resumePath == "" {
		return domain.ErrResumeRequired
	}

	var identity *domain.User
	if user, ok := app.session.Identity(); ok {
		identity = &user
	}
	app.submission.SelectJob(domain.JobListing{ID: *jobID}, identity)

	applicantName, applicantEmail, applicantPhone := *name, *email, *phone
	if identity != nil {
		if applicantName == "" {
			applicantName = identity.Name
		}
		if applicantEmail == "" {
			applicantEmail = identity.Email
		}
		if applicantPhone == "" {
			applicantPhone = identity.Phone
		}
	}
	app.submission.SetApplicant(applicantName, applicantEmail, applicantPhone)

	file, err := os.Open(*resumePath)
	if err != nil {
		return fmt.Errorf("open resume: %w", err)
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat resume: %w", err)
	}
	if err := app.submission.AttachResume(filepath.Base(*resumePath), info.Size(), file); err != nil {
		return err
	}

	if err := app.submission.Submit(app.ctx); err != nil {
		return err
	}
	fmt.Println("application submitted")
	return nil
}

func runApplications(app *appContext, _ []string) error {
	if err := requireRole(app, domain.RoleCompany); err != nil {
		return err
	}
	if err := app.review.Refresh(app.ctx); err != nil {
		return err
	}

	apps := app.review.Applications()
	if len(apps) == 0 {
		fmt.Println("no applications")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tAPPLICANT\tJOB\tSTATUS")
	for _, a := range apps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.Student.User.Name, a.Job.Title, a.Status)
	}
	return w.Flush()
}

func runShow(app *appContext, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	id := fs.String("id", "", "application id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireRole(app, domain.RoleCompany); err != nil {
		return err
	}
	if err := app.review.Refresh(app.ctx); err != nil {
		return err
	}

	detail, ok := app.review.Get(*id)
	if !ok {
		return domain.ErrApplicationNotFound
	}
	fmt.Printf("%s / %s\n", detail.Student.User.Name, detail.Job.Title)
	fmt.Printf("status: %s\n", detail.Status)
	fmt.Printf("email: %s\n", detail.Student.User.Email)
	if detail.Student.Phone != "" {
		fmt.Printf("phone: %s\n", detail.Student.Phone)
	}
	if detail.CoverLetter != "" {
		fmt.Printf("cover letter:\n%s\n", detail.CoverLetter)
	}
	if detail.Message != "" {
		fmt.Printf("note: %s\n", detail.Message)
	}
	if detail.Student.ResumeURL != "" {
		fmt.Printf("resume (view): %s\n", domain.AttachmentViewURL(detail.Student.ResumeURL))
		fmt.Printf("resume (download): %s\n", domain.AttachmentDownloadURL(detail.Student.ResumeURL))
	}
	return nil
}

func runTransition(app *appContext, args []string) error {
	fs := flag.NewFlagSet("transition", flag.ContinueOnError)
	id := fs.String("id", "", "application id")
	statusRaw := fs.String("status", "", "new status: ACCEPTED, REJECTED, or INTERVIEW")
	message := fs.String("message", "", "optional note (INTERVIEW scheduling details)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireRole(app, domain.RoleCompany); err != nil {
		return err
	}

	status, ok := domain.ParseStatus(*statusRaw)
	if !ok {
		return &domain.ValidationError{Field: "status", Reason: "must be one of ACCEPTED, REJECTED, INTERVIEW"}
	}
	if err := app.review.Refresh(app.ctx); err != nil {
		return err
	}
	if err := app.review.Transition(app.ctx, *id, status, *message); err != nil {
		return err
	}

	updated, _ := app.review.Get(*id)
	fmt.Printf("application %s is now %s\n", *id, updated.Status)
	return nil
}
