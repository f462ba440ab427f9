package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/campushire/recruit-portal/internal/core/domain"
)

func runOverview(app *appContext, _ []string) error {
	if err := requireRole(app, domain.RoleAdmin); err != nil {
		return err
	}

	overview, err := app.admin.LoadOverview(app.ctx)
	if err != nil {
		return err
	}

	fmt.Printf("users: %d (students %d, companies %d)\n",
		overview.Stats.Users, overview.Stats.Students, overview.Stats.Companies)
	fmt.Printf("jobs: %d, applications: %d\n", overview.Stats.Jobs, overview.Stats.Applications)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nRECENT USERS\t\t")
	for _, u := range overview.RecentUsers {
		fmt.Fprintf(w, "%s\t%s\t%s\n", u.Name, u.Email, u.Role)
	}
	fmt.Fprintln(w, "\nRECENT JOBS\t\t")
	for _, j := range overview.RecentJobs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", j.Title, j.Company.Name, j.Location)
	}
	return w.Flush()
}

func runModerate(app *appContext, args []string) error {
	fs := flag.NewFlagSet("moderate", flag.ContinueOnError)
	userID := fs.String("user", "", "user id to update")
	jobID := fs.String("job", "", "job id to update")
	status := fs.String("status", "", "new status value")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireRole(app, domain.RoleAdmin); err != nil {
		return err
	}
	if *status == "" {
		return &domain.ValidationError{Field: "status", Reason: "is required"}
	}

	switch {
	case *userID != "":
		user, err := app.admin.ModerateUser(app.ctx, *userID, *status)
		if err != nil {
			return err
		}
		fmt.Printf("user %s is now %s\n", user.Email, user.Status)
	case *jobID != "":
		job, err := app.admin.ModerateJob(app.ctx, *jobID, *status)
		if err != nil {
			return err
		}
		fmt.Printf("job %q is now %s\n", job.Title, job.Status)
	default:
		return &domain.ValidationError{Reason: "one of -user or -job is required"}
	}
	return nil
}
