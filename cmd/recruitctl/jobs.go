package main

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/core/ports"
)

func runJobs(app *appContext, args []string) error {
	fs := flag.NewFlagSet("jobs", flag.ContinueOnError)
	title := fs.String("title", "", "job title keywords")
	position := fs.String("position", "", "secondary position keywords")
	location := fs.String("location", "", "location filter")
	address := fs.String("address", "", "seed the search from a saved address query string")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireRole(app); err != nil {
		return err
	}

	var err error
	if *address != "" {
		params, parseErr := url.ParseQuery(*address)
		if parseErr != nil {
			return fmt.Errorf("parse address: %w", parseErr)
		}
		err = app.search.SeedFromURL(app.ctx, params)
	} else {
		err = app.search.Search(app.ctx, *title, *position, *location)
	}
	if err != nil {
		return err
	}

	jobs := app.search.Results()
	fmt.Printf("%d results\n", len(jobs))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION")
	for _, job := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", job.ID, job.Title, job.Company.Name, job.Location)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if addr := app.search.Address(); addr != "" {
		fmt.Printf("\nsaved search: ?%s\n", addr)
	}
	return nil
}

func runPostJob(app *appContext, args []string) error {
	fs := flag.NewFlagSet("post-job", flag.ContinueOnError)
	title := fs.String("title", "", "job title")
	description := fs.String("description", "", "job description")
	location := fs.String("location", "", "job location")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireRole(app, domain.RoleCompany); err != nil {
		return err
	}

	job, err := app.posting.PostJob(app.ctx, ports.CreateJobInput{
		Title:       *title,
		Description: *description,
		Location:    *location,
	})
	if err != nil {
		return err
	}
	fmt.Printf("posted %q (%s)\n", job.Title, job.ID)
	return nil
}
