// recruitctl is the terminal client for the campus recruitment platform.
// Students search and apply to jobs, companies review applications, admins
// watch the platform. All state lives on the remote API; the only durable
// local artifact is the session credential.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/core/ports"
	"github.com/campushire/recruit-portal/internal/core/service"
	"github.com/campushire/recruit-portal/internal/infrastructure/api"
	"github.com/campushire/recruit-portal/internal/infrastructure/config"
	"github.com/campushire/recruit-portal/internal/infrastructure/credstore"
	"github.com/campushire/recruit-portal/pkg/logger"
)

type commandFn func(app *appContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type appContext struct {
	ctx context.Context
	cfg *config.Config
	log zerolog.Logger

	session    *service.SessionService
	guard      *service.GuardService
	accounts   *service.AccountService
	search     *service.JobSearchService
	submission *service.SubmissionService
	review     *service.ReviewService
	posting    *service.PostingService
	admin      *service.AdminService
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}
	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmdName)
		printUsage()
		os.Exit(2)
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.Init(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	app, err := bootstrap(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup: %v\n", err)
		os.Exit(1)
	}

	if err := cmd.run(app, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

func bootstrap(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*appContext, error) {
	store, err := buildCredentialStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	gw := api.NewGateway(cfg.APIBaseURL, &http.Client{Timeout: cfg.Timeout}, logger.For("gateway"))
	authAPI := api.NewAuthAPI(gw)
	jobAPI := api.NewJobAPI(gw)
	appAPI := api.NewApplicationAPI(gw)
	uploadAPI := api.NewUploadAPI(gw)
	adminAPI := api.NewAdminAPI(gw)

	session := service.NewSessionService(store, authAPI, logger.For("session"))
	gw.SetTokenSource(session)
	gw.SetAuthRejectedHook(session.InvalidateCredential)

	if err := session.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("session restore failed")
	}

	return &appContext{
		ctx:        ctx,
		cfg:        cfg,
		log:        log,
		session:    session,
		guard:      service.NewGuardService(session),
		accounts:   service.NewAccountService(authAPI, session, logger.For("account")),
		search:     service.NewJobSearchService(jobAPI, logger.For("jobsearch")),
		submission: service.NewSubmissionService(uploadAPI, appAPI, logger.For("submission")),
		review:     service.NewReviewService(appAPI, logger.For("review")),
		posting:    service.NewPostingService(jobAPI, logger.For("posting")),
		admin:      service.NewAdminService(adminAPI, logger.For("admin")),
	}, nil
}

func buildCredentialStore(ctx context.Context, cfg *config.Config) (ports.CredentialStore, error) {
	switch cfg.Credential.Backend {
	case "redis":
		client, err := credstore.Connect(ctx, credstore.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		return credstore.NewRedisStore(client), nil
	default:
		return credstore.NewFileStore(cfg.Credential.Path), nil
	}
}

func commands() map[string]command {
	return map[string]command{
		"login":        {"login", "Authenticate and establish a session", runLogin},
		"register":     {"register", "Create a new account", runRegister},
		"logout":       {"logout", "Clear the local session", runLogout},
		"whoami":       {"whoami", "Show the resolved identity behind the credential", runWhoami},
		"profile":      {"profile", "Update name, email, or password", runProfile},
		"jobs":         {"jobs", "Search job listings", runJobs},
		"apply":        {"apply", "Apply to a job with a resume file", runApply},
		"post-job":     {"post-job", "Post a new job listing (company)", runPostJob},
		"applications": {"applications", "List applications for your jobs (company)", runApplications},
		"show":         {"show", "Show one application in detail (company)", runShow},
		"transition":   {"transition", "Change an application's status (company)", runTransition},
		"overview":     {"overview", "Platform stats and recent activity (admin)", runOverview},
		"moderate":     {"moderate", "Set a user's or job's status (admin)", runModerate},
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: recruitctl <command> [flags]")
	fmt.Fprintln(os.Stderr)
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	w := tabwriter.NewWriter(os.Stderr, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%s\n", name, cmds[name].description)
	}
	_ = w.Flush()
}

// requireRole runs the access guard before a role-scoped command.
func requireRole(app *appContext, roles ...string) error {
	decision := app.guard.Check(roles...)
	switch decision.Verdict {
	case service.VerdictLogin:
		return errors.New("not logged in; run `recruitctl login` first")
	case service.VerdictHome:
		return fmt.Errorf("this command requires one of the roles %v", roles)
	}
	return nil
}

func renderError(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuthRejected):
		return "session expired or rejected; run `recruitctl login` again"
	case errors.Is(err, domain.ErrResumeTooLarge):
		return "resume file exceeds the 10 MiB limit; pick a smaller file"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "only PENDING applications can be transitioned"
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var se *domain.SubmitError
	if errors.As(err, &se) {
		if se.Phase == "upload" {
			return "resume upload failed: " + unwrapMessage(se.Err)
		}
		return "application submit failed (resume was uploaded): " + unwrapMessage(se.Err)
	}
	var re *domain.RequestError
	if errors.As(err, &re) {
		return re.Message
	}
	return err.Error()
}

func unwrapMessage(err error) string {
	var re *domain.RequestError
	if errors.As(err, &re) {
		return re.Message
	}
	return err.Error()
}
