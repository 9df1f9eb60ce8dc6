// Command jobboard is the terminal client of the job board: it keeps a
// session between runs and exposes the board's screens as subcommands.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/campusjobs/jobboard/internal/api"
	"github.com/campusjobs/jobboard/internal/api/middleware"
	"github.com/campusjobs/jobboard/internal/core/domain"
	"github.com/campusjobs/jobboard/internal/core/service"
	"github.com/campusjobs/jobboard/internal/pkg/config"
	"github.com/campusjobs/jobboard/pkg/logger"
)

type commandFn func(cc *commandContext, args []string) error

// access is who may run a command. roles only feeds the refusal message.
type access struct {
	guard middleware.Guard
	// login is set when the command only runs for a verified session.
	login bool
	roles []domain.Role
}

func public() access { return access{guard: middleware.Public()} }
func authed() access { return access{guard: middleware.RequireAuth(), login: true} }

func only(roles ...domain.Role) access {
	return access{guard: middleware.RequireRole(roles...), login: true, roles: roles}
}

type command struct {
	name        string
	description string
	access      access
	run         commandFn
}

type commandContext struct {
	Ctx      context.Context
	Log      zerolog.Logger
	In       io.Reader
	Out      io.Writer
	Err      io.Writer
	Session  *service.SessionStore
	Gateway  *api.Gateway
	Validate *service.Validator
	Apps     *service.ApplicationService
	Depts    *service.DepartmentService
}

const loginHint = "jobboard login -email you@example.com"

var errLoginRequired = errors.New("log in to access this resource: " + loginHint)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process exit. It returns 2 for usage errors and 1
// for failed commands.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printUsage(stderr)
		return 2
	}

	cmd, ok := commands()[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		printUsage(stderr)
		return 2
	}

	cfg, err := config.Load(ctx, ".env")
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Output: stderr, App: "jobboard"})

	tokens, closeTokens, err := openTokenStore(ctx, cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer func() {
		if cerr := closeTokens(); cerr != nil {
			log.Warn().Err(cerr).Msg("close token store failed")
		}
	}()

	cc, err := newCommandContext(ctx, cfg, tokens, log)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	cc.In = stdin
	cc.Out = stdout
	cc.Err = stderr

	if err := execute(cc, cmd, args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 2
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// execute resolves the session, applies the command's guard and runs it.
func execute(cc *commandContext, cmd command, args []string) error {
	snap := cc.Session.Initialize(cc.Ctx)
	if snap.State == service.SessionInvalidated {
		cc.Log.Info().Msg("stored session expired, continuing anonymously")
	}

	switch cmd.access.guard(cc.Session) {
	case middleware.Wait:
		return errors.New("session is still loading, try again")
	case middleware.RedirectLogin:
		return errLoginRequired
	case middleware.Forbidden:
		return fmt.Errorf("access denied: %s is available to %s accounts only", cmd.name, joinRoles(cmd.access.roles))
	}

	err := cmd.run(cc, args)
	if cmd.access.login && api.IsUnauthorized(err) {
		// The gateway already dropped the stored token.
		cc.Log.Info().Str("command", cmd.name).Msg("session rejected mid-command")
		return fmt.Errorf("%w\nsession expired, log in again: %s", err, loginHint)
	}
	return err
}

func commands() map[string]command {
	list := []command{
		{"login", "Log in and remember the session", public(), runLogin},
		{"register", "Create an account and log in", public(), runRegister},
		{"logout", "Forget the stored session", public(), runLogout},
		{"whoami", "Show the logged-in user", authed(), runWhoami},

		{"jobs", "Search open postings", public(), runJobs},
		{"job", "Show one posting", public(), runJob},
		{"job-create", "Publish a posting", only(domain.RoleEmployer), runJobCreate},
		{"my-jobs", "List your postings", only(domain.RoleEmployer), runMyJobs},

		{"apply", "Apply to a posting, optionally uploading a resume", only(domain.RoleStudent), runApply},
		{"applications", "List your applications with their postings", only(domain.RoleStudent), runApplications},
		{"application", "Show one application", authed(), runApplication},
		{"job-applications", "List applications to one of your postings", only(domain.RoleEmployer), runJobApplications},
		{"set-status", "Move an application through review", only(domain.RoleEmployer), runSetStatus},

		{"department", "Show your department", only(domain.RoleEmployer), runDepartment},
		{"department-save", "Create or update your department", only(domain.RoleEmployer), runDepartmentSave},
		{"department-delete", "Delete your department", only(domain.RoleEmployer), runDepartmentDelete},

		{"reviews", "List reviews of a posting", public(), runReviews},
		{"review", "Review a posting", only(domain.RoleStudent), runReview},
		{"employer-review", "Show the employer review of an application", authed(), runEmployerReview},
		{"employer-review-create", "Review an accepted applicant", only(domain.RoleEmployer), runEmployerReviewCreate},
	}
	out := make(map[string]command, len(list))
	for _, c := range list {
		out[c.name] = c
	}
	return out
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, "Usage: jobboard <command> [flags]\n\nAvailable commands:\n")
	names := make([]string, 0, len(commands()))
	for name := range commands() {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-24s %s\n", name, commands()[name].description)
	}
}

// newFlagSet reports parse errors and -h output on the invocation's stderr.
func newFlagSet(cc *commandContext, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if cc.Err != nil {
		fs.SetOutput(cc.Err)
	}
	return fs
}

func requireID(name string, v int64) error {
	if v <= 0 {
		return fmt.Errorf("-%s is required", name)
	}
	return nil
}

func joinRoles(roles []domain.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, "/")
}
