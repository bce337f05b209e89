// Command jobmatch is a terminal client for the job matching marketplace.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"

	"jobmatch/internal/config"
	"jobmatch/internal/infrastructure/api"
	"jobmatch/internal/infrastructure/sessionstore"
	"jobmatch/internal/session"
	"jobmatch/internal/usecase"
)

// env is what every subcommand runs against.
type env struct {
	cfg    config.ClientConfig
	logger *log.Logger
	out    io.Writer
	sess   *session.Store
	api    *api.Client
}

type command struct {
	usage string
	run   func(ctx context.Context, e *env, args []string) error
}

var commands = map[string]command{
	"signup":       {"-name N -email E -password P [-type job_seeker|company]", runSignup},
	"login":        {"-email E -password P [-type job_seeker|company]", runLogin},
	"logout":       {"", runLogout},
	"whoami":       {"", runWhoami},
	"profile":      {"", runProfile},
	"profile-edit": {"[-name N] [-skills a,b] [-resume FILE] [-picture FILE] ...", runProfileEdit},
	"company":      {"", runCompany},
	"company-edit": {"[-name N] [-industry I] [-logo FILE] ...", runCompanyEdit},
	"jobs":         {"[-policy wrap|exhaust]", runJobs},
	"apply":        {"-job ID", runApply},
	"applications": {"", runApplications},
	"applicants":   {"[-job TITLE]", runApplicants},
	"set-status":   {"-application ID -status Pending|Reviewed|Accepted|Rejected", runSetStatus},
	"post-job":     {"-title T -description D -location L [-requirement R]... [-benefit B]...", runPostJob},
	"threads":      {"", runThreads},
	"messages":     {"-application ID", runMessages},
	"send":         {"-application ID -text T", runSend},
	"watch":        {"[-application ID]", runWatch},
}

func main() {
	config.LoadDotEnv(".env")

	verbose := flag.Bool("v", false, "log requests to stderr")
	flag.Usage = usage
	flag.Parse()

	name := flag.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	e, cleanup, err := setup(ctx, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jobmatch: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := cmd.run(ctx, e, flag.Args()[1:]); err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "jobmatch %s: %s\n", name, usecase.Describe(err, err.Error()))
		if errors.Is(err, usecase.ErrLoginRequired) {
			os.Exit(3)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: jobmatch [-v] <command> [flags]")
	fmt.Fprintln(os.Stderr)
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(os.Stderr, "  %-13s %s\n", n, commands[n].usage)
	}
}

func setup(ctx context.Context, logger *log.Logger) (*env, func(), error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, nil, err
	}

	var (
		persist session.Persister
		notify  session.Notifier
		closeFn = func() {}
	)
	switch cfg.Session.Backend {
	case config.SessionBackendMemory:
		persist = sessionstore.NewMemory()
	case config.SessionBackendRedis:
		r, err := sessionstore.NewRedis(ctx, sessionstore.RedisConfig{
			Host:     cfg.Session.Redis.Host,
			Port:     cfg.Session.Redis.Port,
			Password: cfg.Session.Redis.Password,
			DB:       cfg.Session.Redis.DB,
			Prefix:   cfg.Session.Redis.Prefix,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		persist, notify, closeFn = r, r, func() { _ = r.Close() }
	default:
		s, err := sessionstore.OpenSQLite(ctx, cfg.Session.Path, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open session store: %w", err)
		}
		persist, notify, closeFn = s, s, func() { _ = s.Close() }
	}

	sess, err := session.New(ctx, persist, logger)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	// follow logins and logouts made by other processes for every command
	if notify != nil {
		if err := sess.Watch(ctx, notify); err != nil {
			logger.Printf("[Session] change feed unavailable: %v", err)
		}
	}

	var once sync.Once
	cleanup := func() { once.Do(closeFn) }

	e := &env{
		cfg:    cfg,
		logger: logger,
		out:    os.Stdout,
		sess:   sess,
		api:    api.NewClient(cfg.APIURL, cfg.HTTPTimeout, sess, logger),
	}
	return e, cleanup, nil
}
