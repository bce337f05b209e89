package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"jobmatch/internal/cursor"
	"jobmatch/internal/domain/application"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/infrastructure/api"
	"jobmatch/internal/session"
	"jobmatch/internal/state"
	"jobmatch/internal/usecase"
)

// listFlag collects a repeated string flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ", ") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func newFlags(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

// setFlags reports which flags were given explicitly.
func setFlags(fs *flag.FlagSet) map[string]bool {
	seen := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	return seen
}

func attachment(path string) (*user.Attachment, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &user.Attachment{Filename: filepath.Base(path), Content: b}, nil
}

func table(e *env) *tabwriter.Writer {
	return tabwriter.NewWriter(e.out, 0, 4, 2, ' ', 0)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func runSignup(ctx context.Context, e *env, args []string) error {
	fs := newFlags("signup")
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	as := fs.String("type", "", "job_seeker or company (derived from the account when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := usecase.NewAuthUsecase(e.api, e.sess, e.logger).Signup(ctx,
		user.SignupInput{Name: *name, Email: *email, Password: *password}, user.Type(*as))
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Signed up as %s (%s)\n", res.User.Email, e.sess.UserType())
	return nil
}

func runLogin(ctx context.Context, e *env, args []string) error {
	fs := newFlags("login")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	as := fs.String("type", "", "job_seeker or company (derived from the account when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	res, err := usecase.NewAuthUsecase(e.api, e.sess, e.logger).Login(ctx,
		user.LoginInput{Email: *email, Password: *password}, user.Type(*as))
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Logged in as %s (%s)\n", res.User.Email, e.sess.UserType())
	return nil
}

func runLogout(ctx context.Context, e *env, _ []string) error {
	if err := usecase.NewAuthUsecase(e.api, e.sess, e.logger).Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Logged out")
	return nil
}

func runWhoami(_ context.Context, e *env, _ []string) error {
	s := e.sess.Snapshot()
	if !s.Authenticated() {
		fmt.Fprintln(e.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(e.out, "user type: %s\ntoken:     %s\n", s.UserType, session.Mask(s.Token))
	return nil
}

func runProfile(ctx context.Context, e *env, _ []string) error {
	d := usecase.NewSeekerDashboard(e.api, e.sess, e.logger)
	if err := d.Mount(ctx); err != nil {
		return err
	}
	defer d.Unmount()

	p, _ := d.Profile()
	w := table(e)
	fmt.Fprintf(w, "Name\t%s\n", orDash(p.Name))
	fmt.Fprintf(w, "Email\t%s\n", p.Email)
	fmt.Fprintf(w, "Skills\t%s\n", orDash(strings.Join(p.Skills.Strings(), ", ")))
	fmt.Fprintf(w, "Experience\t%s\n", orDash(p.Experience))
	fmt.Fprintf(w, "Education\t%s\n", orDash(p.Education))
	fmt.Fprintf(w, "Location\t%s\n", orDash(p.Location))
	fmt.Fprintf(w, "Phone\t%s\n", orDash(p.Phone))
	fmt.Fprintf(w, "LinkedIn\t%s\n", orDash(p.LinkedIn))
	fmt.Fprintf(w, "Portfolio\t%s\n", orDash(p.Portfolio))
	if p.ResumeURL != nil {
		fmt.Fprintf(w, "Resume\t%s\n", *p.ResumeURL)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if msg := d.Error(); msg != "" {
		fmt.Fprintf(e.out, "\n%s\n", msg)
		return nil
	}
	fmt.Fprintln(e.out)
	printApplications(e, d.Applications())
	return nil
}

func runProfileEdit(ctx context.Context, e *env, args []string) error {
	fs := newFlags("profile-edit")
	fs.String("name", "", "full name")
	skills := fs.String("skills", "", "comma separated skills")
	fs.String("experience", "", "experience")
	fs.String("education", "", "education")
	fs.String("location", "", "location")
	fs.String("phone", "", "phone")
	fs.String("linkedin", "", "LinkedIn URL")
	fs.String("portfolio", "", "portfolio URL")
	resume := fs.String("resume", "", "resume file to upload")
	picture := fs.String("picture", "", "profile picture to upload")
	if err := fs.Parse(args); err != nil {
		return err
	}
	given := setFlags(fs)

	resumeFile, err := attachment(*resume)
	if err != nil {
		return err
	}
	pictureFile, err := attachment(*picture)
	if err != nil {
		return err
	}

	ed := usecase.NewProfileEditor(e.api, e.sess, e.logger)
	if err := ed.Mount(ctx); err != nil {
		return err
	}
	defer ed.Unmount()

	ed.Edit(func(in *user.ProfileInput) {
		for flagName, dst := range map[string]*string{
			"name": &in.Name, "experience": &in.Experience, "education": &in.Education,
			"location": &in.Location, "phone": &in.Phone, "linkedin": &in.LinkedIn, "portfolio": &in.Portfolio,
		} {
			if given[flagName] {
				*dst = fs.Lookup(flagName).Value.String()
			}
		}
		in.Resume = resumeFile
		in.ProfilePicture = pictureFile
	})
	if given["skills"] {
		ed.SetSkillsText(*skills)
	}

	p, err := ed.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Profile updated. Skills: %s\n", orDash(strings.Join(p.Skills.Strings(), ", ")))
	return nil
}

func runCompany(ctx context.Context, e *env, _ []string) error {
	d := usecase.NewCompanyDashboard(e.api, e.sess, e.logger)
	if err := d.Mount(ctx); err != nil {
		if errors.Is(err, usecase.ErrCompanyProfileMissing) {
			fmt.Fprintln(e.out, "No company profile yet. Create one with: jobmatch company-edit -name ...")
			return nil
		}
		return err
	}
	defer d.Unmount()

	c, _ := d.Company()
	w := table(e)
	fmt.Fprintf(w, "Company\t%s\n", c.CompanyName)
	fmt.Fprintf(w, "Email\t%s\n", orDash(c.Email))
	fmt.Fprintf(w, "Industry\t%s\n", orDash(c.Industry))
	fmt.Fprintf(w, "Location\t%s\n", orDash(c.Location))
	fmt.Fprintf(w, "Description\t%s\n", orDash(c.Description))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(e.out)
	if msg := d.Error(); msg != "" {
		fmt.Fprintln(e.out, msg)
	}
	printJobs(e, d.Jobs())
	return nil
}

func runCompanyEdit(ctx context.Context, e *env, args []string) error {
	fs := newFlags("company-edit")
	fs.String("name", "", "company name")
	fs.String("email", "", "contact email")
	fs.String("industry", "", "industry")
	fs.String("location", "", "location")
	fs.String("description", "", "description")
	fs.String("linkedin", "", "LinkedIn URL")
	fs.String("portfolio", "", "website")
	logo := fs.String("logo", "", "logo file to upload")
	if err := fs.Parse(args); err != nil {
		return err
	}
	given := setFlags(fs)

	logoFile, err := attachment(*logo)
	if err != nil {
		return err
	}

	ed := usecase.NewCompanyEditor(e.api, e.sess, e.logger)
	if err := ed.Mount(ctx); err != nil {
		return err
	}
	defer ed.Unmount()
	creating := !ed.Exists()

	ed.Edit(func(in *user.CompanyInput) {
		for flagName, dst := range map[string]*string{
			"name": &in.CompanyName, "email": &in.Email, "industry": &in.Industry, "location": &in.Location,
			"description": &in.Description, "linkedin": &in.LinkedIn, "portfolio": &in.Portfolio,
		} {
			if given[flagName] {
				*dst = fs.Lookup(flagName).Value.String()
			}
		}
		in.Logo = logoFile
	})

	c, err := ed.Submit(ctx)
	if err != nil {
		return err
	}
	if creating {
		fmt.Fprintf(e.out, "Company profile %q created\n", c.CompanyName)
	} else {
		fmt.Fprintf(e.out, "Company profile %q updated\n", c.CompanyName)
	}
	return nil
}

func runJobs(ctx context.Context, e *env, args []string) error {
	fs := newFlags("jobs")
	policyName := fs.String("policy", e.cfg.BrowsePolicy, "end of list behavior: wrap or exhaust")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *policyName == "" {
		*policyName = "exhaust"
	}
	policy, err := cursor.ParsePolicy(*policyName)
	if err != nil {
		return err
	}

	b, err := usecase.NewJobBrowser(e.api, e.sess, policy, e.logger)
	if err != nil {
		return err
	}
	if err := b.Mount(ctx); err != nil {
		return err
	}
	defer b.Unmount()

	if msg := b.Error(); msg != "" {
		return errors.New(msg)
	}
	if len(b.Jobs()) == 0 {
		fmt.Fprintln(e.out, "No jobs available right now.")
		return nil
	}

	keys := map[string]cursor.Input{
		"n": cursor.ButtonNext, "next": cursor.ButtonNext,
		"p": cursor.ButtonPrevious, "prev": cursor.ButtonPrevious,
		"a": cursor.SwipeRight, "apply": cursor.SwipeRight,
		"s": cursor.SwipeLeft, "skip": cursor.SwipeLeft,
	}
	events, unsubscribe := e.sess.Subscribe()
	defer unsubscribe()
	lines := readLines(ctx, os.Stdin)

	for {
		j, ok := b.Current()
		if !ok {
			fmt.Fprintln(e.out, "You have seen every job.")
			return nil
		}
		printJobCard(e, j, b.Index(), len(b.Jobs()), b.Applied(j.ID))
		fmt.Fprint(e.out, "[a]pply  [s]kip  [n]ext  [p]rev  [q]uit > ")

		line, err := nextLine(ctx, lines, events)
		if err != nil {
			fmt.Fprintln(e.out)
			return err
		}
		cmd := strings.ToLower(strings.TrimSpace(line))
		if cmd == "q" || cmd == "quit" {
			return nil
		}
		input, ok := keys[cmd]
		if !ok {
			continue
		}
		if err := b.Handle(ctx, input); err != nil {
			if errors.Is(err, usecase.ErrLoginRequired) {
				return err
			}
			fmt.Fprintln(e.out, usecase.Describe(err, "Failed to apply for this job"))
		}
	}
}

// readLines feeds stdin lines to a channel so prompts can also wait on
// session events. The channel closes at end of input.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		in := bufio.NewScanner(r)
		for in.Scan() {
			select {
			case out <- in.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// nextLine waits for the next input line. A logout in this or another
// process ends the wait with ErrLoginRequired; end of input reads as quit.
func nextLine(ctx context.Context, lines <-chan string, events <-chan session.Event) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "q", nil
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if ev.Kind == session.EventLogout {
				return "", usecase.ErrLoginRequired
			}
		case line, ok := <-lines:
			if !ok {
				return "q", nil
			}
			return line, nil
		}
	}
}

func runApply(ctx context.Context, e *env, args []string) error {
	fs := newFlags("apply")
	jobID := fs.Int64("job", 0, "job id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobID <= 0 {
		return errors.New("-job is required")
	}
	if err := usecase.NewAuthUsecase(e.api, e.sess, e.logger).RequireSession(); err != nil {
		return err
	}

	a, err := e.api.Apply(ctx, *jobID)
	if err != nil {
		return settle(ctx, e, err)
	}
	fmt.Fprintf(e.out, "Applied to %s (application %d)\n", a.JobTitle, a.ID)
	return nil
}

func runApplications(ctx context.Context, e *env, _ []string) error {
	m := usecase.NewMyApplications(e.api, e.sess, e.logger)
	if err := m.Mount(ctx); err != nil {
		return err
	}
	defer m.Unmount()
	if msg := m.Error(); msg != "" {
		return errors.New(msg)
	}
	printApplications(e, m.Applications())
	return nil
}

func runApplicants(ctx context.Context, e *env, args []string) error {
	fs := newFlags("applicants")
	title := fs.String("job", "", "only show applicants for this job title")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a := usecase.NewApplicants(e.api, e.sess, e.logger)
	if err := a.Mount(ctx); err != nil {
		return err
	}
	defer a.Unmount()
	if msg := a.Error(); msg != "" {
		return errors.New(msg)
	}

	a.SetTitleFilter(*title)
	groups := a.Groups()
	if len(groups) == 0 {
		fmt.Fprintln(e.out, "No applicants yet.")
		return nil
	}
	for _, g := range groups {
		fmt.Fprintf(e.out, "%s (%d)\n", g.JobTitle, len(g.Items))
		w := table(e)
		fmt.Fprintln(w, "  ID\tNAME\tEMAIL\tSKILLS\tSTATUS\tAPPLIED")
		for _, app := range g.Items {
			fmt.Fprintf(w, "  %d\t%s\t%s\t%s\t%s\t%s\n",
				app.ID, orDash(app.Applicant.Name), app.Applicant.Email,
				orDash(strings.Join(app.Applicant.Skills.Strings(), ", ")),
				app.Status, app.AppliedAt.Local().Format("2006-01-02"))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(e.out)
	}
	return nil
}

func runSetStatus(ctx context.Context, e *env, args []string) error {
	fs := newFlags("set-status")
	id := fs.Int64("application", 0, "application id")
	status := fs.String("status", "", "Pending, Reviewed, Accepted or Rejected")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a := usecase.NewApplicants(e.api, e.sess, e.logger)
	if err := a.Mount(ctx); err != nil {
		return err
	}
	defer a.Unmount()

	if err := a.UpdateStatus(ctx, *id, application.Status(*status)); err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Application %d is now %s\n", *id, *status)
	return nil
}

func runPostJob(ctx context.Context, e *env, args []string) error {
	var requirements, benefits listFlag
	fs := newFlags("post-job")
	title := fs.String("title", "", "job title")
	description := fs.String("description", "", "description")
	location := fs.String("location", "", "location")
	remote := fs.Bool("remote", false, "remote position")
	salaryMin := fs.String("salary-min", "", "minimum salary")
	salaryMax := fs.String("salary-max", "", "maximum salary")
	salaryType := fs.String("salary-type", "", "salary type, e.g. Range")
	employment := fs.String("employment", "", "employment type, e.g. Full-time")
	level := fs.String("level", "", "experience level")
	deadline := fs.String("deadline", "", "application deadline (YYYY-MM-DD)")
	fs.Var(&requirements, "requirement", "a requirement (repeatable)")
	fs.Var(&benefits, "benefit", "a benefit (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := usecase.NewJobPostForm(e.api, e.sess, e.logger)
	form.SetFields(usecase.JobPostFields{
		Title:               *title,
		Description:         *description,
		Location:            *location,
		IsRemote:            *remote,
		SalaryMin:           *salaryMin,
		SalaryMax:           *salaryMax,
		SalaryType:          *salaryType,
		EmploymentType:      *employment,
		ExperienceLevel:     *level,
		ApplicationDeadline: *deadline,
	})
	for _, r := range requirements {
		form.AddRequirement(r)
	}
	for _, b := range benefits {
		form.AddBenefit(b)
	}

	j, err := form.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Posted %q (job %d)\n", j.Title, j.ID)
	return nil
}

func runThreads(ctx context.Context, e *env, _ []string) error {
	if err := usecase.NewAuthUsecase(e.api, e.sess, e.logger).RequireSession(); err != nil {
		return err
	}
	threads, err := e.api.Threads(ctx)
	if err != nil {
		return settle(ctx, e, err)
	}
	if len(threads) == 0 {
		fmt.Fprintln(e.out, "No conversations yet.")
		return nil
	}
	w := table(e)
	fmt.Fprintln(w, "APPLICATION\tWITH\tJOB\tUNREAD\tLAST MESSAGE")
	for _, t := range threads {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", t.ApplicationID, t.DisplayName(), t.JobTitle, t.UnreadCount, orDash(t.LastMessage))
	}
	return w.Flush()
}

// conversation opens a standalone conversation that marks messages read.
func conversation(ctx context.Context, e *env, applicationID int64) (*usecase.Conversation, func(), error) {
	if applicationID <= 0 {
		return nil, nil, errors.New("-application is required")
	}
	life := &state.Lifecycle{}
	life.Mount()
	c := usecase.NewConversation(e.api, e.sess, life, true, e.logger)
	if err := c.Open(ctx, applicationID); err != nil {
		life.Unmount()
		return nil, nil, err
	}
	return c, life.Unmount, nil
}

func runMessages(ctx context.Context, e *env, args []string) error {
	fs := newFlags("messages")
	id := fs.Int64("application", 0, "application id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, done, err := conversation(ctx, e, *id)
	if err != nil {
		return err
	}
	defer done()
	if msg := c.Error(); msg != "" {
		return errors.New(msg)
	}
	printMessages(e, c)
	return nil
}

func runSend(ctx context.Context, e *env, args []string) error {
	fs := newFlags("send")
	id := fs.Int64("application", 0, "application id")
	text := fs.String("text", "", "message text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, done, err := conversation(ctx, e, *id)
	if err != nil {
		return err
	}
	defer done()
	if err := c.Send(ctx, *text); err != nil {
		return err
	}
	printMessages(e, c)
	return nil
}

// runWatch keeps the inbox open and prints it whenever it changes. It stops
// on interrupt or when the session ends, locally or in another process.
func runWatch(ctx context.Context, e *env, args []string) error {
	fs := newFlags("watch")
	id := fs.Int64("application", 0, "open this conversation once it appears")
	if err := fs.Parse(args); err != nil {
		return err
	}

	events, unsubscribe := e.sess.Subscribe()
	defer unsubscribe()

	inbox := usecase.NewInbox(e.api, e.sess, e.cfg.PollInterval, e.logger)
	if err := inbox.Mount(ctx, *id); err != nil {
		return err
	}
	defer inbox.Unmount()

	fmt.Fprintf(e.out, "Watching inbox every %s. Press Ctrl-C to stop.\n", e.cfg.PollInterval)
	render := time.NewTicker(250 * time.Millisecond)
	defer render.Stop()

	var last string
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-inbox.SessionLost():
			return usecase.ErrLoginRequired
		case ev, ok := <-events:
			if ok && ev.Kind == session.EventLogout {
				return usecase.ErrLoginRequired
			}
		case <-render.C:
			snap := inboxSummary(inbox)
			if snap != last {
				fmt.Fprint(e.out, snap)
				last = snap
			}
		}
	}
}

func inboxSummary(i *usecase.Inbox) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n== %d unread", i.UnreadCount())
	if msg := i.Error(); msg != "" {
		fmt.Fprintf(&b, " (%s)", msg)
	}
	b.WriteString(" ==\n")
	for _, t := range i.Threads() {
		marker := " "
		if sel, ok := i.Selected(); ok && sel.ApplicationID == t.ApplicationID {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s #%d %s (%s) unread=%d\n", marker, t.ApplicationID, t.DisplayName(), t.JobTitle, t.UnreadCount)
	}
	for _, m := range i.Messages() {
		fmt.Fprintf(&b, "    %s  %s: %s\n", m.Timestamp.Local().Format("15:04"), m.SenderInfo.DisplayName(), m.Text)
	}
	return b.String()
}

// settle mirrors what the views do with a rejected token for the commands
// that call the API directly.
func settle(ctx context.Context, e *env, err error) error {
	if api.IsUnauthorized(err) {
		_ = e.sess.Clear(ctx)
		return fmt.Errorf("%w: %w", usecase.ErrLoginRequired, err)
	}
	return err
}

func printJobs(e *env, jobs []job.Job) {
	if len(jobs) == 0 {
		fmt.Fprintln(e.out, "No job listings.")
		return
	}
	w := table(e)
	fmt.Fprintln(w, "ID\tTITLE\tLOCATION\tSALARY\tPOSTED")
	for _, j := range jobs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", j.ID, j.Title, orDash(j.Location), salary(j), j.PostedAt.Local().Format("2006-01-02"))
	}
	_ = w.Flush()
}

func printJobCard(e *env, j job.Job, index, total int, applied bool) {
	fmt.Fprintf(e.out, "\n[%d/%d] %s at %s\n", index+1, total, j.Title, orDash(j.CompanyInfo.CompanyName))
	where := orDash(j.Location)
	if j.IsRemote {
		where += " (remote)"
	}
	fmt.Fprintf(e.out, "  %s | %s | %s\n", where, orDash(j.EmploymentType), salary(j))
	fmt.Fprintf(e.out, "  %s\n", j.Description)
	for _, r := range j.Requirements {
		fmt.Fprintf(e.out, "  - %s\n", r)
	}
	if applied {
		fmt.Fprintln(e.out, "  (applied)")
	}
}

func salary(j job.Job) string {
	switch {
	case j.SalaryMin != nil && j.SalaryMax != nil:
		return fmt.Sprintf("%d-%d", *j.SalaryMin, *j.SalaryMax)
	case j.SalaryMin != nil:
		return fmt.Sprintf("from %d", *j.SalaryMin)
	case j.SalaryMax != nil:
		return fmt.Sprintf("up to %d", *j.SalaryMax)
	default:
		return "-"
	}
}

func printApplications(e *env, apps []application.Application) {
	if len(apps) == 0 {
		fmt.Fprintln(e.out, "No applications yet.")
		return
	}
	w := table(e)
	fmt.Fprintln(w, "ID\tJOB\tSTATUS\tAPPLIED")
	for _, a := range apps {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", a.ID, a.JobTitle, a.Status, a.AppliedAt.Local().Format("2006-01-02"))
	}
	_ = w.Flush()
}

func printMessages(e *env, c *usecase.Conversation) {
	msgs := c.Messages()
	if len(msgs) == 0 {
		fmt.Fprintln(e.out, "No messages yet.")
		return
	}
	for _, m := range msgs {
		fmt.Fprintf(e.out, "%s  %s: %s\n", m.Timestamp.Local().Format("2006-01-02 15:04"), m.SenderInfo.DisplayName(), m.Text)
	}
}
