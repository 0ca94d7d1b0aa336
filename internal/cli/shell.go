// Package cli is the interactive shell binding the workflows to a
// terminal user. One shell process is one session: login state, the
// applied-job set and all cached result views live for the process
// lifetime and are dropped on logout.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"jobboard-client/internal/api"
	commonerrors "jobboard-client/internal/common/errors"
	"jobboard-client/internal/common/logger"
	"jobboard-client/internal/models"
	"jobboard-client/internal/workflows/application"
	"jobboard-client/internal/workflows/jobsearch"
	"jobboard-client/internal/workflows/listing"
	"jobboard-client/internal/workflows/onboarding"
	"jobboard-client/internal/workflows/review"
)

type Shell struct {
	client       *api.Client
	search       *jobsearch.Service
	applications *application.Service
	listings     *listing.Service
	review       *review.Service
	onboarding   *onboarding.Service
	resetSession func(ctx context.Context) error
	logger       logger.Logger

	in  *bufio.Reader
	out io.Writer

	role string
}

type Options struct {
	Client       *api.Client
	Search       *jobsearch.Service
	Applications *application.Service
	Listings     *listing.Service
	Review       *review.Service
	Onboarding   *onboarding.Service
	// ResetSession clears session-scoped state on logout.
	ResetSession func(ctx context.Context) error
	Logger       logger.Logger
	In           io.Reader
	Out          io.Writer
}

func NewShell(opts Options) *Shell {
	return &Shell{
		client:       opts.Client,
		search:       opts.Search,
		applications: opts.Applications,
		listings:     opts.Listings,
		review:       opts.Review,
		onboarding:   opts.Onboarding,
		resetSession: opts.ResetSession,
		logger:       opts.Logger,
		in:           bufio.NewReader(opts.In),
		out:          opts.Out,
	}
}

// Run reads commands until EOF, "quit" or context cancellation. No
// command ever surfaces a raw panic; failures become status lines.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "jobboard - type 'help' for commands")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(s.out, "> ")
		line, err := s.in.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return nil
		}

		s.dispatch(ctx, args)
	}
}

func (s *Shell) dispatch(ctx context.Context, args []string) {
	cmd, rest := args[0], args[1:]

	var err error
	switch cmd {
	case "help":
		s.printHelp()
	case "register":
		err = s.cmdRegister(ctx, rest)
	case "login":
		err = s.cmdLogin(ctx, rest)
	case "logout":
		err = s.cmdLogout(ctx)
	case "profile":
		err = s.cmdProfile(ctx)
	case "onboard":
		err = s.cmdOnboard(ctx, rest)
	case "jobs":
		s.cmdJobs(ctx)
	case "filter":
		err = s.cmdFilter(ctx, rest)
	case "apply":
		err = s.cmdApply(ctx, rest)
	case "applications":
		err = s.cmdApplications(ctx)
	case "application":
		err = s.cmdApplicationDetail(ctx, rest)
	case "withdraw":
		err = s.cmdWithdraw(ctx, rest)
	case "listings":
		err = s.cmdListings(ctx)
	case "draft":
		err = s.cmdDraft(rest)
	case "listing":
		err = s.cmdListing(ctx, rest)
	case "applicants":
		s.cmdApplicants(ctx)
	case "applicant":
		err = s.cmdApplicant(ctx, rest)
	default:
		fmt.Fprintf(s.out, "unknown command %q, type 'help'\n", cmd)
	}

	if err != nil {
		fmt.Fprintln(s.out, commonerrors.UserMessage(err))
	}
}

func (s *Shell) printHelp() {
	fmt.Fprint(s.out, `Commands:
  register <username> <email> <password> <candidate|company>
  login <email> <password>
  logout
  profile
  onboard <candidate|company>

Candidate:
  jobs                             show the current result set
  filter set <field> <value>       field: work_type job_type experience_level salary_range
  filter skill <skill>             add a required skill
  filter show
  apply <job-id>
  applications                     list my applications
  application <job-id>             show the listing behind an application
  withdraw <application-id>

Company:
  listings                         list my postings
  draft set <field> <value>        field: title description location work_type
                                   job_type experience_level experience_months salary_range
  draft skill <skill>
  draft show
  listing create
  listing delete <listing-id>
  applicants                       ranked applicant pools
  applicant <candidate-id>         full candidate profile

  quit
`)
}

// ==========================
// Auth & Profile
// ==========================

func (s *Shell) cmdRegister(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return commonerrors.NewValidationError("usage: register <username> <email> <password> <role>")
	}
	if err := s.client.Register(ctx, args[0], args[1], args[2], args[3]); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "account created, log in to continue")
	return nil
}

func (s *Shell) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return commonerrors.NewValidationError("usage: login <email> <password>")
	}
	result, err := s.client.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	s.role = result.Role
	fmt.Fprintf(s.out, "logged in as %s\n", result.Role)
	if result.NeedsOnboarding {
		fmt.Fprintf(s.out, "profile incomplete, run: onboard %s\n", result.Role)
	}
	return nil
}

func (s *Shell) cmdLogout(ctx context.Context) error {
	err := s.client.Logout(ctx)
	if resetErr := s.resetSession(ctx); resetErr != nil {
		s.logger.Warn("session reset failed", map[string]interface{}{
			"error": resetErr.Error(),
		})
	}
	s.role = ""
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "logged out")
	return nil
}

func (s *Shell) cmdProfile(ctx context.Context) error {
	profile, err := s.client.GetProfile(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s <%s> role=%s onboarding-needed=%t\n",
		profile.Username, profile.Email, profile.Role, profile.NeedsOnboarding)
	return nil
}

func (s *Shell) cmdOnboard(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return commonerrors.NewValidationError("usage: onboard <candidate|company>")
	}
	switch args[0] {
	case models.RoleCandidate:
		return s.onboardCandidate(ctx)
	case models.RoleCompany:
		return s.onboardCompany(ctx)
	default:
		return commonerrors.NewValidationError("role must be candidate or company")
	}
}

func (s *Shell) onboardCandidate(ctx context.Context) error {
	form := models.CandidateForm{
		FullName:      s.ask("full name"),
		Phone:         s.ask("phone"),
		Location:      s.ask("location"),
		LinkedInURL:   s.ask("linkedin url (optional)"),
		PortfolioURL:  s.ask("portfolio url (optional)"),
		CurrentStatus: s.ask("current status"),
		Skills:        splitList(s.ask("skills (comma separated)")),
		ExpectedRoles: splitList(s.ask("expected roles (comma separated)")),
	}
	if years, err := strconv.Atoi(s.ask("experience years")); err == nil {
		form.ExperienceYears = years
	}
	resumePath := s.ask("resume file path")

	if err := s.onboarding.CompleteCandidate(ctx, form, resumePath); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "candidate profile completed")
	return nil
}

func (s *Shell) onboardCompany(ctx context.Context) error {
	form := models.CompanyForm{
		CompanyName:        s.ask("company name"),
		CompanyWebsite:     s.ask("website (optional)"),
		CompanySize:        s.ask("size (SMALL/MEDIUM/LARGE)"),
		Industry:           s.ask("industry"),
		ContactPerson:      s.ask("contact person"),
		ContactPhone:       s.ask("contact phone"),
		CompanyDescription: s.ask("description"),
	}
	if err := s.onboarding.CompleteCompany(ctx, form); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "company profile completed")
	return nil
}

// ==========================
// Candidate Commands
// ==========================

func (s *Shell) cmdJobs(ctx context.Context) {
	s.search.Refresh(ctx)
	s.printJobs()
}

func (s *Shell) cmdFilter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return commonerrors.NewValidationError("usage: filter <set|skill|show> ...")
	}
	switch args[0] {
	case "set":
		if len(args) < 3 {
			return commonerrors.NewValidationError("usage: filter set <field> <value>")
		}
		if err := s.search.SetField(ctx, args[1], strings.Join(args[2:], " ")); err != nil {
			return err
		}
		s.printJobs()
	case "skill":
		if len(args) < 2 {
			return commonerrors.NewValidationError("usage: filter skill <skill>")
		}
		s.search.AddSkill(ctx, strings.Join(args[1:], " "))
		s.printJobs()
	case "show":
		criteria := s.search.Criteria()
		fmt.Fprintf(s.out, "work_type=%q job_type=%q experience_level=%q salary_range=%q skills=%v\n",
			criteria.WorkType, criteria.JobType, criteria.ExperienceLevel,
			criteria.SalaryRange, criteria.RequiredSkills)
	default:
		return commonerrors.NewValidationError("usage: filter <set|skill|show> ...")
	}
	return nil
}

func (s *Shell) printJobs() {
	if msg := s.search.ErrMessage(); msg != "" {
		fmt.Fprintln(s.out, msg)
		return
	}
	jobs := s.search.Jobs()
	if len(jobs) == 0 {
		fmt.Fprintln(s.out, "no jobs match the current filters")
		return
	}
	for _, job := range jobs {
		applied := ""
		if s.applications.HasApplied(context.Background(), job.ID) {
			applied = " [applied]"
		}
		fmt.Fprintf(s.out, "%s  %s  %s/%s  %s  %s%s\n",
			job.ID, job.Title, job.WorkType, job.JobType, job.Location, job.SalaryRange, applied)
	}
}

func (s *Shell) cmdApply(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return commonerrors.NewValidationError("usage: apply <job-id>")
	}
	if err := s.applications.Apply(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "application submitted")
	return nil
}

func (s *Shell) cmdApplications(ctx context.Context) error {
	if err := s.applications.Refresh(ctx); err != nil {
		return err
	}
	apps := s.applications.Visible()
	if len(apps) == 0 {
		fmt.Fprintln(s.out, "no applications yet")
		return nil
	}
	for _, app := range apps {
		fmt.Fprintf(s.out, "%s  job=%s  %s  %s\n",
			app.ApplicationID, app.JobID, app.Status, app.AppliedAt.Format("2006-01-02"))
	}
	return nil
}

func (s *Shell) cmdApplicationDetail(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return commonerrors.NewValidationError("usage: application <job-id>")
	}
	job, err := s.applications.ListingDetail(ctx, args[0])
	if err != nil {
		return err
	}
	s.printJobDetail(*job)
	return nil
}

func (s *Shell) cmdWithdraw(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return commonerrors.NewValidationError("usage: withdraw <application-id>")
	}
	err := s.applications.Withdraw(ctx, args[0])
	if commonerrors.IsCode(err, commonerrors.ErrCodeConfirmationDeclined) {
		fmt.Fprintln(s.out, "kept")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "application withdrawn")
	return nil
}

// ==========================
// Company Commands
// ==========================

func (s *Shell) cmdListings(ctx context.Context) error {
	if err := s.listings.Refresh(ctx); err != nil {
		return err
	}
	jobs := s.listings.Listings()
	if len(jobs) == 0 {
		fmt.Fprintln(s.out, "no listings yet")
		return nil
	}
	for _, job := range jobs {
		fmt.Fprintf(s.out, "%s  %s  %s/%s  %s\n",
			job.ID, job.Title, job.WorkType, job.JobType, job.SalaryRange)
	}
	return nil
}

func (s *Shell) cmdDraft(args []string) error {
	if len(args) == 0 {
		return commonerrors.NewValidationError("usage: draft <set|skill|show> ...")
	}
	draft := s.listings.Draft()
	switch args[0] {
	case "set":
		if len(args) < 3 {
			return commonerrors.NewValidationError("usage: draft set <field> <value>")
		}
		return draft.SetField(args[1], strings.Join(args[2:], " "))
	case "skill":
		if len(args) < 2 {
			return commonerrors.NewValidationError("usage: draft skill <skill>")
		}
		draft.AddSkill(strings.Join(args[1:], " "))
	case "show":
		form := draft.Form()
		fmt.Fprintf(s.out, "title=%q description=%q location=%q\n", form.Title, form.Description, form.Location)
		fmt.Fprintf(s.out, "work_type=%q job_type=%q experience_level=%q months=%q salary=%q skills=%v\n",
			form.WorkType, form.JobType, form.ExperienceLevel,
			form.ExperienceMonths, form.SalaryRange, form.RequiredSkills)
	default:
		return commonerrors.NewValidationError("usage: draft <set|skill|show> ...")
	}
	return nil
}

func (s *Shell) cmdListing(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return commonerrors.NewValidationError("usage: listing <create|delete> ...")
	}
	switch args[0] {
	case "create":
		if err := s.listings.Create(ctx); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "listing created")
	case "delete":
		if len(args) != 2 {
			return commonerrors.NewValidationError("usage: listing delete <listing-id>")
		}
		err := s.listings.Delete(ctx, args[1])
		if commonerrors.IsCode(err, commonerrors.ErrCodeConfirmationDeclined) {
			fmt.Fprintln(s.out, "kept")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, "listing deleted")
	default:
		return commonerrors.NewValidationError("usage: listing <create|delete> ...")
	}
	return nil
}

func (s *Shell) cmdApplicants(ctx context.Context) {
	s.review.Refresh(ctx)
	pools := s.review.Pools()
	if len(pools) == 0 {
		fmt.Fprintln(s.out, "no applicants")
		return
	}
	for _, pool := range pools {
		fmt.Fprintf(s.out, "job %s (%d applicants)\n", pool.JobID, len(pool.Applications))
		for _, app := range pool.Applications {
			fmt.Fprintf(s.out, "  %3d  %s  %s  candidate=%s  skills=%v\n",
				app.ScoreValue(), app.CandidateName, app.Status, app.CandidateID, app.CandidateSkills)
		}
	}
}

func (s *Shell) cmdApplicant(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return commonerrors.NewValidationError("usage: applicant <candidate-id>")
	}
	candidate, err := s.review.SelectApplicant(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s  %s  %s\n", candidate.FullName, candidate.Location, candidate.CurrentStatus)
	fmt.Fprintf(s.out, "experience: %d years  skills: %v  roles: %v\n",
		candidate.Experience, candidate.Skills, candidate.ExpectedRoles)
	fmt.Fprintf(s.out, "resume: %s\n", candidate.ResumeURL)
	return nil
}

// ==========================
// Helpers
// ==========================

func (s *Shell) printJobDetail(job models.Job) {
	fmt.Fprintf(s.out, "%s\n%s\n", job.Title, job.Description)
	fmt.Fprintf(s.out, "%s  %s/%s  %s  %d months experience  skills=%v\n",
		job.Location, job.WorkType, job.JobType, job.SalaryRange,
		job.ExperienceMonths, job.RequiredSkills)
}

func (s *Shell) ask(prompt string) string {
	fmt.Fprintf(s.out, "%s: ", prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
