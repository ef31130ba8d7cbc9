package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/werk-cli/werk/internal/config"
	"github.com/werk-cli/werk/internal/duration"
	"github.com/werk-cli/werk/internal/hooks"
	"github.com/werk-cli/werk/internal/logging"
	"github.com/werk-cli/werk/internal/models"
	"github.com/werk-cli/werk/internal/osutil"
	"github.com/werk-cli/werk/internal/pathutil"
	"github.com/werk-cli/werk/internal/timeutil"
	"github.com/werk-cli/werk/internal/ui"
	"github.com/werk-cli/werk/store"
	"github.com/werk-cli/werk/timer"
	"github.com/werk-cli/werk/tracker"
)

const (
	envNoColor     = "NO_COLOR"
	envWerkNoColor = "WERK_NO_COLOR"
	metaEnv        = "werk"
)

var errDayRequired = errors.New("a day is required, e.g. 'werk day today'")

// env holds what beforeAction prepared for the commands.
type env struct {
	cfg       *config.Config
	logger    *slog.Logger
	logCloser io.Closer
}

func envFrom(ctx *cli.Context) *env {
	e, _ := ctx.App.Metadata[metaEnv].(*env)
	if e == nil {
		return &env{cfg: &config.Config{}, logger: slog.Default()}
	}

	return e
}

// dataFile is the configured data file or the backend's default one.
func (e *env) dataFile() string {
	if e.cfg.Store.Path != "" {
		return e.cfg.Store.Path
	}

	return pathutil.DataFilePath(store.DefaultFileName(e.cfg.Store.Backend))
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// stopHooks builds the actions configured to run after a stop.
func (e *env) stopHooks() ([]tracker.StopHook, error) {
	var hs []tracker.StopHook

	if e.cfg.Notifications.Enabled {
		hs = append(hs, hooks.NewNotification(""))
	}

	cmd, err := hooks.NewCommand(e.cfg.Settings.StopCmd)
	if err != nil {
		return nil, err
	}

	if cmd != nil {
		hs = append(hs, cmd)
	}

	return hs, nil
}

// openReport opens the data file for reading and returns an engine over it.
// Notices go to w.
func (e *env) openReport(w io.Writer) (*tracker.Engine, func(), error) {
	s, err := store.OpenReader(e.cfg.Store.Backend, e.dataFile())
	if err != nil {
		return nil, nil, err
	}

	engine, err := tracker.New(
		s,
		tracker.WithNotifier(ui.Notifier(w)),
		tracker.WithLogger(e.logger),
	)
	if err != nil {
		_ = s.Close()
		return nil, nil, err
	}

	return engine, func() { _ = s.Close() }, nil
}

// startAction handles the start command: it tracks the named project in the
// live timer until the user stops it.
func startAction(ctx *cli.Context) (err error) {
	e := envFrom(ctx)

	name := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
	if name == "" {
		return tracker.ErrEmptyName
	}

	stopHooks, err := e.stopHooks()
	if err != nil {
		return err
	}

	s, err := store.Open(e.cfg.Store.Backend, e.dataFile())
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, s.Close())
	}()

	notices := timer.NewNoticeLog()

	engine, err := tracker.New(
		s,
		tracker.WithNotifier(notices),
		tracker.WithLogger(e.logger),
		tracker.WithHooks(stopHooks...),
	)
	if err != nil {
		return err
	}

	if err = engine.Start(name); err != nil {
		return err
	}

	t := timer.New(engine, timer.Options{
		Logger:     e.logger,
		Notices:    notices,
		StatusFile: pathutil.StatusFilePath(),
		Style:      timer.NewStyle(e.cfg.Display.DarkTheme),
	})

	_, runErr := tea.NewProgram(t).Run()

	t.Close()

	// the program may end without a stop key, e.g. when it has no terminal
	stopErr := engine.Stop()

	for _, n := range notices.Drain() {
		ui.PrintNotice(ctx.App.Writer, n)
	}

	err = errors.Join(runErr, t.Err(), stopErr)

	// the folded time is still in memory, so one more save may rescue it
	if errors.Is(err, tracker.ErrPersistence) && engine.Save() == nil {
		e.logger.Info("save succeeded on retry")
		return runErr
	}

	return err
}

// listAction handles the list command which prints every project, or the
// named one.
func listAction(ctx *cli.Context) error {
	e := envFrom(ctx)
	w := ctx.App.Writer

	engine, done, err := e.openReport(w)
	if err != nil {
		return err
	}
	defer done()

	var projects []models.Project

	if ctx.Args().Present() {
		name := strings.Join(ctx.Args().Slice(), " ")

		p, err := engine.ListOne(name)
		if errors.Is(err, tracker.ErrProjectNotFound) {
			pterm.Warning.WithWriter(w).Println(err.Error())
			return nil
		}

		if err != nil {
			return err
		}

		projects = []models.Project{p}
	} else {
		projects = engine.ListAll()
	}

	if ctx.Bool("json") {
		return printJSON(w, projectsJSON(projects))
	}

	if len(projects) == 0 {
		pterm.Info.WithWriter(w).Println("No projects have been tracked yet")
		return nil
	}

	if ctx.Bool("table") {
		ui.PrintTable(ui.ProjectTable(projects), w)
		return nil
	}

	if len(projects) == 1 {
		pterm.Info.WithWriter(w).Printfln(
			"Displaying tracking information for project: %q",
			projects[0].Name,
		)
	}

	return ui.RenderProjects(w, projects)
}

type dayEntryJSON struct {
	Project string `json:"project"`
	Time    string `json:"time"`
}

type dayJSON struct {
	Day      string         `json:"day"`
	Projects []dayEntryJSON `json:"projects"`
	Total    string         `json:"total"`
}

// dayAction handles the day command which prints the time tracked on a day.
func dayAction(ctx *cli.Context) error {
	e := envFrom(ctx)
	w := ctx.App.Writer

	input := strings.Join(ctx.Args().Slice(), " ")
	if strings.TrimSpace(input) == "" {
		return errDayRequired
	}

	day, err := timeutil.ResolveDay(input, time.Now())
	if err != nil {
		return err
	}

	engine, done, err := e.openReport(w)
	if err != nil {
		return err
	}
	defer done()

	summary, err := engine.DayInfo(day)
	if errors.Is(err, tracker.ErrDayNotFound) {
		pterm.Warning.WithWriter(w).Println(err.Error())
		return nil
	}

	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		out := dayJSON{
			Day:   summary.Day,
			Total: duration.Format(summary.Total),
		}

		for _, entry := range summary.Entries {
			out.Projects = append(out.Projects, dayEntryJSON{
				Project: entry.Project,
				Time:    duration.Format(entry.Time),
			})
		}

		return printJSON(w, out)
	}

	pterm.Info.WithWriter(w).Printfln("Displaying tracking information for day %q", day)

	return ui.RenderDay(w, summary)
}

func projectsJSON(projects []models.Project) map[string]models.Project {
	out := make(map[string]models.Project, len(projects))

	for _, p := range projects {
		out[p.Name] = p
	}

	return out
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))

	return err
}

// statusAction handles the status command and prints the project tracked by
// a running timer.
func statusAction(ctx *cli.Context) error {
	e := envFrom(ctx)

	return timer.ReportStatus(ctx.App.Writer, e.dataFile(), pathutil.StatusFilePath())
}

// editConfigAction handles the edit-config command which opens the werk config
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	// Disable colour output if NO_COLOR or WERK_NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		cfg.Display.NoColor = true
	}

	if _, exists := os.LookupEnv(envWerkNoColor); exists {
		cfg.Display.NoColor = true
	}

	if cfg.Display.NoColor {
		disableStyling()
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	logger, closer := logging.New(pathutil.LogFilePath(), cfg.Log.Level)
	slog.SetDefault(logger)

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = make(map[string]any)
	}

	ctx.App.Metadata[metaEnv] = &env{
		cfg:       cfg,
		logger:    logger,
		logCloser: closer,
	}

	logger.Debug("config loaded", "backend", cfg.Store.Backend, "path", cfg.Store.Path)

	return nil
}

func afterAction(ctx *cli.Context) error {
	e := envFrom(ctx)

	e.logger.InfoContext(ctx.Context, "exiting werk")

	if e.logCloser != nil {
		return e.logCloser.Close()
	}

	return nil
}
