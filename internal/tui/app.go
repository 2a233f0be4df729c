package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Togss/esportsranker/internal/config"
	"github.com/Togss/esportsranker/internal/database/repository"
	"github.com/Togss/esportsranker/internal/service"
	"github.com/Togss/esportsranker/internal/session"
)

// App ties the three screens together.
type App struct {
	ctx      context.Context
	cfg      config.Config
	repos    Repos
	services Services
	store    *session.Store
	keys     KeyMap

	screen Screen
	modal  modalState

	status    string
	statusErr bool

	// session snapshot, kept current by the store subscription
	session   session.State
	showToken bool
	deviceID  string

	// dashboard
	statusCounts map[string]int
	teamCount    int
	playerCount  int

	// tournaments
	loading bool
	loadSeq int
	names   []string
	byName  map[string]repository.Tournament
	cursor  int
	spin    spinner.Model

	// login
	codeInput textinput.Model

	// add-tournament modal
	addInputs []textinput.Model
	addFocus  int

	dateFormat string
}

type Repos struct {
	Tournaments *repository.TournamentRepo
	Teams       *repository.TeamRepo
	Players     *repository.PlayerRepo
}

type Services struct {
	Loader      *service.TournamentLoader
	Tournaments *service.TournamentService
	Maintenance *service.MaintenanceService
}

type modalState string

const (
	modalNone          modalState = ""
	modalAddTournament modalState = "addTournament"
	modalConfirmReset  modalState = "confirmReset"
)

// Fields of the add-tournament modal, in focus order.
const (
	addFieldName = iota
	addFieldRegion
	addFieldTier
	addFieldStart
	addFieldEnd
	addFieldPrize
)

// New builds the app model. The store subscription keeps the model's
// session snapshot current; notifications arrive synchronously on the
// goroutine that dispatched the login or logout.
func New(ctx context.Context, cfg config.Config, repos Repos, services Services, store *session.Store, deviceID string) *App {
	if store == nil {
		store = session.NewStore(nil)
	}

	ti := textinput.New()
	ti.Placeholder = "ABC123-XYZ"
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.CharLimit = 64
	ti.Width = 32
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	df := cfg.UI.DateFormat
	if df == "" {
		df = "02 Jan 2006"
	}

	a := &App{
		ctx:        ctx,
		cfg:        cfg,
		repos:      repos,
		services:   services,
		store:      store,
		keys:       DefaultKeyMap(),
		screen:     Resolve("/"),
		deviceID:   deviceID,
		spin:       sp,
		codeInput:  ti,
		addInputs:  newAddInputs(),
		dateFormat: df,
	}
	a.session = store.State()
	store.Subscribe(func(st session.State) { a.session = st })
	return a
}

func newAddInputs() []textinput.Model {
	mk := func(placeholder string, limit, width int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		ti.CharLimit = limit
		ti.Width = width
		return ti
	}
	return []textinput.Model{
		addFieldName:   mk("MSC 2025", 80, 40),
		addFieldRegion: mk("PH", 8, 10),
		addFieldTier:   mk("S", 4, 6),
		addFieldStart:  mk("2025-07-01", 10, 12),
		addFieldEnd:    mk("2025-07-20", 10, 12),
		addFieldPrize:  mk("1000000", 12, 14),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.loadDashboard())
}

// navigate resolves a path against the route table and mounts the target
// screen. Navigating to the screen already shown is a no-op so a mount's
// load is never re-entered.
func (a *App) navigate(path string) tea.Cmd {
	next := Resolve(path)
	if next == a.screen {
		return nil
	}
	a.screen = next
	a.modal = modalNone
	switch next {
	case ScreenTournaments:
		return a.mountTournaments()
	case ScreenDashboard:
		return a.loadDashboard()
	case ScreenLogin:
		a.codeInput.Focus()
		return textinput.Blink
	}
	return nil
}

// mountTournaments resets the screen's local state and triggers its load.
// The bumped sequence number makes any still-in-flight result stale.
func (a *App) mountTournaments() tea.Cmd {
	a.loadSeq++
	a.loading = true
	a.names = nil
	a.byName = nil
	a.cursor = 0
	return tea.Batch(a.spin.Tick, a.loadTournaments(a.loadSeq))
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		if a.screen == ScreenLogin {
			return a.handleLoginKey(m)
		}
		return a.handleScreenKey(m)
	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(m)
		return a, cmd
	case namesMsg:
		if m.seq != a.loadSeq {
			return a, nil
		}
		a.loading = false
		a.names = m.names
		a.byName = m.byName
		if a.cursor >= len(a.names) {
			a.cursor = 0
		}
		return a, nil
	case dashboardMsg:
		a.statusCounts = m.counts
		a.teamCount = m.teams
		a.playerCount = m.players
		return a, nil
	case addDoneMsg:
		text := fmt.Sprintf("added %s (%s)", m.result.Slug, m.result.Status)
		warn := false
		if len(m.result.Duplicates) > 0 {
			text += "; similar existing: " + strings.Join(m.result.Duplicates, ", ")
			warn = true
		}
		a.setStatus(text, warn)
		return a, a.mountTournaments()
	case resetDoneMsg:
		a.setStatus("database reset (empty)", false)
		return a, tea.Batch(a.mountTournaments(), a.loadDashboard())
	case errMsg:
		a.setStatus("error: "+m.Error(), true)
		return a, nil
	}
	return a, nil
}

func (a *App) View() string {
	var body string
	switch a.screen {
	case ScreenLogin:
		body = a.renderLogin()
	case ScreenTournaments:
		body = a.renderTournaments()
	default:
		body = a.renderDashboard()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	if a.status != "" {
		body += "\n" + a.renderStatus()
	}
	return body
}

func (a *App) setStatus(text string, isErr bool) {
	a.status, a.statusErr = text, isErr
}

// key handling

func (a *App) handleScreenKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Dashboard):
		a.status = ""
		return a, a.navigate("/dashboard")
	case key.Matches(m, a.keys.Tournaments):
		a.status = ""
		return a, a.navigate("/tournaments")
	case key.Matches(m, a.keys.Login):
		a.status = ""
		return a, a.navigate("/login")
	case key.Matches(m, a.keys.Logout):
		a.store.Logout()
		a.setStatus("signed out", false)
	case key.Matches(m, a.keys.ToggleToken):
		a.showToken = !a.showToken
	case key.Matches(m, a.keys.Up):
		if a.screen == ScreenTournaments && a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.screen == ScreenTournaments && a.cursor < len(a.names)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Add):
		if a.screen == ScreenTournaments {
			a.openAddModal()
			return a, textinput.Blink
		}
	case key.Matches(m, a.keys.Reload):
		if a.screen == ScreenTournaments {
			a.status = ""
			return a, a.mountTournaments()
		}
	case key.Matches(m, a.keys.Reset):
		if a.screen == ScreenTournaments {
			a.modal = modalConfirmReset
		}
	}
	return a, nil
}

func (a *App) handleLoginKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyCtrlC:
		return a, tea.Quit
	case tea.KeyEsc:
		a.status = ""
		return a, a.navigate("/dashboard")
	case tea.KeyEnter:
		code := a.codeInput.Value()
		a.store.LoginWithDeviceCode(code)
		if strings.TrimSpace(code) == "" {
			a.setStatus("enter a device code", true)
			return a, nil
		}
		a.codeInput.Reset()
		a.setStatus("signed in", false)
		return a, a.navigate("/dashboard")
	}
	var cmd tea.Cmd
	a.codeInput, cmd = a.codeInput.Update(m)
	return a, cmd
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}
	switch a.modal {
	case modalConfirmReset:
		switch m.String() {
		case "y", "Y":
			a.modal = modalNone
			return a, a.resetCmd()
		case "n", "N", "esc":
			a.modal = modalNone
		}
	case modalAddTournament:
		switch m.Type {
		case tea.KeyEsc:
			a.modal = modalNone
			a.status = ""
		case tea.KeyEnter:
			draft, err := a.draftFromInputs()
			if err != nil {
				a.setStatus(err.Error(), true)
				return a, nil
			}
			a.modal = modalNone
			return a, a.addTournamentCmd(draft)
		case tea.KeyTab, tea.KeyDown:
			a.focusAdd(a.addFocus + 1)
		case tea.KeyShiftTab, tea.KeyUp:
			a.focusAdd(a.addFocus - 1)
		default:
			var cmd tea.Cmd
			a.addInputs[a.addFocus], cmd = a.addInputs[a.addFocus].Update(m)
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) openAddModal() {
	a.addInputs = newAddInputs()
	a.addFocus = 0
	a.addInputs[addFieldName].Focus()
	a.modal = modalAddTournament
	a.status = ""
}

func (a *App) focusAdd(i int) {
	a.addFocus = (i + len(a.addInputs)) % len(a.addInputs)
	for j := range a.addInputs {
		if j == a.addFocus {
			a.addInputs[j].Focus()
		} else {
			a.addInputs[j].Blur()
		}
	}
}

// draftFromInputs parses the add-modal fields. Dates are ISO (YYYY-MM-DD),
// prize is whole USD; blank optional fields stay nil.
func (a *App) draftFromInputs() (service.TournamentDraft, error) {
	var d service.TournamentDraft
	d.Name = strings.TrimSpace(a.addInputs[addFieldName].Value())
	if d.Name == "" {
		return d, fmt.Errorf("name is required")
	}
	d.Region = strings.ToUpper(strings.TrimSpace(a.addInputs[addFieldRegion].Value()))
	d.Tier = strings.ToUpper(strings.TrimSpace(a.addInputs[addFieldTier].Value()))
	start, err := parseDate(a.addInputs[addFieldStart].Value())
	if err != nil {
		return d, fmt.Errorf("start date: %w", err)
	}
	end, err := parseDate(a.addInputs[addFieldEnd].Value())
	if err != nil {
		return d, fmt.Errorf("end date: %w", err)
	}
	d.StartDate, d.EndDate = start, end
	if raw := strings.TrimSpace(a.addInputs[addFieldPrize].Value()); raw != "" {
		n, err := strconv.ParseInt(strings.ReplaceAll(raw, ",", ""), 10, 64)
		if err != nil || n < 0 {
			return d, fmt.Errorf("prize pool must be a whole USD amount")
		}
		d.PrizePoolUSD = &n
	}
	return d, nil
}

func parseDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, fmt.Errorf("want YYYY-MM-DD")
	}
	return &t, nil
}

// commands

func (a *App) loadTournaments(seq int) tea.Cmd {
	return func() tea.Msg {
		msg := namesMsg{seq: seq, names: []string{}}
		if a.services.Loader != nil {
			msg.names = a.services.Loader.LoadNames(a.ctx)
		}
		if a.repos.Tournaments != nil {
			rows, err := a.repos.Tournaments.List(a.ctx, repository.TournamentFilters{})
			if err == nil {
				msg.byName = make(map[string]repository.Tournament, len(rows))
				for _, row := range rows {
					msg.byName[row.Name] = row
				}
			}
		}
		return msg
	}
}

func (a *App) loadDashboard() tea.Cmd {
	return func() tea.Msg {
		if a.repos.Tournaments == nil {
			return dashboardMsg{}
		}
		counts, err := a.repos.Tournaments.CountByStatus(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		msg := dashboardMsg{counts: counts}
		if a.repos.Teams != nil {
			if msg.teams, err = a.repos.Teams.Count(a.ctx); err != nil {
				return errMsg{err}
			}
		}
		if a.repos.Players != nil {
			if msg.players, err = a.repos.Players.Count(a.ctx); err != nil {
				return errMsg{err}
			}
		}
		return msg
	}
}

func (a *App) addTournamentCmd(d service.TournamentDraft) tea.Cmd {
	return func() tea.Msg {
		if a.services.Tournaments == nil {
			return errMsg{fmt.Errorf("tournament service not configured")}
		}
		res, err := a.services.Tournaments.Add(a.ctx, d)
		if err != nil {
			return errMsg{err}
		}
		return addDoneMsg{result: res}
	}
}

func (a *App) resetCmd() tea.Cmd {
	return func() tea.Msg {
		if a.services.Maintenance == nil {
			return errMsg{fmt.Errorf("maintenance not configured")}
		}
		if err := a.services.Maintenance.Reset(a.ctx); err != nil {
			return errMsg{err}
		}
		return resetDoneMsg{}
	}
}

// messages

type namesMsg struct {
	seq    int
	names  []string
	byName map[string]repository.Tournament
}

type dashboardMsg struct {
	counts  map[string]int
	teams   int
	players int
}

type addDoneMsg struct {
	result service.AddResult
}

type resetDoneMsg struct{}

type errMsg struct{ error }
