// Package ui provides a Bubble Tea-based TUI for Verdant.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/calyptra/verdant/internal/catalog"
	"github.com/calyptra/verdant/internal/config"
	"github.com/calyptra/verdant/internal/debounce"
	"github.com/calyptra/verdant/internal/prefs"
	"github.com/calyptra/verdant/internal/query"
	"github.com/calyptra/verdant/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewBrowse View = iota
	ViewAdd
)

// noticeTTL is how long transient notices stay in the header.
const noticeTTL = 5 * time.Second

// Options configures the UI.
type Options struct {
	Context    context.Context
	Client     catalog.Fetcher
	Controller *state.Controller
	Search     *debounce.Coordinator
	Config     *config.Config
	ThemeName  string
	PrefsPath  string
	Prefs      prefs.Prefs
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	client     catalog.Fetcher
	controller *state.Controller
	search     *debounce.Coordinator
	config     *config.Config
	prefsPath  string

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot   state.Snapshot
	categories []string
	lastLoad   time.Time

	// Browse state
	criteria    query.Query
	searchInput textinput.Model
	searching   bool
	selectedRow int
	purchaseQty int

	// Add form state
	form addForm

	// Transient notice
	notice    string
	noticeErr bool
	noticeAt  time.Time

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = opts.Prefs.Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	purchaseQty := opts.Prefs.PurchaseQty
	if purchaseQty < 1 {
		purchaseQty = 1
	}

	input := textinput.New()
	input.Placeholder = "type to search"
	input.Prompt = "/ "
	input.CharLimit = 100

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		controller:  opts.Controller,
		search:      opts.Search,
		config:      opts.Config,
		prefsPath:   prefsPath,
		theme:       GetTheme(themeName),
		currentView: ViewBrowse,
		searchInput: input,
		purchaseQty: purchaseQty,
		form:        newAddForm(),
		// Init issues the first load; the periodic refresh measures from
		// here rather than from a commit that may never arrive.
		lastLoad: time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(),
	}
	if m.client != nil && m.controller != nil {
		cmds = append(cmds, m.loadCmd(), fetchCategoriesCmd(m.ctx, m.client))
	}
	if m.search != nil {
		cmds = append(cmds, waitForSearchCmd(m.search))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case searchMsg:
		// The quiet period elapsed; commit the text and revalidate.
		m.criteria = m.criteria.WithSearch(string(msg))
		load := m.loadCmd()
		return m, tea.Batch(load, waitForSearchCmd(m.search))

	case plantsMsg:
		if m.controller.FinishLoad(msg.seq, msg.plants, msg.err) {
			m.refreshSnapshot()
		}
		return m, nil

	case categoriesMsg:
		if msg.err != nil {
			m.setNotice("Categories unavailable: "+catalog.Reason(msg.err), true)
			return m, nil
		}
		m.categories = msg.categories
		return m, nil

	case createdMsg:
		return m.handleCreated(msg)

	case purchasedMsg:
		return m.handlePurchased(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	switch m.currentView {
	case ViewAdd:
		b.WriteString(m.renderForm())
	default:
		b.WriteString(m.renderFilterBar())
		b.WriteString("\n")
		b.WriteString(m.renderBrowse())
	}

	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.currentView == ViewAdd {
		return m.handleFormKey(msg)
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q", "e":
		if m.search != nil {
			m.search.Stop()
		}
		return m, tea.Quit

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "s":
		m.cycleStock()
		load := m.loadCmd()
		return m, load

	case "x":
		if m.criteria.IsEmpty() {
			return m, nil
		}
		m.criteria = m.criteria.Clear()
		m.searchInput.SetValue("")
		load := m.loadCmd()
		return m, load

	case "a":
		m.currentView = ViewAdd
		m.form = newAddForm()
		return m, textinput.Blink

	case "r":
		load := m.loadCmd()
		return m, load

	case "+", "=":
		m.purchaseQty++
		m.savePrefs()
		return m, nil

	case "-":
		if m.purchaseQty > 1 {
			m.purchaseQty--
			m.savePrefs()
		}
		return m, nil

	case "enter", "b":
		return m.purchaseSelected()

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx >= len(m.categories) {
			return m, nil
		}
		m.criteria = m.criteria.ToggleCategory(m.categories[idx])
		load := m.loadCmd()
		return m, load
	}

	return m.handleBrowseKey(msg)
}

// handleSearchKey routes keys to the search input and schedules debounced
// emission of the edited text.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "ctrl+c":
		if m.search != nil {
			m.search.Stop()
		}
		return m, tea.Quit
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if m.search != nil && m.searchInput.Value() != before {
		m.search.Trigger(m.searchInput.Value())
	}
	return m, cmd
}

// handleBrowseKey processes list navigation.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.snapshot.Plants)
	if count == 0 {
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "g", "home":
		m.selectedRow = 0
	case "G", "end":
		m.selectedRow = count - 1
	}

	return m, nil
}

// handleTick expires notices and triggers the periodic refresh.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd()}

	if m.notice != "" && time.Since(m.noticeAt) > noticeTTL {
		m.notice = ""
		m.noticeErr = false
	}

	if m.config != nil && m.config.RefreshEvery > 0 {
		every := time.Duration(m.config.RefreshEvery) * time.Second
		if !m.lastLoad.IsZero() && time.Since(m.lastLoad) >= every {
			cmds = append(cmds, m.loadCmd())
		}
	}

	return m, tea.Batch(cmds...)
}

// handleCreated processes the add-plant result. The catalog only changes
// after the server confirms; a rejected submission leaves the form open with
// the server's reason.
func (m Model) handleCreated(msg createdMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		reason := catalog.Reason(msg.err)
		if m.currentView == ViewAdd {
			m.form.err = reason
			m.form.submitting = false
			return m, nil
		}
		m.setNotice(reason, true)
		return m, nil
	}

	m.controller.Prepend(msg.plant)
	m.refreshSnapshot()
	m.currentView = ViewBrowse
	m.form = newAddForm()
	m.selectedRow = 0
	m.setNotice("Added "+msg.plant.Name, false)
	return m, nil
}

// handlePurchased applies the server-confirmed stock level in place.
func (m Model) handlePurchased(msg purchasedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setNotice(catalog.Reason(msg.err), true)
		return m, nil
	}

	m.controller.ApplyMutation(msg.plant.ID, msg.plant)
	m.refreshSnapshot()
	m.setNotice(msg.notice, false)
	return m, nil
}

// purchaseSelected issues a purchase for the highlighted plant.
func (m Model) purchaseSelected() (tea.Model, tea.Cmd) {
	plant := m.selectedPlant()
	if plant == nil {
		return m, nil
	}
	if !plant.InStock() {
		m.setNotice(plant.Name+" is out of stock", true)
		return m, nil
	}
	// Guard against the last-seen stock level; the server still has the
	// final say when the request lands.
	if m.purchaseQty > plant.Quantity {
		m.setNotice(fmt.Sprintf("Only %d of %s in stock", plant.Quantity, plant.Name), true)
		return m, nil
	}
	return m, purchaseCmd(m.ctx, m.client, plant.ID, m.purchaseQty)
}

// selectedPlant returns the highlighted plant, or nil when the list is empty.
func (m Model) selectedPlant() *catalog.Plant {
	if m.selectedRow < 0 || m.selectedRow >= len(m.snapshot.Plants) {
		return nil
	}
	return &m.snapshot.Plants[m.selectedRow]
}

// loadCmd issues a catalog load for the current criteria. The sequence number
// ties the eventual result back to this request so stale responses are
// discarded.
func (m *Model) loadCmd() tea.Cmd {
	if m.client == nil || m.controller == nil {
		return nil
	}

	seq := m.controller.BeginLoad()
	m.refreshSnapshot()
	m.lastLoad = time.Now()

	ctx, client, params := m.ctx, m.client, m.criteria.Params()
	return func() tea.Msg {
		plants, err := client.FetchPlants(ctx, params)
		return plantsMsg{seq: seq, plants: plants, err: err}
	}
}

// refreshSnapshot re-reads the collection and clamps the selection.
func (m *Model) refreshSnapshot() {
	m.snapshot = m.controller.Snapshot()
	if count := len(m.snapshot.Plants); count == 0 {
		m.selectedRow = 0
	} else {
		m.selectedRow = clamp(m.selectedRow, 0, count-1)
	}
}

// cycleStock advances the tri-state stock filter: all, in stock, out of stock.
func (m *Model) cycleStock() {
	switch current := m.criteria.InStock(); {
	case current == nil:
		v := true
		m.criteria = m.criteria.WithStock(&v)
	case *current:
		v := false
		m.criteria = m.criteria.WithStock(&v)
	default:
		m.criteria = m.criteria.WithStock(nil)
	}
}

// stockLabel returns the display label for the stock filter.
func (m Model) stockLabel() string {
	switch current := m.criteria.InStock(); {
	case current == nil:
		return "All"
	case *current:
		return "In stock"
	default:
		return "Out of stock"
	}
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
	m.noticeAt = time.Now()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:       m.theme.Name,
		PurchaseQty: m.purchaseQty,
	})
}

// Messages

type tickMsg time.Time

type searchMsg string

type plantsMsg struct {
	seq    uint64
	plants []catalog.Plant
	err    error
}

type categoriesMsg struct {
	categories []string
	err        error
}

type createdMsg struct {
	plant catalog.Plant
	err   error
}

type purchasedMsg struct {
	plant  catalog.Plant
	notice string
	err    error
}

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForSearchCmd blocks on the coordinator's channel and resolves when the
// quiet period produces an emission. Re-issued after every searchMsg.
func waitForSearchCmd(c *debounce.Coordinator) tea.Cmd {
	return func() tea.Msg {
		return searchMsg(<-c.C())
	}
}

func fetchCategoriesCmd(ctx context.Context, client catalog.Fetcher) tea.Cmd {
	return func() tea.Msg {
		categories, err := client.FetchCategories(ctx)
		return categoriesMsg{categories: categories, err: err}
	}
}

func createPlantCmd(ctx context.Context, client catalog.Fetcher, payload catalog.NewPlant) tea.Cmd {
	return func() tea.Msg {
		plant, err := client.CreatePlant(ctx, payload)
		return createdMsg{plant: plant, err: err}
	}
}

func purchaseCmd(ctx context.Context, client catalog.Fetcher, id string, quantity int) tea.Cmd {
	return func() tea.Msg {
		plant, notice, err := client.PurchasePlant(ctx, id, quantity)
		return purchasedMsg{plant: plant, notice: notice, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
