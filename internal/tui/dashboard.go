// internal/tui/dashboard.go
// Package tui renders the interactive results dashboard. Every filter change
// recomputes the working set and all six views from scratch; the model holds
// no derived state beyond the current snapshot.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hawaiilawtech/mbebench/internal/analysis"
	"github.com/hawaiilawtech/mbebench/internal/appconfig"
	"github.com/hawaiilawtech/mbebench/internal/dataset"
	"github.com/hawaiilawtech/mbebench/internal/logging"
)

// viewState represents the current view or screen of the application.
type viewState int

const (
	// viewDashboard is the tabbed chart-and-table display.
	viewDashboard viewState = iota
	// viewPlatformFilter is the platform multi-select.
	viewPlatformFilter
	// viewModelFilter is the model multi-select.
	viewModelFilter
)

// tabTitles are the six dashboard views, in display order.
var tabTitles = []string{
	"Accuracy",
	"Correct Answers",
	"Categories",
	"Cost",
	"Time",
	"Questions",
}

const (
	tabAccuracy = iota
	tabRawCounts
	tabCategories
	tabCost
	tabTime
	tabQuestions
)

// snapshot is one full recomputation of every view over the working set.
type snapshot struct {
	working    *dataset.Table
	accuracy   []analysis.AccuracyRow
	rawCounts  []analysis.RawCountRow
	categories []analysis.CategoryRow
	pivot      analysis.Pivot
	cost       []analysis.EfficiencyRow
	costOK     bool
	latency    []analysis.EfficiencyRow
	latencyOK  bool
	questions  []analysis.QuestionRow
}

// Model is the main application model for the Bubble Tea dashboard.
type Model struct {
	cfg    *appconfig.Config
	table  *dataset.Table
	filter analysis.FilterState

	state        viewState
	activeTab    int
	platformList list.Model
	modelList    list.Model

	catSort  analysis.CategorySort
	catIndex int

	snap          snapshot
	width, height int
}

// filterItem is a selectable entry in a platform or model multi-select.
type filterItem struct {
	name     string
	selected bool
}

// Title returns the item label with its selection checkbox.
func (i filterItem) Title() string {
	if i.selected {
		return "[x] " + i.name
	}
	return "[ ] " + i.name
}

// Description returns an empty string; filter rows are single-line.
func (i filterItem) Description() string { return "" }

// FilterValue returns the item name, used for list filtering.
func (i filterItem) FilterValue() string { return i.name }

// New creates the dashboard model with every platform and model selected.
func New(cfg *appconfig.Config, table *dataset.Table) *Model {
	m := &Model{
		cfg:          cfg,
		table:        table,
		filter:       analysis.AllOf(table),
		platformList: newFilterList("Select AI Platforms", table.Platforms()),
		modelList:    newFilterList("Select AI Models", table.Models()),
	}
	m.recompute()
	return m
}

func newFilterList(title string, names []string) list.Model {
	items := make([]list.Item, len(names))
	for i, name := range names {
		items[i] = filterItem{name: name, selected: true}
	}
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return l
}

// recompute rebuilds the working set and every aggregate from the full table
// and the current filter state.
func (m *Model) recompute() {
	working := analysis.Apply(m.table, m.filter)
	human := m.cfg.HumanPlatformLabel()
	aliases := m.cfg.Aliases()

	snap := snapshot{
		working:   working,
		accuracy:  analysis.Accuracy(working, human),
		rawCounts: analysis.RawCounts(working, human),
		pivot:     analysis.CategoryPivot(working, aliases),
		questions: analysis.PerQuestion(working),
	}
	snap.cost, snap.costOK = analysis.CostEfficiency(working, human)
	snap.latency, snap.latencyOK = analysis.LatencyEfficiency(working, human)

	if m.catIndex >= len(snap.pivot.Categories) {
		m.catIndex = 0
	}
	snap.categories = analysis.Categories(working, aliases, m.catSort, m.sortCategory(snap.pivot))

	m.snap = snap
	logging.LogEvent("[DASHBOARD] recomputed: %d rows in working set, %d models", len(working.Rows), len(snap.accuracy))
}

// sortCategory returns the category currently driving the ByCategory sort.
func (m *Model) sortCategory(p analysis.Pivot) string {
	if len(p.Categories) == 0 {
		return ""
	}
	return p.Categories[m.catIndex]
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.platformList.SetSize(msg.Width-8, msg.Height-8)
		m.modelList.SetSize(msg.Width-8, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case viewPlatformFilter:
			return m.updateFilterList(&m.platformList, msg)
		case viewModelFilter:
			return m.updateFilterList(&m.modelList, msg)
		default:
			return m.updateDashboard(msg)
		}
	}
	return m, nil
}

func (m *Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "right", "l":
		m.activeTab = (m.activeTab + 1) % len(tabTitles)
	case "shift+tab", "left", "h":
		m.activeTab = (m.activeTab + len(tabTitles) - 1) % len(tabTitles)
	case "1", "2", "3", "4", "5", "6":
		m.activeTab = int(msg.String()[0] - '1')
	case "p":
		m.state = viewPlatformFilter
	case "m":
		m.state = viewModelFilter
	case "s":
		if m.activeTab == tabCategories {
			if m.catSort == analysis.SortByTotal {
				m.catSort = analysis.SortByCategory
			} else {
				m.catSort = analysis.SortByTotal
			}
			m.recompute()
		}
	case "c":
		if m.activeTab == tabCategories && len(m.snap.pivot.Categories) > 0 {
			m.catIndex = (m.catIndex + 1) % len(m.snap.pivot.Categories)
			m.recompute()
		}
	}
	return m, nil
}

func (m *Model) updateFilterList(l *list.Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case " ":
		if item, ok := l.SelectedItem().(filterItem); ok {
			item.selected = !item.selected
			return m, l.SetItem(l.Index(), item)
		}
		return m, nil
	case "a":
		return m, setAll(l, true)
	case "n":
		return m, setAll(l, false)
	case "enter":
		m.applyFilters()
		m.state = viewDashboard
		return m, nil
	case "esc":
		m.state = viewDashboard
		return m, nil
	}

	var cmd tea.Cmd
	*l, cmd = l.Update(msg)
	return m, cmd
}

func setAll(l *list.Model, selected bool) tea.Cmd {
	var cmds []tea.Cmd
	for i, it := range l.Items() {
		item, ok := it.(filterItem)
		if !ok {
			continue
		}
		item.selected = selected
		cmds = append(cmds, l.SetItem(i, item))
	}
	return tea.Batch(cmds...)
}

// applyFilters reads both selection lists into a fresh filter state and
// recomputes everything.
func (m *Model) applyFilters() {
	filter := analysis.FilterState{
		Platforms: make(map[string]bool),
		Models:    make(map[string]bool),
	}
	for _, it := range m.platformList.Items() {
		if item, ok := it.(filterItem); ok && item.selected {
			filter.Platforms[item.name] = true
		}
	}
	for _, it := range m.modelList.Items() {
		if item, ok := it.(filterItem); ok && item.selected {
			filter.Models[item.name] = true
		}
	}
	m.filter = filter
	m.recompute()
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.state {
	case viewPlatformFilter:
		return m.renderFilter(m.platformList)
	case viewModelFilter:
		return m.renderFilter(m.modelList)
	default:
		return m.renderDashboard()
	}
}

func (m *Model) renderFilter(l list.Model) string {
	footer := footerKeyStyle.Render("[space]") + footerStyle.Render(" toggle  ") +
		footerKeyStyle.Render("[a]") + footerStyle.Render(" all  ") +
		footerKeyStyle.Render("[n]") + footerStyle.Render(" none  ") +
		footerKeyStyle.Render("[enter]") + footerStyle.Render(" apply  ") +
		footerKeyStyle.Render("[esc]") + footerStyle.Render(" cancel")
	return containerStyle.Render(l.View() + "\n" + footer)
}

func (m *Model) renderDashboard() string {
	header := headerStyle.Render(" AI Model Performance on MBE Questions ")
	status := dimStyle.Render(fmt.Sprintf("%d of %d attempts selected, %d categories",
		len(m.snap.working.Rows), len(m.table.Rows), len(m.snap.working.Categories())))

	var tabs string
	for i, title := range tabTitles {
		if i == m.activeTab {
			tabs += activeTabStyle.Render(title)
		} else {
			tabs += tabStyle.Render(title)
		}
	}

	var content string
	switch m.activeTab {
	case tabAccuracy:
		content = m.renderAccuracy()
	case tabRawCounts:
		content = m.renderRawCounts()
	case tabCategories:
		content = m.renderCategories()
	case tabCost:
		content = m.renderCost()
	case tabTime:
		content = m.renderTime()
	case tabQuestions:
		content = m.renderQuestions()
	}

	footer := footerKeyStyle.Render("[tab]") + footerStyle.Render(" next view  ") +
		footerKeyStyle.Render("[p]") + footerStyle.Render(" platforms  ") +
		footerKeyStyle.Render("[m]") + footerStyle.Render(" models  ")
	if m.activeTab == tabCategories {
		footer += footerKeyStyle.Render("[s]") + footerStyle.Render(" sort mode  ") +
			footerKeyStyle.Render("[c]") + footerStyle.Render(" sort category  ")
	}
	footer += footerKeyStyle.Render("[q]") + footerStyle.Render(" quit")

	return containerStyle.Render(header + "  " + status + "\n" + tabs + "\n" + content + "\n" + footer)
}

// chartWidth returns the drawable chart width for the current terminal.
func (m *Model) chartWidth() int {
	w := m.width - 12
	if w < 40 {
		w = 40
	}
	if w > 110 {
		w = 110
	}
	return w
}

const chartHeight = 14
