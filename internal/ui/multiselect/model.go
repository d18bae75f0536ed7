// Package multiselect implements a chips-style multi-select input: a text
// filter over a finite candidate set, selected items shown as removable
// chips, and a form-control surface for the host form.
package multiselect

import (
	"log"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"chipselect/internal/domain"
	"chipselect/internal/ui/focus"
	"chipselect/internal/ui/idgen"
	"chipselect/internal/ui/services/events"
	"chipselect/internal/ui/services/filter"
	"chipselect/internal/ui/services/selection"
)

// ControlType identifies this widget to field chrome
const ControlType = "chips-autocomplete"

const maxVisibleOptions = 8

// StatusProvider reports the validity computed by the form layer
type StatusProvider interface {
	Invalid() bool
}

// Options configures a new widget
type Options struct {
	Items       []*domain.Item
	Placeholder string
	Required    bool
	Disabled    bool

	Counter *idgen.Counter // defaults to idgen.Default
	Monitor focus.Monitor  // optional
	Host    Host           // defaults to an Element rooted at the widget id
	Status  StatusProvider // optional
	KeyMap  *KeyMap        // defaults to DefaultKeyMap
	Styles  *Styles        // defaults to NewStyles
}

// metadata holds the externally settable properties
type metadata struct {
	placeholder string
	required    bool
	disabled    bool
}

// Model is the multi-select widget
type Model struct {
	id   string
	meta metadata

	focused   bool
	touched   bool
	destroyed bool
	teardown  sync.Once

	selection    *selection.Service
	filter       *filter.Service
	input        textinput.Model
	stateChanges *events.Stream

	onChange  func([]domain.Value)
	onTouched func()

	monitor focus.Monitor
	host    Host
	status  StatusProvider

	panelOpen  bool
	cursor     int // index into the current suggestions
	chipCursor int // index into the selection, -1 when the input has the cursor
	width      int

	keys   KeyMap
	styles Styles
}

// New creates a widget. Its id is minted once, here, and never changes.
func New(opts Options) *Model {
	counter := opts.Counter
	if counter == nil {
		counter = idgen.Default
	}

	m := &Model{
		id: counter.Next(ControlType),
		meta: metadata{
			placeholder: opts.Placeholder,
			required:    opts.Required,
			disabled:    opts.Disabled,
		},
		selection:    selection.NewService(opts.Items),
		stateChanges: events.NewStream(),
		onChange:     func([]domain.Value) {},
		onTouched:    func() {},
		monitor:      opts.Monitor,
		host:         opts.Host,
		status:       opts.Status,
		chipCursor:   -1,
		keys:         DefaultKeyMap(),
		styles:       NewStyles(),
	}
	if m.host == nil {
		m.host = NewElement(m.id)
	}
	if opts.KeyMap != nil {
		m.keys = *opts.KeyMap
	}
	if opts.Styles != nil {
		m.styles = *opts.Styles
	}

	m.selection.SetGate(func() bool { return m.meta.disabled })
	m.filter = filter.NewService(m.selection.Available)

	m.input = textinput.New()
	m.input.Prompt = ""
	m.input.CharLimit = 64
	m.input.Width = 20

	return m
}

// Target returns the widget's text input as a focus target
func (m *Model) Target() focus.Focusable {
	return inputTarget{m: m}
}

// Host returns the widget's layout host
func (m *Model) Host() Host {
	return m.host
}

// SetStatusProvider sets the validity source used by ErrorState
func (m *Model) SetStatusProvider(p StatusProvider) {
	m.status = p
}

// SetItems replaces the candidate set. Current selections are dropped;
// write a value afterwards to restore them.
func (m *Model) SetItems(items []*domain.Item) {
	m.selection.Reset(items)
	m.cursor = 0
	m.chipCursor = -1
	m.stateChanges.Next()
}

// SetWidth sets the rendered width, borders included
func (m *Model) SetWidth(width int) {
	m.width = width
	if inner := width - 4; inner > 10 {
		m.input.Width = inner / 2
	}
}

// Available returns the items not currently selected
func (m *Model) Available() []*domain.Item {
	return m.selection.Available()
}

// Selected returns the chosen items in selection order
func (m *Model) Selected() []*domain.Item {
	return m.selection.Selected()
}

// Suggestions returns the items offered for the current query
func (m *Model) Suggestions() []*domain.Item {
	return m.filter.Collect()
}

// Query returns the text typed into the filter
func (m *Model) Query() string {
	return m.input.Value()
}

// PanelOpen reports whether the suggestion list is showing
func (m *Model) PanelOpen() bool {
	return m.panelOpen && m.focused && !m.meta.disabled
}

// Highlighted returns the suggestion under the cursor, or nil
func (m *Model) Highlighted() *domain.Item {
	if !m.PanelOpen() {
		return nil
	}
	suggestions := m.filter.Collect()
	if len(suggestions) == 0 {
		return nil
	}
	if m.cursor >= len(suggestions) {
		m.cursor = len(suggestions) - 1
	}
	return suggestions[m.cursor]
}

// ChipCursor returns the index of the highlighted chip, or -1
func (m *Model) ChipCursor() int {
	return m.chipCursor
}

// Toggle selects an available item or deselects a selected one, then
// reports the new value. Stale items and calls while disabled are ignored.
func (m *Model) Toggle(item *domain.Item) bool {
	if !m.selection.Toggle(item) {
		return false
	}
	m.notifyChange()
	return true
}

// ClearAll deselects every item and returns how many were deselected
func (m *Model) ClearAll() int {
	moved := m.selection.ClearAll()
	if moved > 0 {
		m.chipCursor = -1
		m.notifyChange()
	}
	return moved
}

// Destroy completes the change stream and stops focus tracking. Only the
// first call has an effect.
func (m *Model) Destroy() {
	m.teardown.Do(func() {
		m.destroyed = true
		m.panelOpen = false
		m.stateChanges.Complete()
		if m.monitor != nil {
			m.monitor.StopMonitoring(m.id)
		}
	})
}

// Destroyed reports whether Destroy has run
func (m *Model) Destroyed() bool {
	return m.destroyed
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refocusMsg:
		if msg.id != m.id {
			return m, nil
		}
		return m, m.refocus()

	case focus.ChangedMsg:
		if m.destroyed {
			return m, nil
		}
		if m.host.Contains(msg.Blurred) {
			m.OnFocusOut(FocusEvent{RelatedTarget: msg.Focused})
		}
		if m.host.Contains(msg.Focused) {
			m.OnFocusIn(FocusEvent{RelatedTarget: msg.Blurred})
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.destroyed || !m.focused {
		return nil
	}
	if m.meta.disabled {
		if key.Matches(msg, m.keys.Dismiss) {
			m.panelOpen = false
		}
		return nil
	}

	empty := m.input.Value() == ""

	switch {
	case key.Matches(msg, m.keys.ClearAll):
		m.ClearAll()
		return m.clearFilter()

	case key.Matches(msg, m.keys.Up):
		m.panelOpen = true
		m.moveCursor(-1)
		return nil

	case key.Matches(msg, m.keys.Down):
		m.panelOpen = true
		m.moveCursor(1)
		return nil

	case key.Matches(msg, m.keys.Dismiss):
		m.panelOpen = false
		m.chipCursor = -1
		return nil

	case m.chipCursor >= 0 && key.Matches(msg, m.keys.RemoveChip, m.keys.RemoveLast):
		return m.removeChip(m.chipCursor)

	case key.Matches(msg, m.keys.Select):
		if item := m.Highlighted(); item != nil {
			m.Toggle(item)
			cmd := m.clearFilter()
			m.panelOpen = true
			return cmd
		}
		return m.add()

	case key.Matches(msg, m.keys.Separator):
		return m.add()

	case empty && key.Matches(msg, m.keys.ChipLeft):
		m.moveChipCursor(-1)
		return nil

	case empty && m.chipCursor >= 0 && key.Matches(msg, m.keys.ChipRight):
		m.moveChipCursor(1)
		return nil

	case empty && key.Matches(msg, m.keys.RemoveLast):
		return m.removeChip(m.selection.GetCount() - 1)
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.filter.SetQuery(after)
		m.cursor = 0
		m.chipCursor = -1
		m.panelOpen = true
	}
	return cmd
}

// add ends the typed token: the text is discarded and the list reopened
func (m *Model) add() tea.Cmd {
	m.panelOpen = true
	return m.clearFilter()
}

// clearFilter empties the query and schedules the input to be refocused
func (m *Model) clearFilter() tea.Cmd {
	m.input.SetValue("")
	m.filter.SetQuery(nil)
	m.cursor = 0
	return m.OnContainerClick()
}

func (m *Model) removeChip(index int) tea.Cmd {
	selected := m.selection.Selected()
	if index < 0 || index >= len(selected) {
		return nil
	}
	m.Toggle(selected[index])

	if count := m.selection.GetCount(); m.chipCursor >= count {
		m.chipCursor = count - 1
	}
	return m.clearFilter()
}

func (m *Model) moveCursor(delta int) {
	n := len(m.filter.Collect())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
}

func (m *Model) moveChipCursor(delta int) {
	n := m.selection.GetCount()
	if n == 0 {
		m.chipCursor = -1
		return
	}
	if m.chipCursor < 0 {
		if delta < 0 {
			m.chipCursor = n - 1
		}
		return
	}
	next := m.chipCursor + delta
	switch {
	case next >= n:
		m.chipCursor = -1
	case next < 0:
		m.chipCursor = 0
	default:
		m.chipCursor = next
	}
}

func (m *Model) refocus() tea.Cmd {
	if m.destroyed {
		log.Printf("multiselect %s: refocus after teardown ignored", m.id)
		return nil
	}
	if m.meta.disabled {
		return nil
	}
	if m.monitor != nil {
		return m.monitor.FocusVia(m.Target(), focus.OriginProgram)
	}
	return m.input.Focus()
}

// notifyChange reports the new value to the form and to chrome
func (m *Model) notifyChange() {
	if m.destroyed {
		return
	}
	m.onChange(m.selection.Values())
	m.stateChanges.Next()
}

// inputTarget adapts the text input to focus.Focusable
type inputTarget struct {
	m *Model
}

func (t inputTarget) FocusID() string {
	return t.m.id + "-input"
}

func (t inputTarget) Focus() tea.Cmd {
	if t.m.destroyed || t.m.meta.disabled {
		return nil
	}
	return t.m.input.Focus()
}

func (t inputTarget) Blur() {
	t.m.input.Blur()
}
