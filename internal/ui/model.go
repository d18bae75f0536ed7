// Package ui hosts the multi-select field in a one-field form: a label,
// the field, a Submit button and a help line.
package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chipselect/internal/config"
	"chipselect/internal/domain"
	"chipselect/internal/eventbus"
	"chipselect/internal/forms"
	"chipselect/internal/ui/focus"
	"chipselect/internal/ui/idgen"
	"chipselect/internal/ui/multiselect"
	"chipselect/internal/ui/views"
)

const (
	submitID      = "submit"
	maxFieldWidth = 64
	statusTimeout = 3 * time.Second
)

// Result is what the form produced when the program ended
type Result struct {
	Values    []domain.Value
	Submitted bool
}

// Options configures the model. Zero values select the defaults.
type Options struct {
	Counter *idgen.Counter
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	width  int
	height int
	help   help.Model
	keys   KeyMap

	ring     *focus.Ring
	field    *multiselect.Model
	chrome   *views.FieldChrome
	control  *forms.Control
	submit   *views.Button
	renderer *views.Renderer

	initial []domain.Value
	result  Result

	statusMessage string
	statusError   bool

	// Field rows on screen, recorded by View for mouse hit tests
	fieldTop    int
	fieldBottom int

	inPagerMode bool
	helpOps     *HelpOps
	program     *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, opts Options) (*Model, error) {
	items, err := cfg.Candidates()
	if err != nil {
		return nil, fmt.Errorf("invalid items: %w", err)
	}
	initial, err := cfg.InitialValue()
	if err != nil {
		return nil, fmt.Errorf("invalid value: %w", err)
	}

	var validators []forms.Validator
	if cfg.Required {
		validators = append(validators, forms.Required)
	}
	if cfg.MaxItems > 0 {
		validators = append(validators, forms.MaxItems(cfg.MaxItems))
	}

	m := &Model{
		bus:      bus,
		config:   cfg,
		help:     help.New(),
		keys:     DefaultKeyMap(),
		ring:     focus.NewRing(),
		submit:   views.NewButton(submitID, "Submit"),
		renderer: views.NewRenderer(nil),
		initial:  initial,
		helpOps:  NewHelpOps(nil),
	}

	m.field = multiselect.New(multiselect.Options{
		Items:       items,
		Placeholder: cfg.Placeholder,
		Required:    cfg.Required,
		Counter:     opts.Counter,
		Monitor:     m.ring,
	})
	m.ring.Register(m.field.ID(), m.field.Target())
	m.ring.Register(submitID, m.submit)

	m.control = forms.NewControl(initial, validators...)
	m.control.OnValueChange(m.publishValue)
	m.control.OnTouched(func() {
		m.publish(eventbus.TouchedEvent{FieldID: m.field.ID()})
	})
	if cfg.Disabled {
		m.control.Disable()
	}
	forms.Bind(m.control, m.field)
	m.field.SetStatusProvider(m.control)

	m.chrome = views.NewFieldChrome(m.field, cfg.Label, cfg.Hint, m.renderer.Styles())
	m.chrome.SetErrorText(m.errorText)

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Field returns the hosted widget
func (m *Model) Field() *multiselect.Model {
	return m.field
}

// Control returns the form control bound to the field
func (m *Model) Control() *forms.Control {
	return m.control
}

// FocusedID returns the id of the focused target
func (m *Model) FocusedID() string {
	return m.ring.Current()
}

// Result returns the submitted value, if any
func (m *Model) Result() Result {
	return m.result
}

// StatusMessage returns the status line text
func (m *Model) StatusMessage() string {
	return m.statusMessage
}

// Close tears the field down
func (m *Model) Close() {
	m.chrome.Close()
	m.field.Destroy()
}

// Init focuses the field
func (m *Model) Init() tea.Cmd {
	return m.ring.Focus(m.field.Target().FocusID(), focus.OriginProgram)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.field.SetWidth(min(msg.Width-4, maxFieldWidth))
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case focus.ChangedMsg:
		_, cmd := m.field.Update(msg)
		return m, cmd

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			return m, m.setStatus("Help is not available", true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusError = false
		return m, nil
	}

	// Everything else (refocus requests, cursor blinks) belongs to the field
	_, cmd := m.field.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m.fetchHelpPager(NewHelpRenderer(m.helpKeys()).RenderHelpContent())

	case key.Matches(msg, m.keys.Next):
		return m.ring.Next()

	case key.Matches(msg, m.keys.Prev):
		return m.ring.Prev()

	case key.Matches(msg, m.keys.Disable):
		if m.control.Disabled() {
			m.control.Enable()
			return m.setStatus("Field enabled", false)
		}
		m.control.Disable()
		return m.setStatus("Field disabled", false)

	case key.Matches(msg, m.keys.Reset):
		m.control.SetValue(m.initial)
		return m.setStatus("Value reset", false)

	case m.submit.Focused() && key.Matches(msg, m.keys.Submit):
		return m.submitForm()
	}

	if m.ring.Current() == m.field.Target().FocusID() {
		_, cmd := m.field.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if msg.Y < m.fieldTop || msg.Y >= m.fieldBottom {
		return nil
	}
	return tea.Batch(
		m.ring.Focus(m.field.Target().FocusID(), focus.OriginMouse),
		m.field.OnContainerClick(),
	)
}

func (m *Model) submitForm() tea.Cmd {
	values := m.control.Value()
	valid := !m.control.Invalid()
	m.publish(eventbus.SubmittedEvent{FieldID: m.field.ID(), Values: values, Valid: valid})

	if !valid {
		log.Printf("Submit rejected: %v", m.control.Err())
		return m.setStatus(m.errorText(), true)
	}

	m.result = Result{Values: values, Submitted: true}
	m.statusMessage = "Submitted"
	m.statusError = false
	return tea.Quit
}

// errorText describes the first validation error for the error line
func (m *Model) errorText() string {
	err := m.control.Err()
	if err == nil {
		return ""
	}
	var limit *forms.LimitError
	switch {
	case errors.Is(err, forms.ErrRequired):
		return fmt.Sprintf("%s is required", m.config.Label)
	case errors.As(err, &limit):
		return fmt.Sprintf("Select at most %d", limit.Limit)
	default:
		return err.Error()
	}
}

func (m *Model) publishValue(values []domain.Value) {
	m.publish(eventbus.ValueChangedEvent{FieldID: m.field.ID(), Values: values})
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.statusMessage = text
	m.statusError = isError
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: fmt.Errorf("program not set")}
		}
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) helpKeys() helpKeys {
	return helpKeys{
		form:       m.keys,
		field:      multiselect.DefaultKeyMap(),
		fieldFocus: m.ring.Current() == m.field.Target().FocusID(),
	}
}

// View renders the form
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	styles := m.renderer.Styles()
	title := m.config.Label
	if title == "" {
		title = "chipselect"
	}

	field := m.chrome.Render(m.field.View())

	// Main padding, then the title and its margin, then the label line
	m.fieldTop = styles.Main.GetPaddingTop() + lipgloss.Height(styles.Title.Render(title)) + 1
	m.fieldBottom = m.fieldTop + lipgloss.Height(m.field.View())

	helpText := ""
	if m.config.UISettings.ShowHelp {
		helpText = m.help.View(m.helpKeys())
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         title,
		Field:         field,
		Button:        m.submit.Render(styles),
		StatusMessage: m.statusMessage,
		StatusError:   m.statusError,
		Submitted:     m.result.Submitted,
		HelpText:      helpText,
	})
}
