package views

import (
	"strings"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	Field         string // field body, already wrapped in chrome
	Button        string
	StatusMessage string
	StatusError   bool
	Submitted     bool
	HelpText      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &Renderer{styles: styles}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(state.Title))
	content.WriteString("\n")
	content.WriteString(state.Field)
	content.WriteString("\n\n")
	content.WriteString(state.Button)

	if state.StatusMessage != "" {
		style := r.styles.Status
		switch {
		case state.StatusError:
			style = r.styles.StatusError
		case state.Submitted:
			style = r.styles.StatusSuccess
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	if state.HelpText != "" {
		// Push the help line to the bottom of the screen
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2 // main padding
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpText))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	if state.Width > 0 {
		mainStyle = mainStyle.MaxWidth(state.Width)
	}
	return mainStyle.Render(content.String())
}
