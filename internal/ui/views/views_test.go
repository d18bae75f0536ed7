package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chipselect/internal/domain"
	"chipselect/internal/ui/idgen"
	"chipselect/internal/ui/multiselect"
)

type invalidStatus struct{}

func (invalidStatus) Invalid() bool { return true }

func newField() *multiselect.Model {
	return multiselect.New(multiselect.Options{
		Items: []*domain.Item{
			domain.NewItem(domain.IntValue(1), "Apple"),
			domain.NewItem(domain.IntValue(2), "Lemon"),
		},
		Placeholder: "Fruits",
		Counter:     &idgen.Counter{},
	})
}

func TestChromeRefreshesOnStateChanges(t *testing.T) {
	field := newField()
	chrome := NewFieldChrome(field, "Favorite fruits", "", nil)
	require.Equal(t, 1, chrome.Refreshes())
	assert.NotContains(t, chrome.Render(field.View()), "Favorite fruits")

	field.OnFocusIn(multiselect.FocusEvent{})
	assert.Equal(t, 2, chrome.Refreshes())
	assert.Contains(t, chrome.Render(field.View()), "Favorite fruits")

	field.OnFocusOut(multiselect.FocusEvent{})
	field.WriteValue([]domain.Value{domain.IntValue(2)})
	assert.Equal(t, 4, chrome.Refreshes())
	assert.Contains(t, chrome.Render(field.View()), "Favorite fruits", "label stays up while not empty")
}

func TestChromeDescribedBy(t *testing.T) {
	field := newField()
	field.SetStatusProvider(invalidStatus{})
	chrome := NewFieldChrome(field, "Fruits", "Pick some", nil)
	host, ok := field.Host().(*multiselect.Element)
	require.True(t, ok)

	assert.Equal(t, chrome.HintID(), host.Attribute("aria-describedby"))
	assert.Contains(t, chrome.Render(field.View()), "Pick some")

	field.OnFocusIn(multiselect.FocusEvent{})
	field.OnFocusOut(multiselect.FocusEvent{})
	require.True(t, field.ErrorState())
	assert.Equal(t, chrome.HintID()+" "+chrome.ErrorID(), host.Attribute("aria-describedby"))

	chrome.SetErrorText(func() string { return "Pick at least one fruit" })
	view := chrome.Render(field.View())
	assert.Contains(t, view, "Pick at least one fruit")
	assert.NotContains(t, view, "Pick some")
}

func TestChromeDetachesOnDestroy(t *testing.T) {
	field := newField()
	chrome := NewFieldChrome(field, "Fruits", "", nil)

	field.Destroy()
	assert.True(t, chrome.Detached())

	before := chrome.Refreshes()
	field.SetRequired(true)
	assert.Equal(t, before, chrome.Refreshes())
}

func TestChromeClose(t *testing.T) {
	field := newField()
	chrome := NewFieldChrome(field, "Fruits", "", nil)
	chrome.Close()
	chrome.Close()

	field.SetRequired(true)
	assert.Equal(t, 1, chrome.Refreshes())
}

func TestButtonFocus(t *testing.T) {
	b := NewButton("submit", "Submit")
	styles := NewStyles()

	assert.Equal(t, "submit", b.FocusID())
	assert.Nil(t, b.Focus())
	assert.True(t, b.Focused())
	assert.Contains(t, b.Render(styles), "Submit")

	b.Blur()
	assert.False(t, b.Focused())
}

func TestRender(t *testing.T) {
	r := NewRenderer(nil)
	out := r.Render(ViewState{
		Width:         60,
		Height:        20,
		Title:         "chipselect",
		Field:         "FIELD",
		Button:        "BUTTON",
		StatusMessage: "Saved",
		HelpText:      "tab next",
	})

	assert.Contains(t, out, "chipselect")
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "BUTTON")
	assert.Contains(t, out, "Saved")
	assert.Contains(t, out, "tab next")
}
