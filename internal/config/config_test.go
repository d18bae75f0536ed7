package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chipselect/internal/domain"
	"chipselect/internal/eventbus"
)

type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) { b.events = append(b.events, e) }
func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}
func (b *recordingBus) Close() {}

func TestDefaultConfigCandidates(t *testing.T) {
	items, err := DefaultConfig().Candidates()
	require.NoError(t, err)

	require.Len(t, items, 5)
	assert.Equal(t, "Apple", items[0].ViewValue)
	assert.Equal(t, domain.IntValue(5), items[4].Value)
}

func TestCandidatesAreFresh(t *testing.T) {
	cfg := DefaultConfig()
	a, err := cfg.Candidates()
	require.NoError(t, err)
	b, err := cfg.Candidates()
	require.NoError(t, err)

	assert.NotSame(t, a[0], b[0])
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	svc := NewConfigService()

	cfg := DefaultConfig()
	cfg.Required = true
	cfg.SetValue([]domain.Value{domain.IntValue(2), domain.IntValue(4)})
	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Label, loaded.Label)
	assert.True(t, loaded.Required)
	assert.Equal(t, cfg.UISettings, loaded.UISettings)

	values, err := loaded.InitialValue()
	require.NoError(t, err)
	assert.Equal(t, []domain.Value{domain.IntValue(2), domain.IntValue(4)}, values)

	items, err := loaded.Candidates()
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestLoadMixedValueTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	data := `
version = 1
label = "Tags"
value = ["go", 7]

[[items]]
value = "go"
view_value = "Go"

[[items]]
value = 7

[ui]
show_help = false
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)

	items, err := cfg.Candidates()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.StringValue("go"), items[0].Value)
	assert.Equal(t, "7", items[1].ViewValue)

	values, err := cfg.InitialValue()
	require.NoError(t, err)
	assert.Equal(t, []domain.Value{domain.StringValue("go"), domain.IntValue(7)}, values)
	assert.False(t, cfg.UISettings.ShowHelp)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"item value", "[[items]]\nvalue = 1.5\n"},
		{"selection value", "value = [true]\n"},
		{"syntax", "value = [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))

			_, err := NewConfigService().LoadFromPath(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadFromMissingPath(t *testing.T) {
	_, err := NewConfigService().LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "config file not found")
}

func TestBusEvents(t *testing.T) {
	bus := &recordingBus{}
	svc := NewConfigServiceWithBus(bus)
	path := filepath.Join(t.TempDir(), FileName)

	require.NoError(t, svc.SaveToPath(DefaultConfig(), path))
	_, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	require.Len(t, bus.events, 2)
	assert.Equal(t, eventbus.ConfigSavedEvent{Path: path}, bus.events[0])
	assert.Equal(t, eventbus.ConfigLoadedEvent{Path: path, Items: 5}, bus.events[1])
}
