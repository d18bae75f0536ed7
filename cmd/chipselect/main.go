package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"chipselect/internal/config"
	"chipselect/internal/domain"
	"chipselect/internal/eventbus"
	"chipselect/internal/ui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to the form config file")
	flag.StringVar(&configPath, "c", "", "Path to the form config file (shorthand)")
	flag.Parse()

	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Printf("Error getting current directory: %v\n", err)
			os.Exit(1)
		}
		configPath = filepath.Join(wd, config.FileName)
	}

	// Set up logging
	logFile, err := os.OpenFile("chipselect.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadOrCreateConfig(configSvc, configPath)

	if cfg.UISettings.Autosave {
		// Runs on the bus goroutine, so it only touches its own copy
		saved := *cfg
		bus.Subscribe(eventbus.EventValueChanged, func(e eventbus.DomainEvent) {
			event, ok := e.(eventbus.ValueChangedEvent)
			if !ok {
				return
			}
			saved.SetValue(event.Values)
			if err := configSvc.SaveToPath(&saved, configPath); err != nil {
				log.Printf("Failed to save config: %v", err)
			} else {
				log.Printf("Selection saved to %s", configPath)
			}
		})
	}
	bus.Subscribe(eventbus.EventSubmitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SubmittedEvent); ok {
			log.Printf("Form submitted: field=%s valid=%t values=%v", event.FieldID, event.Valid, event.Values)
		}
	})

	uiModel, err := ui.NewModel(bus, cfg, ui.Options{})
	if err != nil {
		fmt.Printf("Error in config %s: %v\n", configPath, err)
		os.Exit(1)
	}
	defer uiModel.Close()

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	if os.Getenv("CHIPSELECT_E2E_TEST") == "1" {
		// Lets the e2e driver know the program is about to take the terminal
		fmt.Println("__READY__")
	}

	_, runErr := p.Run()
	bus.Close()

	if runErr != nil && ctx.Err() == nil {
		fmt.Printf("Error running program: %v\n", runErr)
		os.Exit(1)
	}

	result := uiModel.Result()
	if !result.Submitted {
		fmt.Println("cancelled")
		return
	}
	fmt.Printf("submitted: %s\n", formatValues(result.Values))
}

// loadOrCreateConfig loads the config at path, writing the default one
// there first when the file does not exist yet
func loadOrCreateConfig(configSvc config.ConfigService, path string) *config.Config {
	if _, err := os.Stat(path); err == nil {
		cfg, err := configSvc.LoadFromPath(path)
		if err == nil {
			log.Printf("Loaded config from %s", path)
			return cfg
		}
		log.Printf("Failed to load config %s: %v", path, err)
		return config.DefaultConfig()
	}

	log.Printf("Creating new config at %s", path)
	cfg := config.DefaultConfig()
	if err := configSvc.SaveToPath(cfg, path); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg
}

func formatValues(values []domain.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
