package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lightbar/internal/config"
	"lightbar/internal/eventbus"
	"lightbar/internal/ui"
)

func main() {
	var (
		fromFile   string
		configPath string
		height     int
	)
	flag.StringVar(&fromFile, "f", "", "Read entries from a file instead of stdin")
	flag.StringVar(&configPath, "config", "", "Path to a config file")
	flag.IntVar(&height, "height", 0, "Window height in rows (overrides config)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("lightbar.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load configuration
	configSvc := config.NewService()
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.Default()
	}
	if height > 0 {
		cfg.UI.Height = height
	}

	entries, usedStdin, err := readEntries(fromFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lightbar: %v\n", err)
		os.Exit(1)
	}

	// Observe widget activity on the bus: log movement, capture the choice
	bus := eventbus.New()
	defer bus.Close()

	var chosen *eventbus.EntryChosenEvent
	bus.Subscribe(eventbus.EventEntryChosen, func(e eventbus.WidgetEvent) {
		if ev, ok := e.(eventbus.EntryChosenEvent); ok {
			chosen = &ev
		}
	})
	bus.Subscribe(eventbus.EventSelectionMoved, func(e eventbus.WidgetEvent) {
		if ev, ok := e.(eventbus.SelectionMovedEvent); ok {
			log.Printf("selection moved %d -> %d", ev.OldIndex, ev.NewIndex)
		}
	})
	bus.Subscribe(eventbus.EventContentReplaced, func(e eventbus.WidgetEvent) {
		if ev, ok := e.(eventbus.ContentReplacedEvent); ok {
			log.Printf("content replaced, %d entries", ev.Count)
		}
	})

	model, err := ui.NewModel(bus, cfg, entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lightbar: %v\n", err)
		os.Exit(1)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if usedStdin {
		// stdin carried the data, so read keys from the terminal directly
		tty, err := os.Open("/dev/tty")
		if err != nil {
			fmt.Fprintf(os.Stderr, "lightbar: cannot open terminal: %v\n", err)
			os.Exit(1)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}

	program := tea.NewProgram(model, opts...)
	model.SetProgram(program)

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "lightbar: %v\n", err)
		os.Exit(1)
	}

	// Delivery is asynchronous; drain the bus before inspecting the capture
	// so a choice published on the final frame is not lost.
	bus.Close()

	if chosen != nil {
		fmt.Println(chosen.Entry)
		return
	}
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(1)
}

// readEntries collects the content list from a file or piped stdin
func readEntries(fromFile string) (entries []string, usedStdin bool, err error) {
	var in *os.File
	switch {
	case fromFile != "":
		in, err = os.Open(fromFile)
		if err != nil {
			return nil, false, err
		}
		defer in.Close()
	default:
		info, err := os.Stdin.Stat()
		if err != nil || info.Mode()&os.ModeCharDevice != 0 {
			return nil, false, fmt.Errorf("no entries: pipe lines on stdin or pass -f")
		}
		in = os.Stdin
		usedStdin = true
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		entries = append(entries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, usedStdin, err
	}
	return entries, usedStdin, nil
}
