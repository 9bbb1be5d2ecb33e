package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"rustgen/internal/driver"
	"rustgen/internal/ui"
)

type generateOutcome struct {
	out driver.Output
	err error
}

func runGenerateWithUI(ctx context.Context, title string, jobs []driver.Job, opts driver.Options) (driver.Output, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan generateOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		out, err := driver.RenderAll(ctx, jobs, optsCopy)
		outcomeCh <- generateOutcome{out: out, err: err}
		close(events)
	}()

	names := make([]string, 0, len(jobs))
	for _, job := range jobs {
		names = append(names, job.Name)
	}
	model := ui.NewProgressModel(title, names, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.out, uiErr
	}
	return outcome.out, outcome.err
}
