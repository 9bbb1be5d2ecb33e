// Package driver runs independent module renders in parallel and
// merges their dependency sets into a whole-artifact manifest.
package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"rustgen/internal/cargo"
	"rustgen/internal/render"
)

// Status of one job, reported through the progress sink.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusWorking:
		return "rendering"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

// Event is one progress update.
type Event struct {
	Name   string
	Status Status
}

// Sink receives progress events.
type Sink interface {
	Send(Event)
}

// ChannelSink forwards events to a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) Send(ev Event) {
	s.Ch <- ev
}

// Job is one module to render. Build runs against a private writer;
// jobs never share render state.
type Job struct {
	Name      string
	Namespace string
	Build     render.Unit
}

// Module is one finished render.
type Module struct {
	Name string
	Text string
	Deps *cargo.DependencySet
}

// Output is the result of a whole run: modules in input order plus the
// merged manifest.
type Output struct {
	Modules  []Module
	Manifest *cargo.DependencySet
}

// Options control a run.
type Options struct {
	Jobs          int // 0 means GOMAXPROCS
	Progress      Sink
	DebugComments bool
}

// RenderAll renders every job, bounded-parallel. Each job gets its own
// writer; results keep input order regardless of completion order. The
// first failure cancels the run and no partial output is returned. The
// manifest merge happens after all renders complete, in input order.
func RenderAll(ctx context.Context, jobs []Job, opts Options) (Output, error) {
	limit := opts.Jobs
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	results := make([]Module, len(jobs))
	for i, job := range jobs {
		i, job := i, job
		notify(opts.Progress, Event{Name: job.Name, Status: StatusQueued})
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			notify(opts.Progress, Event{Name: job.Name, Status: StatusWorking})
			w := render.NewWriter(job.Namespace)
			if opts.DebugComments {
				w.EnableDebug()
			}
			if err := job.Build(w); err != nil {
				notify(opts.Progress, Event{Name: job.Name, Status: StatusError})
				return fmt.Errorf("render %s: %w", job.Name, err)
			}
			text, deps := w.Finish()
			results[i] = Module{Name: job.Name, Text: text, Deps: deps}
			notify(opts.Progress, Event{Name: job.Name, Status: StatusDone})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Output{}, err
	}

	manifest := cargo.NewDependencySet()
	for _, m := range results {
		manifest.Merge(m.Deps)
	}
	return Output{Modules: results, Manifest: manifest}, nil
}

func notify(sink Sink, ev Event) {
	if sink != nil {
		sink.Send(ev)
	}
}
