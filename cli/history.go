package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/richinex/ripgrepy/ripgrep"
	"github.com/richinex/ripgrepy/storage"
	"github.com/richinex/ripgrepy/tools"
)

// HistoryOptions selects what History prints.
type HistoryOptions struct {
	ID     string // show or delete this run; empty lists runs
	Limit  int
	Delete bool
	View   string
	Color  bool
}

// History lists recorded runs, shows one run through a view, or deletes it.
func History(ctx context.Context, w io.Writer, store storage.HistoryStore, opts HistoryOptions) error {
	if opts.ID == "" {
		if opts.Delete {
			return fmt.Errorf("--delete needs a run id")
		}
		return listRuns(ctx, w, store, opts.Limit)
	}
	if opts.Delete {
		if err := store.Delete(ctx, opts.ID); err != nil {
			return err
		}
		fmt.Fprintf(w, "Deleted run %s\n", opts.ID)
		return nil
	}
	return showRun(ctx, w, store, opts)
}

func listRuns(ctx context.Context, w io.Writer, store storage.HistoryStore, limit int) error {
	runs, err := store.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No recorded runs.")
		return nil
	}
	for _, r := range runs {
		sum := tools.Summarize(r)
		fmt.Fprintf(w, "%s  %s  exit %d  %8s  %s\n",
			sum.ID, sum.StartedAt.Local().Format(time.DateTime), sum.ExitCode,
			r.Duration.Round(time.Millisecond), sum.Command)
	}
	return nil
}

func showRun(ctx context.Context, w io.Writer, store storage.HistoryStore, opts HistoryOptions) error {
	rec, err := store.Get(ctx, opts.ID)
	if err != nil {
		return err
	}
	structured := slices.Contains(rec.Args, "--json")
	view := opts.View
	switch {
	case view == "":
		view = ViewGrouped
		if !structured {
			view = ViewRaw
		}
	case !validView(view):
		return fmt.Errorf("unknown view %q (want raw, records, grouped, json or matches)", view)
	}

	in := ripgrep.NewInterpreter(rec.Result(), structured)
	return newPrinter(w, opts.Color).view(in, in.Text, view)
}
