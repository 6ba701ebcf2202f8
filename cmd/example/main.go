package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-post"
)

type options struct {
	Text      string
	Edit      string
	Provider  string
	Level     string
	Format    string
	Until     string
	LogEvents bool
}

func main() {
	var opts options
	flag.StringVar(&opts.Text, "text", "I ate a salad for lunch today", "Initial post body")
	flag.StringVar(&opts.Edit, "edit", " yum", "Text appended after publishing")
	flag.StringVar(&opts.Provider, "log-provider", "gologger", "Logger provider (console or gologger)")
	flag.StringVar(&opts.Level, "log-level", "debug", "Minimum log level")
	flag.StringVar(&opts.Format, "log-format", "pretty", "go-logger output format (json, console, pretty)")
	flag.StringVar(&opts.Until, "until", "", "Stop once the post reaches this state (draft, pending_review, published)")
	flag.BoolVar(&opts.LogEvents, "log", false, "Log lifecycle events")
	flag.Parse()

	if err := run(os.Stdout, opts); err != nil {
		log.Fatalf("example: %v", err)
	}
}

func run(w io.Writer, opts options) error {
	cfg := post.DefaultConfig()
	cfg.Features.Logger = opts.LogEvents
	cfg.Logging.Provider = opts.Provider
	cfg.Logging.Level = opts.Level
	cfg.Logging.Format = opts.Format

	var until post.State
	if strings.TrimSpace(opts.Until) != "" {
		state, ok := post.ParseState(opts.Until)
		if !ok {
			return fmt.Errorf("unknown state %q", opts.Until)
		}
		until = state
	}

	module, err := post.NewModule(cfg)
	if err != nil {
		return fmt.Errorf("configure module: %w", err)
	}

	fmt.Fprintln(w, "Workflow:")
	for _, def := range module.States() {
		terminal := ""
		if def.Terminal {
			terminal = " (terminal)"
		}
		fmt.Fprintf(w, "  %-15s %s%s\n", def.Name, def.Description, terminal)
	}
	fmt.Fprintln(w)

	p := module.NewPost()
	steps := []struct {
		label string
		apply func()
	}{
		{label: "add_text", apply: func() { p.AddText(opts.Text) }},
		{label: "approve", apply: p.Approve},
		{label: "request_review", apply: p.RequestReview},
		{label: "approve", apply: p.Approve},
		{label: "add_text", apply: func() { p.AddText(opts.Edit) }},
	}

	for _, step := range steps {
		step.apply()
		fmt.Fprintf(w, "%-15s state=%-15s content=%q\n", step.label, p.State(), p.Content())
		if until != "" && p.State() == until {
			break
		}
	}
	return nil
}
