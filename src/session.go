package main

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
	"github.com/eriklarko/exprtree/src/config"
	"github.com/eriklarko/exprtree/src/exprgen"
	"github.com/eriklarko/exprtree/src/exprtree"
	"github.com/eriklarko/exprtree/src/report"
	"github.com/eriklarko/exprtree/src/tui"
)

var treeDumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

type session struct {
	ui     *tui.TUI
	config atomic.Pointer[config.Config]
	report *report.Report
	debug  bool
}

func newSession(ui *tui.TUI, conf *config.Config, debug bool) *session {
	s := &session{
		ui:     ui,
		report: &report.Report{},
		debug:  debug,
	}
	s.config.Store(conf)
	return s
}

// setConfig swaps the config, it is safe to call while the session runs
func (s *session) setConfig(conf *config.Config) {
	s.config.Store(conf)
}

// evaluate parses and evaluates one expression and prints the result. Failures
// are printed too, and recorded in the report either way.
func (s *session) evaluate(expression string) {
	tree, err := exprtree.New(expression)
	if err != nil {
		s.fail(expression, err)
		return
	}
	if s.debug {
		slog.Debug("built expression tree", "expression", expression, "tree", treeDumper.Sdump(tree.Root()))
	}

	value, err := tree.EvaluateWholeTree()
	if err != nil {
		s.fail(expression, err)
		return
	}

	s.report.RecordValue(expression, value)
	s.print(expression, value, tree)
}

func (s *session) print(expression string, value int, tree *exprtree.ExprTree) {
	conf := s.config.Load()

	s.ui.Printf("%s = %d\n", expression, value)
	for _, notation := range conf.Notations {
		s.ui.Printf("  %-9s%s\n", string(notation)+":", render(tree, notation))
	}
	if conf.ShowSize {
		s.ui.Printf("  %-9s%d\n", "size:", tree.Size())
	}
}

func render(tree *exprtree.ExprTree, notation config.Notation) string {
	switch notation {
	case config.Prefix:
		return tree.PrefixOrder()
	case config.Infix:
		return tree.InfixOrder()
	case config.Postfix:
		return tree.PostfixOrder()
	}
	return ""
}

func (s *session) fail(expression string, err error) {
	s.report.RecordFailure(expression, err)
	s.ui.Printf("error: %v\n", err)
	slog.Debug("failed to evaluate expression", "expression", expression, "error", err)
}

// interactive prompts for expressions until the input ends, the user quits or
// ctx is done.
func (s *session) interactive(ctx context.Context) {
	for ctx.Err() == nil {
		line, ok := s.ui.ReadLine(ctx, s.config.Load().Prompt)
		if !ok {
			// end of input or interrupted, either way the cursor is still
			// after the prompt
			s.ui.Printf("\n")
			return
		}

		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		}
		s.evaluate(line)
	}
}

// batch evaluates every line of the input. Blank lines and lines starting
// with '#' are skipped.
func (s *session) batch(ctx context.Context) {
	for ctx.Err() == nil {
		line, ok := s.ui.ReadLine(ctx, "")
		if !ok {
			return
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.evaluate(line)
	}
}

// generated evaluates count random expressions.
func (s *session) generated(ctx context.Context, generator *exprgen.Generator, count, depth int) {
	for i := 0; i < count && ctx.Err() == nil; i++ {
		s.evaluate(generator.GenerateExpression(depth))
	}
}

// printSummary prints the report and returns false if anything failed.
func (s *session) printSummary() bool {
	summary, err := s.report.Summary()
	if err != nil {
		slog.Error("failed to summarise results", "error", err)
		return false
	}

	s.ui.Printf("\n%s\n", summary)
	for _, kind := range s.report.FailureKinds() {
		s.ui.Printf("  %s: %d\n", kind, len(s.report.Failures[kind]))
	}
	return !s.report.HasFailures()
}
