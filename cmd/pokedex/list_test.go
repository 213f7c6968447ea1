package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newFixtureCommand(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().Bool("fixture", true, "")
	cmd.Flags().String("base-url", "", "")
	cmd.SetOut(out)
	cmd.SetContext(context.Background())
	return cmd
}

func TestRunListPrintsOrderedEntries(t *testing.T) {
	var buf bytes.Buffer
	cmd := newFixtureCommand(&buf)

	if err := runList(cmd, 2); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "  1 - Bulbasaur" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[1] != "  2 - Charmander" {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}

func TestRunListWritesToCommandStream(t *testing.T) {
	var buf bytes.Buffer
	cmd := newFixtureCommand(&buf)

	if err := runList(cmd, 1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected output on the command's stream")
	}
}

func TestRunListRejectsNonPositiveLimit(t *testing.T) {
	var buf bytes.Buffer
	cmd := newFixtureCommand(&buf)

	if err := runList(cmd, 0); err == nil {
		t.Fatal("expected error for non-positive limit")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
