package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRulesCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"rules"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("rules: %v", err)
	}
	if !strings.Contains(out.String(), "PLATE_WAITING") {
		t.Fatalf("expected the table to mention PLATE_WAITING, got:\n%s", out.String())
	}
}

func TestRulesCommand_RejectsArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"rules", "extra"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for unexpected arguments")
	}
}
