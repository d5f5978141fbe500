package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Robogera/dheap/pkg/config"
)

func runScript(t *testing.T, script ...string) string {
	t.Helper()
	lines := make(chan string, len(script))
	for _, line := range script {
		lines <- line
	}
	close(lines)
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := run(context.Background(), logger, config.Default(), lines, &out)
	if !errors.Is(err, ERR_EXIT) {
		t.Fatalf("Shell ended with %v, output:\n%s", err, out.String())
	}
	return out.String()
}

func TestHistoryWithoutHeap(t *testing.T) {
	output := runScript(t, "7", "8")
	t.Log(output)
	if !strings.Contains(output, "Nothing happened yet.") {
		t.Fatal("History with no heap should report an empty journal")
	}
	if strings.Contains(output, "No heap exists") {
		t.Fatal("History should not be gated on a heap existing")
	}
}

func TestOpsWithoutHeap(t *testing.T) {
	output := runScript(t, "3", "8")
	t.Log(output)
	if !strings.Contains(output, "No heap exists") {
		t.Fatal("Extract with no heap should be refused")
	}
}

func TestHugeBranchingViaShell(t *testing.T) {
	output := runScript(t,
		"1", "2", "9 5 3",
		"2", "9223372036854775807",
		"5",
		"3",
		"6",
		"8")
	t.Log(output)
	if !strings.Contains(output, "D value changed successfully!") {
		t.Fatal("Huge D should be accepted")
	}
	if !strings.Contains(output, "Maximum value: 9") {
		t.Fatal("Extract after a huge D change should still yield the max")
	}
}

func TestJournal(t *testing.T) {
	output := runScript(t,
		"1", "2", "4 2",
		"4", "10",
		"3",
		"7",
		"8")
	t.Log(output)
	if !strings.Contains(output, "insert 10") {
		t.Fatal("Insert missing from the journal")
	}
	if !strings.Contains(output, "extract 10") {
		t.Fatal("Extract missing from the journal")
	}
}
