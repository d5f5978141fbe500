package main

import (
	// stdlib
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	// internal
	"github.com/Robogera/dheap/pkg/config"
	"github.com/Robogera/dheap/pkg/dheap"
	"github.com/Robogera/dheap/pkg/gring"

	// external
	"golang.org/x/exp/constraints"
)

type JournalEntry struct {
	op    string
	value int32
	at    time.Time
}

// Stdin is pumped over a channel so the loop can notice
// cancellation while nobody is typing
func shell(ctx context.Context, logger *slog.Logger, cfg *config.ConfigFile) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return run(ctx, logger, cfg, lines, os.Stdout)
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.ConfigFile, lines <-chan string, out io.Writer) error {
	journal, err := gring.NewRing[JournalEntry](cfg.Shell.HistorySize)
	if err != nil {
		return fmt.Errorf("Can't create journal. Error: %w", err)
	}

	var heap *dheap.Heap

	logger.Info("Shell ready", "history size", cfg.Shell.HistorySize)

	for {
		fmt.Fprintln(out, "\nD-Heap Operations:")
		fmt.Fprintln(out, "1. Build heap")
		fmt.Fprintln(out, "2. Change D")
		fmt.Fprintln(out, "3. Extract Max")
		fmt.Fprintln(out, "4. Insert")
		fmt.Fprintln(out, "5. Print heap")
		fmt.Fprintln(out, "6. Stats")
		fmt.Fprintln(out, "7. History")
		fmt.Fprintln(out, "8. Exit")

		choice, err := prompt_number[int](ctx, lines, out, "Enter your choice: ")
		if errors.Is(err, ERR_BAD_INPUT) {
			fmt.Fprintln(out, "Invalid choice. Please enter a number between 1 and 8.")
			continue
		}
		if err != nil {
			return err
		}

		logger.Debug("Dispatching", "choice", choice)

		// the journal (7) outlives any single heap, only 2-6 need one
		if choice >= 2 && choice <= 6 && heap == nil {
			fmt.Fprintln(out, "No heap exists. Please build a heap first.")
			continue
		}

		switch choice {
		case 1:
			new_heap, err := build_heap(ctx, lines, out, cfg.Heap.Capacity)
			if err != nil {
				return err
			}
			if new_heap != nil {
				heap = new_heap
			}
		case 2:
			if err := change_d(ctx, lines, out, heap); err != nil {
				return err
			}
		case 3:
			extract_max(out, heap, journal)
		case 4:
			if err := insert_value(ctx, lines, out, heap, journal); err != nil {
				return err
			}
		case 5:
			print_heap(out, heap)
		case 6:
			show_stats(out, heap)
		case 7:
			show_history(out, journal)
		case 8:
			fmt.Fprintln(out, "Exiting...")
			return ERR_EXIT
		default:
			fmt.Fprintln(out, "Invalid choice. Please enter a number between 1 and 8.")
		}
	}
}

func build_heap(ctx context.Context, lines <-chan string, out io.Writer, capacity int) (*dheap.Heap, error) {
	d, err := prompt_number[int](ctx, lines, out, "Enter D value: ")
	if errors.Is(err, ERR_BAD_INPUT) {
		fmt.Fprintln(out, "Invalid input for D.")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if d < 2 {
		fmt.Fprintln(out, "D must be at least 2.")
		return nil, nil
	}

	input, err := read_line(ctx, lines, out, "Enter numbers separated by spaces: ")
	if err != nil {
		return nil, err
	}
	var numbers []int32
	for _, field := range strings.Fields(input) {
		// unparsable fields are skipped, not fatal
		if number, err := parse_number[int32](field); err == nil {
			numbers = append(numbers, number)
		}
	}

	heap, err := dheap.NewSized(d, capacity, numbers)
	if err != nil {
		fmt.Fprintf(out, "Failed to build heap: %s\n", err)
		return nil, nil
	}
	fmt.Fprintln(out, "Heap built successfully!")
	print_heap(out, heap)
	return heap, nil
}

func change_d(ctx context.Context, lines <-chan string, out io.Writer, heap *dheap.Heap) error {
	d, err := prompt_number[int](ctx, lines, out, "Enter new D value: ")
	if errors.Is(err, ERR_BAD_INPUT) {
		fmt.Fprintln(out, "Invalid input for D.")
		return nil
	}
	if err != nil {
		return err
	}
	if err := heap.ChangeD(d); err != nil {
		fmt.Fprintf(out, "Failed to change D: %s\n", err)
		return nil
	}
	fmt.Fprintln(out, "D value changed successfully!")
	fmt.Fprintln(out, "New heap: ")
	print_heap(out, heap)
	return nil
}

func extract_max(out io.Writer, heap *dheap.Heap, journal *gring.Ring[JournalEntry]) {
	max, err := heap.ExtractMax()
	if err != nil {
		fmt.Fprintf(out, "Error extracting max: %s\n", err)
		return
	}
	journal.Push(JournalEntry{op: "extract", value: max, at: time.Now()})
	fmt.Fprintf(out, "Maximum value: %d\n", max)
	fmt.Fprintln(out, "New heap: ")
	print_heap(out, heap)
}

func insert_value(ctx context.Context, lines <-chan string, out io.Writer, heap *dheap.Heap, journal *gring.Ring[JournalEntry]) error {
	number, err := prompt_number[int32](ctx, lines, out, "Enter a number to insert: ")
	if errors.Is(err, ERR_BAD_INPUT) {
		fmt.Fprintln(out, "Invalid number.")
		return nil
	}
	if err != nil {
		return err
	}
	if err := heap.Insert(number); err != nil {
		fmt.Fprintf(out, "Failed to insert: %s\n", err)
		return nil
	}
	journal.Push(JournalEntry{op: "insert", value: number, at: time.Now()})
	fmt.Fprintf(out, "Successfully inserted %d\n", number)
	fmt.Fprintln(out, "New heap: ")
	print_heap(out, heap)
	return nil
}

func print_heap(out io.Writer, heap *dheap.Heap) {
	fmt.Fprintf(out, "Heap (d=%d)\n", heap.D())
	if heap.IsEmpty() {
		fmt.Fprintln(out, "Empty heap :(")
		return
	}
	for level, values := range heap.Levels() {
		fmt.Fprintf(out, "Level %d: ", level)
		for _, value := range values {
			fmt.Fprintf(out, "%d ", value)
		}
		fmt.Fprintln(out)
	}
}

func show_history(out io.Writer, journal *gring.Ring[JournalEntry]) {
	if journal.Len() == 0 {
		fmt.Fprintln(out, "Nothing happened yet.")
		return
	}
	fmt.Fprintf(out, "Last %d operations (newest first):\n", journal.Len())
	for entry := range journal.All() {
		fmt.Fprintf(out, "%s %s %d\n", entry.at.Format(time.TimeOnly), entry.op, entry.value)
	}
}

func read_line(ctx context.Context, lines <-chan string, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	select {
	case <-ctx.Done():
		return "", context.Canceled
	case line, ok := <-lines:
		if !ok {
			return "", ERR_INPUT_CLOSED
		}
		return line, nil
	}
}

func prompt_number[T constraints.Signed](ctx context.Context, lines <-chan string, out io.Writer, prompt string) (T, error) {
	input, err := read_line(ctx, lines, out, prompt)
	if err != nil {
		return 0, err
	}
	return parse_number[T](input)
}

func parse_number[T constraints.Signed](s string) (T, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("Can't parse %q: %w", s, ERR_BAD_INPUT)
	}
	// reject values that don't survive the conversion to T
	if int64(T(parsed)) != parsed {
		return 0, fmt.Errorf("%q overflows the target type: %w", s, ERR_BAD_INPUT)
	}
	return T(parsed), nil
}
