package main

import (
	// stdlib
	"fmt"
	"io"
	"slices"

	// internal
	"github.com/Robogera/dheap/pkg/dheap"

	// external
	"gonum.org/v1/gonum/stat"
)

func show_stats(out io.Writer, heap *dheap.Heap) {
	if heap.IsEmpty() {
		fmt.Fprintln(out, "Empty heap :(")
		return
	}
	values := make([]float64, 0, heap.Size())
	for value := range heap.All() {
		values = append(values, float64(value))
	}
	mean, stddev := stat.MeanStdDev(values, nil)
	fmt.Fprintf(out,
		"Elements: %d/%d (d=%d)\nMin: %g Max: %g Mean: %g Stddev: %g\n",
		heap.Size(), heap.Cap(), heap.D(),
		slices.Min(values), slices.Max(values), mean, stddev)
}
