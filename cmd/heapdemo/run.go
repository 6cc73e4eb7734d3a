package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/katalvlaran/lvheap/minheap"
)

// run walks a heap through insert, build, delete-min and (optionally) drain,
// printing the storage after each stage to out.
func run(cfg Config, out io.Writer, logger log.Logger) error {
	h := minheap.New[int](minheap.WithCapacity(len(cfg.Values)))

	// 1. Insert one by one
	for _, v := range cfg.Values {
		h.Insert(v)
		level.Debug(logger).Log("msg", "inserted", "value", v, "len", h.Len())
	}
	if err := printStage(out, "Initial heap", h); err != nil {
		return err
	}

	// 2. Bottom-up rebuild; a no-op on an already valid heap
	h.BuildHeap()
	level.Debug(logger).Log("msg", "heap built", "valid", h.Valid())
	if err := printStage(out, "Min heap", h); err != nil {
		return err
	}

	// 3. Extract the requested number of minimums
	for i := 0; i < cfg.Delete; i++ {
		v, err := h.DeleteMin()
		if err != nil {
			return fmt.Errorf("heapdemo: delete %d of %d: %w", i+1, cfg.Delete, err)
		}
		level.Debug(logger).Log("msg", "deleted minimum", "value", v, "len", h.Len())
	}
	label := fmt.Sprintf("Min heap after deleting %d smallest elements", cfg.Delete)
	if err := printStage(out, label, h); err != nil {
		return err
	}

	// 4. Optional heap sort of what is left
	if cfg.Drain {
		sorted := minheap.Drain(h)
		if _, err := fmt.Fprintf(out, "Sorted: %s\n", joinInts(sorted)); err != nil {
			return err
		}
	}

	level.Info(logger).Log("msg", "demo finished", "inserted", len(cfg.Values), "deleted", cfg.Delete, "remaining", h.Len())

	return nil
}

func printStage(out io.Writer, label string, h *minheap.MinHeap[int]) error {
	if _, err := fmt.Fprintf(out, "%s: ", label); err != nil {
		return err
	}

	return h.PrintHeap(out)
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
