// Command vecbench drives container workloads and reports timings.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/imgk/memory-go"
	"go.uber.org/zap"

	vector "github.com/imgk/vector-go"
)

type result struct {
	name  string
	ops   int
	total time.Duration
}

func (r result) perOp() time.Duration {
	if r.ops == 0 {
		return 0
	}
	return r.total / time.Duration(r.ops)
}

func main() {
	n := flag.Int("n", 1_000_000, "elements per append workload")
	m := flag.Int("m", 50_000, "elements per positional workload")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	workloads := []struct {
		name string
		ops  int
		fn   func(int) error
	}{
		{"push-back", *n, pushBack},
		{"push-back-prealloc", *n, pushBackPrealloc},
		{"insert-middle", *m, insertMiddle},
		{"erase-front", *m, eraseFront},
		{"clone", *n, clone},
	}

	results := make([]result, 0, len(workloads))
	for _, w := range workloads {
		start := time.Now()
		if err := w.fn(w.ops); err != nil {
			logger.Fatal("workload failed", zap.String("name", w.name), zap.Error(err))
		}
		r := result{name: w.name, ops: w.ops, total: time.Since(start)}
		results = append(results, r)

		logger.Info("workload done",
			zap.String("name", r.name),
			zap.String("ops", humanize.Comma(int64(r.ops))),
			zap.Duration("total", r.total),
			zap.Duration("per_op", r.perOp()))
	}

	ptr, b, err := memory.Alloc[byte](16 * 1024)
	if err != nil {
		panic(err)
	}
	defer memory.Free(ptr)

	out := b[:0]
	for _, r := range results {
		out = fmt.Appendf(out, "%-20s %14s ops %12v/op\n", r.name, humanize.Comma(int64(r.ops)), r.perOp())
	}
	os.Stdout.Write(out)
}

func pushBack(n int) error {
	v := vector.New[int]()
	for i := 0; i < n; i++ {
		if _, err := v.PushBack(i); err != nil {
			return err
		}
	}
	return nil
}

func pushBackPrealloc(n int) error {
	v := vector.New[int]()
	if err := v.Reserve(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := v.PushBack(i); err != nil {
			return err
		}
	}
	return nil
}

func insertMiddle(n int) error {
	v := vector.New[int]()
	for i := 0; i < n; i++ {
		if _, err := v.Insert(v.Size()/2, i); err != nil {
			return err
		}
	}
	return nil
}

func eraseFront(n int) error {
	v := vector.New[int]()
	if err := v.Resize(n); err != nil {
		return err
	}
	for v.Size() > 0 {
		v.Erase(0)
	}
	return nil
}

func clone(n int) error {
	v := vector.New[int]()
	if err := v.Resize(n); err != nil {
		return err
	}
	c, err := v.Clone()
	if err != nil {
		return err
	}
	if c.Size() != v.Size() {
		return fmt.Errorf("clone size mismatch: %d != %d", c.Size(), v.Size())
	}
	return nil
}
