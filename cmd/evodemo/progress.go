package main

import (
	"io"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/evo"
)

// progress serializes progress lines from concurrent runs.
type progress struct {
	mu  sync.Mutex
	out io.Writer
	p   *message.Printer
}

func newProgress(out io.Writer) *progress {
	return &progress{out: out, p: message.NewPrinter(language.English)}
}

func (pr *progress) report(run int, s evo.Stats) {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	pr.p.Fprintf(pr.out, "run %d  generation %d  best %.8f  mean %.8f  stddev %.2e\n",
		run, s.Generation, s.Best, s.Mean, s.StdDev)
}
