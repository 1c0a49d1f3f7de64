package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	COMPILER_ERROR_FOUND = errors.New("compiler error found")
)

type Collector struct {
	Diags []Diag
	Out   io.Writer
}

func New() *Collector {
	return &Collector{
		Diags: nil,
		Out:   os.Stderr,
	}
}

func (collector *Collector) ReportAndSave(diag Diag) {
	if collector.Out != nil {
		fmt.Fprintln(collector.Out, diag.Message)
	}
	collector.Diags = append(collector.Diags, diag)
}

func (collector *Collector) HasErrors() bool {
	return len(collector.Diags) > 0
}

// Err returns COMPILER_ERROR_FOUND once anything was reported.
func (collector *Collector) Err() error {
	if collector.HasErrors() {
		return COMPILER_ERROR_FOUND
	}
	return nil
}
