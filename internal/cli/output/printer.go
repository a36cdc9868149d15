// Package output formats hrmctl results for the terminal.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

func NewPrinter(out, err io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: err, useColors: useColors}
}

func (p *Printer) Successf(format string, args ...any) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Errorf(format string, args ...any) {
	if p.useColors {
		color.New(color.FgRed, color.Bold).Fprintf(p.err, "Error: "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
}

// Table renders rows under a header using the shared table style.
func (p *Printer) Table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(p.out)
	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	table.Header(headerCells...)
	for _, row := range rows {
		_ = table.Append(row)
	}
	_ = table.Render()
}
