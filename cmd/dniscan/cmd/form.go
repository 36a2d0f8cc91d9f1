package cmd

import (
	"fmt"
	"io"
	"sync"

	"github.com/meza-digital/dniscan/internal/pipeline"
)

// consoleForm is the terminal stand-in for the capture form: each pass
// prints its extracted fields, and worthwhile results are appended to the
// session table. A record is worth keeping when the pass read at least a
// name or a document number; empty passes are shown but not recorded.
type consoleForm struct {
	mu    sync.Mutex
	out   io.Writer
	table *pipeline.Table
	count int
}

func newConsoleForm(out io.Writer, table *pipeline.Table) *consoleForm {
	return &consoleForm{out: out, table: table}
}

// Populate implements pipeline.Form.
func (f *consoleForm) Populate(result pipeline.ScanResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count++

	fmt.Fprintf(f.out, "--- pase %d ---\n", f.count)
	fmt.Fprintf(f.out, "Nombre completo:  %s\n", orDash(result.Fields.FullName))
	fmt.Fprintf(f.out, "Número de DNI:    %s\n", orDash(result.Fields.DNI))
	fmt.Fprintf(f.out, "Sexo:             %s\n", orDash(result.Fields.Sex.String()))
	fmt.Fprintf(f.out, "Fecha Nacimiento: %s\n", orDash(result.Fields.DOB))
	fmt.Fprintf(f.out, "Rango de edad:    %s\n", orDash(result.AgeRange))

	if f.table == nil {
		return
	}
	if result.Fields.FullName == "" && result.Fields.DNI == "" {
		fmt.Fprintln(f.out, "(sin datos, no registrado)")
		return
	}
	f.table.Append(pipeline.Record{
		FullName: result.Fields.FullName,
		DNI:      result.Fields.DNI,
		Sex:      result.Fields.Sex.String(),
		AgeRange: result.AgeRange,
		DOB:      result.Fields.DOB,
	})
}

// Reset implements pipeline.Form. The terminal has no fields to blank, so
// only the pass counter restarts.
func (f *consoleForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count = 0
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
