package pipeline

import "sync"

// Form receives the fields of each completed pass. The CLI implements this
// with a terminal printer; a GUI would bind it to input widgets. Populate is
// called for every pass, including passes that extracted nothing, so the
// operator always sees the latest attempt. Reset blanks the displayed
// fields without touching the session table.
type Form interface {
	Populate(result ScanResult)
	Reset()
}

// NopForm discards results. Useful in tests and batch runs that only care
// about the table.
type NopForm struct{}

// Populate implements Form.
func (NopForm) Populate(ScanResult) {}

// Reset implements Form.
func (NopForm) Reset() {}

// Record is one confirmed row of the session table. Community and Phone are
// operator-entered; they never come from OCR.
type Record struct {
	FullName  string
	DNI       string
	Sex       string
	AgeRange  string
	DOB       string
	Community string
	Phone     string
}

// Table is the append-only session record store. Rows are confirmed by the
// operator, not by scan passes, so a bad scan never pollutes the table.
type Table struct {
	mu   sync.Mutex
	rows []Record
}

// NewTable creates an empty table.
func NewTable() *Table { return &Table{} }

// Append adds a confirmed record.
func (t *Table) Append(r Record) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, r)
}

// Rows returns a copy of all records in insertion order.
func (t *Table) Rows() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Record, len(t.rows))
	copy(out, t.rows)
	return out
}

// Len reports the number of records.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

// Clear removes all records, starting a fresh session.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = nil
}
