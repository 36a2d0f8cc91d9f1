package pipeline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableAppendAndRows(t *testing.T) {
	table := NewTable()
	assert.Equal(t, 0, table.Len())

	table.Append(Record{FullName: "MARIA LOPEZ", DNI: "123456789"})
	table.Append(Record{FullName: "JUAN PEREZ", DNI: "87654321"})

	rows := table.Rows()
	assert.Len(t, rows, 2)
	assert.Equal(t, "MARIA LOPEZ", rows[0].FullName)
	assert.Equal(t, "JUAN PEREZ", rows[1].FullName)
}

func TestTableRowsReturnsCopy(t *testing.T) {
	table := NewTable()
	table.Append(Record{DNI: "123456789"})

	rows := table.Rows()
	rows[0].DNI = "tampered"
	assert.Equal(t, "123456789", table.Rows()[0].DNI)
}

func TestTableClear(t *testing.T) {
	table := NewTable()
	table.Append(Record{DNI: "123456789"})
	table.Clear()
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Rows())
}

func TestTableConcurrentAppend(t *testing.T) {
	table := NewTable()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			table.Append(Record{DNI: "123456789"})
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, table.Len())
}

func TestNopForm(t *testing.T) {
	var f NopForm
	f.Populate(ScanResult{}) // must not panic
	f.Reset()
}
