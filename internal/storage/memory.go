package storage

import (
	"github.com/Sam-Pewton/reverse-engineer-confusion-matrix/internal/model"
)

// MemorySink keeps all records in memory, preserving write order.
type MemorySink struct {
	Records []model.Record
	closed  bool
}

// NewMemorySink creates a new in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{Records: make([]model.Record, 0)}
}

func (m *MemorySink) Write(record model.Record) error {
	m.Records = append(m.Records, record)
	return nil
}

func (m *MemorySink) Close() error {
	m.closed = true
	return nil
}

// Closed checks if the sink was closed.
func (m *MemorySink) Closed() bool {
	return m.closed
}
