package storage

import (
	"github.com/Sam-Pewton/reverse-engineer-confusion-matrix/internal/model"
)

// VoidSink is a noop sink
type VoidSink struct {
}

// NewVoidSink creates a new noop sink
func NewVoidSink() *VoidSink {
	return &VoidSink{}
}

func (v VoidSink) Write(record model.Record) error {
	return nil
}

func (v VoidSink) Close() error {
	return nil
}
