package storage

import (
	"github.com/Sam-Pewton/reverse-engineer-confusion-matrix/internal/model"
)

// Sink receives accepted matrices one record at a time.
// Implementations own durability, the caller owns record order.
type Sink interface {
	Write(record model.Record) error
	Close() error
}
