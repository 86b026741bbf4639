package dataset

import "context"

/*
Writer is an interface for a destination to which examples
can be written.
*/
type Writer interface {
	// Write will attempt to write the given
	// examples and will return the actually written
	// number of examples and an error (if not all examples
	// could be written)
	Write(context.Context, []Example) (int, error)
	// Count returns the total number of examples written
	// to the writer
	Count() int
	// Flush ensures any pending written operations finish
	// before returning. It returns an error if that cannot
	// be ensured.
	Flush() error
}
