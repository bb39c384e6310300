package remodel

// Error is an error implementation that allows error values to be declared with the `const` keyword.
//
//	const ErrNotFound remodel.Error = `record is not found`
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

const (
	// ErrNotFound is returned when a storage operation targets a record id that holds no record.
	ErrNotFound Error = `project record is not found`
	// ErrInvalidRecord is returned when a stored record describes a state no Project can be in.
	ErrInvalidRecord Error = `project record describes an invalid project state`
)
