package remodel

// ProjectStorage is the port through which project records are persisted.
//
// The interface is deliberately small so writing a new implementation stays a beginner exercise,
// and every implementation is expected to pass the shared behaviour spec in the contracts package.
type ProjectStorage interface {
	// Save stores the record under its ID.
	// When the record has no ID yet, Save assigns a fresh unique one to it.
	// Saving an already stored ID overwrites the previous record.
	Save(record *ProjectRecord) error
	// FindByID returns the stored record for the given id.
	// A missing id is not an error, it is reported through the found flag.
	FindByID(id string) (_ *ProjectRecord, found bool, _ error)
	// FindAll returns every stored record.
	FindAll() ([]*ProjectRecord, error)
	// DeleteByID removes the record stored under the given id,
	// and returns ErrNotFound when there is none.
	DeleteByID(id string) error
	// Close releases the resources of the storage.
	Close() error
}
