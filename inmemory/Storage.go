// Package inmemory provides a ProjectStorage that lives entirely in process memory,
// for fast and descriptive feedback loops during development and testing.
package inmemory

import (
	"sync"

	"github.com/mclancy96/remodel"
	uuid "github.com/satori/go.uuid"
)

func NewStorage() *Storage {
	return &Storage{}
}

// Storage is an in memory remodel.ProjectStorage.
//
// Records are kept in insertion order and handed out as detached copies,
// mutating a returned record never leaks back into the storage.
// The zero value is ready to use.
type Storage struct {
	// NewID overrides how fresh record ids are made. Defaults to a random uuid.
	NewID func() (string, error)

	mutex   sync.RWMutex
	order   []string
	records map[string]remodel.ProjectRecord
}

func (s *Storage) Save(record *remodel.ProjectRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if record.ID == `` {
		id, err := s.newID()
		if err != nil {
			return err
		}
		record.ID = id
	}

	if s.records == nil {
		s.records = make(map[string]remodel.ProjectRecord)
	}
	if _, ok := s.records[record.ID]; !ok {
		s.order = append(s.order, record.ID)
	}
	s.records[record.ID] = *clone(record)
	return nil
}

func (s *Storage) FindByID(id string) (*remodel.ProjectRecord, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, false, nil
	}
	return clone(&record), true, nil
}

func (s *Storage) FindAll() ([]*remodel.ProjectRecord, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	records := make([]*remodel.ProjectRecord, 0, len(s.order))
	for _, id := range s.order {
		record := s.records[id]
		records = append(records, clone(&record))
	}
	return records, nil
}

func (s *Storage) DeleteByID(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.records[id]; !ok {
		return remodel.ErrNotFound
	}
	delete(s.records, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Storage) Close() error { return nil }

func (s *Storage) newID() (string, error) {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewV4().String(), nil
}

func clone(record *remodel.ProjectRecord) *remodel.ProjectRecord {
	c := *record
	c.Phases = make([]remodel.Phase, len(record.Phases))
	copy(c.Phases, record.Phases)
	return &c
}
