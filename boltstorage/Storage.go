// Package boltstorage provides a ProjectStorage persisted in a bolt database file.
package boltstorage

import (
	"bytes"
	"encoding/gob"

	"github.com/boltdb/bolt"
	"github.com/mclancy96/remodel"
	uuid "github.com/satori/go.uuid"
)

// New opens (or creates) the bolt database file at the given path.
func New(path string) (*Storage, error) {
	db, err := bolt.Open(path, 0600, nil)

	return &Storage{DB: db}, err
}

// Storage is a remodel.ProjectStorage on top of a single bolt bucket.
// Records are gob encoded, keys are the record ids.
type Storage struct {
	DB *bolt.DB
}

var bucketName = []byte(`remodel.ProjectRecord`)

// Close the Storage database and release the file lock
func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Save(record *remodel.ProjectRecord) error {
	return s.DB.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}

		if record.ID == `` {
			record.ID = uuid.NewV4().String()
		}

		value, err := encode(record)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(record.ID), value)
	})
}

func (s *Storage) FindByID(id string) (*remodel.ProjectRecord, bool, error) {
	var record *remodel.ProjectRecord

	err := s.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}

		encodedValue := bucket.Get([]byte(id))
		if encodedValue == nil {
			return nil
		}

		decoded, err := decode(encodedValue)
		if err != nil {
			return err
		}

		record = decoded
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return record, record != nil, nil
}

func (s *Storage) FindAll() ([]*remodel.ProjectRecord, error) {
	var records []*remodel.ProjectRecord

	err := s.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(_, encodedValue []byte) error {
			record, err := decode(encodedValue)
			if err != nil {
				return err
			}
			records = append(records, record)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (s *Storage) DeleteByID(id string) error {
	return s.DB.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return remodel.ErrNotFound
		}

		if v := bucket.Get([]byte(id)); v == nil {
			return remodel.ErrNotFound
		}

		return bucket.Delete([]byte(id))
	})
}

func encode(record *remodel.ProjectRecord) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := gob.NewEncoder(buf)
	if err := enc.Encode(record); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (*remodel.ProjectRecord, error) {
	record := &remodel.ProjectRecord{}
	dec := gob.NewDecoder(bytes.NewBuffer(data))
	if err := dec.Decode(record); err != nil {
		return nil, err
	}
	return record, nil
}
