// Package contracts holds reusable behaviour specifications.
//
// A contract describes what an implementation of a port must do,
// written once as a nested spec and executed by every implementation's own test suite.
package contracts

import (
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/stretchr/testify/require"

	"github.com/mclancy96/remodel"
	"github.com/mclancy96/remodel/fixtures"
)

// ProjectStorage is the behaviour specification every remodel.ProjectStorage implementation must satisfy.
//
//	contracts.ProjectStorage{Subject: func(tb testing.TB) remodel.ProjectStorage {
//		return inmemory.NewStorage()
//	}}.Test(t)
type ProjectStorage struct {
	Subject func(tb testing.TB) remodel.ProjectStorage
}

func (c ProjectStorage) storage() testcase.Var {
	return testcase.Var{
		Name: `remodel.ProjectStorage`,
		Init: func(t *testcase.T) interface{} {
			storage := c.Subject(t)
			t.Defer(storage.Close)
			return storage
		},
	}
}

func (c ProjectStorage) storageGet(t *testcase.T) remodel.ProjectStorage {
	return c.storage().Get(t).(remodel.ProjectStorage)
}

func (c ProjectStorage) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c ProjectStorage) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}

func (c ProjectStorage) Spec(s *testcase.Spec) {
	defer s.Finish()

	record := s.Let(`record`, func(t *testcase.T) interface{} {
		return fixtures.NewProjectRecord()
	})
	recordGet := func(t *testcase.T) *remodel.ProjectRecord {
		return record.Get(t).(*remodel.ProjectRecord)
	}

	s.Describe(`.Save`, func(s *testcase.Spec) {
		subject := func(t *testcase.T) error {
			return c.storageGet(t).Save(recordGet(t))
		}

		s.Then(`it assigns a fresh id to a record that has none`, func(t *testcase.T) {
			require.Nil(t, subject(t))
			require.NotEmpty(t, recordGet(t).ID)
		})

		s.Then(`assigned ids are unique across saves`, func(t *testcase.T) {
			require.Nil(t, subject(t))
			other := fixtures.NewProjectRecord()
			require.Nil(t, c.storageGet(t).Save(other))
			require.NotEqual(t, recordGet(t).ID, other.ID)
		})

		s.Then(`the saved record can be found by its id`, func(t *testcase.T) {
			require.Nil(t, subject(t))

			found, ok, err := c.storageGet(t).FindByID(recordGet(t).ID)
			require.Nil(t, err)
			require.True(t, ok)
			require.Equal(t, recordGet(t), found)
		})

		s.When(`the record already has an id`, func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				recordGet(t).ID = `predefined-id`
			})

			s.Then(`the id is kept as is`, func(t *testcase.T) {
				require.Nil(t, subject(t))
				require.Equal(t, `predefined-id`, recordGet(t).ID)
			})

			s.And(`a record was already saved under that id`, func(s *testcase.Spec) {
				s.Before(func(t *testcase.T) {
					previous := fixtures.NewProjectRecord()
					previous.ID = `predefined-id`
					require.Nil(t, c.storageGet(t).Save(previous))
				})

				s.Then(`saving overwrites the previous record`, func(t *testcase.T) {
					require.Nil(t, subject(t))

					found, ok, err := c.storageGet(t).FindByID(`predefined-id`)
					require.Nil(t, err)
					require.True(t, ok)
					require.Equal(t, recordGet(t), found)
				})
			})
		})
	})

	s.Describe(`.FindByID`, func(s *testcase.Spec) {
		s.When(`the id belongs to no stored record`, func(s *testcase.Spec) {
			s.Then(`it reports absence without an error`, func(t *testcase.T) {
				found, ok, err := c.storageGet(t).FindByID(`no-such-id`)
				require.Nil(t, err)
				require.False(t, ok)
				require.Nil(t, found)
			})
		})

		s.When(`the record is stored`, func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				require.Nil(t, c.storageGet(t).Save(recordGet(t)))
			})

			s.Then(`it returns an equal record`, func(t *testcase.T) {
				found, ok, err := c.storageGet(t).FindByID(recordGet(t).ID)
				require.Nil(t, err)
				require.True(t, ok)
				require.Equal(t, recordGet(t), found)
			})

			s.Then(`the returned record is detached from the storage`, func(t *testcase.T) {
				found, _, err := c.storageGet(t).FindByID(recordGet(t).ID)
				require.Nil(t, err)
				found.Name = `mutated after the fact`

				again, _, err := c.storageGet(t).FindByID(recordGet(t).ID)
				require.Nil(t, err)
				require.Equal(t, recordGet(t).Name, again.Name)
			})
		})
	})

	s.Describe(`.FindAll`, func(s *testcase.Spec) {
		subject := func(t *testcase.T) ([]*remodel.ProjectRecord, error) {
			return c.storageGet(t).FindAll()
		}

		s.When(`the storage is empty`, func(s *testcase.Spec) {
			s.Then(`it returns no records and no error`, func(t *testcase.T) {
				records, err := subject(t)
				require.Nil(t, err)
				require.Empty(t, records)
			})
		})

		s.When(`multiple records are stored`, func(s *testcase.Spec) {
			others := s.Let(`other records`, func(t *testcase.T) interface{} {
				var others []*remodel.ProjectRecord
				for i := 0; i < 3; i++ {
					r := fixtures.NewProjectRecord()
					require.Nil(t, c.storageGet(t).Save(r))
					others = append(others, r)
				}
				return others
			})

			s.Then(`every stored record is returned exactly once`, func(t *testcase.T) {
				expected := append([]*remodel.ProjectRecord{}, others.Get(t).([]*remodel.ProjectRecord)...)
				require.Nil(t, c.storageGet(t).Save(recordGet(t)))
				expected = append(expected, recordGet(t))

				records, err := subject(t)
				require.Nil(t, err)
				require.ElementsMatch(t, expected, records)
			})
		})
	})

	s.Describe(`.DeleteByID`, func(s *testcase.Spec) {
		s.When(`the id belongs to no stored record`, func(s *testcase.Spec) {
			s.Then(`it yields ErrNotFound`, func(t *testcase.T) {
				require.Equal(t, remodel.ErrNotFound, c.storageGet(t).DeleteByID(`no-such-id`))
			})
		})

		s.When(`the record is stored`, func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				require.Nil(t, c.storageGet(t).Save(recordGet(t)))
			})

			s.Then(`the record is gone afterwards`, func(t *testcase.T) {
				require.Nil(t, c.storageGet(t).DeleteByID(recordGet(t).ID))

				_, ok, err := c.storageGet(t).FindByID(recordGet(t).ID)
				require.Nil(t, err)
				require.False(t, ok)
			})

			s.Then(`other records are left alone`, func(t *testcase.T) {
				other := fixtures.NewProjectRecord()
				require.Nil(t, c.storageGet(t).Save(other))

				require.Nil(t, c.storageGet(t).DeleteByID(recordGet(t).ID))

				_, ok, err := c.storageGet(t).FindByID(other.ID)
				require.Nil(t, err)
				require.True(t, ok)
			})

			s.Then(`deleting twice yields ErrNotFound the second time`, func(t *testcase.T) {
				require.Nil(t, c.storageGet(t).DeleteByID(recordGet(t).ID))
				require.Equal(t, remodel.ErrNotFound, c.storageGet(t).DeleteByID(recordGet(t).ID))
			})
		})
	})
}
