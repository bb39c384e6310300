package remodel_test

import (
	"testing"

	"github.com/adamluzsi/testcase"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/mclancy96/remodel"
	"github.com/mclancy96/remodel/fixtures"
	"github.com/mclancy96/remodel/inmemory"
	"github.com/mclancy96/remodel/mocks"
)

func TestProjectManager(t *testing.T) {
	s := testcase.NewSpec(t)

	manager := s.Let(`manager`, func(t *testcase.T) interface{} {
		return remodel.NewProjectManager()
	})
	managerGet := func(t *testcase.T) *remodel.ProjectManager {
		return manager.Get(t).(*remodel.ProjectManager)
	}

	kitchen := s.Let(`kitchen`, func(t *testcase.T) interface{} {
		return remodel.NewProject(`Kitchen Remodel`)
	})
	bathroom := s.Let(`bathroom`, func(t *testcase.T) interface{} {
		return remodel.NewProject(`Bathroom Remodel`)
	})
	kitchenGet := func(t *testcase.T) *remodel.Project { return kitchen.Get(t).(*remodel.Project) }
	bathroomGet := func(t *testcase.T) *remodel.Project { return bathroom.Get(t).(*remodel.Project) }

	s.Describe(`.AddProject`, func(s *testcase.Spec) {
		subject := func(t *testcase.T) {
			managerGet(t).AddProject(kitchenGet(t))
		}

		s.Then(`the project becomes a member of the registry`, func(t *testcase.T) {
			subject(t)
			require.Contains(t, managerGet(t).Projects(), kitchenGet(t))
		})

		s.Then(`insertion order is preserved`, func(t *testcase.T) {
			subject(t)
			managerGet(t).AddProject(bathroomGet(t))

			require.Equal(t,
				[]*remodel.Project{kitchenGet(t), bathroomGet(t)},
				managerGet(t).Projects())
		})

		s.Then(`the same project may be registered twice`, func(t *testcase.T) {
			subject(t)
			subject(t)
			require.Len(t, managerGet(t).Projects(), 2)
		})
	})

	s.Describe(`.FindByStatus`, func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			managerGet(t).AddProject(kitchenGet(t))
			managerGet(t).AddProject(bathroomGet(t))
		})

		subject := func(t *testcase.T, status remodel.Status) []*remodel.Project {
			return managerGet(t).FindByStatus(status)
		}

		s.When(`none of the projects started yet`, func(s *testcase.Spec) {
			s.Then(`all of them are found as not started`, func(t *testcase.T) {
				require.Equal(t,
					[]*remodel.Project{kitchenGet(t), bathroomGet(t)},
					subject(t, remodel.StatusNotStarted))
			})

			s.Then(`none of them is found as in progress`, func(t *testcase.T) {
				require.Empty(t, subject(t, remodel.StatusInProgress))
			})
		})

		s.When(`one of the projects is started`, func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				kitchenGet(t).Start()
			})

			s.Then(`only that one is found as in progress`, func(t *testcase.T) {
				require.Equal(t,
					[]*remodel.Project{kitchenGet(t)},
					subject(t, remodel.StatusInProgress))
			})

			s.Then(`the other is still found as not started`, func(t *testcase.T) {
				require.Equal(t,
					[]*remodel.Project{bathroomGet(t)},
					subject(t, remodel.StatusNotStarted))
			})
		})

		s.When(`a project completed its progression`, func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				kitchenGet(t).Start()
				for !kitchenGet(t).IsCompleted() {
					kitchenGet(t).AdvancePhase()
				}
			})

			s.Then(`it is found under completed only`, func(t *testcase.T) {
				require.Equal(t, []*remodel.Project{kitchenGet(t)}, subject(t, remodel.StatusCompleted))
				require.NotContains(t, subject(t, remodel.StatusNotStarted), kitchenGet(t))
			})
		})

		s.Then(`matching is exact and case sensitive`, func(t *testcase.T) {
			require.Empty(t, subject(t, remodel.Status(`Not Started`)))
			require.Empty(t, subject(t, remodel.Status(`not started `)))
		})
	})

	s.Describe(`.SaveTo`, func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			managerGet(t).AddProject(kitchenGet(t))
			managerGet(t).AddProject(bathroomGet(t))
		})

		s.Then(`every registered project ends up in the storage`, func(t *testcase.T) {
			storage := inmemory.NewStorage()
			require.Nil(t, managerGet(t).SaveTo(storage))

			records, err := storage.FindAll()
			require.Nil(t, err)
			require.Len(t, records, 2)
			require.Equal(t, `Kitchen Remodel`, records[0].Name)
			require.Equal(t, `Bathroom Remodel`, records[1].Name)
		})

		s.Then(`a storage failure aborts the save and surfaces unchanged`, func(t *testcase.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			const storageErr remodel.Error = `disk is on vacation`
			storage := mocks.NewMockProjectStorage(ctrl)
			storage.EXPECT().Save(gomock.Any()).Return(storageErr)

			require.Equal(t, storageErr, managerGet(t).SaveTo(storage))
		})
	})

	s.Describe(`.LoadFrom`, func(s *testcase.Spec) {
		s.Then(`stored projects are restored in storage order`, func(t *testcase.T) {
			storage := inmemory.NewStorage()
			kitchenGet(t).Start()
			require.Nil(t, storage.Save(kitchenGet(t).Record()))
			require.Nil(t, storage.Save(bathroomGet(t).Record()))

			require.Nil(t, managerGet(t).LoadFrom(storage))

			projects := managerGet(t).Projects()
			require.Len(t, projects, 2)
			require.Equal(t, `Kitchen Remodel`, projects[0].Name())
			require.Equal(t, remodel.StatusInProgress, projects[0].Status())
			require.Equal(t, `Bathroom Remodel`, projects[1].Name())
			require.Equal(t, remodel.StatusNotStarted, projects[1].Status())
		})

		s.Then(`loaded projects are appended after the registered ones`, func(t *testcase.T) {
			storage := inmemory.NewStorage()
			require.Nil(t, storage.Save(bathroomGet(t).Record()))

			managerGet(t).AddProject(kitchenGet(t))
			require.Nil(t, managerGet(t).LoadFrom(storage))

			projects := managerGet(t).Projects()
			require.Len(t, projects, 2)
			require.Equal(t, kitchenGet(t), projects[0])
		})

		s.Then(`a storage failure surfaces unchanged`, func(t *testcase.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			const storageErr remodel.Error = `connection reset by contractor`
			storage := mocks.NewMockProjectStorage(ctrl)
			storage.EXPECT().FindAll().Return(nil, storageErr)

			require.Equal(t, storageErr, managerGet(t).LoadFrom(storage))
			require.Empty(t, managerGet(t).Projects())
		})

		s.Then(`an invalid stored record is rejected`, func(t *testcase.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storage := mocks.NewMockProjectStorage(ctrl)
			storage.EXPECT().FindAll().Return([]*remodel.ProjectRecord{
				{Name: fixtures.ProjectName(), Status: remodel.Status(`half done`)},
			}, nil)

			require.Equal(t, remodel.ErrInvalidRecord, managerGet(t).LoadFrom(storage))
		})
	})
}
