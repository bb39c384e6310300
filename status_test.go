package remodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mclancy96/remodel"
)

func TestStatus(t *testing.T) {
	t.Run("IsValid", func(t *testing.T) {
		t.Run("accepts every member of the enumeration", func(t *testing.T) {
			for _, status := range remodel.Statuses {
				require.True(t, status.IsValid(), status)
			}
		})

		t.Run("rejects everything else", func(t *testing.T) {
			for _, status := range []remodel.Status{
				``,
				`Not Started`,
				`IN PROGRESS`,
				`done`,
				`completed `,
			} {
				require.False(t, status.IsValid(), status)
			}
		})
	})

	t.Run("String uses the exact external labels", func(t *testing.T) {
		require.Equal(t, `not started`, remodel.StatusNotStarted.String())
		require.Equal(t, `in progress`, remodel.StatusInProgress.String())
		require.Equal(t, `completed`, remodel.StatusCompleted.String())
	})
}

func TestStandardPhases(t *testing.T) {
	t.Run("the progression is fixed and ordered", func(t *testing.T) {
		require.Equal(t, []remodel.Phase{
			remodel.PhasePlanning,
			remodel.PhaseDemolition,
			remodel.PhaseConstruction,
			remodel.PhaseFinishing,
		}, remodel.StandardPhases())
	})

	t.Run("each call returns a fresh copy", func(t *testing.T) {
		phases := remodel.StandardPhases()
		phases[0] = `sabotage`
		require.Equal(t, remodel.PhasePlanning, remodel.StandardPhases()[0])
	})
}
