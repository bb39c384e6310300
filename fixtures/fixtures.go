// Package fixtures provides randomized projects and records for testing.
//
// Fixtures keep test bodies focused on the behaviour under test:
// when a case doesn't care about the concrete name or state, it should not spell one out.
package fixtures

import (
	"math/rand"

	randomdata "github.com/Pallinder/go-randomdata"
	"github.com/mclancy96/remodel"
)

// ProjectName returns a random human readable project name.
func ProjectName() string {
	return randomdata.SillyName() + ` Remodel`
}

// NewProject returns a freshly constructed project with a random name.
func NewProject() *remodel.Project {
	return remodel.NewProject(ProjectName())
}

// NewStartedProject returns an in progress project on a random phase of its progression.
func NewStartedProject() *remodel.Project {
	p := NewProject()
	p.Start()
	for i := rand.Intn(len(p.Phases())); 0 < i; i-- {
		p.AdvancePhase()
	}
	return p
}

// NewCompletedProject returns a project that already walked its whole progression.
func NewCompletedProject() *remodel.Project {
	p := NewProject()
	p.Start()
	for !p.IsCompleted() {
		p.AdvancePhase()
	}
	return p
}

// NewProjectRecord returns the record of a project in a random reachable state.
// The record has no ID yet, storages are expected to assign one on Save.
func NewProjectRecord() *remodel.ProjectRecord {
	switch rand.Intn(3) {
	case 0:
		return NewProject().Record()
	case 1:
		return NewStartedProject().Record()
	default:
		return NewCompletedProject().Record()
	}
}
