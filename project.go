package remodel

// Project is the unit of work of the remodel domain.
//
// A project owns its own lifecycle:
// it is created as not started,
// Start puts it in progress on the first phase,
// and AdvancePhase walks the phase progression until the project is completed.
// Every lifecycle operation is a total function,
// calling one in a state it doesn't apply to leaves the project untouched.
type Project struct {
	name   string
	phases []Phase
	status Status
	// index into phases, -1 while no phase is active
	current int
}

// NewProject returns a not started project with the standard phase progression.
func NewProject(name string) *Project {
	return &Project{
		name:    name,
		phases:  StandardPhases(),
		status:  StatusNotStarted,
		current: -1,
	}
}

// Name returns the immutable name the project was constructed with.
func (p *Project) Name() string { return p.name }

// Phases returns the ordered phase progression of the project.
// The returned slice is a copy, mutating it has no effect on the project.
func (p *Project) Phases() []Phase {
	phases := make([]Phase, len(p.phases))
	copy(phases, p.phases)
	return phases
}

// Status returns the current lifecycle status of the project.
func (p *Project) Status() Status { return p.status }

// CurrentPhase returns the active phase of the project.
// A phase is present if and only if the project status is in progress.
func (p *Project) CurrentPhase() (Phase, bool) {
	if p.current < 0 {
		return ``, false
	}
	return p.phases[p.current], true
}

// Start puts the project in progress on the first phase of its progression.
//
// Start on a project that already begun resets it back to the first phase.
func (p *Project) Start() {
	p.status = StatusInProgress
	p.current = 0
}

// AdvancePhase moves an in progress project to its next phase.
// On the last phase it completes the project and clears the active phase.
// A project that is not in progress is left untouched,
// so advancing before Start or after completion is always a safe no-op.
func (p *Project) AdvancePhase() {
	if p.status != StatusInProgress {
		return
	}
	if p.current == len(p.phases)-1 {
		p.status = StatusCompleted
		p.current = -1
		return
	}
	p.current++
}

// IsCompleted tells whether the project reached its terminal status.
func (p *Project) IsCompleted() bool {
	return p.status == StatusCompleted
}
