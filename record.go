package remodel

// ProjectRecord is the storable snapshot of a Project.
//
// Projects keep their state unexported so nothing can break the
// phase/status invariant from the outside.
// A record is the exported flat view storages work with,
// and RestoreProject is the only way back from a record to a live Project.
type ProjectRecord struct {
	ID           string
	Name         string
	Status       Status
	CurrentPhase Phase
	Phases       []Phase
}

// Record snapshots the project into a storable record.
// The record shares nothing with the project, it is safe to keep around.
func (p *Project) Record() *ProjectRecord {
	record := &ProjectRecord{
		Name:   p.name,
		Status: p.status,
		Phases: p.Phases(),
	}
	if phase, ok := p.CurrentPhase(); ok {
		record.CurrentPhase = phase
	}
	return record
}

// RestoreProject rebuilds a live Project from a stored record.
//
// Records that describe a state no Project can reach are rejected with ErrInvalidRecord:
// an unknown status, an in progress record whose phase is not part of its progression,
// or a phase on a record that is not in progress.
func RestoreProject(record *ProjectRecord) (*Project, error) {
	if !record.Status.IsValid() {
		return nil, ErrInvalidRecord
	}

	phases := record.Phases
	if len(phases) == 0 {
		phases = StandardPhases()
	}

	p := &Project{
		name:    record.Name,
		status:  record.Status,
		current: -1,
	}
	p.phases = make([]Phase, len(phases))
	copy(p.phases, phases)

	if record.Status != StatusInProgress {
		if record.CurrentPhase != `` {
			return nil, ErrInvalidRecord
		}
		return p, nil
	}

	for i, phase := range p.phases {
		if phase == record.CurrentPhase {
			p.current = i
			return p, nil
		}
	}
	return nil, ErrInvalidRecord
}
