package remodel

// Phase is one named stage in the fixed, ordered progression a Project moves through while in progress.
type Phase string

const (
	PhasePlanning     Phase = `planning`
	PhaseDemolition   Phase = `demolition`
	PhaseConstruction Phase = `construction`
	PhaseFinishing    Phase = `finishing`
)

// StandardPhases returns the phase progression every Project receives at construction.
// The returned slice is a fresh copy on each call.
func StandardPhases() []Phase {
	return []Phase{
		PhasePlanning,
		PhaseDemolition,
		PhaseConstruction,
		PhaseFinishing,
	}
}
