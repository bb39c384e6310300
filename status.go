package remodel

// Status is the coarse lifecycle state of a Project.
//
// Status is a closed enumeration.
// The zero value is not a valid status, use the constants below.
type Status string

const (
	StatusNotStarted Status = `not started`
	StatusInProgress Status = `in progress`
	StatusCompleted  Status = `completed`
)

// Statuses is the canonical ordered set of valid Status values.
var Statuses = []Status{
	StatusNotStarted,
	StatusInProgress,
	StatusCompleted,
}

// IsValid tells whether the status is a member of the closed enumeration.
func (s Status) IsValid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) String() string { return string(s) }
