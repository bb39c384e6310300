package remodel

// ProjectManager is an ordered registry of projects that answers status based lookups.
//
// The manager holds projects by reference and never copies them,
// the same *Project can be registered in many managers (or twice in the same one).
// There is no removal, a registry only grows.
type ProjectManager struct {
	projects []*Project
}

func NewProjectManager() *ProjectManager {
	return &ProjectManager{}
}

// AddProject appends the project to the registry.
// Insertion order is preserved and duplicates are permitted.
func (m *ProjectManager) AddProject(p *Project) {
	m.projects = append(m.projects, p)
}

// Projects returns the registered projects in insertion order.
// The slice is a copy but the projects themselves are shared.
func (m *ProjectManager) Projects() []*Project {
	projects := make([]*Project, len(m.projects))
	copy(projects, m.projects)
	return projects
}

// FindByStatus returns the ordered sub sequence of projects whose current status
// equals the given one exactly. An empty result is a valid, non error answer.
func (m *ProjectManager) FindByStatus(status Status) []*Project {
	var matches []*Project
	for _, p := range m.projects {
		if p.Status() == status {
			matches = append(matches, p)
		}
	}
	return matches
}

// SaveTo snapshots every registered project into the given storage, in insertion order.
// The first storage failure aborts the save and is returned unchanged.
func (m *ProjectManager) SaveTo(storage ProjectStorage) error {
	for _, p := range m.projects {
		if err := storage.Save(p.Record()); err != nil {
			return err
		}
	}
	return nil
}

// LoadFrom restores every stored record into the registry, in storage order.
// Loaded projects are appended after the already registered ones.
// Storage and restore failures are returned unchanged, without partial cleanup.
func (m *ProjectManager) LoadFrom(storage ProjectStorage) error {
	records, err := storage.FindAll()
	if err != nil {
		return err
	}
	for _, record := range records {
		p, err := RestoreProject(record)
		if err != nil {
			return err
		}
		m.projects = append(m.projects, p)
	}
	return nil
}
