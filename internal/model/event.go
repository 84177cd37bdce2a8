package model

// Event is an externally delivered edit. The set of implementations is
// closed: ModifyFile, AddProject and RemoveProject.
type Event interface {
	// ProjectRoot returns the root path the event targets.
	ProjectRoot() Path
	isEvent()
}

// ModifyFile changes one file of a project. A nil Content deletes it.
type ModifyFile struct {
	Root    Path
	Name    Path
	Content *string
}

// AddProject replaces the whole file set of a project, registering it when new.
type AddProject struct {
	Root  Path
	Files FileSet
}

// RemoveProject drops a project and everything known about it.
type RemoveProject struct {
	Root Path
}

// ProjectRoot implements Event.
func (e ModifyFile) ProjectRoot() Path { return e.Root }

// ProjectRoot implements Event.
func (e AddProject) ProjectRoot() Path { return e.Root }

// ProjectRoot implements Event.
func (e RemoveProject) ProjectRoot() Path { return e.Root }

func (ModifyFile) isEvent()    {}
func (AddProject) isEvent()    {}
func (RemoveProject) isEvent() {}
