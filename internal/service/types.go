package service

// Task statuses as reported by the backend.
const (
	StatusNeedsAction = "needsAction"
	StatusCompleted   = "completed"
)

// Task represents a single remote task.
type Task struct {
	ID     string
	Title  string
	Notes  string
	Status string // StatusNeedsAction or StatusCompleted
}

// Completed reports whether the task is completed.
func (t Task) Completed() bool {
	return t.Status == StatusCompleted
}

// TaskList represents a remote task list.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}
