package classroom

// Assignment is one gradable unit of work scheduled for a classroom.
// It starts pending and transitions one-way to submitted.
type Assignment struct {
	id        string
	title     string
	dueDate   string
	submitted bool
}

// NewAssignment creates a pending assignment.
func NewAssignment(id, title, dueDate string) *Assignment {
	return &Assignment{id: id, title: title, dueDate: dueDate}
}

// ID returns the assignment identifier, unique within its classroom.
func (a *Assignment) ID() string { return a.id }

// Title returns the assignment title.
func (a *Assignment) Title() string { return a.title }

// DueDate returns the due date as entered.
func (a *Assignment) DueDate() string { return a.dueDate }

// Submitted reports whether the assignment has been submitted.
func (a *Assignment) Submitted() bool { return a.submitted }

// Submit marks the assignment submitted. The transition is one-way and
// idempotent: submitting twice is harmless, there is no un-submit.
func (a *Assignment) Submit() {
	a.submitted = true
}

func (a *Assignment) String() string {
	status := "[Pending]"
	if a.submitted {
		status = "[Submitted]"
	}
	return a.id + " - " + a.title + " (Due: " + a.dueDate + ") " + status
}
