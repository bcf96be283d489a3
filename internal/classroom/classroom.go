// Package classroom implements the in-memory domain model for the virtual
// classroom manager: students, assignments, classrooms, and the registry
// that owns them.
//
// Duplicate and not-found outcomes are ordinary results signalled with
// booleans and comma-ok lookups, never errors. None of the types are safe
// for concurrent use; the Bubble Tea update loop serializes all access.
package classroom

import "vclass/internal/pubsub"

// Classroom owns one classroom's students and assignments. Identifiers are
// unique per classroom, and iteration follows insertion order; both are
// guaranteed by keeping each collection in a single ordered slice with a
// duplicate scan on insert.
//
// Classrooms are created by the Registry and hold no reference back to it.
type Classroom struct {
	name        string
	students    []Student
	assignments []*Assignment
	activity    pubsub.Publisher[Activity]
}

func newClassroom(name string, activity pubsub.Publisher[Activity]) *Classroom {
	return &Classroom{name: name, activity: activity}
}

// Name returns the classroom name.
func (c *Classroom) Name() string { return c.name }

// AddStudent enrolls a student. Returns false without mutation when a
// student with the same id is already enrolled.
func (c *Classroom) AddStudent(s Student) bool {
	if _, ok := c.Student(s.ID()); ok {
		return false
	}
	c.students = append(c.students, s)
	c.publish(VerbEnrolled, s.ID())
	return true
}

// AddAssignment schedules an assignment. Returns false without mutation
// when an assignment with the same id is already scheduled.
func (c *Classroom) AddAssignment(a *Assignment) bool {
	if _, ok := c.Assignment(a.ID()); ok {
		return false
	}
	c.assignments = append(c.assignments, a)
	c.publish(VerbScheduled, a.ID())
	return true
}

// Student looks up an enrolled student by id.
func (c *Classroom) Student(id string) (Student, bool) {
	for _, s := range c.students {
		if s.ID() == id {
			return s, true
		}
	}
	return Student{}, false
}

// Assignment looks up a scheduled assignment by id.
func (c *Classroom) Assignment(id string) (*Assignment, bool) {
	for _, a := range c.assignments {
		if a.ID() == id {
			return a, true
		}
	}
	return nil, false
}

// Students returns enrolled students in enrollment order.
func (c *Classroom) Students() []Student {
	out := make([]Student, len(c.students))
	copy(out, c.students)
	return out
}

// Assignments returns scheduled assignments in scheduling order.
func (c *Classroom) Assignments() []*Assignment {
	out := make([]*Assignment, len(c.assignments))
	copy(out, c.assignments)
	return out
}

// SubmitAssignment marks the assignment with the given id submitted.
// Returns false when no such assignment is scheduled.
func (c *Classroom) SubmitAssignment(id string) bool {
	a, ok := c.Assignment(id)
	if !ok {
		return false
	}
	a.Submit()
	c.publish(VerbSubmitted, id)
	return true
}

// drop releases everything the classroom owns. Called by the registry on
// removal so no student or assignment stays reachable through it.
func (c *Classroom) drop() {
	c.students = nil
	c.assignments = nil
	c.activity = nil
}

func (c *Classroom) publish(verb Verb, subject string) {
	if c.activity == nil {
		return
	}
	c.activity.Publish(pubsub.UpdatedEvent, Activity{Verb: verb, Classroom: c.name, Subject: subject})
}
