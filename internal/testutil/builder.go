// Package testutil provides helpers for seeding registries in tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vclass/internal/classroom"
)

// studentData holds one student to be enrolled.
type studentData struct {
	id   string
	name string
}

// assignmentData holds one assignment to be scheduled.
type assignmentData struct {
	id        string
	title     string
	due       string
	submitted bool
}

// classroomData accumulates everything one classroom is seeded with.
type classroomData struct {
	name        string
	students    []studentData
	assignments []assignmentData
}

// ClassroomOption configures a classroom being seeded.
type ClassroomOption func(*classroomData)

// WithStudent enrolls a student in the classroom.
func WithStudent(id, name string) ClassroomOption {
	return func(c *classroomData) {
		c.students = append(c.students, studentData{id: id, name: name})
	}
}

// WithAssignment schedules a pending assignment in the classroom.
func WithAssignment(id, title, due string) ClassroomOption {
	return func(c *classroomData) {
		c.assignments = append(c.assignments, assignmentData{id: id, title: title, due: due})
	}
}

// WithSubmittedAssignment schedules an assignment already marked submitted.
func WithSubmittedAssignment(id, title, due string) ClassroomOption {
	return func(c *classroomData) {
		c.assignments = append(c.assignments, assignmentData{id: id, title: title, due: due, submitted: true})
	}
}

// Builder accumulates seed data and applies it in insertion order, so
// seeded registries keep the same ordering guarantees live ones have.
type Builder struct {
	t          *testing.T
	registry   *classroom.Registry
	classrooms []classroomData
}

// NewBuilder creates a builder seeding the given registry.
func NewBuilder(t *testing.T, registry *classroom.Registry) *Builder {
	t.Helper()
	return &Builder{t: t, registry: registry}
}

// WithClassroom adds a classroom with optional students and assignments.
func (b *Builder) WithClassroom(name string, opts ...ClassroomOption) *Builder {
	c := classroomData{name: name}
	for _, opt := range opts {
		opt(&c)
	}
	b.classrooms = append(b.classrooms, c)
	return b
}

// Build applies all accumulated data. Every insert must succeed; a
// duplicate in the seed data is a test bug and fails immediately.
func (b *Builder) Build() *classroom.Registry {
	b.t.Helper()
	for _, data := range b.classrooms {
		require.True(b.t, b.registry.AddClassroom(data.name),
			"seeding classroom %q failed", data.name)
		c, ok := b.registry.Classroom(data.name)
		require.True(b.t, ok)

		for _, s := range data.students {
			require.True(b.t, c.AddStudent(classroom.NewStudent(s.id, s.name)),
				"seeding student %q in %q failed", s.id, data.name)
		}
		for _, a := range data.assignments {
			require.True(b.t, c.AddAssignment(classroom.NewAssignment(a.id, a.title, a.due)),
				"seeding assignment %q in %q failed", a.id, data.name)
			if a.submitted {
				require.True(b.t, c.SubmitAssignment(a.id))
			}
		}
	}
	return b.registry
}
