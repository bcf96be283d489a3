package classroom

// Student is an enrolled student. Immutable after construction; a student
// belongs to exactly one classroom and is discarded with it.
type Student struct {
	id   string
	name string
}

// NewStudent creates a student with the given identifier and display name.
func NewStudent(id, name string) Student {
	return Student{id: id, name: name}
}

// ID returns the student identifier, unique within its classroom.
func (s Student) ID() string { return s.id }

// Name returns the student display name.
func (s Student) Name() string { return s.name }

func (s Student) String() string {
	return s.id + " - " + s.name
}
