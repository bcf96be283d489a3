package classroom

import (
	"vclass/internal/log"
	"vclass/internal/pubsub"
)

// Registry is the authoritative collection of classrooms for a running
// session. Classroom names are globally unique; classrooms iterate in
// creation order. Construct one instance at startup and hand it to the UI;
// there is no package-level singleton so tests can build isolated
// registries.
//
// Not safe for concurrent use. Uniqueness checks are check-then-insert, so
// any concurrent front end would need to serialize access.
type Registry struct {
	classrooms []*Classroom
	activity   *pubsub.Broker[Activity]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		activity: pubsub.NewBroker[Activity](),
	}
}

// AddClassroom creates an empty classroom with the given name.
// Returns false without mutation when the name is already taken.
// Callers validate emptiness before calling; the registry only checks
// duplication.
func (r *Registry) AddClassroom(name string) bool {
	if _, ok := r.Classroom(name); ok {
		log.Warn(log.CatRegistry, "classroom already exists", "name", name)
		return false
	}
	r.classrooms = append(r.classrooms, newClassroom(name, r.activity))
	log.Info(log.CatRegistry, "classroom created", "name", name)
	r.activity.Publish(pubsub.CreatedEvent, Activity{Verb: VerbCreated, Classroom: name})
	return true
}

// RemoveClassroom removes the named classroom and everything it owns.
// Students and assignments cascade: after removal none of them are
// reachable through the registry. Returns false when no such classroom
// exists.
func (r *Registry) RemoveClassroom(name string) bool {
	for i, c := range r.classrooms {
		if c.Name() == name {
			r.classrooms = append(r.classrooms[:i], r.classrooms[i+1:]...)
			c.drop()
			log.Info(log.CatRegistry, "classroom removed", "name", name)
			r.activity.Publish(pubsub.DeletedEvent, Activity{Verb: VerbRemoved, Classroom: name})
			return true
		}
	}
	log.Warn(log.CatRegistry, "classroom not found", "name", name)
	return false
}

// Classroom looks up a classroom by name.
func (r *Registry) Classroom(name string) (*Classroom, bool) {
	for _, c := range r.classrooms {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Classrooms returns all classrooms in creation order.
func (r *Registry) Classrooms() []*Classroom {
	out := make([]*Classroom, len(r.classrooms))
	copy(out, r.classrooms)
	return out
}

// Len returns the number of classrooms.
func (r *Registry) Len() int {
	return len(r.classrooms)
}

// Activity returns the broker publishing registry mutations.
func (r *Registry) Activity() *pubsub.Broker[Activity] {
	return r.activity
}

// Close shuts down the activity broker.
func (r *Registry) Close() {
	r.activity.Close()
}
