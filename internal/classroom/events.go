package classroom

// Verb identifies the kind of registry mutation an Activity describes.
type Verb string

const (
	VerbCreated   Verb = "created"
	VerbRemoved   Verb = "removed"
	VerbEnrolled  Verb = "enrolled"
	VerbScheduled Verb = "scheduled"
	VerbSubmitted Verb = "submitted"
)

// Activity describes a successful registry mutation. Activities are
// published over the registry's broker for the UI activity feed.
type Activity struct {
	Verb      Verb
	Classroom string
	Subject   string // student or assignment id, empty for classroom-level verbs
}

func (a Activity) String() string {
	switch a.Verb {
	case VerbCreated:
		return "classroom " + a.Classroom + " created"
	case VerbRemoved:
		return "classroom " + a.Classroom + " removed"
	case VerbEnrolled:
		return "student " + a.Subject + " enrolled in " + a.Classroom
	case VerbScheduled:
		return "assignment " + a.Subject + " scheduled for " + a.Classroom
	case VerbSubmitted:
		return "assignment " + a.Subject + " submitted in " + a.Classroom
	default:
		return string(a.Verb) + " " + a.Classroom
	}
}
