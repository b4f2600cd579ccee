package workflow

// Style controls how a parameter value is quoted in the rendered document.
type Style uint8

const (
	// Plain leaves the decision to the formatter. Values containing a line
	// break are written as literal blocks.
	Plain Style = iota
	// SingleQuoted forces single quotes, used for values that would
	// otherwise be read as numbers or YAML indicators.
	SingleQuoted
)

// Param is one entry of a step's `with` or `env` mapping.
type Param struct {
	Key   string
	Value string
	Style Style
}

// P builds a plain parameter.
func P(key, value string) Param {
	return Param{Key: key, Value: value}
}

// Q builds a single-quoted parameter.
func Q(key, value string) Param {
	return Param{Key: key, Value: value, Style: SingleQuoted}
}

// Step is a single workflow step. Empty fields are omitted when rendered.
// Keys are written in the order name, if, uses, shell, run, env, with.
type Step struct {
	Name string
	// If is a guard predicate in the CI engine's expression syntax.
	If    string
	Uses  string
	Shell string
	Run   string
	Env   []Param
	With  []Param
}

// Job is a named section of the workflow.
type Job struct {
	// ID is the key of the job under `jobs:` and the name other jobs list in
	// their needs.
	ID string
	// Name is the optional display name.
	Name   string
	RunsOn string
	If     string
	// Needs lists the IDs of jobs that must finish first. A nil slice omits
	// the key; a non-nil empty slice renders `needs: []`.
	Needs []string
	// Matrix is the ordered list of architecture tags bound to
	// `matrix.target`. Empty means no strategy block.
	Matrix []string
	Steps  []Step
}

// Trigger is the `on:` block of the workflow.
type Trigger struct {
	Branches         []string
	Tags             []string
	PullRequest      bool
	WorkflowDispatch bool
}

// DefaultTrigger runs on pushes to the main branches, on every tag, on pull
// requests and on manual dispatch.
func DefaultTrigger() Trigger {
	return Trigger{
		Branches:         []string{"main", "master"},
		Tags:             []string{"*"},
		PullRequest:      true,
		WorkflowDispatch: true,
	}
}

// Document is the complete generated workflow.
type Document struct {
	Meta Meta
	On   Trigger
	Jobs []Job
}

// JobIDs returns the job IDs in document order.
func (d *Document) JobIDs() []string {
	out := make([]string, 0, len(d.Jobs))
	for _, j := range d.Jobs {
		out = append(out, j.ID)
	}
	return out
}

// Job returns the job with the given ID.
func (d *Document) Job(id string) (Job, bool) {
	for _, j := range d.Jobs {
		if j.ID == id {
			return j, true
		}
	}
	return Job{}, false
}
