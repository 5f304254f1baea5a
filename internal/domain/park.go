package domain

import "fmt"

// KeyPrefix namespaces all parkchat keys in the store.
const KeyPrefix = "parkchat:"

// Activity is a named activity offered at a park.
type Activity struct {
	ID   string
	Name string
}

// Topic is a named interpretive topic associated with a park.
type Topic struct {
	ID   string
	Name string
}

// Park is the park document aggregate (immutable value object).
// Normalized at the store boundary; the rest of the system trusts its shape.
type Park struct {
	code        string
	name        string
	description string
	states      string
	designation string
	url         string
	activities  []Activity
	topics      []Topic
}

// NewPark validates and creates a Park. Code and name are required.
func NewPark(
	code, name, description, states, designation, url string,
	activities []Activity, topics []Topic,
) (Park, error) {
	if code == "" {
		return Park{}, fmt.Errorf("park code is required")
	}
	if name == "" {
		return Park{}, fmt.Errorf("park name is required")
	}
	return Park{
		code:        code,
		name:        name,
		description: description,
		states:      states,
		designation: designation,
		url:         url,
		activities:  cloneActivities(activities),
		topics:      cloneTopics(topics),
	}, nil
}

// ReconstructPark creates a Park without validation (storage hydration).
func ReconstructPark(
	code, name, description, states, designation, url string,
	activities []Activity, topics []Topic,
) Park {
	return Park{
		code: code, name: name, description: description,
		states: states, designation: designation, url: url,
		activities: activities, topics: topics,
	}
}

// Code returns the unique park code (e.g. "yose").
func (p Park) Code() string { return p.code }

// Name returns the full park name.
func (p Park) Name() string { return p.name }

// Description returns the park description text.
func (p Park) Description() string { return p.description }

// States returns the comma-separated state codes the park spans.
func (p Park) States() string { return p.states }

// Designation returns the park designation (e.g. "National Park").
func (p Park) Designation() string { return p.designation }

// URL returns the official park page URL.
func (p Park) URL() string { return p.url }

// Activities returns the named activities offered at the park.
func (p Park) Activities() []Activity { return p.activities }

// Topics returns the interpretive topics associated with the park.
func (p Park) Topics() []Topic { return p.topics }

// Summary returns the public-facing projection carried in chat results.
func (p Park) Summary() ParkSummary {
	return ParkSummary{
		Name:        p.name,
		Description: p.description,
		Activities:  cloneActivities(p.activities),
	}
}

// ParkSummary is the trimmed park view exposed to chat consumers.
type ParkSummary struct {
	Name        string
	Description string
	Activities  []Activity
}

func cloneActivities(in []Activity) []Activity {
	if in == nil {
		return nil
	}
	out := make([]Activity, len(in))
	copy(out, in)
	return out
}

func cloneTopics(in []Topic) []Topic {
	if in == nil {
		return nil
	}
	out := make([]Topic, len(in))
	copy(out, in)
	return out
}
