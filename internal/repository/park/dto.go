package park

import "github.com/zentrail/parkchat/internal/domain"

// parkDoc mirrors the stored JSON shape (NPS API field names).
type parkDoc struct {
	ParkCode    string     `json:"parkCode"`
	Name        string     `json:"name"`
	FullName    string     `json:"fullName,omitempty"`
	Description string     `json:"description"`
	States      string     `json:"states"`
	Designation string     `json:"designation,omitempty"`
	URL         string     `json:"url,omitempty"`
	Activities  []namedDoc `json:"activities,omitempty"`
	Topics      []namedDoc `json:"topics,omitempty"`
}

type namedDoc struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

func docFromDomain(p *domain.Park) parkDoc {
	return parkDoc{
		ParkCode:    p.Code(),
		Name:        p.Name(),
		Description: p.Description(),
		States:      p.States(),
		Designation: p.Designation(),
		URL:         p.URL(),
		Activities:  namedFromActivities(p.Activities()),
		Topics:      namedFromTopics(p.Topics()),
	}
}

// toDomain normalizes an ad hoc stored document into the typed Park.
// Prefers the short name; falls back to fullName for records upserted
// straight from the NPS API.
func (d *parkDoc) toDomain() domain.Park {
	name := d.Name
	if name == "" {
		name = d.FullName
	}
	return domain.ReconstructPark(
		d.ParkCode, name, d.Description, d.States, d.Designation, d.URL,
		activitiesFromNamed(d.Activities), topicsFromNamed(d.Topics),
	)
}

func namedFromActivities(in []domain.Activity) []namedDoc {
	out := make([]namedDoc, 0, len(in))
	for _, a := range in {
		out = append(out, namedDoc{ID: a.ID, Name: a.Name})
	}
	return out
}

func namedFromTopics(in []domain.Topic) []namedDoc {
	out := make([]namedDoc, 0, len(in))
	for _, t := range in {
		out = append(out, namedDoc{ID: t.ID, Name: t.Name})
	}
	return out
}

func activitiesFromNamed(in []namedDoc) []domain.Activity {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Activity, 0, len(in))
	for _, n := range in {
		out = append(out, domain.Activity{ID: n.ID, Name: n.Name})
	}
	return out
}

func topicsFromNamed(in []namedDoc) []domain.Topic {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Topic, 0, len(in))
	for _, n := range in {
		out = append(out, domain.Topic{ID: n.ID, Name: n.Name})
	}
	return out
}
