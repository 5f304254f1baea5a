package sdk

import "github.com/zentrail/parkchat/internal/domain"

// Park is a national park document. Code and Name are required on write.
type Park struct {
	Code        string
	Name        string
	Description string
	States      string
	Designation string
	URL         string
	Activities  []NamedItem
	Topics      []NamedItem
}

// NamedItem is an NPS reference value (an activity or topic).
type NamedItem struct {
	ID   string
	Name string
}

// ScoredPark is a single retrieval hit.
type ScoredPark struct {
	Park  Park
	Score float64
}

// ParkSummary is the trimmed park view carried in chat results.
type ParkSummary struct {
	Name        string
	Description string
	Activities  []NamedItem
}

// ChatResult is the outcome of one chat exchange: the generated (or fallback)
// response plus the parks it was grounded in.
type ChatResult struct {
	Response string
	Parks    []ParkSummary
}

func parkFromDomain(p domain.Park) Park {
	return Park{
		Code:        p.Code(),
		Name:        p.Name(),
		Description: p.Description(),
		States:      p.States(),
		Designation: p.Designation(),
		URL:         p.URL(),
		Activities:  namedFromActivities(p.Activities()),
		Topics:      namedFromTopics(p.Topics()),
	}
}

func (p Park) toDomain() (domain.Park, error) {
	return domain.NewPark(
		p.Code, p.Name, p.Description, p.States, p.Designation, p.URL,
		activitiesFromNamed(p.Activities), topicsFromNamed(p.Topics),
	)
}

func scoredFromDomain(in []domain.ScoredPark) []ScoredPark {
	out := make([]ScoredPark, 0, len(in))
	for _, s := range in {
		out = append(out, ScoredPark{Park: parkFromDomain(s.Park()), Score: s.Score()})
	}
	return out
}

func chatResultFromDomain(r domain.ChatResult) ChatResult {
	parks := make([]ParkSummary, 0, len(r.Parks))
	for _, p := range r.Parks {
		parks = append(parks, ParkSummary{
			Name:        p.Name,
			Description: p.Description,
			Activities:  namedFromActivities(p.Activities),
		})
	}
	return ChatResult{Response: r.Response, Parks: parks}
}

func namedFromActivities(in []domain.Activity) []NamedItem {
	if len(in) == 0 {
		return nil
	}
	out := make([]NamedItem, 0, len(in))
	for _, a := range in {
		out = append(out, NamedItem{ID: a.ID, Name: a.Name})
	}
	return out
}

func namedFromTopics(in []domain.Topic) []NamedItem {
	if len(in) == 0 {
		return nil
	}
	out := make([]NamedItem, 0, len(in))
	for _, t := range in {
		out = append(out, NamedItem{ID: t.ID, Name: t.Name})
	}
	return out
}

func activitiesFromNamed(in []NamedItem) []domain.Activity {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Activity, 0, len(in))
	for _, n := range in {
		out = append(out, domain.Activity{ID: n.ID, Name: n.Name})
	}
	return out
}

func topicsFromNamed(in []NamedItem) []domain.Topic {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Topic, 0, len(in))
	for _, n := range in {
		out = append(out, domain.Topic{ID: n.ID, Name: n.Name})
	}
	return out
}
