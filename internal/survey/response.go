package survey

import "time"

// Answer is the recorded answer to one choice page.
type Answer struct {
	Page     PageID   `json:"page" bson:"page"`
	Prompt   string   `json:"prompt" bson:"prompt"`
	Selected []string `json:"selected,omitempty" bson:"selected,omitempty"`
	Other    string   `json:"other,omitempty" bson:"other,omitempty"`
}

// Response is the snapshot handed to the host when the survey is finished.
type Response struct {
	ID          string     `json:"id" bson:"_id"`
	Status      string     `json:"status,omitempty" bson:"status,omitempty"`
	Answers     []Answer   `json:"answers" bson:"answers"`
	BirthDate   *BirthDate `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	Consent     bool       `json:"consent" bson:"consent"`
	CompletedAt time.Time  `json:"completedAt" bson:"completedAt"`
}

// Response snapshots the answers of the pages in the current resolution, in
// display order. Answers left behind by a different gating answer are not
// included.
func (w *Wizard) Response() Response {
	resp := Response{
		ID:          w.id,
		Status:      w.gating,
		Answers:     []Answer{},
		Consent:     w.consent,
		CompletedAt: w.now().UTC(),
	}

	for _, page := range w.Pages() {
		if page.Kind != KindChoice {
			continue
		}
		selected := w.SelectedLabels(page.ID)
		if len(selected) == 0 {
			continue
		}
		a := Answer{Page: page.ID, Prompt: page.Prompt, Selected: selected}
		if w.answers[page.ID][OtherLabel] {
			a.Other = w.other
		}
		resp.Answers = append(resp.Answers, a)
	}

	if !w.birth.IsZero() {
		d := w.birth
		resp.BirthDate = &d
	}

	return resp
}

// Answer returns the answer recorded for page id, if any.
func (r Response) Answer(id PageID) (Answer, bool) {
	for _, a := range r.Answers {
		if a.Page == id {
			return a, true
		}
	}
	return Answer{}, false
}
