package survey

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AnswerSet maps a page to the selection state of its option labels.
type AnswerSet map[PageID]map[string]bool

// Effect is a side effect a host may apply after a selection.
type Effect int

// Selection effects.
const (
	EffectNone Effect = iota
	// EffectFocusNavigation asks the host to move focus to the navigation controls.
	EffectFocusNavigation
)

// Wizard walks the resolved page list and records answers.
// It is not safe for concurrent use; each open survey owns one.
type Wizard struct {
	id      string
	index   int // 1-based
	gating  string
	answers AnswerSet
	other   string
	birth   BirthDate
	consent bool
	errMsg  string

	now func() time.Time
}

// NewWizard returns a wizard positioned on the first page with no answers.
func NewWizard() *Wizard {
	return &Wizard{
		id:      uuid.NewString(),
		index:   1,
		answers: AnswerSet{},
		now:     time.Now,
	}
}

// ID identifies this survey run.
func (w *Wizard) ID() string { return w.id }

// Pages returns the page list for the current gating answer.
func (w *Wizard) Pages() []Page { return Resolve(w.gating) }

// Total returns the number of pages in the current resolution.
func (w *Wizard) Total() int { return len(w.Pages()) }

// Index returns the 1-based position of the current page.
func (w *Wizard) Index() int {
	if total := w.Total(); w.index > total {
		return total
	}
	return w.index
}

// Current returns the page being displayed.
func (w *Wizard) Current() Page {
	return w.Pages()[w.Index()-1]
}

// Gating returns the recorded answer to the status page.
func (w *Wizard) Gating() string { return w.gating }

// Progress returns the "Question i of N" header.
func (w *Wizard) Progress() string {
	return fmt.Sprintf("Question %d of %d", w.Index(), w.Total())
}

// CanRetreat reports whether Back is enabled.
func (w *Wizard) CanRetreat() bool { return w.Index() > 1 }

// CanAdvance reports whether Next is enabled. On the last page Next becomes Finish.
func (w *Wizard) CanAdvance() bool { return w.Index() < w.Total() }

// IsLast reports whether the current page is the last one.
func (w *Wizard) IsLast() bool { return w.Index() == w.Total() }

// Advance moves to the next page. It reports false and does nothing on the
// last page; finishing goes through Finish.
func (w *Wizard) Advance() bool {
	if !w.CanAdvance() {
		return false
	}
	w.index = w.Index() + 1
	return true
}

// Retreat moves to the previous page. It is a no-op on the first page.
func (w *Wizard) Retreat() bool {
	if !w.CanRetreat() {
		return false
	}
	w.index = w.Index() - 1
	return true
}

// Select applies a click on label for the current page. Labels that are not
// options of the page are ignored.
func (w *Wizard) Select(label string) Effect {
	page := w.Current()
	if page.Kind != KindChoice || !page.HasOption(label) {
		return EffectNone
	}

	if page.ID == PageStatus {
		w.gating = label
	}

	if label == OtherLabel {
		w.other = ""
	}

	if !page.MultiSelect {
		w.answers[page.ID] = map[string]bool{label: true}
		return EffectNone
	}

	sel, ok := w.answers[page.ID]
	if !ok {
		sel = map[string]bool{}
		w.answers[page.ID] = sel
	}
	sel[label] = !sel[label]

	if page.NudgeAt > 0 && sel[label] && w.SelectionCount(page.ID) == page.NudgeAt {
		return EffectFocusNavigation
	}
	return EffectNone
}

// IsSelected reports whether label is selected on page id.
func (w *Wizard) IsSelected(id PageID, label string) bool {
	return w.answers[id][label]
}

// SelectionCount returns how many options are selected on page id.
func (w *Wizard) SelectionCount(id PageID) int {
	n := 0
	for _, on := range w.answers[id] {
		if on {
			n++
		}
	}
	return n
}

// SelectedLabels returns the selected labels of page id in display order.
func (w *Wizard) SelectedLabels(id PageID) []string {
	page, ok := Lookup(id)
	if !ok {
		return nil
	}
	var labels []string
	for _, o := range page.Options {
		if w.answers[id][o.Label] {
			labels = append(labels, o.Label)
		}
	}
	return labels
}

// Answers returns a copy of the recorded selections.
func (w *Wizard) Answers() AnswerSet {
	out := make(AnswerSet, len(w.answers))
	for id, sel := range w.answers {
		cp := make(map[string]bool, len(sel))
		for k, v := range sel {
			cp[k] = v
		}
		out[id] = cp
	}
	return out
}

// ShowOtherInput reports whether the free-text field is visible, which is
// only while Other is selected on the current page.
func (w *Wizard) ShowOtherInput() bool {
	return w.IsSelected(w.Current().ID, OtherLabel)
}

// OtherText returns the free text entered for Other. Every page shares it.
func (w *Wizard) OtherText() string { return w.other }

// SetOtherText stores the free text for Other.
func (w *Wizard) SetOtherText(s string) { w.other = s }

// BirthDate returns the entered date of birth.
func (w *Wizard) BirthDate() BirthDate { return w.birth }

// SetBirthDate stores the date of birth. Parts are not validated.
func (w *Wizard) SetBirthDate(d BirthDate) { w.birth = d }

// Consent reports whether the consent box is checked.
func (w *Wizard) Consent() bool { return w.consent }

// SetConsent checks or unchecks the consent box. Checking it clears the
// consent error.
func (w *Wizard) SetConsent(v bool) {
	w.consent = v
	if v {
		w.errMsg = ""
	}
}

// Error returns the user-visible error message, if any.
func (w *Wizard) Error() string { return w.errMsg }

// Finish validates the consent gate. It must be called on the last page.
// The wizard has no notion of submission; the host decides what finishing
// means.
func (w *Wizard) Finish() error {
	if !w.IsLast() {
		return ErrNotLastPage
	}
	if !w.consent {
		w.errMsg = ConsentMessage
		return ErrConsentRequired
	}
	w.errMsg = ""
	return nil
}
