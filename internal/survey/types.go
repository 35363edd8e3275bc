package survey

// PageID is a stable tag for a question page. Answers are keyed by PageID
// so they keep their meaning when the page list is re-resolved.
type PageID string

// Page identifiers.
const (
	PageStatus     PageID = "status"
	PageIndustry   PageID = "industry"
	PageDegree     PageID = "degree"
	PageUniversity PageID = "university"
	PageLocation   PageID = "location"
	PageHobbies    PageID = "hobbies"
	PageBirthDate  PageID = "birthdate"
	PageConsent    PageID = "consent"
)

// Kind describes how a page collects its answer.
type Kind string

// Page kinds.
const (
	KindChoice  Kind = "choice"
	KindDate    Kind = "date"
	KindConsent Kind = "consent"
)

// Gating answers for the status page.
const (
	StatusUniversity = "University Affiliate"
	StatusIndustry   = "Industry Professional"
)

// OtherLabel is the option label that opens a free-text field.
const OtherLabel = "Other"

// Option is one selectable choice within a page.
type Option struct {
	Label       string `json:"label"`
	Emoji       string `json:"emoji,omitempty"`
	Description string `json:"description,omitempty"`
}

// IsOther reports whether selecting the option asks for free text.
func (o Option) IsOther() bool {
	return o.Label == OtherLabel
}

// Page is one step of the survey.
type Page struct {
	ID          PageID   `json:"id"`
	Prompt      string   `json:"prompt"`
	Kind        Kind     `json:"kind"`
	Options     []Option `json:"options,omitempty"`
	MultiSelect bool     `json:"multiSelect,omitempty"`

	// NudgeAt is the number of selections on a multi-select page after which
	// the host may move focus to the navigation controls. Zero disables it.
	NudgeAt int `json:"nudgeAt,omitempty"`
}

// HasOption reports whether label is one of the page's options.
func (p Page) HasOption(label string) bool {
	for _, o := range p.Options {
		if o.Label == label {
			return true
		}
	}
	return false
}

// Labels returns the option labels in display order.
func (p Page) Labels() []string {
	labels := make([]string, len(p.Options))
	for i, o := range p.Options {
		labels[i] = o.Label
	}
	return labels
}

// BirthDate is a structured date of birth. Parts are kept as entered.
type BirthDate struct {
	Month string `json:"month,omitempty" bson:"month,omitempty"`
	Day   string `json:"day,omitempty" bson:"day,omitempty"`
	Year  string `json:"year,omitempty" bson:"year,omitempty"`
}

// IsZero reports whether no part of the date was entered.
func (d BirthDate) IsZero() bool {
	return d.Month == "" && d.Day == "" && d.Year == ""
}
