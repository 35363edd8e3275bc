package survey

import "errors"

// EventKind names something that happened in an open dialog.
type EventKind string

// Dialog events.
const (
	EventPageViewed      EventKind = "page_viewed"
	EventConsentRejected EventKind = "consent_rejected"
	EventFinished        EventKind = "finished"
	EventAbandoned       EventKind = "abandoned"
)

// Event is reported through Dialog.OnEvent.
type Event struct {
	Kind   EventKind
	Page   PageID
	Status string
}

// Dialog is the host-facing survey modal. It owns one Wizard per open/close
// cycle and reports visibility changes through OnOpenChange.
type Dialog struct {
	// OnOpenChange is invoked whenever the dialog wants to change its own
	// visibility: on Close and after a successful Finish. The host owns
	// visibility and applies the change by calling SetOpen, or ignores it.
	// A nil OnOpenChange makes the dialog apply its own requests.
	OnOpenChange func(open bool)

	// OnFinish receives the response of a finished survey before the
	// dialog closes. Optional.
	OnFinish func(Response)

	// OnEvent observes page views and outcomes. Optional.
	OnEvent func(Event)

	open   bool
	wizard *Wizard
}

// NewDialog returns a closed dialog.
func NewDialog(onOpenChange func(bool)) *Dialog {
	return &Dialog{OnOpenChange: onOpenChange}
}

// Open reports whether the dialog is visible.
func (d *Dialog) Open() bool { return d.open }

// SetOpen is the host-controlled visibility input. Opening starts a fresh
// survey on page 1; closing discards all answers.
func (d *Dialog) SetOpen(open bool) {
	if open == d.open {
		return
	}
	d.open = open
	if open {
		d.wizard = NewWizard()
		d.emit(EventPageViewed)
		return
	}
	d.wizard = nil
}

// Wizard returns the survey state, or nil while closed.
func (d *Dialog) Wizard() *Wizard { return d.wizard }

// Close asks the host to hide the dialog.
func (d *Dialog) Close() {
	if !d.open {
		return
	}
	d.emit(EventAbandoned)
	d.requestOpen(false)
}

// Advance moves to the next page and reports whether the page changed.
func (d *Dialog) Advance() bool {
	if d.wizard == nil || !d.wizard.Advance() {
		return false
	}
	d.emit(EventPageViewed)
	return true
}

// Retreat moves to the previous page and reports whether the page changed.
func (d *Dialog) Retreat() bool {
	if d.wizard == nil || !d.wizard.Retreat() {
		return false
	}
	d.emit(EventPageViewed)
	return true
}

// Finish validates the consent gate and, on success, hands the response to
// OnFinish and asks the host to close the dialog.
func (d *Dialog) Finish() error {
	if !d.open || d.wizard == nil {
		return ErrDialogClosed
	}
	if err := d.wizard.Finish(); err != nil {
		if errors.Is(err, ErrConsentRequired) {
			d.emit(EventConsentRejected)
		}
		return err
	}
	d.emit(EventFinished)
	if d.OnFinish != nil {
		d.OnFinish(d.wizard.Response())
	}
	d.requestOpen(false)
	return nil
}

func (d *Dialog) requestOpen(open bool) {
	if d.OnOpenChange == nil {
		d.SetOpen(open)
		return
	}
	d.OnOpenChange(open)
}

func (d *Dialog) emit(kind EventKind) {
	if d.OnEvent == nil || d.wizard == nil {
		return
	}
	d.OnEvent(Event{Kind: kind, Page: d.wizard.Current().ID, Status: d.wizard.Gating()})
}
