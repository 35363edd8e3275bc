package survey

import "errors"

// ConsentMessage is shown when finishing without checking the consent box.
const ConsentMessage = "Please confirm the information is accurate before finishing."

var (
	// ErrConsentRequired is returned by Finish while the consent box is unchecked.
	ErrConsentRequired = errors.New(ConsentMessage)

	// ErrNotLastPage is returned by Finish when called before the last page.
	ErrNotLastPage = errors.New("survey can only be finished from the last page")

	// ErrDialogClosed is returned by Dialog operations while the dialog is closed.
	ErrDialogClosed = errors.New("survey dialog is not open")
)
