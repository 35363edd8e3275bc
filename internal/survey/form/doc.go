// Package form runs the onboarding survey as a sequence of huh forms.
//
// It is the plain-terminal counterpart of the Bubble Tea modal: one form
// per resolved page, each ending with a navigation choice. Both drive the
// same survey.Dialog, so page resolution, selection rules and the consent
// gate behave identically.
package form
