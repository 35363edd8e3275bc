package form

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/go-logr/logr"

	"github.com/blackivy/onboarding/internal/survey"
)

// pageInput holds the values a page form writes into.
type pageInput struct {
	Single  string
	Multi   []string
	Other   string
	Birth   survey.BirthDate
	Consent bool
	Nav     string
}

// runForm runs a huh form. Replaced in tests.
var runForm = func(ctx context.Context, f *huh.Form) error {
	return f.RunWithContext(ctx)
}

// Run walks the dialog's survey page by page until it is finished or closed.
// Validation messages are written to out. The dialog must be open.
func Run(ctx context.Context, d *survey.Dialog, out io.Writer, log logr.Logger) error {
	if !d.Open() {
		return survey.ErrDialogClosed
	}

	for d.Open() {
		w := d.Wizard()
		page := w.Current()
		in := newPageInput(w)

		if err := runForm(ctx, buildPageForm(w, in)); err != nil {
			d.Close()
			return fmt.Errorf("survey canceled: %w", err)
		}

		effect := applyPage(w, in)
		if effect == survey.EffectFocusNavigation {
			log.V(1).Info("selection threshold reached", "page", page.ID)
		}

		// Other needs a second prompt because the field only exists once
		// Other is selected.
		if w.ShowOtherInput() && page.Kind == survey.KindChoice {
			in.Other = w.OtherText()
			if err := runForm(ctx, buildOtherForm(in)); err != nil {
				d.Close()
				return fmt.Errorf("survey canceled: %w", err)
			}
			w.SetOtherText(in.Other)
		}

		if err := navigate(d, in.Nav); err != nil {
			if errors.Is(err, survey.ErrConsentRequired) {
				fmt.Fprintln(out, err)
				continue
			}
			return err
		}
		log.V(1).Info("page done", "page", page.ID, "nav", in.Nav, "index", w.Index())
	}
	return nil
}

// newPageInput seeds form values from the wizard so revisiting a page
// shows previous answers.
func newPageInput(w *survey.Wizard) *pageInput {
	page := w.Current()
	in := &pageInput{
		Multi:   w.SelectedLabels(page.ID),
		Other:   w.OtherText(),
		Birth:   w.BirthDate(),
		Consent: w.Consent(),
	}
	if !page.MultiSelect && len(in.Multi) > 0 {
		in.Single = in.Multi[0]
	}
	return in
}

// buildPageForm builds the form for the current page plus its navigation.
func buildPageForm(w *survey.Wizard, in *pageInput) *huh.Form {
	page := w.Current()
	var fields []huh.Field

	switch page.Kind {
	case survey.KindChoice:
		if page.MultiSelect {
			fields = append(fields, huh.NewMultiSelect[string]().
				Title(page.Prompt).
				Options(OptionsFor(page)...).
				Value(&in.Multi))
		} else {
			fields = append(fields, huh.NewSelect[string]().
				Title(page.Prompt).
				Options(OptionsFor(page)...).
				Value(&in.Single))
		}
	case survey.KindDate:
		fields = append(fields,
			huh.NewInput().Title(page.Prompt).Description("Month").Placeholder("MM").Value(&in.Birth.Month),
			huh.NewInput().Description("Day").Placeholder("DD").Value(&in.Birth.Day),
			huh.NewInput().Description("Year").Placeholder("YYYY").Value(&in.Birth.Year),
		)
	case survey.KindConsent:
		fields = append(fields, huh.NewConfirm().
			Title(page.Prompt).
			Affirmative("I confirm").
			Negative("Not yet").
			Value(&in.Consent))
	}

	in.Nav = NavNext
	if w.IsLast() {
		in.Nav = NavFinish
	}
	fields = append(fields, huh.NewSelect[string]().
		Options(NavOptions(w)...).
		Value(&in.Nav))

	return huh.NewForm(
		huh.NewGroup(fields...).Title(w.Progress()),
	)
}

func buildOtherForm(in *pageInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Please specify:").
				Placeholder("Type your response here").
				Value(&in.Other),
		),
	)
}

// applyPage replays the form values through the wizard's selection rules.
func applyPage(w *survey.Wizard, in *pageInput) survey.Effect {
	page := w.Current()
	effect := survey.EffectNone

	switch page.Kind {
	case survey.KindChoice:
		if !page.MultiSelect {
			if in.Single != "" && !w.IsSelected(page.ID, in.Single) {
				w.Select(in.Single)
			}
			break
		}
		want := make(map[string]bool, len(in.Multi))
		for _, label := range in.Multi {
			want[label] = true
		}
		for _, label := range page.Labels() {
			if want[label] != w.IsSelected(page.ID, label) {
				if e := w.Select(label); e != survey.EffectNone {
					effect = e
				}
			}
		}
	case survey.KindDate:
		w.SetBirthDate(in.Birth)
	case survey.KindConsent:
		w.SetConsent(in.Consent)
	}
	return effect
}

// navigate applies the navigation choice to the dialog.
func navigate(d *survey.Dialog, nav string) error {
	switch nav {
	case NavBack:
		d.Retreat()
	case NavFinish:
		return d.Finish()
	case NavClose:
		d.Close()
	default:
		d.Advance()
	}
	return nil
}
