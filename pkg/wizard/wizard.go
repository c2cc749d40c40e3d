// Package wizard implements the three-step flow that gates checklist
// generation: choose disciplines, choose extras, then view the checklist.
package wizard

import (
	"time"

	"github.com/arthur-debert/packlist/pkg/catalog"
	"github.com/arthur-debert/packlist/pkg/checklist"
	"github.com/arthur-debert/packlist/pkg/errors"
	"github.com/arthur-debert/packlist/pkg/logging"
	"github.com/arthur-debert/packlist/pkg/selection"
	"github.com/rs/zerolog"
)

// Step is a wizard state
type Step int

const (
	// StepDisciplines is the initial step
	StepDisciplines Step = iota
	// StepExtras follows once at least one discipline is selected
	StepExtras
	// StepChecklist shows the derived checklist
	StepChecklist
)

// String returns the string representation of the step
func (s Step) String() string {
	switch s {
	case StepDisciplines:
		return "disciplines"
	case StepExtras:
		return "extras"
	case StepChecklist:
		return "checklist"
	default:
		return "unknown"
	}
}

// Wizard drives a selection through the steps. It is not safe for
// concurrent use.
type Wizard struct {
	cat    *catalog.Catalog
	state  *selection.State
	step   Step
	logger zerolog.Logger
}

// New returns a wizard at the discipline step with an empty selection
func New(cat *catalog.Catalog) *Wizard {
	return &Wizard{
		cat:    cat,
		state:  selection.New(),
		step:   StepDisciplines,
		logger: logging.GetLogger("wizard"),
	}
}

// Step returns the current step
func (w *Wizard) Step() Step {
	return w.step
}

// Catalog returns the catalog the wizard was created with
func (w *Wizard) Catalog() *catalog.Catalog {
	return w.cat
}

// State returns the live selection
func (w *Wizard) State() *selection.State {
	return w.state
}

// CanAdvance reports whether Advance would succeed. The discipline step
// requires at least one discipline; the extras step never blocks.
func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case StepDisciplines:
		return len(w.state.Disciplines()) > 0
	case StepExtras:
		return true
	default:
		return false
	}
}

// Advance moves to the next step
func (w *Wizard) Advance() error {
	if !w.CanAdvance() {
		if w.step == StepChecklist {
			return errors.New(errors.ErrStepBlocked, "already at the checklist step")
		}
		return errors.New(errors.ErrStepBlocked, "select at least one discipline to continue").
			WithDetail("step", w.step.String())
	}

	from := w.step
	w.step++
	w.logger.Debug().
		Str("from", from.String()).
		Str("to", w.step.String()).
		Msg("Wizard advanced")
	return nil
}

// Back returns to the previous step. Going back from the extras step keeps
// the selection; leaving the checklist starts over.
func (w *Wizard) Back() {
	switch w.step {
	case StepExtras:
		w.step = StepDisciplines
	case StepChecklist:
		w.Reset()
	}
}

// Reset clears the selection and returns to the discipline step
func (w *Wizard) Reset() {
	w.state.Reset()
	w.step = StepDisciplines
	w.logger.Debug().Msg("Wizard reset")
}

// ToggleDiscipline flips a discipline tag
func (w *Wizard) ToggleDiscipline(id string) (bool, error) {
	if !w.cat.IsDiscipline(id) {
		return false, errors.Newf(errors.ErrUnknownTag, "unknown discipline %q", id).WithDetail("tag", id)
	}
	return w.state.ToggleDiscipline(id), nil
}

// ToggleExtra flips an extra tag
func (w *Wizard) ToggleExtra(id string) (bool, error) {
	if !w.cat.IsExtra(id) {
		return false, errors.Newf(errors.ErrUnknownTag, "unknown extra %q", id).WithDetail("tag", id)
	}
	return w.state.ToggleExtra(id), nil
}

// ToggleItem flips the packed state of a catalog item
func (w *Wizard) ToggleItem(id string) (bool, error) {
	if _, ok := w.cat.Item(id); !ok {
		return false, errors.Newf(errors.ErrNotFound, "unknown item %q", id).WithDetail("id", id)
	}
	return w.state.ToggleChecked(id), nil
}

// Checklist derives the checklist for the current selection. It is only
// available at the checklist step.
func (w *Wizard) Checklist(now time.Time) (*checklist.Checklist, error) {
	if w.step != StepChecklist {
		return nil, errors.Newf(errors.ErrStepBlocked, "checklist is not available at the %s step", w.step)
	}
	return checklist.Build(w.cat, w.state, now), nil
}

// Rebase moves the wizard onto a reloaded catalog. Tags and checked items
// that no longer exist are dropped; a wizard left without disciplines
// returns to the discipline step.
func (w *Wizard) Rebase(cat *catalog.Catalog) {
	if cat == w.cat {
		return
	}

	for _, id := range w.state.Disciplines() {
		if !cat.IsDiscipline(id) {
			w.state.SetDiscipline(id, false)
		}
	}
	for _, id := range w.state.Extras() {
		if !cat.IsExtra(id) {
			w.state.SetExtra(id, false)
		}
	}
	for _, id := range w.state.Checked() {
		if _, ok := cat.Item(id); !ok {
			w.state.SetChecked(id, false)
		}
	}

	w.cat = cat
	if w.step != StepDisciplines && len(w.state.Disciplines()) == 0 {
		w.step = StepDisciplines
	}
	w.logger.Debug().Str("version", cat.Version).Msg("Wizard rebased onto catalog")
}
