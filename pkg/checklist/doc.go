// Package checklist derives the visible packing checklist from a catalog and
// a selection.
//
// Filter is the only place applicability rules are evaluated. Build calls it
// once and resolves checked state and tag labels, producing the Checklist
// value every renderer consumes. Renderers never filter on their own, so the
// text, PDF, print and email outputs of one Build always agree on sections,
// items, order and checked state.
package checklist
