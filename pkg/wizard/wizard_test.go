package wizard_test

import (
	"testing"

	"github.com/arthur-debert/packlist/pkg/catalog"
	"github.com/arthur-debert/packlist/pkg/errors"
	"github.com/arthur-debert/packlist/pkg/testutil"
	"github.com/arthur-debert/packlist/pkg/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepString(t *testing.T) {
	assert.Equal(t, "disciplines", wizard.StepDisciplines.String())
	assert.Equal(t, "extras", wizard.StepExtras.String())
	assert.Equal(t, "checklist", wizard.StepChecklist.String())
	assert.Equal(t, "unknown", wizard.Step(42).String())
}

func TestAdvance_RequiresDiscipline(t *testing.T) {
	w := wizard.New(testutil.SmallCatalog(t))

	assert.Equal(t, wizard.StepDisciplines, w.Step())
	assert.False(t, w.CanAdvance())

	err := w.Advance()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStepBlocked))
	assert.Equal(t, wizard.StepDisciplines, w.Step())

	_, err = w.ToggleDiscipline("dressage")
	require.NoError(t, err)
	assert.True(t, w.CanAdvance())
	require.NoError(t, w.Advance())
	assert.Equal(t, wizard.StepExtras, w.Step())
}

func TestAdvance_DeselectingBlocksAgain(t *testing.T) {
	w := wizard.New(testutil.SmallCatalog(t))

	_, _ = w.ToggleDiscipline("dressage")
	_, _ = w.ToggleDiscipline("dressage")

	assert.False(t, w.CanAdvance())
}

func TestExtrasStepNeverBlocks(t *testing.T) {
	w := wizard.New(testutil.SmallCatalog(t))
	_, _ = w.ToggleDiscipline("eventing")
	require.NoError(t, w.Advance())

	assert.True(t, w.CanAdvance())
	require.NoError(t, w.Advance())
	assert.Equal(t, wizard.StepChecklist, w.Step())

	assert.False(t, w.CanAdvance())
	assert.True(t, errors.IsErrorCode(w.Advance(), errors.ErrStepBlocked))
}

func TestChecklist_OnlyAtChecklistStep(t *testing.T) {
	w := wizard.New(testutil.SmallCatalog(t))
	_, err := w.Checklist(testutil.FixedTime)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStepBlocked))

	_, _ = w.ToggleDiscipline("eventing")
	require.NoError(t, w.Advance())
	_, _ = w.ToggleExtra("overnight")
	require.NoError(t, w.Advance())

	cl, err := w.Checklist(testutil.FixedTime)
	require.NoError(t, err)
	assert.Equal(t, 4, cl.Stats().Sections)
}

func TestToggles_RejectUnknownIDs(t *testing.T) {
	w := wizard.New(testutil.SmallCatalog(t))

	_, err := w.ToggleDiscipline("polo")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTag))

	_, err = w.ToggleDiscipline("overnight")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTag), "extras are not disciplines")

	_, err = w.ToggleExtra("dressage")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownTag))

	_, err = w.ToggleItem("saddle-of-unobtainium")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestToggleItem_Twice(t *testing.T) {
	w := wizard.New(testutil.SmallCatalog(t))

	on, err := w.ToggleItem("bridle")
	require.NoError(t, err)
	assert.True(t, on)

	on, err = w.ToggleItem("bridle")
	require.NoError(t, err)
	assert.False(t, on)
	assert.Empty(t, w.State().Checked())
}

func TestBack(t *testing.T) {
	w := wizard.New(testutil.SmallCatalog(t))
	_, _ = w.ToggleDiscipline("dressage")
	require.NoError(t, w.Advance())

	w.Back()
	assert.Equal(t, wizard.StepDisciplines, w.Step())
	assert.True(t, w.State().HasDiscipline("dressage"), "back from extras keeps the selection")

	require.NoError(t, w.Advance())
	require.NoError(t, w.Advance())
	_, _ = w.ToggleItem("bridle")

	w.Back()
	assert.Equal(t, wizard.StepDisciplines, w.Step())
	assert.True(t, w.State().IsEmpty(), "leaving the checklist clears the selection")
}

func TestReset_Completeness(t *testing.T) {
	w := wizard.New(testutil.SmallCatalog(t))
	_, _ = w.ToggleDiscipline("eventing")
	require.NoError(t, w.Advance())
	_, _ = w.ToggleExtra("overnight")
	require.NoError(t, w.Advance())
	_, _ = w.ToggleItem("bridle")
	_, _ = w.ToggleItem("bedding")

	w.Reset()

	assert.Equal(t, wizard.StepDisciplines, w.Step())
	assert.Empty(t, w.State().Disciplines())
	assert.Empty(t, w.State().Extras())
	assert.Empty(t, w.State().Checked())
	assert.False(t, w.CanAdvance())
}

func TestRebase(t *testing.T) {
	w := wizard.New(testutil.SmallCatalog(t))
	_, err := w.ToggleDiscipline("eventing")
	require.NoError(t, err)
	_, err = w.ToggleExtra("overnight")
	require.NoError(t, err)
	require.NoError(t, w.Advance())
	require.NoError(t, w.Advance())
	_, err = w.ToggleItem("xc-boots")
	require.NoError(t, err)
	_, err = w.ToggleItem("bedding")
	require.NoError(t, err)

	t.Run("keeps_what_still_exists", func(t *testing.T) {
		next, err := catalog.New("v2",
			[]catalog.Tag{{ID: "eventing", Label: "Eventing"}},
			nil,
			[]catalog.Section{{Title: "Tack", Items: []catalog.Item{
				{ID: "xc-boots", Name: "XC Boots", Rule: catalog.AnyOf("eventing")},
			}}},
		)
		require.NoError(t, err)

		w.Rebase(next)

		assert.Same(t, next, w.Catalog())
		assert.Equal(t, wizard.StepChecklist, w.Step())
		assert.Equal(t, []string{"eventing"}, w.State().Disciplines())
		assert.Empty(t, w.State().Extras())
		assert.Equal(t, []string{"xc-boots"}, w.State().Checked())
	})

	t.Run("returns_to_start_without_disciplines", func(t *testing.T) {
		next, err := catalog.New("v3",
			[]catalog.Tag{{ID: "endurance", Label: "Endurance"}},
			nil,
			[]catalog.Section{{Title: "Tack", Items: []catalog.Item{{ID: "saddle", Name: "Saddle"}}}},
		)
		require.NoError(t, err)

		w.Rebase(next)

		assert.Equal(t, wizard.StepDisciplines, w.Step())
		assert.True(t, w.State().IsEmpty())
	})
}
