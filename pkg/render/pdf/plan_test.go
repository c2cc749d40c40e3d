package pdf_test

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/packlist/pkg/catalog"
	"github.com/arthur-debert/packlist/pkg/checklist"
	"github.com/arthur-debert/packlist/pkg/render/pdf"
	"github.com/arthur-debert/packlist/pkg/selection"
	"github.com/arthur-debert/packlist/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventingChecklist(t *testing.T) *checklist.Checklist {
	cat := testutil.SmallCatalog(t)
	state := selection.New()
	state.SetDiscipline("eventing", true)
	state.SetExtra("overnight", true)
	state.SetChecked("passport", true)
	state.SetChecked("bedding", true)
	return checklist.Build(cat, state, testutil.FixedTime)
}

func itemBlocks(pages []pdf.Page) []pdf.Block {
	var out []pdf.Block
	for _, p := range pages {
		for _, b := range p.Blocks {
			if b.Kind == pdf.BlockItem {
				out = append(out, b)
			}
		}
	}
	return out
}

func longChecklist(sections, items int) *checklist.Checklist {
	cl := &checklist.Checklist{}
	for s := 0; s < sections; s++ {
		section := checklist.Section{Title: fmt.Sprintf("Section %d", s), Index: s}
		for i := 0; i < items; i++ {
			section.Entries = append(section.Entries, checklist.Entry{
				ID:   fmt.Sprintf("s%d-i%d", s, i),
				Name: fmt.Sprintf("Item %d.%d", s, i),
			})
		}
		cl.Sections = append(cl.Sections, section)
	}
	return cl
}

func TestPlan_MatchesChecklist(t *testing.T) {
	cl := eventingChecklist(t)

	pages := pdf.Plan(cl, pdf.DefaultGeometry(), nil)
	require.Len(t, pages, 1)

	items := itemBlocks(pages)
	entries := cl.Entries()
	require.Len(t, items, len(entries))
	for i, e := range entries {
		assert.Equal(t, e.ID, items[i].Entry.ID)
		assert.Equal(t, e.Checked, items[i].Entry.Checked, "item %s", e.ID)
	}

	var titles []string
	for _, b := range pages[0].Blocks {
		if b.Kind == pdf.BlockSection {
			titles = append(titles, b.Title)
		}
	}
	assert.Equal(t, []string{"Tack", "Care", "Overnight Extras", "Cross-Country"}, titles)
}

func TestPlan_ZebraAlternatesWithinSection(t *testing.T) {
	pages := pdf.Plan(eventingChecklist(t), pdf.DefaultGeometry(), nil)

	items := itemBlocks(pages)
	// Tack: bridle, xc-boots, studs
	assert.False(t, items[0].Zebra)
	assert.True(t, items[1].Zebra)
	assert.False(t, items[2].Zebra)
	// Care restarts
	assert.False(t, items[3].Zebra)
}

func sectionPages(pages []pdf.Page, index int) map[int]bool {
	out := map[int]bool{}
	for _, p := range pages {
		for _, b := range p.Blocks {
			if b.Kind != pdf.BlockRunningHeader && b.SectionIndex == index {
				out[p.Number] = true
			}
		}
	}
	return out
}

func TestPlan_Pagination(t *testing.T) {
	g := pdf.DefaultGeometry()
	// each section is taller than a page
	cl := longChecklist(3, 40)

	pages := pdf.Plan(cl, g, nil)
	require.Greater(t, len(pages), 1)

	t.Run("blocks_stay_inside_page", func(t *testing.T) {
		for _, p := range pages {
			for _, b := range p.Blocks {
				assert.GreaterOrEqual(t, b.Y, g.Margin)
				assert.LessOrEqual(t, b.Y+b.Height, g.Bottom()+1e-9, "page %d block %q", p.Number, b.Title)
			}
		}
	})

	t.Run("every_item_once_in_order", func(t *testing.T) {
		items := itemBlocks(pages)
		entries := cl.Entries()
		require.Len(t, items, len(entries))
		for i := range entries {
			assert.Equal(t, entries[i].ID, items[i].Entry.ID)
		}
	})

	t.Run("continued_header_after_break", func(t *testing.T) {
		continued := 0
		for i, p := range pages[1:] {
			require.Greater(t, len(p.Blocks), 1)
			header := p.Blocks[1]
			assert.Equal(t, pdf.BlockSection, header.Kind, "page %d", p.Number)
			if header.Continued {
				continued++
				prev := pages[i].Blocks[len(pages[i].Blocks)-1]
				assert.Equal(t, prev.SectionIndex, header.SectionIndex)
			}
		}
		assert.Greater(t, continued, 0)
	})

	t.Run("page_numbers_sequential", func(t *testing.T) {
		for i, p := range pages {
			assert.Equal(t, i+1, p.Number)
		}
	})
}

func TestPlan_SectionMovesWhole(t *testing.T) {
	g := pdf.DefaultGeometry()
	// 20 rows leave too little room for the 10 rows that follow
	cl := &checklist.Checklist{Sections: []checklist.Section{
		longChecklist(1, 20).Sections[0],
		longChecklist(2, 10).Sections[1],
	}}

	pages := pdf.Plan(cl, g, nil)
	require.Len(t, pages, 2)

	assert.Equal(t, map[int]bool{1: true}, sectionPages(pages, 0))
	assert.Equal(t, map[int]bool{2: true}, sectionPages(pages, 1), "second section is not split")

	header := pages[1].Blocks[1]
	assert.Equal(t, pdf.BlockSection, header.Kind)
	assert.Equal(t, "Section 1", header.Title)
	assert.False(t, header.Continued)
	for _, p := range pages {
		for _, b := range p.Blocks {
			assert.False(t, b.Continued, "page %d", p.Number)
		}
	}
}

func TestPlan_RunningHeader(t *testing.T) {
	g := pdf.DefaultGeometry()
	cl := longChecklist(4, 20)
	cl.Disciplines = []catalog.Tag{{ID: "eventing", Label: "Eventing"}, {ID: "dressage", Label: "Dressage"}}

	pages := pdf.Plan(cl, g, nil)
	require.Greater(t, len(pages), 1)

	for _, b := range pages[0].Blocks {
		assert.NotEqual(t, pdf.BlockRunningHeader, b.Kind, "first page carries the full title")
	}
	for _, p := range pages[1:] {
		first := p.Blocks[0]
		assert.Equal(t, pdf.BlockRunningHeader, first.Kind, "page %d", p.Number)
		assert.InDelta(t, g.Margin, first.Y, 1e-9)
		assert.Equal(t, []string{"Eventing, Dressage"}, first.Lines)
		assert.InDelta(t, g.Margin+g.RunningHeight, p.Blocks[1].Y, 1e-9)
	}
}

func TestPlan_HeaderKeptWithFirstRow(t *testing.T) {
	g := pdf.DefaultGeometry()
	pages := pdf.Plan(longChecklist(12, 9), g, nil)

	for _, p := range pages {
		last := p.Blocks[len(p.Blocks)-1]
		assert.NotEqual(t, pdf.BlockSection, last.Kind, "page %d ends with an orphan header", p.Number)
	}
}

func TestPlan_WrappedRowsAreTaller(t *testing.T) {
	g := pdf.DefaultGeometry()
	cl := &checklist.Checklist{Sections: []checklist.Section{{
		Title:   "Tack",
		Entries: []checklist.Entry{{ID: "a", Name: "short"}, {ID: "b", Name: "long"}},
	}}}
	wrap := func(text string, _ float64) []string {
		if text == "long" {
			return []string{"lo", "ng", "!"}
		}
		return []string{text}
	}

	items := itemBlocks(pdf.Plan(cl, g, wrap))
	require.Len(t, items, 2)
	assert.InDelta(t, g.LineHeight+2*g.RowPadding, items[0].Height, 1e-9)
	assert.InDelta(t, 3*g.LineHeight+2*g.RowPadding, items[1].Height, 1e-9)
	assert.Equal(t, []string{"lo", "ng", "!"}, items[1].Lines)
}

func TestGeometry_ContentWidth(t *testing.T) {
	g := pdf.DefaultGeometry()
	assert.InDelta(t, 170, g.Width(), 1e-9)
	assert.InDelta(t, 20, g.Left(), 1e-9)

	g.ContentWidth = 500
	assert.InDelta(t, 180, g.Width(), 1e-9, "clamped to margins")

	g.ContentWidth = 0
	assert.InDelta(t, 15, g.Left(), 1e-9)
}
