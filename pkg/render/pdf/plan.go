package pdf

import (
	"strings"

	"github.com/arthur-debert/packlist/pkg/checklist"
)

// Geometry describes the page layout in millimetres
type Geometry struct {
	PageWidth     float64
	PageHeight    float64
	Margin        float64
	ContentWidth  float64
	TitleHeight   float64
	RunningHeight float64
	SectionHeight float64
	LineHeight    float64
	RowPadding    float64
	BoxSize       float64
	FooterHeight  float64
}

// DefaultGeometry returns the layout for an A4 portrait page
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:     210,
		PageHeight:    297,
		Margin:        15,
		ContentWidth:  170,
		TitleHeight:   40,
		RunningHeight: 12,
		SectionHeight: 9,
		LineHeight:    5,
		RowPadding:    1.5,
		BoxSize:       4,
		FooterHeight:  10,
	}
}

// Left returns the x position of the centred content column
func (g Geometry) Left() float64 {
	return (g.PageWidth - g.Width()) / 2
}

// Width returns the usable content width
func (g Geometry) Width() float64 {
	avail := g.PageWidth - 2*g.Margin
	if g.ContentWidth <= 0 || g.ContentWidth > avail {
		return avail
	}
	return g.ContentWidth
}

// TextWidth is the width available for item names
func (g Geometry) TextWidth() float64 {
	return g.Width() - g.BoxSize - 4*g.RowPadding
}

// Bottom is the lowest y a block may reach
func (g Geometry) Bottom() float64 {
	return g.PageHeight - g.Margin - g.FooterHeight
}

// WrapFunc splits text into lines no wider than width
type WrapFunc func(text string, width float64) []string

// BlockKind distinguishes section headers from item rows
type BlockKind int

const (
	BlockSection BlockKind = iota
	BlockItem
	// BlockRunningHeader opens every page after the first
	BlockRunningHeader
)

// Block is a positioned element on a page
type Block struct {
	Kind         BlockKind
	SectionIndex int
	Title        string
	Continued    bool
	Entry        checklist.Entry
	Lines        []string
	Zebra        bool
	Y            float64
	Height       float64
}

// Page is one planned page
type Page struct {
	Number int
	Blocks []Block
}

// Plan lays out the checklist into pages. It performs no drawing so the
// pagination can be inspected without producing a document.
//
// A section that does not fit in the space left on a page moves to a new
// page as a whole. Only a section taller than a fresh page is split, with a
// "continued" header repeated after each break.
func Plan(cl *checklist.Checklist, g Geometry, wrap WrapFunc) []Page {
	if wrap == nil {
		wrap = func(text string, _ float64) []string { return []string{text} }
	}

	pages := []Page{{Number: 1}}
	y := g.Margin + g.TitleHeight
	bottom := g.Bottom()
	capacity := bottom - g.Margin - g.RunningHeight
	// empty is true until the current page holds a section or an item
	empty := true
	running := Block{
		Kind:   BlockRunningHeader,
		Lines:  []string{strings.Join(cl.DisciplineLabels(), ", ")},
		Height: g.RunningHeight,
	}

	add := func(b Block) {
		b.Y = y
		cur := &pages[len(pages)-1]
		cur.Blocks = append(cur.Blocks, b)
		y += b.Height
	}
	newPage := func() {
		pages = append(pages, Page{Number: len(pages) + 1})
		y = g.Margin
		add(running)
		empty = true
	}

	for _, section := range cl.Sections {
		rows := make([]Block, 0, len(section.Entries))
		total := g.SectionHeight
		for i, entry := range section.Entries {
			lines := wrap(entry.Name, g.TextWidth())
			if len(lines) == 0 {
				lines = []string{""}
			}
			row := Block{
				Kind:         BlockItem,
				SectionIndex: section.Index,
				Title:        section.Title,
				Entry:        entry,
				Lines:        lines,
				Zebra:        i%2 == 1,
				Height:       float64(len(lines))*g.LineHeight + 2*g.RowPadding,
			}
			rows = append(rows, row)
			total += row.Height
		}

		first := 0.0
		if len(rows) > 0 {
			first = rows[0].Height
		}
		switch {
		case empty:
		case y+total <= bottom:
		case total <= capacity:
			newPage()
		case y+g.SectionHeight+first > bottom:
			// too tall for any page, but never leave a header alone
			newPage()
		}
		add(Block{Kind: BlockSection, SectionIndex: section.Index, Title: section.Title, Height: g.SectionHeight})
		empty = false

		for _, row := range rows {
			if y+row.Height > bottom {
				newPage()
				add(Block{Kind: BlockSection, SectionIndex: section.Index, Title: section.Title, Continued: true, Height: g.SectionHeight})
				empty = false
			}
			add(row)
		}
	}

	return pages
}
