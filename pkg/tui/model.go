// Package tui is the interactive terminal front-end: a bubbletea program
// that walks the wizard steps and exports from the checklist screen.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/packlist/pkg/catalog"
	"github.com/arthur-debert/packlist/pkg/checklist"
	"github.com/arthur-debert/packlist/pkg/export"
	"github.com/arthur-debert/packlist/pkg/logging"
	"github.com/arthur-debert/packlist/pkg/render"
	"github.com/arthur-debert/packlist/pkg/render/text"
	"github.com/arthur-debert/packlist/pkg/ui/styles"
	"github.com/arthur-debert/packlist/pkg/wizard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

// Exporter writes the artifacts triggered from the checklist screen
type Exporter interface {
	Export(format render.Format, cl *checklist.Checklist) (*export.Result, error)
}

// BlockedHint is shown when continuing without a discipline
const BlockedHint = "Select at least one discipline to continue."

type exportDoneMsg struct {
	requested render.Format
	result    *export.Result
	err       error
}

// Model is the bubbletea model for the wizard
type Model struct {
	wiz      *wizard.Wizard
	exporter Exporter
	keys     keyMap
	help     help.Model
	now      func() time.Time

	cursor int
	status string
	notice string
	err    error
	width  int
}

// New creates the model. A nil clock uses time.Now.
func New(wiz *wizard.Wizard, exporter Exporter, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	return Model{
		wiz:      wiz,
		exporter: exporter,
		keys:     newKeyMap(),
		help:     help.New(),
		now:      now,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Wizard returns the driven wizard
func (m Model) Wizard() *wizard.Wizard {
	return m.wiz
}

// Cursor returns the highlighted row
func (m Model) Cursor() int {
	return m.cursor
}

// Status returns the last status line
func (m Model) Status() string {
	return m.status
}

// Notice returns the last notice, set when an export fell back
func (m Model) Notice() string {
	return m.notice
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case exportDoneMsg:
		return m.exportDone(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.toggle):
		m.toggle()
	case key.Matches(msg, m.keys.next):
		m.advance()
	case key.Matches(msg, m.keys.back):
		m.wiz.Back()
		m.cursor = 0
		m.clearMessages()
	case m.wiz.Step() == wizard.StepChecklist && key.Matches(msg, m.keys.restart):
		m.wiz.Reset()
		m.cursor = 0
		m.clearMessages()
	case m.wiz.Step() == wizard.StepChecklist && key.Matches(msg, m.keys.exportText):
		return m, m.exportCmd(render.FormatText)
	case m.wiz.Step() == wizard.StepChecklist && key.Matches(msg, m.keys.exportPDF):
		return m, m.exportCmd(render.FormatPDF)
	case m.wiz.Step() == wizard.StepChecklist && key.Matches(msg, m.keys.exportPrint):
		return m, m.exportCmd(render.FormatHTML)
	case m.wiz.Step() == wizard.StepChecklist && key.Matches(msg, m.keys.exportEmail):
		return m, m.exportCmd(render.FormatEmail)
	}
	return m, nil
}

func (m *Model) clearMessages() {
	m.status, m.notice, m.err = "", "", nil
}

func (m *Model) advance() {
	if m.wiz.Step() == wizard.StepChecklist {
		return
	}
	if err := m.wiz.Advance(); err != nil {
		m.status = BlockedHint
		return
	}
	m.cursor = 0
	m.clearMessages()
}

func (m *Model) toggle() {
	cat := m.wiz.Catalog()
	var err error

	switch m.wiz.Step() {
	case wizard.StepDisciplines:
		if m.cursor < len(cat.Disciplines) {
			_, err = m.wiz.ToggleDiscipline(cat.Disciplines[m.cursor].ID)
		}
		if m.wiz.CanAdvance() {
			m.status = ""
		}
	case wizard.StepExtras:
		if m.cursor < len(cat.Extras) {
			_, err = m.wiz.ToggleExtra(cat.Extras[m.cursor].ID)
		}
	case wizard.StepChecklist:
		entries := m.entries()
		if m.cursor < len(entries) {
			_, err = m.wiz.ToggleItem(entries[m.cursor].ID)
		}
	}
	if err != nil {
		m.err = err
	}
}

// exportCmd derives one checklist for the export and runs it off the
// update loop
func (m Model) exportCmd(format render.Format) tea.Cmd {
	if m.exporter == nil {
		return nil
	}
	cl, err := m.wiz.Checklist(m.now())
	if err != nil {
		return func() tea.Msg { return exportDoneMsg{requested: format, err: err} }
	}
	exporter := m.exporter
	return func() tea.Msg {
		res, err := exporter.Export(format, cl)
		return exportDoneMsg{requested: format, result: res, err: err}
	}
}

func (m Model) exportDone(msg exportDoneMsg) Model {
	m.clearMessages()
	if msg.err != nil {
		logger := logging.GetLogger("tui")
		logger.Error().Err(msg.err).Str("format", msg.requested.String()).Msg("export failed")
		m.err = msg.err
		return m
	}

	res := msg.result
	switch {
	case res.Fallback:
		m.notice = res.Notice
		m.status = "Saved " + res.Path
	case res.URI != "":
		m.status = "Opened your mail client"
	case msg.requested == render.FormatHTML:
		m.status = "Opened print view " + res.Path
	default:
		m.status = "Saved " + res.Path
	}
	return m
}

func (m Model) entries() []checklist.Entry {
	cl, err := m.wiz.Checklist(m.now())
	if err != nil {
		return nil
	}
	return cl.Entries()
}

func (m Model) rowCount() int {
	cat := m.wiz.Catalog()
	switch m.wiz.Step() {
	case wizard.StepDisciplines:
		return len(cat.Disciplines)
	case wizard.StepExtras:
		return len(cat.Extras)
	default:
		return len(m.entries())
	}
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Render("Title", "Competition Packing Checklist") + "\n")
	b.WriteString(styles.Render("Step", m.stepTitle()) + "\n\n")

	switch m.wiz.Step() {
	case wizard.StepDisciplines:
		m.viewTags(&b, m.wiz.Catalog().Disciplines, m.wiz.State().HasDiscipline)
	case wizard.StepExtras:
		m.viewTags(&b, m.wiz.Catalog().Extras, m.wiz.State().HasExtra)
	case wizard.StepChecklist:
		m.viewChecklist(&b)
	}

	if m.notice != "" {
		b.WriteString("\n" + styles.Render("Notice", m.notice))
	}
	if m.status != "" {
		b.WriteString("\n" + styles.Render("Muted", m.status))
	}
	if m.err != nil {
		b.WriteString("\n" + styles.Render("Error", m.err.Error()))
	}

	bindings := m.keys.forStep(m.wiz.Step() == wizard.StepChecklist, m.wiz.CanAdvance())
	b.WriteString("\n" + styles.Render("Help", m.help.ShortHelpView(bindings)) + "\n")

	return m.wrap(b.String())
}

func (m Model) stepTitle() string {
	switch m.wiz.Step() {
	case wizard.StepDisciplines:
		return "Step 1 of 3: Which disciplines are you competing in?"
	case wizard.StepExtras:
		return "Step 2 of 3: Anything else for this trip?"
	default:
		return "Step 3 of 3: Your checklist"
	}
}

func (m Model) viewTags(b *strings.Builder, tags []catalog.Tag, selected func(string) bool) {
	for i, tag := range tags {
		box := "[ ]"
		style := "Unchecked"
		if selected(tag.ID) {
			box = "[x]"
			style = "Selected"
		}
		fmt.Fprintf(b, "%s %s\n", m.pointer(i), styles.Render(style, box+" "+tag.Label))
	}
}

func (m Model) viewChecklist(b *strings.Builder) {
	cl, err := m.wiz.Checklist(m.now())
	if err != nil {
		b.WriteString(styles.Render("Error", err.Error()) + "\n")
		return
	}

	st := cl.Stats()
	b.WriteString(styles.Render("Subtitle", "Disciplines: "+strings.Join(cl.DisciplineLabels(), ", ")) + "\n")
	if extras := cl.ExtraLabels(); len(extras) > 0 {
		b.WriteString(styles.Render("Subtitle", "Extras: "+strings.Join(extras, ", ")) + "\n")
	}
	b.WriteString(styles.Render("Summary", fmt.Sprintf("%d of %d packed", st.Checked, st.Items)) + "\n")

	row := 0
	for _, section := range cl.Sections {
		b.WriteString("\n" + styles.Render("SectionHeader", section.Title) + "\n")
		for _, entry := range section.Entries {
			style := "Unchecked"
			switch {
			case entry.Checked:
				style = "Checked"
			case entry.Required:
				style = "Required"
			}
			fmt.Fprintf(b, "%s %s\n", m.pointer(row), styles.Render(style, text.Glyph(entry.Checked)+" "+entry.Name))
			row++
		}
	}
}

func (m Model) pointer(row int) string {
	if row == m.cursor {
		return styles.Render("Cursor", ">")
	}
	return " "
}

func (m Model) wrap(s string) string {
	if m.width <= 0 {
		return s
	}
	return wordwrap.String(s, m.width)
}

// Run starts the interactive program
func Run(wiz *wizard.Wizard, exporter Exporter, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(wiz, exporter, nil), opts...).Run()
	return err
}
