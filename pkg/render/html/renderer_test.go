package html_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/packlist/pkg/checklist"
	"github.com/arthur-debert/packlist/pkg/render/html"
	"github.com/arthur-debert/packlist/pkg/selection"
	"github.com/arthur-debert/packlist/pkg/testutil"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T) *checklist.Checklist {
	cat := testutil.SmallCatalog(t)
	state := selection.New()
	state.SetDiscipline("eventing", true)
	state.SetExtra("overnight", true)
	state.SetChecked("studs", true)
	state.SetChecked("head-torch", true)
	return checklist.Build(cat, state, testutil.FixedTime)
}

func parse(t *testing.T, data []byte) *etree.Document {
	body := strings.TrimPrefix(string(data), "<!DOCTYPE html>\n")
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(body))
	return doc
}

func TestRender_Structure(t *testing.T) {
	cl := build(t)

	var buf bytes.Buffer
	require.NoError(t, html.New(html.Options{AutoPrint: true}).Render(&buf, cl))
	require.True(t, strings.HasPrefix(buf.String(), "<!DOCTYPE html>"))

	doc := parse(t, buf.Bytes())

	sections := doc.FindElements("//section")
	require.Len(t, sections, len(cl.Sections))
	for i, s := range sections {
		assert.Equal(t, cl.Sections[i].Title, s.FindElement("h2").Text())
	}
	assert.Equal(t, "palette-3", sections[3].SelectAttrValue("class", ""))

	items := doc.FindElements("//li")
	require.Len(t, items, cl.Stats().Items)
	for i, entry := range cl.Entries() {
		li := items[i]
		assert.Equal(t, entry.ID, li.SelectAttrValue("data-item-id", ""))
		assert.Equal(t, entry.Name, li.FindElement("span[@class='label']").Text())
		hasChecked := strings.Contains(" "+li.SelectAttrValue("class", "")+" ", " checked ")
		assert.Equal(t, entry.Checked, hasChecked, "item %s", entry.ID)
	}

	assert.NotNil(t, doc.FindElement("//script"))
	assert.Contains(t, doc.FindElement("//div[@class='info']").FindElements("p")[1].Text(), "Overnight Stay")
}

func TestRender_NoGlyphs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, html.New(html.Options{}).Render(&buf, build(t)))

	assert.NotContains(t, buf.String(), "☑")
	assert.NotContains(t, buf.String(), "☐")
	assert.NotContains(t, buf.String(), "<script", "no print script without AutoPrint")
}

func TestRender_EmptyElementsKeepEndTags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, html.New(html.Options{}).Render(&buf, build(t)))

	assert.Contains(t, buf.String(), `<span class="box"></span>`)
	assert.NotContains(t, buf.String(), `<span class="box"/>`)
}

func TestRender_EscapesNames(t *testing.T) {
	cl := &checklist.Checklist{
		Sections: []checklist.Section{{Title: "Tack & <Kit>", Entries: []checklist.Entry{{ID: "x", Name: "Boots <XC>"}}}},
	}

	var buf bytes.Buffer
	require.NoError(t, html.New(html.Options{}).Render(&buf, cl))

	assert.Contains(t, buf.String(), "Tack &amp; &lt;Kit&gt;")
	assert.Contains(t, buf.String(), "Boots &lt;XC&gt;")
}

func TestRender_Palette(t *testing.T) {
	cl := build(t)

	var buf bytes.Buffer
	require.NoError(t, html.New(html.Options{Palette: []string{"#010203", "#040506"}}).Render(&buf, cl))

	doc := parse(t, buf.Bytes())
	style := doc.FindElement("//style").Text()
	assert.Contains(t, style, ".palette-0 h2 { background: #010203; }")
	assert.Contains(t, style, ".palette-1 h2 { background: #040506; }")
	assert.NotContains(t, style, ".palette-2")

	sections := doc.FindElements("//section")
	require.Len(t, sections, 4)
	assert.Equal(t, "palette-0", sections[2].SelectAttrValue("class", ""))
	assert.Equal(t, "palette-1", sections[3].SelectAttrValue("class", ""))
}

func TestPaletteCSS_Default(t *testing.T) {
	css := html.PaletteCSS(nil)
	for i, c := range html.DefaultPalette {
		assert.Contains(t, css, fmt.Sprintf(".palette-%d h2 { background: %s; }", i, c))
	}
}
