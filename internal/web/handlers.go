package web

import (
	"net/http"
	"net/url"

	"github.com/arthur-debert/packlist/pkg/catalog"
	"github.com/arthur-debert/packlist/pkg/checklist"
	"github.com/arthur-debert/packlist/pkg/errors"
	"github.com/arthur-debert/packlist/pkg/render"
	pljson "github.com/arthur-debert/packlist/pkg/render/json"
	"github.com/arthur-debert/packlist/pkg/selection"
	"github.com/arthur-debert/packlist/pkg/wizard"
	"github.com/gin-gonic/gin"
)

// BlockedHint is shown when continuing without a discipline
const BlockedHint = "Select at least one discipline to continue."

// downloadKey holds a download the rendered page starts by itself
const downloadKey = "packlist.download"

type tagOption struct {
	ID       string
	Label    string
	Selected bool
}

func options(tags []catalog.Tag, selected func(string) bool) []tagOption {
	out := make([]tagOption, 0, len(tags))
	for _, t := range tags {
		out = append(out, tagOption{ID: t.ID, Label: t.Label, Selected: selected(t.ID)})
	}
	return out
}

// Web handlers

func (s *Server) handleIndex(c *gin.Context) {
	sess := s.sessions.acquire(c)
	defer sess.mu.Unlock()

	s.renderPage(c, http.StatusOK, sess, "")
}

func (s *Server) renderPage(c *gin.Context, status int, sess *session, hint string) {
	wiz := sess.wiz
	cat := wiz.Catalog()
	state := wiz.State()

	data := gin.H{
		"Title":      s.title,
		"Palette":    s.palette,
		"Step":       wiz.Step().String(),
		"CanAdvance": wiz.CanAdvance(),
		"Hint":       hint,
		"Notice":     sess.takeNotice(),
		"Download":   c.GetString(downloadKey),
	}

	switch wiz.Step() {
	case wizard.StepDisciplines:
		data["Disciplines"] = options(cat.Disciplines, state.HasDiscipline)
	case wizard.StepExtras:
		data["Extras"] = options(cat.Extras, state.HasExtra)
	case wizard.StepChecklist:
		cl, err := wiz.Checklist(s.now())
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		data["Checklist"] = cl
		data["Stats"] = cl.Stats()
	}

	c.HTML(status, "page.html", data)
}

func (s *Server) handleDisciplines(c *gin.Context) {
	sess := s.sessions.acquire(c)
	defer sess.mu.Unlock()

	wiz := sess.wiz
	if wiz.Step() != wizard.StepDisciplines {
		redirectHome(c)
		return
	}

	chosen := toSet(c.PostFormArray("discipline"))
	for _, tag := range wiz.Catalog().Disciplines {
		wiz.State().SetDiscipline(tag.ID, chosen[tag.ID])
	}

	if err := wiz.Advance(); err != nil {
		s.renderPage(c, http.StatusUnprocessableEntity, sess, BlockedHint)
		return
	}
	redirectHome(c)
}

func (s *Server) handleExtras(c *gin.Context) {
	sess := s.sessions.acquire(c)
	defer sess.mu.Unlock()

	wiz := sess.wiz
	if wiz.Step() != wizard.StepExtras {
		redirectHome(c)
		return
	}

	chosen := toSet(c.PostFormArray("extra"))
	for _, tag := range wiz.Catalog().Extras {
		wiz.State().SetExtra(tag.ID, chosen[tag.ID])
	}

	if err := wiz.Advance(); err != nil {
		s.renderPage(c, http.StatusConflict, sess, "")
		return
	}
	redirectHome(c)
}

func (s *Server) handleToggleItem(c *gin.Context) {
	sess := s.sessions.acquire(c)
	defer sess.mu.Unlock()

	if sess.wiz.Step() != wizard.StepChecklist {
		c.String(http.StatusConflict, "checklist is not available yet")
		return
	}

	id := c.Param("id")
	if _, err := sess.wiz.ToggleItem(id); err != nil {
		c.String(statusFor(err), err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/#item-"+url.PathEscape(id))
}

func (s *Server) handleBack(c *gin.Context) {
	sess := s.sessions.acquire(c)
	defer sess.mu.Unlock()

	if sess.wiz.Step() == wizard.StepExtras {
		// keep the ticks made before going back
		chosen := toSet(c.PostFormArray("extra"))
		for _, tag := range sess.wiz.Catalog().Extras {
			sess.wiz.State().SetExtra(tag.ID, chosen[tag.ID])
		}
	}
	sess.wiz.Back()
	redirectHome(c)
}

func (s *Server) handleReset(c *gin.Context) {
	sess := s.sessions.acquire(c)
	defer sess.mu.Unlock()

	sess.wiz.Reset()
	redirectHome(c)
}

func (s *Server) handleExport(c *gin.Context) {
	format, err := render.ParseFormat(c.Param("format"))
	if err != nil || format == render.FormatAuto || format == render.FormatTerminal {
		c.String(http.StatusNotFound, "unknown export format")
		return
	}

	sess := s.sessions.acquire(c)
	defer sess.mu.Unlock()

	cl, err := sess.wiz.Checklist(s.now())
	if err != nil {
		c.String(http.StatusConflict, err.Error())
		return
	}

	art, err := s.exporter.Render(format, cl)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	switch format {
	case render.FormatEmail:
		c.Redirect(http.StatusFound, string(art.Data))
		return
	case render.FormatHTML:
		c.Data(http.StatusOK, art.MIME, art.Data)
		return
	}

	if art.Fallback {
		sess.notice = art.Notice
		c.Header("X-Packlist-Notice", art.Notice)
		// a browser gets the checklist page with the notice, and the page
		// starts the text download
		if c.NegotiateFormat(gin.MIMEPlain, gin.MIMEHTML) == gin.MIMEHTML {
			c.Set(downloadKey, "/export/text")
			s.renderPage(c, http.StatusOK, sess, "")
			return
		}
	}
	c.Header("Content-Disposition", `attachment; filename="`+art.Filename+`"`)
	c.Data(http.StatusOK, art.MIME, art.Data)
}

// API handlers

func (s *Server) handleAPICatalog(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalogs.Get().Listing())
}

// handleAPIChecklist returns the session checklist, or a stateless one when
// discipline query parameters are given
func (s *Server) handleAPIChecklist(c *gin.Context) {
	var cl *checklist.Checklist

	if disciplines := c.QueryArray("discipline"); len(disciplines) > 0 {
		cat := s.catalogs.Get()
		extras := c.QueryArray("extra")
		if err := cat.CheckTags(disciplines, extras); err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		state := selection.New()
		for _, id := range disciplines {
			state.SetDiscipline(id, true)
		}
		for _, id := range extras {
			state.SetExtra(id, true)
		}
		for _, id := range c.QueryArray("checked") {
			state.SetChecked(id, true)
		}
		cl = checklist.Build(cat, state, s.now())
	} else {
		sess := s.sessions.acquire(c)
		var err error
		cl, err = sess.wiz.Checklist(s.now())
		sess.mu.Unlock()
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, pljson.Document{Checklist: cl, Stats: cl.Stats()})
}

func redirectHome(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

func toSet(ids []string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

func statusFor(err error) int {
	switch errors.GetErrorCode(err) {
	case errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrUnknownTag, errors.ErrInvalidInput:
		return http.StatusBadRequest
	case errors.ErrStepBlocked:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
