package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/arthur-debert/packlist/pkg/wizard"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie names the cookie carrying the session id
const SessionCookie = "packlist_session"

// session is one visitor's wizard. Nothing is persisted.
type session struct {
	mu       sync.Mutex
	wiz      *wizard.Wizard
	notice   string
	lastSeen time.Time
}

// SessionStore keeps sessions in memory
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	catalogs *CatalogStore
	now      func() time.Time
}

// NewSessionStore creates an empty store
func NewSessionStore(catalogs *CatalogStore, now func() time.Time) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		catalogs: catalogs,
		now:      now,
	}
}

// Len returns the number of live sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Prune drops sessions idle for longer than maxIdle
func (s *SessionStore) Prune(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	removed := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// acquire returns the locked session for the request, creating one and
// setting the cookie when needed. The caller must unlock it.
func (s *SessionStore) acquire(c *gin.Context) *session {
	id, err := c.Cookie(SessionCookie)
	if err != nil || uuid.Validate(id) != nil {
		id = ""
	}

	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		id = uuid.NewString()
		sess = &session{wiz: wizard.New(s.catalogs.Get())}
		s.sessions[id] = sess
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, 0, "/", "", false, true)
	}
	s.mu.Unlock()

	sess.mu.Lock()
	sess.lastSeen = s.now()
	sess.wiz.Rebase(s.catalogs.Get())
	return sess
}

// takeNotice returns and clears the pending notice
func (sess *session) takeNotice() string {
	n := sess.notice
	sess.notice = ""
	return n
}
