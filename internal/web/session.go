package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/JonMunkholm/salarydash/internal/core"
	"github.com/JonMunkholm/salarydash/internal/dataset"
	"github.com/JonMunkholm/salarydash/internal/logging"
)

// sessions resolves the dashboard session through the dataset cache.
// Requests that arrive before the dataset is loaded share one fetch; the
// session is built once from the first successful load.
type sessions struct {
	cache *dataset.Cache
	opts  core.RenderOptions

	mu      sync.Mutex
	current *core.Session
}

func (s *sessions) get(ctx context.Context) (*core.Session, error) {
	if sess := s.loaded(); sess != nil {
		return sess, nil
	}

	start := time.Now()
	ds, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		s.current = core.NewSession(s.cache.Source().String(), ds, s.opts)
		logging.WithFields(ctx,
			"session", s.current.ID,
			"source", s.current.Source,
		).Info("session ready", "rows", len(ds), "wait", time.Since(start))
	}
	return s.current, nil
}

// loaded returns the session, or nil while the dataset is still loading.
func (s *sessions) loaded() *core.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// withSession resolves the session and stores it in the request context.
// A failed load answers 503 with the mapped load error; the next request
// retries.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.sessions.get(r.Context())
		if err != nil {
			respondError(w, r, err, http.StatusServiceUnavailable)
			return
		}
		ctx := core.ContextWithSession(r.Context(), sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the session stored by withSession.
func (s *Server) sessionFrom(r *http.Request) *core.Session {
	if sess, ok := core.SessionFromContext(r.Context()); ok {
		return sess
	}
	return s.sessions.loaded()
}
