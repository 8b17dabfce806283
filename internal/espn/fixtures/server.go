package fixtures

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"sportsterminal/internal/catalog"
	"sportsterminal/internal/domain"
)

// NewRouter serves the fixtures under the ESPN site API paths:
//
//	GET /{sport}/{league}/scoreboard[?dates=...]
//	GET /{sport}/{league}/summary?event={id}
//
// Every catalog league gets the same canned data. Unknown leagues are 404.
func NewRouter(log zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(accessLog(log))

	r.Route("/{sport}/{league}", func(r chi.Router) {
		r.Use(knownLeague)
		r.Get("/scoreboard", serveFile(Scoreboard))
		r.With(requireQuery("event")).Get("/summary", serveFile(Summary))
	})
	return r
}

func knownLeague(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sport := domain.SportID(chi.URLParam(r, "sport"))
		league := domain.LeagueID(chi.URLParam(r, "league"))
		if _, _, err := catalog.FindLeague(sport, league); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requireQuery(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get(name) == "" {
				http.Error(w, "missing "+name, http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func serveFile(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := Read(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(b)
	}
}

// accessLog records method, path, remote, status, bytes and duration for
// each request.
func accessLog(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.RequestURI()).
				Str("remote", r.RemoteAddr).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
