package http

import (
	"net/http"
	"net/url"
	"strings"
)

type RouterConfig struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Spots        *SpotHandler
	Reservations *ReservationHandler
	Favorites    *FavoriteHandler
	Feedback     *FeedbackHandler
	Middleware   []func(http.Handler) http.Handler
}

func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	if cfg.Auth != nil {
		mux.HandleFunc("/signup", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Auth.SignUp(w, r)
		})
		mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Auth.Login(w, r)
		})
		mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Auth.Logout(w, r)
		})
	}

	if cfg.Profile != nil {
		mux.HandleFunc("/profile", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Profile.Get(w, r)
		})
		mux.HandleFunc("/profile/name", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut {
				methodNotAllowed(w, http.MethodPut)
				return
			}
			cfg.Profile.Rename(w, r)
		})
		mux.HandleFunc("/profile/image", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut {
				methodNotAllowed(w, http.MethodPut)
				return
			}
			cfg.Profile.SetImage(w, r)
		})
	}

	if cfg.Spots != nil {
		mux.HandleFunc("/spots", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Spots.List(w, r)
		})
		mux.HandleFunc("/spots/", func(w http.ResponseWriter, r *http.Request) {
			rest := strings.TrimPrefix(r.URL.Path, "/spots/")
			if rest == "" {
				http.NotFound(w, r)
				return
			}
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}

			name, wantsNavigation := strings.CutSuffix(rest, "/navigation")
			name = decodePathSegment(name)
			if name == "" {
				http.NotFound(w, r)
				return
			}
			r = r.WithContext(ContextWithSpotName(r.Context(), name))
			if wantsNavigation {
				cfg.Spots.Navigation(w, r)
				return
			}
			cfg.Spots.Get(w, r)
		})
	}

	if cfg.Reservations != nil {
		mux.HandleFunc("/reservations", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Reservations.List(w, r)
			case http.MethodPost:
				cfg.Reservations.Create(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
		mux.HandleFunc("/reservations/quote", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				methodNotAllowed(w, http.MethodPost)
				return
			}
			cfg.Reservations.Quote(w, r)
		})
	}

	if cfg.Favorites != nil {
		mux.HandleFunc("/favorites", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				methodNotAllowed(w, http.MethodGet)
				return
			}
			cfg.Favorites.List(w, r)
		})
		mux.HandleFunc("/favorites/", func(w http.ResponseWriter, r *http.Request) {
			name := decodePathSegment(strings.TrimPrefix(r.URL.Path, "/favorites/"))
			if name == "" {
				http.NotFound(w, r)
				return
			}
			r = r.WithContext(ContextWithSpotName(r.Context(), name))
			switch r.Method {
			case http.MethodPut:
				cfg.Favorites.Add(w, r)
			case http.MethodDelete:
				cfg.Favorites.Remove(w, r)
			case http.MethodPost:
				cfg.Favorites.Toggle(w, r)
			default:
				methodNotAllowed(w, http.MethodPut, http.MethodDelete, http.MethodPost)
			}
		})
	}

	if cfg.Feedback != nil {
		mux.HandleFunc("/feedback", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				cfg.Feedback.History(w, r)
			case http.MethodPost:
				cfg.Feedback.Submit(w, r)
			default:
				methodNotAllowed(w, http.MethodGet, http.MethodPost)
			}
		})
	}

	var handler http.Handler = mux
	if len(cfg.Middleware) > 0 {
		for i := len(cfg.Middleware) - 1; i >= 0; i-- {
			if cfg.Middleware[i] != nil {
				handler = cfg.Middleware[i](handler)
			}
		}
	}

	return handler
}

// decodePathSegment unescapes a single path segment. Spot names contain
// spaces, so clients send them percent encoded.
func decodePathSegment(segment string) string {
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return decoded
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
