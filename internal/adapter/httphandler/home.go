package httphandler

import (
	"net/http"

	"github.com/IRI3V/proyecto/internal/adapter/session"
)

type HomeHandler struct {
	sessions *session.Store
}

func RegisterHome(mux *http.ServeMux, sessions *session.Store) {
	h := HomeHandler{sessions}
	mux.HandleFunc("GET /{$}", h.GetIndex)
}

func (h HomeHandler) GetIndex(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)
	render(w, "index.html", IndexPage{Flashes: sess.PopFlashes()})
}
