package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/IRI3V/proyecto/internal/adapter/session"
	"github.com/IRI3V/proyecto/internal/core/port"
)

type ChartsHandler struct {
	reports  port.SalesReporter
	sessions *session.Store
}

func RegisterCharts(
	mux *http.ServeMux,
	reports port.SalesReporter,
	sessions *session.Store,
) {
	h := ChartsHandler{reports, sessions}
	mux.HandleFunc("GET /charts", h.GetCharts)
	mux.HandleFunc("GET /charts/daily-sales.png", h.GetChartImage)
}

// GetCharts degrades to a notice on the home view when the chart
// cannot be generated, internal detail stays in the log.
func (h ChartsHandler) GetCharts(w http.ResponseWriter, r *http.Request) {
	const op = "ChartsHandler.GetCharts"
	log := slog.With("op", op)

	sess := h.sessions.Get(w, r)

	result, err := h.reports.DailySalesChart(r.Context())
	if err != nil {
		log.Error("failed to generate chart", "err", err)
		sess.Flash("danger", "Failed to generate the sales chart.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	render(w, "charts.html", ChartsPage{
		Flashes:  sess.PopFlashes(),
		HasChart: !result.Empty,
	})
}

func (h ChartsHandler) GetChartImage(w http.ResponseWriter, r *http.Request) {
	const op = "ChartsHandler.GetChartImage"
	log := slog.With("op", op)

	result, err := h.reports.DailySalesChart(r.Context())
	if err != nil {
		log.Error("failed to generate chart", "err", err)
		http.Error(w, "failed to generate chart", http.StatusInternalServerError)
		return
	}
	if result.Empty {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(result.PNG); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}
