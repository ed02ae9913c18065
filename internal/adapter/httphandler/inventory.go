package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/IRI3V/proyecto/internal/adapter/session"
	"github.com/IRI3V/proyecto/internal/core/domain"
	"github.com/IRI3V/proyecto/internal/core/port"
	"github.com/shopspring/decimal"
)

type InventoryHandler struct {
	inventory port.InventoryManager
	sessions  *session.Store
}

func RegisterInventory(
	mux *http.ServeMux,
	inventory port.InventoryManager,
	sessions *session.Store,
) {
	h := InventoryHandler{inventory, sessions}
	mux.HandleFunc("GET /inventory", h.GetInventory)
	mux.HandleFunc("POST /inventory", h.PostInventory)
}

func (h InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.GetInventory"
	log := slog.With("op", op)

	sess := h.sessions.Get(w, r)

	ps, err := h.inventory.Products(r.Context())
	if err != nil {
		log.Error("failed to list products", "err", err)
		sess.Flash("danger", "Failed to load the product listing.")
	}

	render(w, "inventory.html", InventoryPage{
		Flashes:  sess.PopFlashes(),
		Products: ps,
	})
}

// PostInventory creates a product. Validation failures redisplay the
// form with the entered values and field-level messages.
func (h InventoryHandler) PostInventory(w http.ResponseWriter, r *http.Request) {
	const op = "InventoryHandler.PostInventory"
	log := slog.With("op", op)

	sess := h.sessions.Get(w, r)

	form := ProductForm{
		Name:     r.FormValue("name"),
		Price:    r.FormValue("price"),
		Quantity: r.FormValue("quantity"),
	}

	fieldErrs := make(map[string]string)
	if strings.TrimSpace(form.Name) == "" {
		fieldErrs["name"] = "name is required"
	}
	price, err := decimal.NewFromString(strings.TrimSpace(form.Price))
	if err != nil {
		fieldErrs["price"] = "price must be a number"
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(form.Quantity))
	if err != nil {
		fieldErrs["quantity"] = "quantity must be an integer"
	}

	if len(fieldErrs) == 0 {
		_, err := h.inventory.AddProduct(r.Context(), form.Name, price, quantity)

		var ve domain.ValidationError
		switch {
		case err == nil:
			sess.Flash("success", "Product added to inventory!")
			http.Redirect(w, r, "/inventory", http.StatusSeeOther)
			return
		case errors.As(err, &ve):
			fieldErrs = ve.Fields
		default:
			log.Error("failed to add product", "err", err)
			sess.Flash("danger", "Failed to add the product.")
			http.Redirect(w, r, "/inventory", http.StatusSeeOther)
			return
		}
	}

	ps, err := h.inventory.Products(r.Context())
	if err != nil {
		log.Error("failed to list products", "err", err)
	}

	render(w, "inventory.html", InventoryPage{
		Flashes:  sess.PopFlashes(),
		Form:     form,
		Errors:   fieldErrs,
		Products: ps,
	})
}
