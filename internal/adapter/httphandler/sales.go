package httphandler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/IRI3V/proyecto/internal/adapter/session"
	"github.com/IRI3V/proyecto/internal/core/domain"
	"github.com/IRI3V/proyecto/internal/core/port"
)

type SalesHandler struct {
	inventory port.InventoryManager
	cart      port.CartManager
	checkout  port.CheckoutProcessor
	reports   port.SalesReporter
	sessions  *session.Store
}

func RegisterSales(
	mux *http.ServeMux,
	inventory port.InventoryManager,
	cart port.CartManager,
	checkout port.CheckoutProcessor,
	reports port.SalesReporter,
	sessions *session.Store,
) {
	h := SalesHandler{inventory, cart, checkout, reports, sessions}
	mux.HandleFunc("GET /sales", h.GetSales)
	mux.HandleFunc("POST /sales/cart", h.PostCart)
	mux.HandleFunc("POST /sales/cart/{productID}/remove", h.PostCartRemove)
	mux.HandleFunc("POST /sales/checkout", h.PostCheckout)
}

// GetSales renders the composite sales view: the product listing,
// the resolved cart and the most recent sales.
func (h SalesHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	const op = "SalesHandler.GetSales"
	log := slog.With("op", op)

	sess := h.sessions.Get(w, r)
	ctx := r.Context()

	ps, err := h.inventory.Products(ctx)
	if err != nil {
		log.Error("failed to list products", "err", err)
		sess.Flash("danger", "Failed to load the product listing.")
	}

	view, err := h.cart.ViewCart(ctx, sess.Cart())
	if err != nil {
		log.Error("failed to resolve cart", "err", err)
		sess.Flash("danger", "Failed to load the cart.")
	}

	recent, err := h.reports.RecentSales(ctx)
	if err != nil {
		log.Error("failed to list recent sales", "err", err)
		sess.Flash("danger", "Failed to load recent sales.")
	}

	render(w, "sales.html", SalesPage{
		Flashes:  sess.PopFlashes(),
		Products: ps,
		Cart:     view,
		Recent:   recent,
	})
}

func (h SalesHandler) PostCart(w http.ResponseWriter, r *http.Request) {
	const op = "SalesHandler.PostCart"
	log := slog.With("op", op)

	sess := h.sessions.Get(w, r)
	defer http.Redirect(w, r, "/sales", http.StatusSeeOther)

	productID, errID := strconv.ParseInt(r.FormValue("product_id"), 10, 64)
	quantity, errQty := strconv.Atoi(r.FormValue("quantity"))
	if errID != nil || errQty != nil {
		sess.Flash("danger", "Invalid product or quantity.")
		return
	}

	cart, err := h.cart.AddToCart(r.Context(), sess.Cart(), productID, quantity)

	var ve domain.ValidationError
	switch {
	case err == nil:
		sess.SetCart(cart)
		sess.Flash("success", "Product added to cart!")
	case errors.Is(err, domain.ErrProductNotFound):
		sess.Flash("danger", "Product not found.")
	case errors.As(err, &ve):
		sess.Flash("danger", "Quantity must be positive.")
	default:
		log.Error("failed to add to cart", "err", err)
		sess.Flash("danger", "Failed to add the product to the cart.")
	}
}

// PostCartRemove always confirms, removing an absent product is not
// an error.
func (h SalesHandler) PostCartRemove(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)

	productID, err := strconv.ParseInt(r.PathValue("productID"), 10, 64)
	if err == nil {
		sess.SetCart(h.cart.RemoveFromCart(sess.Cart(), productID))
	}

	sess.Flash("success", "Product removed from cart.")
	http.Redirect(w, r, "/sales", http.StatusSeeOther)
}

func (h SalesHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "SalesHandler.PostCheckout"
	log := slog.With("op", op)

	sess := h.sessions.Get(w, r)
	defer http.Redirect(w, r, "/sales", http.StatusSeeOther)

	sale, err := h.checkout.Checkout(r.Context(), sess.Cart())

	var ise domain.InsufficientStockError
	switch {
	case err == nil:
		sess.ClearCart()
		sess.Flash("success", fmt.Sprintf(
			"Sale #%d completed, total %s!", sale.ID, sale.Total.StringFixed(2),
		))
	case errors.Is(err, domain.ErrEmptyCart):
		sess.Flash("warning", "The cart is empty.")
	case errors.As(err, &ise):
		sess.Flash("danger", fmt.Sprintf(
			"Insufficient stock for product %q.", ise.ProductName,
		))
	case errors.Is(err, domain.ErrProductNotFound):
		sess.Flash("danger", "Product not found.")
	default:
		log.Error("failed to process sale", "err", err)
		sess.Flash("danger", "Failed to process the sale.")
	}
}
