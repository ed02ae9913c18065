package httphandler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IRI3V/proyecto/internal/adapter/httphandler"
	"github.com/IRI3V/proyecto/internal/adapter/session"
	"github.com/IRI3V/proyecto/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) AddProduct(
	ctx context.Context, name string, price decimal.Decimal, quantity int,
) (domain.Product, error) {
	args := m.Called(ctx, name, price, quantity)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockInventory) Products(
	ctx context.Context,
) ([]domain.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

type MockCartManager struct {
	mock.Mock
}

func (m *MockCartManager) AddToCart(
	ctx context.Context, cart domain.Cart, productID int64, quantity int,
) (domain.Cart, error) {
	args := m.Called(ctx, cart, productID, quantity)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartManager) RemoveFromCart(
	cart domain.Cart, productID int64,
) domain.Cart {
	args := m.Called(cart, productID)
	return args.Get(0).(domain.Cart)
}

func (m *MockCartManager) ViewCart(
	ctx context.Context, cart domain.Cart,
) (domain.CartView, error) {
	args := m.Called(ctx, cart)
	return args.Get(0).(domain.CartView), args.Error(1)
}

type MockCheckout struct {
	mock.Mock
}

func (m *MockCheckout) Checkout(
	ctx context.Context, cart domain.Cart,
) (domain.Sale, error) {
	args := m.Called(ctx, cart)
	return args.Get(0).(domain.Sale), args.Error(1)
}

type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) RecentSales(ctx context.Context) ([]domain.Sale, error) {
	args := m.Called(ctx)
	sales, _ := args.Get(0).([]domain.Sale)
	return sales, args.Error(1)
}

func (m *MockReporter) DailySalesChart(
	ctx context.Context,
) (domain.SalesChart, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SalesChart), args.Error(1)
}

type salesFixture struct {
	mux       *http.ServeMux
	sessions  *session.Store
	inventory *MockInventory
	cart      *MockCartManager
	checkout  *MockCheckout
	reports   *MockReporter
}

func newSalesFixture() salesFixture {
	f := salesFixture{
		mux:       http.NewServeMux(),
		sessions:  session.NewStore(),
		inventory: new(MockInventory),
		cart:      new(MockCartManager),
		checkout:  new(MockCheckout),
		reports:   new(MockReporter),
	}
	httphandler.RegisterSales(
		f.mux, f.inventory, f.cart, f.checkout, f.reports, f.sessions,
	)
	return f
}

// post issues the request and returns the session cookie for
// follow-ups.
func (f salesFixture) post(
	t *testing.T, path string, form string,
) (*httptest.ResponseRecorder, *http.Cookie) {
	t.Helper()

	r := httptest.NewRequest("POST", path, strings.NewReader(form))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	f.mux.ServeHTTP(w, r)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return w, cookies[0]
}

// getSales renders the composite view with the given session and
// returns the body, flashes included.
func (f salesFixture) getSales(t *testing.T, cookie *http.Cookie) string {
	t.Helper()

	f.inventory.On("Products", mock.Anything).Return(nil, nil).Maybe()
	f.cart.On("ViewCart", mock.Anything, mock.Anything).
		Return(domain.CartView{}, nil).Maybe()
	f.reports.On("RecentSales", mock.Anything).Return(nil, nil).Maybe()

	r := httptest.NewRequest("GET", "/sales", nil)
	r.AddCookie(cookie)
	w := httptest.NewRecorder()
	f.mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestPostCheckout(t *testing.T) {

	t.Run("EmptyCart", func(t *testing.T) {
		f := newSalesFixture()
		f.checkout.On("Checkout", mock.Anything, domain.Cart{}).
			Return(domain.Sale{}, domain.ErrEmptyCart)

		w, cookie := f.post(t, "/sales/checkout", "")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/sales", w.Header().Get("Location"))

		body := f.getSales(t, cookie)
		assert.Contains(t, body, "The cart is empty.")
	})

	t.Run("InsufficientStock", func(t *testing.T) {
		f := newSalesFixture()
		f.checkout.On("Checkout", mock.Anything, mock.Anything).
			Return(domain.Sale{}, domain.InsufficientStockError{
				ProductID: 1, ProductName: "Coffee",
			})

		_, cookie := f.post(t, "/sales/checkout", "")

		body := f.getSales(t, cookie)
		assert.Contains(t, body, "Insufficient stock")
		assert.Contains(t, body, "Coffee")
	})

	t.Run("Success", func(t *testing.T) {
		f := newSalesFixture()
		f.checkout.On("Checkout", mock.Anything, mock.Anything).
			Return(domain.Sale{ID: 7, Total: decimal.NewFromInt(28)}, nil)

		_, cookie := f.post(t, "/sales/checkout", "")

		body := f.getSales(t, cookie)
		assert.Contains(t, body, "Sale #7 completed, total 28.00!")
	})
}

func TestPostCart(t *testing.T) {

	t.Run("AddsProduct", func(t *testing.T) {
		f := newSalesFixture()
		f.cart.On("AddToCart", mock.Anything, domain.Cart{}, int64(1), 2).
			Return(domain.Cart{}.Add(1, 2), nil)

		w, cookie := f.post(t, "/sales/cart", "product_id=1&quantity=2")
		assert.Equal(t, http.StatusSeeOther, w.Code)

		body := f.getSales(t, cookie)
		assert.Contains(t, body, "Product added to cart!")

		f.cart.AssertCalled(
			t, "ViewCart", mock.Anything, domain.Cart{}.Add(1, 2),
		)
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		f := newSalesFixture()
		f.cart.On("AddToCart", mock.Anything, mock.Anything, int64(42), 1).
			Return(domain.Cart{}, domain.ErrProductNotFound)

		_, cookie := f.post(t, "/sales/cart", "product_id=42&quantity=1")

		body := f.getSales(t, cookie)
		assert.Contains(t, body, "Product not found.")
	})

	t.Run("MalformedInput", func(t *testing.T) {
		f := newSalesFixture()

		_, cookie := f.post(t, "/sales/cart", "product_id=abc&quantity=xyz")

		body := f.getSales(t, cookie)
		assert.Contains(t, body, "Invalid product or quantity.")
		f.cart.AssertNotCalled(
			t, "AddToCart",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		)
	})
}

func TestPostCartRemove(t *testing.T) {
	f := newSalesFixture()
	f.cart.On("RemoveFromCart", domain.Cart{}, int64(5)).
		Return(domain.Cart{})

	w, cookie := f.post(t, "/sales/cart/5/remove", "")
	assert.Equal(t, http.StatusSeeOther, w.Code)

	body := f.getSales(t, cookie)
	assert.Contains(t, body, "Product removed from cart.")
}
