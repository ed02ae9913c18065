package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/IRI3V/proyecto/internal/core/domain"
	"github.com/IRI3V/proyecto/internal/core/port"
	"github.com/shopspring/decimal"
)

var _ port.InventoryManager = (*Service)(nil)
var _ port.CartManager = (*Service)(nil)
var _ port.CheckoutProcessor = (*Service)(nil)
var _ port.SalesReporter = (*Service)(nil)

const recentSalesLimit = 10

type Service struct {
	products   port.ProductRepository
	sales      port.SaleRepository
	saleEvents port.SaleEventsPublisher
	chart      port.ChartRenderer
}

func New(
	products port.ProductRepository,
	sales port.SaleRepository,
	saleEvents port.SaleEventsPublisher,
	chart port.ChartRenderer,
) Service {
	return Service{
		products,
		sales,
		saleEvents,
		chart,
	}
}

func (s Service) AddProduct(
	ctx context.Context, name string, price decimal.Decimal, quantity int,
) (domain.Product, error) {
	const op = "Service.AddProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	name = strings.TrimSpace(name)

	fields := make(map[string]string)
	if name == "" {
		fields["name"] = "name is required"
	}
	if price.IsNegative() {
		fields["price"] = "price must not be negative"
	}
	if quantity < 0 {
		fields["quantity"] = "quantity must not be negative"
	}
	if len(fields) != 0 {
		return domain.Product{}, fmt.Errorf(
			"%s: %w", op, domain.ValidationError{Fields: fields},
		)
	}

	p := domain.Product{Name: name, Price: price, Quantity: quantity}
	p, err := s.products.SaveProduct(ctx, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s Service) Products(ctx context.Context) ([]domain.Product, error) {
	const op = "Service.Products"

	ps, err := s.products.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

// AddToCart verifies the product exists and merges the quantity into
// the cart. Available stock is not checked until checkout.
func (s Service) AddToCart(
	ctx context.Context, cart domain.Cart, productID int64, quantity int,
) (domain.Cart, error) {
	const op = "Service.AddToCart"

	if quantity <= 0 {
		ve := domain.ValidationError{
			Fields: map[string]string{"quantity": "quantity must be positive"},
		}
		return cart, fmt.Errorf("%s: %w", op, ve)
	}

	if _, err := s.products.ProductByID(ctx, productID); err != nil {
		return cart, fmt.Errorf("%s: %w", op, err)
	}

	return cart.Add(productID, quantity), nil
}

func (s Service) RemoveFromCart(
	cart domain.Cart, productID int64,
) domain.Cart {
	return cart.Remove(productID)
}

// ViewCart resolves each entry against the catalog. Entries whose
// product no longer exists are skipped and do not contribute to the
// total.
func (s Service) ViewCart(
	ctx context.Context, cart domain.Cart,
) (domain.CartView, error) {
	const op = "Service.ViewCart"

	view := domain.CartView{Total: decimal.Zero}
	for _, e := range cart.Entries {
		p, err := s.products.ProductByID(ctx, e.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				continue
			}
			return domain.CartView{}, fmt.Errorf("%s: %w", op, err)
		}

		subtotal := p.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
		view.Items = append(view.Items, domain.CartItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  e.Quantity,
			Subtotal:  subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}
	return view, nil
}

// Checkout converts the cart into a persisted sale. All business
// validation happens in a read-only pass, the storage transaction
// only runs after every entry has been verified.
func (s Service) Checkout(
	ctx context.Context, cart domain.Cart,
) (domain.Sale, error) {
	const op = "Service.Checkout"

	if cart.IsEmpty() {
		return domain.Sale{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	total := decimal.Zero
	items := make([]domain.SaleLineItem, 0, len(cart.Entries))
	for _, e := range cart.Entries {
		p, err := s.products.ProductByID(ctx, e.ProductID)
		if err != nil {
			return domain.Sale{}, fmt.Errorf("%s: %w", op, err)
		}
		if p.Quantity < e.Quantity {
			ise := domain.InsufficientStockError{
				ProductID: p.ID, ProductName: p.Name,
			}
			return domain.Sale{}, fmt.Errorf("%s: %w", op, ise)
		}

		subtotal := p.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
		total = total.Add(subtotal)
		items = append(items, domain.SaleLineItem{
			ProductID: p.ID,
			Quantity:  e.Quantity,
			Subtotal:  subtotal,
		})
	}

	sale, err := s.sales.CreateSale(ctx, domain.Sale{Total: total, Items: items})
	if err != nil {
		return domain.Sale{}, fmt.Errorf("%s: %w", op, err)
	}

	// best-effort, a lost event never fails a committed sale
	if err := s.saleEvents.PublishSale(ctx, sale); err != nil {
		slog.Warn("failed to publish sale event",
			"op", op, "saleID", sale.ID, "err", err)
	}

	return sale, nil
}

func (s Service) RecentSales(ctx context.Context) ([]domain.Sale, error) {
	const op = "Service.RecentSales"

	sales, err := s.sales.RecentSales(ctx, recentSalesLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sales, nil
}

func (s Service) DailySalesChart(
	ctx context.Context,
) (domain.SalesChart, error) {
	const op = "Service.DailySalesChart"

	ds, err := s.sales.DailyTotals(ctx)
	if err != nil {
		return domain.SalesChart{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(ds) == 0 {
		return domain.SalesChart{Empty: true}, nil
	}

	png, err := s.chart.RenderDailySales(ds)
	if err != nil {
		return domain.SalesChart{}, fmt.Errorf("%s: %w", op, err)
	}
	return domain.SalesChart{PNG: png}, nil
}
