package port

import (
	"context"

	"github.com/IRI3V/proyecto/internal/core/domain"
	"github.com/shopspring/decimal"
)

type InventoryManager interface {
	AddProduct(
		ctx context.Context, name string, price decimal.Decimal, quantity int,
	) (domain.Product, error)
	Products(context.Context) ([]domain.Product, error)
}

type CartManager interface {
	AddToCart(
		ctx context.Context, cart domain.Cart, productID int64, quantity int,
	) (domain.Cart, error)
	RemoveFromCart(cart domain.Cart, productID int64) domain.Cart
	ViewCart(context.Context, domain.Cart) (domain.CartView, error)
}

type CheckoutProcessor interface {
	Checkout(context.Context, domain.Cart) (domain.Sale, error)
}

type SalesReporter interface {
	RecentSales(context.Context) ([]domain.Sale, error)
	DailySalesChart(context.Context) (domain.SalesChart, error)
}

type ProductRepository interface {
	SaveProduct(context.Context, domain.Product) (domain.Product, error)
	ProductByID(context.Context, int64) (domain.Product, error)
	Products(context.Context) ([]domain.Product, error)
}

type SaleRepository interface {
	CreateSale(context.Context, domain.Sale) (domain.Sale, error)
	RecentSales(ctx context.Context, limit int) ([]domain.Sale, error)
	DailyTotals(context.Context) ([]domain.DailySales, error)
}

type SaleEventsPublisher interface {
	PublishSale(context.Context, domain.Sale) error
}

type ChartRenderer interface {
	RenderDailySales([]domain.DailySales) ([]byte, error)
}
