package httphandler

import (
	"github.com/IRI3V/proyecto/internal/adapter/session"
	"github.com/IRI3V/proyecto/internal/core/domain"
)

type (
	IndexPage struct {
		Flashes []session.Flash
	}

	ProductForm struct {
		Name     string
		Price    string
		Quantity string
	}

	InventoryPage struct {
		Flashes  []session.Flash
		Form     ProductForm
		Errors   map[string]string
		Products []domain.Product
	}

	SalesPage struct {
		Flashes  []session.Flash
		Products []domain.Product
		Cart     domain.CartView
		Recent   []domain.Sale
	}

	ChartsPage struct {
		Flashes  []session.Flash
		HasChart bool
	}
)
