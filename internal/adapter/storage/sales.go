package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/IRI3V/proyecto/internal/core/domain"
	"github.com/IRI3V/proyecto/internal/core/port"
)

var _ port.SaleRepository = (*SalesRepository)(nil)

type SalesRepository struct {
	sqldb sqldb
}

func NewSalesRepository(sqldb sqldb) SalesRepository {
	return SalesRepository{sqldb}
}

// CreateSale persists the sale header, its line items and the stock
// decrements in one transaction. The decrement is conditional on
// enough stock remaining, so a checkout racing another one aborts
// instead of driving the quantity negative.
func (r SalesRepository) CreateSale(
	ctx context.Context, sale domain.Sale,
) (created domain.Sale, createErr error) {
	const op = "SalesRepository.CreateSale"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.Sale{}, fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if createErr == nil {
			if err := tx.Commit(); err != nil {
				createErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	insertSale := `
		INSERT INTO sales (total)
		VALUES ($1)
		RETURNING id, created_at;`

	err = tx.QueryRowContext(ctx, insertSale, sale.Total).
		Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("%s: failed to insert sale: %w", op, err)
	}

	insertItem := `
		INSERT INTO sale_items (sale_id, product_id, quantity, subtotal)
		VALUES ($1, $2, $3, $4)
		RETURNING id;`

	decrementStock := `
		UPDATE products
		SET quantity = quantity - $1
		WHERE id = $2 AND quantity >= $1;`

	for i := range sale.Items {
		item := &sale.Items[i]
		item.SaleID = sale.ID

		err = tx.QueryRowContext(ctx, insertItem,
			item.SaleID, item.ProductID, item.Quantity, item.Subtotal,
		).Scan(&item.ID)
		if err != nil {
			return domain.Sale{}, fmt.Errorf(
				"%s: failed to insert line item: %w", op, err,
			)
		}

		res, err := tx.ExecContext(
			ctx, decrementStock, item.Quantity, item.ProductID,
		)
		if err != nil {
			return domain.Sale{}, fmt.Errorf(
				"%s: failed to decrement stock: %w", op, err,
			)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return domain.Sale{}, fmt.Errorf("%s: %w", op, err)
		}
		if affected == 0 {
			return domain.Sale{}, fmt.Errorf(
				"%s: %w", op, r.stockError(ctx, item.ProductID),
			)
		}
	}

	return sale, nil
}

// stockError distinguishes a vanished product from a lost stock race.
func (r SalesRepository) stockError(
	ctx context.Context, productID int64,
) error {
	var name string
	err := r.sqldb.QueryRowContext(
		ctx, `SELECT name FROM products WHERE id = $1;`, productID,
	).Scan(&name)
	if err != nil {
		return domain.ErrProductNotFound
	}
	return domain.InsufficientStockError{ProductID: productID, ProductName: name}
}

func (r SalesRepository) RecentSales(
	ctx context.Context, limit int,
) ([]domain.Sale, error) {
	const op = "SalesRepository.RecentSales"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, created_at, total
		FROM sales
		ORDER BY created_at DESC, id DESC
		LIMIT $1;`

	rows, err := r.sqldb.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.Total); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range sales {
		items, err := r.saleItems(ctx, sales[i].ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		sales[i].Items = items
	}
	return sales, nil
}

func (r SalesRepository) saleItems(
	ctx context.Context, saleID int64,
) ([]domain.SaleLineItem, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, subtotal
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY id ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.SaleLineItem
	for rows.Next() {
		var item domain.SaleLineItem
		err := rows.Scan(
			&item.ID, &item.SaleID, &item.ProductID,
			&item.Quantity, &item.Subtotal,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r SalesRepository) DailyTotals(
	ctx context.Context,
) ([]domain.DailySales, error) {
	const op = "SalesRepository.DailyTotals"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT date_trunc('day', s.created_at) AS day, SUM(li.subtotal)
		FROM sales s
		JOIN sale_items li ON li.sale_id = s.id
		GROUP BY day
		ORDER BY day ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ds []domain.DailySales
	for rows.Next() {
		var d domain.DailySales
		if err := rows.Scan(&d.Day, &d.Total); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ds = append(ds, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ds, nil
}
