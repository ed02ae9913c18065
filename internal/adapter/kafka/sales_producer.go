package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/IRI3V/proyecto/internal/core/domain"
	"github.com/IRI3V/proyecto/internal/core/port"
	"github.com/IRI3V/proyecto/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.SaleEventsPublisher = (*SalesProducer)(nil)

// SalesProducer publishes one sale-committed event per finalized
// sale, keyed by the sale id.
type SalesProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewSalesProducer(opts ...ProducerOpt) (SalesProducer, error) {
	const op = "NewSalesProducer"

	if len(opts) != 2 {
		panic(fmt.Errorf("%s: %w", op, ErrTooFewOpts)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return SalesProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return SalesProducer{options.cl, options.encoder}, nil
}

func (p SalesProducer) Close() {
	const op = "SalesProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p SalesProducer) PublishSale(
	ctx context.Context, sale domain.Sale,
) error {
	const op = "SalesProducer.PublishSale"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r, err := p.createRecord(sale)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (p SalesProducer) createRecord(sale domain.Sale) (*kgo.Record, error) {
	s := p.toSchema(sale)
	v, err := p.encoder.Encode(s)
	if err != nil {
		return nil, err
	}
	key := []byte(strconv.FormatInt(s.SaleID, 10))
	return &kgo.Record{Key: key, Value: v}, nil
}

func (p SalesProducer) toSchema(sale domain.Sale) (s schema.SaleV1) {
	s.SaleID = sale.ID
	s.CreatedAt = sale.CreatedAt.Format(time.RFC3339)
	s.Total = sale.Total.StringFixed(2)

	s.Items = make([]schema.SaleItemV1, len(sale.Items))
	for i, item := range sale.Items {
		s.Items[i] = schema.SaleItemV1{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal.StringFixed(2),
		}
	}
	return s
}
