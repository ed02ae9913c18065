package schema

const SaleSchemaTextV1 = `{
	"type": "record",
	"namespace": "pos",
	"name": "sale",
	"fields": [
		{"name": "sale_id", "type": "long"},
		{"name": "created_at", "type": "string"},
		{"name": "total", "type": "string"},
		{"name": "items", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "sale_item",
				"fields": [
					{"name": "product_id", "type": "long"},
					{"name": "quantity", "type": "long"},
					{"name": "subtotal", "type": "string"}
				]
			}
		}}
	]
}`

// Money fields travel as decimal strings, timestamps as RFC 3339.
type (
	SaleV1 struct {
		SaleID    int64        `avro:"sale_id"`
		CreatedAt string       `avro:"created_at"`
		Total     string       `avro:"total"`
		Items     []SaleItemV1 `avro:"items"`
	}

	SaleItemV1 struct {
		ProductID int64  `avro:"product_id"`
		Quantity  int    `avro:"quantity"`
		Subtotal  string `avro:"subtotal"`
	}
)

func NewSerdeSaleV1() (Serde, error) {
	return newSerde(SaleSchemaTextV1)
}
