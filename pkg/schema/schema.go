package schema

import (
	"fmt"

	"github.com/hamba/avro/v2"
)

// Serde encodes and decodes values against a fixed Avro schema.
type Serde struct {
	avroSchema avro.Schema
}

func newSerde(schemaText string) (Serde, error) {
	avroSchema, err := avro.Parse(schemaText)
	if err != nil {
		return Serde{}, fmt.Errorf("failed to parse schema: %w", err)
	}
	return Serde{avroSchema}, nil
}

func (s Serde) Encode(v any) ([]byte, error) {
	return avro.Marshal(s.avroSchema, v)
}

func (s Serde) Decode(data []byte, v any) error {
	return avro.Unmarshal(s.avroSchema, data, v)
}
