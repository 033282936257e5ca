package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// Value codecs for the module's stored records. Records are plain Go
// structs encoded as JSON; struct field order fixes the byte layout, so
// the encoding is deterministic across nodes.
var (
	ParamsValue    = newJSONValue[Params]("Params")
	StreamValue    = newJSONValue[Stream]("Stream")
	FinancingValue = newJSONValue[FinancingState]("FinancingState")
	LifecycleValue = newJSONValue[Lifecycle]("Lifecycle")
	RolesValue     = newJSONValue[Roles]("Roles")
)

type jsonValue[T any] struct {
	typeName string
}

func newJSONValue[T any](typeName string) collcodec.ValueCodec[T] {
	return jsonValue[T]{typeName: typeName}
}

func (c jsonValue[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValue[T]) Decode(b []byte) (T, error) {
	var value T
	err := json.Unmarshal(b, &value)
	return value, err
}

func (c jsonValue[T]) EncodeJSON(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValue[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValue[T]) Stringify(value T) string {
	return fmt.Sprintf("%v", value)
}

func (c jsonValue[T]) ValueType() string {
	return c.typeName
}
