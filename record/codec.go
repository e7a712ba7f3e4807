package record

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// encodeBlobValue prepares a value for storage in a Blob column. nil and raw
// []byte pass through; anything else is msgpack-encoded so arbitrary Go
// values round-trip through a BLOB.
func encodeBlobValue(v any) (any, error) {
	switch v.(type) {
	case nil, []byte:
		return v, nil
	}
	b, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode blob value: %w", err)
	}
	return b, nil
}

// GetBlob decodes a msgpack-encoded Blob attribute into dest. It is the
// inverse of Set with a non-[]byte value; for raw bytes use Get. A NULL
// attribute leaves dest untouched.
func (r *Record) GetBlob(name string, dest any) error {
	v, err := r.Get(name)
	if err != nil {
		return err
	}
	switch b := v.(type) {
	case nil:
		return nil
	case []byte:
		if err := msgpack.Unmarshal(b, dest); err != nil {
			return fmt.Errorf("decode %s.%s: %w", r.typ.table, name, err)
		}
		return nil
	}
	return fmt.Errorf("%s.%s: expected blob, got %T", r.typ.table, name, v)
}
