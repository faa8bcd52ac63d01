package ledger

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Uint64List stores a list of numeric ids as a JSON text column.
type Uint64List []uint64

func (l Uint64List) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *Uint64List) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("ledger: unsupported Uint64List column type")
}

// Contains reports whether id is present in the list.
func (l Uint64List) Contains(id uint64) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}
