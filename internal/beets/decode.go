package beets

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// rawRow holds one row's values as returned by the driver: int64, float64,
// string, []byte or nil.
type rawRow []any

// localRow is a borrowed view of one raw row plus the table/column the
// current field belongs to. It exists only for the duration of one decode
// call and is never stored.
type localRow struct {
	row rawRow
	tc  TableColumn
}

func (r localRow) value(idx int) any {
	return r.row[idx]
}

func (r localRow) typeError(v any, want string) error {
	return rowError(r.tc, fmt.Errorf("invalid column type: have %s, want %s", storageType(v), want))
}

func storageType(v any) string {
	switch v.(type) {
	case nil:
		return "NULL"
	case int64:
		return "INTEGER"
	case float64:
		return "REAL"
	case string:
		return "TEXT"
	case []byte:
		return "BLOB"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// colUint decodes a non-negative integer column. NULL decodes to 0 so a
// stored NULL and a stored zero are indistinguishable downstream.
func colUint(r localRow, idx int) (uint32, error) {
	switch v := r.value(idx).(type) {
	case nil:
		return 0, nil
	case int64:
		if v < 0 || v > math.MaxUint32 {
			return 0, rowError(r.tc, fmt.Errorf("integer %d out of range for uint32", v))
		}
		return uint32(v), nil
	default:
		return 0, r.typeError(v, "INTEGER")
	}
}

func colFloat(r localRow, idx int) (float64, error) {
	switch v := r.value(idx).(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, r.typeError(v, "REAL")
	}
}

// colString accepts TEXT only. BLOB is rejected so fallback decoders that
// try text first actually reach their blob leg.
func colString(r localRow, idx int) (string, error) {
	switch v := r.value(idx).(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", r.typeError(v, "TEXT")
	}
}

func colBool(r localRow, idx int) (bool, error) {
	switch v := r.value(idx).(type) {
	case nil:
		return false, nil
	case int64:
		return v != 0, nil
	default:
		return false, r.typeError(v, "INTEGER")
	}
}

func colOptUint(r localRow, idx int) (*uint32, error) {
	if r.value(idx) == nil {
		return nil, nil
	}
	v, err := colUint(r, idx)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func colOptInt(r localRow, idx int) (*int32, error) {
	switch v := r.value(idx).(type) {
	case nil:
		return nil, nil
	case int64:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, rowError(r.tc, fmt.Errorf("integer %d out of range for int32", v))
		}
		n := int32(v)
		return &n, nil
	default:
		return nil, r.typeError(v, "INTEGER")
	}
}

func colOptFloat(r localRow, idx int) (*float64, error) {
	if r.value(idx) == nil {
		return nil, nil
	}
	v, err := colFloat(r, idx)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func colOptString(r localRow, idx int) (*string, error) {
	if r.value(idx) == nil {
		return nil, nil
	}
	v, err := colString(r, idx)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// lossyString decodes bytes as UTF-8, replacing each invalid byte with the
// Unicode replacement character. It never fails.
func lossyString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}

// colPath decodes a path column that different beets versions store as
// either TEXT or BLOB: try text first, then fall back to a lossy byte
// decode.
func colPath(r localRow, idx int) (string, error) {
	s, err := colString(r, idx)
	if err == nil {
		return s, nil
	}
	if b, ok := r.value(idx).([]byte); ok {
		return lossyString(b), nil
	}
	return "", err
}

// colOptPath decodes an optional BLOB path column. NULL means no value, not
// an empty path. TEXT is accepted too since the lossy decode covers it.
func colOptPath(r localRow, idx int) (*string, error) {
	switch v := r.value(idx).(type) {
	case nil:
		return nil, nil
	case []byte:
		s := lossyString(v)
		return &s, nil
	case string:
		return &v, nil
	default:
		return nil, r.typeError(v, "BLOB")
	}
}
