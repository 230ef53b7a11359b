package core

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType represents the type of a field value
type FieldType uint8

const (
	StringType FieldType = iota
	IntType
	Int64Type
	Uint64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	AnyType
)

// Field represents a key-value pair for structured logging. Numeric,
// boolean, time and duration values live in Int64/Float64 so they never
// escape to the heap; Any is the fallback for everything else.
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch f.Type {
	case StringType, ErrorType:
		return f.Str
	default:
		return string(f.AppendValue(nil))
	}
}

// AppendValue appends the textual form of the value to dst.
func (f Field) AppendValue(dst []byte) []byte {
	switch f.Type {
	case StringType, ErrorType:
		return append(dst, f.Str...)
	case IntType, Int64Type:
		return strconv.AppendInt(dst, f.Int64, 10)
	case Uint64Type:
		return strconv.AppendUint(dst, uint64(f.Int64), 10)
	case Float64Type:
		return strconv.AppendFloat(dst, f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.AppendBool(dst, f.Int64 == 1)
	case TimeType:
		return time.Unix(0, f.Int64).UTC().AppendFormat(dst, time.RFC3339)
	case DurationType:
		return append(dst, time.Duration(f.Int64).String()...)
	case AnyType:
		return fmt.Append(dst, f.Any)
	default:
		return dst
	}
}
