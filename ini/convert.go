package ini

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cast"
)

// ErrConversion is wrapped by every error returned from Convert
var ErrConversion = errors.New("ini: conversion failed")

// Scalar lists the types Convert knows how to produce
type Scalar interface {
	string | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		time.Duration
}

// Parser converts a raw value into T
type Parser[T any] func(raw string) (T, error)

// TextUnmarshaler is satisfied by *T when T can decode itself from text
type TextUnmarshaler[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// Convert parses raw into T using cast's conversions. Integers accept
// base prefixes (0x, 0o, 0b) and must fit the bit size of T.
func Convert[T Scalar](raw string) (T, error) {
	var out T
	var err error

	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *bool:
		*p, err = cast.ToBoolE(raw)
	case *int:
		*p, err = toSigned[int](raw, math.MinInt, math.MaxInt)
	case *int8:
		*p, err = toSigned[int8](raw, math.MinInt8, math.MaxInt8)
	case *int16:
		*p, err = toSigned[int16](raw, math.MinInt16, math.MaxInt16)
	case *int32:
		*p, err = toSigned[int32](raw, math.MinInt32, math.MaxInt32)
	case *int64:
		*p, err = cast.ToInt64E(raw)
	case *uint:
		*p, err = toUnsigned[uint](raw, math.MaxUint)
	case *uint8:
		*p, err = toUnsigned[uint8](raw, math.MaxUint8)
	case *uint16:
		*p, err = toUnsigned[uint16](raw, math.MaxUint16)
	case *uint32:
		*p, err = toUnsigned[uint32](raw, math.MaxUint32)
	case *uint64:
		*p, err = cast.ToUint64E(raw)
	case *float32:
		*p, err = cast.ToFloat32E(raw)
	case *float64:
		*p, err = cast.ToFloat64E(raw)
	case *time.Duration:
		*p, err = cast.ToDurationE(raw)
	default:
		err = fmt.Errorf("unsupported type %T", out)
	}

	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %q as %T: %w", ErrConversion, raw, out, err)
	}
	return out, nil
}

// cast narrows without bounds checks, so ranges are enforced here
func toSigned[N int | int8 | int16 | int32](raw string, lo, hi int64) (N, error) {
	v, err := cast.ToInt64E(raw)
	if err != nil {
		return 0, err
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("%d out of range", v)
	}
	return N(v), nil
}

func toUnsigned[N uint | uint8 | uint16 | uint32](raw string, hi uint64) (N, error) {
	v, err := cast.ToUint64E(raw)
	if err != nil {
		return 0, err
	}
	if v > hi {
		return 0, fmt.Errorf("%d out of range", v)
	}
	return N(v), nil
}

// unmarshalText adapts a TextUnmarshaler into a Parser
func unmarshalText[T any, PT TextUnmarshaler[T]](raw string) (T, error) {
	var out T
	if err := PT(&out).UnmarshalText([]byte(raw)); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %q as %T: %w", ErrConversion, raw, out, err)
	}
	return out, nil
}

func first[T any](def []T) T {
	if len(def) > 0 {
		return def[0]
	}
	var zero T
	return zero
}
