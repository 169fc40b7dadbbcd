// ============================================================================
// presenty - fluent text presentation for Go
// ============================================================================
//
// Package:     presenty
// Description: Presenter type, construction and input coercion
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package presenty

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	mdwlog "github.com/msto63/presenty/foundation/core/log"
	"github.com/msto63/presenty/foundation/utils/stringx"
)

// Presenter holds one text value and formats it through chained calls
type Presenter struct {
	value    string
	encoding string
	defaults Defaults
	logger   *mdwlog.Logger
	now      func() time.Time
}

// Option configures a Presenter at construction
type Option func(*Presenter)

// WithEncoding records the value's character encoding. Blank keeps the
// default from Defaults.Encoding.
func WithEncoding(encoding string) Option {
	return func(p *Presenter) {
		if stringx.IsNotBlank(encoding) {
			p.encoding = encoding
		}
	}
}

// WithDefaults replaces the parameter defaults
func WithDefaults(defaults Defaults) Option {
	return func(p *Presenter) {
		p.defaults = defaults
	}
}

// WithLogger sets the logger for debug tracing. nil disables logging.
func WithLogger(logger *mdwlog.Logger) Option {
	return func(p *Presenter) {
		p.logger = logger
	}
}

// WithClock sets the reference time for relative dates such as "today"
func WithClock(now func() time.Time) Option {
	return func(p *Presenter) {
		if now != nil {
			p.now = now
		}
	}
}

// New creates a Presenter from input with options applied
func New(input any, opts ...Option) (*Presenter, error) {
	p := &Presenter{
		defaults: DefaultDefaults(),
		logger:   mdwlog.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.encoding == "" {
		p.encoding = p.defaults.Encoding
	}

	value, err := toText(input)
	if err != nil {
		p.debug("rejected presenter input", mdwlog.Err(err))
		return nil, err
	}
	p.value = value

	return p, nil
}

// Create creates a Presenter from input, optionally recording its encoding
func Create(input any, encoding ...string) (*Presenter, error) {
	var opts []Option
	if len(encoding) > 0 {
		opts = append(opts, WithEncoding(encoding[0]))
	}
	return New(input, opts...)
}

// MustCreate is like Create but panics on error
func MustCreate(input any, encoding ...string) *Presenter {
	p, err := Create(input, encoding...)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the current value
func (p *Presenter) String() string {
	return p.value
}

// Value returns the current value
func (p *Presenter) Value() string {
	return p.value
}

// Encoding returns the encoding recorded at construction
func (p *Presenter) Encoding() string {
	return p.encoding
}

// Defaults returns the parameter defaults in use
func (p *Presenter) Defaults() Defaults {
	return p.defaults
}

func (p *Presenter) isBlank() bool {
	return stringx.IsEmptyOrNull(&p.value)
}

// debug logs through the presenter's logger, which may be nil
func (p *Presenter) debug(message string, fields mdwlog.Fields) {
	if p.logger != nil {
		p.logger.Debug(message, fields)
	}
}

// toText converts a construction or list input to its text form
func toText(input any) (string, error) {
	switch v := input.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case bool:
		if v {
			return "1", nil
		}
		return "", nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	}

	rv := reflect.ValueOf(input)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", nil
	}

	switch v := input.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case error:
		return v.Error(), nil
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		if rv.Bool() {
			return "1", nil
		}
		return "", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.Slice, reflect.Array, reflect.Map:
		return "", invalidArgument(msgArrayInput, input)
	default:
		return "", invalidArgument(msgNoStringer, input)
	}
}
