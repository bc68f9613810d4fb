package chrono

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedField is wrapped by moment implementations in this package
// when asked for a field type outside the standard set.
var ErrUnsupportedField = errors.New("field type not supported")

// Instant is an immutable millisecond position on the epoch time line,
// read through the standard ISO field set.
type Instant struct {
	millis int64
}

var _ Moment = Instant{}

// NewInstant returns the instant at the given epoch milliseconds.
func NewInstant(millis int64) Instant {
	return Instant{millis: millis}
}

// FromTime returns the instant of a [time.Time], truncated to milliseconds.
func FromTime(t time.Time) Instant {
	return Instant{millis: t.UnixMilli()}
}

// Millis returns the instant's epoch-millisecond position.
func (i Instant) Millis() int64 { return i.millis }

// Time returns the instant as a UTC [time.Time].
func (i Instant) Time() time.Time {
	return time.UnixMilli(i.millis).UTC()
}

// Get returns the value of the given field type at this instant, or an error
// wrapping ErrUnsupportedField for field types outside the standard set.
func (i Instant) Get(t FieldType) (int, error) {
	f, ok := standardFields[t]
	if !ok {
		return 0, fmt.Errorf("%q: %w", t, ErrUnsupportedField)
	}
	return f.Get(i.millis), nil
}

// Property returns a property binding the given field type to this instant.
func (i Instant) Property(t FieldType) (Property, error) {
	f, ok := standardFields[t]
	if !ok {
		return Property{}, fmt.Errorf("%q: %w", t, ErrUnsupportedField)
	}
	return NewProperty(instantBinding{field: f, instant: i}), nil
}

type instantBinding struct {
	field   Field
	instant Instant
}

func (b instantBinding) Field() Field  { return b.field }
func (b instantBinding) Millis() int64 { return b.instant.millis }

// MutableInstant is a settable millisecond position. Properties obtained
// from it are live views: they read the position at every call, so a
// property observed after SetMillis reflects the new position.
//
// MutableInstant is not safe for concurrent use.
type MutableInstant struct {
	millis int64
}

var _ Moment = &MutableInstant{}

// NewMutableInstant returns a mutable instant at the given epoch
// milliseconds.
func NewMutableInstant(millis int64) *MutableInstant {
	return &MutableInstant{millis: millis}
}

// Millis returns the current epoch-millisecond position.
func (m *MutableInstant) Millis() int64 { return m.millis }

// SetMillis moves the instant to a new position. Existing properties bound
// to this instant observe the new position on their next call.
func (m *MutableInstant) SetMillis(millis int64) {
	m.millis = millis
}

// Add moves the instant forward by a duration, truncated to milliseconds.
func (m *MutableInstant) Add(d time.Duration) {
	m.millis += d.Milliseconds()
}

// Get returns the value of the given field type at the current position.
func (m *MutableInstant) Get(t FieldType) (int, error) {
	f, ok := standardFields[t]
	if !ok {
		return 0, fmt.Errorf("%q: %w", t, ErrUnsupportedField)
	}
	return f.Get(m.millis), nil
}

// Property returns a live property over the given field type. The returned
// property tracks subsequent SetMillis calls.
func (m *MutableInstant) Property(t FieldType) (Property, error) {
	f, ok := standardFields[t]
	if !ok {
		return Property{}, fmt.Errorf("%q: %w", t, ErrUnsupportedField)
	}
	return NewProperty(mutableBinding{field: f, instant: m}), nil
}

type mutableBinding struct {
	field   Field
	instant *MutableInstant
}

func (b mutableBinding) Field() Field  { return b.field }
func (b mutableBinding) Millis() int64 { return b.instant.millis }
