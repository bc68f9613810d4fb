package chrono

import (
	"errors"
	"fmt"
	"hash/fnv"

	"golang.org/x/text/language"
)

// ErrNoMoment is returned by [Property.Compare] when the other moment is nil.
var ErrNoMoment = errors.New("moment must not be nil")

// Binding is the capability pair a [Property] reads from: the bound field,
// and the current absolute millisecond position of the bound instant. Millis
// is consulted afresh on every property call and must never be cached, since
// the underlying instant may change between calls.
type Binding interface {
	Field() Field
	Millis() int64
}

// Property is a live, read-only view of one field of an instant. It holds no
// state beyond its binding: every accessor re-derives its result from the
// binding's current position at call time, so a property observed after its
// instant changes reflects the new position. Properties are safe for
// unsynchronized concurrent reads as long as the bound instant itself is not
// concurrently mutated.
//
// The zero Property is unbound and must not be used.
type Property struct {
	binding Binding
}

// NewProperty binds a property to the given capability pair.
func NewProperty(b Binding) Property {
	return Property{binding: b}
}

type funcBinding struct {
	field  Field
	millis func() int64
}

func (b funcBinding) Field() Field  { return b.field }
func (b funcBinding) Millis() int64 { return b.millis() }

// Bind is a convenience constructor for a property over a field and a
// position function. The function is invoked on every property call.
func Bind(f Field, millis func() int64) Property {
	return NewProperty(funcBinding{field: f, millis: millis})
}

// Field returns the bound field.
func (p Property) Field() Field { return p.binding.Field() }

// FieldType returns the bound field's type identity.
func (p Property) FieldType() FieldType { return p.binding.Field().Type() }

// Name returns the bound field's display name.
func (p Property) Name() string { return p.binding.Field().Name() }

// Value returns the field's integer value at the instant's current position.
func (p Property) Value() int {
	return p.binding.Field().Get(p.binding.Millis())
}

// Text returns the localized textual symbol for the current value. Pass
// language.Und for the default locale.
func (p Property) Text(locale language.Tag) string {
	return p.binding.Field().Text(p.binding.Millis(), locale)
}

// ShortText returns the abbreviated textual symbol for the current value.
func (p Property) ShortText(locale language.Tag) string {
	return p.binding.Field().ShortText(p.binding.Millis(), locale)
}

// DurationUnit returns the field's own unit, or [UnitUnsupported] if the
// field has none. The result is never nil.
func (p Property) DurationUnit() DurationUnit {
	return p.binding.Field().DurationUnit()
}

// RangeDurationUnit returns the field's containing unit, or nil if the field
// has no natural range.
func (p Property) RangeDurationUnit() DurationUnit {
	return p.binding.Field().RangeDurationUnit()
}

// IsLeap reports whether the field's current value is a leap value, e.g. a
// day-of-month property on February 29th.
func (p Property) IsLeap() bool {
	return p.binding.Field().IsLeap(p.binding.Millis())
}

// LeapAmount returns the magnitude of the leap adjustment at the current
// value, zero when not leap.
func (p Property) LeapAmount() int {
	return p.binding.Field().LeapAmount(p.binding.Millis())
}

// LeapDurationUnit returns the unit leap amounts are expressed in, or nil if
// the field never leaps.
func (p Property) LeapDurationUnit() DurationUnit {
	return p.binding.Field().LeapDurationUnit()
}

// MinimumValueOverall returns the field-intrinsic minimum, ignoring the
// current position.
func (p Property) MinimumValueOverall() int {
	return p.binding.Field().MinimumValue()
}

// MinimumValue returns the minimum valid value at the current position.
func (p Property) MinimumValue() int {
	return p.binding.Field().MinimumValueAt(p.binding.Millis())
}

// MaximumValueOverall returns the field-intrinsic maximum, ignoring the
// current position.
func (p Property) MaximumValueOverall() int {
	return p.binding.Field().MaximumValue()
}

// MaximumValue returns the maximum valid value at the current position, e.g.
// 29 for a day-of-month property in a leap February.
func (p Property) MaximumValue() int {
	return p.binding.Field().MaximumValueAt(p.binding.Millis())
}

// MaximumTextLength returns the widest rendering of any value of this field
// in the given locale, not just the current one.
func (p Property) MaximumTextLength(locale language.Tag) int {
	return p.binding.Field().MaximumTextLength(locale)
}

// MaximumShortTextLength returns the widest abbreviated rendering of any
// value of this field in the given locale.
func (p Property) MaximumShortTextLength(locale language.Tag) int {
	return p.binding.Field().MaximumShortTextLength(locale)
}

// Remainder returns the sub-field milliseconds of the current position not
// captured by this field's granularity.
func (p Property) Remainder() int64 {
	return p.binding.Field().Remainder(p.binding.Millis())
}

// Compare three-way compares this property's current value against the value
// of the same field type read from another moment. The comparison is by
// field type, not by absolute time, so moments under different calendar
// systems compare meaningfully. It returns ErrNoMoment for a nil moment and
// propagates the moment's error when it does not support this field type.
func (p Property) Compare(other Moment) (int, error) {
	if other == nil {
		return 0, ErrNoMoment
	}

	otherValue, err := other.Get(p.FieldType())
	if err != nil {
		return 0, fmt.Errorf("cannot compare %s: %w", p.Name(), err)
	}

	value := p.Value()
	switch {
	case value < otherValue:
		return -1, nil
	case value > otherValue:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal reports whether both properties currently have the same value under
// the same field definition. The bound instants need not be the same: two
// properties on different instants are equal while their values coincide.
// An unbound property is equal only to another unbound property.
func (p Property) Equal(other Property) bool {
	if p.binding == nil || other.binding == nil {
		return p.binding == nil && other.binding == nil
	}
	return p.Value() == other.Value() && p.Field() == other.Field()
}

// Hash returns a hash consistent with Equal at the moment of the call. Like
// every other accessor it is recomputed from the live value, so it changes
// when the bound instant does.
func (p Property) Hash() int {
	h := fnv.New32a()
	h.Write([]byte(p.Name()))
	return p.Value()*17 + int(h.Sum32())
}

// String returns a debug representation identifying the field; it is not
// stable for parsing.
func (p Property) String() string {
	return "Property[" + p.Name() + "]"
}
