package metadata

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/e57/encoding"
	"github.com/arloliu/e57/errs"
	"github.com/arloliu/e57/format"
)

// Field is one entry of a point stream prototype.
//
// Integer and ScaledInteger fields use Minimum and Maximum; when the document
// leaves them out they take the E57 defaults, the full int64 range. Scale
// defaults to 1 and Offset to 0. Float fields use Precision only.
type Field struct {
	// Name is the element name, joined with "/" for fields nested in a
	// Structure, e.g. "colorRed" or "normal/x".
	Name      string
	Type      format.ElementType
	Minimum   int64
	Maximum   int64
	Scale     float64
	Offset    float64
	Precision format.Precision
}

// BitWidth returns the packed width of the field.
//
// Returns:
//   - int: the bit width of an Integer or ScaledInteger field computed from
//     its range, or 32/64 for a Float
//   - error: ErrInvalidRange for an inverted range, ErrMetadata for element
//     types that are not stored as packed numbers
func (f Field) BitWidth() (int, error) {
	switch f.Type {
	case format.ElementInteger, format.ElementScaledInteger:
		return encoding.BitWidth(f.Minimum, f.Maximum)
	case format.ElementFloat:
		return f.Precision.Bits(), nil
	default:
		return 0, fmt.Errorf("%w: field %q of type %s has no packed width", errs.ErrMetadata, f.Name, f.Type)
	}
}

func parseFields(prototype *Element, prefix string, out []Field) ([]Field, error) {
	for _, el := range prototype.Children() {
		name := el.Name()
		if prefix != "" {
			name = prefix + "/" + name
		}

		if el.Type() == format.ElementStructure {
			var err error
			if out, err = parseFields(el, name, out); err != nil {
				return nil, err
			}

			continue
		}

		f, err := parseField(el, name)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	return out, nil
}

func parseField(el *Element, name string) (Field, error) {
	f := Field{
		Name:      name,
		Type:      el.Type(),
		Minimum:   math.MinInt64,
		Maximum:   math.MaxInt64,
		Scale:     1,
		Precision: format.PrecisionDouble,
	}

	if f.Type == format.ElementUnknown {
		v, _ := el.Attr("type")
		return Field{}, fmt.Errorf("%w: %s: unknown element type %q", errs.ErrMetadata, el.Path(), v)
	}

	var err error
	switch f.Type {
	case format.ElementInteger, format.ElementScaledInteger:
		if f.Minimum, err = intAttr(el, "minimum", f.Minimum); err != nil {
			return Field{}, err
		}
		if f.Maximum, err = intAttr(el, "maximum", f.Maximum); err != nil {
			return Field{}, err
		}
		if f.Type == format.ElementScaledInteger {
			if f.Scale, err = floatAttr(el, "scale", f.Scale); err != nil {
				return Field{}, err
			}
			if f.Offset, err = floatAttr(el, "offset", f.Offset); err != nil {
				return Field{}, err
			}
		}
	case format.ElementFloat:
		v, _ := el.Attr("precision")
		p, ok := format.ParsePrecision(v)
		if !ok {
			return Field{}, fmt.Errorf("%w: %s: precision %q", errs.ErrMetadata, el.Path(), v)
		}
		f.Precision = p
	}

	return f, nil
}

func intAttr(el *Element, name string, def int64) (int64, error) {
	v, ok := el.Attr(name)
	if !ok {
		return def, nil
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: attribute %s=%q: %w", errs.ErrMetadata, el.Path(), name, v, err)
	}

	return n, nil
}

func uintAttr(el *Element, name string) (uint64, error) {
	v, ok := el.Attr(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s: missing attribute %s", errs.ErrMetadata, el.Path(), name)
	}

	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: attribute %s=%q: %w", errs.ErrMetadata, el.Path(), name, v, err)
	}

	return n, nil
}

func floatAttr(el *Element, name string, def float64) (float64, error) {
	v, ok := el.Attr(name)
	if !ok {
		return def, nil
	}

	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: attribute %s=%q: %w", errs.ErrMetadata, el.Path(), name, v, err)
	}

	return x, nil
}
