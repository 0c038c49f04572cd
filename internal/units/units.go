// Package units defines the unit-tag interface the core consumes but does
// not implement. A real deployment supplies a
// concrete Unit table (how "m", "kg", "degC" are declared); this package
// only carries the shape and the no-op empty unit so the rest of the tree
// compiles and tests independently of that table.
package units

// Unit is an opaque display/compatibility tag attached to a StackEntry.
type Unit interface {
	// String renders the unit for display, e.g. "m/s".
	String() string
	// Empty reports whether this is the absence of a unit.
	Empty() bool
}

type empty struct{}

func (empty) String() string { return "" }
func (empty) Empty() bool    { return true }

// None is the unit carried by plain (unitless) values.
var None Unit = empty{}

// Compat reports whether a and b can be combined directly (same unit, or
// either is unitless).
func Compat(a, b Unit) bool {
	if a == nil || a.Empty() || b == nil || b.Empty() {
		return true
	}
	return a.String() == b.String()
}

// AreTempUnits reports whether both units are temperature scales (degC,
// degF, K, ...). The core has no concrete units, so nothing is ever a
// temperature unit: it always returns false and does not consult the Unit
// implementations it is given.
func AreTempUnits(a, b Unit) bool {
	return false
}

// Convert converts a value's unit tag from "from" to "to". With no table
// wired in, the only representable conversion is the identity.
func Convert(value float64, from, to Unit) (float64, error) {
	if Compat(from, to) {
		return value, nil
	}
	return 0, errNoConversion{from, to}
}

// ScaleTempUnits performs a temperature-aware conversion (e.g. degF<->degC),
// deferring to Convert since the core carries no concrete temperature scale.
func ScaleTempUnits(value float64, from, to Unit) (float64, error) {
	return Convert(value, from, to)
}

type errNoConversion struct {
	from, to Unit
}

func (e errNoConversion) Error() string {
	return "no conversion from " + e.from.String() + " to " + e.to.String()
}
