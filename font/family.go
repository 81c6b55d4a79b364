package font

import "fmt"
import "errors"
import "strings"

// Family is the closed set of logical font families a captcha can be
// rendered with. Concrete fonts are bound to families through a
// [Library].
type Family uint8

const (
	Dialog Family = iota
	DialogInput
	Monospace
	Serif
	SansSerif
	numFamilies
)

// Returned by [ParseFamily]() for names outside the closed set.
var ErrUnknownFamily = errors.New("unknown font family")

var familyNames = [numFamilies]string{
	Dialog:      "dialog",
	DialogInput: "dialog-input",
	Monospace:   "monospace",
	Serif:       "serif",
	SansSerif:   "sans-serif",
}

// Families returns all the valid families in declaration order.
func Families() []Family {
	families := make([]Family, 0, numFamilies)
	for family := Family(0); family < numFamilies; family++ {
		families = append(families, family)
	}
	return families
}

// ParseFamily converts a family name ("dialog", "dialog-input",
// "monospace", "serif" or "sans-serif", case insensitive) into a
// [Family]. Unknown names return [ErrUnknownFamily].
func ParseFamily(name string) (Family, error) {
	lname := strings.ToLower(strings.TrimSpace(name))
	for i, familyName := range familyNames {
		if familyName == lname { return Family(i), nil }
	}
	return 0, fmt.Errorf("%w '%s'", ErrUnknownFamily, name)
}

// Valid reports whether the family is one of the enumerated values.
func (self Family) Valid() bool { return self < numFamilies }

// Returns the canonical name of the family (e.g. "sans-serif").
func (self Family) String() string {
	if !self.Valid() { return "invalid-family" }
	return familyNames[self]
}

// Satisfies encoding.TextUnmarshaler, so families can be used directly
// with flag.TextVar and friends.
func (self *Family) UnmarshalText(text []byte) error {
	family, err := ParseFamily(string(text))
	if err != nil { return err }
	*self = family
	return nil
}

// Satisfies encoding.TextMarshaler.
func (self Family) MarshalText() ([]byte, error) {
	if !self.Valid() { return nil, ErrUnknownFamily }
	return []byte(familyNames[self]), nil
}
