package datatypes

import (
	"sort"
)

// Type is the semantic value type accepted by claims that reference a
// given property, as it is named on the local side.
type Type string

const (
	ExternalID  Type = "ExternalId"
	GeoLocation Type = "GeoLocation"
	Item        Type = "Item"
	Property    Type = "Property"
	Quantity    Type = "Quantity"
	StringValue Type = "StringValue"
)

var typeToWire = map[Type]string{
	ExternalID:  "external-id",
	GeoLocation: "globe-coordinate",
	Item:        "wikibase-item",
	Property:    "wikibase-property",
	Quantity:    "quantity",
	StringValue: "string",
}

var wireToType = func() map[string]Type {
	inverse := make(map[string]Type, len(typeToWire))
	for t, w := range typeToWire {
		inverse[w] = t
	}
	return inverse
}()

// ToWire maps a semantic type to the datatype identifier that the
// remote store uses on the wire.
func ToWire(t Type) (string, bool) {
	w, ok := typeToWire[t]
	return w, ok
}

// FromWire maps a remote datatype identifier back to its semantic type.
func FromWire(wire string) (Type, bool) {
	t, ok := wireToType[wire]
	return t, ok
}

// Known returns all registered semantic types in a stable order, for
// use in validation error messages.
func Known() []Type {
	known := make([]Type, 0, len(typeToWire))
	for t := range typeToWire {
		known = append(known, t)
	}
	sort.Slice(known, func(i, j int) bool { return known[i] < known[j] })
	return known
}
