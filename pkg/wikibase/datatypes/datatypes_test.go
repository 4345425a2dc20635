package datatypes

import (
	"testing"

	"github.com/matryer/is"
)

func TestMapsBothDirections(t *testing.T) {
	is := is.New(t)

	for _, semantic := range Known() {
		wire, ok := ToWire(semantic)
		is.True(ok)

		roundTripped, ok := FromWire(wire)
		is.True(ok)
		is.Equal(roundTripped, semantic) // inverse lookup should round trip
	}
}

func TestUnknownSemanticType(t *testing.T) {
	is := is.New(t)

	_, ok := ToWire("Banana")
	is.True(!ok)
}

func TestUnknownWireType(t *testing.T) {
	is := is.New(t)

	_, ok := FromWire("time")
	is.True(!ok)
}

func TestKnownIsStable(t *testing.T) {
	is := is.New(t)

	is.Equal(Known(), []Type{ExternalID, GeoLocation, Item, Property, Quantity, StringValue})
}
