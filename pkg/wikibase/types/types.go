package types

// Attribute is one independently fetchable facet of an entity (label,
// description, aliases or claims). An attribute instance always knows
// which entity it was decoded for, even when it is empty.
type Attribute interface {
	EntityID() string
	Len() int
}
