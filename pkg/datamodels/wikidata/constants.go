package wikidata

// Well known property ids from the public Wikidata vocabulary. Useful
// as defaults when seeding a fresh store that mirrors the public one.
const (
	//InstanceOf relates an item to the class it is an instance of
	InstanceOf string = "P31"
	//SubclassOf relates a class to its superclass
	SubclassOf string = "P279"
	//PartOf relates an item to the whole it is part of
	PartOf string = "P361"
	//OfficialWebsite holds the URL of an item's official website
	OfficialWebsite string = "P856"
)

// Well known item ids from the public Wikidata vocabulary.
const (
	//Human is the class of human beings
	Human string = "Q5"
	//Organization is the class of organizations
	Organization string = "Q43229"
)
