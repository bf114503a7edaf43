package linkgraph

type categoryPair struct {
	source Category
	target Category
}

// fallbackLinkTypes is returned for any pair without a declared vocabulary.
var fallbackLinkTypes = []string{"Associated"}

var vocabulary = map[categoryPair][]string{
	{Person, Person}:     {"Spouse", "Relative", "Associate", "Employer", "Employee", "Neighbor"},
	{Person, Vehicle}:    {"Owner", "Driver", "Passenger", "Registered Owner"},
	{Person, Location}:   {"Resident", "Owner", "Employee", "Frequents", "Seen At"},
	{Person, Item}:       {"Owner", "Holder", "Claimed"},
	{Vehicle, Person}:    {"Owned By", "Driven By", "Registered To"},
	{Vehicle, Location}:  {"Parked At", "Seen At", "Registered At"},
	{Vehicle, Item}:      {"Contains"},
	{Location, Person}:   {"Residence Of", "Owned By", "Workplace Of"},
	{Location, Vehicle}:  {"Parking Spot Of"},
	{Location, Item}:     {"Storage Of"},
	{Item, Person}:       {"Owned By", "Held By"},
	{Item, Vehicle}:      {"Found In"},
	{Item, Location}:     {"Stored At"},
}

// LinkTypesFor returns the relationship labels offered for an edge from a
// source category to a target category. Undeclared pairs yield exactly the
// fallback list; the first element is the caller's default selection.
func LinkTypesFor(source, target Category) []string {
	types, ok := vocabulary[categoryPair{source, target}]
	if !ok {
		return append([]string(nil), fallbackLinkTypes...)
	}
	return append([]string(nil), types...)
}

// DefaultLinkType returns the first label for the pair.
func DefaultLinkType(source, target Category) string {
	return LinkTypesFor(source, target)[0]
}
