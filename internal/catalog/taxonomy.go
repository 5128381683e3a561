package catalog

// Domain: верхнеуровневый раздел каталога мер (Annex A)
type Domain struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	ControlCount int    `json:"control_count" yaml:"control_count"`
}

// Taxonomy is an ordered list of domains. Order is the output order of Generate.
type Taxonomy []Domain

// ISO27001 is the reference taxonomy: 14 domains, 114 controls.
var ISO27001 = Taxonomy{
	{ID: "5", Name: "Information security policies", ControlCount: 2},
	{ID: "6", Name: "Organization of information security", ControlCount: 7},
	{ID: "7", Name: "Human resource security", ControlCount: 6},
	{ID: "8", Name: "Asset management", ControlCount: 10},
	{ID: "9", Name: "Access control", ControlCount: 14},
	{ID: "10", Name: "Cryptography", ControlCount: 2},
	{ID: "11", Name: "Physical and environmental security", ControlCount: 15},
	{ID: "12", Name: "Operations security", ControlCount: 14},
	{ID: "13", Name: "Communications security", ControlCount: 7},
	{ID: "14", Name: "System acquisition, development and maintenance", ControlCount: 13},
	{ID: "15", Name: "Supplier relationships", ControlCount: 5},
	{ID: "16", Name: "Information security incident management", ControlCount: 7},
	{ID: "17", Name: "Information security aspects of business continuity management", ControlCount: 4},
	{ID: "18", Name: "Compliance", ControlCount: 8},
}

func (t Taxonomy) Total() int {
	n := 0
	for _, d := range t {
		n += d.ControlCount
	}
	return n
}

func (t Taxonomy) Lookup(id string) (Domain, bool) {
	for _, d := range t {
		if d.ID == id {
			return d, true
		}
	}
	return Domain{}, false
}

// Position returns the index of the domain in taxonomy order, or -1.
func (t Taxonomy) Position(id string) int {
	for i, d := range t {
		if d.ID == id {
			return i
		}
	}
	return -1
}
