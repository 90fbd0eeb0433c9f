package questions

// Facet describes one of the six sub-traits of a domain.
type Facet struct {
	Number int
	Name   string
}

// Domain describes one of the five personality domains.
type Domain struct {
	Key    string
	Name   string
	Facets []Facet
}

// Domains lists the five domains in presentation order.
var Domains = []Domain{
	{Key: "N", Name: "Neuroticism", Facets: []Facet{
		{1, "Anxiety"}, {2, "Anger"}, {3, "Depression"},
		{4, "Self-consciousness"}, {5, "Immoderation"}, {6, "Vulnerability"},
	}},
	{Key: "E", Name: "Extraversion", Facets: []Facet{
		{1, "Friendliness"}, {2, "Gregariousness"}, {3, "Assertiveness"},
		{4, "Activity level"}, {5, "Excitement-seeking"}, {6, "Cheerfulness"},
	}},
	{Key: "O", Name: "Openness To Experience", Facets: []Facet{
		{1, "Imagination"}, {2, "Artistic interests"}, {3, "Emotionality"},
		{4, "Adventurousness"}, {5, "Intellect"}, {6, "Liberalism"},
	}},
	{Key: "A", Name: "Agreeableness", Facets: []Facet{
		{1, "Trust"}, {2, "Morality"}, {3, "Altruism"},
		{4, "Cooperation"}, {5, "Modesty"}, {6, "Sympathy"},
	}},
	{Key: "C", Name: "Conscientiousness", Facets: []Facet{
		{1, "Self-efficacy"}, {2, "Orderliness"}, {3, "Dutifulness"},
		{4, "Achievement-striving"}, {5, "Self-discipline"}, {6, "Cautiousness"},
	}},
}

// LookupDomain returns the domain with the given key.
func LookupDomain(key string) (Domain, bool) {
	for _, d := range Domains {
		if d.Key == key {
			return d, true
		}
	}
	return Domain{}, false
}

// FacetName returns the display name of a facet, or "" if unknown.
func FacetName(domain string, facet int) string {
	d, ok := LookupDomain(domain)
	if !ok {
		return ""
	}
	for _, f := range d.Facets {
		if f.Number == facet {
			return f.Name
		}
	}
	return ""
}
