package narrator

// clause is one entry of a first-match-wins decision list: it applies when
// any of codes is among the values being described.
type clause struct {
	codes []string
	text  string
}

// topClauses interpret the three highest values. Order is significant.
var topClauses = []clause{
	{codes: []string{"UNC", "UNT", "UNN"}, text: "prioritizes universal welfare and embraces diverse perspectives"},
	{codes: []string{"BEC", "BED"}, text: "deeply values close relationships and being there for loved ones"},
	{codes: []string{"SDT", "SDA"}, text: "treasures autonomy and the freedom to think and act independently"},
	{codes: []string{"ACM", "POD"}, text: "is driven by achievement and the desire to excel"},
	{codes: []string{"TRD", "COR"}, text: "values tradition, order, and adherence to established norms"},
	{codes: []string{"SEP", "SES"}, text: "prioritizes safety, stability, and security in life"},
}

const defaultTopClause = "has a distinctive combination of motivational priorities"

// bottomClauses interpret the three lowest values. Order is significant.
var bottomClauses = []clause{
	{codes: []string{"POD", "POR"}, text: "less concern with accumulating power or material resources"},
	{codes: []string{"HED", "STI"}, text: "a more measured approach to pleasure-seeking and novelty"},
	{codes: []string{"TRD", "COR"}, text: "flexibility regarding traditional expectations and rules"},
	{codes: []string{"FAC", "HUM"}, text: "less focus on social image or excessive modesty"},
}

const defaultBottomClause = "particular areas receiving less motivational emphasis"

// pick returns the text of the first clause matching any of codes.
func pick(clauses []clause, fallback string, codes []string) string {
	present := make(map[string]bool, len(codes))
	for _, c := range codes {
		present[c] = true
	}
	for _, cl := range clauses {
		for _, c := range cl.codes {
			if present[c] {
				return cl.text
			}
		}
	}
	return fallback
}
