package domain

// Opportunity categories as written by the recommendation pipeline.
const (
	CategoryWork                    = "trabalho"
	CategoryEducation               = "educacao"
	CategoryEvent                   = "evento"
	CategoryProfessionalDevelopment = "desenvolvimento_profissional"
)

// Categories lists the known category keys in presentation order.
var Categories = []string{
	CategoryWork,
	CategoryEducation,
	CategoryEvent,
	CategoryProfessionalDevelopment,
}

// Opportunity is a single recommendation item.
type Opportunity struct {
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
	Link        string `json:"link"`
}

// OpportunityRecord is the per-user document produced by the external
// recommendation pipeline. Category keys map to item lists; absent
// categories are simply missing from the map.
type OpportunityRecord struct {
	UserID     string
	Categories map[string][]Opportunity
}

// Flatten merges all categories into a single list, in category order.
func (r *OpportunityRecord) Flatten() []Opportunity {
	if r == nil {
		return nil
	}
	var out []Opportunity
	for _, cat := range Categories {
		out = append(out, r.Categories[cat]...)
	}
	return out
}
