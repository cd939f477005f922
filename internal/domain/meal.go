package domain

// Meal is the narration composed for one eaten cookie.
// Nothing is written until the caller hands it to an output boundary.
type Meal struct {
	Kind     string `json:"kind"`
	NomCount int    `json:"nom_count"`
	Reaction string `json:"reaction"`
	Noms     string `json:"noms"`
}

// Lines returns the narration in output order
func (m *Meal) Lines() []string {
	return []string{m.Reaction, m.Noms}
}
