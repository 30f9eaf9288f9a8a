package model

// Draft is the wire shape shared by the AI generator, the blueprint library
// and template configs: a form sketch prior to persistence.
type Draft struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Steps       []DraftStep `json:"steps"`
}

type DraftStep struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Fields      []DraftField `json:"fields"`
}

type DraftField struct {
	Type        string   `json:"type"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder"`
	Required    bool     `json:"required"`
	Options     []Option `json:"options,omitempty"`
}

// FieldCount returns the total number of fields across all steps.
func (d Draft) FieldCount() (n int) {
	for _, step := range d.Steps {
		n += len(step.Fields)
	}
	return
}
