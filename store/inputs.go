package store

import "github.com/mbolis/form-weaver/model"

// Patch types carry partial updates: nil means "leave as is".

type FormPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Published   *bool   `json:"published"`
}

type StepPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

type FieldInput struct {
	Type            string         `json:"type"`
	Label           string         `json:"label"`
	Placeholder     string         `json:"placeholder"`
	DefaultValue    string         `json:"defaultValue"`
	Required        bool           `json:"required"`
	Options         []model.Option `json:"options"`
	ValidationRules any            `json:"validationRules"`
}

type FieldPatch struct {
	Type            *string        `json:"type"`
	Label           *string        `json:"label"`
	Placeholder     *string        `json:"placeholder"`
	DefaultValue    *string        `json:"defaultValue"`
	Required        *bool          `json:"required"`
	Order           *int           `json:"order"`
	Options         []model.Option `json:"options"`
	ValidationRules any            `json:"validationRules"`
}

type ReorderItem struct {
	ID    int `json:"id"`
	Order int `json:"order"`
}

// CompleteFormInput creates a form with its full step/field tree in one
// request. It is the persistence counterpart an AI draft feeds into.
type CompleteFormInput struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Steps       []CompleteStepInput `json:"steps"`
}

type CompleteStepInput struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Fields      []CompleteFieldInput `json:"fields"`
}

type CompleteFieldInput struct {
	Type        string         `json:"type"`
	Label       string         `json:"label"`
	Placeholder string         `json:"placeholder"`
	Required    bool           `json:"required"`
	Options     []model.Option `json:"options"`
}
