package model

import "time"

type Form struct {
	ID          int       `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type FormWithSteps struct {
	Form
	Steps []Step `json:"steps"`
}

type Step struct {
	ID          int     `json:"id"`
	FormID      int     `json:"formId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Order       int     `json:"order"`
	Fields      []Field `json:"fields"`
}

type Field struct {
	ID              int      `json:"id"`
	StepID          int      `json:"stepId"`
	Type            string   `json:"type"`
	Label           string   `json:"label"`
	Placeholder     string   `json:"placeholder"`
	DefaultValue    string   `json:"defaultValue"`
	Required        bool     `json:"required"`
	Order           int      `json:"order"`
	Options         []Option `json:"options,omitempty"`
	ValidationRules any      `json:"validationRules,omitempty"`
}

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Submission answers are opaque: the form may have changed since, so the
// payload is never validated against the current field set.
type Submission struct {
	ID          int       `json:"id"`
	FormID      int       `json:"formId"`
	Payload     any       `json:"payload"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type Template struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Config      Draft  `json:"config"`
}
