package model

// DefaultFieldType is what unknown or missing field types collapse to.
const DefaultFieldType = "text"

var fieldTypes = map[string]bool{
	"text":     true,
	"number":   true,
	"select":   true,
	"checkbox": true,
	"radio":    true,
	"textarea": true,
	"date":     true,
}

func ValidFieldType(t string) bool {
	return fieldTypes[t]
}

// NeedsOptions reports whether a field type requires a choice set.
func NeedsOptions(t string) bool {
	return t == "select" || t == "radio"
}
