// Package validate checks decoded JSON payloads against declared field
// schemas, collecting every violation instead of stopping at the first.
package validate

import (
	"fmt"
	"regexp"
	"sort"
)

// Kind is the expected JSON type of a field.
type Kind int

// Supported field kinds.
const (
	KindString Kind = iota
	KindNumber
)

// emailPattern is a pragmatic well-formedness check, not a full RFC 5322
// parser.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field declares the constraints for one payload field.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Email    bool // must look like an email address (strings only)
	MinLen   int  // minimum length in bytes (strings only)
	Positive bool // must be strictly greater than zero (numbers only)
}

// Schema declares the expected shape of a payload.
// Unknown fields are ignored unless Strict is set.
type Schema struct {
	Fields []Field
	Strict bool
}

// Validate checks payload against the schema and returns all violation
// messages in declaration order, one per failing field. A nil result
// means the payload is valid.
func (s Schema) Validate(payload map[string]any) []string {
	var messages []string

	for _, field := range s.Fields {
		if msg := field.check(payload); msg != "" {
			messages = append(messages, msg)
		}
	}

	if s.Strict {
		messages = append(messages, s.unknownFields(payload)...)
	}

	return messages
}

// check evaluates a single field and returns the first violation for it,
// or an empty string.
func (f Field) check(payload map[string]any) string {
	value, present := payload[f.Name]
	if !present || value == nil {
		if f.Required {
			return fmt.Sprintf("%q is required", f.Name)
		}
		return ""
	}

	switch f.Kind {
	case KindString:
		str, ok := value.(string)
		if !ok {
			return fmt.Sprintf("%q must be a string", f.Name)
		}
		if f.Required && str == "" {
			return fmt.Sprintf("%q is not allowed to be empty", f.Name)
		}
		if f.MinLen > 0 && len(str) < f.MinLen {
			return fmt.Sprintf("%q length must be at least %d characters long", f.Name, f.MinLen)
		}
		if f.Email && !emailPattern.MatchString(str) {
			return fmt.Sprintf("%q must be a valid email", f.Name)
		}
	case KindNumber:
		// encoding/json decodes every JSON number as float64.
		num, ok := value.(float64)
		if !ok {
			return fmt.Sprintf("%q must be a number", f.Name)
		}
		if f.Positive && num <= 0 {
			return fmt.Sprintf("%q must be a positive number", f.Name)
		}
	}

	return ""
}

// unknownFields reports payload keys not declared in the schema, sorted
// for deterministic output.
func (s Schema) unknownFields(payload map[string]any) []string {
	declared := make(map[string]bool, len(s.Fields))
	for _, field := range s.Fields {
		declared[field.Name] = true
	}

	var names []string
	for name := range payload {
		if !declared[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	messages := make([]string, 0, len(names))
	for _, name := range names {
		messages = append(messages, fmt.Sprintf("%q is not allowed", name))
	}
	return messages
}
