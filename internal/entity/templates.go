package entity

import "fmt"

// Template is a parameterized validation message. The first verb is always
// the field name; remaining verbs are the limits of the violated rule.
type Template string

// Message catalog.
const (
	Required    Template = "Field %s is required."
	MinLength   Template = "Field %s cannot be less than %d characters."
	MaxLength   Template = "Field %s cannot exceed %d characters."
	YearRange   Template = "Field %s must be a 4-digit year between %d and %d."
	RatingRange Template = "Field %s must be a number between %d and %d."
	OnlyLatin   Template = "Field %s allows only Latin characters and _."
	Password    Template = "Field %s requires at least one uppercase letter, one lowercase letter, and one digit."
)

// Format renders the template for field with the given limits.
func (t Template) Format(field string, limits ...any) string {
	args := make([]any, 0, len(limits)+1)
	args = append(args, field)
	args = append(args, limits...)
	return fmt.Sprintf(string(t), args...)
}
