package entity_test

import (
	"testing"

	"github.com/blackwell-systems/libcat/internal/entity"
)

func TestTemplate_Format(t *testing.T) {
	cases := []struct {
		tpl    entity.Template
		field  string
		limits []any
		want   string
	}{
		{entity.Required, "Title", nil, "Field Title is required."},
		{entity.MaxLength, "Author", []any{100}, "Field Author cannot exceed 100 characters."},
		{entity.MinLength, "Name", []any{2}, "Field Name cannot be less than 2 characters."},
		{entity.RatingRange, "Rating", []any{1, 5}, "Field Rating must be a number between 1 and 5."},
		{entity.OnlyLatin, "Login", nil, "Field Login allows only Latin characters and _."},
	}
	for _, c := range cases {
		if got := c.tpl.Format(c.field, c.limits...); got != c.want {
			t.Errorf("Format = %q, want %q", got, c.want)
		}
	}
}

func TestRules(t *testing.T) {
	cases := []struct {
		name string
		msgs []string
		fail bool
	}{
		{"required blank", entity.RequiredText("F", " \t"), true},
		{"required ok", entity.RequiredText("F", "x"), false},
		{"max ok multibyte", entity.MaxLen("F", "ééé", 3), false},
		{"max over", entity.MaxLen("F", "abcd", 3), true},
		{"min under", entity.MinLen("F", "a", 2), true},
		{"min ok", entity.MinLen("F", "ab", 2), false},
		{"latin ok", entity.Latin("F", "hello_World"), false},
		{"latin digits", entity.Latin("F", "abc1"), true},
		{"latin cyrillic", entity.Latin("F", "привіт"), true},
		{"password ok", entity.StrongPassword("F", "Secret123"), false},
		{"password no digit", entity.StrongPassword("F", "Secret"), true},
		{"password no upper", entity.StrongPassword("F", "secret1"), true},
	}
	for _, c := range cases {
		if got := len(c.msgs) > 0; got != c.fail {
			t.Errorf("%s: failed = %v, want %v (%v)", c.name, got, c.fail, c.msgs)
		}
	}
}
