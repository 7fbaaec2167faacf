package validators

import "testing"

func TestIsValidBrazilianMobile(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"(31) 99722-3898", true},
		{" (11) 91234-5678 ", true},
		{"31997223898", false},
		{"(31) 89722-3898", false},
		{"(31) 9722-3898", false},
		{"(031) 99722-3898", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidBrazilianMobile(tt.phone); got != tt.want {
			t.Errorf("IsValidBrazilianMobile(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestPhoneDigitsAndFormat(t *testing.T) {
	d := PhoneDigits("(31) 99722-3898")
	if d != "31997223898" {
		t.Fatalf("digits = %q", d)
	}
	if got := FormatPhone(d); got != "(31) 99722-3898" {
		t.Fatalf("format = %q", got)
	}
	if got := FormatPhone("123"); got != "123" {
		t.Fatalf("short numbers are returned untouched, got %q", got)
	}
}

func TestStructValidator_CustomTags(t *testing.T) {
	type input struct {
		Phone string `validate:"required,br_mobile"`
		Open  string `validate:"omitempty,hhmm"`
	}

	v := New()

	if err := v.Struct(input{Phone: "(31) 99722-3898", Open: "08:30"}); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	err := v.Struct(input{Phone: "31997223898"})
	field, tag, ok := FirstError(err)
	if !ok || field != "Phone" || tag != "br_mobile" {
		t.Fatalf("got field=%q tag=%q ok=%v", field, tag, ok)
	}

	err = v.Struct(input{Phone: "(31) 99722-3898", Open: "24:00"})
	if _, tag, _ := FirstError(err); tag != "hhmm" {
		t.Fatalf("expected hhmm failure, got %v", err)
	}
}
