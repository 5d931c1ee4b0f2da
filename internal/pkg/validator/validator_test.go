package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidMobile(t *testing.T) {
	valid := []string{"9876543210", "+919876543210", "919876543210", "98765 43210"}
	invalid := []string{"12345", "abcdefghij", "", "987654321012345"}
	for _, m := range valid {
		if !IsValidMobile(m) {
			t.Errorf("IsValidMobile(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMobile(m) {
			t.Errorf("IsValidMobile(%q) = true, want false", m)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-01-31"); !ok {
		t.Error("IsValidDate rejected a valid date")
	}
	if _, ok := IsValidDate("31/01/2024"); ok {
		t.Error("IsValidDate accepted a non-ISO date")
	}
	if _, ok := IsValidDate("2024-13-01"); ok {
		t.Error("IsValidDate accepted month 13")
	}
}

func TestIsValidURL(t *testing.T) {
	if !IsValidURL("https://example.com/policy.pdf") {
		t.Error("IsValidURL rejected a valid https URL")
	}
	if IsValidURL("ftp://example.com") {
		t.Error("IsValidURL accepted a non-http scheme")
	}
	if IsValidURL("not a url") {
		t.Error("IsValidURL accepted garbage")
	}
}
