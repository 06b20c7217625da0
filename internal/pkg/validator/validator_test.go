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

func TestIsValidEmployeeID(t *testing.T) {
	valid := []string{"EMP001", "emp-001", "A", "1234567890"}
	invalid := []string{"", "EMP 001", "emp_001", "emp#1", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}
	for _, id := range valid {
		if !IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidEmployeeID(id) {
			t.Errorf("IsValidEmployeeID(%q) = true, want false", id)
		}
	}
}

func TestIsValidStoreCode(t *testing.T) {
	valid := []string{"STORE-001", "hq", "B2"}
	invalid := []string{"", "STORE 001", "store.001"}
	for _, code := range valid {
		if !IsValidStoreCode(code) {
			t.Errorf("IsValidStoreCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidStoreCode(code) {
			t.Errorf("IsValidStoreCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "", "yesterday"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	if _, ok := ParseTimestamp("2023-06-01T09:00:00Z"); !ok {
		t.Error("ParseTimestamp rejected a valid RFC 3339 instant")
	}
	if _, ok := ParseTimestamp("2023-06-01 09:00"); ok {
		t.Error("ParseTimestamp accepted a non RFC 3339 string")
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"monday", "tuesday"}
	if !IsInSlice("monday", slice) {
		t.Error("IsInSlice failed to find existing value")
	}
	if IsInSlice("sunday", slice) {
		t.Error("IsInSlice found a missing value")
	}
}
