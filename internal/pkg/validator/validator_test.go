package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidID(t *testing.T) {
	valid := []string{
		"00000000-0000-4000-8000-000000000001",
		"a3bb189e-8bf9-3888-9912-ace4e6543002",
		"A3BB189E-8BF9-3888-9912-ACE4E6543002",
	}
	for _, id := range valid {
		assert.True(t, IsValidID(id), id)
	}

	invalid := []string{
		"",
		"123",
		"not-a-uuid",
		"a3bb189e8bf9388899 12ace4e6543002",
		"a3bb189e-8bf9-3888-9912-ace4e654300",    // one short
		"a3bb189e-8bf9-3888-9912-ace4e65430022",  // one long
		"a3bb189e-8bf9-3888-9912-ace4e654300g",   // non-hex
		"'; DROP TABLE users; --",
		"../../../etc/passwd",
	}
	for _, id := range invalid {
		assert.False(t, IsValidID(id), id)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("dev@teampulse.io"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.com"))
	assert.False(t, IsValidEmail("dev@"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("plainaddress"))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   \t\n"))
	assert.False(t, IsEmpty("x"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "role", Message: "must be admin, manager, or employee"},
	}
	assert.Equal(t, "email: is required; role: must be admin, manager, or employee", errs.Error())
	assert.Equal(t, "is required", errs.ToMap()["email"])
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2026-02-01")
	assert.True(t, ok)
	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
	_, ok = IsValidDate("01/02/2026")
	assert.False(t, ok)
}

func TestIsInSlice(t *testing.T) {
	roles := []string{"admin", "manager", "employee"}
	assert.True(t, IsInSlice("manager", roles))
	assert.False(t, IsInSlice("Manager", roles))
	assert.False(t, IsInSlice("", roles))
}
