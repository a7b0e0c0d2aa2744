package customers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(no, name, vat, phone, email string) Customer {
	return Customer{No: no, Name: name, VATRegistrationNo: vat, PhoneNo: phone, Email: email}
}

func TestMatchByVAT(t *testing.T) {
	cands := []Customer{
		candidate("C00010", "Acme Stationery", "DE 123 456 789", "", "sales@acme.example"),
	}

	found := Match("DE123456789", "buyer@elsewhere.example", "", "", cands)
	require.Len(t, found, 1)
	assert.Equal(t, "C00010", found[0].Value)
	assert.Equal(t, "C00010 - Acme Stationery", found[0].Title)
}

func TestMatchEmptyVATNeverMatches(t *testing.T) {
	cands := []Customer{
		candidate("C00011", "No VAT Ltd", "", "", "x@one.example"),
	}

	found := Match("", "y@two.example", "", "", cands)
	assert.Empty(t, found)
}

func TestMatchByEmailDomainCaseInsensitive(t *testing.T) {
	cands := []Customer{
		candidate("C00012", "Domain Co", "", "", "info@Acme-Pencils.example"),
	}

	found := Match("", "buyer@ACME-PENCILS.EXAMPLE", "", "", cands)
	require.Len(t, found, 1)
	assert.Equal(t, "C00012", found[0].Value)
}

func TestMatchExcludesConsumerDomain(t *testing.T) {
	cands := []Customer{
		candidate("C00013", "Gmail User", "", "", "someone@gmail.com"),
	}

	found := Match("", "other@gmail.com", "", "", cands)
	assert.Empty(t, found)
}

func TestMatchByPhoneRequiresNonEmptyQuery(t *testing.T) {
	cands := []Customer{
		candidate("C00014", "Phoneless", "", "", "a@one.example"),
	}

	// both sides empty must not match via the phone rule
	found := Match("", "b@two.example", "", "", cands)
	assert.Empty(t, found)

	cands[0].PhoneNo = "+4930123456"
	found = Match("", "b@two.example", "+4930123456", "", cands)
	require.Len(t, found, 1)
}

func TestMatchByNameCaseInsensitive(t *testing.T) {
	cands := []Customer{
		candidate("C00015", "acme", "", "", "c@one.example"),
	}

	found := Match("", "d@two.example", "", "ACME", cands)
	require.Len(t, found, 1)
	assert.Equal(t, "C00015", found[0].Value)
}

func TestMatchDeduplicatesByNumber(t *testing.T) {
	cands := []Customer{
		candidate("C00016", "Twice Listed", "DE999888777", "", "e@one.example"),
		candidate("C00016", "Twice Listed", "DE999888777", "", "e@one.example"),
		candidate("C00017", "Also There", "DE999888777", "", "f@two.example"),
	}

	found := Match("999888777", "g@three.example", "", "", cands)
	require.Len(t, found, 2)
	assert.Equal(t, "C00016", found[0].Value)
	assert.Equal(t, "C00017", found[1].Value)
}

func TestMatchNoHitYieldsEmptyList(t *testing.T) {
	found := Match("DE1", "a@one.example", "123", "Acme", []Customer{
		candidate("C00018", "Unrelated", "AT555", "456", "z@two.example"),
	})
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestFilterBlocked(t *testing.T) {
	list := []Customer{
		{No: "C1", Blocked: ""},
		{No: "C2", Blocked: "All"},
		{No: "C3", Blocked: "Ship"},
	}

	active := FilterBlocked(list)
	require.Len(t, active, 2)
	assert.Equal(t, "C1", active[0].No)
	assert.Equal(t, "C3", active[1].No)
}
