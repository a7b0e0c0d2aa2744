// Package customers matches submitted contact details against ERP customer
// records.
package customers

import (
	"fmt"
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

func digitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// emailDomain returns the part after the first '@', or the whole string when
// no '@' is present.
func emailDomain(s string) string {
	parts := strings.SplitN(s, "@", 2)
	return parts[len(parts)-1]
}

// FilterBlocked drops customers whose Blocked flag is "All".
func FilterBlocked(list []Customer) []Customer {
	active := make([]Customer, 0, len(list))
	for _, c := range list {
		if c.Blocked != "All" {
			active = append(active, c)
		}
	}
	return active
}

// Match finds candidate customers for the submitted contact fields. A record
// matches when any single rule matches:
//
//   - VAT numbers equal after stripping non-digits, candidate VAT non-empty
//   - email domains equal case-insensitively, candidate not a gmail address
//     (consumer domains are no organization identifier)
//   - phone numbers exactly equal, query phone non-empty
//   - names equal case-insensitively, query name non-empty
//
// The result is deduplicated by customer number, first-seen order preserved.
// No match yields an empty list, never an error.
func Match(vatNo, email, phone, name string, candidates []Customer) []Option {
	queryVAT := digitsOnly(vatNo)
	queryDomain := strings.ToUpper(emailDomain(email))

	matches := []Option{}
	seen := make(map[string]struct{})

	for _, c := range candidates {
		candVAT := digitsOnly(c.VATRegistrationNo)
		vatMatch := candVAT == queryVAT && candVAT != ""
		domainMatch := !strings.Contains(strings.ToLower(c.Email), "gmail.com") &&
			strings.ToUpper(emailDomain(c.Email)) == queryDomain
		phoneMatch := c.PhoneNo == phone && phone != ""
		nameMatch := strings.EqualFold(c.Name, name) && name != ""

		if !vatMatch && !domainMatch && !phoneMatch && !nameMatch {
			continue
		}
		if _, dup := seen[c.No]; dup {
			continue
		}
		seen[c.No] = struct{}{}
		matches = append(matches, Option{
			Title: fmt.Sprintf("%s - %s", c.No, c.Name),
			Value: c.No,
		})
	}

	return matches
}
