package normalize

import (
	"strings"

	"github.com/steveyegge/digest/internal/aha"
)

// Organization is a customer account reconstructed from idea-portal users.
type Organization struct {
	ID           string
	Reference    string
	Name         string
	CustomFields aha.FieldMap
	UserCount    int
}

// ARR renders the organization's ARR custom field as "$<value>", or "N/A".
func (o Organization) ARR() string {
	if v := Value(LookupField(o.CustomFields, "ARR")); v != "" {
		return "$" + v
	}
	return NotAvailable
}

// Tier renders the organization's Tier custom field, or "N/A".
func (o Organization) Tier() string {
	return orDefault(Value(LookupField(o.CustomFields, "Tier")), NotAvailable)
}

// Organizations groups users by organization id. Organizations appear in the
// order their first user appears; users without an organization are skipped.
func Organizations(users []aha.PortalUser) []Organization {
	index := make(map[string]int)
	var out []Organization
	for _, u := range users {
		org := u.Organization
		if org == nil {
			continue
		}
		i, ok := index[org.ID]
		if !ok {
			fields := org.CustomFields
			if fields == nil {
				fields = aha.FieldMap{}
			}
			out = append(out, Organization{
				ID:           org.ID,
				Reference:    org.ReferenceNum,
				Name:         org.Name,
				CustomFields: fields,
			})
			i = len(out) - 1
			index[org.ID] = i
		}
		out[i].UserCount++
	}
	return out
}

// LookupField returns the custom field whose key equals name ignoring case.
// An exact match wins over a case-folded one.
func LookupField(fields aha.FieldMap, name string) interface{} {
	if v, ok := fields[name]; ok {
		return v
	}
	for k, v := range fields {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return nil
}
