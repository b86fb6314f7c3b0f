package services

import "strings"

// Reviewer is the authenticated admin deciding an application or a claim.
type Reviewer struct {
	ID    string
	Email string
}

// owns reports whether the record filed under adminEmail belongs to r.
// Records submitted against a missing policy carry no owner and stay open
// to every admin.
func (r Reviewer) owns(adminEmail string) bool {
	return adminEmail == "" || strings.EqualFold(adminEmail, r.Email)
}
