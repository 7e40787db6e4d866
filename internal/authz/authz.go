// Package authz holds the single ownership predicate used everywhere a
// mutation or read is restricted to the resource owner. Handlers and
// middleware must not re-implement this comparison.
package authz

// OwnsResource reports whether the authenticated caller owns the resource.
func OwnsResource(callerID, ownerID string) bool {
	return callerID != "" && callerID == ownerID
}
