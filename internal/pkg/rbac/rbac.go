// Package rbac holds the role policy: a pure membership test over named
// roles. The allowed set is supplied per action by the caller, so new roles
// need no changes here.
package rbac

// Allowed reports whether role is one of the allowed roles. Unknown or empty
// roles are denied.
func Allowed(role string, allowed ...string) bool {
	if role == "" {
		return false
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
