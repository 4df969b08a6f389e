// Package access applies the portal's one visibility rule: admins see every
// record, staff see only records they own.
package access

import "shiftportal/internal/model"

// Visible filters records for the acting staff member. Each owners function
// extracts one owner identity from a record; a staff actor keeps a record
// when any of them matches (shift-change requests name both a requester and
// a target, and either side may see the request).
func Visible[T any](records []T, actor model.Actor, owners ...func(T) string) []T {
	if actor.IsAdmin() {
		return records
	}
	filtered := make([]T, 0, len(records))
	for _, record := range records {
		for _, owner := range owners {
			if owner(record) == actor.Username {
				filtered = append(filtered, record)
				break
			}
		}
	}
	return filtered
}
