package service

import (
	"kidquiz_backend/internal/model"
)

// CanAccessAccount is the single authorization rule for reading or writing a
// kid account's data. Kids may only touch their own account; parents may only
// touch accounts present in their child list. The caller is responsible for
// loading childIDs; the function itself is pure.
func CanAccessAccount(callerRole model.UserRole, callerID, targetID uint, childIDs []uint) bool {
	switch callerRole {
	case model.Kid:
		return callerID == targetID
	case model.Parent:
		for _, id := range childIDs {
			if id == targetID {
				return true
			}
		}
		return false
	default:
		return false
	}
}
