// Package auth holds the ownership guard applied before any booking read
// or mutation.
package auth

import (
	models "github.com/kabirm/safarnama/internal"
)

// Authorize compares the stored owner key against the caller's identity
// key. Plain equality, no role hierarchy or delegation.
func Authorize(ownerKey, callerKey string) error {
	if ownerKey != callerKey {
		return models.ErrForbidden
	}
	return nil
}
