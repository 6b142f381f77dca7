package services

import "strings"

// Owns reports whether the caller is the owning seller of a record. Every
// client/order read-single, update, and delete path runs through here, as does
// order creation against the client's owning seller.
func Owns(ownerID, callerID string) bool {
	return strings.TrimSpace(ownerID) != "" &&
		strings.TrimSpace(ownerID) == strings.TrimSpace(callerID)
}

// Authorize is the error-returning form of Owns. A denial does not mutate any
// state and does not invalidate the caller's token.
func Authorize(ownerID, callerID string) error {
	if !Owns(ownerID, callerID) {
		return ErrNoCredentials
	}
	return nil
}
