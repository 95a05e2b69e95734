package handler

import "github.com/google/uuid"

// mustParseUUID converts a path parameter that has already passed the
// binding:"uuid" validation.
func mustParseUUID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}
