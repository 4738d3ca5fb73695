package utils

import (
	"github.com/google/uuid"
)

func GetUUID() string {
	return uuid.New().String()
}

// NewID returns "<prefix>_<uuid>", or a bare uuid when prefix is empty.
func NewID(prefix string) string {
	if prefix == "" {
		return GetUUID()
	}
	return prefix + "_" + GetUUID()
}
