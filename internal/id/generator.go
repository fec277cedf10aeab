package id

import "github.com/segmentio/ksuid"

// GenerateIDWithPrefix creates a new KSUID with the given prefix.
// Used for request ids; product ids are assigned by the database.
//
// Format: <prefix><27-char-ksuid>
// Example: req_2ArTLVPddDx8vZk7CqEbiYp1
func GenerateIDWithPrefix(prefix string) string {
	return prefix + ksuid.New().String()
}
