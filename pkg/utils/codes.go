package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Code prefixes for server-issued business codes. Codes come from the
// server, never from clients.
const (
	PrefixOrder    = "DH"
	PrefixProduct  = "SP"
	PrefixCustomer = "KH"
	PrefixSupplier = "NCC"
	PrefixEmployee = "NV"
	PrefixStockIn  = "IN"
	PrefixStockOut = "XT"
)

// GenerateCode returns a code of the form PREFIX-XXXXXXXX where the
// suffix is the first 8 hex characters of a random UUID, upper-cased.
func GenerateCode(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}
