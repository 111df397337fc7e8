package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	pattern := regexp.MustCompile(`^DH-[0-9A-F]{8}$`)

	code := GenerateCode(PrefixOrder)
	assert.True(t, pattern.MatchString(code), "unexpected code format: %s", code)
}

func TestGenerateCodePrefixes(t *testing.T) {
	assert.Regexp(t, `^SP-`, GenerateCode(PrefixProduct))
	assert.Regexp(t, `^KH-`, GenerateCode(PrefixCustomer))
	assert.Regexp(t, `^NCC-`, GenerateCode(PrefixSupplier))
	assert.Regexp(t, `^NV-`, GenerateCode(PrefixEmployee))
	assert.Regexp(t, `^IN-`, GenerateCode(PrefixStockIn))
	assert.Regexp(t, `^XT-`, GenerateCode(PrefixStockOut))
}

func TestGenerateCodeIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateCode(PrefixOrder)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
