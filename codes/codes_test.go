package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageCode(t *testing.T) {
	assert.Equal(t, "EN", LanguageCode("english"))
	assert.Equal(t, "FR", LanguageCode("french"))
	assert.Equal(t, "ZH", LanguageCode("chinese"))
	assert.Equal(t, "", LanguageCode("klingon"))
	// Lookups are case sensitive; callers lowercase first.
	assert.Equal(t, "", LanguageCode("English"))
}

func TestCountryName(t *testing.T) {
	assert.Equal(t, "United States", CountryName("US"))
	assert.Equal(t, "France", CountryName("FR"))
	assert.Equal(t, "United Kingdom", CountryName("GB"))
	assert.Equal(t, "", CountryName("XX"))
	assert.Equal(t, "", CountryName(""))
}
