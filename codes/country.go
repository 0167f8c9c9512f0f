package codes

import (
	"sync"

	"github.com/pariz/gountries"
)

var (
	countryOnce  sync.Once
	countryQuery *gountries.Query
)

// CountryName resolves an ISO 3166-1 alpha-2 code to the country's common
// name. Unknown codes resolve to "".
func CountryName(alpha2 string) string {
	countryOnce.Do(func() {
		countryQuery = gountries.New()
	})

	country, err := countryQuery.FindCountryByAlpha(alpha2)
	if err != nil {
		return ""
	}
	return country.Name.Common
}
