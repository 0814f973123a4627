package catalog

// City is static reference data loaded at process start. The catalog is
// small and enumerable; there is no pagination and no mutation path.
type City struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
}

type Country struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
}

var cities = []City{
	{ID: "venice-it", Name: "Venice", CountryCode: "IT", CountryName: "Italy"},
	{ID: "rome-it", Name: "Rome", CountryCode: "IT", CountryName: "Italy"},
	{ID: "milan-it", Name: "Milan", CountryCode: "IT", CountryName: "Italy"},

	{ID: "lisbon-pt", Name: "Lisbon", CountryCode: "PT", CountryName: "Portugal"},
	{ID: "porto-pt", Name: "Porto", CountryCode: "PT", CountryName: "Portugal"},

	{ID: "barcelona-es", Name: "Barcelona", CountryCode: "ES", CountryName: "Spain"},
	{ID: "madrid-es", Name: "Madrid", CountryCode: "ES", CountryName: "Spain"},

	{ID: "paris-fr", Name: "Paris", CountryCode: "FR", CountryName: "France"},
	{ID: "nice-fr", Name: "Nice", CountryCode: "FR", CountryName: "France"},
}

// Cities returns the full catalog in catalog order. Callers get a copy so
// the backing array stays immutable.
func Cities() []City {
	out := make([]City, len(cities))
	copy(out, cities)
	return out
}

// CityByID looks a city up by exact id. A miss is not an error.
func CityByID(id string) (City, bool) {
	for _, c := range cities {
		if c.ID == id {
			return c, true
		}
	}
	return City{}, false
}

// CountriesFromCityIDs resolves each city id and accumulates the distinct
// countries in first-seen order of the input. Unknown ids are skipped.
func CountriesFromCityIDs(cityIDs []string) []Country {
	seen := make(map[string]bool, len(cityIDs))
	out := make([]Country, 0, len(cityIDs))
	for _, id := range cityIDs {
		c, ok := CityByID(id)
		if !ok {
			continue
		}
		if seen[c.CountryCode] {
			continue
		}
		seen[c.CountryCode] = true
		out = append(out, Country{CountryCode: c.CountryCode, CountryName: c.CountryName})
	}
	return out
}

// CitiesInCountries returns every catalog city whose country code is in the
// given set, in catalog order rather than input order.
func CitiesInCountries(countryCodes []string) []City {
	set := make(map[string]bool, len(countryCodes))
	for _, code := range countryCodes {
		set[code] = true
	}
	out := make([]City, 0, len(cities))
	for _, c := range cities {
		if set[c.CountryCode] {
			out = append(out, c)
		}
	}
	return out
}
