package response_models

import "elope/internal/catalog"

type ExploreResponse struct {
	UnlockedCountries []catalog.Country `json:"unlocked_countries"`
	SelectedCountry   string            `json:"selected_country,omitempty"`
	Cities            []catalog.City    `json:"cities"`
}
