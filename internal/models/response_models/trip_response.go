package response_models

type TripResponse struct {
	ID          string `json:"id"`
	CityID      string `json:"city_id"`
	CityName    string `json:"city_name"`
	CountryName string `json:"country_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
}

type SaveTripResponse struct {
	TripID      string `json:"trip_id"`
	CountryName string `json:"country_name"`
}
