package dto

type PlaceResponse struct {
	Place               string   `json:"place"`
	State               string   `json:"state,omitempty"`
	Latitude            float64  `json:"latitude"`
	Longitude           float64  `json:"longitude"`
	ExpectedTimeToVisit string   `json:"expected_time_to_visit"`
	EntryFees           string   `json:"entry_fees"`
	Description         []string `json:"description,omitempty"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}

type CoordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
