package domain

// PostalCode is one row of the static Belgian postal code reference file.
type PostalCode struct {
	Zip  string  `json:"zip"`
	City string  `json:"city"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}
