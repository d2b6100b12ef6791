package domain

type Office struct {
	Title     string
	Address   string
	Latitude  float64
	Longitude float64
}
