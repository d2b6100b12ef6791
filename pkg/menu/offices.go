package menu

import "github.com/antares-engineering/antares-telegram-bot/pkg/domain"

var offices = []domain.Office{
	{
		Title:     "Головной офис ANTARES ENGINEERING",
		Address:   "ул. Карасай батыра 1А, Алматы",
		Latitude:  43.238949,
		Longitude: 76.889709,
	},
}

// Offices returns the office list in display order.
func Offices() []domain.Office {
	return append([]domain.Office(nil), offices...)
}
