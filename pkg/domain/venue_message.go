package domain

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

type VenueMessage struct {
	ChatID int64
	Office Office
}

func (*VenueMessage) Method() string { return "sendVenue" }

func (v *VenueMessage) ToChatMessage() tgbotapi.Chattable {
	return tgbotapi.NewVenue(v.ChatID, v.Office.Title, v.Office.Address, v.Office.Latitude, v.Office.Longitude)
}
