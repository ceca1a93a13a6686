package view

import (
	"errors"
	"time"

	"sufra/model"
	"sufra/utils"
)

var ErrOfferWindow = errors.New("offer end must come after its start")

// OfferForm holds an offer window in local display time. the stored
// instants are shifted on load and shifted back on save.
type OfferForm struct {
	OfferID    int
	ProductID  int
	Percentage float64
	Start      time.Time
	End        time.Time
}

func LoadOfferForm(offer model.Offer) (OfferForm, error) {
	start, err := utils.ShiftInstantFromAPI(offer.Start)
	if err != nil {
		return OfferForm{}, err
	}
	end, err := utils.ShiftInstantFromAPI(offer.End)
	if err != nil {
		return OfferForm{}, err
	}
	return OfferForm{
		OfferID:    offer.ID,
		ProductID:  offer.ProductID,
		Percentage: offer.Percentage,
		Start:      start,
		End:        end,
	}, nil
}

// Payload shifts the edited window back into api form.
func (f OfferForm) Payload() (model.Offer, error) {
	if !f.End.After(f.Start) {
		return model.Offer{}, ErrOfferWindow
	}
	return model.Offer{
		ID:         f.OfferID,
		ProductID:  f.ProductID,
		Percentage: f.Percentage,
		Start:      utils.ShiftInstantForAPI(f.Start),
		End:        utils.ShiftInstantForAPI(f.End),
	}, nil
}
