package view

import (
	"testing"
	"time"

	"sufra/model"
)

func TestLoadOfferFormShiftsInstants(t *testing.T) {
	offer := model.Offer{
		ID:         2,
		ProductID:  9,
		Percentage: 15,
		Start:      "2025-05-01T10:00:00",
		End:        "2025-05-03T22:00:00",
	}

	form, err := LoadOfferForm(offer)
	if err != nil {
		t.Fatalf("LoadOfferForm: %v", err)
	}
	if !form.Start.Equal(time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("Start = %v", form.Start)
	}
	if !form.End.Equal(time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("End must roll across midnight, got %v", form.End)
	}
}

func TestOfferFormPayloadRoundTrip(t *testing.T) {
	offer := model.Offer{ID: 2, ProductID: 9, Percentage: 15,
		Start: "2025-05-01T10:00:00", End: "2025-05-03T22:00:00"}

	form, err := LoadOfferForm(offer)
	if err != nil {
		t.Fatalf("LoadOfferForm: %v", err)
	}
	payload, err := form.Payload()
	if err != nil {
		t.Fatalf("Payload: %v", err)
	}
	if payload.Start != offer.Start || payload.End != offer.End {
		t.Fatalf("round trip changed the window: %q %q", payload.Start, payload.End)
	}
}

func TestOfferFormRejectsInvertedWindow(t *testing.T) {
	form := OfferForm{
		ProductID:  1,
		Percentage: 10,
		Start:      time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		End:        time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	if _, err := form.Payload(); err != ErrOfferWindow {
		t.Fatalf("expected ErrOfferWindow, got %v", err)
	}
}
