package view

import (
	"errors"

	"sufra/model"
)

var ErrEmptyTicket = errors.New("ticket has no lines")

// TicketLine is one product on the cashier's ticket.
type TicketLine struct {
	ProductID int
	Name      string
	UnitPrice float64
	Quantity  int
	Discount  float64
}

// Ticket is the cashier screen's in-progress order. totals shown here
// are a preview only, the api recomputes and enforces them on submit.
type Ticket struct {
	BranchID    int
	Lines       []TicketLine
	DeliveryFee float64
}

// AddLine merges into an existing line of the same product or appends.
func (t *Ticket) AddLine(line TicketLine) {
	for i := range t.Lines {
		if t.Lines[i].ProductID == line.ProductID {
			t.Lines[i].Quantity += line.Quantity
			return
		}
	}
	t.Lines = append(t.Lines, line)
}

// SetQuantity updates a line, dropping it when quantity reaches zero.
func (t *Ticket) SetQuantity(productID, quantity int) {
	for i := range t.Lines {
		if t.Lines[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			t.Lines = append(t.Lines[:i], t.Lines[i+1:]...)
		} else {
			t.Lines[i].Quantity = quantity
		}
		return
	}
}

func (t *Ticket) RemoveLine(productID int) {
	t.SetQuantity(productID, 0)
}

// Totals previews the running figures: total before fee, total
// discount, and final amount with the delivery fee.
func (t *Ticket) Totals() (total, discount, final float64) {
	for _, line := range t.Lines {
		total += line.UnitPrice * float64(line.Quantity)
		discount += line.Discount * float64(line.Quantity)
	}
	final = total - discount + t.DeliveryFee
	return total, discount, final
}

// Payload builds the submit request for the api.
func (t *Ticket) Payload() (model.SubmitTicketRequest, error) {
	if len(t.Lines) == 0 {
		return model.SubmitTicketRequest{}, ErrEmptyTicket
	}
	req := model.SubmitTicketRequest{
		BranchID:    t.BranchID,
		DeliveryFee: t.DeliveryFee,
	}
	for _, line := range t.Lines {
		req.Lines = append(req.Lines, model.TicketLineRequest{
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Discount:  line.Discount,
		})
	}
	return req, nil
}
