package view

import (
	"sufra/model"
	"sufra/utils"
)

// BranchForm holds a branch's opening hours the way the admin edits
// them: shifted out of backend storage and shown in 12 hour Arabic
// form.
type BranchForm struct {
	BranchID    int
	Name        string
	OpeningTime string
	ClosingTime string
}

// LoadBranchForm shifts the stored times into display form.
func LoadBranchForm(branch model.Branch) (BranchForm, error) {
	opening, err := displayTime(branch.OpeningTime)
	if err != nil {
		return BranchForm{}, err
	}
	closing, err := displayTime(branch.ClosingTime)
	if err != nil {
		return BranchForm{}, err
	}
	return BranchForm{
		BranchID:    branch.ID,
		Name:        branch.Name,
		OpeningTime: opening,
		ClosingTime: closing,
	}, nil
}

// BackendTimes converts the edited times back to what the api stores.
func (f BranchForm) BackendTimes() (opening string, closing string, err error) {
	opening, err = backendTime(f.OpeningTime)
	if err != nil {
		return "", "", err
	}
	closing, err = backendTime(f.ClosingTime)
	if err != nil {
		return "", "", err
	}
	return opening, closing, nil
}

func displayTime(stored string) (string, error) {
	shifted, err := utils.ShiftFromBackend(stored)
	if err != nil {
		return "", err
	}
	return utils.To12Hour(shifted)
}

func backendTime(displayed string) (string, error) {
	clock, err := utils.To24Hour(displayed)
	if err != nil {
		return "", err
	}
	return utils.ShiftForBackend(clock)
}
