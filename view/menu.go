package view

import "sufra/model"

// MenuItem is one entry of the console sidebar.
type MenuItem struct {
	Action string `json:"action"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
}

// MenuForRoles maps a role set to the sidebar entries it may see.
// pure function, evaluated fresh on each render.
func MenuForRoles(roles ...string) []MenuItem {
	has := make(map[string]bool, len(roles))
	for _, role := range roles {
		has[role] = true
	}

	var items []MenuItem
	if has[model.AdminRole] {
		items = append(items,
			MenuItem{Action: "users", Label: "المستخدمون", Icon: "users"},
			MenuItem{Action: "branches", Label: "الفروع", Icon: "store"},
			MenuItem{Action: "offers", Label: "العروض", Icon: "percent"},
		)
	}
	if has[model.AdminRole] || has[model.ManagerRole] {
		items = append(items,
			MenuItem{Action: "reports", Label: "تقارير المبيعات", Icon: "chart"},
		)
	}
	if has[model.AdminRole] || has[model.ManagerRole] || has[model.CashierRole] {
		items = append(items,
			MenuItem{Action: "cashier", Label: "الكاشير", Icon: "receipt"},
		)
	}
	return items
}
