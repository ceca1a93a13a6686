package view

import (
	"testing"

	"sufra/model"
)

func actions(items []MenuItem) []string {
	var out []string
	for _, item := range items {
		out = append(out, item.Action)
	}
	return out
}

func TestMenuForAdmin(t *testing.T) {
	items := MenuForRoles(model.AdminRole)
	want := []string{"users", "branches", "offers", "reports", "cashier"}
	got := actions(items)
	if len(got) != len(want) {
		t.Fatalf("admin menu = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("admin menu = %v, want %v", got, want)
		}
	}
}

func TestMenuForCashier(t *testing.T) {
	items := MenuForRoles(model.CashierRole)
	if len(items) != 1 || items[0].Action != "cashier" {
		t.Fatalf("cashier menu = %v", actions(items))
	}
}

func TestMenuForManager(t *testing.T) {
	got := actions(MenuForRoles(model.ManagerRole))
	if len(got) != 2 || got[0] != "reports" || got[1] != "cashier" {
		t.Fatalf("manager menu = %v", got)
	}
}

func TestMenuForUnknownRole(t *testing.T) {
	if items := MenuForRoles("customer"); len(items) != 0 {
		t.Fatalf("unknown role must see no admin entries, got %v", actions(items))
	}
}

func TestMenuIsFreshPerCall(t *testing.T) {
	first := MenuForRoles(model.AdminRole)
	first[0].Label = "mutated"
	second := MenuForRoles(model.AdminRole)
	if second[0].Label == "mutated" {
		t.Fatalf("menu must be rebuilt per render, not shared")
	}
}
