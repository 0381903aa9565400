package model

import "testing"

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
		stage int
	}{
		{"placed", OrderStatusPlaced, "placed", 0},
		{"preparing", OrderStatusPreparing, "preparing", 1},
		{"ready", OrderStatusReady, "ready", 2},
		{"delivered", OrderStatusDelivered, "delivered", 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			if tc.got.Stage() != tc.stage {
				t.Fatalf("expected stage %d, got %d", tc.stage, tc.got.Stage())
			}
			if !tc.got.Valid() {
				t.Fatalf("expected %s to be valid", tc.got)
			}
		})
	}

	if OrderStatus("cooking").Valid() {
		t.Fatal("unexpected valid order status")
	}
}

func TestPaymentStatusValues(t *testing.T) {
	for _, s := range []PaymentStatus{PaymentStatusPending, PaymentStatusSuccess, PaymentStatusFailed} {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if PaymentStatus("refunded").Valid() {
		t.Fatal("unexpected valid payment status")
	}
	if PaymentStatus("").Valid() {
		t.Fatal("empty payment status must be invalid")
	}
}

func TestPerPerson(t *testing.T) {
	cases := []struct {
		total float64
		split int
		want  float64
	}{
		{120, 3, 40},
		{120, 1, 120},
		{100, 0, 100},
		{100, 4, 25},
	}
	for _, tc := range cases {
		if got := PerPerson(tc.total, tc.split); got != tc.want {
			t.Fatalf("PerPerson(%v, %d) = %v, want %v", tc.total, tc.split, got, tc.want)
		}
	}
}

func TestIdentity(t *testing.T) {
	customer := CustomerIdentity("u1")
	if customer.IsStaff() || !customer.Authenticated() {
		t.Fatalf("unexpected customer identity state: %+v", customer)
	}
	if customer.Subject() != "u1" || customer.Role() != "customer" {
		t.Fatalf("unexpected customer subject/role: %s %s", customer.Subject(), customer.Role())
	}
	if !customer.Owns("u1") || customer.Owns("u2") {
		t.Fatal("unexpected ownership result for customer")
	}

	staff := StaffIdentity()
	if !staff.IsStaff() || !staff.Authenticated() {
		t.Fatalf("unexpected staff identity state: %+v", staff)
	}
	if staff.Subject() != StaffSubject || staff.Role() != "staff" {
		t.Fatalf("unexpected staff subject/role: %s %s", staff.Subject(), staff.Role())
	}

	var anon Identity
	if anon.Authenticated() || anon.Owns("") || anon.Role() != "" {
		t.Fatalf("anonymous identity must not authenticate: %+v", anon)
	}
	if CustomerIdentity("").Authenticated() {
		t.Fatal("customer identity without id must not authenticate")
	}
}

func TestMenuItemPatch(t *testing.T) {
	var patch MenuItemPatch
	if !patch.Empty() {
		t.Fatal("expected empty patch")
	}

	name := "Idli"
	price := 40.0
	available := false
	patch = MenuItemPatch{Name: &name, Price: &price, IsAvailable: &available}
	if patch.Empty() {
		t.Fatal("expected non-empty patch")
	}

	item := MenuItem{Name: "Dosa", Price: 60, Category: "South Indian", IsAvailable: true}
	patch.Apply(&item)
	if item.Name != "Idli" || item.Price != 40 || item.IsAvailable {
		t.Fatalf("patch not applied: %+v", item)
	}
	if item.Category != "South Indian" {
		t.Fatalf("unset fields must be preserved, got %q", item.Category)
	}
}
