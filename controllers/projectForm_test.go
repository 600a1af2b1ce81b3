package controllers

import (
	"net/url"
	"strings"
	"testing"
)

func TestParseProjectSetupBuildsOrderedEntries(t *testing.T) {
	form := url.Values{
		"name":               {"Cafeteria"},
		"floor":              {"2"},
		"color":              {"#ff8800"},
		"product_count":      {"2"},
		"topping_count":      {"2"},
		"product_name1":      {"Latte"},
		"product_price1":     {"4.5"},
		"topping_group1":     {"1"},
		"topping_limit1":     {"2"},
		"product_allergens1": {`["milk"]`},
		"product_name2":      {"Tea"},
		"product_price2":     {"3"},
		"topping_name1":      {"Oat milk"},
		"topping_price1":     {"0.5"},
		"topping_name2":      {"Syrup"},
		"topping_price2":     {"0.3"},
		"topping_group2":     {"1"},
	}

	setup, err := parseProjectSetup(form)
	if err != nil {
		t.Fatalf("parseProjectSetup: %v", err)
	}

	if setup.Name != "Cafeteria" || setup.Floor != "2" || setup.Color != "#ff8800" {
		t.Fatalf("unexpected project fields: %+v", setup)
	}
	if len(setup.Products) != 2 || len(setup.Toppings) != 2 {
		t.Fatalf("got %d products, %d toppings", len(setup.Products), len(setup.Toppings))
	}

	first := setup.Products[0]
	if first.Name != "Latte" || first.Price != 4.5 || first.ToppingLimit != 2 {
		t.Fatalf("unexpected first product: %+v", first)
	}
	if first.ToppingGroup == nil || *first.ToppingGroup != 1 {
		t.Fatalf("first product topping group = %v", first.ToppingGroup)
	}
	if string(first.Allergens) != `["milk"]` {
		t.Fatalf("first product allergens = %s", first.Allergens)
	}

	// topping_group{i} is one key shared between the product and topping
	// sections by the wire convention, so topping_group2 (set for the second
	// topping) lands on the second product too, and topping_group1 (set for
	// the first product) lands on the first topping.
	second := setup.Products[1]
	if second.Name != "Tea" || second.Price != 3 {
		t.Fatalf("unexpected second product: %+v", second)
	}
	if second.ToppingGroup == nil || *second.ToppingGroup != 1 {
		t.Fatalf("second product topping group = %v", second.ToppingGroup)
	}

	if setup.Toppings[0].ToppingGroup == nil || *setup.Toppings[0].ToppingGroup != 1 {
		t.Fatalf("first topping group = %v", setup.Toppings[0].ToppingGroup)
	}
	if setup.Toppings[1].Name != "Syrup" || setup.Toppings[1].Price != 0.3 {
		t.Fatalf("unexpected second topping: %+v", setup.Toppings[1])
	}
}

func TestParseProjectSetupLeavesToppingGroupUnsetWhenKeyAbsent(t *testing.T) {
	form := url.Values{
		"name":           {"Cafeteria"},
		"floor":          {"2"},
		"color":          {"#ff8800"},
		"product_count":  {"1"},
		"topping_count":  {"1"},
		"product_name1":  {"Tea"},
		"product_price1": {"3"},
		"topping_name1":  {"Syrup"},
		"topping_price1": {"0.3"},
	}

	setup, err := parseProjectSetup(form)
	if err != nil {
		t.Fatalf("parseProjectSetup: %v", err)
	}
	if setup.Products[0].ToppingGroup != nil {
		t.Fatalf("product topping group = %d, want nil", *setup.Products[0].ToppingGroup)
	}
	if setup.Toppings[0].ToppingGroup != nil {
		t.Fatalf("topping group = %d, want nil", *setup.Toppings[0].ToppingGroup)
	}
}

func TestParseProjectSetupErrors(t *testing.T) {
	base := func() url.Values {
		return url.Values{
			"name":           {"Cafeteria"},
			"floor":          {"2"},
			"color":          {"#ff8800"},
			"product_count":  {"1"},
			"topping_count":  {"1"},
			"product_name1":  {"Latte"},
			"product_price1": {"4.5"},
			"topping_name1":  {"Oat milk"},
			"topping_price1": {"0.5"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(url.Values)
		wantErr string
	}{
		{
			name:    "missing floor",
			mutate:  func(form url.Values) { form.Del("floor") },
			wantErr: "name, floor and color are required",
		},
		{
			name:    "missing product count",
			mutate:  func(form url.Values) { form.Del("product_count") },
			wantErr: "product_count is required",
		},
		{
			name:    "zero topping count",
			mutate:  func(form url.Values) { form.Set("topping_count", "0") },
			wantErr: "topping_count must be a positive integer",
		},
		{
			name:    "missing product name",
			mutate:  func(form url.Values) { form.Del("product_name1") },
			wantErr: "product_name1 is required",
		},
		{
			name:    "non-numeric product price",
			mutate:  func(form url.Values) { form.Set("product_price1", "cheap") },
			wantErr: "product_price1 must be a number",
		},
		{
			name:    "non-integer topping limit",
			mutate:  func(form url.Values) { form.Set("topping_limit1", "many") },
			wantErr: "topping_limit1 must be an integer",
		},
		{
			name:    "invalid allergens json",
			mutate:  func(form url.Values) { form.Set("product_allergens1", "{broken") },
			wantErr: "product_allergens1 must be valid JSON",
		},
		{
			name:    "missing topping price",
			mutate:  func(form url.Values) { form.Del("topping_price1") },
			wantErr: "topping_price1 is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := base()
			tc.mutate(form)

			_, err := parseProjectSetup(form)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %q, want %q", err, tc.wantErr)
			}
		})
	}
}
