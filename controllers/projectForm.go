package controllers

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"gorm.io/datatypes"
)

type productEntry struct {
	Name         string
	Price        float64
	ToppingGroup *int
	ToppingLimit int
	Allergens    datatypes.JSON
}

type toppingEntry struct {
	Name         string
	Price        float64
	ToppingGroup *int
}

type projectSetup struct {
	Name     string
	Floor    string
	Color    string
	Products []productEntry
	Toppings []toppingEntry
}

// parseProjectSetup turns the flat per-index form convention (product_name1,
// product_price1, ...) into an ordered sequence of validated records. It
// never touches the store; a failure here means no transaction is opened.
func parseProjectSetup(form url.Values) (*projectSetup, error) {
	setup := &projectSetup{
		Name:  form.Get("name"),
		Floor: form.Get("floor"),
		Color: form.Get("color"),
	}
	if setup.Name == "" || setup.Floor == "" || setup.Color == "" {
		return nil, fmt.Errorf("name, floor and color are required")
	}

	productCount, err := parseCount(form, "product_count")
	if err != nil {
		return nil, err
	}
	toppingCount, err := parseCount(form, "topping_count")
	if err != nil {
		return nil, err
	}

	for i := 1; i <= productCount; i++ {
		entry := productEntry{Name: form.Get(fmt.Sprintf("product_name%d", i))}
		if entry.Name == "" {
			return nil, fmt.Errorf("product_name%d is required", i)
		}
		entry.Price, err = parsePrice(form, fmt.Sprintf("product_price%d", i))
		if err != nil {
			return nil, err
		}
		entry.ToppingGroup, err = parseOptionalInt(form, fmt.Sprintf("topping_group%d", i))
		if err != nil {
			return nil, err
		}
		limit, err := parseOptionalInt(form, fmt.Sprintf("topping_limit%d", i))
		if err != nil {
			return nil, err
		}
		if limit != nil {
			entry.ToppingLimit = *limit
		}
		if raw := form.Get(fmt.Sprintf("product_allergens%d", i)); raw != "" {
			if !json.Valid([]byte(raw)) {
				return nil, fmt.Errorf("product_allergens%d must be valid JSON", i)
			}
			entry.Allergens = datatypes.JSON(raw)
		}
		setup.Products = append(setup.Products, entry)
	}

	for i := 1; i <= toppingCount; i++ {
		entry := toppingEntry{Name: form.Get(fmt.Sprintf("topping_name%d", i))}
		if entry.Name == "" {
			return nil, fmt.Errorf("topping_name%d is required", i)
		}
		entry.Price, err = parsePrice(form, fmt.Sprintf("topping_price%d", i))
		if err != nil {
			return nil, err
		}
		entry.ToppingGroup, err = parseOptionalInt(form, fmt.Sprintf("topping_group%d", i))
		if err != nil {
			return nil, err
		}
		setup.Toppings = append(setup.Toppings, entry)
	}

	return setup, nil
}

func parseCount(form url.Values, key string) (int, error) {
	raw := form.Get(key)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return n, nil
}

func parsePrice(form url.Values, key string) (float64, error) {
	raw := form.Get(key)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return price, nil
}

func parseOptionalInt(form url.Values, key string) (*int, error) {
	raw := form.Get(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", key)
	}
	return &n, nil
}
