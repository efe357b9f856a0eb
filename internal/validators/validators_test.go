package validators

import "testing"

func TestCheckNumber(t *testing.T) {
	testCases := []struct {
		Name     string
		Number   string
		Expected bool
	}{
		{Name: "Success. Valid number #1", Number: "79927398713", Expected: true},
		{Name: "Success. Valid card with spaces #2", Number: "4539 1488 0343 6467", Expected: true},
		{Name: "Error. Invalid checksum #3", Number: "79927398710", Expected: false},
		{Name: "Error. Letters #4", Number: "7992a398713", Expected: false},
		{Name: "Error. Empty #5", Number: "", Expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if got := CheckNumber(tc.Number); got != tc.Expected {
				t.Errorf("Expected %v, got: %v", tc.Expected, got)
			}
		})
	}
}

func TestLuhnDigit(t *testing.T) {
	digit, ok := LuhnDigit("7992739871")
	if !ok || digit != 3 {
		t.Errorf("Expected check digit 3, got: %d (%v)", digit, ok)
	}
	for _, payload := range []string{"453914880343646", "000000000000000", "999999999999999"} {
		digit, ok := LuhnDigit(payload)
		if !ok {
			t.Fatalf("Expected valid payload %s", payload)
		}
		if !CheckNumber(payload + string(rune('0'+digit))) {
			t.Errorf("Number %s%d must pass Luhn check", payload, digit)
		}
	}
	if _, ok := LuhnDigit("12a"); ok {
		t.Errorf("Expected invalid payload")
	}
}

func TestCheckAlias(t *testing.T) {
	testCases := []struct {
		Alias    string
		Expected bool
	}{
		{Alias: "+22670000000", Expected: true},
		{Alias: "+1234567890123456", Expected: false},
		{Alias: "70000000", Expected: false},
		{Alias: "123", Expected: false},
		{Alias: "0000", Expected: false},
		{Alias: "12345678901234567890", Expected: false},
		{Alias: "shop.ouaga", Expected: true},
		{Alias: "boutique2", Expected: true},
		{Alias: "007.shop", Expected: true},
		{Alias: "ab", Expected: false},
		{Alias: "Upper", Expected: false},
		{Alias: "+12", Expected: false},
		{Alias: "", Expected: false},
	}
	for _, tc := range testCases {
		if got := CheckAlias(tc.Alias); got != tc.Expected {
			t.Errorf("Alias '%s': expected %v, got: %v", tc.Alias, tc.Expected, got)
		}
	}
}

func TestCheckPin(t *testing.T) {
	if !CheckPin("0420") {
		t.Errorf("Expected valid pin")
	}
	for _, pin := range []string{"123", "12345", "12a4", ""} {
		if CheckPin(pin) {
			t.Errorf("Expected invalid pin '%s'", pin)
		}
	}
}
