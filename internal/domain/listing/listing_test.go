package listing

import "testing"

func strPtr(s string) *string { return &s }

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in    string
		want  Category
		valid bool
	}{
		{"Residential", Residential, true},
		{"residential", Residential, true},
		{"COMMERCIAL", Commercial, true},
		{"", "", false},
		{"industrial", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		if ok != tt.valid {
			t.Errorf("ParseCategory(%q) valid = %v, want %v", tt.in, ok, tt.valid)
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAddressFull(t *testing.T) {
	tests := []struct {
		name string
		addr Address
		want string
	}{
		{
			name: "street city postal",
			addr: Address{
				StreetNumber: strPtr("12"),
				StreetName:   strPtr("Main"),
				StreetSuffix: strPtr("St"),
				CityRegion:   strPtr("Oakville"),
				PostalCode:   strPtr("L6H 0A1"),
			},
			want: "12 Main St, Oakville, L6H 0A1",
		},
		{
			name: "apartment wins over unit",
			addr: Address{
				StreetNumber:    strPtr("7"),
				StreetName:      strPtr("King"),
				ApartmentNumber: strPtr("401"),
				UnitNumber:      strPtr("B"),
				CityRegion:      strPtr("Toronto"),
			},
			want: "7 King, Apt 401, Toronto",
		},
		{
			name: "unit only",
			addr: Address{
				StreetName: strPtr("Queen"),
				UnitNumber: strPtr("3"),
			},
			want: "Queen, Unit 3",
		},
		{
			name: "empty",
			addr: Address{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.Full(); got != tt.want {
				t.Errorf("Full() = %q, want %q", got, tt.want)
			}
		})
	}
}
