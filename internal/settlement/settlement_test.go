package settlement

import (
	"testing"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"Сочи", "Сочи"},
		{"Сочи[1]", "Сочи"},
		{"Адлер[2]", "Адлер"},
		{"Горячий Ключ (город)", "Горячий Ключ"},
		{"Абрау-Дюрсо[4] (село)", "Абрау-Дюрсо"},
		{"  Тамань  ", "Тамань"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := CleanName(tt.raw); got != tt.expected {
				t.Errorf("CleanName(%q) = %q, expected %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestCleanDistrict(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"город Сочи", "Сочи"},
		{"город-курорт Анапа", "Анапа"},
		{"городкурорт Геленджик", "Геленджик"},
		{"Городской округ Сочи", "Сочи"},
		{"Успенский район", "Успенский район"},
		{"Мостовский район (район)", "Мостовский район"},
		{"Тахтамукайский район[5]", "Тахтамукайский район"},
		{"  Абинский район  ", "Абинский район"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := CleanDistrict(tt.raw); got != tt.expected {
				t.Errorf("CleanDistrict(%q) = %q, expected %q", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		district string
		raw      string
		expected Record
		ok       bool
	}{
		{
			name:     "plain record",
			region:   "Краснодарский край",
			district: "Городской округ Сочи",
			raw:      "Адлер[2]",
			expected: Record{"Краснодарский край", "Сочи", "Адлер"},
			ok:       true,
		},
		{
			name:     "empty name dropped",
			region:   "Краснодарский край",
			district: "Успенский район",
			raw:      "[1]",
			ok:       false,
		},
		{
			name:     "em dash placeholder dropped",
			region:   "Краснодарский край",
			district: "Успенский район",
			raw:      "—",
			ok:       false,
		},
		{
			name:     "ascii dash placeholder dropped",
			region:   "Краснодарский край",
			district: "Успенский район",
			raw:      "-",
			ok:       false,
		},
		{
			name:   "empty district dropped",
			region: "Краснодарский край",
			raw:    "Сочи",
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := New(tt.region, tt.district, tt.raw)
			if ok != tt.ok {
				t.Fatalf("New() ok = %v, expected %v", ok, tt.ok)
			}
			if ok && rec != tt.expected {
				t.Errorf("New() = %+v, expected %+v", rec, tt.expected)
			}
		})
	}
}

func TestNewIdempotent(t *testing.T) {
	rec, ok := New("Краснодарский край", "город-курорт Анапа[3]", "Витязево (посёлок)")
	if !ok {
		t.Fatal("expected first normalization to produce a record")
	}

	again, ok := New(rec.Region, rec.District, rec.Settlement)
	if !ok {
		t.Fatal("expected renormalization to produce a record")
	}
	if again != rec {
		t.Errorf("renormalized record %+v differs from %+v", again, rec)
	}
}
