package dataset

import "testing"

func TestParseSalary(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"integer", "150000", 150000, false},
		{"decimal", "98765.43", 98765.43, false},
		{"currency and separators", "$1,234,567", 1234567, false},
		{"surrounding whitespace", "  42 ", 42, false},
		{"leading decimal point", ".5", 0.5, false},
		{"zero", "0", 0, false},

		{"empty", "", 0, true},
		{"text", "abc", 0, true},
		{"nan", "NaN", 0, true},
		{"infinity", "Infinity", 0, true},
		{"negative", "-100", 0, true},
		{"double dot", "1.2.3", 0, true},
		{"scientific notation", "1.5e5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSalary(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSalary(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseSalary(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
