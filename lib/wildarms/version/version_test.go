package version

import "testing"

func TestIsJapanese(t *testing.T) {
	tests := []struct {
		name string
		v    Version
		want bool
	}{
		{"jp1", JP1, true},
		{"jp2", JP2, true},
		{"us", US, false},
		{"en", EN, false},
		{"fr", FR, false},
		{"de", DE, false},
		{"it", IT, false},
		{"es", ES, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsJapanese(tt.v); got != tt.want {
				t.Errorf("IsJapanese(%q) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	for _, v := range All {
		if !Valid(v) {
			t.Errorf("Valid(%q) = false, want true", v)
		}
	}

	if Valid(Version("xx")) {
		t.Errorf("Valid(%q) = true, want false", "xx")
	}
}
