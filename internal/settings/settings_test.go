package settings

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Length != 12 {
		t.Errorf("default length = %d, want 12", cfg.Length)
	}
	if !cfg.Uppercase || !cfg.Lowercase || !cfg.Digits || !cfg.Special {
		t.Error("all four classes should be enabled by default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Configuration
		wantErr error
	}{
		{
			name:    "defaults are valid",
			cfg:     Default(),
			wantErr: nil,
		},
		{
			name:    "single class is valid",
			cfg:     Configuration{Length: 12, Digits: true},
			wantErr: nil,
		},
		{
			name:    "no classes selected",
			cfg:     Configuration{Length: 12},
			wantErr: ErrNoClassSelected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
