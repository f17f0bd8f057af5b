package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-img2pdf/internal/yamlutil"
)

type testConfig struct {
	DPI    float64 `yaml:"dpi"`
	Margin float64 `yaml:"margin"`
	Title  string  `yaml:"title"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr bool
		check   func(t *testing.T, cfg testConfig)
	}{
		{
			name: "valid document",
			data: "dpi: 300\nmargin: 15\ntitle: Scans\n",
			check: func(t *testing.T, cfg testConfig) {
				if cfg.DPI != 300 || cfg.Margin != 15 || cfg.Title != "Scans" {
					t.Errorf("parsed = %+v", cfg)
				}
			},
		},
		{
			name:    "unknown field rejected",
			data:    "dpi: 300\nresolution: 600\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			data:    "dpi: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var cfg testConfig
			err := yamlutil.UnmarshalStrict([]byte(tt.data), &cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalStrict() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestUnmarshalStrict_InputValidation(t *testing.T) {
	t.Parallel()

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		if err := yamlutil.UnmarshalStrict(nil, &cfg); !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()
		if err := yamlutil.UnmarshalStrict([]byte("dpi: 1"), nil); !errors.Is(err, yamlutil.ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()
		var cfg testConfig
		big := []byte("title: " + strings.Repeat("x", yamlutil.MaxInputSize))
		if err := yamlutil.UnmarshalStrict(big, &cfg); !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})
}
