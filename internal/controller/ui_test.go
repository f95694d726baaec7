package controller

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}

			if got != tt.want {
				t.Fatalf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartOptions(t *testing.T) {
	config := newStartConfig()
	if config.mode != ModeMutate || config.format != FormatTable {
		t.Fatalf("default config = %+v", config)
	}

	config = newStartConfig(WithListMode(), WithFormat(FormatJSON))
	if config.mode != ModeList || config.format != FormatJSON {
		t.Fatalf("list json config = %+v", config)
	}

	config = newStartConfig(WithViewMode(), WithFormat(""))
	if config.mode != ModeView || config.format != FormatTable {
		t.Fatalf("empty format must keep the default, got %+v", config)
	}

	config = newStartConfig(WithViewMode(), WithMutateMode())
	if config.mode != ModeMutate {
		t.Fatalf("last mode option must win, got %+v", config)
	}
}
