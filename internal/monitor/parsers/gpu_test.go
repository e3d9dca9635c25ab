package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNvidiaSMIValue(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    int
		wantNA  bool
		wantErr bool
	}{
		{name: "temperature", output: "65\n", want: 65},
		{name: "utilization with padding", output: "  45  \n", want: 45},
		{name: "zero load", output: "0", want: 0},
		{name: "fractional value rounds", output: "44.6", want: 45},
		{name: "trailing comma", output: "72,", want: 72},
		{name: "multi-gpu takes first line", output: "61\n88\n", want: 61},
		{name: "leading blank lines", output: "\n\n55\n", want: 55},
		{name: "empty output", output: "", wantNA: true},
		{name: "whitespace only", output: " \n\t\n", wantNA: true},
		{name: "not available", output: "[N/A]\n", wantNA: true},
		{name: "garbage", output: "No devices were found", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNvidiaSMIValue(tt.output)

			if tt.wantNA {
				assert.ErrorIs(t, err, ErrNotAvailable)
				return
			}
			if tt.wantErr {
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrNotAvailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNvidiaSMIMemory(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		wantUsed  int
		wantTotal int
		wantNA    bool
		wantErr   bool
	}{
		{name: "typical", output: "2048, 8192\n", wantUsed: 2048, wantTotal: 8192},
		{name: "no spaces", output: "512,11264", wantUsed: 512, wantTotal: 11264},
		{name: "multi-gpu takes first line", output: "100, 200\n300, 400\n", wantUsed: 100, wantTotal: 200},
		{name: "empty", output: "", wantNA: true},
		{name: "used not available", output: "[N/A], 8192", wantNA: true},
		{name: "total not available", output: "2048, [N/A]", wantNA: true},
		{name: "single field", output: "2048", wantErr: true},
		{name: "bad number", output: "lots, 8192", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			used, total, err := ParseNvidiaSMIMemory(tt.output)

			if tt.wantNA {
				assert.ErrorIs(t, err, ErrNotAvailable)
				return
			}
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUsed, used)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}
