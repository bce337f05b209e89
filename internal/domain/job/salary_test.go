package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSalary(t *testing.T) {
	tests := []struct {
		in      string
		want    *int
		wantErr bool
	}{
		{in: "", want: nil},
		{in: "   ", want: nil},
		{in: "50000", want: intPtr(50000)},
		{in: " 70,000 ", want: intPtr(70000)},
		{in: "$1200", want: intPtr(1200)},
		{in: "abc", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "12.5", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSalary(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidSalary, "ParseSalary(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseSalary(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseSalary(%q)", tt.in)
	}
}

func intPtr(n int) *int { return &n }
