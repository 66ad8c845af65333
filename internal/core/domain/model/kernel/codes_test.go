package kernel_test

import (
	"strings"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocationCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid_code", input: "TUNNEL-3", want: "TUNNEL-3"},
		{name: "normalizes_case_and_whitespace", input: "  bed-a12 ", want: "BED-A12"},
		{name: "empty_code", input: "", wantErr: true},
		{name: "whitespace_only", input: "   ", wantErr: true},
		{name: "too_long", input: strings.Repeat("X", 33), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocationCode(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, loc.String())
			require.NoError(t, loc.Validate())
		})
	}
}

func TestLocationCode_IsEqual(t *testing.T) {
	a, err := kernel.NewLocationCode("tunnel-3")
	require.NoError(t, err)
	b, err := kernel.NewLocationCode("TUNNEL-3")
	require.NoError(t, err)
	c, err := kernel.NewLocationCode("TUNNEL-4")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestLocationCode_Validate_ZeroValue(t *testing.T) {
	var loc kernel.LocationCode

	require.ErrorIs(t, loc.Validate(), errs.ErrValueIsRequired)
}

func TestNewSizeCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid_code", input: "P9", want: "P9"},
		{name: "normalizes_case", input: "c2", want: "C2"},
		{name: "empty_code", input: "", wantErr: true},
		{name: "too_long", input: strings.Repeat("P", 17), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := kernel.NewSizeCode(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, size.String())
			require.NoError(t, size.Validate())
		})
	}
}

func TestSizeCode_Validate_ZeroValue(t *testing.T) {
	var size kernel.SizeCode

	require.ErrorIs(t, size.Validate(), errs.ErrValueIsRequired)
}
