package listing_test

import (
	"testing"

	"yokeair/internal/listing"

	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "3200", want: 3200},
		{in: "$3,200", want: 3200},
		{in: " $ 1,250,000.50 ", want: 1250000.50},
		{in: "4 500 USD", want: 4500},
		{in: "€990", want: 990},
		{in: "", wantErr: true},
		{in: "$", wantErr: true},
		{in: "-5", wantErr: true},
		{in: "12.3.4", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "USD 2,750.50", want: 2750.50},
		{in: "1800eur", want: 1800},
		{in: "3\u00a0200 $", want: 3200},
		{in: "1e3", wantErr: true},
		{in: "12abc", wantErr: true},
		{in: "3.200,50", wantErr: true},
		{in: "3,20", wantErr: true},
		{in: "12,34,567", wantErr: true},
		{in: "$12 Main St", wantErr: true},
		{in: "USD", wantErr: true},
		{in: "Inf", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := listing.ParsePrice(tt.in)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestBedroomType(t *testing.T) {
	require.Equal(t, "studio", listing.BedroomType(0))
	require.Equal(t, "1BR", listing.BedroomType(1))
	require.Equal(t, "4BR", listing.BedroomType(4))
}
