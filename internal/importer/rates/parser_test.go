package rates_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Urigo/accounter-ledger/internal/importer/rates"
)

func TestParse(t *testing.T) {
	csv := `date,usd,eur,gbp
2023-10-26,4.03,4.28,4.90
2023-10-27,4.05,,4.92
`

	rows, err := rates.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, time.Date(2023, 10, 26, 0, 0, 0, 0, time.UTC), first.Date)
	require.NotNil(t, first.USD)
	assert.True(t, first.USD.Equal(decimal.RequireFromString("4.03")))
	require.NotNil(t, first.EUR)
	require.NotNil(t, first.GBP)

	second := rows[1]
	assert.Nil(t, second.EUR, "an empty cell is a non-trading day, not zero")
	require.NotNil(t, second.USD)
	assert.True(t, second.USD.Equal(decimal.RequireFromString("4.05")))
}

func TestParse_SlashDates(t *testing.T) {
	csv := "date,usd\n27/10/2023,4.05\n"

	rows, err := rates.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.Nil(t, rows[0].EUR)
	assert.Nil(t, rows[0].GBP)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want string
	}{
		{
			name: "MissingDateColumn",
			csv:  "usd,eur\n4.05,4.30\n",
			want: "no date column",
		},
		{
			name: "BadDate",
			csv:  "date,usd\nyesterday,4.05\n",
			want: "unrecognized date",
		},
		{
			name: "BadRate",
			csv:  "date,usd\n2023-10-27,four\n",
			want: "parsing rate",
		},
		{
			name: "NegativeRate",
			csv:  "date,usd\n2023-10-27,-4.05\n",
			want: "not positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rates.Parse(strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
