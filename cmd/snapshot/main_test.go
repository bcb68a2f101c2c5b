package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tsdomain "stock_dashboard/internal/feature/timeseries/domain"
)

func TestRun(t *testing.T) {
	t.Setenv("TUNING_FILE", "")

	var out bytes.Buffer
	err := run(context.Background(), []string{"-symbol", "NVDA", "-range", "1W", "-seed", "9"}, &out)
	require.NoError(t, err)

	var body struct {
		Symbol struct {
			Code  string  `json:"code"`
			Price float64 `json:"price"`
		} `json:"symbol"`
		Range  string `json:"range"`
		Series struct {
			Historical []json.RawMessage `json:"historical"`
		} `json:"series"`
		Forecast map[string]any `json:"forecast"`
		Chart    map[string]any `json:"chart"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	assert.Equal(t, "NVDA", body.Symbol.Code)
	assert.Equal(t, 116.01, body.Symbol.Price)
	assert.Equal(t, "1w", body.Range)
	assert.Len(t, body.Series.Historical, 7)
	assert.NotEmpty(t, body.Forecast)
	assert.NotEmpty(t, body.Chart)
}

func TestRun_SameSeedSameOutput(t *testing.T) {
	t.Setenv("TUNING_FILE", "")

	args := []string{"-symbol", "AAPL", "-range", "1m", "-seed", "3"}
	var a, b bytes.Buffer
	require.NoError(t, run(context.Background(), args, &a))
	require.NoError(t, run(context.Background(), args, &b))

	// Dates follow the wall clock, so compare within the same day only
	assert.Equal(t, a.String(), b.String())
}

func TestRun_Errors(t *testing.T) {
	t.Setenv("TUNING_FILE", "")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"invalid range", []string{"-range", "2w"}, tsdomain.ErrInvalidTimeRange},
		{"unknown symbol", []string{"-symbol", "ZZZZ"}, errUnknownSymbol},
		{"invalid viewport", []string{"-width", "0"}, nil},
		{"unknown flag", []string{"-verbose"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), tt.args, &out)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			assert.Zero(t, out.Len())
		})
	}
}
