package facades

import (
	"context"
	"errors"
	"testing"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// --- Fake gRPC client ---
type fakeExchangeClient struct {
	rates           map[string]float32
	rateForCurrency float32
	err             error
	lastRequest     *pb.CurrencyRequest
}

func (f *fakeExchangeClient) GetExchangeRates(ctx context.Context, _ *pb.Empty, opts ...grpc.CallOption) (*pb.ExchangeRatesResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ExchangeRatesResponse{Rates: f.rates}, nil
}

func (f *fakeExchangeClient) GetExchangeRateForCurrency(ctx context.Context, req *pb.CurrencyRequest, opts ...grpc.CallOption) (*pb.ExchangeRateResponse, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ExchangeRateResponse{FromCurrency: req.FromCurrency, ToCurrency: req.ToCurrency, Rate: f.rateForCurrency}, nil
}

// --- Tests ---
func TestGRPCListCurrencies(t *testing.T) {
	client := &fakeExchangeClient{
		rates: map[string]float32{
			"USD": 1.0,
			"EUR": 0.9,
		},
	}
	facade := NewExchangeRatesGRPCFacade(client)

	currencies, err := facade.ListCurrencies(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[models.CurrencyCode]string{"USD": "USD", "EUR": "EUR"}, currencies)
}

func TestGRPCListCurrencies_Error(t *testing.T) {
	client := &fakeExchangeClient{err: status.Error(codes.Unavailable, "exchanger down")}
	facade := NewExchangeRatesGRPCFacade(client)

	currencies, err := facade.ListCurrencies(context.Background())
	assert.ErrorIs(t, err, models.ErrNetwork)
	assert.Nil(t, currencies)
}

func TestGRPCGetLatestRate(t *testing.T) {
	client := &fakeExchangeClient{rateForCurrency: 1.2}
	facade := NewExchangeRatesGRPCFacade(client)

	got, err := facade.GetLatestRate(context.Background(), "USD", "EUR", 10)
	require.NoError(t, err)
	assert.Equal(t, 1.2, got.Rate)
	assert.Equal(t, 12.0, got.ConvertedAmount)
	assert.Equal(t, "USD", client.lastRequest.FromCurrency)
	assert.Equal(t, "EUR", client.lastRequest.ToCurrency)
}

func TestGRPCGetLatestRate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		client  *fakeExchangeClient
		amount  float64
		wantErr error
	}{
		{
			name:    "not_found",
			client:  &fakeExchangeClient{err: status.Error(codes.NotFound, "no such pair")},
			amount:  1,
			wantErr: models.ErrMissingRate,
		},
		{
			name:    "transport",
			client:  &fakeExchangeClient{err: errors.New("connection refused")},
			amount:  1,
			wantErr: models.ErrNetwork,
		},
		{
			name:    "zero_rate",
			client:  &fakeExchangeClient{rateForCurrency: 0},
			amount:  1,
			wantErr: models.ErrParse,
		},
		{
			name:    "negative_amount",
			client:  &fakeExchangeClient{rateForCurrency: 1},
			amount:  -5,
			wantErr: models.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := NewExchangeRatesGRPCFacade(tt.client)
			_, err := facade.GetLatestRate(context.Background(), "USD", "EUR", tt.amount)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
