package facades

import (
	"context"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
)

// ExchangeRatesGRPCFacade serves latest rates from the gw-exchanger gRPC service.
// The exchanger has no history, so it only stands in for the latest-rate and
// currency-list calls.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// ListCurrencies returns the currencies the exchanger quotes. The exchanger
// carries no display names, so every code names itself.
func (f *ExchangeRatesGRPCFacade) ListCurrencies(ctx context.Context) (map[models.CurrencyCode]string, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, grpcError(err)
	}

	currencies := make(map[models.CurrencyCode]string, len(resp.Rates))
	for code := range resp.Rates {
		c := models.CurrencyCode(code)
		if !c.IsWellFormed() {
			return nil, fmt.Errorf("%w: unexpected currency code %q", models.ErrParse, code)
		}
		currencies[c] = code
	}
	return currencies, nil
}

// GetLatestRate fetches the exchange rate between two currencies and converts amount with it.
func (f *ExchangeRatesGRPCFacade) GetLatestRate(
	ctx context.Context,
	from, to models.CurrencyCode,
	amount float64,
) (models.LatestRate, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return models.LatestRate{}, models.InvalidInputf("amount must be a finite number >= 0, got %v", amount)
	}

	req := &pb.CurrencyRequest{
		FromCurrency: from.String(),
		ToCurrency:   to.String(),
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate for currency via gRPC",
			"from", from, "to", to, "error", err)
		return models.LatestRate{}, grpcError(err)
	}
	if resp.Rate <= 0 {
		return models.LatestRate{}, fmt.Errorf("%w: non-positive rate %v for %s->%s", models.ErrParse, resp.Rate, from, to)
	}

	rate := decimal.NewFromFloat32(resp.Rate)
	return models.LatestRate{
		Rate:            rate.InexactFloat64(),
		ConvertedAmount: rate.Mul(decimal.NewFromFloat(amount)).InexactFloat64(),
	}, nil
}

// grpcError maps a gRPC status onto the rate source error taxonomy.
func grpcError(err error) error {
	switch status.Code(err) {
	case codes.NotFound, codes.InvalidArgument:
		return fmt.Errorf("%w: %w", models.ErrMissingRate, err)
	case codes.DataLoss, codes.Internal:
		return fmt.Errorf("%w: %w", models.ErrParse, err)
	default:
		return fmt.Errorf("%w: %w", models.ErrNetwork, err)
	}
}
