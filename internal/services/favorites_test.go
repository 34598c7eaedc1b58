package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

func TestFavoritesService_List(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(s *MockKeyValueStore)
		want      []models.CurrencyCode
		wantErr   bool
	}{
		{
			name: "never written",
			mockSetup: func(s *MockKeyValueStore) {
				s.EXPECT().Get(gomock.Any(), FavoritesKey).Return("", models.ErrNotFound)
			},
			want: []models.CurrencyCode{models.PLN, models.USD},
		},
		{
			name: "stored",
			mockSetup: func(s *MockKeyValueStore) {
				s.EXPECT().Get(gomock.Any(), FavoritesKey).Return(`["EUR","GBP"]`, nil)
			},
			want: []models.CurrencyCode{models.EUR, "GBP"},
		},
		{
			name: "stored empty",
			mockSetup: func(s *MockKeyValueStore) {
				s.EXPECT().Get(gomock.Any(), FavoritesKey).Return(`[]`, nil)
			},
			want: []models.CurrencyCode{},
		},
		{
			name: "stored null",
			mockSetup: func(s *MockKeyValueStore) {
				s.EXPECT().Get(gomock.Any(), FavoritesKey).Return(`null`, nil)
			},
			want: []models.CurrencyCode{models.PLN, models.USD},
		},
		{
			name: "store error",
			mockSetup: func(s *MockKeyValueStore) {
				s.EXPECT().Get(gomock.Any(), FavoritesKey).Return("", errors.New("disk I/O error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockKeyValueStore(ctrl)
			tt.mockSetup(store)

			got, err := NewFavoritesService(store).List(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFavoritesService_Toggle(t *testing.T) {
	tests := []struct {
		name      string
		code      models.CurrencyCode
		mockSetup func(s *MockKeyValueStore)
		want      []models.CurrencyCode
		wantErr   error
	}{
		{
			name: "add to defaults",
			code: models.EUR,
			mockSetup: func(s *MockKeyValueStore) {
				s.EXPECT().Get(gomock.Any(), FavoritesKey).Return("", models.ErrNotFound)
				s.EXPECT().Set(gomock.Any(), FavoritesKey, `["PLN","USD","EUR"]`).Return(nil)
			},
			want: []models.CurrencyCode{models.PLN, models.USD, models.EUR},
		},
		{
			name: "remove keeps order",
			code: models.PLN,
			mockSetup: func(s *MockKeyValueStore) {
				s.EXPECT().Get(gomock.Any(), FavoritesKey).Return(`["PLN","USD","EUR"]`, nil)
				s.EXPECT().Set(gomock.Any(), FavoritesKey, `["USD","EUR"]`).Return(nil)
			},
			want: []models.CurrencyCode{models.USD, models.EUR},
		},
		{
			name: "remove last",
			code: models.USD,
			mockSetup: func(s *MockKeyValueStore) {
				s.EXPECT().Get(gomock.Any(), FavoritesKey).Return(`["USD"]`, nil)
				s.EXPECT().Set(gomock.Any(), FavoritesKey, `[]`).Return(nil)
			},
			want: []models.CurrencyCode{},
		},
		{
			name:      "malformed code",
			code:      "usd",
			mockSetup: func(s *MockKeyValueStore) {},
			wantErr:   models.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockKeyValueStore(ctrl)
			tt.mockSetup(store)

			got, err := NewFavoritesService(store).Toggle(context.Background(), tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFavoritesService_Toggle_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saveErr := errors.New("read-only store")
	store := NewMockKeyValueStore(ctrl)
	store.EXPECT().Get(gomock.Any(), FavoritesKey).Return("", models.ErrNotFound)
	store.EXPECT().Set(gomock.Any(), FavoritesKey, gomock.Any()).Return(saveErr)

	_, err := NewFavoritesService(store).Toggle(context.Background(), models.EUR)
	assert.ErrorIs(t, err, saveErr)
}

func TestFavoritesService_IsFavorite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockKeyValueStore(ctrl)
	store.EXPECT().Get(gomock.Any(), FavoritesKey).Return("", models.ErrNotFound).Times(2)

	svc := NewFavoritesService(store)

	ok, err := svc.IsFavorite(context.Background(), models.PLN)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsFavorite(context.Background(), models.EUR)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFavoritesService_Options(t *testing.T) {
	currencies := []models.CurrencyCode{"USD", "EUR", "GBP", "PLN", "CHF"}

	tests := []struct {
		name    string
		stored  string
		exclude models.CurrencyCode
		want    []models.CurrencyOption
	}{
		{
			name:   "favorites first",
			stored: `["USD","PLN"]`,
			want: []models.CurrencyOption{
				{Value: "USD", Label: "USD", IsFavorite: true},
				{Value: "PLN", Label: "PLN", IsFavorite: true},
				{Value: "CHF", Label: "CHF"},
				{Value: "EUR", Label: "EUR"},
				{Value: "GBP", Label: "GBP"},
			},
		},
		{
			name:    "base currency excluded",
			stored:  `["USD","PLN"]`,
			exclude: "PLN",
			want: []models.CurrencyOption{
				{Value: "USD", Label: "USD", IsFavorite: true},
				{Value: "CHF", Label: "CHF"},
				{Value: "EUR", Label: "EUR"},
				{Value: "GBP", Label: "GBP"},
			},
		},
		{
			name:   "duplicated favorite listed once",
			stored: `["EUR","EUR"]`,
			want: []models.CurrencyOption{
				{Value: "EUR", Label: "EUR", IsFavorite: true},
				{Value: "CHF", Label: "CHF"},
				{Value: "GBP", Label: "GBP"},
				{Value: "PLN", Label: "PLN"},
				{Value: "USD", Label: "USD"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockKeyValueStore(ctrl)
			store.EXPECT().Get(gomock.Any(), FavoritesKey).Return(tt.stored, nil)

			got, err := NewFavoritesService(store).Options(context.Background(), currencies, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
