package currency

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"easyrent-backend/pkg/nbkr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronizeStoresDirectInverseAndCrossRates(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRateRepo()
	store := NewStore(repo)
	sync := NewSynchronizer(store, nil)

	report, err := sync.Synchronize(ctx, map[string]float64{"USD": 85, "EUR": 92}, "SOM")
	require.NoError(t, err)
	assert.Empty(t, report.Skipped)
	// 2 direct pairs in both directions plus 2 ordered cross pairs
	assert.Equal(t, 6, report.PairsUpdated)

	rate, err := store.GetRate(ctx, "USD", "SOM")
	require.NoError(t, err)
	assert.Equal(t, 85.0, rate)

	rate, err = store.GetRate(ctx, "SOM", "USD")
	require.NoError(t, err)
	assert.InDelta(t, 1.0/85, rate, 1e-12)

	rate, err = store.GetRate(ctx, "USD", "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 85*(1.0/92), rate, 1e-12)

	rate, err = store.GetRate(ctx, "EUR", "USD")
	require.NoError(t, err)
	assert.InDelta(t, 92*(1.0/85), rate, 1e-12)
}

func TestSynchronizeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRateRepo()
	sync := NewSynchronizer(NewStore(repo), nil)
	direct := map[string]float64{"USD": 85, "EUR": 92, "RUB": 0.95}

	first, err := sync.Synchronize(ctx, direct, "SOM")
	require.NoError(t, err)
	afterFirst := make(map[string]float64, len(repo.rates))
	for key, rate := range repo.rates {
		afterFirst[key] = rate.Rate
	}

	second, err := sync.Synchronize(ctx, direct, "SOM")
	require.NoError(t, err)
	assert.Equal(t, first.PairsUpdated, second.PairsUpdated)

	require.Len(t, repo.rates, len(afterFirst))
	for key, want := range afterFirst {
		assert.Equal(t, want, repo.rates[key].Rate, key)
	}
}

func TestSynchronizeSkipsReferenceEntryInInput(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRateRepo()
	sync := NewSynchronizer(NewStore(repo), nil)

	report, err := sync.Synchronize(ctx, map[string]float64{"SOM": 1, "USD": 85}, "SOM")
	require.NoError(t, err)
	assert.Equal(t, 2, report.PairsUpdated)
	assert.Len(t, repo.rates, 2)
}

func TestSynchronizeRejectsUnsupportedReference(t *testing.T) {
	sync := NewSynchronizer(NewStore(newFakeRateRepo()), nil)
	_, err := sync.Synchronize(context.Background(), map[string]float64{"USD": 85}, "GBP")
	assert.Error(t, err)
}

func TestSynchronizeSkipsInvalidDirectRate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRateRepo()
	store := NewStore(repo)
	sync := NewSynchronizer(store, nil)

	report, err := sync.Synchronize(ctx, map[string]float64{"USD": 85, "EUR": -1}, "SOM")
	require.NoError(t, err)
	assert.Contains(t, report.Skipped, "EUR-SOM")
	// the valid currency still lands, no cross pairs remain
	assert.Equal(t, 2, report.PairsUpdated)

	rate, err := store.GetRate(ctx, "USD", "SOM")
	require.NoError(t, err)
	assert.Equal(t, 85.0, rate)

	_, err = store.GetRate(ctx, "EUR", "SOM")
	assert.Error(t, err)
}

func TestSynchronizeToleratesPerPairStoreFailure(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRateRepo()
	repo.failUpsert = map[string]error{
		"USD/EUR": errors.New("write conflict"),
	}
	store := NewStore(repo)
	sync := NewSynchronizer(store, nil)

	report, err := sync.Synchronize(ctx, map[string]float64{"USD": 85, "EUR": 92}, "SOM")
	require.NoError(t, err)
	assert.Equal(t, []string{"USD-EUR"}, report.Skipped)
	assert.Equal(t, 5, report.PairsUpdated)

	// the other cross pair was still derived
	rate, err := store.GetRate(ctx, "EUR", "USD")
	require.NoError(t, err)
	assert.InDelta(t, 92*(1.0/85), rate, 1e-12)
}

const syncFeedSample = `<?xml version="1.0" encoding="windows-1251"?>
<CurrencyRates Name="Daily" Date="12.08.2026">
  <Currency ISOCode="USD">
    <Nominal>1</Nominal>
    <Value>87,4500</Value>
  </Currency>
  <Currency ISOCode="EUR">
    <Nominal>1</Nominal>
    <Value>94,2031</Value>
  </Currency>
  <Currency ISOCode="KZT">
    <Nominal>100</Nominal>
    <Value>17,2000</Value>
  </Currency>
  <Currency ISOCode="GBP">
    <Nominal>1</Nominal>
    <Value>110,1500</Value>
  </Currency>
  <Currency ISOCode="RUB">
    <Nominal>1</Nominal>
    <Value>not-a-number</Value>
  </Currency>
</CurrencyRates>`

func TestSyncFromFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(syncFeedSample))
	}))
	defer server.Close()

	ctx := context.Background()
	store := NewStore(newFakeRateRepo())
	sync := NewSynchronizer(store, nbkr.NewClient(server.URL))

	report, err := sync.SyncFromFeed(ctx)
	require.NoError(t, err)

	// GBP is not a supported currency, RUB has a malformed value
	assert.ElementsMatch(t, []string{"GBP", "RUB"}, report.Skipped)
	// USD, EUR, KZT each in both directions plus 6 ordered cross pairs
	assert.Equal(t, 12, report.PairsUpdated)

	rate, err := store.GetRate(ctx, "USD", "SOM")
	require.NoError(t, err)
	assert.Equal(t, 87.45, rate)

	// quoted per 100 units
	rate, err = store.GetRate(ctx, "KZT", "SOM")
	require.NoError(t, err)
	assert.InDelta(t, 0.172, rate, 1e-12)

	rate, err = store.GetRate(ctx, "USD", "KZT")
	require.NoError(t, err)
	assert.InDelta(t, 87.45/0.172, rate, 1e-9)
}

func TestSyncFromFeedFetchFailureIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sync := NewSynchronizer(NewStore(newFakeRateRepo()), nbkr.NewClient(server.URL))
	_, err := sync.SyncFromFeed(context.Background())
	assert.Error(t, err)
}
