package storelocator

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearbyStorePrices(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))

	quotes := svc.NearbyStorePrices(1, 29999, 3)
	require.Len(t, quotes, 3)

	assert.True(t, sort.SliceIsSorted(quotes, func(i, j int) bool {
		return quotes[i].Price < quotes[j].Price
	}))

	seen := map[int]bool{}
	for _, q := range quotes {
		assert.False(t, seen[q.StoreID], "store sampled twice")
		seen[q.StoreID] = true

		assert.NotEmpty(t, q.Store)
		assert.NotEmpty(t, q.Availability)
		assert.InDelta(t, 29999-q.Price, q.Savings, 0.01)
		assert.Equal(t, q.Price < 29999, q.PriceMatch)
		// price jitter stays within the modifier band
		assert.InDelta(t, 29999, q.Price, 29999*0.08)
	}
}

func TestNearbyStorePrices_LimitCapped(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))

	quotes := svc.NearbyStorePrices(1, 1000, 10)
	assert.Len(t, quotes, 4)
}

func TestStoreDetails(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))

	details := svc.StoreDetails(2)
	require.NotNil(t, details)
	assert.Equal(t, "MobileHub Plus", details.Name)
	assert.Equal(t, "456 Park Avenue, Westside", details.Address)
	assert.Equal(t, "3.5 km", details.Distance)
	assert.Regexp(t, `^\+1-555-\d{4}$`, details.Phone)
	assert.Contains(t, details.Services, "Price Match")

	assert.Nil(t, svc.StoreDetails(99))
}

func TestBestDeal(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))

	deal := svc.BestDeal(1, 20000)
	require.NotNil(t, deal.BestDeal)
	assert.Len(t, deal.AllStores, 4)
	assert.NotEmpty(t, deal.Reason)

	// the winner minimizes the price/distance blend over all quotes
	winnerScore := (deal.BestDeal.Price/20000)*0.7 + (distanceKm(deal.BestDeal.Distance)/10)*0.3
	for _, q := range deal.AllStores {
		score := (q.Price/20000)*0.7 + (distanceKm(q.Distance)/10)*0.3
		assert.LessOrEqual(t, winnerScore, score+1e-9)
	}
}

func TestDistanceKm(t *testing.T) {
	assert.Equal(t, 2.1, distanceKm("2.1 km"))
	assert.Equal(t, 0.0, distanceKm("unknown"))
}
