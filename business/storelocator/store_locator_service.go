package storelocator

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"sync"

	"sparkAgent/domain"
)

type store struct {
	id            int
	name          string
	address       string
	distance      string
	rating        float64
	priceModifier float64
}

var stores = []store{
	{1, "TechZone Express", "123 Main Street, Downtown", "2.1 km", 4.5, 0.95},
	{2, "MobileHub Plus", "456 Park Avenue, Westside", "3.5 km", 4.2, 1.02},
	{3, "SmartStore Central", "789 Tech Boulevard, North Point", "5.8 km", 4.7, 0.98},
	{4, "Digital Dreams", "321 Innovation Drive, Tech Park", "7.2 km", 4.3, 1.05},
}

var availabilityOptions = []string{
	"In Stock",
	"In Stock",
	"In Stock", // weighted so stock-outs stay rare
	"Limited Stock",
	"Display Unit Available",
	"Available for Order",
}

// Service simulates nearby stores carrying catalog products. Store
// selection, price jitter and availability come from the injected
// random source so tests can pin outputs with a fixed seed.
type Service struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(rng *rand.Rand) *Service {
	return &Service{rng: rng}
}

// NearbyStorePrices quotes up to limit randomly-chosen stores for a
// product, each with a jittered price around its modifier, sorted
// cheapest first.
func (s *Service) NearbyStorePrices(productID int, onlinePrice float64, limit int) []domain.StoreQuote {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := limit
	if n > len(stores) {
		n = len(stores)
	}

	quotes := make([]domain.StoreQuote, 0, n)
	for _, idx := range s.rng.Perm(len(stores))[:n] {
		st := stores[idx]

		// base modifier plus -2%..+2% jitter
		modifier := st.priceModifier + (s.rng.Float64()*0.04 - 0.02)
		price := round2(onlinePrice * modifier)

		quotes = append(quotes, domain.StoreQuote{
			Store:        st.name,
			StoreID:      st.id,
			Distance:     st.distance,
			Address:      st.address,
			Price:        price,
			Availability: availabilityOptions[s.rng.Intn(len(availabilityOptions))],
			Rating:       st.rating,
			Savings:      round2(onlinePrice - price),
			PriceMatch:   price < onlinePrice,
		})
	}

	sort.Slice(quotes, func(i, j int) bool { return quotes[i].Price < quotes[j].Price })

	return quotes
}

// StoreDetails returns the full record for a store, nil if unknown.
func (s *Service) StoreDetails(storeID int) *domain.StoreDetails {
	for _, st := range stores {
		if st.id != storeID {
			continue
		}

		s.mu.Lock()
		phone := fmt.Sprintf("+1-555-%04d", 1000+s.rng.Intn(9000))
		s.mu.Unlock()

		return &domain.StoreDetails{
			ID:             st.id,
			Name:           st.name,
			Address:        st.address,
			Distance:       st.distance,
			Rating:         st.rating,
			Hours:          "Mon-Sat: 10:00 AM - 9:00 PM, Sun: 11:00 AM - 7:00 PM",
			Phone:          phone,
			Services:       []string{"Price Match", "Extended Warranty", "Free Setup", "Trade-In"},
			PaymentOptions: []string{"Cash", "Credit/Debit", "EMI Available", "Digital Wallets"},
		}
	}

	return nil
}

// BestDeal ranks all stores by a 70% price / 30% distance blend
// (lower is better) and explains the winner.
func (s *Service) BestDeal(productID int, onlinePrice float64) domain.BestDeal {
	quotes := s.NearbyStorePrices(productID, onlinePrice, len(stores))
	if len(quotes) == 0 {
		return domain.BestDeal{Reason: "No nearby stores available"}
	}

	best := 0
	bestScore := math.MaxFloat64
	for i, quote := range quotes {
		score := (quote.Price/onlinePrice)*0.7 + (distanceKm(quote.Distance)/10)*0.3
		if score < bestScore {
			bestScore = score
			best = i
		}
	}

	winner := quotes[best]
	return domain.BestDeal{
		BestDeal:  &winner,
		Reason:    dealReason(winner, onlinePrice),
		AllStores: quotes,
	}
}

func dealReason(quote domain.StoreQuote, onlinePrice float64) string {
	switch {
	case quote.Savings > 0:
		return fmt.Sprintf("Save $%.2f at %s (%s away)", quote.Savings, quote.Store, quote.Distance)
	case quote.Price == onlinePrice:
		return fmt.Sprintf("Same price as online but available immediately at %s (%s away)", quote.Store, quote.Distance)
	default:
		return fmt.Sprintf("%s is closest (%s) with %s", quote.Store, quote.Distance, strings.ToLower(quote.Availability))
	}
}

func distanceKm(distance string) float64 {
	fields := strings.Fields(distance)
	if len(fields) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
