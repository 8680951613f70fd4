package pricing

import (
	"context"
	"math"
	"time"

	"puntoenvio-gateway/internal/pkg/clock"
)

// RouteRate is a configured base rate for an exact province pair.
type RouteRate struct {
	BaseRate     float64
	TransitHours int
}

// RateSource provides the externally-owned rate tables. Lookups return nil
// (not an error) when no row matches; the engine then applies the fallback
// policy.
type RateSource interface {
	RouteRate(ctx context.Context, originProvince, destProvince string) (*RouteRate, error)
	LegRate(ctx context.Context, leg Leg, point ServicePoint, weightKg float64) (*float64, error)
}

// Policy carries the fallback values applied when the rate tables have no
// matching row. Values are configuration, not contract, except that the
// inter-province base must exceed the intra-province base.
type Policy struct {
	IntraProvinceBase   float64
	InterProvinceBase   float64
	WeightStepSurcharge float64
	DomicileLegBase     float64
	AgencyLegBase       float64
	InsuranceRate       float64
	AdministrativeRate  float64
	ThermosealRate      float64
	ThermosealCap       float64
	TaxRate             float64
	DefaultTransitHours int
	QuoteValidityDays   int
}

// Engine computes quotes as a pure function of the request, the rate tables
// and the policy. Quotes are never persisted.
type Engine struct {
	rates  RateSource
	policy Policy
	clock  clock.Clock
}

func NewEngine(rates RateSource, policy Policy, clk clock.Clock) *Engine {
	return &Engine{
		rates:  rates,
		policy: policy,
		clock:  clk,
	}
}

func (e *Engine) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	req = normalize(req)

	baseRate, transitHours, err := e.routeRate(ctx, req)
	if err != nil {
		return nil, err
	}

	freight := baseRate + e.weightSurcharge(req.WeightKg)

	carrier, err := e.carrierServices(ctx, req)
	if err != nil {
		return nil, err
	}

	insurance := req.DeclaredValue * e.policy.InsuranceRate
	adminFee := freight * e.policy.AdministrativeRate
	thermoseal := 0.0
	if req.Thermosealed {
		thermoseal = math.Min(freight*e.policy.ThermosealRate, e.policy.ThermosealCap)
	}

	breakdown := Breakdown{
		Freight:           roundUnit(freight),
		Insurance:         roundUnit(insurance),
		AdministrativeFee: roundUnit(adminFee),
		CarrierServices:   roundUnit(carrier),
		ThermosealFee:     roundUnit(thermoseal),
	}
	breakdown.Subtotal = breakdown.Freight + breakdown.Insurance +
		breakdown.AdministrativeFee + breakdown.ThermosealFee + breakdown.CarrierServices
	breakdown.Tax = roundUnit(float64(breakdown.Subtotal) * e.policy.TaxRate)
	breakdown.Total = breakdown.Subtotal + breakdown.Tax

	now := e.clock.Now()
	return &Quote{
		Breakdown:         breakdown,
		Route:             req.routeDescription(),
		WeightBracket:     BracketFor(req.WeightKg),
		EstimatedHours:    transitHours,
		EstimatedDelivery: now.Add(time.Duration(transitHours) * time.Hour),
		ValidUntil:        now.AddDate(0, 0, e.policy.QuoteValidityDays),
	}, nil
}

func (e *Engine) routeRate(ctx context.Context, req QuoteRequest) (float64, int, error) {
	route, err := e.rates.RouteRate(ctx, req.OriginProvince, req.DestProvince)
	if err != nil {
		return 0, 0, err
	}
	if route != nil {
		hours := route.TransitHours
		if hours <= 0 {
			hours = e.policy.DefaultTransitHours
		}
		return route.BaseRate, hours, nil
	}
	if req.isIntraProvince() {
		return e.policy.IntraProvinceBase, e.policy.DefaultTransitHours, nil
	}
	return e.policy.InterProvinceBase, e.policy.DefaultTransitHours, nil
}

// weightSurcharge adds a fixed increment per full or partial 5kg bucket beyond
// the first 5kg. Exactly 5kg carries no surcharge.
func (e *Engine) weightSurcharge(weightKg float64) float64 {
	if weightKg <= 5 {
		return 0
	}
	buckets := math.Ceil((weightKg - 5) / 5)
	return buckets * e.policy.WeightStepSurcharge
}

func (e *Engine) carrierServices(ctx context.Context, req QuoteRequest) (float64, error) {
	legs := []struct {
		leg   Leg
		point ServicePoint
	}{
		{LegPickup, req.PickupType},
		{LegDelivery, req.DeliveryType},
	}

	var total float64
	for _, l := range legs {
		rate, err := e.rates.LegRate(ctx, l.leg, l.point, req.WeightKg)
		if err != nil {
			return 0, err
		}
		if rate != nil {
			total += *rate
			continue
		}
		total += e.fallbackLegRate(l.point, req.WeightKg)
	}
	return total, nil
}

// fallbackLegRate is flat up to 5kg and scales with ceil(weight/5) above it.
func (e *Engine) fallbackLegRate(point ServicePoint, weightKg float64) float64 {
	base := e.policy.AgencyLegBase
	if point == ServiceDomicile {
		base = e.policy.DomicileLegBase
	}
	if weightKg <= 5 {
		return base
	}
	return math.Ceil(weightKg/5) * base
}

func normalize(req QuoteRequest) QuoteRequest {
	if !req.PickupType.IsValid() {
		req.PickupType = ServiceDomicile
	}
	if !req.DeliveryType.IsValid() {
		req.DeliveryType = ServiceDomicile
	}
	return req
}

func roundUnit(v float64) int64 {
	return int64(math.Round(v))
}
