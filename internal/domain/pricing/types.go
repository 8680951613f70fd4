package pricing

import (
	"strings"
	"time"
)

// ServicePoint is one side of a leg: the shipment is collected at / delivered
// to either a domicile or a network agency.
type ServicePoint string

const (
	ServiceDomicile ServicePoint = "domicilio"
	ServiceAgency   ServicePoint = "agencia"
)

func (s ServicePoint) IsValid() bool {
	switch s {
	case ServiceDomicile, ServiceAgency:
		return true
	default:
		return false
	}
}

type Leg string

const (
	LegPickup   Leg = "pickup"
	LegDelivery Leg = "delivery"
)

// WeightBracket is the display band for tiered pricing. Boundaries are
// inclusive to the lower bracket: exactly 5kg falls in "0-5".
type WeightBracket string

const (
	Bracket0to5   WeightBracket = "0-5"
	Bracket5to10  WeightBracket = "5-10"
	Bracket10to15 WeightBracket = "10-15"
	Bracket15to20 WeightBracket = "15-20"
	Bracket20to25 WeightBracket = "20-25"
	BracketOver25 WeightBracket = "25+"
)

func BracketFor(weightKg float64) WeightBracket {
	switch {
	case weightKg <= 5:
		return Bracket0to5
	case weightKg <= 10:
		return Bracket5to10
	case weightKg <= 15:
		return Bracket10to15
	case weightKg <= 20:
		return Bracket15to20
	case weightKg <= 25:
		return Bracket20to25
	default:
		return BracketOver25
	}
}

type QuoteRequest struct {
	OriginProvince  string
	OriginLocality  string
	DestProvince    string
	DestLocality    string
	WeightKg        float64
	DeclaredValue   float64
	Thermosealed    bool
	PickupType      ServicePoint
	DeliveryType    ServicePoint
}

// MissingFields returns the wire names of absent required fields, in a stable
// order, so validation responses can name them programmatically.
func (r QuoteRequest) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.OriginProvince) == "" {
		missing = append(missing, "origen.provincia")
	}
	if strings.TrimSpace(r.DestProvince) == "" {
		missing = append(missing, "destino.provincia")
	}
	if r.WeightKg <= 0 {
		missing = append(missing, "paquete.peso")
	}
	if r.DeclaredValue <= 0 {
		missing = append(missing, "paquete.valor_declarado")
	}
	return missing
}

func (r QuoteRequest) isIntraProvince() bool {
	return strings.EqualFold(strings.TrimSpace(r.OriginProvince), strings.TrimSpace(r.DestProvince))
}

func (r QuoteRequest) routeDescription() string {
	return placeLabel(r.OriginLocality, r.OriginProvince) + " - " + placeLabel(r.DestLocality, r.DestProvince)
}

func placeLabel(locality, province string) string {
	locality = strings.TrimSpace(locality)
	province = strings.TrimSpace(province)
	if locality == "" {
		return province
	}
	return locality + ", " + province
}

// Breakdown line items are rounded to whole currency units independently;
// Subtotal is the sum of the rounded items and Total = Subtotal + Tax. Callers
// must not re-derive totals from unrounded intermediates.
type Breakdown struct {
	Freight           int64
	Insurance         int64
	AdministrativeFee int64
	CarrierServices   int64
	ThermosealFee     int64
	Subtotal          int64
	Tax               int64
	Total             int64
}

type Quote struct {
	Breakdown         Breakdown
	Route             string
	WeightBracket     WeightBracket
	EstimatedHours    int
	EstimatedDelivery time.Time
	ValidUntil        time.Time
}
