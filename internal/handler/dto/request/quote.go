package request

import (
	"puntoenvio-gateway/internal/domain/pricing"
)

// Required-field validation happens in the usecase via MissingFields, not via
// binding tags, so 400 responses can name every absent field.
type PlaceRequest struct {
	Provincia string `json:"provincia"`
	Localidad string `json:"localidad"`
}

type QuotePackageRequest struct {
	Peso           float64 `json:"peso"`
	ValorDeclarado float64 `json:"valor_declarado"`
	Termosellado   bool    `json:"termosellado"`
}

type ServiceRequest struct {
	TipoRetiro  string `json:"tipo_retiro"`
	TipoEntrega string `json:"tipo_entrega"`
}

type QuoteRequest struct {
	Origen   PlaceRequest        `json:"origen"`
	Destino  PlaceRequest        `json:"destino"`
	Paquete  QuotePackageRequest `json:"paquete"`
	Servicio ServiceRequest      `json:"servicio"`
}

func (r QuoteRequest) ToDomain() pricing.QuoteRequest {
	return pricing.QuoteRequest{
		OriginProvince: r.Origen.Provincia,
		OriginLocality: r.Origen.Localidad,
		DestProvince:   r.Destino.Provincia,
		DestLocality:   r.Destino.Localidad,
		WeightKg:       r.Paquete.Peso,
		DeclaredValue:  r.Paquete.ValorDeclarado,
		Thermosealed:   r.Paquete.Termosellado,
		PickupType:     pricing.ServicePoint(r.Servicio.TipoRetiro),
		DeliveryType:   pricing.ServicePoint(r.Servicio.TipoEntrega),
	}
}
