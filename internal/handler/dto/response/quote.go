package response

import (
	"time"

	"puntoenvio-gateway/internal/domain/pricing"
)

type QuoteBreakdownResponse struct {
	Flete                  int64 `json:"flete"`
	Seguro                 int64 `json:"seguro"`
	GastosAdministrativos  int64 `json:"gastos_administrativos"`
	ServiciosTransportista int64 `json:"servicios_transportista"`
	Termosellado           int64 `json:"termosellado"`
	Subtotal               int64 `json:"subtotal"`
	IVA                    int64 `json:"iva"`
	Total                  int64 `json:"total"`
}

type QuoteResponse struct {
	Cotizacion           QuoteBreakdownResponse `json:"cotizacion"`
	Ruta                 string                 `json:"ruta"`
	RangoPeso            string                 `json:"rango_peso"`
	HorasEstimadas       int                    `json:"horas_estimadas"`
	FechaEntregaEstimada time.Time              `json:"fecha_entrega_estimada"`
	ValidoHasta          time.Time              `json:"valido_hasta"`
}

func FromQuote(q *pricing.Quote) *QuoteResponse {
	return &QuoteResponse{
		Cotizacion: QuoteBreakdownResponse{
			Flete:                  q.Breakdown.Freight,
			Seguro:                 q.Breakdown.Insurance,
			GastosAdministrativos:  q.Breakdown.AdministrativeFee,
			ServiciosTransportista: q.Breakdown.CarrierServices,
			Termosellado:           q.Breakdown.ThermosealFee,
			Subtotal:               q.Breakdown.Subtotal,
			IVA:                    q.Breakdown.Tax,
			Total:                  q.Breakdown.Total,
		},
		Ruta:                 q.Route,
		RangoPeso:            string(q.WeightBracket),
		HorasEstimadas:       q.EstimatedHours,
		FechaEntregaEstimada: q.EstimatedDelivery,
		ValidoHasta:          q.ValidUntil,
	}
}
