package response

import (
	"time"

	"puntoenvio-gateway/internal/domain/order"
	"puntoenvio-gateway/internal/usecase/queries"
)

type TrackingPartyResponse struct {
	Nombre    string `json:"nombre"`
	Localidad string `json:"localidad"`
}

type TrackingEventResponse struct {
	Estado string    `json:"estado"`
	Nota   *string   `json:"nota,omitempty"`
	Fecha  time.Time `json:"fecha"`
}

// TrackingDetailsResponse is only present for authenticated callers.
type TrackingDetailsResponse struct {
	TipoRetiro        string     `json:"tipo_retiro"`
	TipoEntrega       string     `json:"tipo_entrega"`
	FechaRetiro       *time.Time `json:"fecha_retiro,omitempty"`
	ReferenciaExterna *string    `json:"referencia_externa,omitempty"`
}

type TrackingPackageResponse struct {
	Descripcion    string   `json:"descripcion"`
	Peso           *float64 `json:"peso,omitempty"`
	ValorDeclarado *float64 `json:"valor_declarado,omitempty"`
	Fragil         *bool    `json:"fragil,omitempty"`
}

type TrackingResponse struct {
	NumeroOrden          string                   `json:"numero_orden"`
	Estado               string                   `json:"estado"`
	FechaCreacion        time.Time                `json:"fecha_creacion"`
	Remitente            TrackingPartyResponse    `json:"remitente"`
	Destinatario         TrackingPartyResponse    `json:"destinatario"`
	Historial            []TrackingEventResponse  `json:"historial"`
	FechaEntregaEstimada *time.Time               `json:"fecha_entrega_estimada,omitempty"`
	DetallesCompletos    *TrackingDetailsResponse `json:"detalles_completos,omitempty"`
	Paquete              *TrackingPackageResponse `json:"paquete,omitempty"`
}

// FromTrackingResult builds the public view by default; authenticated callers
// get full names plus the detalles_completos and paquete sections.
func FromTrackingResult(res *queries.TrackingResult, authenticated bool) *TrackingResponse {
	o := res.Order

	resp := &TrackingResponse{
		NumeroOrden:          o.Number,
		Estado:               o.Status,
		FechaCreacion:        o.CreatedAt,
		Historial:            make([]TrackingEventResponse, 0, len(res.History)),
		FechaEntregaEstimada: res.EstimatedDelivery,
	}

	senderName, recipientName := o.SenderName, o.RecipientName
	if !authenticated {
		senderName = order.PublicName(senderName)
		recipientName = order.PublicName(recipientName)
	}
	resp.Remitente = TrackingPartyResponse{Nombre: senderName, Localidad: o.SenderLocality}
	resp.Destinatario = TrackingPartyResponse{Nombre: recipientName, Localidad: o.RecipientLocality}

	for _, ev := range res.History {
		resp.Historial = append(resp.Historial, TrackingEventResponse{
			Estado: ev.Status,
			Nota:   ev.Note,
			Fecha:  ev.OccurredAt,
		})
	}

	if authenticated {
		resp.DetallesCompletos = &TrackingDetailsResponse{
			TipoRetiro:        o.PickupType,
			TipoEntrega:       o.DeliveryType,
			FechaRetiro:       o.PickupDate,
			ReferenciaExterna: o.ExternalRef,
		}
		pkg := &TrackingPackageResponse{Descripcion: o.PackageDescription}
		if o.Package != nil {
			pkg.Peso = &o.Package.WeightKg
			pkg.ValorDeclarado = &o.Package.DeclaredValue
			pkg.Fragil = &o.Package.Fragile
		}
		resp.Paquete = pkg
	}

	return resp
}
