package request

import (
	"strings"
	"time"

	"puntoenvio-gateway/internal/domain/order"
	"puntoenvio-gateway/internal/domain/pricing"
)

type PartyRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Localidad string `json:"localidad"`
	Provincia string `json:"provincia"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
}

type ShipmentPackageRequest struct {
	Descripcion    string   `json:"descripcion"`
	Peso           *float64 `json:"peso"`
	ValorDeclarado *float64 `json:"valor_declarado"`
	Alto           *float64 `json:"alto"`
	Ancho          *float64 `json:"ancho"`
	Largo          *float64 `json:"largo"`
	Fragil         bool     `json:"fragil"`
}

type CreateShipmentRequest struct {
	Remitente         PartyRequest           `json:"remitente"`
	Destinatario      PartyRequest           `json:"destinatario"`
	Paquete           ShipmentPackageRequest `json:"paquete"`
	Servicio          ServiceRequest         `json:"servicio"`
	FechaRetiro       *time.Time             `json:"fecha_retiro"`
	ReferenciaExterna *string                `json:"referencia_externa"`
}

func (r CreateShipmentRequest) ToDraft() order.Draft {
	draft := order.Draft{
		Sender:             r.Remitente.toParty(),
		Recipient:          r.Destinatario.toParty(),
		PackageDescription: strings.TrimSpace(r.Paquete.Descripcion),
		PickupDate:         r.FechaRetiro,
		ExternalRef:        trimmedPtr(r.ReferenciaExterna),
	}

	draft.Service = order.Service{
		PickupType:   pricing.ServicePoint(r.Servicio.TipoRetiro),
		DeliveryType: pricing.ServicePoint(r.Servicio.TipoEntrega),
	}
	// tipo_retiro stays as sent so validation can flag it; an absent
	// tipo_entrega defaults to domicile.
	if !draft.Service.DeliveryType.IsValid() {
		draft.Service.DeliveryType = pricing.ServiceDomicile
	}

	// The physical sub-record is only persisted when both measures are given.
	if r.Paquete.Peso != nil && r.Paquete.ValorDeclarado != nil {
		draft.Package = &order.PackageDetails{
			WeightKg:      *r.Paquete.Peso,
			DeclaredValue: *r.Paquete.ValorDeclarado,
			HeightCm:      r.Paquete.Alto,
			WidthCm:       r.Paquete.Ancho,
			LengthCm:      r.Paquete.Largo,
			Fragile:       r.Paquete.Fragil,
		}
	}

	return draft
}

func (p PartyRequest) toParty() order.Party {
	return order.Party{
		Name:     strings.TrimSpace(p.Nombre),
		Address:  strings.TrimSpace(p.Direccion),
		Locality: strings.TrimSpace(p.Localidad),
		Province: strings.TrimSpace(p.Provincia),
		Phone:    strings.TrimSpace(p.Telefono),
		Email:    strings.TrimSpace(p.Email),
	}
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
