package response

import (
	"time"

	"puntoenvio-gateway/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateShipmentResponse struct {
	OrdenID       uuid.UUID `json:"orden_id"`
	NumeroOrden   string    `json:"numero_orden"`
	Estado        string    `json:"estado"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

func FromShipmentResult(res *commands.CreateShipmentResult) *CreateShipmentResponse {
	return &CreateShipmentResponse{
		OrdenID:       res.OrderID,
		NumeroOrden:   res.OrderNumber,
		Estado:        string(res.Status),
		FechaCreacion: res.CreatedAt,
	}
}
