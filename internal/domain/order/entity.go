package order

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"puntoenvio-gateway/internal/domain/pricing"

	"github.com/google/uuid"
)

var numberPattern = regexp.MustCompile(`^PE-\d{4}-\d{6,}$`)

// FormatNumber renders a sequence value as a public order number. The
// sequence is externally owned and strictly increasing, which keeps numbers
// globally unique; the numeric part is zero-padded to six digits and widens
// beyond a million draws rather than wrapping into collisions.
func FormatNumber(year int, seq int64) string {
	return fmt.Sprintf("PE-%04d-%06d", year, seq)
}

func IsValidNumber(s string) bool {
	return numberPattern.MatchString(s)
}

// Party is one endpoint of a shipment: sender or recipient.
type Party struct {
	Name     string
	Address  string
	Locality string
	Province string
	Phone    string
	Email    string
}

// PackageDetails is the optional sub-record with physical attributes. The
// textual description always lives on the order itself.
type PackageDetails struct {
	WeightKg      float64
	DeclaredValue float64
	HeightCm      *float64
	WidthCm       *float64
	LengthCm      *float64
	Fragile       bool
}

type Service struct {
	PickupType   pricing.ServicePoint
	DeliveryType pricing.ServicePoint
}

// Draft is a validated-but-unpersisted inbound shipment request.
type Draft struct {
	Sender             Party
	Recipient          Party
	Service            Service
	PackageDescription string
	Package            *PackageDetails
	PickupDate         *time.Time
	ExternalRef        *string
}

// MissingFields returns wire names of absent required fields in stable order.
func (d Draft) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(d.Sender.Name) == "" {
		missing = append(missing, "remitente.nombre")
	}
	if strings.TrimSpace(d.Recipient.Name) == "" {
		missing = append(missing, "destinatario.nombre")
	}
	if strings.TrimSpace(d.PackageDescription) == "" {
		missing = append(missing, "paquete.descripcion")
	}
	if !d.Service.PickupType.IsValid() {
		missing = append(missing, "servicio.tipo_retiro")
	}
	return missing
}

type Order struct {
	id                 uuid.UUID
	number             string
	sender             Party
	recipient          Party
	service            Service
	packageDescription string
	pkg                *PackageDetails
	pickupDate         *time.Time
	externalRef        *string
	status             Status
	createdAt          time.Time
}

func NewOrder(number string, draft Draft, now time.Time) *Order {
	return &Order{
		id:                 uuid.New(),
		number:             number,
		sender:             draft.Sender,
		recipient:          draft.Recipient,
		service:            draft.Service,
		packageDescription: draft.PackageDescription,
		pkg:                draft.Package,
		pickupDate:         draft.PickupDate,
		externalRef:        draft.ExternalRef,
		status:             StatusPending,
		createdAt:          now,
	}
}

func (o *Order) ID() uuid.UUID              { return o.id }
func (o *Order) Number() string             { return o.number }
func (o *Order) Sender() Party              { return o.sender }
func (o *Order) Recipient() Party           { return o.recipient }
func (o *Order) Service() Service           { return o.service }
func (o *Order) PackageDescription() string { return o.packageDescription }
func (o *Order) Package() *PackageDetails   { return o.pkg }
func (o *Order) PickupDate() *time.Time     { return o.pickupDate }
func (o *Order) ExternalRef() *string       { return o.externalRef }
func (o *Order) Status() Status             { return o.status }
func (o *Order) CreatedAt() time.Time       { return o.createdAt }

// PublicName reduces a full name for unauthenticated tracking views:
// "Juan Pérez" becomes "Juan P.".
func PublicName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	if len(fields) == 1 {
		return fields[0]
	}
	initial := []rune(fields[1])
	return fields[0] + " " + string(initial[0]) + "."
}
