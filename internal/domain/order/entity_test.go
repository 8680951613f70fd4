package order_test

import (
	"testing"
	"time"

	"puntoenvio-gateway/internal/domain/order"
	"puntoenvio-gateway/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		year int
		seq  int64
		want string
	}{
		{2025, 1, "PE-2025-000001"},
		{2025, 123456, "PE-2025-123456"},
		{2026, 999999, "PE-2026-999999"},
		{2026, 1000001, "PE-2026-1000001"}, // widens instead of wrapping into a taken number
	}

	for _, tc := range cases {
		got := order.FormatNumber(tc.year, tc.seq)
		assert.Equal(t, tc.want, got)
		assert.True(t, order.IsValidNumber(got), "%s must match the public pattern", got)
	}
}

func TestIsValidNumber(t *testing.T) {
	assert.True(t, order.IsValidNumber("PE-2025-000042"))
	assert.True(t, order.IsValidNumber("PE-2026-1000001"))

	invalid := []string{
		"",
		"PE-2025-42",
		"PE-25-000042",
		"pe-2025-000042",
		"XX-2025-000042",
		"PE-2025-000042extra",
	}
	for _, s := range invalid {
		assert.False(t, order.IsValidNumber(s), "%q must not match", s)
	}
}

func TestDraftMissingFields(t *testing.T) {
	valid := order.Draft{
		Sender:             order.Party{Name: "Juan Pérez"},
		Recipient:          order.Party{Name: "María Gómez"},
		PackageDescription: "Documentos",
		Service:            order.Service{PickupType: pricing.ServiceDomicile},
	}
	assert.Empty(t, valid.MissingFields())

	cases := []struct {
		name   string
		mutate func(d *order.Draft)
		want   []string
	}{
		{
			name:   "missing recipient name",
			mutate: func(d *order.Draft) { d.Recipient.Name = "" },
			want:   []string{"destinatario.nombre"},
		},
		{
			name:   "whitespace sender name",
			mutate: func(d *order.Draft) { d.Sender.Name = "   " },
			want:   []string{"remitente.nombre"},
		},
		{
			name:   "invalid pickup type",
			mutate: func(d *order.Draft) { d.Service.PickupType = "sucursal" },
			want:   []string{"servicio.tipo_retiro"},
		},
		{
			name: "multiple missing, stable order",
			mutate: func(d *order.Draft) {
				d.Sender.Name = ""
				d.PackageDescription = ""
			},
			want: []string{"remitente.nombre", "paquete.descripcion"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := valid
			tc.mutate(&draft)
			assert.Equal(t, tc.want, draft.MissingFields())
		})
	}
}

func TestNewOrderStartsPending(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	draft := order.Draft{
		Sender:             order.Party{Name: "Juan Pérez"},
		Recipient:          order.Party{Name: "María Gómez"},
		PackageDescription: "Documentos",
		Service:            order.Service{PickupType: pricing.ServiceDomicile, DeliveryType: pricing.ServiceAgency},
	}

	o := order.NewOrder("PE-2025-000001", draft, now)
	require.NotNil(t, o)

	assert.Equal(t, order.StatusPending, o.Status())
	assert.Equal(t, "PE-2025-000001", o.Number())
	assert.Equal(t, now, o.CreatedAt())
	assert.NotEqual(t, o.ID().String(), "00000000-0000-0000-0000-000000000000")
}

func TestPublicName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Juan Pérez", "Juan P."},
		{"María de los Ángeles", "María d."},
		{"Cher", "Cher"},
		{"", ""},
		{"  ", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, order.PublicName(tc.in), "input %q", tc.in)
	}
}
