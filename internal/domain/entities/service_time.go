package entities

// ServiceTimeMapping maps a contracted (hours, minutes) time slot to the
// Siigo product used to invoice it. Prices are tax-inclusive.

type ServiceTimeMapping struct {
	Hours       int
	Minutes     int
	ProductCode string
	Description string
	Price       float64
}

// Reserved product for operator-priced extended time. The price comes
// from the form, never from this table.
const (
	ExtendedTimeProductCode = "003"
	ExtendedTimeDescription = "Tiempo Extendido"
)

// Defaults for unmapped time pairs.
const (
	DefaultProductCode        = "001"
	DefaultServiceDescription = "Servicio de transporte en scooter"
)

// Fixed-slot offerings as configured in Siigo. Each slot is listed under
// both spellings the form can produce: canonical (h, 0) and the legacy
// (h, h*60) rows that stored total minutes in the minutes field.
var serviceTimeMappings = []ServiceTimeMapping{
	{Hours: 0, Minutes: 30, ProductCode: "001", Description: "Recorrido de 30 minutos", Price: 30000},
	{Hours: 1, Minutes: 0, ProductCode: "002", Description: "Recorrido de 1 hora", Price: 40000},
	{Hours: 1, Minutes: 60, ProductCode: "002", Description: "Recorrido de 1 hora", Price: 40000},
	{Hours: 2, Minutes: 0, ProductCode: "004", Description: "Recorrido de 2 horas", Price: 80000},
	{Hours: 2, Minutes: 120, ProductCode: "004", Description: "Recorrido de 2 horas", Price: 80000},
}

// ServiceMapping returns the fixed-slot entry for the pair, or false when
// the pair is unmapped (extended/custom time).
func ServiceMapping(hours, minutes int) (ServiceTimeMapping, bool) {
	for _, m := range serviceTimeMappings {
		if m.Hours == hours && m.Minutes == minutes {
			return m, true
		}
	}
	return ServiceTimeMapping{}, false
}

// ProductCodeByTime returns the Siigo product code for the pair, falling
// back to the default product for unmapped pairs.
func ProductCodeByTime(hours, minutes int) string {
	if m, ok := ServiceMapping(hours, minutes); ok {
		return m.ProductCode
	}
	return DefaultProductCode
}

// ServiceDescriptionByTime returns the invoice line description for the pair.
func ServiceDescriptionByTime(hours, minutes int) string {
	if m, ok := ServiceMapping(hours, minutes); ok {
		return m.Description
	}
	return DefaultServiceDescription
}

// FixedSlots lists the distinct offerings for the pricing endpoint.
func FixedSlots() []ServiceTimeMapping {
	seen := make(map[string]bool, len(serviceTimeMappings))
	out := make([]ServiceTimeMapping, 0, len(serviceTimeMappings))
	for _, m := range serviceTimeMappings {
		if seen[m.ProductCode] {
			continue
		}
		seen[m.ProductCode] = true
		out = append(out, m)
	}
	return out
}

// ServiceTimeInMinutes converts a contracted (hours, minutes) pair into
// total minutes.
func ServiceTimeInMinutes(hours, minutes int) int {
	return hours*60 + minutes
}
