package render

// Column pairs a display label with the record field it reads. Field keys
// are the raw Mollie wire names (camelCase), never SDK-style translations.
type Column struct {
	Label string
	Key   string
}

var defaultProjection = []Column{{"ID", "id"}}

// listProjections defines the columns shown per resource type in table and
// CSV list views. Types without an entry fall back to defaultProjection.
var listProjections = map[string][]Column{
	"clients": {
		{"ID", "id"},
		{"Organization created at", "organisationCreatedAt"},
	},
	"customers": {
		{"ID", "id"},
		{"E-mail", "email"},
	},
	"orders": {
		{"ID", "id"},
		{"Amount", "amount"},
		{"Status", "status"},
		{"Paid at", "paidAt"},
	},
	"payments": {
		{"ID", "id"},
		{"Amount", "amount"},
		{"Status", "status"},
		{"Paid at", "paidAt"},
	},
	"profiles": {
		{"ID", "id"},
		{"Name", "name"},
		{"E-mail", "email"},
		{"Status", "status"},
	},
	"refunds": {
		{"ID", "id"},
		{"Amount", "amount"},
		{"Status", "status"},
		{"Description", "description"},
	},
}

func projectionFor(resourceName string) []Column {
	if columns, ok := listProjections[resourceName]; ok {
		return columns
	}
	return defaultProjection
}
