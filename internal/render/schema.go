package render

// itemSchemas lists, per resource token (the record's "resource" field),
// the fields shown in the single-item table view and the order they appear
// in. Keeping this explicit makes the excluded fields (links, embedded
// sub-resources, internal markers) a reviewable list instead of a runtime
// name-pattern heuristic. Fields absent from a record are skipped.
var itemSchemas = map[string][]string{
	"payment": {
		"id", "mode", "createdAt", "status", "isCancelable", "paidAt",
		"canceledAt", "expiresAt", "amount", "amountRefunded",
		"amountRemaining", "settlementAmount", "description", "method",
		"locale", "countryCode", "profileId", "customerId", "mandateId",
		"subscriptionId", "settlementId", "orderId", "sequenceType",
		"redirectUrl", "webhookUrl", "metadata",
	},
	"customer": {
		"id", "mode", "name", "email", "locale", "metadata", "createdAt",
	},
	"order": {
		"id", "mode", "profileId", "method", "amount", "amountCaptured",
		"amountRefunded", "status", "isCancelable", "orderNumber", "locale",
		"metadata", "createdAt", "expiresAt", "paidAt", "redirectUrl",
		"webhookUrl",
	},
	"profile": {
		"id", "mode", "name", "website", "email", "phone",
		"businessCategory", "status", "createdAt",
	},
	"refund": {
		"id", "amount", "status", "description", "paymentId",
		"settlementId", "settlementAmount", "metadata", "createdAt",
	},
	"client": {
		"id", "organisationCreatedAt",
	},
}

// listResourceToToken maps plural list resource names to the singular
// resource token records carry in their "resource" field.
var listResourceToToken = map[string]string{
	"payments":  "payment",
	"refunds":   "refund",
	"customers": "customer",
	"orders":    "order",
	"profiles":  "profile",
	"clients":   "client",
}
