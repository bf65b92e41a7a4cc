package resolver

import (
	"github.com/samandr77/microservices/factoring/internal/entity"
	"github.com/samandr77/microservices/factoring/pkg/formdata"
	"github.com/samandr77/microservices/factoring/pkg/schema"
)

var invoiceMapping = []wireName{
	{field: "sellerId", wire: "sellerId"},
	{field: "identifierType", wire: "buyerIdentifierType"},
	{field: "identifier", wire: "buyerIdentifier"},
	{field: "email", wire: "buyerEmail"},
	{field: "phone", wire: "buyerPhone"},
	{field: "invoiceNumber", wire: "invoiceNumber"},
	{field: "issueDate", wire: "invoiceIssueDate"},
	{field: "dueDate", wire: "invoiceDueDate"},
	{field: "amountWithoutTaxes", wire: "invoiceAmountWithoutTaxesCents"},
	{field: "amountOfTaxes", wire: "invoiceAmountOfTaxesCents"},
	{field: "file", wire: "invoiceFile"},
	{field: "additionalFiles", wire: "additionalFiles"},
	{field: "deliveryValidationDateTime", wire: "deliveryValidationDateTime"},
}

var createInvoice = resolver{
	schema: schema.New(
		stringField("sellerId", true),
		identifierTypeField("identifierType", true),
		identifierField("identifier", "identifierType", true),
		emailField("email", false),
		stringField("phone", false),
		numberOrStringField("invoiceNumber", true),
		dateTimeField("issueDate", true),
		dateTimeField("dueDate", true),
		amountField("amountWithoutTaxes", false),
		amountField("amountOfTaxes", true),
		fileField("file", "file", true),
		fileListField("additionalFiles", "additionalFiles"),
		dateTimeField("deliveryValidationDateTime", true),
	),
	mapping: invoiceMapping,
}

// NormalizeInvoice validates invoice creation input and returns wire-ready
// values under their caller-facing names. Amounts come out as decimal strings
// of minor currency units.
func NormalizeInvoice(input entity.Fields) (entity.Fields, error) {
	return createInvoice.normalize(input)
}

func InvoicePayload(fields entity.Fields) formdata.Value {
	return createInvoice.payload(fields)
}

func CreateInvoice(input entity.Fields) (formdata.Value, error) {
	return createInvoice.build(input)
}
