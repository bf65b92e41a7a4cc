package resolver

import (
	"github.com/samandr77/microservices/factoring/internal/entity"
	"github.com/samandr77/microservices/factoring/pkg/formdata"
	"github.com/samandr77/microservices/factoring/pkg/schema"
)

var sellerMapping = []wireName{
	{field: "phone", wire: "ownerMobilePhone"},
	{field: "email", wire: "ownerEmail"},
	{field: "givenName", wire: "ownerFirstName"},
	{field: "familyName", wire: "ownerLastName"},
	{field: "nationality", wire: "ownerNationality"},
	{field: "birthDate", wire: "ownerBirthDate"},
	{field: "birthCity", wire: "ownerBirthCity"},
	{field: "birthCountry", wire: "ownerBirthCountry"},
	{field: "addressFirst", wire: "ownerHomeAddress"},
	{field: "addressCity", wire: "ownerHomeCity"},
	{field: "addressPostal", wire: "ownerHomePostCode"},
	{field: "addressCountry", wire: "ownerHomeCountry"},
	{field: "identifierType", wire: "identifierType"},
	{field: "identifier", wire: "identifier"},
	{field: "iban", wire: "iban"},
	{field: "idFileFront", wire: "ownerIdFile"},
	{field: "idFileBack", wire: "ownerIdVerso"},
	{field: "termsAcceptationDate", wire: "dimplTermsAcceptationDateTime"},
}

// sellerSchema lists seller fields. On creation the owner contact, the company
// identification, the bank account, the identity document front and the terms
// acceptance are mandatory. Updates require nothing.
func sellerSchema(create bool) *schema.Schema {
	return schema.New(
		stringField("phone", create),
		emailField("email", create),
		stringField("givenName", create),
		stringField("familyName", create),
		stringField("nationality", false),
		dateTimeField("birthDate", false),
		stringField("birthCity", false),
		countryField("birthCountry"),
		stringField("addressFirst", false),
		stringField("addressCity", false),
		numberOrStringField("addressPostal", false),
		countryField("addressCountry"),
		identifierTypeField("identifierType", create),
		identifierField("identifier", "identifierType", create),
		ibanField("iban", create),
		fileField("idFileFront", "ownerIdFile", create),
		fileField("idFileBack", "ownerIdVerso", false),
		dateTimeField("termsAcceptationDate", create),
	)
}

var (
	createSeller = resolver{schema: sellerSchema(true), mapping: sellerMapping}
	updateSeller = resolver{schema: sellerSchema(false), mapping: sellerMapping}
)

// NormalizeSeller validates seller creation input and returns wire-ready values
// under their caller-facing names.
func NormalizeSeller(input entity.Fields) (entity.Fields, error) {
	return createSeller.normalize(input)
}

// NormalizeSellerUpdate is NormalizeSeller for partial updates.
func NormalizeSellerUpdate(input entity.Fields) (entity.Fields, error) {
	return updateSeller.normalize(input)
}

// SellerPayload builds the multipart payload of already normalized seller fields.
func SellerPayload(fields entity.Fields) formdata.Value {
	return createSeller.payload(fields)
}

func CreateSeller(input entity.Fields) (formdata.Value, error) {
	return createSeller.build(input)
}

func UpdateSeller(input entity.Fields) (formdata.Value, error) {
	return updateSeller.build(input)
}
