package entity

// InvoiceStatus is the lifecycle state inferred from an invoice response.
type InvoiceStatus string

const (
	InvoiceStatusProcessing InvoiceStatus = "PROCESSING"
	InvoiceStatusAccepted   InvoiceStatus = "ACCEPTED"
	InvoiceStatusPending    InvoiceStatus = "PENDING"
	InvoiceStatusRefused    InvoiceStatus = "REFUSED"
	InvoiceStatusPaid       InvoiceStatus = "PAID"
	InvoiceStatusLate       InvoiceStatus = "LATE"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

// Invoice is a remote invoice response together with its classified status.
type Invoice struct {
	Status InvoiceStatus
	Data   Fields
}

// ID returns the remote invoice identifier. Invoice bodies carry it as "id",
// creation answers and webhook events as "invoiceId".
func (i Invoice) ID() string {
	return i.Data.String("id", "invoiceId")
}

func (i Invoice) IsZero() bool {
	return i.Status == "" && len(i.Data) == 0
}

// Fields returns the remote data with the classified status under "status".
func (i Invoice) Fields() Fields {
	out := i.Data.Clone()
	out["status"] = i.Status.String()

	return out
}

type Seller struct {
	Data Fields
}

func (s Seller) ID() string {
	return s.Data.String("sellerId", "id")
}
