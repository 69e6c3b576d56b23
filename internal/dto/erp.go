package dto

// ERPPage is the paged envelope every ERP export endpoint returns.
type ERPPage[T any] struct {
	Data     []T  `json:"data"`
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	HasMore  bool `json:"has_more"`
}

// ERPCustomer is a directory entry as the ERP exports it.
type ERPCustomer struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	Status      string `json:"status,omitempty"`
}

// ERPInvoice is a receivable document as the ERP exports it. Date and Amount
// arrive as raw strings; normalization happens at the sync boundary, nowhere
// else.
type ERPInvoice struct {
	Number     string `json:"number"`
	CustomerID string `json:"customer_id"`
	Date       string `json:"date"`
	Amount     string `json:"amount"`
	Status     string `json:"status,omitempty"`
}

// ERPPayment is a customer payment as the ERP exports it.
type ERPPayment struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	Date            string `json:"date"`
	Amount          string `json:"amount"`
}

// ERPApplicationLink ties an exported payment to a document it was applied
// against.
type ERPApplicationLink struct {
	PaymentID  string `json:"payment_id"`
	DocType    string `json:"doc_type"`
	AppliedTo  string `json:"applied_to,omitempty"`
	AmountPaid string `json:"amount_paid"`
}

// ERPErrorResponse is the gateway's error envelope.
type ERPErrorResponse struct {
	Error ERPErrorDetail `json:"error"`
}

type ERPErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
