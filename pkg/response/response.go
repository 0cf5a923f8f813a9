package response

// ErrorBody is the wire shape of a 500: the underlying failure message under
// an "error" key.
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody is the wire shape of a 404 and of bare confirmations.
type MessageBody struct {
	Message string `json:"message"`
}

// CreatedBody confirms a create and carries the assigned id.
type CreatedBody struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// CreatedInvoiceBody additionally carries the generated invoice number.
type CreatedInvoiceBody struct {
	Message       string `json:"message"`
	ID            uint   `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
}

// AffectedBody confirms an update or delete with the affected row count.
type AffectedBody struct {
	Message      string `json:"message"`
	AffectedRows int64  `json:"affectedRows"`
}

func Error(msg string) ErrorBody {
	return ErrorBody{Error: msg}
}

func Message(msg string) MessageBody {
	return MessageBody{Message: msg}
}

func Created(msg string, id uint) CreatedBody {
	return CreatedBody{Message: msg, ID: id}
}

func CreatedInvoice(msg string, id uint, number string) CreatedInvoiceBody {
	return CreatedInvoiceBody{Message: msg, ID: id, InvoiceNumber: number}
}

func Affected(msg string, rows int64) AffectedBody {
	return AffectedBody{Message: msg, AffectedRows: rows}
}
