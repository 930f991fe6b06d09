package request

// InvoiceHeaderRequest updates the header block of a draft. Empty fields are
// left untouched.
type InvoiceHeaderRequest struct {
	Number string `json:"numero"`
	Date   string `json:"fecha"`
	Terms  string `json:"termino"`
}

// InvoiceClientRequest sets the client block by hand.
type InvoiceClientRequest struct {
	RUC  string `json:"ruc" binding:"required"`
	Name string `json:"nombre" binding:"required"`
}

// InvoiceItemRequest appends a hand-typed line item.
type InvoiceItemRequest struct {
	Code        string `json:"codigo" binding:"required"`
	Description string `json:"descripcion" binding:"required"`
	Quantity    int    `json:"cantidad"`
	Price       int64  `json:"precio" binding:"min=0"`
}

// InvoiceQuantityRequest edits a line's quantity in place.
type InvoiceQuantityRequest struct {
	Quantity int `json:"cantidad" binding:"required,min=1"`
}

// PickRequest references a backend record chosen in a selector modal.
type PickRequest struct {
	ID int64 `json:"id" binding:"required"`
}
