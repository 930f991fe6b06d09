package request

// OpenRegisterRequest is the open-register form. Amounts are integer
// guaraníes.
type OpenRegisterRequest struct {
	Name          string `json:"nombre" binding:"required"`
	OpeningAmount int64  `json:"monto_inicial" binding:"min=0"`
	EmployeeID    int64  `json:"empleado" binding:"required"`
}

// CloseRegisterRequest is the close-register form.
type CloseRegisterRequest struct {
	FinalAmount int64 `json:"monto_final" binding:"min=0"`
	Withdrawn   int64 `json:"monto_retirado" binding:"min=0"`
	EmployeeID  int64 `json:"empleado" binding:"required"`
}
