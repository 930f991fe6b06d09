package entity

import "fmt"

// Client mirrors a cliente record; read-only from the console's side.
type Client struct {
	ID           int64  `json:"id_cliente"`
	Cedula       RefID  `json:"cedula"`
	DV           string `json:"dv"`
	RazonSocial  string `json:"razon_social"`
	RegisteredAt string `json:"fecha_registro,omitempty"`
}

// RUC formats the tax id the way invoices print it: "cedula-dv".
func (c *Client) RUC() string {
	if c.DV == "" {
		return fmt.Sprintf("%d", c.Cedula.Int64())
	}
	return fmt.Sprintf("%d-%s", c.Cedula.Int64(), c.DV)
}

// Persona is the identity record behind clients and reservation holders.
type Persona struct {
	Cedula    int64  `json:"cedula"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// User is the authenticated console identity, fetched from users/current/.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Employee is the clerk record referenced by cash session headers.
type Employee struct {
	ID       int64  `json:"id_empleado"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Cargo    string `json:"cargo,omitempty"`
}

func (e *Employee) FullName() string {
	if e.Apellido == "" {
		return e.Nombre
	}
	return e.Nombre + " " + e.Apellido
}
