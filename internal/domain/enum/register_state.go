package enum

import (
	"encoding/json"
	"strings"
)

// RegisterState represents the lifecycle state of a cash register.
// The wire values are the Spanish strings the backend stores.
type RegisterState int

const (
	RegisterStateOpen   RegisterState = 0
	RegisterStateClosed RegisterState = 1
)

func (s RegisterState) String() string {
	return [...]string{"Abierta", "Cerrada"}[s]
}

func (s RegisterState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *RegisterState) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch strings.ToLower(str) {
	case "abierta":
		*s = RegisterStateOpen
	case "cerrada":
		*s = RegisterStateClosed
	}
	return nil
}
