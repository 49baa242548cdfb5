package dogs

import (
	"encoding/json"
	"errors"
)

type dogJSON struct {
	Name  string `json:"name"`
	Breed Breed  `json:"breed"`
}

func (d Dog) MarshalJSON() ([]byte, error) {
	return json.Marshal(dogJSON{Name: d.name, Breed: d.breed})
}

// UnmarshalJSON aplica los campos presentes vía setters, con semántica PATCH:
// campo ausente = no tocar. Un valor que no es string (incluido null) se
// rechaza con el Kind del campo. Si algo falla, d no cambia.
func (d *Dog) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		return errors.New("dog: expected JSON object")
	}

	next := *d

	if v, ok := raw["name"]; ok {
		var s string
		if err := decodeText(v, &s); err != nil {
			return invalidName(string(v))
		}
		if err := next.SetName(s); err != nil {
			return err
		}
	}

	if v, ok := raw["breed"]; ok {
		var s string
		if err := decodeText(v, &s); err != nil {
			return invalidBreed(string(v))
		}
		if err := next.SetBreed(Breed(s)); err != nil {
			return err
		}
	}

	*d = next
	return nil
}

// decodeText falla con null, que json.Unmarshal aceptaría en silencio.
func decodeText(v json.RawMessage, out *string) error {
	if string(v) == "null" {
		return errors.New("null is not text")
	}
	return json.Unmarshal(v, out)
}
