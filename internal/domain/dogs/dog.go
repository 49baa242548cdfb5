package dogs

import (
	"fmt"
	"unicode/utf8"
)

// New construye un Dog pasando ambos campos por sus setters.
// Si alguno es inválido no hay Dog parcial: se devuelve el primer error.
func New(name string, breed Breed) (Dog, error) {
	var d Dog
	if err := d.SetName(name); err != nil {
		return Dog{}, err
	}
	if err := d.SetBreed(breed); err != nil {
		return Dog{}, err
	}
	return d, nil
}

// Default devuelve Fido, el Pug.
func Default() Dog {
	return Dog{name: DefaultName, breed: DefaultBreed}
}

func (d Dog) Name() string {
	return d.name
}

// SetName acepta nombres de 1 a 25 caracteres (runas, no bytes).
// Con error, el nombre previo queda intacto.
func (d *Dog) SetName(name string) error {
	if !validName(name) {
		return invalidName(name)
	}
	d.name = name
	return nil
}

func (d Dog) Breed() Breed {
	return d.breed
}

// SetBreed acepta solo razas de la lista aprobada.
func (d *Dog) SetBreed(breed Breed) error {
	if !breed.Valid() {
		return invalidBreed(string(breed))
	}
	d.breed = breed
	return nil
}

// HasName / HasBreed distinguen "sin asignar" de un valor válido.
func (d Dog) HasName() bool  { return d.name != "" }
func (d Dog) HasBreed() bool { return d.breed != "" }

func (d Dog) String() string {
	return fmt.Sprintf("%s (%s)", d.name, d.breed)
}

func validName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= MinNameLength && n <= MaxNameLength
}
