package dogs

// Breed define las razas aprobadas para un registro de perro.
// La comparación es exacta y sensible a mayúsculas.
type Breed string

const (
	BreedMastiff       Breed = "Mastiff"
	BreedChihuahua     Breed = "Chihuahua"
	BreedCorgi         Breed = "Corgi"
	BreedSharPei       Breed = "Shar Pei"
	BreedBeagle        Breed = "Beagle"
	BreedFrenchBulldog Breed = "French Bulldog"
	BreedPug           Breed = "Pug"
	BreedPointer       Breed = "Pointer"
)

const (
	DefaultName  = "Fido"
	DefaultBreed = BreedPug

	MinNameLength = 1
	MaxNameLength = 25
)

var approvedBreeds = []Breed{
	BreedMastiff,
	BreedChihuahua,
	BreedCorgi,
	BreedSharPei,
	BreedBeagle,
	BreedFrenchBulldog,
	BreedPug,
	BreedPointer,
}

// Breeds devuelve una copia de la lista aprobada, en orden canónico.
func Breeds() []Breed {
	out := make([]Breed, len(approvedBreeds))
	copy(out, approvedBreeds)
	return out
}

// Valid indica si la raza pertenece a la lista aprobada.
func (b Breed) Valid() bool {
	for _, a := range approvedBreeds {
		if a == b {
			return true
		}
	}
	return false
}

func (b Breed) String() string {
	return string(b)
}

// ParseBreed convierte texto libre en Breed sin normalizar (ni trim ni case).
func ParseBreed(s string) (Breed, error) {
	b := Breed(s)
	if !b.Valid() {
		return "", invalidBreed(s)
	}
	return b, nil
}

// Dog representa un registro de perro con nombre y raza validados.
// Los campos solo cambian a través de SetName / SetBreed.
// El valor cero tiene ambos campos sin asignar.
type Dog struct {
	name  string
	breed Breed
}
