package dogs

import (
	"errors"

	"dog-registry/internal/platform/logger"
)

// Mode define qué hace el Service con un valor inválido.
type Mode int

const (
	// ModeLenient: loguea el diagnóstico, descarta el valor y no devuelve error.
	ModeLenient Mode = iota
	// ModeStrict: devuelve *ValidationError y deja que el caller decida.
	ModeStrict
)

func (m Mode) String() string {
	if m == ModeStrict {
		return "strict"
	}
	return "lenient"
}

type Service struct {
	mode Mode
	log  logger.Logger
}

// NewService crea el servicio. log puede ser nil (no se emiten diagnósticos).
func NewService(mode Mode, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		mode: mode,
		log:  log.With(map[string]any{"component": "dogs", "mode": mode.String()}),
	}
}

// CreateInput: punteros para distinguir "no enviado" (usa default) de "vacío".
type CreateInput struct {
	Name  *string
	Breed *string
}

// Create construye un Dog según la política:
// - strict: cualquier campo inválido rechaza la construcción.
// - lenient: el campo inválido se loguea y cae a su default validado.
func (s *Service) Create(in CreateInput) (Dog, error) {
	d := Default()

	if in.Name != nil {
		if err := d.SetName(*in.Name); err != nil {
			if s.mode == ModeStrict {
				return Dog{}, err
			}
			s.discard(err, DefaultName)
		}
	}

	if in.Breed != nil {
		if err := setBreedText(&d, *in.Breed); err != nil {
			if s.mode == ModeStrict {
				return Dog{}, err
			}
			s.discard(err, string(DefaultBreed))
		}
	}

	s.log.Debug("dog created", map[string]any{"name": d.Name(), "breed": d.Breed().String()})
	return d, nil
}

// Rename aplica SetName bajo la política del servicio.
func (s *Service) Rename(d *Dog, name string) error {
	return s.apply(d.SetName(name), d.Name())
}

// ChangeBreed aplica SetBreed con texto libre bajo la política del servicio.
func (s *Service) ChangeBreed(d *Dog, breed string) error {
	kept := d.Breed().String()
	return s.apply(setBreedText(d, breed), kept)
}

// setBreedText parsea texto libre antes de pasar por SetBreed.
func setBreedText(d *Dog, text string) error {
	b, err := ParseBreed(text)
	if err != nil {
		return err
	}
	return d.SetBreed(b)
}

func (s *Service) apply(err error, kept string) error {
	if err == nil {
		return nil
	}
	if s.mode == ModeStrict {
		return err
	}
	s.discard(err, kept)
	return nil
}

func (s *Service) discard(err error, kept string) {
	fields := map[string]any{"kept": kept}
	var ve *ValidationError
	if errors.As(err, &ve) {
		fields["kind"] = string(ve.Kind)
		fields["field"] = ve.Field
		fields["value"] = ve.Value
		s.log.Diagnostic(ve.Msg, fields)
		return
	}
	fields["error"] = err.Error()
	s.log.Diagnostic("invalid value discarded", fields)
}
