package dogs

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"dog-registry/internal/platform/logger"
)

// -------------------------
// Test logger (recording)
// -------------------------

type entry struct {
	level  string
	msg    string
	fields map[string]any
}

type testLogger struct {
	entries *[]entry
	base    map[string]any
}

func newTestLogger() *testLogger {
	return &testLogger{entries: &[]entry{}, base: map[string]any{}}
}

func (l *testLogger) With(fields map[string]any) logger.Logger {
	merged := map[string]any{}
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &testLogger{entries: l.entries, base: merged}
}

func (l *testLogger) Debug(msg string, fields map[string]any) { l.add("debug", msg, fields) }
func (l *testLogger) Info(msg string, fields map[string]any)  { l.add("info", msg, fields) }
func (l *testLogger) Warn(msg string, fields map[string]any)  { l.add("warn", msg, fields) }
func (l *testLogger) Error(msg string, fields map[string]any) { l.add("error", msg, fields) }

// Diagnostic se registra como warn, igual que en zerolog.
func (l *testLogger) Diagnostic(msg string, fields map[string]any) { l.add("warn", msg, fields) }

func (l *testLogger) add(level, msg string, fields map[string]any) {
	merged := map[string]any{}
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	*l.entries = append(*l.entries, entry{level: level, msg: msg, fields: merged})
}

func (l *testLogger) warnings() []entry {
	out := make([]entry, 0)
	for _, e := range *l.entries {
		if e.level == "warn" {
			out = append(out, e)
		}
	}
	return out
}

func ptr(s string) *string { return &s }

// -------------------------
// Tests
// -------------------------

func TestService_Create_NoInput_UsesDefaults(t *testing.T) {
	for _, mode := range []Mode{ModeLenient, ModeStrict} {
		svc := NewService(mode, nil)

		d, err := svc.Create(CreateInput{})
		if err != nil {
			t.Fatalf("%s: Create returned error: %v", mode, err)
		}
		if d != Default() {
			t.Fatalf("%s: expected Fido/Pug, got %s", mode, d)
		}
	}
}

func TestService_Create_Lenient_FallsBackToDefault(t *testing.T) {
	log := newTestLogger()
	svc := NewService(ModeLenient, log)

	d, err := svc.Create(CreateInput{Name: ptr(""), Breed: ptr("Pug")})
	if err != nil {
		t.Fatalf("lenient Create must not fail, got %v", err)
	}
	if d.Name() != DefaultName || d.Breed() != BreedPug {
		t.Fatalf("expected Fido/Pug, got %s", d)
	}

	d, err = svc.Create(CreateInput{Name: ptr("Rex"), Breed: ptr("Poodle")})
	if err != nil {
		t.Fatalf("lenient Create must not fail, got %v", err)
	}
	if d.Name() != "Rex" || d.Breed() != DefaultBreed {
		t.Fatalf("expected Rex/Pug, got %s", d)
	}

	ws := log.warnings()
	if len(ws) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(ws))
	}
	if ws[0].msg != msgInvalidName || ws[0].fields["kind"] != string(KindInvalidName) {
		t.Fatalf("unexpected name diagnostic: %#v", ws[0])
	}
	if ws[1].msg != msgInvalidBreed || ws[1].fields["value"] != "Poodle" {
		t.Fatalf("unexpected breed diagnostic: %#v", ws[1])
	}
	if ws[1].fields["mode"] != "lenient" {
		t.Fatalf("expected mode field on diagnostics, got %#v", ws[1].fields)
	}
}

func TestService_Create_Strict_Rejects(t *testing.T) {
	log := newTestLogger()
	svc := NewService(ModeStrict, log)

	if _, err := svc.Create(CreateInput{Name: ptr("")}); !IsKind(err, KindInvalidName) {
		t.Fatalf("expected invalid name, got %v", err)
	}
	if _, err := svc.Create(CreateInput{Name: ptr("Rex"), Breed: ptr("Poodle")}); !IsKind(err, KindInvalidBreed) {
		t.Fatalf("expected invalid breed, got %v", err)
	}
	if len(log.warnings()) != 0 {
		t.Fatalf("strict mode must not emit diagnostics")
	}

	d, err := svc.Create(CreateInput{Name: ptr("Rex"), Breed: ptr("Corgi")})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if d.Name() != "Rex" || d.Breed() != BreedCorgi {
		t.Fatalf("expected Rex/Corgi, got %s", d)
	}
}

func TestService_Rename(t *testing.T) {
	log := newTestLogger()
	lenient := NewService(ModeLenient, log)
	strict := NewService(ModeStrict, nil)

	d := Default()
	if err := lenient.Rename(&d, "Max"); err != nil || d.Name() != "Max" {
		t.Fatalf("expected rename to Max, got %q err=%v", d.Name(), err)
	}

	if err := lenient.Rename(&d, "this name is far too long for a dog"); err != nil {
		t.Fatalf("lenient Rename must not fail, got %v", err)
	}
	if d.Name() != "Max" {
		t.Fatalf("expected name unchanged, got %q", d.Name())
	}
	ws := log.warnings()
	if len(ws) != 1 || ws[0].fields["kept"] != "Max" {
		t.Fatalf("expected one diagnostic keeping Max, got %#v", ws)
	}

	if err := strict.Rename(&d, ""); !IsKind(err, KindInvalidName) {
		t.Fatalf("expected invalid name, got %v", err)
	}
	if d.Name() != "Max" {
		t.Fatalf("expected name unchanged, got %q", d.Name())
	}
}

func TestService_ChangeBreed(t *testing.T) {
	log := newTestLogger()
	lenient := NewService(ModeLenient, log)
	strict := NewService(ModeStrict, nil)

	d := Default()
	if err := strict.ChangeBreed(&d, "Mastiff"); err != nil || d.Breed() != BreedMastiff {
		t.Fatalf("expected Mastiff, got %q err=%v", d.Breed(), err)
	}

	if err := strict.ChangeBreed(&d, "Shar Pei"); err != nil || d.Breed() != BreedSharPei {
		t.Fatalf("expected Shar Pei from free text, got %q err=%v", d.Breed(), err)
	}
	_ = strict.ChangeBreed(&d, "Mastiff")

	if err := strict.ChangeBreed(&d, "mastiff"); !IsKind(err, KindInvalidBreed) {
		t.Fatalf("expected case-sensitive rejection, got %v", err)
	}

	if err := lenient.ChangeBreed(&d, "Husky"); err != nil {
		t.Fatalf("lenient ChangeBreed must not fail, got %v", err)
	}
	if d.Breed() != BreedMastiff {
		t.Fatalf("expected breed unchanged, got %q", d.Breed())
	}
	if len(log.warnings()) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(log.warnings()))
	}
}

func TestService_LenientWithZerolog(t *testing.T) {
	// el logger real no debe romper la ruta lenient
	svc := NewService(ModeLenient, logger.Nop())

	d, err := svc.Create(CreateInput{Name: ptr(""), Breed: ptr("")})
	if err != nil || d != Default() {
		t.Fatalf("expected defaults, got %s err=%v", d, err)
	}
}

func TestService_Lenient_DiagnosticSurvivesErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Error, Format: logger.FormatJSON, Out: &buf})
	svc := NewService(ModeLenient, log)

	d, err := svc.Create(CreateInput{Name: ptr("")})
	if err != nil || d != Default() {
		t.Fatalf("expected defaults, got %s err=%v", d, err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 || lines[0] == "" {
		t.Fatalf("expected exactly one diagnostic line, got %q", buf.String())
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &m); err != nil {
		t.Fatalf("invalid json line: %v", err)
	}
	if m["message"] != msgInvalidName || m["level"] != "warn" || m["kind"] != string(KindInvalidName) {
		t.Fatalf("unexpected diagnostic: %#v", m)
	}
}
