package logger

import (
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level es el umbral mínimo de los mensajes normales.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "info", "":
		return Info
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

func (l Level) toZerolog() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Warn:
		return zerolog.WarnLevel
	case Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Format define la salida: texto para consola o JSON por línea.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Logger es el contrato de logging estructurado (campos como map).
// Diagnostic se emite con nivel warn pero ignora el umbral configurado:
// es para avisos que el usuario siempre debe ver.
type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)

	Diagnostic(msg string, fields map[string]any)
}

// ZerologLogger adapta zerolog a la interfaz Logger (campos como map).
type ZerologLogger struct {
	zl zerolog.Logger
}

// Options configura New. Out nil = os.Stderr.
type Options struct {
	Level  Level
	Format Format
	App    string
	Out    io.Writer
}

// New crea un logger zerolog: ConsoleWriter para texto, JSON plano si no.
func New(opts Options) Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	if opts.Format != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    opts.Out != nil,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(out).Level(opts.Level.toZerolog()).With().Timestamp()
	if app := strings.TrimSpace(opts.App); app != "" {
		ctx = ctx.Str("app", app)
	}

	return &ZerologLogger{zl: ctx.Logger()}
}

// Nop descarta todo; útil en tests y como default.
func Nop() Logger {
	return &ZerologLogger{zl: zerolog.Nop()}
}

func (l *ZerologLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	ctx := l.zl.With()
	for _, k := range sortedKeys(fields) {
		ctx = ctx.Interface(k, fields[k])
	}
	return &ZerologLogger{zl: ctx.Logger()}
}

func (l *ZerologLogger) Debug(msg string, fields map[string]any) { l.log(l.zl.Debug(), msg, fields) }
func (l *ZerologLogger) Info(msg string, fields map[string]any)  { l.log(l.zl.Info(), msg, fields) }
func (l *ZerologLogger) Warn(msg string, fields map[string]any)  { l.log(l.zl.Warn(), msg, fields) }
func (l *ZerologLogger) Error(msg string, fields map[string]any) { l.log(l.zl.Error(), msg, fields) }

// Log() de zerolog no tiene nivel, así que solo Disabled (Nop) lo filtra.
func (l *ZerologLogger) Diagnostic(msg string, fields map[string]any) {
	l.log(l.zl.Log().Str(zerolog.LevelFieldName, zerolog.WarnLevel.String()), msg, fields)
}

func (l *ZerologLogger) log(ev *zerolog.Event, msg string, fields map[string]any) {
	// nil cuando el nivel está deshabilitado
	if ev == nil {
		return
	}
	for _, k := range sortedKeys(fields) {
		ev = addField(ev, k, fields[k])
	}
	ev.Msg(msg)
}

func addField(ev *zerolog.Event, k string, v any) *zerolog.Event {
	switch x := v.(type) {
	case string:
		return ev.Str(k, x)
	case int:
		return ev.Int(k, x)
	case bool:
		return ev.Bool(k, x)
	case time.Duration:
		return ev.Dur(k, x)
	case error:
		return ev.AnErr(k, x)
	default:
		return ev.Interface(k, x)
	}
}

// Orden estable de keys, y se ignoran keys vacías.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		if strings.TrimSpace(k) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
