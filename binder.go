package argbind

import (
	"io"
	"log/slog"
	"os"

	"github.com/napalu/argbind/env"
	"github.com/napalu/argbind/errs"
	"github.com/napalu/argbind/i18n"
	"github.com/napalu/argbind/input"
	"github.com/napalu/argbind/internal/convert"
	"github.com/napalu/argbind/internal/subst"
	"github.com/napalu/argbind/types"
)

// NewBinder returns a Binder using the built-in converters, the process environment as
// property source and the standard streams for injected parameters
func NewBinder() *Binder {
	return &Binder{
		converters: convert.New(),
		resolver:   &env.DefaultEnvResolver{},
		policy:     subst.MissingEmpty,
		prompt:     i18n.Default().T(errs.MsgPasswordKey),
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		logger:     discardLogger(),
	}
}

// Bind binds args to sig and returns one value per top-level parameter of sig in declaration order.
// On failure no values are returned.
func (b *Binder) Bind(sig *Signature, args []string) ([]any, error) {
	return b.attempt(sig, args, make(secrets))
}

// attempt binds args to sig. Secure options already read into prompted are not read again.
func (b *Binder) attempt(sig *Signature, args []string, prompted secrets) ([]any, error) {
	values, err := b.bind(sig, args, prompted)
	if err != nil {
		b.logger.Debug("bind failed", "command", sig.Name, "positionals", sig.positionals, "error", err)
		return nil, err
	}
	return values, nil
}

// RegisterConverter adds or replaces the converter used for vt
func (b *Binder) RegisterConverter(vt types.ValueType, fn ConvertFunc, less LessFunc) error {
	if less != nil {
		return b.converters.Register(vt, fn, convert.WithLess(less))
	}
	return b.converters.Register(vt, fn)
}

// RegisterTypedConverter adds or replaces the converter used for vt. Listable parameters of vt
// are collected into slices of T. less may be nil when T has no natural order.
func RegisterTypedConverter[T any](b *Binder, vt types.ValueType, fn func(raw string) (T, error), less func(x, y T) bool) error {
	return convert.RegisterTyped(b.converters, vt, fn, less)
}

// SetResolver sets the property source used to expand placeholders in defaults and bound to
// types.Environment parameters
func (b *Binder) SetResolver(resolver env.Resolver) {
	if resolver == nil {
		resolver = &env.DefaultEnvResolver{}
	}
	b.resolver = resolver
}

// SetMissingPolicy sets how placeholders without a value are expanded
func (b *Binder) SetMissingPolicy(policy MissingPolicy) {
	b.policy = policy
}

// SetTerminalReader sets the terminal used to read secure options
func (b *Binder) SetTerminalReader(t input.TerminalReader) {
	b.terminal = t
}

// SetStdin sets the reader bound to types.Stdin parameters
func (b *Binder) SetStdin(r io.Reader) {
	b.stdin = r
}

// SetStdout sets the writer bound to types.Stdout parameters
func (b *Binder) SetStdout(w io.Writer) {
	b.stdout = w
}

// SetStderr sets the writer bound to types.Stderr parameters. Secure prompts are written to it.
func (b *Binder) SetStderr(w io.Writer) {
	b.stderr = w
}

// SetLogger sets the logger. A nil logger discards all records.
func (b *Binder) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = discardLogger()
	}
	b.logger = logger
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
