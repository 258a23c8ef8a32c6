package argbind

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/napalu/argbind/errs"
	"github.com/napalu/argbind/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_AscendingPositionalCount(t *testing.T) {
	two := mustSignature(t, "count", NewPositional(WithType(types.Int)), NewPositional(WithType(types.Int)))
	zero := mustSignature(t, "count", NewOption("limit", WithType(types.Int), WithDefault("10")))
	one := mustSignature(t, "count", NewPositional(WithType(types.Int)))

	r := NewResolver(NewBinder(), LastError)

	tests := []struct {
		name string
		args []string
		want *Signature
		vals []any
	}{
		{"no positional", []string{"--limit=3"}, zero, []any{3}},
		{"one positional", []string{"7"}, one, []any{7}},
		{"two positionals", []string{"7", "9"}, two, []any{7, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, values, err := r.Resolve([]*Signature{two, zero, one}, tt.args)
			require.NoError(t, err)
			assert.Same(t, tt.want, sig)
			assert.Equal(t, tt.vals, values)
		})
	}
}

func TestResolver_TieBreakByRegistrationOrder(t *testing.T) {
	first := mustSignature(t, "show", NewPositional())
	second := mustSignature(t, "show", NewPositional(WithType(types.Int)))
	r := NewResolver(NewBinder(), LastError)

	sig, values, err := r.Resolve([]*Signature{first, second}, []string{"42"})
	require.NoError(t, err)
	assert.Same(t, first, sig)
	assert.Equal(t, []any{"42"}, values)

	sig, values, err = r.Resolve([]*Signature{second, first}, []string{"42"})
	require.NoError(t, err)
	assert.Same(t, second, sig)
	assert.Equal(t, []any{42}, values)

	sig, _, err = r.Resolve([]*Signature{second, first}, []string{"abc"})
	require.NoError(t, err)
	assert.Same(t, first, sig, "a failing candidate falls through to the next")
}

func TestResolver_AttemptsAreIndependent(t *testing.T) {
	strict := mustSignature(t, "cp", NewOption("force", WithType(types.Bool)), NewPositional())
	loose := mustSignature(t, "cp", NewOption("force", WithType(types.Bool)), NewPositional(), NewPositional())
	r := NewResolver(NewBinder(), LastError)

	sig, values, err := r.Resolve([]*Signature{strict, loose}, []string{"--force", "a", "b"})
	require.NoError(t, err)
	assert.Same(t, loose, sig)
	assert.Equal(t, []any{true, "a", "b"}, values)
}

func TestResolver_FailurePolicies(t *testing.T) {
	withOption := mustSignature(t, "run", NewOption("x", WithType(types.Int)))
	withPositional := mustSignature(t, "run", NewPositional(WithType(types.Int)))
	candidates := []*Signature{withPositional, withOption}
	args := []string{"--x=abc"}

	t.Run("last error", func(t *testing.T) {
		_, values, err := NewResolver(NewBinder(), LastError).Resolve(candidates, args)
		assert.Nil(t, values)
		assert.ErrorIs(t, err, errs.ErrUnknownOption, "the candidate with most positionals is tried last")
		assert.NotErrorIs(t, err, errs.ErrConversion)
	})

	t.Run("aggregate errors", func(t *testing.T) {
		_, values, err := NewResolver(NewBinder(), AggregateErrors).Resolve(candidates, args)
		assert.Nil(t, values)
		assert.ErrorIs(t, err, errs.ErrNoMatchingSignature)
		assert.ErrorIs(t, err, errs.ErrConversion)
		assert.ErrorIs(t, err, errs.ErrUnknownOption)
		assert.True(t, errs.IsBindError(err))
	})

	t.Run("aggregate with a single candidate", func(t *testing.T) {
		_, _, err := NewResolver(NewBinder(), AggregateErrors).Resolve([]*Signature{withOption}, args)
		assert.ErrorIs(t, err, errs.ErrConversion)
		assert.NotErrorIs(t, err, errs.ErrNoMatchingSignature)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, _, err := NewResolver(NewBinder(), LastError).Resolve(nil, args)
		assert.ErrorIs(t, err, errs.ErrNoSignatures)
	})
}

func TestResolver_LogsAttempts(t *testing.T) {
	var buf bytes.Buffer
	b := NewBinder()
	b.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	r := NewResolver(b, LastError)

	_, _, err := r.Resolve([]*Signature{
		mustSignature(t, "log"),
		mustSignature(t, "log", NewPositional()),
	}, []string{"x"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "trying overload")
	assert.Contains(t, out, "bind failed")
	assert.Contains(t, out, "overload matched")
}

func TestResolver_SecureOptionReadOnce(t *testing.T) {
	candidates := func(t *testing.T) []*Signature {
		return []*Signature{
			mustSignature(t, "login", NewOption("password", WithSecure(""), WithRequired(true))),
			mustSignature(t, "login", NewOption("password", WithSecure(""), WithRequired(true)), NewPositional(WithLabel("user"))),
		}
	}

	t.Run("value is reused by later candidates", func(t *testing.T) {
		terminal := &fakeTerminal{terminal: true, value: "hunter2"}
		b := NewBinder()
		b.SetStderr(io.Discard)
		b.SetTerminalReader(terminal)

		sigs := candidates(t)
		sig, values, err := NewResolver(b, LastError).Resolve(sigs, []string{"ada"})
		require.NoError(t, err)
		assert.Same(t, sigs[1], sig)
		assert.Equal(t, []any{"hunter2", "ada"}, values)
		assert.Equal(t, 1, terminal.reads)
	})

	t.Run("missing terminal is checked once", func(t *testing.T) {
		terminal := &fakeTerminal{}
		b := NewBinder()
		b.SetTerminalReader(terminal)

		_, _, err := NewResolver(b, LastError).Resolve(candidates(t), []string{"ada"})
		assert.ErrorIs(t, err, errs.ErrRequiredOptionMissing)
		assert.Equal(t, 1, terminal.checks)
		assert.Zero(t, terminal.reads)
	})

	t.Run("each dispatch reads again", func(t *testing.T) {
		terminal := &fakeTerminal{terminal: true, value: "hunter2"}
		b := NewBinder()
		b.SetStderr(io.Discard)
		b.SetTerminalReader(terminal)
		r := NewResolver(b, LastError)

		for i := 0; i < 2; i++ {
			_, _, err := r.Resolve(candidates(t), []string{"ada"})
			require.NoError(t, err)
		}
		assert.Equal(t, 2, terminal.reads)
	})
}
