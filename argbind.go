// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package argbind binds command-line argument vectors to declaratively described command
// signatures and dispatches them.
//
// A Signature lists the parameters of one command overload: named options (--name=value or
// the boolean shortcut --name), positional arguments, option groups built from their own
// members, and injected framework values. A Binder converts and binds the tokens of an
// argument vector; when several signatures share a command name the Resolver tries them in
// ascending order of positional parameters and keeps the first that binds.
//
// Example:
//
//	count, _ := argbind.NewSignature("count",
//		argbind.NewOption("step", argbind.WithType(types.Int), argbind.WithDefault("1")),
//		argbind.NewPositional(argbind.WithType(types.Int), argbind.WithLabel("limit")))
//	count.Handle(func(ctx context.Context, args []any) error {
//		for i := 0; i < args[1].(int); i += args[0].(int) {
//			fmt.Println(i)
//		}
//		return nil
//	})
//
//	registry, err := argbind.NewRegistry(argbind.WithCommand(count))
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Exit(registry.Run(context.Background(), os.Args[1:]))
package argbind

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/shlex"
	"github.com/napalu/argbind/errs"
	"github.com/napalu/argbind/i18n"
	"github.com/napalu/argbind/types/orderedmap"
	"golang.org/x/text/language"
)

// NewRegistry returns a Registry configured by configs. Signatures passed with WithCommand are
// added after every other option has been applied.
func NewRegistry(configs ...ConfigureRegistryFunc) (*Registry, error) {
	r := &Registry{
		commands:             orderedmap.NewOrderedMap[string, []*Signature](),
		binder:               NewBinder(),
		overloadPolicy:       LastError,
		commandNameConverter: DefaultCommandNameConverter,
		flagNameConverter:    DefaultFlagNameConverter,
		bundle:               i18n.Default(),
		language:             i18n.Default().GetDefaultLanguage(),
		logger:               discardLogger(),
	}

	var err error
	for _, config := range configs {
		config(r, &err)
		if err != nil {
			return nil, err
		}
	}

	if !r.languageSet {
		if tag, ok := r.binder.resolver.Lookup(LanguageEnvVar); ok && tag != "" {
			if lang, parseErr := language.Parse(tag); parseErr == nil {
				if langErr := r.SetLanguage(lang); langErr != nil {
					r.logger.Debug("ignoring language from environment", "var", LanguageEnvVar, "value", tag, "error", langErr)
				}
			}
		}
	}

	pending := r.pending
	r.pending = nil
	for _, sig := range pending {
		if err := r.AddSignature(sig); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// AddSignature registers sig as an overload of its command. Overloads are tried in
// registration order among signatures with the same number of positional parameters.
func (r *Registry) AddSignature(sig *Signature) error {
	if sig == nil {
		return errs.ErrNilParameter.WithArgs(0)
	}
	compiled, err := sig.clone(r.flagNameConverter)
	if err != nil {
		return err
	}
	if compiled.Name == "" && compiled.Field != "" {
		compiled.Name = r.commandNameConverter(compiled.Field)
	}
	if compiled.Name == "" {
		return errs.ErrEmptyCommandName
	}
	if compiled.Invoke == nil {
		return errs.ErrNoInvoker.WithArgs(compiled.Name)
	}

	sigs, _ := r.commands.Get(compiled.Name)
	r.commands.Set(compiled.Name, append(sigs, compiled))
	r.logger.Debug("registered signature", "command", compiled.Name, "overloads", len(sigs)+1)

	return nil
}

// Commands returns the registered command names in registration order
func (r *Registry) Commands() []string {
	return r.commands.Keys()
}

// Signatures returns the overloads of the command name in registration order
func (r *Registry) Signatures(name string) []*Signature {
	sigs, _ := r.commands.Get(name)
	return sigs
}

// Binder returns the binder used by the registry. It can be used to register typed converters
// with RegisterTypedConverter.
func (r *Registry) Binder() *Binder {
	return r.binder
}

// Exec dispatches argv, whose first element is the command name, to the overload that binds
// the remaining elements and invokes it with ctx.
func (r *Registry) Exec(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errs.ErrEmptyCommandLine
	}

	name := argv[0]
	sigs, ok := r.commands.Get(name)
	if !ok {
		return errs.ErrCommandNotFound.WithArgs(name)
	}

	resolver := NewResolver(r.binder, r.overloadPolicy)
	resolver.SetLogger(r.logger)
	sig, values, err := resolver.Resolve(sigs, argv[1:])
	if err != nil {
		return err
	}

	r.logger.Debug("dispatching", "command", name, "positionals", sig.positionals)
	if err := sig.Invoke(ctx, values); err != nil {
		return errs.ErrCommandFailed.WithArgs(name).Wrap(err)
	}

	return nil
}

// ExecString splits line like a POSIX shell and dispatches it with Exec
func (r *Registry) ExecString(ctx context.Context, line string) error {
	if strings.TrimSpace(line) == "" {
		return errs.ErrEmptyCommandLine
	}
	argv, err := shlex.Split(line)
	if err != nil {
		return errs.ErrInvalidCommandLine.WithArgs(line).Wrap(err)
	}
	return r.Exec(ctx, argv)
}

// Run dispatches argv with Exec and returns the process exit code. Errors are written to the
// registry's stderr; bind errors are followed by the usage of the command and unknown commands
// by the list of commands.
func (r *Registry) Run(ctx context.Context, argv []string) int {
	err := r.Exec(ctx, argv)
	code := ExitCode(err)
	if err == nil {
		return code
	}

	w := r.binder.stderr
	r.logger.Debug("command finished with error", "exit", code, "error", err)
	_, _ = fmt.Fprintf(w, "%s %v\n", r.bundle.TL(r.language, errs.MsgErrorKey), err)
	switch code {
	case ExitMisuse:
		if len(argv) > 0 {
			r.PrintUsage(w, argv[0])
		} else {
			r.PrintCommands(w)
		}
	case ExitNotFound:
		r.PrintCommands(w)
	}

	return code
}

// ExitCode maps an error returned by Exec to a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errs.ErrCommandNotFound):
		return ExitNotFound
	case errs.IsBindError(err), errors.Is(err, errs.ErrEmptyCommandLine), errors.Is(err, errs.ErrInvalidCommandLine):
		return ExitMisuse
	default:
		return ExitFailure
	}
}

// SetLanguage selects the language of usage text and of every built-in error message.
// The closest available language is used; a language without any match fails with
// errs.ErrLanguageUnavailable.
//
// Usage text is translated per Registry, but error messages come from the process-wide
// provider installed with errs.UpdateMessageProvider: the Registry that set its language
// last decides the language of every error. Select the language once at startup and do not
// call SetLanguage concurrently with Exec.
func (r *Registry) SetLanguage(lang language.Tag) error {
	matched := r.bundle.MatchLanguage(lang)
	wantBase, _ := lang.Base()
	gotBase, _ := matched.Base()
	if wantBase != gotBase {
		return errs.ErrLanguageUnavailable.WithArgs(lang)
	}

	messages, err := i18n.NewBundle()
	if err != nil {
		return err
	}
	messages.SetDefaultLanguage(matched)
	errs.UpdateMessageProvider(i18n.NewBundleMessageProvider(messages))
	r.binder.prompt = messages.T(errs.MsgPasswordKey)
	r.language = matched
	r.languageSet = true

	return nil
}

// Language returns the language of usage text and error messages
func (r *Registry) Language() language.Tag {
	return r.language
}

// SetLogger sets the logger used by the registry and its binder. A nil logger discards all records.
func (r *Registry) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = discardLogger()
	}
	r.logger = logger
	r.binder.SetLogger(logger)
}

// SetStdout sets the writer bound to types.Stdout parameters
func (r *Registry) SetStdout(w io.Writer) {
	r.binder.SetStdout(w)
}

// SetStderr sets the writer receiving errors and usage output and bound to types.Stderr parameters
func (r *Registry) SetStderr(w io.Writer) {
	r.binder.SetStderr(w)
}
