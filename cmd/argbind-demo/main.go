package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/napalu/argbind"
	"github.com/napalu/argbind/env"
	"github.com/napalu/argbind/types"
	flag "github.com/spf13/pflag"
	"golang.org/x/text/language"
	"gopkg.in/natefinch/lumberjack.v2"
)

type globalOptions struct {
	LogLevel string
	LogFile  string
	Lang     string
}

type filter struct {
	Include []string
	Exclude []string
}

func (f *filter) match(name string) bool {
	for _, pattern := range f.Exclude {
		if ok, _ := filepath.Match(pattern, name); ok {
			return false
		}
	}
	if len(f.Include) == 0 {
		return true
	}
	for _, pattern := range f.Include {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func main() {
	opts := &globalOptions{}
	fs := flag.NewFlagSet("argbind-demo", flag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.StringVar(&opts.LogFile, "log-file", "", "write JSON logs to a rotated file instead of stderr")
	fs.StringVar(&opts.Lang, "lang", "", "language of messages, overrides "+argbind.LanguageEnvVar)
	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(argbind.ExitMisuse)
	}

	logger, err := newLogger(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(argbind.ExitMisuse)
	}

	configs := []argbind.ConfigureRegistryFunc{
		argbind.WithLogger(logger),
		argbind.WithCommand(commands()...),
	}
	if opts.Lang != "" {
		tag, err := language.Parse(opts.Lang)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(argbind.ExitMisuse)
		}
		configs = append(configs, argbind.WithLanguage(tag))
	}

	registry, err := argbind.NewRegistry(configs...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(argbind.ExitFailure)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := registry.Run(ctx, fs.Args())
	stop()
	os.Exit(code)
}

func newLogger(opts *globalOptions) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.LogLevel)); err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if opts.LogFile != "" {
		return slog.New(slog.NewJSONHandler(&lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    16,
			MaxBackups: 3,
			MaxAge:     7,
		}, handlerOpts)), nil
	}

	return slog.New(slog.NewTextHandler(os.Stderr, handlerOpts)), nil
}

func commands() []*argbind.Signature {
	countTo := must(argbind.NewSignature("count",
		argbind.NewOption("step", argbind.WithType(types.Int), argbind.WithDefault("1"), argbind.WithDescription("increment")),
		argbind.NewInjected(types.Stdout),
		argbind.NewPositional(argbind.WithType(types.Int), argbind.WithLabel("limit")))).
		Handle(func(ctx context.Context, args []any) error {
			return count(ctx, args[1].(io.Writer), 0, args[2].(int), args[0].(int))
		})
	countBetween := must(argbind.NewSignature("count",
		argbind.NewOption("step", argbind.WithType(types.Int), argbind.WithDefault("1"), argbind.WithDescription("increment")),
		argbind.NewInjected(types.Stdout),
		argbind.NewPositional(argbind.WithType(types.Int), argbind.WithLabel("from")),
		argbind.NewPositional(argbind.WithType(types.Int), argbind.WithLabel("to")))).
		Handle(func(ctx context.Context, args []any) error {
			return count(ctx, args[1].(io.Writer), args[2].(int), args[3].(int), args[0].(int))
		})

	list := must(argbind.NewSignature("list",
		argbind.NewInjected(types.Stdout),
		argbind.NewGroup(func(values []any) (any, error) {
			return &filter{Include: values[0].([]string), Exclude: values[1].([]string)}, nil
		},
			argbind.WithPrefix("filter."),
			argbind.WithMembers(
				argbind.NewOption("include", argbind.WithListOf(types.List, types.String), argbind.WithDefault(""), argbind.WithDescription("glob patterns to keep")),
				argbind.NewOption("exclude", argbind.WithListOf(types.List, types.String), argbind.WithDefault("${ARGBIND_EXCLUDE}"), argbind.WithDescription("glob patterns to drop")))),
		argbind.NewPositional(argbind.WithType(types.File), argbind.WithLabel("dir")))).
		Handle(func(ctx context.Context, args []any) error {
			w, f, dir := args[0].(io.Writer), args[1].(*filter), args[2].(string)
			entries, err := os.ReadDir(dir)
			if err != nil {
				return err
			}
			for _, e := range entries {
				if f.match(e.Name()) {
					_, _ = fmt.Fprintln(w, e.Name())
				}
			}
			return nil
		})
	list.Description = "list directory entries matching the filter"

	printEnv := must(argbind.NewSignature("env",
		argbind.NewInjected(types.Environment),
		argbind.NewInjected(types.Stdout),
		argbind.NewPositional(argbind.WithListOf(types.OrderedSet, types.String), argbind.WithLabel("name")))).
		Handle(func(ctx context.Context, args []any) error {
			resolver, w := args[0].(env.Resolver), args[1].(io.Writer)
			names := args[2].(interface{ Items() []any }).Items()
			if len(names) == 0 {
				for _, kv := range resolver.Environ() {
					_, _ = fmt.Fprintln(w, kv)
				}
				return nil
			}
			for _, name := range names {
				_, _ = fmt.Fprintf(w, "%s=%s\n", name, resolver.Get(name.(string)))
			}
			return nil
		})
	printEnv.Description = "print environment variables"

	login := must(argbind.NewSignature("login",
		argbind.NewInjected(types.Stdout),
		argbind.NewOption("user", argbind.WithRequired(true)),
		argbind.NewOption("password", argbind.WithSecure(""), argbind.WithRequired(true)),
		argbind.NewOption("mode", argbind.WithEnum("TOKEN", "SESSION"), argbind.WithDefault("SESSION")))).
		Handle(func(ctx context.Context, args []any) error {
			_, err := fmt.Fprintf(args[0].(io.Writer), "%s logged in for a %s (%s)\n",
				args[1], strings.ToLower(args[3].(string)), strings.Repeat("*", len(args[2].(string))))
			return err
		})
	login.Description = "authenticate, prompting for the password when it is not supplied"

	return []*argbind.Signature{countTo, countBetween, list, printEnv, login}
}

func count(ctx context.Context, w io.Writer, from, to, step int) error {
	if step <= 0 {
		return fmt.Errorf("step must be positive, got %d", step)
	}
	for i := from; i < to; i += step {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w, i)
	}
	return nil
}

func must(sig *argbind.Signature, err error) *argbind.Signature {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(argbind.ExitFailure)
	}
	return sig
}
