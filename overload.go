package argbind

import (
	"log/slog"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/napalu/argbind/errs"
)

// NewResolver returns a Resolver binding with b
func NewResolver(b *Binder, policy OverloadPolicy) *Resolver {
	logger := discardLogger()
	if b != nil && b.logger != nil {
		logger = b.logger
	}
	return &Resolver{binder: b, policy: policy, logger: logger}
}

// SetLogger sets the logger. A nil logger discards all records.
func (r *Resolver) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = discardLogger()
	}
	r.logger = logger
}

// Resolve binds args against each candidate, fewest positional parameters first and in
// registration order among candidates with the same count. Every attempt starts from the
// original args; secure options are read from the terminal at most once. The first candidate
// that binds wins.
//
// When no candidate binds, the LastError policy returns the error of the last candidate tried
// and the AggregateErrors policy returns the errors of all candidates.
func (r *Resolver) Resolve(candidates []*Signature, args []string) (*Signature, []any, error) {
	if len(candidates) == 0 {
		return nil, nil, errs.ErrNoSignatures.WithArgs("")
	}

	ordered := make([]*Signature, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].positionals < ordered[j].positionals
	})

	var (
		lastErr  error
		all      *multierror.Error
		prompted = make(secrets)
	)
	for i, sig := range ordered {
		r.logger.Debug("trying overload", "command", sig.Name, "candidate", i, "positionals", sig.positionals)
		values, err := r.binder.attempt(sig, args, prompted)
		if err == nil {
			r.logger.Debug("overload matched", "command", sig.Name, "candidate", i)
			return sig, values, nil
		}
		lastErr = err
		all = multierror.Append(all, err)
	}

	if r.policy == AggregateErrors && len(ordered) > 1 {
		return nil, nil, errs.ErrNoMatchingSignature.WithArgs(ordered[0].Name).Wrap(all.ErrorOrNil())
	}

	return nil, nil, lastErr
}
