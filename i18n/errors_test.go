package i18n

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

type mapProvider map[string]string

func (m mapProvider) GetMessage(key string) string {
	if msg, ok := m[key]; ok {
		return msg
	}
	return key
}

func TestTrError_FormatAndIdentity(t *testing.T) {
	sentinel := NewErrorWithProvider("test.key", mapProvider{"test.key": "value %s is bad"})

	withArgs := sentinel.WithArgs("x")
	assert.Equal(t, "value x is bad", withArgs.Error())
	assert.True(t, errors.Is(withArgs, sentinel))
	assert.Equal(t, "test.key", withArgs.Key())
	assert.Equal(t, []interface{}{"x"}, withArgs.Args())

	other := NewErrorWithProvider("test.key", mapProvider{})
	assert.False(t, errors.Is(withArgs, other), "distinct sentinels with the same key must not match")
}

func TestTrError_Wrap(t *testing.T) {
	cause := errors.New("root cause")
	sentinel := NewErrorWithProvider("wrap.key", mapProvider{"wrap.key": "outer"})

	err := sentinel.Wrap(cause)
	assert.Equal(t, "outer: root cause", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, sentinel)

	outer := fmt.Errorf("context: %w", err)
	assert.ErrorIs(t, outer, sentinel)
}

func TestTrError_SetProviderAffectsCopies(t *testing.T) {
	sentinel := NewErrorWithProvider("p.key", mapProvider{"p.key": "before %d"})
	derived := sentinel.WithArgs(1)

	sentinel.SetProvider(mapProvider{"p.key": "after %d"})
	assert.Equal(t, "after 1", derived.Error())
}

func TestBundleMessageProvider_GermanDefault(t *testing.T) {
	b, err := NewBundle()
	assert.NoError(t, err)
	b.SetDefaultLanguage(language.German)

	p := NewBundleMessageProvider(b)
	assert.Equal(t, "unbekannte Option: %s", p.GetMessage("argbind.error.bind.unknown_option"))
	assert.Equal(t, "missing.key", p.GetMessage("missing.key"))
	assert.Equal(t, "k", NewBundleMessageProvider(nil).GetMessage("k"))
}
