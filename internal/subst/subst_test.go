package subst

import (
	"testing"

	"github.com/napalu/argbind/env"
	"github.com/napalu/argbind/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubst_Format(t *testing.T) {
	props := env.NewMapResolver(map[string]string{
		"a":         "${b}",
		"b":         "x",
		"user.home": "/home/ada",
		"list":      "1,2,3",
		"twice":     "${b}${b}",
	})

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{name: "no placeholder", template: "plain", want: "plain"},
		{name: "simple", template: "${b}", want: "x"},
		{name: "nested", template: "${a}", want: "x"},
		{name: "dotted key with text", template: "${user.home}/cfg", want: "/home/ada/cfg"},
		{name: "repeated key outside chain", template: "${b}-${b}", want: "x-x"},
		{name: "repeated key inside value", template: "${twice}", want: "xx"},
		{name: "missing is dropped", template: "[${nope}]", want: "[]"},
		{name: "not a placeholder", template: "$b {b} ${}", want: "$b {b} ${}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.template, props, MissingEmpty)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubst_CircularReference(t *testing.T) {
	props := env.NewMapResolver(map[string]string{
		"a":    "${b}",
		"b":    "${a}",
		"self": "pre${self}",
	})

	for _, template := range []string{"${a}", "${b}", "x${self}"} {
		t.Run(template, func(t *testing.T) {
			_, err := Format(template, props, MissingEmpty)
			assert.ErrorIs(t, err, errs.ErrCircularReference)
		})
	}
}

func TestSubst_Policies(t *testing.T) {
	props := env.NewMapResolver(map[string]string{"k": "v"})

	got, err := Format("${k}/${missing}", props, MissingKeep)
	require.NoError(t, err)
	assert.Equal(t, "v/${missing}", got)

	_, err = Format("${k}/${missing}", props, MissingError)
	assert.ErrorIs(t, err, errs.ErrUnresolvedPlaceholder)
	assert.EqualError(t, err, "unresolved placeholder ${missing}")

	got, err = Format("${k}", nil, MissingEmpty)
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.Equal(t, "keep", MissingKeep.String())
}

func TestSubst_HasPlaceholder(t *testing.T) {
	assert.True(t, HasPlaceholder("a${b}"))
	assert.False(t, HasPlaceholder("a$b"))
}
