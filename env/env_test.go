package env

import (
	"testing"

	"github.com/akashmaji946/goripl/forms"
	"github.com/akashmaji946/goripl/rerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineThenLookup(t *testing.T) {
	g := NewGlobal()
	require.NoError(t, g.Define("x", forms.NewInt(10)))

	v, err := g.Lookup("x")
	require.NoError(t, err)
	assert.True(t, forms.Equal(v, forms.NewInt(10)))
}

func TestRedefinitionAcrossScopes(t *testing.T) {
	g := NewGlobal()
	require.NoError(t, g.Define("x", forms.NewInt(1)))

	child, err := g.ExtendFrame(nil, nil)
	require.NoError(t, err)

	err = child.Define("x", forms.NewInt(2))
	var redef *rerr.Redefinition
	assert.ErrorAs(t, err, &redef)
}

func TestSetUnboundIsUnknownSymbol(t *testing.T) {
	g := NewGlobal()
	err := g.Set("nope", forms.NewInt(1))
	var unk *rerr.UnknownSymbol
	assert.ErrorAs(t, err, &unk)
}

func TestSetMutatesDefiningFrame(t *testing.T) {
	g := NewGlobal()
	require.NoError(t, g.Define("x", forms.NewInt(1)))

	child, err := g.ExtendFrame([]string{"y"}, []forms.Form{forms.NewInt(2)})
	require.NoError(t, err)

	require.NoError(t, child.Set("x", forms.NewInt(99)))

	v, err := g.Lookup("x")
	require.NoError(t, err)
	assert.True(t, forms.Equal(v, forms.NewInt(99)))
}

func TestExtendShadowsOuterBinding(t *testing.T) {
	g := NewGlobal()
	require.NoError(t, g.Define("x", forms.NewInt(1)))

	child, err := g.ExtendFrame([]string{"x"}, []forms.Form{forms.NewInt(2)})
	require.NoError(t, err)

	v, err := child.Lookup("x")
	require.NoError(t, err)
	assert.True(t, forms.Equal(v, forms.NewInt(2)))

	outer, err := g.Lookup("x")
	require.NoError(t, err)
	assert.True(t, forms.Equal(outer, forms.NewInt(1)))
}

func TestIsGlobal(t *testing.T) {
	g := NewGlobal()
	assert.True(t, g.IsGlobal())

	child, err := g.ExtendFrame(nil, nil)
	require.NoError(t, err)
	assert.False(t, child.IsGlobal())
}
