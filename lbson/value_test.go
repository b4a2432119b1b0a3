package lbson

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ennanzhai/hails/internal/rendermode"
	"github.com/ennanzhai/hails/lio"
)

func TestValueEquality(t *testing.T) {
	t.Parallel()

	a, err := Val[level]("same")
	require.NoError(t, err)
	b, err := Val[level]("same")
	require.NoError(t, err)
	c, err := Val[level]("different")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestLabeledValueNeverEqual(t *testing.T) {
	t.Parallel()

	x, err := Val[level](lio.LabelTCB(secret, "s"))
	require.NoError(t, err)
	y, err := Val[level](lio.LabelTCB(secret, "s"))
	require.NoError(t, err)

	assert.False(t, x.Equal(y))
	assert.False(t, x.Equal(x), "a labeled value must compare unequal even to itself")

	p, err := Val[level](PU[level]("s"))
	require.NoError(t, err)
	assert.False(t, p.Equal(p))

	plain, err := Val[level]("s")
	require.NoError(t, err)
	assert.False(t, plain.Equal(x))
	assert.False(t, x.Equal(plain))
}

func TestFieldEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, mustField(t, "k", int32(1)).Equal(mustField(t, "k", int32(1))))
	assert.False(t, mustField(t, "k", int32(1)).Equal(mustField(t, "j", int32(1))))
	assert.False(t, mustField(t, "k", int32(1)).Equal(mustField(t, "k", int32(2))))

	secVal, err := Val[level](lio.LabelTCB(secret, "v"))
	require.NoError(t, err)
	sec := Field[level]{Key: "k", Value: secVal}
	assert.False(t, sec.Equal(sec), "a field holding labeled content must compare unequal even to itself")
}

func TestValueKinds(t *testing.T) {
	t.Parallel()

	plain, err := Val[level](int32(1))
	require.NoError(t, err)
	require.Equal(t, KindPlain, plain.Kind())
	_, ok := plain.Plain()
	assert.True(t, ok)
	_, ok = plain.Labeled()
	assert.False(t, ok)
	_, ok = plain.Policy()
	assert.False(t, ok)

	labeled, err := Val[level](lio.LabelTCB(public, "x"))
	require.NoError(t, err)
	require.Equal(t, KindLabeled, labeled.Kind())
	_, ok = labeled.Plain()
	assert.False(t, ok)
	_, ok = labeled.Labeled()
	assert.True(t, ok)

	pol, err := Val[level](PU[level]("x"))
	require.NoError(t, err)
	require.Equal(t, KindPolicy, pol.Kind())
	_, ok = pol.Policy()
	assert.True(t, ok)
}

func TestPolicyLabeledNotComparable(t *testing.T) {
	t.Parallel()

	// No instantiation may support ordinary ==, whatever the payload type;
	// comparison would inspect content the policy is meant to protect.
	assert.False(t, reflect.TypeOf(PU[level]("s3cret-payload")).Comparable())
	assert.False(t, reflect.TypeOf(PL(lio.LabelTCB(secret, 7))).Comparable())
}

func TestPolicyLabeledStates(t *testing.T) {
	t.Parallel()

	pu := PU[level]("waiting")
	assert.False(t, pu.Applied())
	payload, pending := pu.Unapplied()
	assert.True(t, pending)
	assert.Equal(t, "waiting", payload)
	_, applied := pu.Labeled()
	assert.False(t, applied)

	pl := PL(lio.LabelTCB(secret, "done"))
	assert.True(t, pl.Applied())
	_, pending = pl.Unapplied()
	assert.False(t, pending)
	lv, applied := pl.Labeled()
	assert.True(t, applied)
	assert.Equal(t, "done", lio.UnlabelTCB(lv))
}

func TestRendering(t *testing.T) {
	t.Parallel()

	plain, err := Val[level]("visible")
	require.NoError(t, err)
	assert.Contains(t, plain.String(), "visible")

	labeled, err := Val[level](lio.LabelTCB(secret, "hidden"))
	require.NoError(t, err)
	pol, err := Val[level](PU[level]("hidden"))
	require.NoError(t, err)

	if rendermode.Debug {
		assert.Contains(t, labeled.String(), "hidden")
		assert.Contains(t, pol.String(), "hidden")
	} else {
		assert.Equal(t, protectedPlaceholder, labeled.String())
		assert.Equal(t, protectedPlaceholder, pol.String())
		assert.NotContains(t, Field[level]{Key: "k", Value: labeled}.String(), "hidden")
	}
}
