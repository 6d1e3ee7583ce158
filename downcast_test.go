// downcast_test.go — type identity and casts across the three representations.
package anyerr

import (
	"errors"
	"io/fs"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xgx-io/anyerr/kind"
)

// codeErr is a value-typed foreign error.
type codeErr struct{ code int }

func (e codeErr) Error() string { return "code " + strconv.Itoa(e.code) }

func TestIs_NativeRepresentations(t *testing.T) {
	t.Parallel()

	leaf := errs.Minimal("leaf")
	layered := leaf.Overlay(Msg("outer")).Context("k", "v").Build()

	for _, e := range []*testError{leaf, layered} {
		assert.True(t, Is[*testError](e))
		assert.False(t, Is[testError](e), "only the pointer type matches")
		assert.False(t, Is[error](e), "interface types never match")
		assert.False(t, Is[*fs.PathError](e))
		assert.False(t, Is[*anyMapError](e))
	}
}

func TestIs_Opaque(t *testing.T) {
	t.Parallel()

	e := errs.Wrap(&fs.PathError{Op: "stat", Path: "/x", Err: fs.ErrPermission})

	assert.True(t, Is[*fs.PathError](e))
	assert.False(t, Is[fs.PathError](e))
	assert.False(t, Is[*testError](e), "wrap never stores an *Error of the same instantiation")
	assert.False(t, Is[error](e))
}

func TestDowncast_RoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("pointer type", func(t *testing.T) {
		orig := &fs.PathError{Op: "open", Path: "/tmp/a", Err: fs.ErrNotExist}
		got, rest := Downcast[*fs.PathError](errs.Wrap(orig))
		assert.Nil(t, rest)
		assert.Same(t, orig, got)
	})
	t.Run("value type", func(t *testing.T) {
		got, rest := Downcast[codeErr](errs.Wrap(codeErr{code: 7}))
		assert.Nil(t, rest)
		assert.Equal(t, codeErr{code: 7}, got)
	})
	t.Run("failure hands back the original", func(t *testing.T) {
		w := errs.Wrap(codeErr{code: 7})
		got, rest := Downcast[*strconv.NumError](w)
		assert.Nil(t, got)
		assert.Same(t, w, rest)
		assert.Equal(t, "code 7", rest.Message())
		assert.Equal(t, w.Backtrace(), rest.Backtrace(), "backtrace survives a failed downcast")
	})
}

func TestDowncast_Native(t *testing.T) {
	t.Parallel()

	leaf := errs.Quick("leaf", kind.EntityAbsence)
	got, rest := Downcast[*testError](leaf)
	assert.Nil(t, rest)
	assert.Same(t, leaf, got)

	other, rest := Downcast[codeErr](leaf)
	assert.Equal(t, codeErr{}, other)
	assert.Same(t, leaf, rest)
}

func TestDowncastRef(t *testing.T) {
	t.Parallel()

	w := errs.Wrap(codeErr{code: 3})
	v, ok := DowncastRef[codeErr](w)
	require.True(t, ok)
	assert.Equal(t, 3, v.code)

	_, ok = DowncastRef[*testError](w)
	assert.False(t, ok)

	layered := w.Overlay(Msg("outer")).Build()
	self, ok := DowncastRef[*testError](layered)
	require.True(t, ok)
	assert.Same(t, layered, self)
	_, ok = DowncastRef[codeErr](layered)
	assert.False(t, ok, "layered values never expose a foreign type")
}

func TestDowncastMut_WritesThroughToPayload(t *testing.T) {
	t.Parallel()

	w := errs.Wrap(codeErr{code: 1})
	p, ok := DowncastMut[codeErr](w)
	require.True(t, ok)
	p.code = 2

	v, _ := DowncastRef[codeErr](w)
	assert.Equal(t, 2, v.code)
	assert.Equal(t, "code 2", w.Message())

	var target codeErr
	require.True(t, errors.As(w, &target))
	assert.Equal(t, 2, target.code)

	_, ok = DowncastMut[*fs.PathError](w)
	assert.False(t, ok)
}

func TestDowncastMut_Native(t *testing.T) {
	t.Parallel()

	leaf := errs.Minimal("leaf")
	p, ok := DowncastMut[*testError](leaf)
	require.True(t, ok)
	assert.Same(t, leaf, *p)

	_, ok = DowncastMut[codeErr](leaf)
	assert.False(t, ok)
}

func TestZeroError_Panics(t *testing.T) {
	t.Parallel()

	var zero testError
	assert.Panics(t, func() { _ = zero.Kind() })
	assert.Panics(t, func() { _ = Is[*testError](&zero) })
}
