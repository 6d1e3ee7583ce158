// integration_test.go — cross-cutting tests through the public API only.
package anyerr_test

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xgx-io/anyerr"
	"github.com/xgx-io/anyerr/kind"
	"github.com/xgx-io/anyerr/report"
	"github.com/xgx-io/anyerr/store"
)

type (
	appError = anyerr.Error[store.AnyMap, kind.Standard]
	appKind  = kind.Standard
)

var app anyerr.Factory[store.AnyMap, kind.Standard]

var (
	fRequestID = anyerr.Field[string]("request_id")
	fUserID    = anyerr.Field[int]("user_id")
)

// repository -> service -> handler, each adding a layer.
func findUser(id int) *appError {
	return app.Builder().
		Kind(kind.EntityAbsence).
		Message("no such user").
		Context("user_id", id).
		Build()
}

func loadProfile(ctx context.Context, id int) *appError {
	if err := ctx.Err(); err != nil {
		return app.Wrap(err).
			Overlay(anyerr.WithKind("profile load interrupted", kind.InfrastructureFailure)).
			Context("user_id", id).
			Build()
	}
	return findUser(id).
		Overlay(anyerr.Msg("could not load profile")).
		Build()
}

func handle(ctx context.Context, reqID string, id int) error {
	if err := loadProfile(ctx, id); err != nil {
		return err.Overlay(anyerr.Msg("GET /profile failed")).Context("request_id", reqID).Build()
	}
	return nil
}

func TestIntegration_LayeredServiceChain(t *testing.T) {
	t.Parallel()

	err := handle(context.Background(), "req-1", 7)
	require.Error(t, err)

	e, ok := anyerr.Find[store.AnyMap, appKind](err)
	require.True(t, ok)
	assert.Equal(t, kind.Unknown, e.Kind())
	assert.True(t, anyerr.HasKind[store.AnyMap](err, kind.EntityAbsence))

	id, ok := fUserID.Get(err)
	require.True(t, ok)
	assert.Equal(t, 7, id)
	rid, _ := fRequestID.Get(err)
	assert.Equal(t, "req-1", rid)

	got := report.Wrap(e).Backtrace(false).String()
	assert.Equal(t, "Error:\n"+
		"    (Unknown) GET /profile failed\n"+
		"    [request_id = \"req-1\"]\n"+
		"Caused by:\n"+
		"    (Unknown) could not load profile\n"+
		"Caused by:\n"+
		"    (EntityAbsence) no such user\n"+
		"    [user_id = 7]\n", got)

	compact := report.Wrap(e).Pretty(false).Kind(false).Backtrace(false).String()
	assert.Equal(t, `GET /profile failed: could not load profile: no such user [request_id = "req-1", user_id = 7]`, compact)
}

func TestIntegration_CanceledContextIsReachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := handle(ctx, "req-2", 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	k, ok := anyerr.KindOf[store.AnyMap, appKind](err)
	require.True(t, ok)
	assert.Equal(t, kind.Unknown, k, "outermost layer decides")
	assert.True(t, anyerr.HasKind[store.AnyMap](err, kind.InfrastructureFailure))
	assert.True(t, anyerr.HasKind[store.AnyMap](err, kind.Raw), "the opaque layer reports Raw")

	e, _ := anyerr.Find[store.AnyMap, appKind](err)
	root := anyerr.Root(e)
	assert.True(t, root.IsOpaque())
	v, ok := anyerr.DowncastRef[*appError](root)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestIntegration_JoinedFailures(t *testing.T) {
	t.Parallel()

	var parts []error
	want := 0
	for i := range 12 {
		switch {
		case i%3 == 0:
			parts = append(parts, nil)
		case i%2 == 0:
			parts = append(parts, app.Quick(fmt.Sprintf("field %d invalid", i), kind.ValueValidation))
			want++
		default:
			parts = append(parts, fmt.Errorf("e%d", i))
			want++
		}
	}
	joined := errors.Join(parts...)

	leaves := anyerr.Flatten(joined)
	require.Len(t, leaves, want)
	for _, l := range leaves {
		assert.ErrorIs(t, joined, l)
	}
	assert.True(t, anyerr.HasKind[store.AnyMap](joined, kind.ValueValidation))
	assert.False(t, anyerr.HasKind[store.AnyMap](joined, kind.RuleViolation))

	wrapped := app.Wrap(joined).Overlay(anyerr.Msg("batch rejected")).Build()
	assert.Equal(t, "batch rejected", wrapped.Error())
	assert.Len(t, anyerr.Flatten(wrapped), want)
}

func TestIntegration_PkgErrorsInterop(t *testing.T) {
	t.Parallel()

	base := pkgerrors.Wrap(fs.ErrPermission, "open /etc/shadow")
	e := app.Wrap(base).
		Overlay(anyerr.WithKind("cannot read credentials", kind.InfrastructureFailure)).
		Context("path", "/etc/shadow").
		Build()

	assert.True(t, pkgerrors.Is(e, fs.ErrPermission))
	assert.ErrorIs(t, e, fs.ErrPermission)

	var target *appError
	require.True(t, pkgerrors.As(fmt.Errorf("outer: %w", e), &target))
	assert.Same(t, e, target)

	assert.False(t, anyerr.Is[error](e.Source()), "interface types never match the tag")
	assert.Same(t, base, errors.Unwrap(e.Source()))

	out := report.Wrap(e).Backtrace(false).String()
	assert.True(t, strings.HasSuffix(out, "    (Raw) open /etc/shadow: permission denied\n"), out)
}

func TestIntegration_ReportCaptureForeign(t *testing.T) {
	t.Parallel()

	r := report.Capture[store.AnyMap, appKind](func() error {
		return fs.ErrNotExist
	})
	require.True(t, r.Failed())
	assert.Equal(t, report.ExitFailure, r.ExitCode())

	var sb strings.Builder
	code := r.Pretty(false).Backtrace(false).Terminate(&sb)
	assert.Equal(t, report.ExitFailure, code)
	assert.Equal(t, "(Raw) file does not exist\n", sb.String())

	ok := report.Capture[store.AnyMap, appKind](func() error { return nil })
	assert.False(t, ok.Failed())
	assert.Equal(t, report.ExitSuccess, ok.ExitCode())
}

func TestIntegration_DuplicateKeysFirstEntryWins(t *testing.T) {
	t.Parallel()

	e := app.Builder().
		Message("dup").
		Context("user_id", 1).
		Context("user_id", 2).
		Build()

	id, ok := fUserID.Get(e)
	require.True(t, ok)
	assert.Equal(t, 1, id)
	assert.Equal(t, 2, e.Context(anyerr.All).Count(), "both entries are kept")
}

func TestIntegration_PointerValues(t *testing.T) {
	t.Parallel()

	type session struct{ id string }
	s := &session{id: "s-1"}
	fSession := anyerr.Field[*session]("session")

	e := app.Builder().Message("expired").Context("session", s).Build()
	got, ok := fSession.Get(e)
	require.True(t, ok)
	assert.Same(t, s, got)
}

func TestIntegration_ConcurrentReads(t *testing.T) {
	t.Parallel()

	err := handle(context.Background(), "req-c", 3)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if id, ok := fUserID.Get(err); !ok || id != 3 {
					t.Errorf("concurrent read: %v %v", id, ok)
					return
				}
				_ = report.Wrap(err.(*appError)).Backtrace(false).String()
			}
		}()
	}
	wg.Wait()
}
