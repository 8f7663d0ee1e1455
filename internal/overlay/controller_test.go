package overlay

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vr-overlay/internal/vr"
	"vr-overlay/internal/vr/vrtest"
)

func newInitialized(t *testing.T, rt *vrtest.Runtime) *Controller {
	t.Helper()
	c, err := Open(rt, "HelloOverlay", "hello.overlay", OpenGL)
	require.NoError(t, err)
	t.Cleanup(c.Dispose)
	return c
}

func TestInitialize_Success(t *testing.T) {
	rt := vrtest.New()
	c := New(rt)
	assert.True(t, c.IsError(), "uninitialized controller must report error")

	require.NoError(t, c.Initialize("HelloOverlay", "hello.overlay", OpenGL))

	assert.False(t, c.IsError())
	assert.Equal(t, vr.OverlayHandle(1), c.Handle())
	assert.Equal(t, []string{"hello.overlay"}, rt.Keys)
	assert.Equal(t, []string{"HelloOverlay"}, rt.Names)
}

func TestInitialize_TextureFormatBounds(t *testing.T) {
	tests := []struct {
		format TextureFormat
		want   vr.TextureBounds
	}{
		{OpenGL, vr.TextureBounds{UMin: 0, VMin: 0, UMax: 1, VMax: 1}},
		{DirectX, vr.TextureBounds{UMin: 0, VMin: 1, UMax: 1, VMax: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			rt := vrtest.New()
			c, err := Open(rt, "n", "k", tt.format)
			require.NoError(t, err)
			defer c.Close()

			require.Len(t, rt.Bounds, 1)
			assert.Equal(t, tt.want, rt.Bounds[0])
			assert.Equal(t, tt.format, c.Format())
		})
	}
}

func TestInitialize_RuntimeInitFailure(t *testing.T) {
	rt := vrtest.New()
	rt.InitErr = vr.InitErrorHmdNotFound
	c := New(rt)

	err := c.Initialize("n", "k", OpenGL)

	var initErr *RuntimeInitError
	require.True(t, errors.As(err, &initErr))
	assert.Equal(t, vr.InitErrorHmdNotFound, initErr.Code)
	assert.Contains(t, err.Error(), "Init_HmdNotFound")
	assert.True(t, c.IsError())
	assert.Zero(t, rt.Count("CreateOverlay"))
	assert.Zero(t, rt.Shutdowns)
}

func TestInitialize_MissingOverlayInterface(t *testing.T) {
	rt := vrtest.New()
	rt.NoOverlayInterface = true
	c := New(rt)

	err := c.Initialize("n", "k", OpenGL)

	var initErr *RuntimeInitError
	require.True(t, errors.As(err, &initErr))
	assert.Equal(t, vr.InitErrorInterfaceNotFound, initErr.Code)
	assert.True(t, c.IsError())
	assert.Zero(t, rt.Shutdowns)
}

func TestInitialize_CreateFailure(t *testing.T) {
	rt := vrtest.New()
	rt.CreateErr = vr.OverlayErrorKeyInUse
	c := New(rt)

	err := c.Initialize("n", "dup.key", OpenGL)

	var createErr *OverlayCreateError
	require.True(t, errors.As(err, &createErr))
	assert.Equal(t, vr.OverlayErrorKeyInUse, createErr.Code)
	assert.Equal(t, "dup.key", createErr.Key)
	assert.True(t, c.IsError())
	assert.Equal(t, vr.InvalidOverlayHandle, c.Handle())
	assert.Empty(t, rt.Destroyed)
	assert.Zero(t, rt.Shutdowns, "connection belongs to the caller")
	assert.Empty(t, rt.Bounds)
}

func TestOpen_ReturnsNilOnError(t *testing.T) {
	rt := vrtest.New()
	rt.InitErr = vr.InitErrorInstallationNotFound

	c, err := Open(rt, "n", "k", OpenGL)
	assert.Nil(t, c)
	assert.Error(t, err)
}

func TestDispose_Idempotent(t *testing.T) {
	rt := vrtest.New()
	c, err := Open(rt, "n", "k", OpenGL)
	require.NoError(t, err)

	c.Dispose()
	c.Dispose()
	require.NoError(t, c.Close())

	assert.Equal(t, vr.InvalidOverlayHandle, c.Handle())
	assert.Equal(t, []vr.OverlayHandle{1}, rt.Destroyed)
	assert.Equal(t, 1, rt.Count("DestroyOverlay"))
	assert.Zero(t, rt.Shutdowns)
	assert.True(t, c.IsError())
}

func TestDispose_BeforeInitialize(t *testing.T) {
	rt := vrtest.New()
	c := New(rt)

	assert.NotPanics(t, c.Dispose)
	assert.Empty(t, rt.Calls)
}

func TestDispose_AbsorbsDestroyFailure(t *testing.T) {
	rt := vrtest.New()
	rt.DestroyErr = vr.OverlayErrorInvalidHandle
	c, err := Open(rt, "n", "k", OpenGL)
	require.NoError(t, err)

	c.Dispose()

	assert.Equal(t, vr.InvalidOverlayHandle, c.Handle())
	assert.True(t, c.IsError())
	assert.Zero(t, rt.Shutdowns)
}

func TestInitialize_Twice_ReleasesPreviousOverlay(t *testing.T) {
	rt := vrtest.New()
	c := newInitialized(t, rt)

	require.NoError(t, c.Initialize("n", "k2", DirectX))

	assert.Equal(t, []vr.OverlayHandle{1}, rt.Destroyed)
	assert.Equal(t, vr.OverlayHandle(2), c.Handle())
}

func TestForwarders(t *testing.T) {
	rt := vrtest.New()
	c := newInitialized(t, rt)

	c.SetShow(true)
	c.SetShow(false)
	c.SetAlpha(0.5)
	c.SetWidth(0.3)
	c.SetMouseScale(640, 480)
	c.ResetSeatedPosition()

	assert.Equal(t, []bool{true, false}, rt.Visible)
	assert.Equal(t, []float32{0.5}, rt.Alpha)
	assert.Equal(t, []float32{0.3}, rt.Width)
	assert.Equal(t, []vr.Vector2{{X: 640, Y: 480}}, rt.MouseScale)
	assert.Equal(t, 1, rt.SeatedReset)
	assert.Empty(t, rt.Submissions, "forwarders never submit a transform")
}

func TestSetTextureFromFile(t *testing.T) {
	rt := vrtest.New()
	c := newInitialized(t, rt)

	require.NoError(t, c.SetTextureFromFile("a.png"))
	assert.Equal(t, []string{"a.png"}, rt.Files)

	rt.FromFileErr = vr.OverlayErrorUnableToLoadFile
	err := c.SetTextureFromFile("missing.png")

	var texErr *TextureLoadError
	require.True(t, errors.As(err, &texErr))
	assert.Equal(t, vr.OverlayErrorUnableToLoadFile, texErr.Code)
	assert.Equal(t, "missing.png", texErr.Path)
	assert.False(t, c.IsError(), "texture failure leaves the overlay alive")
}

func TestSetTexture_UsesFormatType(t *testing.T) {
	rt := vrtest.New()
	c, err := Open(rt, "n", "k", DirectX)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.SetTexture(0xBEEF))
	require.Len(t, rt.Textures, 1)
	assert.Equal(t, vr.Texture{Handle: 0xBEEF, Type: vr.TextureTypeDirectX}, rt.Textures[0])

	rt.TextureErr = vr.OverlayErrorInvalidTexture
	var texErr *TextureLoadError
	require.True(t, errors.As(c.SetTexture(1), &texErr))
	assert.Empty(t, texErr.Path)
}

func TestOperationsAfterDispose(t *testing.T) {
	rt := vrtest.New()
	c, err := Open(rt, "n", "k", OpenGL)
	require.NoError(t, err)
	c.Dispose()
	calls := len(rt.Calls)

	c.SetShow(true)
	c.SetAlpha(1)
	c.UpdatePosition()
	assert.False(t, c.ProcessEvent(false))
	assert.ErrorIs(t, c.SetTextureFromFile("a.png"), ErrNotInitialized)
	assert.ErrorIs(t, c.SetTexture(1), ErrNotInitialized)

	assert.Len(t, rt.Calls, calls)
}

func TestDispose_LeavesOtherControllersAlone(t *testing.T) {
	rt := vrtest.New()
	a, err := Open(rt, "a", "a.key", OpenGL)
	require.NoError(t, err)
	b, err := Open(rt, "b", "b.key", OpenGL)
	require.NoError(t, err)

	a.Dispose()

	assert.Equal(t, []vr.OverlayHandle{1}, rt.Destroyed)
	assert.Zero(t, rt.Shutdowns)
	assert.False(t, b.IsError())
	assert.Equal(t, vr.OverlayHandle(2), b.Handle())
}
