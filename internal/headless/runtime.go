// Package headless implements the vr runtime boundary in process, without a
// compositor. Overlays are tracked in memory, file textures are decoded to
// validate them and can be written out as WebP previews, and quit requests
// are delivered as events. Runtime is safe for concurrent use so signal
// handlers can call RequestQuit.
package headless

import (
	"errors"
	"image"
	"io/fs"
	"log/slog"
	"path/filepath"
	"regexp"
	"sync"

	"vr-overlay/internal/texture"
	"vr-overlay/internal/vr"
)

const (
	MaxKeyLength  = 256
	MaxNameLength = 128
	MaxOverlays   = 64
)

// Options configures a headless Runtime.
type Options struct {
	// Logger receives call traces at debug level. Defaults to slog.Default().
	Logger *slog.Logger

	// PreviewDir, when set, receives <key>.webp each time an overlay's file
	// texture or texture bounds change.
	PreviewDir string

	// LeftController and RightController are the device indices returned for
	// controller role lookups. Zero means the controller is not connected.
	LeftController  vr.TrackedDeviceIndex
	RightController vr.TrackedDeviceIndex

	// InitError makes Init fail with the given code.
	InitError vr.InitError
}

// OverlayState is a snapshot of one overlay.
type OverlayState struct {
	Key, Name  string
	Visible    bool
	Alpha      float32
	Width      float32
	MouseScale vr.Vector2
	Bounds     vr.TextureBounds

	// Transform is the last submitted matrix. Relative selects between
	// Device and Universe as its reference.
	Transform    vr.Matrix34
	HasTransform bool
	Relative     bool
	Device       vr.TrackedDeviceIndex
	Universe     vr.TrackingUniverse

	TexturePath string
	TextureSize image.Point
	Native      vr.Texture
	Pending     int
}

type overlayState struct {
	OverlayState
	image  *image.NRGBA
	events []vr.Event
}

// Runtime is an in-memory compositor.
type Runtime struct {
	opts     Options
	log      *slog.Logger
	textures *texture.Cache

	// previewMu orders preview writes without holding mu during encoding.
	previewMu sync.Mutex

	mu           sync.Mutex
	connected    bool
	nextHandle   vr.OverlayHandle
	overlays     map[vr.OverlayHandle]*overlayState
	keys         map[string]vr.OverlayHandle
	seatedResets int
}

// New returns a disconnected headless runtime.
func New(opts Options) *Runtime {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Runtime{
		opts:       opts,
		log:        log,
		textures:   texture.NewCache(),
		nextHandle: 1,
		overlays:   make(map[vr.OverlayHandle]*overlayState),
		keys:       make(map[string]vr.OverlayHandle),
	}
}

func (r *Runtime) Init(appType vr.ApplicationType) (vr.System, vr.InitError) {
	if r.opts.InitError != vr.InitErrorNone {
		return nil, r.opts.InitError
	}
	r.mu.Lock()
	r.connected = true
	r.mu.Unlock()
	r.log.Debug("headless: init", "app_type", int(appType))
	return r, vr.InitErrorNone
}

func (r *Runtime) Overlay() vr.Overlay {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.connected {
		return nil
	}
	return r
}

// Shutdown disconnects and destroys every overlay.
func (r *Runtime) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connected = false
	clear(r.overlays)
	clear(r.keys)
	r.log.Debug("headless: shutdown")
}

// Connected reports whether Init succeeded and Shutdown has not been called.
func (r *Runtime) Connected() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.connected
}

// RequestQuit queues a quit event on every overlay.
func (r *Runtime) RequestQuit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, st := range r.overlays {
		st.events = append(st.events, vr.Event{Type: vr.EventQuit})
	}
}

// Post queues an event on one overlay.
func (r *Runtime) Post(h vr.OverlayHandle, ev vr.Event) vr.OverlayError {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, code := r.lookup(h)
	if code != vr.OverlayErrorNone {
		return code
	}
	st.events = append(st.events, ev)
	return vr.OverlayErrorNone
}

// State returns a snapshot of the overlay registered under key.
func (r *Runtime) State(key string) (OverlayState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.keys[key]
	if !ok {
		return OverlayState{}, false
	}
	st := r.overlays[h]
	snap := st.OverlayState
	snap.Pending = len(st.events)
	return snap, true
}

// Overlays returns the number of live overlays.
func (r *Runtime) Overlays() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.overlays)
}

// SeatedResets returns how many times the seated pose was recentered.
func (r *Runtime) SeatedResets() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seatedResets
}

// System

func (r *Runtime) TrackedDeviceIndexForControllerRole(role vr.ControllerRole) vr.TrackedDeviceIndex {
	var idx vr.TrackedDeviceIndex
	switch role {
	case vr.ControllerRoleLeftHand:
		idx = r.opts.LeftController
	case vr.ControllerRoleRightHand:
		idx = r.opts.RightController
	}
	if idx == vr.TrackedDeviceIndexHMD {
		return vr.TrackedDeviceIndexInvalid
	}
	return idx
}

func (r *Runtime) ResetSeatedZeroPose() {
	r.mu.Lock()
	r.seatedResets++
	r.mu.Unlock()
	r.log.Debug("headless: seated zero pose reset")
}

// lookup must be called with r.mu held.
func (r *Runtime) lookup(h vr.OverlayHandle) (*overlayState, vr.OverlayError) {
	if h == vr.InvalidOverlayHandle {
		return nil, vr.OverlayErrorInvalidHandle
	}
	st, ok := r.overlays[h]
	if !ok {
		return nil, vr.OverlayErrorUnknownOverlay
	}
	return st, vr.OverlayErrorNone
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// encodePreview is replaced in tests.
var encodePreview = texture.WritePreview

type previewJob struct {
	key    string
	image  *image.NRGBA
	bounds vr.TextureBounds
}

// preview snapshots what a preview write needs. It must be called with r.mu
// held and returns nil when there is nothing to write. Decoded images are
// shared read-only, so the pointer is safe to use after unlocking.
func (r *Runtime) preview(st *overlayState) *previewJob {
	if r.opts.PreviewDir == "" || st.image == nil {
		return nil
	}
	return &previewJob{key: st.Key, image: st.image, bounds: st.Bounds}
}

// writePreview must be called without r.mu held.
func (r *Runtime) writePreview(job *previewJob) {
	if job == nil {
		return
	}
	r.previewMu.Lock()
	defer r.previewMu.Unlock()

	path := filepath.Join(r.opts.PreviewDir, unsafeFileChars.ReplaceAllString(job.key, "_")+".webp")
	if err := encodePreview(path, texture.ApplyBounds(job.image, job.bounds)); err != nil {
		r.log.Warn("headless: preview failed", "key", job.key, "error", err)
		return
	}
	r.log.Debug("headless: preview written", "key", job.key, "path", path)
}

func textureError(err error) vr.OverlayError {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return vr.OverlayErrorUnableToLoadFile
	}
	return vr.OverlayErrorInvalidTexture
}

var (
	_ vr.Runtime = (*Runtime)(nil)
	_ vr.System  = (*Runtime)(nil)
	_ vr.Overlay = (*Runtime)(nil)
)
