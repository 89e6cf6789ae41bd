// Package giowindow presents composited frames in a borderless gio window.
//
// It is the portable presentation backend: each finished frame is copied
// under a mutex and the window is invalidated, so the compositing loop
// never blocks on the window system. A true click-through layered overlay
// needs OS-specific window styles and belongs in a platform-specific
// Presenter; this backend renders the identical frames in a normal window.
package giowindow

import (
	"errors"
	"image"
	"sync"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// ErrClosed is returned by Present after the window has been destroyed.
var ErrClosed = errors.New("giowindow: window closed")

// Presenter owns one gio window and its event loop goroutine.
type Presenter struct {
	win *app.Window

	mu     sync.Mutex
	frame  *image.RGBA
	origin image.Point

	done     chan struct{}
	closeErr error
}

// New creates the window and starts its event loop. Call Main from the
// main goroutine afterwards; gio requires ownership of the main thread.
func New(title string, size image.Point) *Presenter {
	w := new(app.Window)
	w.Option(app.Title(title))
	w.Option(app.Size(unit.Dp(float32(size.X)), unit.Dp(float32(size.Y))))
	w.Option(app.Decorated(false))

	p := &Presenter{
		win:  w,
		done: make(chan struct{}),
	}
	go p.loop()
	return p
}

// Main hands the main thread to the window system. It does not return;
// run everything else in goroutines before calling it.
func Main() {
	app.Main()
}

// Present stores a copy of the frame and schedules a redraw. The copy is
// required because the caller reuses the backbuffer on the next tick.
func (p *Presenter) Present(frame *image.RGBA, origin image.Point) error {
	select {
	case <-p.done:
		return ErrClosed
	default:
	}

	p.mu.Lock()
	b := frame.Bounds()
	if p.frame == nil || p.frame.Bounds().Size() != b.Size() {
		p.frame = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	for y := 0; y < b.Dy(); y++ {
		si := frame.PixOffset(b.Min.X, b.Min.Y+y)
		di := p.frame.PixOffset(0, y)
		copy(p.frame.Pix[di:di+b.Dx()*4], frame.Pix[si:si+b.Dx()*4])
	}
	p.origin = origin
	p.mu.Unlock()

	p.win.Invalidate()
	return nil
}

// Close asks the window to shut down and waits for its event loop to end.
func (p *Presenter) Close() error {
	select {
	case <-p.done:
		return p.closeErr
	default:
	}
	p.win.Perform(system.ActionClose)
	<-p.done
	return p.closeErr
}

// Done is closed when the window has been destroyed (by Close or by the
// user); the owner uses it to stop the compositing loop.
func (p *Presenter) Done() <-chan struct{} {
	return p.done
}

// loop runs the window event loop until destruction.
func (p *Presenter) loop() {
	var ops op.Ops
	for {
		switch e := p.win.Event().(type) {
		case app.DestroyEvent:
			p.closeErr = e.Err
			close(p.done)
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			p.mu.Lock()
			if p.frame != nil {
				paint.NewImageOp(p.frame).Add(gtx.Ops)
				paint.PaintOp{}.Add(gtx.Ops)
			}
			p.mu.Unlock()
			e.Frame(gtx.Ops)
		}
	}
}
