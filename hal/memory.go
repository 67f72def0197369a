package hal

import (
	"sync"

	"cubespin/display"
)

// Memory is a HAL whose panel lives in RAM.
//
// Drawing goes to a back buffer; Display() copies it to the front buffer that
// Snapshot reads, so readers never see a half-drawn frame.
type Memory struct {
	logger Logger
	fb     *memFramebuffer
	kbd    *chanKeyboard
}

// NewMemory returns a width×height in-memory HAL. logger may be nil.
func NewMemory(width, height int, logger Logger) *Memory {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Memory{
		logger: logger,
		fb:     newMemFramebuffer(width, height),
		kbd:    &chanKeyboard{ch: make(chan KeyEvent, 64)},
	}
}

func (m *Memory) Logger() Logger   { return m.logger }
func (m *Memory) Display() Display { return memDisplay{fb: m.fb} }
func (m *Memory) Input() Input     { return memInput{kbd: m.kbd} }

// Snapshot copies the last presented frame into dst (same size).
func (m *Memory) Snapshot(dst *display.Mono) { m.fb.snapshot(dst) }

// Presents returns how many frames have been presented.
func (m *Memory) Presents() uint64 { return m.fb.presents() }

// Press queues a key press and release. It drops the event if the queue is full.
func (m *Memory) Press(code KeyCode) {
	m.kbd.emit(KeyEvent{Code: code, Press: true})
	m.kbd.emit(KeyEvent{Code: code, Press: false})
}

type memDisplay struct {
	fb *memFramebuffer
}

func (d memDisplay) Framebuffer() Framebuffer { return d.fb }

type memInput struct {
	kbd *chanKeyboard
}

func (in memInput) Keyboard() Keyboard { return in.kbd }

type memFramebuffer struct {
	*display.Mono

	mu    sync.Mutex
	front *display.Mono
	count uint64
}

func newMemFramebuffer(width, height int) *memFramebuffer {
	f := &memFramebuffer{front: display.NewMono(width, height, nil)}
	f.Mono = display.NewMono(width, height, f.present)
	return f
}

func (f *memFramebuffer) present(back *display.Mono) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	back.CopyTo(f.front)
	f.count++
	return nil
}

func (f *memFramebuffer) snapshot(dst *display.Mono) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.front.CopyTo(dst)
}

func (f *memFramebuffer) presents() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}

type chanKeyboard struct {
	ch chan KeyEvent
}

func (k *chanKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *chanKeyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}
