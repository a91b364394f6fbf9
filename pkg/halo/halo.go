// Package halo draws terminal spinners: an animated frame next to a status
// message, redrawn in place, finished with a success, failure, warning or
// info line.
//
//	s, err := halo.New(halo.WithText("Loading"), halo.WithSpinner("dots"))
//	if err != nil {
//		return err
//	}
//	if err := s.Start(); err != nil {
//		return err
//	}
//	// ... do work ...
//	return s.Succeed("Loaded")
//
// A spinner runs one goroutine while animating. Stop and the persist methods
// wait for it to exit, so nothing is drawn after they return.
package halo

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rileyhilliard/halo/internal/errors"
	"github.com/rileyhilliard/halo/internal/frames"
	"github.com/rileyhilliard/halo/internal/hostenv"
	"github.com/rileyhilliard/halo/internal/logger"
	"github.com/rileyhilliard/halo/internal/textutil"
	"github.com/rileyhilliard/halo/internal/ui/style"
)

// Spinner is an animated status indicator. It is safe for concurrent use.
type Spinner struct {
	life sync.Mutex // serializes start and stop sequences
	mu   sync.Mutex

	text       string
	textFrames []string
	textIndex  int
	color      string
	textColor  string
	set        frames.Set
	frame      int
	placement  Placement
	animation  Animation
	indent     string
	enabled    bool

	env    Environment
	target RenderTarget
	styler *style.Styler
	log    logger.Logger

	running   bool // the animation goroutine is drawing
	active    bool // started and not yet stopped: line drawn, cursor hidden
	startTime time.Time
	stopChan  chan struct{}
	doneChan  chan struct{}
	cursor    *cursorGuard
	err       error
}

// New creates a spinner. It fails with a configuration error for an unknown
// spinner name, an empty custom frame list, or a bad placement.
func New(opts ...Option) (*Spinner, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.placement != PlacementLeft && o.placement != PlacementRight {
		return nil, errors.New(errors.ErrConfig,
			"Unknown spinner placement",
			"Use halo.PlacementLeft or halo.PlacementRight.")
	}

	stream := o.stream
	if stream == nil {
		stream = os.Stderr
	}

	env := hostenv.Detect()
	if o.env != nil {
		env = *o.env
	}

	supported := hostenv.IsSupported()
	if o.supported != nil {
		supported = *o.supported
	}

	var set frames.Set
	var err error
	if o.custom {
		set, err = frames.Custom(o.frames, o.interval)
	} else {
		set, err = frames.Resolve(o.spinner, supported)
	}
	if err != nil {
		return nil, err
	}
	if o.interval > 0 {
		set.Interval = o.interval
	}

	target := o.target
	if target == nil {
		target = NewTarget(env, stream)
	}

	styler := style.NewStyler(stream)
	styler.SetSupported(supported)

	log := o.log
	if log == nil {
		log = logger.Default()
	}

	s := &Spinner{
		color:     o.color,
		textColor: o.textColor,
		set:       set,
		placement: o.placement,
		animation: o.animation,
		indent:    o.indent,
		enabled:   o.enabled,
		env:       env,
		target:    target,
		styler:    styler,
		log:       log,
	}
	s.setTextLocked(o.text)
	return s, nil
}

// Start begins the animation. Calling it while running does nothing. The
// first frame is drawn before Start returns, and a failure to draw it is
// returned as a write error with the cursor already restored.
//
// If the previous animation stopped itself on a write error that nobody has
// collected yet, Start returns that error instead of starting; call Start
// again to restart.
func (s *Spinner) Start() error {
	return s.start(nil)
}

// StartWith sets the text, then starts the animation.
func (s *Spinner) StartWith(text string) error {
	return s.start(&text)
}

func (s *Spinner) start(text *string) error {
	s.life.Lock()
	defer s.life.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	if text != nil {
		s.setTextLocked(*text)
	}
	if !s.enabled || s.running {
		return nil
	}

	s.reapLocked()
	if s.err != nil {
		return s.finishLocked()
	}
	s.cursor = hideCursor(s.target, &s.mu)
	s.startTime = time.Now()

	if err := s.renderLocked(); err != nil {
		s.releaseCursorLocked()
		s.log.Warn("couldn't draw the first frame: %v", err)
		return err
	}

	s.running = true
	s.active = true
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})
	go s.animate(s.stopChan, s.doneChan, s.set.Interval)

	s.log.Debug("spinner started (%s, %s)", s.set.Name, s.set.Interval)
	return nil
}

// reapLocked collects an animation goroutine that stopped itself after a
// write error. Such a goroutine no longer takes the lock, so waiting here
// is safe.
func (s *Spinner) reapLocked() {
	if s.stopChan == nil {
		return
	}
	close(s.stopChan)
	<-s.doneChan
	s.stopChan, s.doneChan = nil, nil
}

func (s *Spinner) animate(stop <-chan struct{}, done chan<- struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer close(done)

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			select {
			case <-stop:
				s.mu.Unlock()
				return
			default:
			}
			if err := s.renderLocked(); err != nil {
				s.err = err
				s.running = false
				s.releaseCursorLocked()
				s.log.Warn("spinner stopped, output failed: %v", err)
				s.mu.Unlock()
				return
			}
			s.mu.Unlock()
		}
	}
}

// Stop halts the animation, clears the line and shows the cursor again.
// Stopping an idle spinner does nothing. If the animation stopped itself
// because the stream failed, that error is returned here.
func (s *Spinner) Stop() error {
	s.life.Lock()
	defer s.life.Unlock()
	return s.halt()
}

// halt stops the animation and waits for it. The caller holds life.
func (s *Spinner) halt() error {
	s.mu.Lock()
	done := s.haltLocked()
	s.mu.Unlock()

	if done != nil {
		<-done
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finishLocked()
}

func (s *Spinner) haltLocked() chan struct{} {
	if s.stopChan == nil {
		return nil
	}
	close(s.stopChan)
	done := s.doneChan
	s.stopChan, s.doneChan = nil, nil
	s.running = false
	return done
}

func (s *Spinner) finishLocked() error {
	err := s.err
	s.err = nil

	if !s.active {
		return err
	}
	s.active = false

	// A stream that already failed isn't written to again.
	if s.enabled && err == nil {
		if cerr := s.target.Clear(); cerr != nil {
			err = writeError(cerr)
		}
	}

	s.frame = 0
	s.releaseCursorLocked()
	s.log.Debug("spinner stopped after %s", time.Since(s.startTime).Round(time.Millisecond))
	return err
}

func (s *Spinner) releaseCursorLocked() {
	s.cursor.release()
	s.cursor = nil
}

// Succeed stops the spinner and persists a success line. Empty text keeps
// the current text.
func (s *Spinner) Succeed(text string) error {
	return s.persistStatus(frames.StatusSuccess, text)
}

// Fail stops the spinner and persists a failure line.
func (s *Spinner) Fail(text string) error {
	return s.persistStatus(frames.StatusFail, text)
}

// Warn stops the spinner and persists a warning line.
func (s *Spinner) Warn(text string) error {
	return s.persistStatus(frames.StatusWarning, text)
}

// Info stops the spinner and persists an info line.
func (s *Spinner) Info(text string) error {
	return s.persistStatus(frames.StatusInfo, text)
}

func (s *Spinner) persistStatus(st frames.Status, text string) error {
	s.mu.Lock()
	symbol := s.styler.Status(st)
	s.mu.Unlock()
	return s.StopAndPersist(symbol, text)
}

// StopAndPersist stops the spinner and writes "<symbol> <text>" as a final
// line. An empty symbol draws a blank; empty text keeps the current text.
func (s *Spinner) StopAndPersist(symbol, text string) error {
	s.life.Lock()
	defer s.life.Unlock()

	s.mu.Lock()
	enabled := s.enabled
	s.mu.Unlock()
	if !enabled {
		return nil
	}

	stopErr := s.halt()

	s.mu.Lock()
	defer s.mu.Unlock()

	if text == "" {
		text = s.text
	}
	text = s.styler.Text(strings.TrimSpace(text), s.textColor)
	if symbol == "" {
		symbol = " "
	}

	if err := s.target.Persist(s.composeLocked(symbol, text)); err != nil {
		s.log.Warn("couldn't write final line: %v", err)
		return joinErrors(stopErr, writeError(err))
	}
	return stopErr
}

// Clear erases the spinner's line without stopping it. The next frame
// redraws it.
func (s *Spinner) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || !s.active {
		return nil
	}
	if err := s.target.Clear(); err != nil {
		return writeError(err)
	}
	return nil
}

// Frame builds the next line to draw and advances the animation by one frame.
func (s *Spinner) Frame() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked()
}

func (s *Spinner) renderLocked() error {
	if err := s.target.Render(s.frameLocked()); err != nil {
		return writeError(err)
	}
	return nil
}

func (s *Spinner) frameLocked() string {
	raw := s.set.Frame(s.frame)
	s.frame = frames.Next(s.frame, s.set.Len())

	text := s.nextTextLocked()
	avail := s.target.Width() - textutil.Width(s.indent) - textutil.Width(raw) - 1
	text = s.styler.Text(textutil.Truncate(text, avail), s.textColor)

	return s.composeLocked(s.styler.Frame(raw, s.color), text)
}

func (s *Spinner) nextTextLocked() string {
	if len(s.textFrames) == 0 {
		return ""
	}
	if len(s.textFrames) == 1 {
		return s.textFrames[0]
	}
	text := s.textFrames[s.textIndex]
	s.textIndex = frames.Next(s.textIndex, len(s.textFrames))
	return text
}

func (s *Spinner) composeLocked(symbol, text string) string {
	if s.placement == PlacementRight {
		return s.indent + text + " " + symbol
	}
	return s.indent + symbol + " " + text
}

// textWidthLocked is the room left for text next to the widest frame.
func (s *Spinner) textWidthLocked() int {
	return s.target.Width() - textutil.Width(s.indent) - s.set.MaxWidth(textutil.Width) - 1
}

func (s *Spinner) setTextLocked(text string) {
	s.text = text
	s.textFrames = frames.TextFrames(text, s.textWidthLocked(), s.animation)
	s.textIndex = 0
}

// Text returns the current text.
func (s *Spinner) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// SetText changes the text. A running spinner shows it on its next frame.
func (s *Spinner) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setTextLocked(text)
}

// SetTextValue sets the text from a dynamic value such as a decoded config
// field. Values that aren't text-like return a validation error.
func (s *Spinner) SetTextValue(v any) error {
	text, ok := textutil.AsText(v)
	if !ok {
		return errors.New(errors.ErrValidation,
			"Spinner text has to be a string",
			"Got a value that can't be shown as text; quote it in your config.")
	}
	s.SetText(text)
	return nil
}

// Color returns the spinner color name.
func (s *Spinner) Color() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.color
}

// SetColor changes the spinner color. It applies from the next frame.
func (s *Spinner) SetColor(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color = color
}

// TextColor returns the text color name.
func (s *Spinner) TextColor() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.textColor
}

// SetTextColor changes the text color. An empty name leaves text unstyled.
func (s *Spinner) SetTextColor(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.textColor = color
}

// SetSpinner switches to a built-in frame set and restarts its cycle. The
// new interval applies the next time the spinner is started.
func (s *Spinner) SetSpinner(name string) error {
	set, err := frames.Resolve(name, s.styler.Supported())
	if err != nil {
		return err
	}
	s.useSet(set)
	return nil
}

// SetFrames switches to a custom frame sequence, keeping the current interval.
func (s *Spinner) SetFrames(list ...string) error {
	s.mu.Lock()
	interval := s.set.Interval
	s.mu.Unlock()

	set, err := frames.Custom(list, interval)
	if err != nil {
		return err
	}
	s.useSet(set)
	return nil
}

func (s *Spinner) useSet(set frames.Set) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = set
	s.frame = 0
	s.setTextLocked(s.text)
}

// Frames returns the name, frames and interval of the active frame set.
func (s *Spinner) Frames() (name string, list []string, interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Name, append([]string(nil), s.set.Frames...), s.set.Interval
}

// Placement returns the side of the text the spinner is drawn on.
func (s *Spinner) Placement() Placement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placement
}

// SetPlacement moves the spinner to the left or right of the text.
func (s *Spinner) SetPlacement(p Placement) error {
	if p != PlacementLeft && p != PlacementRight {
		return errors.New(errors.ErrConfig, "Unknown spinner placement", "Use halo.PlacementLeft or halo.PlacementRight.")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.placement = p
	return nil
}

// SetAnimation changes how long text is shown and rebuilds the text frames.
func (s *Spinner) SetAnimation(a Animation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.animation = a
	s.setTextLocked(s.text)
}

// SetIndent changes the prefix for every line.
func (s *Spinner) SetIndent(indent string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.indent = indent
	s.setTextLocked(s.text)
}

// Enabled reports whether the spinner draws anything.
func (s *Spinner) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// SetEnabled turns output on or off. Disabling a running spinner stops it first.
func (s *Spinner) SetEnabled(enabled bool) error {
	s.life.Lock()
	defer s.life.Unlock()

	var err error
	if !enabled {
		err = s.halt()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
	return err
}

// IsRunning reports whether the animation is currently drawing. It turns
// false on Stop, and also when a write failure stopped the animation.
func (s *Spinner) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Err returns the write error that stopped the animation, if any, without
// clearing it.
func (s *Spinner) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Environment returns the environment the spinner was built for.
func (s *Spinner) Environment() Environment {
	return s.env
}

// Elapsed returns the time since the spinner was last started.
func (s *Spinner) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}
