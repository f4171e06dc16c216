package service

import (
	"sync"
	"sync/atomic"
	"time"

	"dbgvis/internal/vis"
	"dbgvis/pkg/logging"
)

const logSubsystem = "service"

// State is the lifecycle state of a Service.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
)

// String makes State satisfy the fmt.Stringer interface.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateStarting:
		return "Starting"
	case StateRunning:
		return "Running"
	case StateStopping:
		return "Stopping"
	default:
		return "Unknown"
	}
}

// FrameCallback runs once per frame on the consumer goroutine after pending
// commands have been applied. It is the supported window for synchronous
// reads of the tree.
type FrameCallback func(root *vis.Visualizer, elapsed, delta time.Duration)

// Options configure a Service.
type Options struct {
	// WindowTitle is the initial title of the main window tile.
	WindowTitle string
	// MainTile is the id of the window tile the typed update surface
	// addresses. Defaults to "Main".
	MainTile string
	// OnFrame, when set, is invoked every frame on the consumer goroutine.
	OnFrame FrameCallback
}

// DefaultOptions returns the options used when fields are left zero.
func DefaultOptions() Options {
	return Options{
		WindowTitle: "Debug Window",
		MainTile:    "Main",
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.WindowTitle == "" {
		o.WindowTitle = def.WindowTitle
	}
	if o.MainTile == "" {
		o.MainTile = def.MainTile
	}
	return o
}

// Service owns a Visualizer tree and the single consumer goroutine that
// mutates and renders it. Producers publish through the typed update surface
// or Post; everything is fire-and-forget. The embedding application controls
// the lifetime explicitly (construct, Stop on teardown), while Post retains
// start-on-first-use ergonomics.
type Service struct {
	backend Backend
	opts    Options
	queue   *CommandQueue

	// root is mutated only by the consumer goroutine once started.
	root    *vis.Visualizer
	started time.Time

	closing atomic.Bool

	mu    sync.Mutex
	state State
	done  chan struct{}
}

// New creates a stopped service. The root tree is a hidden container whose
// window tiles are the rendered windows; the main tile and its default tab
// exist from the start.
func New(backend Backend, opts Options) *Service {
	opts = opts.withDefaults()
	root := vis.New()
	root.SetVisible(false)
	root.AddTile(opts.MainTile, opts.WindowTitle)
	return &Service{
		backend: backend,
		opts:    opts,
		queue:   NewCommandQueue(),
		root:    root,
	}
}

// State returns the current lifecycle state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsRunning reports whether the consumer loop is up. After a backend
// initialization failure this is the only signal producers get.
func (s *Service) IsRunning() bool {
	return s.State() == StateRunning
}

// Start spawns the consumer goroutine. Starting while already Starting or
// Running is a no-op, as is starting while a Stop is still in flight.
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startLocked()
}

func (s *Service) startLocked() {
	if s.state != StateStopped {
		return
	}
	s.state = StateStarting
	s.closing.Store(false)
	s.done = make(chan struct{})
	go s.run()
}

// Stop requests shutdown, wakes the consumer loop, joins it and discards any
// residual commands. Safe to call when never started and safe to call
// concurrently with late Post calls, which may be silently dropped once
// shutdown has begun.
func (s *Service) Stop() {
	s.mu.Lock()
	if s.state == StateStopped || s.state == StateStopping {
		s.mu.Unlock()
		return
	}
	s.state = StateStopping
	done := s.done
	s.mu.Unlock()

	s.closing.Store(true)
	// A no-op command guarantees the loop wakes even when idle.
	s.queue.Enqueue(func(*vis.Visualizer) {})
	s.backend.RequestClose()
	<-done
	s.queue.Discard()
}

// Post enqueues a command for the consumer goroutine, starting the service
// on demand (including after a completed Stop). Commands posted while a
// shutdown is in flight are dropped.
func (s *Service) Post(cmd Command) {
	if cmd == nil {
		return
	}
	s.mu.Lock()
	if s.state == StateStopping {
		s.mu.Unlock()
		return
	}
	s.startLocked()
	s.mu.Unlock()
	if s.closing.Load() {
		// Stop raced in between the state check and here; the command
		// would only be discarded, so drop it at the door.
		return
	}
	s.queue.Enqueue(cmd)
}

// run is the consumer goroutine: it hands the loop to the backend and tears
// everything down when the backend returns, successfully or not.
func (s *Service) run() {
	s.started = time.Now()
	logging.Debug(logSubsystem, "render loop starting")

	err := s.backend.Run(s.root, s.frame)

	dropped := s.queue.Discard()

	s.mu.Lock()
	s.state = StateStopped
	done := s.done
	s.mu.Unlock()

	if err != nil {
		// Initialization or render failure never reaches producers; the
		// service simply reports not running from here on.
		logging.Error(logSubsystem, err, "render backend terminated")
	} else {
		logging.Debug(logSubsystem, "render loop stopped")
	}
	if dropped > 0 {
		logging.Debug(logSubsystem, "discarded %d undelivered command(s)", dropped)
	}
	close(done)
}

// frame runs once per backend frame on the consumer goroutine: apply the
// whole pending queue in FIFO order, then give the embedding application its
// synchronous read window.
func (s *Service) frame(delta time.Duration) bool {
	if s.closing.Load() {
		return false
	}
	s.markRunning()

	// Keep the main window and its default tab alive even if a command
	// removed content around them.
	s.root.Tile(s.opts.MainTile)

	for _, cmd := range s.queue.Drain() {
		cmd(s.root)
	}
	if s.opts.OnFrame != nil {
		s.opts.OnFrame(s.root, time.Since(s.started), delta)
	}
	return !s.closing.Load()
}

func (s *Service) markRunning() {
	s.mu.Lock()
	if s.state == StateStarting {
		s.state = StateRunning
	}
	s.mu.Unlock()
}
