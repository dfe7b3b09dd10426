package speech

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
)

type request struct {
	text string
	gen  uint64
}

// Service synthesizes on a background goroutine and hands finished clips to
// play together with the generation they were requested in. Speak and Stop
// never block the caller.
type Service struct {
	cache *Cache
	play  func(path string, gen uint64)
	reqs  chan request

	gen  atomic.Uint64
	busy atomic.Int32

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewService(cache *Cache, play func(path string, gen uint64), queue int) *Service {
	if queue <= 0 {
		queue = 1
	}
	return &Service{
		cache: cache,
		play:  play,
		reqs:  make(chan request, queue),
	}
}

// Start runs the worker until ctx is done or Close is called.
func (s *Service) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.worker(ctx)
}

func (s *Service) Close() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// Speak queues text. When the queue is full the request is dropped.
func (s *Service) Speak(text string) {
	s.busy.Add(1)
	select {
	case s.reqs <- request{text: text, gen: s.gen.Load()}:
	default:
		s.busy.Add(-1)
		log.Printf("Warning: speech queue full, dropped %q", text)
	}
}

// Stop discards queued and in-flight speech.
func (s *Service) Stop() { s.gen.Add(1) }

// Current reports whether no Stop happened since gen was handed to play.
// Players check it under their own lock right before starting a clip.
func (s *Service) Current(gen uint64) bool { return gen == s.gen.Load() }

// Busy reports whether speech is queued or being synthesized.
func (s *Service) Busy() bool { return s.busy.Load() > 0 }

func (s *Service) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-s.reqs:
			s.handle(ctx, req)
			s.busy.Add(-1)
		}
	}
}

func (s *Service) handle(ctx context.Context, req request) {
	if !s.Current(req.gen) {
		return
	}
	path, err := s.cache.Path(ctx, req.text)
	if err != nil {
		log.Printf("Warning: speech failed: %v", err)
		return
	}
	if !s.Current(req.gen) {
		return
	}
	s.play(path, req.gen)
}
