package responder

// #region imports
import (
	"context"
	"sync"
	"time"
)

// #endregion

// #region scripted

// Scripted is a Responder fake for coordinator tests: queued per-actor
// replies, optional per-call delay, optional forced errors. Calls for an actor
// with an empty queue return the actor's fallback reply.
type Scripted struct {
	mu       sync.Mutex
	queues   map[string][]string
	fallback map[string]string
	errs     map[string]error
	delay    time.Duration
	calls    []Request
}

// NewScripted creates an empty scripted responder.
func NewScripted() *Scripted {
	return &Scripted{
		queues:   make(map[string][]string),
		fallback: make(map[string]string),
		errs:     make(map[string]error),
	}
}

// Queue appends replies to an actor's queue, consumed one per call.
func (s *Scripted) Queue(actor string, replies ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[actor] = append(s.queues[actor], replies...)
}

// Always sets the reply an actor gets whenever its queue is empty.
func (s *Scripted) Always(actor, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback[actor] = reply
}

// Fail makes every call for an actor return err.
func (s *Scripted) Fail(actor string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[actor] = err
}

// Delay makes every call sleep first, for timeout tests.
func (s *Scripted) Delay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// Calls returns a copy of every request seen so far.
func (s *Scripted) Calls() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.calls))
	copy(out, s.calls)
	return out
}

// Respond implements Responder.
func (s *Scripted) Respond(ctx context.Context, req Request) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	delay := s.delay
	err := s.errs[req.Actor]
	var reply string
	var queued bool
	if q := s.queues[req.Actor]; len(q) > 0 {
		reply = q[0]
		s.queues[req.Actor] = q[1:]
		queued = true
	}
	if !queued {
		reply = s.fallback[req.Actor]
	}
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err != nil {
		return "", err
	}
	return reply, nil
}

// Embed implements Embedder with a deterministic toy embedding, enough for
// recall-index tests.
func (s *Scripted) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, 8)
	for i, r := range text {
		vec[i%8] += float32(r%13) / 13.0
	}
	return vec, nil
}

// #endregion scripted
