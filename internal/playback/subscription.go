package playback

const eventBufferSize = 16

// Subscription delivers store changes to a single subscriber.
type Subscription struct {
	Changed <-chan Change
	Done    <-chan struct{}

	changeCh chan Change
	doneCh   chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		changeCh: make(chan Change, eventBufferSize),
		doneCh:   make(chan struct{}),
	}
	s.Changed = s.changeCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

// send delivers a change without blocking. Changes are dropped when the
// subscriber lags more than eventBufferSize events behind.
func (s *Subscription) send(c Change) {
	select {
	case s.changeCh <- c:
	default:
	}
}
