// Package signal broadcasts one-shot wake-ups per topic. An Emit wakes every
// subscriber of the topic that existed at that moment; later subscribers wait for the next Emit.
package signal

import (
	"context"
	"sync"
	"time"
)

type Topic string

type topicSubs map[*Subscription]struct{}

func New() *Signals {
	return &Signals{
		subs: make(map[Topic]topicSubs),
	}
}

type Signals struct {
	sync.RWMutex
	subs   map[Topic]topicSubs
	closed bool
}

// Subscription is a single pending wait for a topic. It fires on the next Emit or on Close.
type Subscription struct {
	sigs  *Signals
	topic Topic
	c     chan struct{}
}

// Cancel releases the subscription. It is a no-op once the subscription fired.
func (sub *Subscription) Cancel() {
	sub.sigs.unsubscribe(sub)
}

// Wait blocks until the subscription fires, ctx is done or timeout elapses.
// It reports true only for a real Emit; a closed Signals yields false.
func (sub *Subscription) Wait(ctx context.Context, timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		sub.Cancel()
		return false
	case <-timer.C:
		sub.Cancel()
		return false
	case <-sub.c:
		return !sub.sigs.isClosed()
	}
}

func (s *Signals) Close() {
	s.Lock()
	defer s.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, ts := range s.subs {
		for sub := range ts {
			close(sub.c)
		}
	}
	s.subs = make(map[Topic]topicSubs)
}

func (s *Signals) isClosed() bool {
	s.RLock()
	defer s.RUnlock()
	return s.closed
}

func (s *Signals) Emit(topic Topic) {
	s.Lock()
	defer s.Unlock()
	for sub := range s.subs[topic] {
		close(sub.c)
	}
	delete(s.subs, topic)
}

// Subscribe registers interest in the next Emit of topic. Subscribing on a closed Signals returns an already fired subscription.
func (s *Signals) Subscribe(topic Topic) *Subscription {
	s.Lock()
	defer s.Unlock()
	sub := &Subscription{
		sigs:  s,
		topic: topic,
		c:     make(chan struct{}),
	}
	if s.closed {
		close(sub.c)
		return sub
	}
	if _, ok := s.subs[topic]; !ok {
		s.subs[topic] = make(topicSubs)
	}
	s.subs[topic][sub] = struct{}{}
	return sub
}

func (s *Signals) unsubscribe(sub *Subscription) {
	s.Lock()
	defer s.Unlock()
	ts, ok := s.subs[sub.topic]
	if !ok {
		return
	}
	if _, ok := ts[sub]; !ok {
		return
	}
	delete(ts, sub)
	if len(ts) == 0 {
		delete(s.subs, sub.topic)
	}
	close(sub.c)
}

// WaitContext subscribes to topic and waits for its next Emit.
func (s *Signals) WaitContext(ctx context.Context, topic Topic, timeout time.Duration) bool {
	return s.Subscribe(topic).Wait(ctx, timeout)
}
