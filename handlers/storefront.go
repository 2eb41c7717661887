package handlers

import (
	"fmt"
	"sync"
	"time"

	"suite46-pickup/cart"
	"suite46-pickup/config"
	"suite46-pickup/models"
	"suite46-pickup/pickup"
	"suite46-pickup/storage"
	"suite46-pickup/submission"

	"github.com/sirupsen/logrus"
)

// Storefront serves the ordering API. Each session gets its own cart and
// submission pipeline over a namespaced slice of the shared store.
type Storefront struct {
	cfg      *config.Config
	kv       storage.Store
	intake   submission.Intake
	checkout submission.Checkout
	log      logrus.FieldLogger
	slots    []string

	now func() time.Time

	mu        sync.Mutex
	sessions  map[string]*session
	lastSweep time.Time
}

type session struct {
	kv       storage.Store
	cart     *cart.Store
	pipeline *submission.Pipeline
	lastUsed time.Time
}

// sweepInterval caps how often the registry is scanned for idle sessions
const sweepInterval = time.Minute

// NewStorefront wires the HTTP layer. intake may be nil, in which case orders
// are kept in each session's local order log.
func NewStorefront(cfg *config.Config, kv storage.Store, intake submission.Intake, checkout submission.Checkout, log logrus.FieldLogger) (*Storefront, error) {
	slots, err := pickup.Slots(cfg.PickupStart, cfg.PickupEnd)
	if err != nil {
		return nil, fmt.Errorf("pickup window: %w", err)
	}
	return &Storefront{
		cfg:      cfg,
		kv:       kv,
		intake:   intake,
		checkout: checkout,
		log:      log,
		slots:    slots,
		now:      time.Now,
		sessions: make(map[string]*session),
	}, nil
}

// session returns the live state for id, hydrating the cart on first use.
// Sessions idle for longer than the session TTL are dropped from memory;
// their cart and order caches stay in storage and are rehydrated on the next
// request.
func (s *Storefront) session(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictIdle(now)

	if sess, ok := s.sessions[id]; ok {
		sess.lastUsed = now
		return sess, nil
	}

	kv := storage.Namespace(s.kv, id)
	log := s.log.WithField("session", id)
	c := cart.New(kv, log)
	if err := c.Hydrate(); err != nil {
		return nil, err
	}
	sess := &session{
		kv:   kv,
		cart: c,
		pipeline: submission.New(submission.Deps{
			Config:   s.cfg,
			Cart:     c,
			Store:    kv,
			Intake:   s.intake,
			Checkout: s.checkout,
			Log:      log,
		}),
		lastUsed: now,
	}
	s.sessions[id] = sess
	return sess, nil
}

// evictIdle must be called with mu held. A session with a submission in
// flight is kept so its single-submission guard stays in force.
func (s *Storefront) evictIdle(now time.Time) {
	interval := min(sweepInterval, s.cfg.SessionTTL)
	if now.Sub(s.lastSweep) < interval {
		return
	}
	s.lastSweep = now

	for id, sess := range s.sessions {
		if now.Sub(sess.lastUsed) <= s.cfg.SessionTTL {
			continue
		}
		if sess.pipeline.State() == models.SubmissionSubmitting {
			continue
		}
		delete(s.sessions, id)
	}
}
