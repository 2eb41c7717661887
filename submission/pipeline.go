// Package submission places orders for one storefront session.
package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"suite46-pickup/cart"
	"suite46-pickup/config"
	"suite46-pickup/models"
	"suite46-pickup/order"
	"suite46-pickup/pricing"
	"suite46-pickup/statemachine"
	"suite46-pickup/storage"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

// Intake receives finished order records
type Intake interface {
	Submit(ctx context.Context, rec models.OrderRecord) error
}

// Checkout creates hosted payment sessions
type Checkout interface {
	CreateSession(ctx context.Context, req models.CheckoutSessionRequest) (string, error)
}

// Form is the order form as last submitted by the customer
type Form struct {
	order.Customer
	PayMode models.PayMode `json:"pay_mode"`
	TipRate float64        `json:"tip_rate"`
}

type Deps struct {
	Config *config.Config
	Cart   *cart.Store
	Store  storage.Store
	// Intake nil means orders are appended to the local log in Store.
	Intake   Intake
	Checkout Checkout
	Log      logrus.FieldLogger

	Now  func() time.Time
	Rand order.IntN
}

// Outcome describes a submission that got past validation and intake
type Outcome struct {
	OrderID     string                 `json:"order_id"`
	State       models.SubmissionState `json:"state"`
	RedirectURL string                 `json:"redirect_url,omitempty"`
	Record      models.OrderRecord     `json:"order"`
}

// Pipeline runs at most one submission at a time
type Pipeline struct {
	cfg      *config.Config
	cart     *cart.Store
	kv       storage.Store
	intake   Intake
	checkout Checkout
	log      logrus.FieldLogger
	now      func() time.Time
	rng      order.IntN

	inflight *semaphore.Weighted

	mu    sync.Mutex
	state models.SubmissionState
	form  Form
}

func New(d Deps) *Pipeline {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	return &Pipeline{
		cfg:      d.Config,
		cart:     d.Cart,
		kv:       d.Store,
		intake:   d.Intake,
		checkout: d.Checkout,
		log:      d.Log,
		now:      now,
		rng:      d.Rand,
		inflight: semaphore.NewWeighted(1),
		state:    models.SubmissionIdle,
		form:     Form{PayMode: models.PayAtPickup},
	}
}

func (p *Pipeline) State() models.SubmissionState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Form returns the draft form. It is cleared after a pay-at-pickup order
// completes and kept as typed after a failure.
func (p *Pipeline) Form() Form {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

// Submit validates form against the current cart and places the order.
//
// A *ValidationError means nothing was sent and the state is unchanged. A
// *remote.TransportError (or context error) means the attempt failed and the
// cart and form are kept for a retry. For prepay, a successful Outcome carries
// the hosted checkout URL and the cart is left alone until payment returns.
func (p *Pipeline) Submit(ctx context.Context, form Form) (Outcome, error) {
	if !p.inflight.TryAcquire(1) {
		return Outcome{}, ErrSubmissionInFlight
	}
	defer p.inflight.Release(1)

	p.mu.Lock()
	p.form = form
	prev := p.state
	p.mu.Unlock()

	p.transition(models.SubmissionValidating)
	lines := p.cart.Lines()
	if err := p.validate(form, lines); err != nil {
		p.transition(prev)
		return Outcome{}, err
	}
	p.transition(models.SubmissionSubmitting)

	ctx, cancel := context.WithTimeout(ctx, p.cfg.SubmitTimeout)
	defer cancel()

	now := p.now()
	totals := pricing.Calculate(lines, p.cfg.TaxRate, form.TipRate)
	rec := order.Build(order.NewID(now, p.rng), now, form.Customer, lines, totals, form.PayMode)
	log := p.log.WithFields(logrus.Fields{
		"order_id": rec.OrderID,
		"pay_mode": form.PayMode,
		"total":    rec.Total,
	})

	if err := p.sendToIntake(ctx, rec); err != nil {
		return p.fail(log, err)
	}

	if form.PayMode == models.PayPrepay {
		if err := order.SaveLast(p.kv, rec); err != nil {
			log.WithError(err).Warn("could not cache order before checkout")
		}
		req := order.CheckoutRequest(rec, p.cfg.PriceMap, p.cfg.PublicOrigin, p.cfg.StoreName)
		url, err := p.createSession(ctx, req)
		if err != nil {
			return p.fail(log, err)
		}
		p.transition(models.SubmissionRedirected)
		log.Info("order handed to hosted checkout")
		return Outcome{OrderID: rec.OrderID, State: models.SubmissionRedirected, RedirectURL: url, Record: rec}, nil
	}

	// only what was ordered; items added during intake stay in the cart
	if err := p.cart.RemoveLines(lines); err != nil {
		log.WithError(err).Warn("order placed but cart could not be cleared")
	}
	p.mu.Lock()
	p.form = Form{PayMode: form.PayMode, TipRate: form.TipRate}
	p.mu.Unlock()
	p.transition(models.SubmissionCompleted)
	log.Info("order placed")
	return Outcome{OrderID: rec.OrderID, State: models.SubmissionCompleted, Record: rec}, nil
}

func (p *Pipeline) validate(form Form, lines []models.CartLine) error {
	switch {
	case len(lines) == 0:
		return &ValidationError{Field: "cart", Message: MsgEmptyCart}
	case strings.TrimSpace(form.Name) == "":
		return &ValidationError{Field: "name", Message: "Please enter your name"}
	case strings.TrimSpace(form.Phone) == "":
		return &ValidationError{Field: "phone", Message: "Please enter your phone number"}
	case strings.TrimSpace(form.Pickup) == "":
		return &ValidationError{Field: "pickup", Message: "Please choose a pickup time"}
	case !form.PayMode.Valid():
		return &ValidationError{Field: "pay_mode", Message: "Please choose how you'd like to pay"}
	case !pricing.ValidTip(p.cfg.TipPresets, form.TipRate):
		return &ValidationError{Field: "tip_rate", Message: "Please choose one of the tip options"}
	}
	return nil
}

func (p *Pipeline) sendToIntake(ctx context.Context, rec models.OrderRecord) error {
	if p.intake == nil {
		return order.AppendLocal(p.kv, rec)
	}
	return p.intake.Submit(ctx, rec)
}

func (p *Pipeline) createSession(ctx context.Context, req models.CheckoutSessionRequest) (string, error) {
	if p.checkout == nil {
		return "", errors.New("checkout is not configured")
	}
	return p.checkout.CreateSession(ctx, req)
}

func (p *Pipeline) fail(log logrus.FieldLogger, err error) (Outcome, error) {
	p.transition(models.SubmissionFailed)
	log.WithError(err).Error("order submission failed")
	return Outcome{}, fmt.Errorf("submit order: %w", err)
}

func (p *Pipeline) transition(to models.SubmissionState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := statemachine.CanTransition(p.state, to); err != nil {
		p.log.WithError(err).Error("unexpected submission transition")
	}
	p.state = to
}
