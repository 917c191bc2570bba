// Package lookup implements the customer lookup widget: it reads an id from a
// page, fetches that customer and writes name, city and email back.
package lookup

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/unclebandit/customer-lookup/internal/errors"
	"github.com/unclebandit/customer-lookup/internal/model"
	"github.com/unclebandit/customer-lookup/internal/queue"
)

// Element ids the widget reads from and writes to.
const (
	InputCustomerID = "customer_id"
	OutputName      = "name"
	OutputCity      = "city"
	OutputEmail     = "email"
)

// Page is the surface the widget is mounted on.
type Page interface {
	InputValue(id string) string
	SetOutput(id, value string)
}

// Fetcher loads a customer by the id's string form.
type Fetcher interface {
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
}

type Widget struct {
	page     Page
	fetcher  Fetcher
	queue    *queue.InMemoryQueue
	topic    string
	log      *zap.Logger
	onResult func(Result)

	renderMu sync.Mutex
	inflight sync.WaitGroup
}

type Option func(*Widget)

func WithLogger(l *zap.Logger) Option {
	return func(w *Widget) { w.log = l }
}

// OnResult registers a hook called after every completed lookup, success or not.
func OnResult(fn func(Result)) Option {
	return func(w *Widget) { w.onResult = fn }
}

// submission is what Submit hands to the queue. It carries the caller's
// context, so it only ever travels through an in-process queue.
type submission struct {
	ctx context.Context
	id  ID
	sid string
}

func New(page Page, fetcher Fetcher, opts ...Option) (*Widget, error) {
	w := &Widget{
		page:    page,
		fetcher: fetcher,
		topic:   "lookup.submit." + uuid.NewString(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.queue = queue.NewInMemoryQueue(queue.WithLogger(w.log))
	if err := w.queue.Subscribe(w.topic, w.handle); err != nil {
		return nil, err
	}
	return w, nil
}

// Submit reads the input element and starts a lookup for it. It does not wait
// for the response and always returns false, the value that cancels a form's
// default submission.
//
// Submissions are never canceled by later ones. When several are in flight the
// display ends up showing whichever response completed last.
func (w *Widget) Submit(ctx context.Context) bool {
	raw := w.page.InputValue(InputCustomerID)
	id := ParseID(raw)
	sub := submission{ctx: ctx, id: id, sid: uuid.NewString()}

	w.log.Debug("lookup submitted",
		zap.String("submission", sub.sid),
		zap.String("input", raw),
		zap.Stringer("customer_id", id),
		zap.Bool("numeric", id.Valid()),
	)

	w.inflight.Add(1)
	if err := w.queue.Publish(w.topic, sub); err != nil {
		w.inflight.Done()
		w.log.Warn("lookup not dispatched", zap.String("submission", sub.sid), zap.Error(err))
	}
	return false
}

// Wait blocks until every submitted lookup has finished.
func (w *Widget) Wait() {
	w.inflight.Wait()
}

func (w *Widget) handle(payload any) error {
	defer w.inflight.Done()

	sub, ok := payload.(submission)
	if !ok {
		return errors.New("lookup: unexpected payload")
	}

	res := w.Lookup(sub.ctx, sub.id)
	res.SubmissionID = sub.sid
	if res.OK() {
		w.Render(*res.Customer)
	} else {
		w.log.Warn("lookup failed",
			zap.String("submission", sub.sid),
			zap.Stringer("customer_id", sub.id),
			zap.String("reason", string(res.Reason)),
			zap.Error(res.Err),
		)
	}
	if w.onResult != nil {
		w.onResult(res)
	}
	return nil
}

// Lookup fetches the customer for id without touching the page.
func (w *Widget) Lookup(ctx context.Context, id ID) Result {
	c, err := w.fetcher.GetCustomer(ctx, id.String())
	if err == nil && c == nil {
		err = &appErrors.DecodeError{Err: errors.New("empty response")}
	}
	return Result{ID: id, Customer: c, Reason: classify(err), Err: err}
}

// Render overwrites the three output elements with c's fields.
func (w *Widget) Render(c model.Customer) {
	w.renderMu.Lock()
	defer w.renderMu.Unlock()

	w.page.SetOutput(OutputName, c.Name)
	w.page.SetOutput(OutputCity, c.City)
	w.page.SetOutput(OutputEmail, c.Email)
}
