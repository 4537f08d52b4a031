package diaptest

import "github.com/diap-network/diap"

// Handler is a mock implementation of the diap.Handler interface.
// Each method call is counted.
type Handler struct {
	checkCall   int
	CheckResult diap.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult diap.DeliverResult
	DeliverErr    error
}

var _ diap.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.CheckResult, error) {
	h.checkCall++
	return &h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.DeliverResult, error) {
	h.deliverCall++
	return &h.DeliverResult, h.DeliverErr
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// Decorator is a mock implementation of the diap.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding
// method. If error attributes are not set then wrapped handler method
// is called and its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ diap.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx diap.Context, db diap.KVStore, tx diap.Tx, next diap.Checker) (*diap.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return &diap.CheckResult{}, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx diap.Context, db diap.KVStore, tx diap.Tx, next diap.Deliverer) (*diap.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return &diap.DeliverResult{}, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate wraps the handler with one decorator and returns it
// as a single handler.
func Decorate(h diap.Handler, d diap.Decorator) diap.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn diap.Handler
	dc diap.Decorator
}

var _ diap.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx diap.Context, db diap.KVStore, tx diap.Tx) (*diap.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
