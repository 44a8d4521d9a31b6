package animation

import "time"

// Target stores the committed value of each animatable property.
//
// Commit is only ever called on the goroutine driving [StepTickers] or
// issuing the write, which for controls is the UI goroutine.
type Target interface {
	// Commit writes the final value of a property.
	Commit(property string, value any)
	// Committed reads the current committed value of a property.
	Committed(property string) any
}

// Helper routes every animatable write of one target. With a zero policy a
// write is committed synchronously; otherwise it joins a [Transaction]
// and is committed when the transaction's delay and duration have elapsed.
//
// A Helper is owned by exactly one target and is not safe for concurrent
// use.
type Helper struct {
	target     Target
	policy     Policy
	immediate  map[string]bool
	inflight   map[string]*Transaction
	batch      *Transaction
	batchDepth int
}

// NewHelper creates a helper for target using [DefaultPolicy]. Properties
// listed in immediate never animate, whatever the policy.
func NewHelper(target Target, immediate ...string) *Helper {
	h := &Helper{
		target:    target,
		policy:    DefaultPolicy(),
		immediate: make(map[string]bool, len(immediate)),
		inflight:  make(map[string]*Transaction),
	}
	for _, name := range immediate {
		h.immediate[name] = true
	}
	return h
}

// Policy returns the current policy.
func (h *Helper) Policy() Policy { return h.policy }

// SetPolicy replaces the whole policy.
func (h *Helper) SetPolicy(p Policy) { h.policy = p }

// SetDuration sets the duration used by subsequent writes.
func (h *Helper) SetDuration(d time.Duration) { h.policy.SetDuration(d) }

// SetDelay sets the delay used by subsequent writes.
func (h *Helper) SetDelay(d time.Duration) { h.policy.SetDelay(d) }

// SetOptions replaces the option set used by subsequent writes.
func (h *Helper) SetOptions(opts Options) { h.policy.SetOptions(opts) }

// AddOptions adds flags without clearing existing ones.
func (h *Helper) AddOptions(opts ...Option) { h.policy.AddOptions(opts...) }

// IsImmediate reports whether property bypasses transactions.
func (h *Helper) IsImmediate(property string) bool {
	return h.immediate[property]
}

// Apply assigns value to property, immediately or through a transaction.
// A write to a property that is already animating replaces the earlier
// write; the two never queue.
func (h *Helper) Apply(property string, value any) {
	if h.immediate[property] || h.policy.IsImmediate() {
		h.cancel(property)
		h.target.Commit(property, value)
		return
	}

	from := h.target.Committed(property)
	if h.policy.Options().Has(BeginFromCurrentState) {
		from = h.Presentation(property)
	}
	h.cancel(property)

	tx := h.batch
	if tx == nil {
		tx = newTransaction(h, h.policy)
		if h.batchDepth > 0 {
			h.batch = tx
		}
	}
	tx.add(property, from, value)
	h.inflight[property] = tx
	if h.batchDepth == 0 {
		tx.start()
	}
}

// Batch runs fn and issues every animated write made inside it as one
// transaction, so they start together. Nested batches join the outermost.
func (h *Helper) Batch(fn func()) {
	h.batchDepth++
	defer func() {
		h.batchDepth--
		if h.batchDepth == 0 && h.batch != nil {
			tx := h.batch
			h.batch = nil
			tx.start()
		}
	}()
	fn()
}

// Presentation returns the value currently on screen for property: the
// interpolated value while a transaction drives it, the committed value
// otherwise.
func (h *Helper) Presentation(property string) any {
	if tx := h.inflight[property]; tx != nil && tx.IsActive() {
		if w := tx.find(property); w != nil {
			return w.current
		}
	}
	return h.target.Committed(property)
}

// Transaction returns the transaction driving property, or nil.
func (h *Helper) Transaction(property string) *Transaction {
	return h.inflight[property]
}

// IsAnimating reports whether any transaction is in flight.
func (h *Helper) IsAnimating() bool {
	return len(h.inflight) > 0
}

// IsInteractionAllowed reports whether gestures may be delivered: false
// while a transaction opened without AllowInteraction is in flight.
func (h *Helper) IsInteractionAllowed() bool {
	for _, tx := range h.inflight {
		if tx.IsActive() && !tx.policy.Options().Has(AllowInteraction) {
			return false
		}
	}
	return true
}

// Flush commits every pending write now and stops all transactions.
func (h *Helper) Flush() {
	for _, tx := range h.transactions() {
		if tx.status != TransactionCommitted {
			tx.commit()
		}
		tx.stop(TransactionFinished)
	}
}

// Cancel stops every transaction without committing pending writes.
func (h *Helper) Cancel() {
	for _, tx := range h.transactions() {
		tx.stop(TransactionCancelled)
	}
	h.batch = nil
}

func (h *Helper) transactions() []*Transaction {
	seen := make(map[*Transaction]bool)
	var out []*Transaction
	for _, tx := range h.inflight {
		if !seen[tx] {
			seen[tx] = true
			out = append(out, tx)
		}
	}
	return out
}

func (h *Helper) cancel(property string) {
	if tx := h.inflight[property]; tx != nil {
		delete(h.inflight, property)
		tx.remove(property)
	}
}

// release forgets a stopped transaction's properties.
func (h *Helper) release(tx *Transaction) {
	for name, owner := range h.inflight {
		if owner == tx {
			delete(h.inflight, name)
		}
	}
}
