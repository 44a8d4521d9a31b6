package animation

import (
	"fmt"
	"time"
)

// TransactionStatus represents where a transaction is in its lifetime.
//
//	            Start()           delay elapsed
//	Building ───────────► Waiting ─────────────► Running
//	                                               │ delay+cycle elapsed
//	                                               ▼
//	               Finished ◄──────────────── Committed
//	  (Repeat with a duration keeps Committed running until cancelled)
//
// Any state can move to Cancelled when every write has been overridden or
// the owning helper is cancelled.
type TransactionStatus int

const (
	// TransactionBuilding collects writes inside a batch.
	TransactionBuilding TransactionStatus = iota
	// TransactionWaiting is started but still inside its delay.
	TransactionWaiting
	// TransactionRunning is interpolating.
	TransactionRunning
	// TransactionCommitted has written its targets; only repeating
	// transactions stay in this state.
	TransactionCommitted
	// TransactionFinished has committed and stopped.
	TransactionFinished
	// TransactionCancelled stopped before finishing.
	TransactionCancelled
)

// String returns a human-readable representation of the status.
func (s TransactionStatus) String() string {
	switch s {
	case TransactionBuilding:
		return "building"
	case TransactionWaiting:
		return "waiting"
	case TransactionRunning:
		return "running"
	case TransactionCommitted:
		return "committed"
	case TransactionFinished:
		return "finished"
	case TransactionCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("TransactionStatus(%d)", int(s))
	}
}

// write is one property assignment scheduled inside a transaction.
type write struct {
	property string
	from     any
	to       any
	current  any
}

// Transaction is a batch of property writes sharing one policy. All writes
// start together, interpolate with the same curve and commit together.
type Transaction struct {
	helper *Helper
	policy Policy
	curve  func(float64) float64
	writes []*write
	ticker *Ticker
	status TransactionStatus
}

func newTransaction(h *Helper, policy Policy) *Transaction {
	tx := &Transaction{
		helper: h,
		policy: policy,
		curve:  policy.Options().Curve(),
		status: TransactionBuilding,
	}
	tx.ticker = NewTicker(tx.tick)
	return tx
}

// Policy returns the policy the transaction was opened with.
func (tx *Transaction) Policy() Policy {
	return tx.policy
}

// Status returns the current status.
func (tx *Transaction) Status() TransactionStatus {
	return tx.status
}

// Properties returns the names of the writes still owned by the transaction.
func (tx *Transaction) Properties() []string {
	names := make([]string, len(tx.writes))
	for i, w := range tx.writes {
		names[i] = w.property
	}
	return names
}

// IsActive reports whether the transaction still drives presentation values.
func (tx *Transaction) IsActive() bool {
	switch tx.status {
	case TransactionFinished, TransactionCancelled:
		return false
	default:
		return true
	}
}

func (tx *Transaction) add(property string, from, to any) {
	tx.writes = append(tx.writes, &write{property: property, from: from, to: to, current: from})
}

func (tx *Transaction) find(property string) *write {
	for _, w := range tx.writes {
		if w.property == property {
			return w
		}
	}
	return nil
}

// remove drops a write that a later assignment overrides. A started
// transaction left with no writes is cancelled.
func (tx *Transaction) remove(property string) {
	for i, w := range tx.writes {
		if w.property == property {
			tx.writes = append(tx.writes[:i], tx.writes[i+1:]...)
			break
		}
	}
	if len(tx.writes) == 0 && tx.status != TransactionBuilding {
		tx.stop(TransactionCancelled)
	}
}

func (tx *Transaction) start() {
	if tx.status != TransactionBuilding {
		return
	}
	if len(tx.writes) == 0 {
		tx.status = TransactionCancelled
		return
	}
	tx.status = TransactionWaiting
	tx.ticker.Start()
}

func (tx *Transaction) tick(elapsed time.Duration) {
	if !tx.IsActive() {
		return
	}
	if elapsed >= tx.policy.Delay() && tx.status == TransactionWaiting {
		tx.status = TransactionRunning
	}

	eased := tx.curve(tx.progress(elapsed))
	for _, w := range tx.writes {
		if v, ok := Interpolate(w.from, w.to, eased); ok {
			w.current = v
		}
	}

	if tx.status != TransactionCommitted && elapsed >= tx.policy.CycleLength() {
		tx.commit()
	}
	if tx.status == TransactionCommitted && !tx.repeats() {
		tx.stop(TransactionFinished)
	}
}

// repeats reports whether the transaction keeps cycling after it commits.
// With no duration there is nothing to cycle, so Repeat is ignored.
func (tx *Transaction) repeats() bool {
	return tx.policy.Options().Has(Repeat) && tx.policy.Duration() > 0
}

// progress maps elapsed time to a position on the from→to line in [0, 1].
func (tx *Transaction) progress(elapsed time.Duration) float64 {
	delay, d := tx.policy.Delay(), tx.policy.Duration()
	if elapsed < delay {
		return 0
	}
	if d <= 0 {
		return 1
	}
	opts := tx.policy.Options()
	local := elapsed - delay
	cycle := d
	if opts.Has(Autoreverse) {
		cycle = 2 * d
	}
	if opts.Has(Repeat) {
		local %= cycle
	} else if local >= cycle {
		if opts.Has(Autoreverse) {
			return 0
		}
		return 1
	}
	if local <= d {
		return float64(local) / float64(d)
	}
	return 1 - float64(local-d)/float64(d)
}

func (tx *Transaction) commit() {
	tx.status = TransactionCommitted
	for _, w := range tx.writes {
		tx.helper.target.Commit(w.property, w.to)
		if !tx.repeats() {
			w.current = w.to
		}
	}
}

func (tx *Transaction) stop(status TransactionStatus) {
	tx.ticker.Stop()
	tx.status = status
	tx.helper.release(tx)
}
