// Package notice defines the confirmation and notification messages shown
// around ledger mutations, and the collaborators that present them.
package notice

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Severity classifies a notification for presentation.
type Severity string

// Supported severities.
const (
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
	SeverityWarning Severity = "warning"
)

// Notification is a short message shown after a mutating operation.
type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Prompt is the text of a confirmation dialog.
type Prompt struct {
	Header  string `json:"header"`
	Message string `json:"message"`
}

// Messages.
var (
	BankAdded           = Notification{"Bank added successfully!", SeveritySuccess}
	ObjectiveAdded      = Notification{"Objective added successfully!", SeveritySuccess}
	FormInvalid         = Notification{"Please fill in all required fields", SeverityDanger}
	AmountExceedsTarget = Notification{"Current amount cannot exceed target amount", SeverityWarning}
	BankDeleted         = Notification{"Bank and associated objectives deleted", SeverityWarning}
	ObjectiveDeleted    = Notification{"Objective deleted", SeverityWarning}

	DeleteBankPrompt = Prompt{
		Header:  "Confirm deletion",
		Message: "Are you sure you want to delete this bank? All associated objectives will also be deleted.",
	}
	DeleteObjectivePrompt = Prompt{
		Header:  "Confirm deletion",
		Message: "Are you sure you want to delete this objective?",
	}
)

// Notifier presents notifications. Implementations must not block the caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Confirmer asks the user to confirm a destructive operation.
type Confirmer interface {
	Confirm(ctx context.Context, p Prompt) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, p Prompt) bool

// Confirm calls f(ctx, p).
func (f ConfirmFunc) Confirm(ctx context.Context, p Prompt) bool {
	return f(ctx, p)
}

// Always returns a Confirmer that answers every prompt with ok.
func Always(ok bool) Confirmer {
	return ConfirmFunc(func(context.Context, Prompt) bool { return ok })
}

// LogNotifier writes notifications to the logger found in the context.
type LogNotifier struct{}

// Notify logs n at a level matching its severity.
func (LogNotifier) Notify(ctx context.Context, n Notification) {
	l := zerolog.Ctx(ctx)

	var e *zerolog.Event

	switch n.Severity {
	case SeverityDanger:
		e = l.Warn()
	default:
		e = l.Info()
	}

	e.Str("severity", string(n.Severity)).Msg(n.Message)
}

// Collector gathers the notifications raised while serving one request.
type Collector struct {
	mu    sync.Mutex
	items []Notification
}

// Notify records n.
func (c *Collector) Notify(_ context.Context, n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, n)
}

// Items returns the recorded notifications in order, or nil if there are none.
func (c *Collector) Items() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return nil
	}

	out := make([]Notification, len(c.items))
	copy(out, c.items)

	return out
}

type collectorKey struct{}

// WithCollector returns a context carrying c.
func WithCollector(ctx context.Context, c *Collector) context.Context {
	return context.WithValue(ctx, collectorKey{}, c)
}

// CollectorFromContext returns the collector stored in ctx, if any.
func CollectorFromContext(ctx context.Context) (*Collector, bool) {
	c, ok := ctx.Value(collectorKey{}).(*Collector)
	return c, ok
}

// ContextNotifier forwards notifications to the collector of the context and
// to the next notifier.
type ContextNotifier struct {
	Next Notifier
}

// Notify records n in the request collector, then passes it on.
func (cn ContextNotifier) Notify(ctx context.Context, n Notification) {
	if c, ok := CollectorFromContext(ctx); ok {
		c.Notify(ctx, n)
	}

	if cn.Next != nil {
		cn.Next.Notify(ctx, n)
	}
}
