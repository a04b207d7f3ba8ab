package service

// Notifier receives a change event after every successful ledger mutation.
// The websocket hub implements it; a nil Notifier disables events.
type Notifier interface {
	Notify(payload map[string]interface{})
}

type nopNotifier struct{}

func (nopNotifier) Notify(map[string]interface{}) {}
