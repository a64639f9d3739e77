package notify

// Notifier is the delivery side of the dispatcher. The websocket Hub is the
// production implementation; tests swap in a recorder.
type Notifier interface {
	Publish(channel string, ev Event)
}

var notifier Notifier

// SetNotifier configures the delivery backend used by Publish.
func SetNotifier(n Notifier) { notifier = n }

// Publish hands an event to the configured backend. With no backend set it
// is a no-op, which keeps store mutations independent of delivery.
func Publish(channel string, ev Event) {
	if notifier == nil {
		return
	}
	notifier.Publish(channel, ev)
}
