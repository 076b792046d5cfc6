package notify

// OpsNotifier pushes short operational notices (poll summaries, fetch
// failures) to whoever runs the service. Implementations must be safe to
// call from scheduler goroutines.
type OpsNotifier interface {
	Notify(text string) error
}
