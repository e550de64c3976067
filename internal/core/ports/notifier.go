package ports

// Notifier reports stage failures to the developer.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// Notify presents a failure of the named stage with an audible alert.
	Notify(stage string, err error)
}
