package domain

// ReloadKind tells browsers how to apply a change.
type ReloadKind uint8

const (
	// ReloadFull asks clients to reload the page.
	ReloadFull ReloadKind = iota
	// ReloadInject asks clients to swap the listed stylesheets in place.
	ReloadInject
)

// String returns the wire name of the kind.
func (k ReloadKind) String() string {
	if k == ReloadInject {
		return "inject"
	}
	return "reload"
}

// ReloadEvent is broadcast to connected browsers after a successful rebuild.
type ReloadEvent struct {
	Kind  ReloadKind
	Paths []string
}

// Inject builds a stylesheet injection event.
func Inject(paths ...string) ReloadEvent {
	return ReloadEvent{Kind: ReloadInject, Paths: paths}
}

// FullReload builds a page reload event.
func FullReload() ReloadEvent {
	return ReloadEvent{Kind: ReloadFull}
}
