package watch

// Generation returns the generation of the current window.
func (d *Debouncer) Generation() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen
}

// FireWindow runs the timer callback of window gen.
func (d *Debouncer) FireWindow(gen uint64) {
	d.fire(gen)
}
