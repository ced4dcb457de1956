package radial

// State is the auto-increment driver state.
type State int

const (
	Idle State = iota
	Running
	// Stopped is terminal: max was reached without looping, or the widget
	// was destroyed.
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

func (w *Widget) start() {
	w.state = Running
	w.logger.Debug("auto-increment started",
		"step", w.opts.Animation.Step,
		"interval", w.opts.Animation.Interval,
		"loop", w.opts.Animation.Loop)
	w.tick()
}

// tick advances the value once and schedules the next tick unless max was
// reached with looping disabled.
func (w *Widget) tick() {
	w.timer = nil
	if w.destroyed || w.state != Running {
		return
	}

	anim := w.opts.Animation
	w.Set(w.value + anim.Step)
	if w.value >= w.max {
		if !anim.Loop {
			w.state = Stopped
			w.logger.Debug("auto-increment reached max", "value", w.value)
			return
		}
		w.Set(0)
	}
	w.timer = w.sched.AfterFunc(anim.Interval, w.tick)
}

func (w *Widget) stop() {
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if w.state == Running {
		w.logger.Debug("auto-increment cancelled", "value", w.value)
	}
	w.state = Stopped
}
