// Package anim provides tick-sampled tweens. Nothing here runs on its own: an
// owner calls Update once per frame with the current time, and completion
// callbacks fire from inside that call once the end time has passed.
package anim

import (
	"time"

	"github.com/Meduza3/deathestate/internal/board"
)

// Percent is how far now lies between start and end, clamped to [0, 1].
func Percent(now, start, end time.Time) float32 {
	total := end.Sub(start)
	if total <= 0 {
		return 1
	}
	p := float32(now.Sub(start)) / float32(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Lerp interpolates from a to b by p.
func Lerp(p, a, b float32) float32 {
	return a + (b-a)*p
}

// Tween is a timed 0..1 progress channel with an optional completion callback.
// The zero value is idle.
type Tween struct {
	start, end time.Time
	running    bool
	done       func()
}

// Start (re)starts the tween. A previous unfinished run is abandoned without
// firing its callback.
func (t *Tween) Start(now time.Time, d time.Duration, done func()) {
	t.start = now
	t.end = now.Add(d)
	t.running = true
	t.done = done
}

// Stop abandons the tween without firing its callback.
func (t *Tween) Stop() {
	t.running = false
	t.done = nil
}

func (t *Tween) Running() bool { return t.running }

// Update samples the tween at now and reports its progress. When now reaches
// the end time the tween stops and the callback fires.
func (t *Tween) Update(now time.Time) float32 {
	if !t.running {
		return 1
	}
	if !now.Before(t.end) {
		t.running = false
		done := t.done
		t.done = nil
		if done != nil {
			done()
		}
		return 1
	}
	return Percent(now, t.start, t.end)
}

// Float tweens a scalar value.
type Float struct {
	Value    float32
	from, to float32
	tw       Tween
}

func (f *Float) To(now time.Time, target float32, d time.Duration, done func()) {
	f.from, f.to = f.Value, target
	f.tw.Start(now, d, done)
}

func (f *Float) Running() bool { return f.tw.Running() }

func (f *Float) Update(now time.Time) {
	if !f.tw.Running() {
		return
	}
	// the value settles before the callback runs so it can chain another tween
	p := Percent(now, f.tw.start, f.tw.end)
	f.Value = Lerp(p, f.from, f.to)
	if !now.Before(f.tw.end) {
		f.Value = f.to
	}
	f.tw.Update(now)
}

// Vec tweens a world-space vector.
type Vec struct {
	Value    board.Vec2
	from, to board.Vec2
	tw       Tween
}

func (v *Vec) To(now time.Time, target board.Vec2, d time.Duration, done func()) {
	v.from, v.to = v.Value, target
	v.tw.Start(now, d, done)
}

// MoveAt tweens to target at a constant speed in world units per second.
func (v *Vec) MoveAt(now time.Time, target board.Vec2, speed float32, done func()) {
	d := time.Duration(float64(v.Value.Distance(target)/speed) * float64(time.Second))
	v.To(now, target, d, done)
}

func (v *Vec) Running() bool { return v.tw.Running() }

func (v *Vec) Update(now time.Time) {
	if !v.tw.Running() {
		return
	}
	p := Percent(now, v.tw.start, v.tw.end)
	v.Value = v.from.Lerp(v.to, p)
	if !now.Before(v.tw.end) {
		v.Value = v.to
	}
	v.tw.Update(now)
}
