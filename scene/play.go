package scene

import (
	"fmt"
	"sort"
	"time"

	"github.com/npillmayer/animsync"
	"github.com/npillmayer/animsync/dom/w3cdom"
	"github.com/npillmayer/animsync/easing"
	"github.com/npillmayer/animsync/effect"
	"github.com/npillmayer/animsync/frame"
	"github.com/npillmayer/animsync/maybe"
	"github.com/npillmayer/schuko/tracing"
)

// Play runs a script. Step i+1 starts when the future of step i has
// resolved; the returned future resolves after the last step has resolved.
// If a step fails, no further steps are started and the returned future
// fails with the step's error.
func Play(a *animsync.Animator, s *Script) *frame.Future {
	done := frame.NewFuture()
	if err := s.Validate(); err != nil {
		done.Fail(err)
		return done
	}
	tracing.With(tracer()).Dump("scene", s)
	sel, _ := a.Select([]w3cdom.Element{})
	p := &player{a: a, steps: s.Steps, sel: sel, done: done}
	p.run(0)
	return done
}

type player struct {
	a     *animsync.Animator
	steps []Step
	sel   animsync.Selection
	done  *frame.Future
}

func (p *player) run(i int) {
	if i >= len(p.steps) {
		tracer().Infof("scene finished")
		p.done.Resolve()
		return
	}
	st := p.steps[i]
	f, err := p.perform(st)
	if err != nil {
		err = fmt.Errorf("step %d (%s): %w", i+1, st.Action(), err)
		p.a.Engine().Report(err)
		p.done.Fail(err)
		return
	}
	f.Then(func() {
		p.run(i + 1)
	}).Catch(func(err error) {
		p.done.Fail(fmt.Errorf("step %d (%s): %w", i+1, st.Action(), err))
	})
}

func (p *player) perform(st Step) (*frame.Future, error) {
	if st.Select != "" {
		sel, err := p.a.Select(st.Select)
		if err != nil {
			return nil, err
		}
		if sel.Len() == 0 {
			tracer().Infof("selector %q matches no element", st.Select)
		}
		p.sel = sel
	}
	tracer().Debugf("%s on %d element(s)", st.Action(), p.sel.Len())
	switch {
	case st.Change != nil:
		return p.change(st.Change)
	case st.Typewriter != nil:
		tw := st.Typewriter
		return p.sel.Typewriter(tw.Text, effect.TypewriterOptions{
			Duration: time.Duration(tw.Duration),
			Shift:    tw.Shift,
			Timing:   curve(tw.Easing),
		}), nil
	case st.PartReveal != nil:
		pr := st.PartReveal
		return p.sel.PartReveal(effect.PartRevealOptions{
			Duration:         time.Duration(pr.Duration),
			TranslatePercent: pr.Translate,
			SkewDeg:          pr.Skew,
			Timing:           curve(pr.Easing),
		}), nil
	case len(st.Transform) > 0:
		for _, name := range sortedKeys(st.Transform) {
			if _, err := p.sel.Transform(name, st.Transform[name]); err != nil {
				return nil, err
			}
		}
	case len(st.AddClass) > 0:
		p.sel.AddClass(st.AddClass...)
	case len(st.RemoveClass) > 0:
		p.sel.RemoveClass(st.RemoveClass...)
	case len(st.ToggleClass) > 0:
		for _, c := range st.ToggleClass {
			p.sel.ToggleClass(c)
		}
	case len(st.SetVar) > 0:
		for _, name := range sortedKeys(st.SetVar) {
			p.a.SetVar(name, st.SetVar[name])
		}
	case len(st.Inline) > 0:
		for _, prop := range st.Inline {
			p.sel.ComputedToInline(prop)
		}
	case st.Wait != nil:
		return p.a.Delay(time.Duration(*st.Wait), nil), nil
	}
	return frame.Completed(), nil
}

func (p *player) change(ch *ChangeStep) (*frame.Future, error) {
	next := maybe.AndThen(func(d Duration) maybe.Maybe[time.Duration] {
		return maybe.Just(time.Duration(d))
	}, maybe.FromPointer(ch.Next))
	var colors map[string]effect.ColorRange
	if len(ch.Colors) > 0 {
		colors = make(map[string]effect.ColorRange, len(ch.Colors))
		for prop, c := range ch.Colors {
			colors[prop] = effect.ColorRange{From: c.From, To: c.To}
		}
	}
	run, err := p.sel.Change(effect.ChangeOptions{
		Duration: time.Duration(ch.Duration),
		Next:     next,
		Timing:   curve(ch.Easing),
		Unit:     ch.Unit,
		From:     ch.From,
		To:       ch.To,
		Colors:   colors,
	})
	if err != nil {
		return nil, err
	}
	return run.Future(), nil
}

// curve returns nil for an empty name, leaving the choice to the effect.
// Names have been checked by Validate.
func curve(name string) easing.Func {
	if name == "" {
		return nil
	}
	f, err := easing.Parse(name)
	if err != nil {
		return nil
	}
	return f
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
