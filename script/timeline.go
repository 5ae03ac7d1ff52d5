package script

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/glitchknight/obj"
	"github.com/milk9111/glitchknight/prefabs"
)

// ErrNoIntents is returned for a script that defines no tick function and so
// can never produce input.
var ErrNoIntents = errors.New("script: no tick function")

const dispatch = `
tick(__engine, __obs, __memory)
`

// Timeline drives a player from a tengo script. The script defines
//
//	tick := func(engine, obs, memory) { ... }
//
// which runs once per simulation tick. engine.press(name) queues an intent
// by name, engine.move(x, y) sets the stick, obs is a read-only snapshot of
// the fight and memory is a map kept between ticks.
type Timeline struct {
	Path string

	compiled *tengo.Compiled
	memory   *tengo.Map
	pending  []obj.Intent
	warned   map[string]bool
}

// Load compiles a script through prefabs.LoadScript.
func Load(name string) (*Timeline, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return Compile(name, src)
}

// Compile builds a timeline from source.
func Compile(name string, src []byte) (*Timeline, error) {
	probe := tengo.NewScript(src)
	probe.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	pc, err := probe.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	if err := pc.Run(); err != nil {
		return nil, fmt.Errorf("script: run %s: %w", name, err)
	}
	if !pc.IsDefined("tick") {
		return nil, fmt.Errorf("script: compile %s: %w", name, ErrNoIntents)
	}

	full := tengo.NewScript([]byte(string(src) + "\n" + dispatch))
	_ = full.Add("__engine", map[string]any{})
	_ = full.Add("__obs", map[string]any{})
	_ = full.Add("__memory", map[string]any{})
	full.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	compiled, err := full.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	t := &Timeline{
		Path:     name,
		compiled: compiled,
		memory:   &tengo.Map{Value: map[string]tengo.Object{}},
		warned:   make(map[string]bool),
	}
	return t, nil
}

// Step runs tick for one observation and returns the intents it queued in
// call order.
func (t *Timeline) Step(o Observation) ([]obj.Intent, error) {
	if t == nil || t.compiled == nil {
		return nil, nil
	}
	t.pending = t.pending[:0]
	if err := t.compiled.Set("__engine", t.engine()); err != nil {
		return nil, err
	}
	if err := t.compiled.Set("__obs", o.object()); err != nil {
		return nil, err
	}
	if err := t.compiled.Set("__memory", t.memory); err != nil {
		return nil, err
	}
	if err := t.compiled.Run(); err != nil {
		return nil, fmt.Errorf("script: %s tick %d: %w", t.Path, o.Tick, err)
	}
	return append([]obj.Intent(nil), t.pending...), nil
}

func (t *Timeline) engine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["press"] = &tengo.UserFunction{Name: "press", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name, _ := tengo.ToString(args[0])
		kind, ok := obj.ParseIntentKind(strings.TrimSpace(name))
		if !ok || kind == obj.IntentMove {
			if !t.warned[name] {
				t.warned[name] = true
				log.Printf("script: %s: unknown intent %q", t.Path, name)
			}
			return tengo.FalseValue, nil
		}
		t.pending = append(t.pending, obj.Intent{Kind: kind})
		return tengo.TrueValue, nil
	}}

	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		var x, y float64
		if len(args) > 0 {
			x, _ = tengo.ToFloat64(args[0])
		}
		if len(args) > 1 {
			y, _ = tengo.ToFloat64(args[1])
		}
		t.pending = append(t.pending, obj.Move(x, y))
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
