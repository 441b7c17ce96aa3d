package container

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// ── Container ─────────────────────────────────────────────────────────────────

// Container is a type-keyed registry of singletons plus a resolver that builds
// missing types from their constructors on first use.
//
// It supports:
//   - Bind / BindIfAbsent / BindAll / Lookup for already-built instances
//   - Provide for constructor registration
//   - Resolve (generic) with recursive construction and cycle detection
//   - OnResolved callbacks for newly constructed instances
//
// Every instance held by the container is shared: at most one binding exists
// per TypeKey, and every consumer that resolves a type receives the same value.
type Container struct {
	mu sync.Mutex

	// key → bound instance
	bindings map[TypeKey]any

	// key → registered constructors
	ctors map[TypeKey][]constructor

	// resolved callbacks, fired for newly constructed instances
	resolved []ResolvedFunc

	log *zap.Logger
}

// ResolvedFunc is called once for every instance the resolver constructs.
type ResolvedFunc func(key TypeKey, instance any)

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger used to trace construction. The default is a
// no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Container) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a container whose only binding is itself, under
// *container.Container.
func New(opts ...Option) *Container {
	c := &Container{
		bindings: make(map[TypeKey]any),
		ctors:    make(map[TypeKey][]constructor),
		log:      zap.NewNop(),
	}
	c.bindings[KeyOf[*Container]()] = c
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Binding ───────────────────────────────────────────────────────────────────

// Bind registers instance under key, replacing any existing binding.
//
//	c.Bind(container.KeyOf[*database.Manager](), manager)
//
// instance must be assignable to the key's type; binding a value of the wrong
// type is a programming error and panics.
func (c *Container) Bind(key TypeKey, instance any) {
	mustAssign(key, instance)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[key] = instance
}

// BindIfAbsent registers instance under its own dynamic type unless that type
// is already bound, in which case the existing instance is kept. It reports
// whether instance was bound. A nil instance is ignored.
func (c *Container) BindIfAbsent(instance any) bool {
	key := KeyFor(instance)
	if key.IsZero() {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.bindings[key]; ok {
		return false
	}
	c.bindings[key] = instance
	return true
}

// BindAll binds every instance under its own dynamic type with Bind semantics.
// When two instances share a type the later one wins. Nil elements are
// skipped.
//
//	c.BindAll(manager, spoonacular, gemini)
func (c *Container) BindAll(instances ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, instance := range instances {
		key := KeyFor(instance)
		if key.IsZero() {
			continue
		}
		c.bindings[key] = instance
	}
}

// Lookup returns the instance bound under key. It never constructs anything.
func (c *Container) Lookup(key TypeKey) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.bindings[key]
	return v, ok
}

// OnResolved registers a callback fired after Resolve constructs new
// instances. Callbacks run outside the container lock, leaves first.
func (c *Container) OnResolved(fn ResolvedFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolved = append(c.resolved, fn)
}

// ── Introspection ─────────────────────────────────────────────────────────────

// Keys returns every bound key sorted by type name (for debugging).
func (c *Container) Keys() []TypeKey {
	c.mu.Lock()
	out := make([]TypeKey, 0, len(c.bindings))
	for k := range c.bindings {
		out = append(out, k)
	}
	c.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Len returns the number of bindings.
func (c *Container) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.bindings)
}

// ── Generic helpers ───────────────────────────────────────────────────────────

// Bind registers v under the static type T. Use it to bind under an interface
// type, or when a test double must stand in for a concrete dependency:
//
//	container.Bind[clock.Clock](c, fakeClock)
func Bind[T any](c *Container, v T) {
	c.Bind(KeyOf[T](), v)
}

// Instance returns the instance bound under T without constructing anything.
func Instance[T any](c *Container) (T, bool) {
	var zero T
	v, ok := c.Lookup(KeyOf[T]())
	if !ok || v == nil {
		return zero, ok
	}
	typed, ok := v.(T)
	return typed, ok
}

func mustAssign(key TypeKey, instance any) {
	if key.IsZero() {
		panic("container: bind with zero TypeKey")
	}
	if instance == nil {
		switch key.t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return
		}
		panic(fmt.Sprintf("container: cannot bind nil to %s", key))
	}
	if !reflect.TypeOf(instance).AssignableTo(key.t) {
		panic(fmt.Sprintf("container: cannot bind %T to %s", instance, key))
	}
}
