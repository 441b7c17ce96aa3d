package container

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// injectTag marks struct fields filled by the resolver when a pointer-to-struct
// type has no registered constructor.
const injectTag = "inject"

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// constructor is a registered factory function for one type.
type constructor struct {
	fn      reflect.Value
	primary bool
}

// ProvideOption configures a constructor during Provide.
type ProvideOption func(*constructor)

// Primary marks the constructor as the preferred one when several are
// registered for the same type.
func Primary() ProvideOption {
	return func(p *constructor) { p.primary = true }
}

// plan is the ordered list of dependency keys for a type plus the function
// that assembles it from resolved arguments. It is derived on demand and never
// cached; only the instance it produces is.
type plan struct {
	deps  []TypeKey
	build func(args []reflect.Value) (any, error)
}

// ── Registration ──────────────────────────────────────────────────────────────

// Provide registers a constructor. It must be a function with the signature
// func(deps...) T or func(deps...) (T, error). Its parameters are resolved by
// type, in order, when T is first resolved.
//
//	c.Provide(repos.NewUserRepo)
//	c.Provide(clients.NewGeminiClient, container.Primary())
func (c *Container) Provide(fn any, opts ...ProvideOption) error {
	val := reflect.ValueOf(fn)
	if !val.IsValid() || val.Kind() != reflect.Func {
		return errors.New("container: constructor must be a function")
	}

	typ := val.Type()
	if typ.IsVariadic() {
		return fmt.Errorf("container: constructor %s must not be variadic", typ)
	}
	if typ.NumOut() == 0 || typ.NumOut() > 2 {
		return fmt.Errorf("container: constructor %s must return (T) or (T, error)", typ)
	}
	if typ.NumOut() == 2 && typ.Out(1) != errorType {
		return fmt.Errorf("container: constructor %s: second return value must be error", typ)
	}

	p := constructor{fn: val}
	for _, opt := range opts {
		opt(&p)
	}

	key := TypeKey{t: typ.Out(0)}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctors[key] = append(c.ctors[key], p)
	return nil
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Resolve returns the instance bound under key, constructing it (and every
// missing dependency) on first use. Each constructed instance is bound before
// Resolve returns, so later lookups and resolutions share it. A bound
// instance is never rebuilt.
//
// On failure nothing constructed by this call stays bound.
func (c *Container) Resolve(key TypeKey) (any, error) {
	if key.IsZero() {
		return nil, &ConstructionError{Key: key, Err: ErrNoConstructor}
	}

	r := resolution{c: c, visiting: make(map[TypeKey]bool)}
	v, callbacks, err := r.run(key)
	if err != nil {
		return nil, err
	}

	for _, b := range r.created {
		for _, fn := range callbacks {
			fn(b.key, b.instance)
		}
	}
	return v, nil
}

// run resolves key with c.mu held. The lock is released and every instance
// created by this call is unbound again on any failure, panics included.
func (r *resolution) run(key TypeKey) (any, []ResolvedFunc, error) {
	c := r.c
	c.mu.Lock()
	defer c.mu.Unlock()

	ok := false
	defer func() {
		if !ok {
			for _, b := range r.created {
				delete(c.bindings, b.key)
			}
		}
	}()

	v, err := r.resolve(key)
	if err != nil {
		return nil, nil, err
	}
	ok = true
	return v, c.resolved, nil
}

// Resolve is the generic form of Container.Resolve:
//
//	ctrl, err := container.Resolve[*controllers.UserController](c)
func Resolve[T any](c *Container) (T, error) {
	var zero T
	key := KeyOf[T]()

	v, err := c.Resolve(key)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("container: %s resolved to %T", key, v)
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on error. Use it only during
// bootstrap, where a wiring failure must stop the process.
func MustResolve[T any](c *Container) T {
	v, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return v
}

// ── Internal ──────────────────────────────────────────────────────────────────

type binding struct {
	key      TypeKey
	instance any
}

// resolution carries the state of one top-level Resolve call. It runs with
// c.mu held.
type resolution struct {
	c        *Container
	stack    []TypeKey
	visiting map[TypeKey]bool
	created  []binding
}

func (r *resolution) resolve(key TypeKey) (any, error) {
	if v, ok := r.c.bindings[key]; ok {
		return v, nil
	}
	if r.visiting[key] {
		return nil, newCycleError(r.stack, key)
	}

	p, err := r.c.planFor(key)
	if err != nil {
		return nil, err
	}

	r.visiting[key] = true
	r.stack = append(r.stack, key)
	defer func() {
		r.stack = r.stack[:len(r.stack)-1]
		delete(r.visiting, key)
	}()

	args := make([]reflect.Value, len(p.deps))
	for i, dep := range p.deps {
		v, err := r.resolve(dep)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", key, err)
		}
		if v == nil {
			args[i] = dep.zero()
			continue
		}
		args[i] = reflect.ValueOf(v)
	}

	instance, err := p.build(args)
	if err != nil {
		return nil, &ConstructionError{Key: key, Err: err}
	}

	r.c.bindings[key] = instance
	r.created = append(r.created, binding{key: key, instance: instance})
	r.c.log.Debug("container: constructed", zap.Stringer("type", key), zap.Int("deps", len(p.deps)))
	return instance, nil
}

// planFor selects the designated constructor for key: the single registered
// constructor, the Primary one among several, or the struct itself.
func (c *Container) planFor(key TypeKey) (plan, error) {
	candidates := c.ctors[key]

	switch len(candidates) {
	case 0:
		return structPlan(key)
	case 1:
		return funcPlan(candidates[0]), nil
	}

	var chosen []constructor
	for _, cand := range candidates {
		if cand.primary {
			chosen = append(chosen, cand)
		}
	}
	if len(chosen) != 1 {
		return plan{}, &ConstructionError{
			Key: key,
			Err: fmt.Errorf("%w: %d constructors registered, %d marked primary", ErrAmbiguousConstructor, len(candidates), len(chosen)),
		}
	}
	return funcPlan(chosen[0]), nil
}

func funcPlan(p constructor) plan {
	typ := p.fn.Type()
	deps := make([]TypeKey, typ.NumIn())
	for i := range deps {
		deps[i] = TypeKey{t: typ.In(i)}
	}

	return plan{
		deps: deps,
		build: func(args []reflect.Value) (instance any, err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = fmt.Errorf("%w: %v", ErrConstructorPanic, rec)
				}
			}()
			results := p.fn.Call(args)
			if len(results) == 2 && !results[1].IsNil() {
				return nil, results[1].Interface().(error)
			}
			return results[0].Interface(), nil
		},
	}
}

// structPlan treats *S as its own constructor: S is allocated and every field
// tagged `inject:""` is resolved by its type, in declaration order. A struct
// with fields but no tagged ones is not constructible; its zero value is
// rarely usable.
func structPlan(key TypeKey) (plan, error) {
	t := key.t
	if t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return plan{}, &ConstructionError{
			Key: key,
			Err: fmt.Errorf("%w: register a constructor or bind an instance", ErrNoConstructor),
		}
	}

	st := t.Elem()
	var (
		deps   []TypeKey
		fields []int
	)
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if _, ok := f.Tag.Lookup(injectTag); !ok {
			continue
		}
		if !f.IsExported() {
			return plan{}, &ConstructionError{
				Key: key,
				Err: fmt.Errorf("%w: field %s is tagged %q but unexported", ErrNoConstructor, f.Name, injectTag),
			}
		}
		deps = append(deps, TypeKey{t: f.Type})
		fields = append(fields, i)
	}
	if len(fields) == 0 && st.NumField() > 0 {
		return plan{}, &ConstructionError{
			Key: key,
			Err: fmt.Errorf("%w: %s has no %q fields; register a constructor or bind an instance", ErrNoConstructor, st, injectTag),
		}
	}

	return plan{
		deps: deps,
		build: func(args []reflect.Value) (any, error) {
			v := reflect.New(st)
			for i, idx := range fields {
				v.Elem().Field(idx).Set(args[i])
			}
			return v.Interface(), nil
		},
	}, nil
}
