// Package container provides the object-graph container that wires every
// controller, service, repository and client together at process start.
//
// # Overview
//
// The container is a type-keyed registry holding at most one instance per
// type, plus a resolver that builds missing types on first request. Bootstrap
// binds the handful of values that need outside configuration (database
// manager, REST clients with API keys); everything else is resolved from its
// constructor, recursively, and memoized as a singleton.
//
// # Container Lifecycle
//
//  1. Create: c := container.New(container.WithLogger(log))
//  2. Bind configured values: c.BindAll(manager, spoonacular, gemini)
//  3. Register constructors: c.Provide(repos.NewUserRepo)
//  4. Resolve top-level types: container.Resolve[*controllers.UserController](c)
//  5. Serve requests
//
// # Bindings
//
//	// Unconditional (last writer wins)
//	c.Bind(container.KeyOf[*database.Manager](), manager)
//	container.Bind[*database.Manager](c, manager)
//
//	// First writer wins
//	c.BindIfAbsent(manager)
//
//	// Many at once, each keyed by its dynamic type
//	c.BindAll(manager, spoonacular, gemini)
//
//	// Pure read, never constructs
//	v, ok := c.Lookup(container.KeyOf[*database.Manager]())
//	m, ok := container.Instance[*database.Manager](c)
//
// # Constructors
//
// A constructor is a function func(deps...) T or func(deps...) (T, error):
//
//	c.Provide(services.NewUserService)
//
// A pointer-to-struct type with no registered constructor is built directly:
// the struct is allocated and each field tagged `inject:""` is resolved by
// its type. A struct with fields but no tagged ones (a *zap.Logger, a
// *config.Config) is never built this way; resolving it without a binding or
// constructor fails with ErrNoConstructor.
//
//	type WorkoutController struct {
//	    Service *services.WorkoutService `inject:""`
//	}
//
// Registering several constructors for one type is ambiguous unless exactly
// one is marked Primary.
//
// # Resolving
//
//	ctrl, err := container.Resolve[*controllers.UserController](c)
//
// Resolution never rebuilds a bound instance. Failures are reported as
// *ConstructionError or *CyclicDependencyError; nothing built by a failed
// call stays bound. A panicking constructor is reported as a
// ConstructionError wrapping ErrConstructorPanic.
//
// Every container is bound to itself, so *container.Container can be
// injected like any other dependency.
//
// Constructors receive their dependencies as arguments and must not call back
// into the container; the whole resolution runs under the container lock.
//
// # Service Providers
//
//	type DatabaseProvider struct{ container.BaseProvider }
//
//	func (p *DatabaseProvider) Register(c *container.Container) error {
//	    m, err := database.NewManager(cfg.Supabase)
//	    if err != nil {
//	        return err
//	    }
//	    container.Bind[*database.Manager](c, m)
//	    return nil
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&DatabaseProvider{})
//	registry.Boot()
package container
