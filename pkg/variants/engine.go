// Package variants resolves declarative style-variant configurations plus
// chosen prop values into class-name strings. A configuration is compiled
// once into a Resolver (flat mode) or a SlotsFactory (multi-part mode); each
// resolution call is a pure function of the request.
package variants

// DefaultBreakpoints is the breakpoint label set engines bind unless
// configured otherwise. The implicit base label responsive.Initial is never
// part of the set.
func DefaultBreakpoints() []string {
	return []string{"sm", "md", "lg", "xl"}
}

// Engine binds a breakpoint label set and a default OnComplete hook. A
// Config compiled through an engine inherits the engine hook unless it
// carries its own. Engines are immutable after construction.
type Engine struct {
	breakpoints []string
	onComplete  func(string) string
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithBreakpoints replaces the engine's breakpoint label set.
func WithBreakpoints(labels ...string) Option {
	return func(e *Engine) {
		e.breakpoints = append([]string(nil), labels...)
	}
}

// WithOnComplete sets the engine-wide hook applied to every final class
// string. A Config.OnComplete overrides it per compiled resolver.
func WithOnComplete(fn func(string) string) Option {
	return func(e *Engine) {
		e.onComplete = fn
	}
}

// NewEngine builds an engine with the default breakpoint set and no hook,
// then applies the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{breakpoints: DefaultBreakpoints()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Breakpoints returns a copy of the engine's breakpoint label set.
func (e *Engine) Breakpoints() []string {
	return append([]string(nil), e.breakpoints...)
}

// New compiles a flat configuration into a single resolver. The
// configuration is validated eagerly; malformed payload shapes fail here
// rather than degrading silently at resolution time.
func (e *Engine) New(cfg Config) (Resolver, error) {
	if err := validateFlat(cfg); err != nil {
		return nil, err
	}

	r := &resolver{
		base:       cfg.Base,
		variants:   cfg.Variants,
		compounds:  cfg.CompoundVariants,
		onComplete: e.hookFor(cfg),
	}
	return func(props Props) string {
		return r.resolveFor("", props)
	}, nil
}

// NewSlots compiles a slots configuration into a factory of per-slot
// resolvers. All slot resolvers share the same catalog and compound rules;
// each is independently callable with its own request.
func (e *Engine) NewSlots(cfg Config) (SlotsFactory, error) {
	if err := validateSlots(cfg); err != nil {
		return nil, err
	}

	r := &resolver{
		slots:      cfg.Slots,
		variants:   cfg.Variants,
		compounds:  cfg.CompoundVariants,
		onComplete: e.hookFor(cfg),
	}
	return func() map[string]Resolver {
		resolvers := make(map[string]Resolver, len(r.slots))
		for name := range r.slots {
			slot := name
			resolvers[slot] = func(props Props) string {
				return r.resolveFor(slot, props)
			}
		}
		return resolvers
	}, nil
}

func (e *Engine) hookFor(cfg Config) func(string) string {
	if cfg.OnComplete != nil {
		return cfg.OnComplete
	}
	return e.onComplete
}

var defaultEngine = NewEngine()

// New compiles a flat configuration with the default engine.
func New(cfg Config) (Resolver, error) {
	return defaultEngine.New(cfg)
}

// NewSlots compiles a slots configuration with the default engine.
func NewSlots(cfg Config) (SlotsFactory, error) {
	return defaultEngine.NewSlots(cfg)
}
