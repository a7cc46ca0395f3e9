package runtime

// CompilerOptions is the template-compilation knob set. The runtime itself
// does not compile templates; the struct exists so applications carrying
// ahead-of-time compiled templates can still inspect what they were built
// with.
type CompilerOptions struct {
	IsCustomElement func(tag string) bool
	Whitespace      string
	Delimiters      [2]string
}

// Config is the per-application configuration handle. It is created by the
// renderer alongside each application instance and enriched by the mount
// layer before the root mounts.
type Config struct {
	warn WarnFunc

	// ErrorHandler receives errors raised while rendering components.
	ErrorHandler func(err error)

	// Performance enables timing marks in development builds.
	Performance bool

	nativeTag         func(tag string) bool
	nativeTagInjected bool

	compilerOptions  CompilerOptions
	compilerInjected bool

	isCustomElement func(tag string) bool
}

func newConfig(warn WarnFunc) *Config {
	if warn == nil {
		warn = defaultWarn
	}
	return &Config{warn: warn}
}

// NativeTag reports whether tag is part of the built-in element vocabulary.
// The classifier is installed by the mount layer; before that it reports
// false for everything.
func (c *Config) NativeTag(tag string) bool {
	if c.nativeTag == nil {
		return false
	}
	return c.nativeTag(tag)
}

// SetNativeTag installs the built-in tag classifier. In development builds
// the installed classifier cannot be replaced; attempts to do so warn and
// keep the original.
func (c *Config) SetNativeTag(fn func(tag string) bool) {
	if c.nativeTagInjected && DevMode {
		c.warn("config: the native-tag classifier is read-only and cannot be replaced")
		return
	}
	c.nativeTag = fn
	c.nativeTagInjected = true
}

// IsCustomElement returns the legacy custom-element predicate. The option
// moved into CompilerOptions; each read warns in development builds.
func (c *Config) IsCustomElement() func(tag string) bool {
	if DevMode && c.compilerInjected {
		c.warn("config: isCustomElement has moved to compilerOptions.IsCustomElement")
	}
	return c.isCustomElement
}

// SetIsCustomElement stores the legacy custom-element predicate. Each write
// warns in development builds; the value is still honored.
func (c *Config) SetIsCustomElement(fn func(tag string) bool) {
	if DevMode && c.compilerInjected {
		c.warn("config: isCustomElement has moved to compilerOptions.IsCustomElement")
	}
	c.isCustomElement = fn
	if fn != nil && c.compilerOptions.IsCustomElement == nil {
		c.compilerOptions.IsCustomElement = fn
	}
}

// CompilerOptions returns the compilation knob set recorded at build time.
// In a runtime-only application there is nothing to configure, so each
// development-build access warns that the options have no effect here.
func (c *Config) CompilerOptions() CompilerOptions {
	if DevMode && c.compilerInjected {
		c.warn("config: compilerOptions has no effect in a runtime-only application; " +
			"configure the compiler at build time instead")
	}
	return c.compilerOptions
}

// SetCompilerOptions records the compilation knob set. Development-build
// writes warn for the same reason reads do.
func (c *Config) SetCompilerOptions(opts CompilerOptions) {
	if DevMode && c.compilerInjected {
		c.warn("config: compilerOptions has no effect in a runtime-only application; " +
			"configure the compiler at build time instead")
	}
	c.compilerOptions = opts
}
