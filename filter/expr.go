package filter

import (
	"maps"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/ocmovies/catalog"
)

// exprFilter implements Filter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCache enables compiled filter caching with the specified size
func WithCache(size int) CompilerOption {
	return func(c *Compiler) {
		if size > 0 {
			c.cache = newLRUCache[string, Filter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) CompilerOption {
	return func(c *Compiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// Compiler turns expressions into filters
type Compiler struct {
	helperFuncs map[string]any
	cache       *lruCache[string, Filter]
}

// NewCompiler creates a new expr-based filter compiler
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		helperFuncs: make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles an expression into an executable filter
func (c *Compiler) Compile(expression string) (Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Type-check against the environment of an empty movie
	program, err := expr.Compile(expression,
		expr.Env(c.environment(catalog.Movie{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *Compiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *Compiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against a movie. Runtime errors count as
// a non-match.
func (f *exprFilter) Evaluate(movie catalog.Movie) bool {
	env := movieEnvironment(movie)
	maps.Copy(env, f.helpers)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}

	// AsBool guarantees the result type
	return result.(bool)
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

func (c *Compiler) environment(movie catalog.Movie) map[string]any {
	env := movieEnvironment(movie)
	maps.Copy(env, c.helperFuncs)
	return env
}

// addStringHelpers registers case-insensitive string helpers. contains and
// startsWith are expr operators and cannot be used as function names.
func addStringHelpers(env map[string]any) {
	env["includes"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

// movieEnvironment exposes a movie's fields and helpers to expressions
func movieEnvironment(movie catalog.Movie) map[string]any {
	env := make(map[string]any, 24)
	addStringHelpers(env)

	env["hasGenre"] = containsFoldFunc(movie.Genres)
	env["hasActor"] = containsFoldFunc(movie.Actors)
	env["hasDirector"] = containsFoldFunc(movie.Directors)
	env["fromCountry"] = containsFoldFunc(movie.Countries)

	env["ID"] = movie.ID
	env["Title"] = movie.Title
	env["Year"] = movie.Year
	env["Score"] = movie.IMDbScore.Value
	env["HasScore"] = movie.IMDbScore.Valid
	env["Votes"] = movie.Votes
	env["Rated"] = movie.Rated
	env["Duration"] = movie.Duration
	env["Genres"] = nonNil(movie.Genres)
	env["Actors"] = nonNil(movie.Actors)
	env["Directors"] = nonNil(movie.Directors)
	env["Countries"] = nonNil(movie.Countries)

	return env
}

func containsFoldFunc(values []string) func(string) bool {
	lower := make([]string, len(values))
	for i, v := range values {
		lower[i] = strings.ToLower(v)
	}
	return func(want string) bool {
		return slices.Contains(lower, strings.ToLower(want))
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
