package i18nstr

// Resolver maps a template body to its translated form. Implementations
// return the body unchanged when they have no translation for it.
//
// Translate and Transform call Resolve at most once per template they
// render and never mutate the resolver.
type Resolver interface {
	Resolve(body string) string
}

// ResolverFunc adapts an ordinary function to a Resolver.
type ResolverFunc func(body string) string

// Resolve calls f(body).
func (f ResolverFunc) Resolve(body string) string { return f(body) }

type identity struct{}

func (identity) Resolve(body string) string { return body }

// NoResolver leaves every body untouched.
var NoResolver Resolver = identity{}

func orIdentity(r Resolver) Resolver {
	if r == nil {
		return NoResolver
	}
	return r
}
