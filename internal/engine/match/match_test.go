package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/engine/match"
	"go.trai.ch/weave/internal/engine/pointcuts"
)

// funcPointcut adapts two predicates to ports.Pointcut.
type funcPointcut struct {
	class  func(*domain.ClassMetadata) bool
	method func(domain.Method) bool
}

func (f funcPointcut) MatchesClass(c *domain.ClassMetadata) bool { return f.class(c) }
func (f funcPointcut) MatchesMethod(m domain.Method) bool        { return f.method(m) }

func methodsNamed(names ...string) func(domain.Method) bool {
	return func(m domain.Method) bool {
		for _, n := range names {
			if m.Name == n {
				return true
			}
		}
		return false
	}
}

func always(*domain.ClassMetadata) bool { return true }
func never(*domain.ClassMetadata) bool  { return false }

func fooClass() *domain.ClassMetadata {
	base := &domain.ClassMetadata{Name: `App\Base`, File: "/src/Base.php"}
	return &domain.ClassMetadata{
		Name: `App\Foo`,
		File: "/src/Foo.php",
		Methods: []domain.Method{
			{Name: domain.ConstructorName, DeclaringClass: `App\Foo`},
			{Name: "bar", DeclaringClass: `App\Foo`},
			{Name: "baz", DeclaringClass: `Proxy\__CG__\App\Base`},
			{Name: "qux", DeclaringClass: `App\Foo`},
		},
		Parent: base,
	}
}

func TestClass(t *testing.T) {
	set := pointcuts.NewSet([]pointcuts.Entry{
		{Interceptor: "a", Pointcut: funcPointcut{class: never, method: methodsNamed()}},
		{Interceptor: "b", Pointcut: funcPointcut{class: always, method: methodsNamed()}},
	})

	matching := match.Class(set, fooClass())
	require.Len(t, matching, 1)
	assert.Equal(t, "b", matching[0].Interceptor)

	none := pointcuts.NewSet([]pointcuts.Entry{
		{Interceptor: "a", Pointcut: funcPointcut{class: never, method: methodsNamed()}},
	})
	assert.Empty(t, match.Class(none, fooClass()))
}

func TestMethods_OrderAndProjection(t *testing.T) {
	set := pointcuts.NewSet([]pointcuts.Entry{
		{Interceptor: "second", Pointcut: funcPointcut{class: always, method: methodsNamed("bar", "baz", domain.ConstructorName)}},
		{Interceptor: "first", Pointcut: funcPointcut{class: always, method: methodsNamed("bar")}},
	})
	class := fooClass()

	advice, byClass := match.Methods(match.Class(set, class), class)

	assert.Equal(t, domain.ClassAdvice{
		{Method: "bar", Interceptors: []string{"second", "first"}},
		{Method: "baz", Interceptors: []string{"second"}},
	}, advice)

	assert.Equal(t, domain.ClassNameMethods{
		`App\Foo`:  {"bar": {"second", "first"}},
		`App\Base`: {"baz": {"second"}},
	}, byClass)
}

func TestMethods_NoAdvice(t *testing.T) {
	set := pointcuts.NewSet([]pointcuts.Entry{
		{Interceptor: "a", Pointcut: funcPointcut{class: always, method: methodsNamed("missing")}},
	})
	class := fooClass()

	advice, byClass := match.Methods(match.Class(set, class), class)
	assert.Empty(t, advice)
	assert.Empty(t, byClass)
}

func TestAdviceHash(t *testing.T) {
	a := domain.ClassAdvice{
		{Method: "bar", Interceptors: []string{"x", "y"}},
		{Method: "baz", Interceptors: []string{"x"}},
	}
	reordered := domain.ClassAdvice{
		{Method: "bar", Interceptors: []string{"y", "x"}},
		{Method: "baz", Interceptors: []string{"x"}},
	}
	fewer := domain.ClassAdvice{
		{Method: "bar", Interceptors: []string{"x", "y"}},
	}

	assert.Equal(t, match.AdviceHash(a), match.AdviceHash(a))
	assert.NotEqual(t, match.AdviceHash(a), match.AdviceHash(reordered))
	assert.NotEqual(t, match.AdviceHash(a), match.AdviceHash(fewer))
}

func TestAdviceHash_DelimitersInIDs(t *testing.T) {
	joined := domain.ClassAdvice{{Method: "bar", Interceptors: []string{"a,b"}}}
	split := domain.ClassAdvice{{Method: "bar", Interceptors: []string{"a", "b"}}}
	assert.NotEqual(t, match.AdviceHash(joined), match.AdviceHash(split))

	shifted := domain.ClassAdvice{{Method: "bar=x", Interceptors: []string{"y"}}}
	other := domain.ClassAdvice{{Method: "bar", Interceptors: []string{"x=y"}}}
	assert.NotEqual(t, match.AdviceHash(shifted), match.AdviceHash(other))
}
