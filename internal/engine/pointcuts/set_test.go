package pointcuts_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/core/ports/mocks"
	"go.trai.ch/weave/internal/engine/pointcuts"
	"go.uber.org/mock/gomock"
)

type loggingPointcut struct{}

func (loggingPointcut) MatchesClass(*domain.ClassMetadata) bool { return true }
func (loggingPointcut) MatchesMethod(domain.Method) bool        { return true }

type cachingPointcut struct{ file string }

func (cachingPointcut) MatchesClass(*domain.ClassMetadata) bool { return true }
func (cachingPointcut) MatchesMethod(domain.Method) bool        { return true }
func (c cachingPointcut) SourceFile() string                    { return c.file }

type namedPointcut struct{ name string }

func (namedPointcut) MatchesClass(*domain.ClassMetadata) bool { return false }
func (namedPointcut) MatchesMethod(domain.Method) bool        { return false }
func (n namedPointcut) TypeName() string                      { return n.name }

func TestSet_HashIsStable(t *testing.T) {
	entries := []pointcuts.Entry{
		{Interceptor: "log", Pointcut: loggingPointcut{}},
		{Interceptor: "cache", Pointcut: cachingPointcut{}},
	}

	first := pointcuts.NewSet(entries)
	second := pointcuts.NewSet(entries)

	assert.Equal(t, first.Hash(), first.Hash())
	assert.Equal(t, first.Hash(), second.Hash())
	assert.Len(t, first.Hash(), 16)
}

func TestSet_HashFollowsImplementationTypes(t *testing.T) {
	base := pointcuts.NewSet([]pointcuts.Entry{
		{Interceptor: "log", Pointcut: loggingPointcut{}},
	})

	// Different interceptor id, same implementation type: same identity.
	renamed := pointcuts.NewSet([]pointcuts.Entry{
		{Interceptor: "audit", Pointcut: loggingPointcut{}},
	})
	assert.Equal(t, base.Hash(), renamed.Hash())

	extended := pointcuts.NewSet([]pointcuts.Entry{
		{Interceptor: "log", Pointcut: loggingPointcut{}},
		{Interceptor: "cache", Pointcut: cachingPointcut{}},
	})
	assert.NotEqual(t, base.Hash(), extended.Hash())

	swapped := pointcuts.NewSet([]pointcuts.Entry{
		{Interceptor: "log", Pointcut: cachingPointcut{}},
	})
	assert.NotEqual(t, base.Hash(), swapped.Hash())

	named := pointcuts.NewSet([]pointcuts.Entry{
		{Interceptor: "log", Pointcut: namedPointcut{name: "a"}},
	})
	otherName := pointcuts.NewSet([]pointcuts.Entry{
		{Interceptor: "log", Pointcut: namedPointcut{name: "b"}},
	})
	assert.NotEqual(t, named.Hash(), otherName.Hash())
}

func TestSet_DuplicateInterceptorKeepsFirstPosition(t *testing.T) {
	replacement := cachingPointcut{file: "/pc/Cache.php"}
	set := pointcuts.NewSet([]pointcuts.Entry{
		{Interceptor: "a", Pointcut: loggingPointcut{}},
		{Interceptor: "b", Pointcut: loggingPointcut{}},
		{Interceptor: "a", Pointcut: replacement},
	})

	require.Equal(t, 2, set.Len())
	assert.Equal(t, "a", set.Entries()[0].Interceptor)
	assert.Equal(t, replacement, set.Entries()[0].Pointcut)
	assert.Equal(t, "b", set.Entries()[1].Interceptor)
}

func TestSet_SourceFiles(t *testing.T) {
	set := pointcuts.NewSet([]pointcuts.Entry{
		{Interceptor: "a", Pointcut: cachingPointcut{file: "/pc/A.php"}},
		{Interceptor: "b", Pointcut: loggingPointcut{}},
		{Interceptor: "c", Pointcut: cachingPointcut{file: "/pc/A.php"}},
		{Interceptor: "d", Pointcut: cachingPointcut{file: ""}},
		{Interceptor: "e", Pointcut: cachingPointcut{file: "/pc/B.php"}},
	})

	assert.Equal(t, []string{"/pc/A.php", "/pc/B.php"}, set.SourceFiles())
}

func TestRegistry_Static(t *testing.T) {
	registry := pointcuts.NewStaticRegistry(pointcuts.Entry{Interceptor: "log", Pointcut: loggingPointcut{}})

	set, err := registry.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
}

func pointcutDef(id string, attrs map[string]string) *domain.Definition {
	return &domain.Definition{
		ID:    id,
		Class: "Pointcut",
		Tags:  []domain.Tag{{Name: domain.PointcutTag, Attributes: attrs}},
	}
}

func TestRegistry_TaggedDiscovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	container := mocks.NewMockContainer(ctrl)

	container.EXPECT().TaggedDefinitions(domain.PointcutTag).Return([]*domain.Definition{
		pointcutDef("pc.log", map[string]string{domain.InterceptorAttribute: "interceptor.log"}),
		pointcutDef("pc.cache", map[string]string{domain.InterceptorAttribute: "interceptor.cache"}),
	})
	container.EXPECT().Pointcut("pc.log").Return(loggingPointcut{}, nil)
	container.EXPECT().Pointcut("pc.cache").Return(cachingPointcut{}, nil)
	container.EXPECT().SetPointcutReferences([]ports.PointcutReference{
		{Interceptor: "interceptor.log", ComponentID: "pc.log"},
		{Interceptor: "interceptor.cache", ComponentID: "pc.cache"},
	})

	set, err := pointcuts.NewRegistry(container).Resolve()
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())
	assert.Equal(t, "interceptor.log", set.Entries()[0].Interceptor)
	assert.Equal(t, "interceptor.cache", set.Entries()[1].Interceptor)
}

func TestRegistry_MissingInterceptorIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	container := mocks.NewMockContainer(ctrl)

	container.EXPECT().TaggedDefinitions(domain.PointcutTag).Return([]*domain.Definition{
		pointcutDef("pc.broken", map[string]string{}),
	})

	set, err := pointcuts.NewRegistry(container).Resolve()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingInterceptorAttribute.Error())
	assert.Nil(t, set)
}

func TestRegistry_PointcutResolutionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	container := mocks.NewMockContainer(ctrl)

	container.EXPECT().TaggedDefinitions(domain.PointcutTag).Return([]*domain.Definition{
		pointcutDef("pc.log", map[string]string{domain.InterceptorAttribute: "interceptor.log"}),
	})
	container.EXPECT().Pointcut("pc.log").Return(nil, errors.New("bad pattern"))

	_, err := pointcuts.NewRegistry(container).Resolve()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPointcutResolutionFailed.Error())
}
