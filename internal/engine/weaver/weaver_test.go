package weaver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/core/ports/mocks"
	"go.trai.ch/weave/internal/engine/compcache"
	"go.trai.ch/weave/internal/engine/pointcuts"
	"go.trai.ch/weave/internal/engine/weaver"
	"go.uber.org/mock/gomock"
)

const (
	fooClass  = `App\Foo`
	fooFile   = "/project/src/Foo.php"
	cacheDir  = "/project/.weave/cache"
	fooTarget = "/project/.weave/cache/proxies/App-Foo.proxy"
)

// memStore is an in-memory ports.CacheStore shared between passes.
type memStore struct {
	data  map[string][]byte
	saves int
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Fetch(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Save(key string, data []byte) error {
	m.saves++
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *memStore) Close() error { return nil }

// namePointcut matches classes by name and methods by name.
type namePointcut struct {
	class   string
	methods []string
	file    string
}

func (p namePointcut) MatchesClass(c *domain.ClassMetadata) bool { return c.Name == p.class }

func (p namePointcut) MatchesMethod(m domain.Method) bool {
	for _, name := range p.methods {
		if m.Name == name {
			return true
		}
	}
	return false
}

func (p namePointcut) SourceFile() string { return p.file }

type harness struct {
	ctrl      *gomock.Controller
	resolver  *mocks.MockClassResolver
	generator *mocks.MockProxyGenerator
	verifier  *mocks.MockVerifier
	fp        *mocks.MockFingerprinter
	logger    *mocks.MockLogger
	store     *memStore
	mtimes    map[string]int64
	weaver    *weaver.Weaver
	settings  domain.Settings
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		ctrl:      ctrl,
		resolver:  mocks.NewMockClassResolver(ctrl),
		generator: mocks.NewMockProxyGenerator(ctrl),
		verifier:  mocks.NewMockVerifier(ctrl),
		fp:        mocks.NewMockFingerprinter(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		store:     newMemStore(),
		mtimes:    map[string]int64{fooFile: 100},
	}

	h.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	h.fp.EXPECT().ModTime(gomock.Any()).DoAndReturn(func(path string) (int64, error) {
		v, ok := h.mtimes[path]
		if !ok {
			return 0, errors.New("no such file")
		}
		return v, nil
	}).AnyTimes()

	vertex := mocks.NewMockVertex(ctrl)
	vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	vertex.EXPECT().Cached().AnyTimes()
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()

	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()

	h.settings = domain.DefaultSettings()
	h.settings.CacheDir = cacheDir
	h.weaver = weaver.New(h.generator, h.verifier, telemetry, h.logger)
	return h
}

func (h *harness) resolves(class *domain.ClassMetadata) {
	h.resolver.EXPECT().ResolveClass(class.Name, gomock.Any()).Return(class, nil).AnyTimes()
}

type runResult struct {
	report       *domain.WeaveReport
	defs         []*domain.Definition
	interceptors domain.InterceptorIndex
	resources    []string
}

func (h *harness) run(t *testing.T, set *pointcuts.Set, defs ...*domain.Definition) (runResult, error) {
	t.Helper()
	res := runResult{defs: defs}

	container := mocks.NewMockContainer(h.ctrl)
	container.EXPECT().Definitions().Return(defs)
	container.EXPECT().AddResource(gomock.Any()).Do(func(path string) {
		res.resources = append(res.resources, path)
	}).AnyTimes()
	container.EXPECT().RegisterInterceptors(gomock.Any()).Do(func(idx domain.InterceptorIndex) {
		res.interceptors = idx
	}).MaxTimes(1)

	cache := compcache.New(h.store, h.fp, h.logger)
	report, err := h.weaver.Run(context.Background(), weaver.Pass{
		Container: container,
		Resolver:  h.resolver,
		Pointcuts: set,
		Cache:     cache,
		Settings:  h.settings,
		BuildID:   "test",
	})
	res.report = report
	return res, err
}

func foo() *domain.ClassMetadata {
	return &domain.ClassMetadata{
		Name: fooClass,
		File: fooFile,
		Methods: []domain.Method{
			{Name: domain.ConstructorName, DeclaringClass: fooClass},
			{Name: "bar", DeclaringClass: fooClass},
			{Name: "baz", DeclaringClass: fooClass},
		},
	}
}

func fooDef() *domain.Definition {
	return &domain.Definition{ID: "app.foo", Class: fooClass}
}

func barSet(file string) *pointcuts.Set {
	return pointcuts.NewSet([]pointcuts.Entry{
		{Interceptor: "interceptor", Pointcut: namePointcut{class: fooClass, methods: []string{"bar"}, file: file}},
	})
}

func TestWeaver_FirstRunGeneratesSecondRunReuses(t *testing.T) {
	h := newHarness(t)
	h.resolves(foo())
	set := barSet("")

	var req ports.ProxyRequest
	h.generator.EXPECT().Generate(gomock.Any()).DoAndReturn(func(r ports.ProxyRequest) error {
		req = r
		return nil
	}).Times(1)

	first, err := h.run(t, set, fooDef())
	require.NoError(t, err)

	assert.Equal(t, fooTarget, req.Target)
	assert.Equal(t, domain.MethodFilter{"bar": {}}, req.Methods)
	require.NotNil(t, req.RequiredFile)
	assert.Equal(t, "../../../src/Foo.php", req.RequiredFile.Path)
	assert.True(t, req.RequiredFile.Relative)

	want := domain.InterceptorIndex{fooClass: {"bar": {"interceptor"}}}
	assert.Equal(t, want, first.interceptors)
	assert.Equal(t, []string{fooFile}, first.resources)
	assert.Equal(t, domain.StatusGenerated, first.report.Statuses[fooClass])
	assert.Equal(t, 1, first.report.Recomputed)

	def := first.defs[0]
	assert.Equal(t, req.Naming.ClassName(foo()), def.Class)
	assert.Equal(t, fooTarget, def.File)
	require.Len(t, def.MethodCalls, 1)
	assert.Equal(t, domain.SetLoaderMethod, def.MethodCalls[0].Method)
	assert.Equal(t, []any{domain.Reference(domain.InterceptorLoaderID)}, def.MethodCalls[0].Arguments)

	// Second run: nothing changed, proxy on disk.
	h.verifier.EXPECT().FileExists(fooTarget).Return(true, nil)

	second, err := h.run(t, set, fooDef())
	require.NoError(t, err)

	assert.Equal(t, want, second.interceptors)
	assert.Equal(t, 0, second.report.Recomputed)
	assert.Equal(t, 1, second.report.Reused)
	assert.Equal(t, domain.StatusCached, second.report.Statuses[fooClass])
	require.Len(t, second.report.Redirects, 1)
	assert.False(t, second.report.Redirects[0].Generated)
	assert.Equal(t, fooTarget, second.defs[0].File)
	assert.Equal(t, 2, h.store.saves)
}

func TestWeaver_ModifiedFileRecomputes(t *testing.T) {
	h := newHarness(t)
	h.resolves(foo())
	set := barSet("")

	h.generator.EXPECT().Generate(gomock.Any()).Return(nil).Times(2)

	_, err := h.run(t, set, fooDef())
	require.NoError(t, err)

	h.mtimes[fooFile] = 200

	second, err := h.run(t, set, fooDef())
	require.NoError(t, err)
	assert.Equal(t, 1, second.report.Recomputed)
	assert.Equal(t, domain.StatusGenerated, second.report.Statuses[fooClass])
}

func TestWeaver_CacheDisabledAlwaysRecomputes(t *testing.T) {
	h := newHarness(t)
	h.settings.UseCompilationCache = false
	h.resolves(foo())
	set := barSet("")

	h.generator.EXPECT().Generate(gomock.Any()).Return(nil).Times(3)

	for range 3 {
		res, err := h.run(t, set, fooDef())
		require.NoError(t, err)
		assert.Equal(t, 1, res.report.Recomputed)
	}
}

func TestWeaver_CachedNoMatchNeverGenerates(t *testing.T) {
	h := newHarness(t)
	h.resolves(foo())
	set := pointcuts.NewSet([]pointcuts.Entry{
		{Interceptor: "interceptor", Pointcut: namePointcut{class: "Other"}},
	})

	h.generator.EXPECT().Generate(gomock.Any()).Times(0)

	first, err := h.run(t, set, fooDef())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnmatched, first.report.Statuses[fooClass])

	second, err := h.run(t, set, fooDef())
	require.NoError(t, err)
	assert.Equal(t, 1, second.report.Reused)
	assert.Equal(t, domain.StatusUnmatched, second.report.Statuses[fooClass])
	assert.Empty(t, second.interceptors)
	assert.Empty(t, second.report.Redirects)
	assert.Equal(t, fooClass, second.defs[0].Class)
}

func TestWeaver_AdviceChangeRegeneratesOnce(t *testing.T) {
	h := newHarness(t)
	h.resolves(foo())
	set := barSet("")

	h.generator.EXPECT().Generate(gomock.Any()).Return(nil).Times(1)
	_, err := h.run(t, set, fooDef())
	require.NoError(t, err)

	// Rewrite the cached advice as if the matched methods had changed.
	seed := compcache.New(h.store, h.fp, h.logger)
	seed.Load()
	seed.SaveClassAdvice(set.Hash(), fooFile, domain.ClassAdvice{
		{Method: "bar", Interceptors: []string{"interceptor"}},
		{Method: "baz", Interceptors: []string{"interceptor"}},
	})
	seed.Flush()

	h.verifier.EXPECT().FileExists(fooTarget).Return(true, nil).Times(2)

	var req ports.ProxyRequest
	h.generator.EXPECT().Generate(gomock.Any()).DoAndReturn(func(r ports.ProxyRequest) error {
		req = r
		return nil
	}).Times(1)

	second, err := h.run(t, set, fooDef())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusGenerated, second.report.Statuses[fooClass])
	assert.Equal(t, domain.MethodFilter{"bar": {}, "baz": {}}, req.Methods)

	third, err := h.run(t, set, fooDef())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCached, third.report.Statuses[fooClass])
}

func TestWeaver_MissingProxyFileRegenerates(t *testing.T) {
	h := newHarness(t)
	h.resolves(foo())
	set := barSet("")

	h.generator.EXPECT().Generate(gomock.Any()).Return(nil).Times(2)

	_, err := h.run(t, set, fooDef())
	require.NoError(t, err)

	h.verifier.EXPECT().FileExists(fooTarget).Return(false, nil)

	second, err := h.run(t, set, fooDef())
	require.NoError(t, err)
	assert.Equal(t, 1, second.report.Reused)
	assert.Equal(t, domain.StatusGenerated, second.report.Statuses[fooClass])
}

func TestWeaver_PointcutSourceChangeRecomputes(t *testing.T) {
	h := newHarness(t)
	h.resolves(foo())
	h.mtimes["/project/pointcuts.yaml"] = 1
	set := barSet("/project/pointcuts.yaml")

	h.generator.EXPECT().Generate(gomock.Any()).Return(nil).Times(2)
	h.verifier.EXPECT().FileExists(fooTarget).Return(true, nil)

	_, err := h.run(t, set, fooDef())
	require.NoError(t, err)

	// The pointcut source is stamped on the first pass that consults it.
	second, err := h.run(t, set, fooDef())
	require.NoError(t, err)
	assert.Equal(t, 1, second.report.Reused)

	h.mtimes["/project/pointcuts.yaml"] = 2

	third, err := h.run(t, set, fooDef())
	require.NoError(t, err)
	assert.Equal(t, 1, third.report.Recomputed)
	assert.Equal(t, domain.StatusGenerated, third.report.Statuses[fooClass])
}

func TestWeaver_FinalClass(t *testing.T) {
	h := newHarness(t)
	parent := &domain.ClassMetadata{Name: `App\Base`, File: "/project/src/Base.php"}
	final := &domain.ClassMetadata{
		Name:    fooClass,
		File:    fooFile,
		Final:   true,
		Methods: []domain.Method{{Name: "bar", DeclaringClass: fooClass}},
		Parent:  parent,
	}
	h.resolves(final)
	set := barSet("")

	h.generator.EXPECT().Generate(gomock.Any()).Times(0)

	for range 2 {
		res, err := h.run(t, set, fooDef())
		require.NoError(t, err)
		assert.Equal(t, domain.StatusFinal, res.report.Statuses[fooClass])
		assert.Equal(t, []string{fooFile, "/project/src/Base.php"}, res.resources)
		assert.Empty(t, res.report.Redirects)
	}
}

func TestWeaver_SkipsUnresolvableAndUnweavable(t *testing.T) {
	h := newHarness(t)
	h.resolver.EXPECT().ResolveClass("Missing", "").Return(nil, domain.ErrClassNotFound)
	h.generator.EXPECT().Generate(gomock.Any()).Times(0)

	res, err := h.run(t, barSet(""),
		&domain.Definition{ID: "missing", Class: "Missing"},
		&domain.Definition{ID: "synthetic", Class: fooClass, Synthetic: true},
		&domain.Definition{ID: "factory", Class: fooClass, Factory: true},
	)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnresolved, res.report.Statuses["Missing"])
	assert.Len(t, res.report.Statuses, 1)
}

func TestWeaver_InlineDefinitionsAreWoven(t *testing.T) {
	h := newHarness(t)
	h.resolves(foo())
	h.generator.EXPECT().Generate(gomock.Any()).Return(nil).Times(1)

	inline := fooDef()
	outer := &domain.Definition{
		ID:        "outer",
		Class:     "Outer",
		Arguments: []any{[]any{inline}},
	}
	h.resolver.EXPECT().ResolveClass("Outer", "").Return(&domain.ClassMetadata{Name: "Outer", File: "/project/src/Outer.php"}, nil)
	h.mtimes["/project/src/Outer.php"] = 1

	res, err := h.run(t, barSet(""), outer)
	require.NoError(t, err)
	assert.Equal(t, fooTarget, inline.File)
	assert.Equal(t, "Outer", outer.Class)
	assert.Equal(t, domain.StatusUnmatched, res.report.Statuses["Outer"])
}

func TestWeaver_GenerationFailureStillFlushes(t *testing.T) {
	h := newHarness(t)
	h.resolves(foo())
	h.generator.EXPECT().Generate(gomock.Any()).Return(errors.New("disk full"))

	_, err := h.run(t, barSet(""), fooDef())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrProxyGenerationFailed.Error())
	assert.Equal(t, 1, h.store.saves)
}

func TestWeaver_ReuseFallsBackOnPartialCache(t *testing.T) {
	h := newHarness(t)
	h.resolves(foo())
	set := barSet("")

	// Stamp the file and record a match, but nothing else.
	seed := compcache.New(h.store, h.fp, h.logger)
	seed.Load()
	seed.HasClassModified(fooFile)
	seed.SaveMatchResult(set.Hash(), fooFile, true)
	seed.Flush()

	h.generator.EXPECT().Generate(gomock.Any()).Return(nil).Times(1)

	res, err := h.run(t, set, fooDef())
	require.NoError(t, err)
	assert.Equal(t, 1, res.report.Recomputed)
	assert.Equal(t, domain.StatusGenerated, res.report.Statuses[fooClass])
}

func TestCollectDefinitions(t *testing.T) {
	deepest := &domain.Definition{ID: "deepest"}
	nested := &domain.Definition{ID: "nested", Properties: map[string]any{"x": deepest}}
	call := &domain.Definition{ID: "call"}
	first := &domain.Definition{
		ID:          "first",
		Arguments:   []any{nested, "scalar"},
		MethodCalls: []domain.MethodCall{{Method: "set", Arguments: []any{call}}},
	}
	second := &domain.Definition{ID: "second"}

	var ids []string
	for _, d := range weaver.CollectDefinitions([]*domain.Definition{first, second}) {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"first", "nested", "deepest", "call", "second"}, ids)
}

func TestCollectDefinitions_MapValues(t *testing.T) {
	handler := &domain.Definition{ID: "handler"}
	fallback := &domain.Definition{ID: "fallback"}
	outer := &domain.Definition{
		ID: "outer",
		Arguments: []any{map[string]any{
			"handler":  handler,
			"fallback": []any{fallback},
			"name":     "scalar",
		}},
	}

	var ids []string
	for _, d := range weaver.CollectDefinitions([]*domain.Definition{outer}) {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"outer", "fallback", "handler"}, ids)
}
