package weaver

import (
	"context"

	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/core/ports"
	"go.trai.ch/weave/internal/engine/match"
	"go.trai.ch/weave/internal/engine/proxy"
	"go.trai.ch/zerr"
)

type passState struct {
	w      *Weaver
	pass   Pass
	hash   string
	naming *proxy.NamingStrategy
	report *domain.WeaveReport

	resources map[string]struct{}

	// pointcutsChanged memoizes the pointcut source check for the whole pass.
	pointcutsChanged *bool
}

func (st *passState) processDefinition(ctx context.Context, def *domain.Definition) error {
	if !def.Weavable() {
		return nil
	}

	class, err := st.pass.Resolver.ResolveClass(def.Class, def.File)
	if err != nil {
		st.w.logger.Debug("skipping " + def.Class + ": " + err.Error())
		st.report.Statuses[def.Class] = domain.StatusUnresolved
		return nil
	}

	if st.shouldRecompute(class) {
		return st.recompute(ctx, def, class)
	}
	return st.reuse(ctx, def, class)
}

func (st *passState) shouldRecompute(class *domain.ClassMetadata) bool {
	if !st.pass.Settings.UseCompilationCache {
		return true
	}
	// Both checks stamp their files, so neither may short-circuit the other.
	modified := st.pass.Cache.HasClassModified(class.File)
	changed := st.havePointcutsChanged()
	return modified || changed
}

// havePointcutsChanged stamps every pointcut source file on first use and remembers the answer.
func (st *passState) havePointcutsChanged() bool {
	if st.pointcutsChanged != nil {
		return *st.pointcutsChanged
	}

	changed := false
	for _, file := range st.pass.Pointcuts.SourceFiles() {
		if st.pass.Cache.HasClassModified(file) {
			changed = true
		}
	}
	st.pointcutsChanged = &changed
	if changed {
		st.w.logger.Debug("pointcut sources changed, recomputing all matches")
	}
	return changed
}

func (st *passState) recompute(ctx context.Context, def *domain.Definition, class *domain.ClassMetadata) error {
	st.report.Recomputed++
	cache := st.pass.Cache

	matching := match.Class(st.pass.Pointcuts, class)
	cache.SaveMatchResult(st.hash, class.File, len(matching) > 0)
	if len(matching) == 0 {
		st.report.Statuses[class.Name] = domain.StatusUnmatched
		return nil
	}

	st.addResources(class)

	if class.Final {
		st.report.Statuses[class.Name] = domain.StatusFinal
		return nil
	}

	advice, byClass := match.Methods(matching, class)
	cache.SaveClassAdvice(st.hash, class.File, advice)
	cache.SaveClassNameMethods(st.hash, class.File, byClass)
	st.report.Interceptors.Merge(byClass)

	if len(advice) == 0 {
		st.report.Statuses[class.Name] = domain.StatusNoAdvice
		return nil
	}

	st.w.logger.Debug("recomputed advice for " + class.Name)
	return st.weave(ctx, def, class, advice, true)
}

func (st *passState) reuse(ctx context.Context, def *domain.Definition, class *domain.ClassMetadata) error {
	cache := st.pass.Cache

	matched, ok := cache.MatchResult(st.hash, class.File)
	if !ok {
		return st.recompute(ctx, def, class)
	}
	if !matched {
		st.report.Reused++
		st.report.Statuses[class.Name] = domain.StatusUnmatched
		return nil
	}

	if class.Final {
		st.report.Reused++
		st.addResources(class)
		st.report.Statuses[class.Name] = domain.StatusFinal
		return nil
	}

	byClass, ok := cache.ClassNameMethods(st.hash, class.File)
	if !ok {
		return st.recompute(ctx, def, class)
	}
	advice, ok := cache.ClassAdvice(st.hash, class.File)
	if !ok {
		return st.recompute(ctx, def, class)
	}

	st.report.Reused++
	st.addResources(class)
	st.report.Interceptors.Merge(byClass)

	if len(advice) == 0 {
		st.report.Statuses[class.Name] = domain.StatusNoAdvice
		return nil
	}

	return st.weave(ctx, def, class, advice, false)
}

// weave generates the proxy when needed and redirects the definition to it.
// Recomputed advice always regenerates. Reused advice regenerates only when the proxy file
// is missing or was generated for different advice.
func (st *passState) weave(
	ctx context.Context,
	def *domain.Definition,
	class *domain.ClassMetadata,
	advice domain.ClassAdvice,
	force bool,
) error {
	proxyClass := st.naming.ClassName(class)
	target := proxy.Filename(st.pass.Settings.ProxyDir(), class.Name, st.pass.Settings.ProxyExtension)
	adviceHash := match.AdviceHash(advice)

	_, vertex := st.w.telemetry.Record(ctx, class.Name)

	generate := force || !st.proxyExists(target) || !st.pass.Cache.ProxyGenerated(proxyClass, adviceHash)
	if generate {
		req := ports.ProxyRequest{
			Class:        class,
			Methods:      advice.Methods(),
			Naming:       st.naming,
			RequiredFile: proxy.RequiredFile(target, class.File),
			Target:       target,
		}
		if err := st.w.generator.Generate(req); err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrProxyGenerationFailed.Error()), "class", class.Name)
			vertex.Complete(err)
			return err
		}
		st.pass.Cache.SaveProxyGenerated(proxyClass, adviceHash)
		vertex.Log(domain.LogLevelDebug, "generated "+target)
		st.report.Statuses[class.Name] = domain.StatusGenerated
	} else {
		vertex.Cached()
		st.report.Statuses[class.Name] = domain.StatusCached
	}
	vertex.Complete(nil)

	def.Redirect(proxyClass, target)
	st.report.Redirects = append(st.report.Redirects, domain.Redirect{
		DefinitionID:  def.ID,
		OriginalClass: class.Name,
		ProxyClass:    proxyClass,
		ProxyFile:     target,
		Generated:     generate,
	})
	return nil
}

func (st *passState) proxyExists(target string) bool {
	exists, err := st.w.verifier.FileExists(target)
	if err != nil {
		st.w.logger.Debug("cannot stat " + target + ": " + err.Error())
		return false
	}
	return exists
}

// addResources records the class file and its ancestors' files as inputs of the build.
func (st *passState) addResources(class *domain.ClassMetadata) {
	for _, file := range class.SourceChain() {
		if _, seen := st.resources[file]; seen {
			continue
		}
		st.resources[file] = struct{}{}
		st.report.Resources = append(st.report.Resources, file)
		st.pass.Container.AddResource(file)
	}
}
