// Package match applies pointcuts to class metadata and builds the resulting advice.
package match

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/weave/internal/core/domain"
	"go.trai.ch/weave/internal/engine/pointcuts"
)

// Class returns the pointcuts whose class predicate holds, in set order.
// The class matches when the result is not empty.
func Class(set *pointcuts.Set, class *domain.ClassMetadata) []pointcuts.Entry {
	var matching []pointcuts.Entry
	for _, e := range set.Entries() {
		if e.Pointcut.MatchesClass(class) {
			matching = append(matching, e)
		}
	}
	return matching
}

// Methods evaluates the method predicates of the matching pointcuts against every overridable
// method of the class. Interceptors are listed in pointcut order. The declaring-class
// projection attributes each advised method to the user class that declares it.
func Methods(matching []pointcuts.Entry, class *domain.ClassMetadata) (domain.ClassAdvice, domain.ClassNameMethods) {
	advice := domain.ClassAdvice{}
	byClass := domain.ClassNameMethods{}

	for _, method := range class.OverridableMethods() {
		var interceptors []string
		for _, e := range matching {
			if e.Pointcut.MatchesMethod(method) {
				interceptors = append(interceptors, e.Interceptor)
			}
		}
		if len(interceptors) == 0 {
			continue
		}

		advice = append(advice, domain.MethodAdvice{Method: method.Name, Interceptors: interceptors})

		declaring := method.DeclaringClass
		if declaring == "" {
			declaring = class.Name
		}
		byClass.Add(domain.UserClassName(declaring), method.Name, interceptors)
	}

	return advice, byClass
}

// AdviceHash returns an order-sensitive content hash of the advice. Every field is length
// prefixed, so interceptor ids may contain any character.
func AdviceHash(advice domain.ClassAdvice) string {
	d := xxhash.New()
	var buf []byte
	field := func(v string) {
		buf = binary.AppendUvarint(buf[:0], uint64(len(v)))
		buf = append(buf, v...)
		_, _ = d.Write(buf)
	}
	for _, m := range advice {
		field(m.Method)
		buf = binary.AppendUvarint(buf[:0], uint64(len(m.Interceptors)))
		_, _ = d.Write(buf)
		for _, id := range m.Interceptors {
			field(id)
		}
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
