package solver

import (
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/nested"
	"github.com/vidiask/swift/source"
)

// Requirement is the generic, kind-tagged requirement shape accepted by
// AddRequirement. Subject and Type are left as
// opaque TypeRepr values; the solver decides how to resolve them based
// on Kind.
type Requirement struct {
	Kind     model.RequirementKind
	Subject  model.TypeRepr
	Protocol model.ProtocolDecl // set for RequirementConformance/RequirementSuperclass-as-protocol
	Type     model.TypeRepr     // set for RequirementSuperclass/RequirementSameType (right-hand side)
	Layout   model.Layout       // set for RequirementLayout
}

// SubstitutionMap rewrites a generic parameter key to its contextual
// substitution, used when AddGenericSignature or inference re-adds
// another declaration's requirements under the caller's own generic
// parameters.
type SubstitutionMap map[model.GenericParamKey]model.TypeRepr

// AddRequirement dispatches req to the matching typed entry point after
// applying subst to its subject, if given. This is the single generic
// ingress entry point.
func (s *Solver) AddRequirement(req Requirement, src *source.Source, subst SubstitutionMap) model.ConstraintResult {
	subject := substitute(req.Subject, subst)
	switch req.Kind {
	case model.RequirementConformance:
		return s.AddConformance(subject, req.Protocol, src)
	case model.RequirementSuperclass:
		return s.AddSuperclass(subject, substitute(req.Type, subst), src)
	case model.RequirementLayout:
		return s.AddLayout(subject, req.Layout, src)
	case model.RequirementSameType:
		return s.AddSameTypeRequirement(subject, substitute(req.Type, subst), src)
	default:
		return model.Conflicting
	}
}

// substitute replaces t with its mapped contextual type when t is a bare
// generic-parameter reference present in subst; anything else (including
// dependent members, which substitute at their eventual root during
// resolution) passes through unchanged.
func substitute(t model.TypeRepr, subst SubstitutionMap) model.TypeRepr {
	if subst == nil || t == nil {
		return t
	}
	ref, ok := t.(model.GenericParamRef)
	if !ok {
		return t
	}
	if repl, ok := subst[ref.ParamKey()]; ok {
		return repl
	}
	return t
}

// InferRequirements walks t (a bound generic type) and re-adds every
// requirement of its own generic signature under an Inferred floating
// source and the contextual substitution the resolver supplies. decl
// identifies the generic declaration bound-type t refers to, so the
// resolver can look up its signature.
func (s *Solver) InferRequirements(decl model.ProtocolDecl, t model.TypeRepr, subst SubstitutionMap) model.ConstraintResult {
	if s.ctx.Resolver == nil {
		return model.Resolved
	}
	reqs, ok := s.ctx.Resolver.ResolveDeclSignature(decl)
	if !ok {
		return model.Resolved
	}
	// The inferred source's root is whichever PA the first requirement's
	// subject resolves to; later requirements reuse it since they all
	// originate from the same bound-type walk.
	root := model.InvalidPAID
	for _, r := range reqs {
		subject := substitute(r.Subject, subst)
		if root == model.InvalidPAID {
			if resolvedSubject := s.resolveSubject(subject, nested.AddIfMissing); resolvedSubject.ok && resolvedSubject.isPA {
				root = resolvedSubject.pa
			}
		}
		inferredSrc := s.ctx.Sources.ForInferred(root, t)
		req := Requirement{Kind: r.Kind, Subject: r.Subject, Protocol: r.Protocol, Type: r.Type}
		s.AddRequirement(req, inferredSrc, subst)
	}
	return model.Resolved
}
