// Command gsbdemo exercises a Builder end to end against a small,
// hand-built scenario: two generic parameters T, U where T: Collection,
// T: Hashable, T.Element == U, and U is bound to a concrete type that conforms to
// Hashable through a conformance the program supplies itself. It prints
// the resulting canonical generic signature and any diagnostics raised
// along the way.
package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/vidiask/swift/builder"
	"github.com/vidiask/swift/diag"
	"github.com/vidiask/swift/internal/testsupport"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/solver"
)

func main() {
	// 1. Declare the protocols and the one concrete conformance a real
	// type checker would already have on hand.
	hashable := &testsupport.Protocol{NameValue: "Hashable", Computed: true}
	collection := &testsupport.Protocol{
		NameValue: "Collection",
		Assoc:     []model.AssocTypeDecl{elementAssoc{proto: nil}},
		Computed:  true,
	}

	intType := testsupport.ConcreteType{Name: "Int"}
	intConformance := constConformance{protocol: hashable, concrete: intType}
	lookup := func(_ model.TypeRepr, concrete model.TypeRepr, protocol model.ProtocolDecl) (model.Conformance, bool) {
		if concrete.String() == intType.String() && protocol.Name() == hashable.Name() {
			return intConformance, true
		}
		return nil, false
	}

	// 2. Build the Builder with a diagnostics collector so the program can
	// report what, if anything, was flagged.
	collector := &diag.Collector{}
	b := builder.New(testsupport.Resolver{}, lookup, collector,
		builder.WithLogger(zap.NewNop()),
		builder.WithCorrelationID("gsbdemo-run"),
	)

	// 3. Declare T and U.
	tKey := model.GenericParamKey{Depth: 0, Index: 0}
	uKey := model.GenericParamKey{Depth: 0, Index: 1}
	b.AddGenericParameter(tKey)
	b.AddGenericParameter(uKey)

	tRef := testsupport.ParamRef{Key: tKey}
	uRef := testsupport.ParamRef{Key: uKey}
	tElement := testsupport.Member{BaseType: tRef, Name: "Element"}

	// 4. Add the written requirements: T: Collection, T: Hashable,
	// T.Element == U, U == Int.
	src := b.Sources()
	loc := model.SourceLoc{File: "gsbdemo.swift", Line: 1, Column: 1}

	result := b.AddRequirement(solver.Requirement{
		Kind:     model.RequirementConformance,
		Subject:  tRef,
		Protocol: collection,
	}, src.ForExplicit(model.InvalidPAID, loc), nil)
	log.Printf("T: Collection -> %s", result)

	result = b.AddRequirement(solver.Requirement{
		Kind:     model.RequirementConformance,
		Subject:  tRef,
		Protocol: hashable,
	}, src.ForExplicit(model.InvalidPAID, loc), nil)
	log.Printf("T: Hashable -> %s", result)

	result = b.AddRequirement(solver.Requirement{
		Kind:    model.RequirementSameType,
		Subject: tElement,
		Type:    uRef,
	}, src.ForExplicit(model.InvalidPAID, loc), nil)
	log.Printf("T.Element == U -> %s", result)

	result = b.AddRequirement(solver.Requirement{
		Kind:    model.RequirementSameType,
		Subject: uRef,
		Type:    intType,
	}, src.ForExplicit(model.InvalidPAID, loc), nil)
	log.Printf("U == Int -> %s", result)

	// 5. Finalize and print the canonical signature.
	sig, err := b.Finalize([]model.GenericParamKey{tKey, uKey}, false)
	if err != nil {
		log.Fatalf("finalize: %v", err)
	}

	fmt.Println("canonical requirements:")
	for _, req := range sig.Requirements {
		printRequirement(req)
	}

	if len(collector.Entries) == 0 {
		fmt.Println("no diagnostics")
		return
	}
	fmt.Println("diagnostics:")
	for _, e := range collector.Entries {
		fmt.Printf("  %s at %s\n", e.Kind, e.Loc)
	}
}

func printRequirement(req model.ResolvedRequirement) {
	switch req.Kind {
	case model.RequirementConformance:
		fmt.Printf("  %s: %s\n", req.Subject, req.Protocol.Name())
	case model.RequirementSuperclass:
		fmt.Printf("  %s: %s\n", req.Subject, req.Type)
	case model.RequirementSameType:
		if req.HasOther {
			fmt.Printf("  %s == %s\n", req.Subject, req.Other)
		} else {
			fmt.Printf("  %s == %s\n", req.Subject, req.Type)
		}
	case model.RequirementLayout:
		fmt.Printf("  %s: %s\n", req.Subject, req.Layout.Kind)
	}
}

// elementAssoc is a minimal model.AssocTypeDecl for Collection.Element.
type elementAssoc struct {
	proto model.ProtocolDecl
}

func (elementAssoc) Name() string                  { return "Element" }
func (e elementAssoc) Protocol() model.ProtocolDecl { return e.proto }
func (elementAssoc) Ordinal() int                  { return 0 }

// constConformance is a fixed, single-protocol model.Conformance used
// for the demo's one concrete witness (Int: Hashable).
type constConformance struct {
	protocol model.ProtocolDecl
	concrete model.TypeRepr
}

func (c constConformance) Protocol() model.ProtocolDecl { return c.protocol }
func (c constConformance) ConcreteType() model.TypeRepr { return c.concrete }
func (constConformance) AssociatedTypeWitness(model.AssocTypeDecl) (model.TypeRepr, bool) {
	return nil, false
}
