package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vidiask/swift/builder"
	"github.com/vidiask/swift/diag"
	"github.com/vidiask/swift/internal/testsupport"
	"github.com/vidiask/swift/model"
	"github.com/vidiask/swift/solver"
)

func TestBuilder_AddConformance_SurvivesToGenericSignature(t *testing.T) {
	collector := &diag.Collector{}
	b := builder.New(nil, nil, collector)

	key := model.GenericParamKey{Depth: 0, Index: 0}
	id := b.AddGenericParameter(key)
	src := b.Sources().ForExplicit(id, model.SourceLoc{})

	proto := &testsupport.Protocol{NameValue: "Equatable", ModuleValue: testsupport.Module{PathValue: "Swift"}, Computed: true}
	result := b.AddRequirement(solver.Requirement{
		Kind:     model.RequirementConformance,
		Subject:  testsupport.ParamRef{Key: key},
		Protocol: proto,
	}, src, nil)
	assert.Equal(t, model.Resolved, result)

	sig, err := b.Finalize([]model.GenericParamKey{key}, false)
	require.NoError(t, err)
	require.Len(t, sig.Requirements, 1)
	assert.Equal(t, model.RequirementConformance, sig.Requirements[0].Kind)
	assert.Equal(t, "Equatable", sig.Requirements[0].Protocol.Name())
}

func TestBuilder_Finalize_TwiceReturnsErrAlreadyFinalized(t *testing.T) {
	b := builder.New(nil, nil, &diag.Collector{})
	key := model.GenericParamKey{Depth: 0, Index: 0}
	b.AddGenericParameter(key)

	_, err := b.Finalize([]model.GenericParamKey{key}, true)
	require.NoError(t, err)

	_, err = b.Finalize([]model.GenericParamKey{key}, true)
	assert.ErrorIs(t, err, builder.ErrAlreadyFinalized)
}

func TestBuilder_GenericSignature_BeforeFinalizeReturnsErrNotFinalized(t *testing.T) {
	b := builder.New(nil, nil, &diag.Collector{})
	_, err := b.GenericSignature()
	assert.ErrorIs(t, err, builder.ErrNotFinalized)
}

func TestBuilder_GenericSignature_AfterFinalizeMatchesReturnedSignature(t *testing.T) {
	b := builder.New(nil, nil, &diag.Collector{})
	key := model.GenericParamKey{Depth: 0, Index: 0}
	b.AddGenericParameter(key)

	sig, err := b.Finalize([]model.GenericParamKey{key}, true)
	require.NoError(t, err)

	again, err := b.GenericSignature()
	require.NoError(t, err)
	assert.Same(t, sig, again)
}

func TestBuilder_AddGenericSignature_NilReturnsErrNilGenericSignature(t *testing.T) {
	b := builder.New(nil, nil, &diag.Collector{})
	err := b.AddGenericSignature(nil, nil)
	assert.ErrorIs(t, err, builder.ErrNilGenericSignature)
}

func TestBuilder_AddGenericSignature_ReplaysSameTypeRequirement(t *testing.T) {
	producer := builder.New(nil, nil, &diag.Collector{})
	k0 := model.GenericParamKey{Depth: 0, Index: 0}
	id0 := producer.AddGenericParameter(k0)
	src := producer.Sources().ForExplicit(id0, model.SourceLoc{})
	producer.AddRequirement(solver.Requirement{
		Kind:    model.RequirementSameType,
		Subject: testsupport.ParamRef{Key: k0},
		Type:    testsupport.ConcreteType{Name: "Int"},
	}, src, nil)
	producedSig, err := producer.Finalize([]model.GenericParamKey{k0}, true)
	require.NoError(t, err)
	require.Len(t, producedSig.Requirements, 1)

	consumer := builder.New(nil, nil, &diag.Collector{})
	consumer.AddGenericParameter(k0)
	require.NoError(t, consumer.AddGenericSignature(producedSig, nil))

	consumerSig, err := consumer.Finalize([]model.GenericParamKey{k0}, true)
	require.NoError(t, err)
	require.Len(t, consumerSig.Requirements, 1)
	assert.Equal(t, "Int", consumerSig.Requirements[0].Type.String())
}

func TestBuilder_WithOptions_AppliesLoggerMetricsAndCorrelationID(t *testing.T) {
	rec := &countingRecorder{}
	b := builder.New(nil, nil, &diag.Collector{},
		builder.WithLogger(zap.NewNop()),
		builder.WithMetrics(rec),
		builder.WithCorrelationID("trace-123"),
		builder.WithAllowConcreteGenericParams(),
	)
	key := model.GenericParamKey{Depth: 0, Index: 0}
	id := b.AddGenericParameter(key)
	src := b.Sources().ForExplicit(id, model.SourceLoc{})
	b.AddRequirement(solver.Requirement{
		Kind:    model.RequirementSameType,
		Subject: testsupport.ParamRef{Key: key},
		Type:    testsupport.ConcreteType{Name: "Int"},
	}, src, nil)

	_, err := b.Finalize(nil, true)
	require.NoError(t, err)
	assert.Greater(t, rec.requirementsAdded, 0)
}

func TestWithMetrics_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithMetrics(nil) })
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithLogger(nil) })
}

func TestWithCorrelationID_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { builder.WithCorrelationID("") })
}

type countingRecorder struct {
	requirementsAdded int
	passesObserved    int
}

func (r *countingRecorder) RequirementAdded(kind, result string) { r.requirementsAdded++ }
func (r *countingRecorder) DelayedRetry()                        {}
func (r *countingRecorder) Diagnostic(kind string)               {}
func (r *countingRecorder) FixedPointPasses(n int)               { r.passesObserved = n }
