package production_test

import (
	"testing"

	"vehicletrack/internal/core/domain/model/production"
	"vehicletrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_Percentage(t *testing.T) {
	tests := []struct {
		stage    production.Stage
		expected float64
	}{
		{production.StagePlanning, 5.0},
		{production.StageMaterialProcurement, 15.0},
		{production.StageFrameAssembly, 30.0},
		{production.StageBodyAssembly, 45.0},
		{production.StagePainting, 60.0},
		{production.StageEngineInstallation, 75.0},
		{production.StageInteriorAssembly, 85.0},
		{production.StageQualityInspection, 95.0},
		{production.StageFinalTesting, 98.0},
		{production.StageCompleted, 100.0},
		{production.StageUnknown, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.stage.String(), func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.stage.Percentage(), 0.0001)
		})
	}
}

func TestStage_Percentage_MonotonicOverOrdering(t *testing.T) {
	ordered := []production.Stage{
		production.StagePlanning,
		production.StageMaterialProcurement,
		production.StageFrameAssembly,
		production.StageBodyAssembly,
		production.StagePainting,
		production.StageEngineInstallation,
		production.StageInteriorAssembly,
		production.StageQualityInspection,
		production.StageFinalTesting,
		production.StageCompleted,
	}

	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Percentage(), ordered[i-1].Percentage(),
			"%s must be further along than %s", ordered[i], ordered[i-1])
	}

	// Exactly 100 only at the terminal stage.
	for _, stage := range ordered[:len(ordered)-1] {
		assert.Less(t, stage.Percentage(), 100.0)
	}
	assert.InDelta(t, 100.0, production.StageCompleted.Percentage(), 0.0001)
}

func TestStage_String_RoundTrip(t *testing.T) {
	stages := []production.Stage{
		production.StagePlanning,
		production.StageMaterialProcurement,
		production.StageFrameAssembly,
		production.StageBodyAssembly,
		production.StagePainting,
		production.StageEngineInstallation,
		production.StageInteriorAssembly,
		production.StageQualityInspection,
		production.StageFinalTesting,
		production.StageCompleted,
	}

	for _, stage := range stages {
		parsed, err := production.StageFromString(stage.String())
		require.NoError(t, err)
		assert.Equal(t, stage, parsed)
	}
}

func TestStageFromString_Invalid(t *testing.T) {
	_, err := production.StageFromString("WHEEL_ALIGNMENT")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStage_Validate(t *testing.T) {
	require.NoError(t, production.StageFinalTesting.Validate())
	require.ErrorIs(t, production.StageUnknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, production.Stage(77).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_String_RoundTrip(t *testing.T) {
	statuses := []production.Status{
		production.StatusPending,
		production.StatusInProgress,
		production.StatusOnHold,
		production.StatusDelayed,
		production.StatusQualityCheckFailed,
		production.StatusCompleted,
		production.StatusCancelled,
	}

	for _, status := range statuses {
		parsed, err := production.StatusFromString(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, production.StatusOnHold.Validate())
	require.ErrorIs(t, production.StatusUnknown.Validate(), errs.ErrValueIsInvalid)
}
