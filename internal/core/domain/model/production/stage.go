package production

import (
	"fmt"

	"vehicletrack/internal/pkg/errs"
)

// Stage is an ordered manufacturing checkpoint. It is distinct from Status:
// the stage says where in the build the order is, the status says how the
// order is doing.
//
// The defined ordering and its completion percentages:
//
//	PLANNING              5%
//	MATERIAL_PROCUREMENT 15%
//	FRAME_ASSEMBLY       30%
//	BODY_ASSEMBLY        45%
//	PAINTING             60%
//	ENGINE_INSTALLATION  75%
//	INTERIOR_ASSEMBLY    85%
//	QUALITY_INSPECTION   95%
//	FINAL_TESTING        98%
//	COMPLETED           100%
//
// AdvanceStage accepts any valid target stage, forward or backward; the
// ordering above is the intended flow, not an enforced one.
type Stage int

const (
	// StageUnknown catches uninitialized Stage values.
	StageUnknown Stage = iota

	StagePlanning
	StageMaterialProcurement
	StageFrameAssembly
	StageBodyAssembly
	StagePainting
	StageEngineInstallation
	StageInteriorAssembly
	StageQualityInspection
	StageFinalTesting
	StageCompleted
)

// InitialStage is the stage assigned at creation when none is supplied.
const InitialStage = StagePlanning

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:             "UNKNOWN",
		StagePlanning:            "PLANNING",
		StageMaterialProcurement: "MATERIAL_PROCUREMENT",
		StageFrameAssembly:       "FRAME_ASSEMBLY",
		StageBodyAssembly:        "BODY_ASSEMBLY",
		StagePainting:            "PAINTING",
		StageEngineInstallation:  "ENGINE_INSTALLATION",
		StageInteriorAssembly:    "INTERIOR_ASSEMBLY",
		StageQualityInspection:   "QUALITY_INSPECTION",
		StageFinalTesting:        "FINAL_TESTING",
		StageCompleted:           "COMPLETED",
	}
}

// StageFromString parses the canonical upper-snake representation.
func StageFromString(s string) (Stage, error) {
	for stage, str := range getStageStrings() {
		if str == s && stage != StageUnknown {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause("stage",
		fmt.Errorf("%q is not a valid production stage", s))
}

// String returns the canonical name of the stage.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks membership in the enumeration. StageUnknown is invalid.
func (s Stage) Validate() error {
	if s == StageUnknown {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%d is not a valid stage", s))
	}
	if _, ok := getStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// Percentage returns the completion percentage derived from the stage. The
// value is exactly 100 only for StageCompleted. An invalid stage yields 0.
func (s Stage) Percentage() float64 {
	switch s {
	case StagePlanning:
		return 5.0
	case StageMaterialProcurement:
		return 15.0
	case StageFrameAssembly:
		return 30.0
	case StageBodyAssembly:
		return 45.0
	case StagePainting:
		return 60.0
	case StageEngineInstallation:
		return 75.0
	case StageInteriorAssembly:
		return 85.0
	case StageQualityInspection:
		return 95.0
	case StageFinalTesting:
		return 98.0
	case StageCompleted:
		return 100.0
	default:
		return 0.0
	}
}
