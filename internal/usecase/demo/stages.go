package demo

const (
	StageVehicleApproach     = "vehicle-approach"
	StageRFIDScan            = "rfid-scan"
	StagePlateScan           = "plate-scan"
	StageUserAuthentication  = "user-authentication"
	StageSlotSearch          = "slot-search"
	StageSlotReservation     = "slot-reservation"
	StageSessionCreation     = "session-creation"
	StageGateOpen            = "gate-open"
	StageTimerStart          = "timer-start"
	StageExitApproach        = "exit-approach"
	StageRFIDVerify          = "rfid-verify"
	StageDurationCalculation = "duration-calculation"
	StageChargeCalculation   = "charge-calculation"
	StagePayment             = "payment"
	StageSlotRelease         = "slot-release"
	StageExitGateOpen        = "exit-gate-open"
)

// EntryStages and ExitStages share one index space: the exit run continues
// numbering where the entry run stopped.
var (
	EntryStages = []string{
		StageVehicleApproach,
		StageRFIDScan,
		StagePlateScan,
		StageUserAuthentication,
		StageSlotSearch,
		StageSlotReservation,
		StageSessionCreation,
		StageGateOpen,
		StageTimerStart,
	}

	ExitStages = []string{
		StageExitApproach,
		StageRFIDVerify,
		StageDurationCalculation,
		StageChargeCalculation,
		StagePayment,
		StageSlotRelease,
		StageExitGateOpen,
	}
)

// StageName returns the name at index i, or "" outside both lists.
func StageName(i int) string {
	switch {
	case i < 0:
		return ""
	case i < len(EntryStages):
		return EntryStages[i]
	case i < len(EntryStages)+len(ExitStages):
		return ExitStages[i-len(EntryStages)]
	default:
		return ""
	}
}
