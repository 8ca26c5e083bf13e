package launcher

// Stage names one step of a launch run. Stages advance strictly in
// order; Failed can follow any of them.
type Stage string

const (
	StageIdle             Stage = "idle"
	StageResolvingJava    Stage = "resolving-java"
	StageResolvingVersion Stage = "resolving-version"
	StageResolvingLoader  Stage = "resolving-loader"
	StageBuildingSkinPack Stage = "building-skin-pack"
	StageRegisteringPack  Stage = "registering-pack"
	StageLaunching        Stage = "launching"
	StageSucceeded        Stage = "succeeded"
	StageFailed           Stage = "failed"
)

// Event is one progress report pushed to the consumer. Percent is -1
// when the stage has no meaningful completion number.
type Event struct {
	Stage   Stage
	Percent int
	Message string
}
