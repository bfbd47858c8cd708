package domain

type BlockKind string

const (
	BlockWork    BlockKind = "work"
	BlockLunch   BlockKind = "lunch"
	BlockMeeting BlockKind = "meeting"
	BlockFree    BlockKind = "free"
)

type ObligationKind string

const (
	ObligationLunch   ObligationKind = "lunch"
	ObligationMeeting ObligationKind = "meeting"
)

type Scenario string

const (
	ScenarioNormal    Scenario = "normal"
	ScenarioHeavyWeek Scenario = "heavy_week"
	ScenarioLightWeek Scenario = "light_week"
)

// ValidScenarios is the canonical set of accepted scenario strings.
var ValidScenarios = map[string]bool{
	"normal": true, "heavy_week": true, "light_week": true,
}
