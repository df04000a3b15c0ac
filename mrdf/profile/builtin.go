package profile

import "github.com/joshuapare/mrdfkit/pkg/types"

// Keys of the built-in profiles.
const (
	StatsKey   = "stats"
	PhysicsKey = "physics"
)

// Enumerations used by the built-in tables.
var (
	EngineType = types.Enumeration{
		0x00: "Don't use",
		0x01: "V6",
		0x02: "V8",
		0x03: "V10",
		0x04: "V12",
		0x05: "Straight 4",
		0x06: "Straight 5",
		0x07: "Straight 6",
		0x08: "Rotary 2",
		0x09: "Rotary 3",
		0x0A: "Flat 4",
		0x0B: "Flat 6",
		0x0C: "W16",
		0x0D: "W12",
		0x0E: "Single Cylinder",
		0x0F: "Twin Cylinder",
		0x10: "Flat 8",
		0x11: "Flat 12",
	}
	Drivetrain = types.Enumeration{0: "RWD", 1: "AWD", 2: "FWD"}
	BoostType  = types.Enumeration{0: "Natural Aspiration", 1: "Supercharged", 2: "Turbo"}
	Aspiration = types.Enumeration{0: "Naturally aspirated", 1: "Boosted"}
	ShiftType  = types.Enumeration{0: "H Pattern", 1: "Sequential"}
	TickRate   = types.Enumeration{180: "180 Hz", 360: "360 Hz", 540: "540 Hz"}
	Bool01     = types.Enumeration{0: "False", 1: "True"}
)

// TyreBits is the legend of the tyre availability mask. Only the low byte is used.
var TyreBits = []types.Bit{
	{Mask: 0x01, Label: "Soft / Semi Slick"},
	{Mask: 0x02, Label: "Medium"},
	{Mask: 0x04, Label: "Hard"},
	{Mask: 0x08, Label: "Intermediate"},
	{Mask: 0x10, Label: "Wet"},
	{Mask: 0x20, Label: "Extreme"},
	{Mask: 0x40, Label: "All Weather"},
}

const (
	f32 = types.KindFloat32
	u32 = types.KindUint32
	b32 = types.KindBool32
)

func field(name, section string, off int, kind types.ScalarKind, note string) types.FieldDef {
	return types.FieldDef{Name: name, Section: section, Offset: off, Kind: kind, Note: note}
}

func enumField(name, section string, off int, kind types.ScalarKind, note string, e types.Enumeration) types.FieldDef {
	d := field(name, section, off, kind, note)
	d.Enum = e
	return d
}

// Stats is the "Statistics MRDF" layout: menu statistics and feature flags.
var Stats = types.MustProfile(StatsKey, "Statistics MRDF", []types.FieldDef{
	field("TopSpeed_mps", "PERFORMANCE", 0x20, f32, "Top speed in meters/sec. MPH*0.447"),
	field("Accel_0_100_kmh", "PERFORMANCE", 0x24, f32, "0-100km/h time (seconds)"),
	field("Gear_for_100_kmh", "PERFORMANCE", 0x28, u32, "Gear needed to reach 100km/h"),
	field("Accel_0_160_kmh", "PERFORMANCE", 0x2C, f32, "0-160km/h time (seconds)"),
	field("Gear_for_160_kmh", "PERFORMANCE", 0x30, u32, "Gear needed to reach 160km/h"),
	field("Braking_100_0_kmh", "PERFORMANCE", 0x34, f32, "100-0km/h time (seconds)"),
	field("PerformanceIndex_PI", "PERFORMANCE", 0x38, f32, "Performance rating (not used in-game)"),
	field("Mass_kg", "PERFORMANCE", 0x3C, f32, "Mass in kg"),

	field("NumGears", "DRIVETRAIN", 0x40, u32, "Number of gears in transmission"),
	field("Torque_lbft", "DRIVETRAIN", 0x44, f32, "Torque in lb-ft"),
	field("HP_SAE_Net", "DRIVETRAIN", 0x48, f32, "Horsepower (SAE Net)"),
	enumField("DrivetrainType", "DRIVETRAIN", 0x4C, u32, "00=RWD,01=AWD,02=FWD", Drivetrain),

	enumField("BoostType", "ENGINE", 0x50, u32, "0=NA,1=Supercharged,2=Turbo", BoostType),
	enumField("Aspiration", "ENGINE", 0x54, u32, "0=NA,1=Boosted", Aspiration),
	field("HandlingPerformance", "HANDLING", 0x58, f32, "Handling performance"),
	field("Unknown_0x5C", "UNKNOWN", 0x5C, u32, "Unknown"),
	field("Unknown_0x60", "UNKNOWN", 0x60, u32, "Unknown"),

	enumField("EngineType", "ENGINE", 0x64, u32, "Engine type enum", EngineType),
	field("TierLevel", "META", 0x68, u32, "Tier level"),

	field("Unknown_0x6C", "UNKNOWN", 0x6C, f32, "Unknown float"),
	field("Unknown_0x70", "UNKNOWN", 0x70, f32, "Unknown float"),
	field("Unknown_0x74", "UNKNOWN", 0x74, u32, "Unknown (often 0x80000000 in sample)"),
	field("Unknown_0x78", "UNKNOWN", 0x78, f32, "Unknown float"),
	field("Unknown_0x7C", "UNKNOWN", 0x7C, f32, "Unknown float"),

	field("BodyHeightAdjust_m", "CHASSIS", 0x80, f32, "Menu-only body height adjust (m)"),
	field("Wheelbase_m", "CHASSIS", 0x84, f32, "Wheelbase (m)"),
	field("RearWeightDistribution", "CHASSIS", 0x88, f32, "Rear weight distribution (0..1)"),

	field("ABS", "ASSISTS", 0x8C, b32, "ABS enabled (1=true)"),
	field("TC", "ASSISTS", 0x90, b32, "Traction Control (1=true)"),
	field("SC", "ASSISTS", 0x94, b32, "Stability Control (1=true)"),

	field("CorneringDifficulty", "HANDLING", 0x98, u32, "Cornering difficulty (1,2,3)"),
	field("CorneringSpeed", "HANDLING", 0x9C, u32, "Cornering speed (1,2,3)"),

	field("EngineDisplacement", "ENGINE", 0xA0, f32, "Engine displacement (units: litres)"),
	enumField("ShiftType", "DRIVETRAIN", 0xA4, u32, "00=H Pattern,01=Sequential", ShiftType),
	field("DRS_Enabled", "AERO", 0xA8, b32, "DRS available (1=true)"),
	field("BoostButton", "ENGINE", 0xAC, b32, "Boost button available (1=true)"),
	field("AdjustableTurbo", "ENGINE", 0xB0, b32, "Adjustable turbo available (1=true)"),
	field("OnboardRollBars", "CHASSIS", 0xB4, b32, "Onboard roll bars adjustable (1=true)"),
	field("OnboardBrakeBias", "BRAKES", 0xB8, b32, "Onboard brake bias adjustable (1=true)"),
	{
		Name: "TyreAvailability", Section: "TYRES", Offset: 0xBC, Kind: u32,
		Note: "Tyre availability bitmask in low byte (0x40=All Weather override; else bits 0-5: Soft/Med/Hard/Inter/Wet/Extreme)",
		Bits: TyreBits,
	},
	field("Headlights", "ELECTRICAL", 0xC0, b32, "Headlights available (1=true)"),
	field("PitLimiter", "DRIVETRAIN", 0xC4, b32, "Pit limiter available (1=true)"),
})

// Physics is the "Physics Tweaker MRDF" layout.
var Physics = types.MustProfile(PhysicsKey, "Physics Tweaker MRDF", []types.FieldDef{
	field("BrakeGlowMinTemp", "BRAKES", 0x0030, f32, "Brake glow minimum temp (float)"),
	field("BrakeGlowMaxTemp", "BRAKES", 0x0034, f32, "Brake glow maximum temp (float)"),
	field("BrakeGlowScaleAI", "BRAKES", 0x0038, f32, "Brake glow scale for AI (float)"),
	field("BrakeGlowScalePlayer", "BRAKES", 0x003C, f32, "Brake glow scale for Player (float)"),

	field("ContinuousCDThickness", "JOINTS", 0x0048, f32, "Continuous CD Thickness (float)"),
	field("JointIterations", "JOINTS", 0x004C, u32, "Joint Iterations (often looks integer in dumps)"),
	field("JointStrength", "JOINTS", 0x0050, f32, "Joint Strength (float)"),

	enumField("EnableAntiFlipAid", "ANTI-FLIP", 0x0054, u32, "Enable Anti Flip Aid (0/1)", Bool01),
	field("AntiFlipMinAngle", "ANTI-FLIP", 0x0058, f32, "Anti Flip Minimum Angle (deg)"),
	field("AntiFlipMaxAngle", "ANTI-FLIP", 0x005C, f32, "Anti Flip Maximum Angle (deg)"),
	field("AntiFlipTorqueForce", "ANTI-FLIP", 0x0060, f32, "Anti Flip Torque Fixing Force"),
	field("AntiFlipOrientForce", "ANTI-FLIP", 0x0064, f32, "Anti Flip Orientation Fixing Force"),

	field("MinBumpStopForce", "SUSPENSION", 0x02F0, f32, "Minimum Bump Stop Force"),
	field("MaxBumpStopForce", "SUSPENSION", 0x02F4, f32, "Maximum Bump Stop Force"),

	field("DraftMinSpeed", "DRAFTING", 0x02F8, f32, "Drafting Minimum Speed"),
	field("DraftRampSpeed", "DRAFTING", 0x02FC, f32, "Drafting Ramp Speed"),
	field("DraftMaxSpeed", "DRAFTING", 0x0300, f32, "Drafting Maximum Speed"),
	field("DraftMaxDistFront", "DRAFTING", 0x0304, f32, "Drafting Max Distance In Front"),
	field("DraftMinLatFront", "DRAFTING", 0x0308, f32, "Drafting Min Lateral In Front"),
	field("DraftMaxLatFront", "DRAFTING", 0x030C, f32, "Drafting Max Lateral In Front"),
	field("DraftMaxDistBehind", "DRAFTING", 0x0310, f32, "Drafting Max Distance Behind"),
	field("DraftMinLatBehind", "DRAFTING", 0x0314, f32, "Drafting Min Lateral Behind"),
	field("DraftMaxLatBehind", "DRAFTING", 0x0318, f32, "Drafting Max Lateral Behind"),
	field("DraftAirScale", "DRAFTING", 0x031C, f32, "Drafting Air Scale"),

	field("LowSpeedTCAtRest", "ASSISTS", 0x0320, f32, "Low Speed TC At Rest"),
	field("LowSpeedTCSpeedThresh", "ASSISTS", 0x0324, f32, "Low Speed TC Speed Threshold"),
	field("LowSpeedGripAtRest", "ASSISTS", 0x0328, f32, "Low Speed Grip At Rest"),
	field("LowSpeedGripSpeedTh", "ASSISTS", 0x032C, f32, "Low Speed Grip Speed Threshold"),

	field("AutoResetDisableCollT", "RESET", 0x0330, f32, "Auto Reset - Time Collision Is Disabled (s)"),
	field("AutoResetMinSpeedMPH", "RESET", 0x0334, f32, "Auto Reset - Minimum Speed in MPH"),

	field("AutoClutch", "ASSISTS", 0x0378, u32, "Auto Clutch (0/1)"),
	field("SteeringHelpFunction", "ASSISTS", 0x037C, u32, "Steering help function (int)"),

	enumField("PhysicsTickRate", "PHYSICS", 0x0380, u32, "Physics tick rate", TickRate),
	enumField("AutoReverse", "ASSISTS", 0x0384, u32, "Auto reverse (0/1)", Bool01),
	field("AutoShiftOverrideTime", "ASSISTS", 0x0388, f32, "Auto shift override time (s)"),
	field("ManShiftOverrideTime", "ASSISTS", 0x038C, f32, "Manual shift override time (s)"),

	field("AIStrengthNovice", "AI", 0x03B0, f32, "AI Strength Novice"),
	field("AIStrengthAmateur", "AI", 0x03B4, f32, "AI Strength Amateur"),
	field("AIStrengthPro", "AI", 0x03B8, f32, "AI Strength Pro"),

	field("AIAggressionNovice", "AI", 0x03BC, f32, "AI Aggression Novice"),
	field("AIAggressionNormal", "AI", 0x03C0, f32, "AI Aggression Normal"),
	field("AIAggressionXP", "AI", 0x03C4, f32, "AI Aggression XP"),
	field("AIAggressionPro", "AI", 0x03C8, f32, "AI Aggression Pro"),

	field("FuelMult", "AI", 0x03D4, u32, "Fuel mult (int)"),
	field("TyreMult", "AI", 0x03D8, u32, "Tire mult (int)"),
})
