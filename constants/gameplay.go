package constants

import "time"

// Play Area
const (
	// PlayWidth is the logical width of the play area in world units
	PlayWidth = 1920.0

	// PlayHeight is the logical height of the play area in world units
	PlayHeight = 1080.0
)

// Simulation Timing
const (
	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond = 60

	// TickInterval is the wall-clock duration of one simulation tick
	TickInterval = time.Second / TicksPerSecond

	// TickSeconds is TickInterval expressed in seconds for motion math
	TickSeconds = 1.0 / TicksPerSecond
)

// Portal Mechanics
const (
	// PortalFrameCount is the number of frames in the portal spin animation
	PortalFrameCount = 16

	// PortalFrameHold is the number of ticks each portal frame is held
	PortalFrameHold = 3

	// PortalInactiveFrame is the frame index shown while a portal is inactive
	PortalInactiveFrame = 3

	// PortalIdleSpin is the rotation added per tick to an inactive portal (radians)
	PortalIdleSpin = 0.1

	// PortalSlideStep is the downward distance per tick while sliding
	PortalSlideStep = 18.0

	// PortalSlideDistance is the total distance of one slide
	PortalSlideDistance = 540.0

	// PortalSpawnY is the vertical spawn position of new portals (top edge)
	PortalSpawnY = 0.0
)

// Orb Mechanics
const (
	// OrbHitRadius is the bounding circle radius of an orb
	OrbHitRadius = 16.0
)

// Player Mechanics
const (
	// PlayerHitRadius is the bounding circle radius of the player
	PlayerHitRadius = 16.0

	// PlayerAdvanceSpeed is the traversal speed toward the next portal (units/sec)
	PlayerAdvanceSpeed = 2000.0

	// PlayerRideOffsetX, PlayerRideOffsetY offset the idle player from its portal
	PlayerRideOffsetX = 10.0
	PlayerRideOffsetY = 10.0

	// PlayerStartMargin is the distance of the start position above the bottom edge
	PlayerStartMargin = 60.0
)

// Scoring and Difficulty
const (
	// AdvanceReward is the score awarded per completed advance
	AdvanceReward = 100

	// ScoreDecayPerTick is the stall penalty applied while idle
	ScoreDecayPerTick = 1

	// ScoreDecayMinDifficulty is the difficulty from which idle decay applies
	ScoreDecayMinDifficulty = 2

	// EndlessDifficultyMin, EndlessDifficultyMax bound random difficulty after the tutorial
	EndlessDifficultyMin = 3
	EndlessDifficultyMax = 10
)
