package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/cyber-escape/components"
	"github.com/lixenwraith/cyber-escape/constants"
	"github.com/lixenwraith/cyber-escape/content"
	"github.com/lixenwraith/cyber-escape/vmath"
)

// RoundOptions configures a new round; zero values select defaults
type RoundOptions struct {
	HighScore    int                // carried over from previous rounds
	Waves        *content.WaveTable // nil: content.DefaultWaves()
	Catalog      *content.Catalog   // nil: content.DefaultCatalog()
	Rand         Rand               // nil: time-seeded math/rand
	Cues         CueSink            // nil: discarded
	Logger       *zap.Logger        // nil: no-op
	ClampArrival bool               // clamp the player onto the portal on arrival
}

// RoundStats counts lifecycle events for logging and tests
type RoundStats struct {
	Ticks          uint64
	Waves          int // waves spawned including the opening one
	Transitions    int // completed advances
	PortalsRetired int
	OrbsRetired    int
}

// Outcome is the result handed to the restart prompt
type Outcome struct {
	Score     int
	HighScore int
	NewHigh   bool
	Survived  time.Duration
}

// Round is the level controller: it owns every portal, orb and the player for
// one playthrough and advances them in a fixed per-tick order
type Round struct {
	id      string
	log     *zap.Logger
	cues    CueSink
	catalog *content.Catalog
	rng     Rand
	prog    *Progression

	portals []*components.Portal // spawn order, last is current
	orbs    []*components.Orb
	player  *components.Player

	score     int
	highScore int
	newHigh   bool
	gameOver  bool
	advancing bool
	elapsed   float64 // simulated seconds

	stats RoundStats
}

// NewRound creates a round with the opening portal and wave already spawned
func NewRound(opts RoundOptions) *Round {
	if opts.Waves == nil {
		opts.Waves = content.DefaultWaves()
	}
	if opts.Catalog == nil {
		opts.Catalog = content.DefaultCatalog()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Cues == nil {
		opts.Cues = discardCues{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	id := uuid.NewString()
	r := &Round{
		id:        id,
		log:       opts.Logger.With(zap.String("round", id)),
		cues:      opts.Cues,
		catalog:   opts.Catalog,
		rng:       opts.Rand,
		prog:      NewProgression(opts.Waves, opts.Rand),
		highScore: opts.HighScore,
	}

	start := vmath.V(constants.PlayWidth/2, constants.PlayHeight-constants.PlayerStartMargin)
	r.player = components.NewPlayer(start, r.catalog.PlayerFrame())
	r.player.ClampArrival = opts.ClampArrival

	first := r.spawnPortal()
	r.spawnWave(first)

	r.log.Info("round started",
		zap.Int("high_score", r.highScore),
		zap.Float64("portal_x", first.Position.X))
	return r
}

// Tick advances the simulation by dt seconds; no-op after game over
func (r *Round) Tick(dt float64) {
	if r.gameOver {
		return
	}
	r.stats.Ticks++
	r.elapsed += dt

	for _, p := range r.portals {
		p.Update()
	}
	for _, o := range r.orbs {
		o.Update(dt)
	}

	if hit := r.collide(); hit != nil {
		r.endRound(hit)
		return
	}

	r.player.Update(dt)

	if r.advancing && !r.player.Moving {
		r.advancing = false
		r.transition()
	}

	if r.Phase() == PhaseIdle && r.prog.Level() >= constants.ScoreDecayMinDifficulty && r.score > 0 {
		r.score -= constants.ScoreDecayPerTick
		if r.score < 0 {
			r.score = 0
		}
	}
}

// RequestAdvance starts the player toward the current portal
// Accepted only while idle; returns false with no state change otherwise
func (r *Round) RequestAdvance() bool {
	if r.Phase() != PhaseIdle {
		return false
	}
	target := r.Current()
	if err := r.player.AdvanceTo(target, constants.PlayerAdvanceSpeed); err != nil {
		// Idle guarantees a stationary player and portals spawn away from it
		r.log.Warn("advance rejected", zap.Error(err))
		return false
	}
	r.advancing = true
	r.cues.PlayCue(CueAdvance)
	r.log.Debug("advance accepted",
		zap.Int("difficulty", r.prog.Level()),
		zap.Int("score", r.score))
	return true
}

// collide returns the first live orb touching the player, nil if none
func (r *Round) collide() *components.Orb {
	bounds := r.player.Bounds()
	for _, o := range r.orbs {
		if o.Dormant {
			continue
		}
		if o.Bounds().Intersects(bounds) {
			return o
		}
	}
	return nil
}

func (r *Round) endRound(hit *components.Orb) {
	r.gameOver = true
	if r.score > r.highScore {
		r.highScore = r.score
		r.newHigh = true
	}
	r.cues.PlayCue(CueCollision)
	r.log.Info("round over",
		zap.Int("score", r.score),
		zap.Int("high_score", r.highScore),
		zap.Bool("new_high", r.newHigh),
		zap.Int("difficulty", r.prog.Level()),
		zap.Float64("orb_x", hit.Position.X),
		zap.Float64("orb_y", hit.Position.Y),
		zap.Duration("survived", r.Survived()))
}

// transition runs once the player has reached the current portal
func (r *Round) transition() {
	r.Current().Active = false

	next := r.spawnPortal()
	r.spawnWave(next)

	live := r.portals[:0]
	for _, p := range r.portals {
		p.BeginSlide()
		if p.Position.Y > constants.PlayHeight {
			r.stats.PortalsRetired++
			continue
		}
		live = append(live, p)
	}
	clear(r.portals[len(live):])
	r.portals = live

	orbs := r.orbs[:0]
	for _, o := range r.orbs {
		if o.Position.Y > constants.PlayHeight {
			r.stats.OrbsRetired++
			continue
		}
		orbs = append(orbs, o)
	}
	clear(r.orbs[len(orbs):])
	r.orbs = orbs

	r.score += constants.AdvanceReward
	r.stats.Transitions++

	r.log.Debug("wave advanced",
		zap.Int("score", r.score),
		zap.Int("difficulty", r.prog.Level()),
		zap.Bool("tutorial_complete", r.prog.TutorialComplete()),
		zap.Int("portals", len(r.portals)),
		zap.Int("orbs", len(r.orbs)))
}

// spawnPortal appends a new active portal at a random X on the top edge
func (r *Round) spawnPortal() *components.Portal {
	x := r.rng.Float64() * constants.PlayWidth
	p := components.NewPortal(vmath.V(x, constants.PortalSpawnY), r.catalog.PortalFrames())
	p.Active = true
	r.portals = append(r.portals, p)
	return p
}

// spawnWave attaches the next difficulty pattern to portal
func (r *Round) spawnWave(portal *components.Portal) {
	pattern := r.prog.Next()
	for _, spec := range pattern.Orbs() {
		r.orbs = append(r.orbs, components.NewOrb(r.catalog.OrbFrame(), portal, spec.Radius, spec.Speed, spec.StartAngle))
	}
	r.stats.Waves++
}

// Phase derives the controller state
func (r *Round) Phase() Phase {
	switch {
	case r.gameOver:
		return PhaseGameOver
	case r.advancing || r.player.Moving:
		return PhaseAdvancing
	case r.Current().Sliding():
		return PhaseSlidingIn
	default:
		return PhaseIdle
	}
}

// Current returns the most recently spawned portal
func (r *Round) Current() *components.Portal {
	return r.portals[len(r.portals)-1]
}

// Sprites returns draw requests in layer order: portals, live orbs, player
func (r *Round) Sprites() []components.Sprite {
	sprites := make([]components.Sprite, 0, len(r.portals)+len(r.orbs)+1)
	for _, p := range r.portals {
		sprites = append(sprites, p.Sprite())
	}
	for _, o := range r.orbs {
		if o.Dormant {
			continue
		}
		sprites = append(sprites, o.Sprite())
	}
	return append(sprites, r.player.Sprite())
}

// Outcome returns the score summary; meaningful once GameOver is true
func (r *Round) Outcome() Outcome {
	return Outcome{
		Score:     r.score,
		HighScore: r.highScore,
		NewHigh:   r.newHigh,
		Survived:  r.Survived(),
	}
}

// Survived returns simulated play time
func (r *Round) Survived() time.Duration {
	return time.Duration(r.elapsed * float64(time.Second))
}

func (r *Round) ID() string                    { return r.id }
func (r *Round) Score() int                    { return r.score }
func (r *Round) HighScore() int                { return r.highScore }
func (r *Round) Difficulty() int               { return r.prog.Level() }
func (r *Round) TutorialComplete() bool        { return r.prog.TutorialComplete() }
func (r *Round) GameOver() bool                { return r.gameOver }
func (r *Round) Portals() []*components.Portal { return r.portals }
func (r *Round) Orbs() []*components.Orb       { return r.orbs }
func (r *Round) Player() *components.Player    { return r.player }
func (r *Round) Stats() RoundStats             { return r.stats }
