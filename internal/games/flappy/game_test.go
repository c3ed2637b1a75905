package flappy

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultFlappyConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func newClassicTestGame(seed int64) *Game {
	cfg := config.DefaultFlappyConfig()
	config.ClassicVariant(&cfg)
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func jumpFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStartsNotStarted(t *testing.T) {
	g := newTestGame(1)
	if g.Phase() != PhaseNotStarted {
		t.Fatalf("expected %s, got %s", PhaseNotStarted, g.Phase())
	}
	if n := g.Advance(10); n != 0 {
		t.Errorf("Advance before start ran %d ticks", n)
	}
	if g.Snapshot().Tick != 0 {
		t.Error("tick should not move before start")
	}
}

func TestJumpStartsWithoutAdvancing(t *testing.T) {
	g := newTestGame(1)
	res := g.Step(jumpFrame())

	if g.Phase() != PhaseRunning {
		t.Fatalf("expected running after jump, got %s", g.Phase())
	}
	if res.Ticks != 0 {
		t.Errorf("starting tick should not advance, ran %d", res.Ticks)
	}

	snap := g.Snapshot()
	if snap.Flyer.Velocity != 0 {
		t.Errorf("starting jump should not flap, velocity %v", snap.Flyer.Velocity)
	}

	res = g.Step(core.NewInputFrame())
	if res.Ticks != 1 || !res.State.Running {
		t.Errorf("expected one running tick, got %+v", res)
	}
}

func TestFallingFlyerHitsFirstPipe(t *testing.T) {
	g := newTestGame(7)
	g.Start()

	// Nothing flaps: the flyer rests on the ground and the first pipe
	// reaches its column after 104 ticks at speed 3.
	n := g.Advance(200)
	if n != 104 {
		t.Errorf("expected game over on tick 104, ran %d", n)
	}
	if g.Phase() != PhaseGameOver {
		t.Fatalf("expected game over, got %s", g.Phase())
	}

	snap := g.Snapshot()
	if snap.Score != 0 {
		t.Errorf("expected score 0, got %d", snap.Score)
	}
	if snap.Flyer.Y != g.cfg.MaxY() {
		t.Errorf("expected flyer resting at %v, got %v", g.cfg.MaxY(), snap.Flyer.Y)
	}
}

func TestGameOverFreezes(t *testing.T) {
	g := newTestGame(7)
	g.Start()
	g.Advance(200)
	g.run.ammo = 3

	before := g.Snapshot()
	if g.Advance(50) != 0 {
		t.Error("Advance should be a no-op after game over")
	}
	g.ApplyImpulse()
	if g.FireProjectile() {
		t.Error("FireProjectile should fail after game over")
	}
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	g.Step(in)

	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("state changed after game over")
	}
}

func TestCollisionEndsTickImmediately(t *testing.T) {
	g := newTestGame(7)
	g.Start()

	if g.Advance(103) != 103 || g.Phase() != PhaseRunning {
		t.Fatal("expected the run to survive 103 ticks")
	}
	g.run.cooldown = 5

	g.Advance(1)
	if g.Phase() != PhaseGameOver {
		t.Fatal("expected collision on tick 104")
	}
	if g.run.cooldown != 5 {
		t.Errorf("cooldown ticked after the collision: %d", g.run.cooldown)
	}
}

func TestStartResetsRun(t *testing.T) {
	g := newTestGame(3)
	g.Start()
	g.Advance(200)
	g.run.ammo = 4

	g.Step(jumpFrame())
	if g.Phase() != PhaseRunning {
		t.Fatalf("jump after game over should restart, got %s", g.Phase())
	}

	snap := g.Snapshot()
	if snap.Score != 0 || snap.Ammo != 0 || snap.Cooldown != 0 || snap.Tick != 0 {
		t.Errorf("run state carried over: %+v", snap)
	}
	if len(snap.Obstacles) != 0 || len(snap.Projectiles) != 0 {
		t.Error("obstacles or projectiles carried over")
	}
	if snap.PipeSpeed != 3 || snap.PipeGap != 180 {
		t.Errorf("expected base speed/gap, got %v/%v", snap.PipeSpeed, snap.PipeGap)
	}
	if snap.Flyer.Y != 300 || snap.Flyer.Velocity != 0 {
		t.Errorf("flyer not reset: y=%v v=%v", snap.Flyer.Y, snap.Flyer.Velocity)
	}
}

func TestRestartKey(t *testing.T) {
	g := newTestGame(3)
	g.Start()
	g.Advance(200)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.Phase() != PhaseRunning {
		t.Errorf("restart should begin a new run, got %s", g.Phase())
	}
}

// passObstacle puts a clear pipe just behind the flyer so the next tick scores it.
func passObstacle(g *Game) {
	g.run.stream.obstacles = append([]*Obstacle{{X: -19, Width: 70, GapTop: 0, GapBottom: 600}}, g.run.stream.obstacles...)
}

func TestAmmoAwardedOnThirdPoint(t *testing.T) {
	g := newTestGame(5)
	g.Start()
	g.run.score = 2
	passObstacle(g)

	g.Advance(1)
	snap := g.Snapshot()
	if snap.Score != 3 {
		t.Fatalf("expected score 3, got %d", snap.Score)
	}
	if snap.Ammo != 1 {
		t.Errorf("expected 1 missile awarded, got %d", snap.Ammo)
	}
}

func TestNoAmmoOffMultiples(t *testing.T) {
	g := newTestGame(5)
	g.Start()
	g.run.score = 3
	passObstacle(g)

	g.Advance(1)
	if g.Snapshot().Ammo != 0 {
		t.Error("score 4 should not award a missile")
	}
}

func TestDifficultyAppliedAtScoreFifteen(t *testing.T) {
	g := newTestGame(5)
	g.Start()
	g.run.score = 14
	passObstacle(g)

	g.Advance(1)
	snap := g.Snapshot()
	if snap.Score != 15 {
		t.Fatalf("expected score 15, got %d", snap.Score)
	}
	if !approx(snap.PipeSpeed, 4.5) || !approx(snap.PipeGap, 172.5) {
		t.Errorf("expected speed 4.5 and gap 172.5, got %v and %v", snap.PipeSpeed, snap.PipeGap)
	}
}

func TestGapCapturedAtSpawn(t *testing.T) {
	g := newTestGame(11)
	g.Start()
	g.Advance(1)
	g.run.params.Gap = 150

	g.Advance(60)
	obs := g.run.stream.Obstacles()
	if len(obs) < 2 {
		t.Fatalf("expected a second obstacle, got %d", len(obs))
	}
	if obs[0].Gap() != 180 {
		t.Errorf("existing obstacle gap changed to %v", obs[0].Gap())
	}
	if obs[1].Gap() != 150 {
		t.Errorf("new obstacle should use gap 150, got %v", obs[1].Gap())
	}
}

func TestFireCooldown(t *testing.T) {
	g := newTestGame(5)
	g.Start()
	g.run.ammo = 2

	if !g.FireProjectile() {
		t.Fatal("expected first shot to fire")
	}
	snap := g.Snapshot()
	if snap.Ammo != 1 || snap.Cooldown != 20 || len(snap.Projectiles) != 1 {
		t.Fatalf("unexpected state after firing: ammo=%d cooldown=%d projectiles=%d",
			snap.Ammo, snap.Cooldown, len(snap.Projectiles))
	}
	if g.FireProjectile() {
		t.Error("second shot should be blocked by cooldown")
	}

	g.Advance(19)
	if g.CanFire() {
		t.Error("still cooling down after 19 ticks")
	}
	g.Advance(1)
	if !g.CanFire() {
		t.Error("should be able to fire after 20 ticks")
	}
}

func TestFireWithoutAmmo(t *testing.T) {
	g := newTestGame(5)
	g.Start()

	before := g.Snapshot()
	if g.FireProjectile() {
		t.Error("firing with no ammo should fail")
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("a rejected shot changed state")
	}
}

func TestProjectileHitFlashesObstacle(t *testing.T) {
	g := newTestGame(5)
	g.Start()
	target := &Obstacle{X: 300, Width: 70, GapTop: 200, GapBottom: 380}
	g.run.stream.obstacles = []*Obstacle{target}
	g.run.flyer.Y = 150
	g.run.ammo = 1

	if !g.FireProjectile() {
		t.Fatal("expected to fire")
	}

	// Missile starts at x=90 moving 15/tick; the pipe closes at 3/tick.
	g.Advance(10)
	if target.Hit {
		t.Fatal("hit registered too early")
	}
	g.Advance(1)
	if !target.Hit {
		t.Fatal("expected the top pillar to be hit on tick 11")
	}
	if !g.run.projectiles[0].Exploding {
		t.Error("missile should be exploding")
	}

	g.Advance(15)
	if !target.Hit {
		t.Error("damage flash should last 15 ticks")
	}
	g.Advance(1)
	if target.Hit {
		t.Error("damage flash should clear on the 16th tick")
	}
	if g.Phase() != PhaseRunning {
		t.Error("a missile hit must not end the run")
	}
}

func TestTapFiresElseFlaps(t *testing.T) {
	g := newTestGame(5)
	g.Start()

	g.Tap()
	snap := g.Snapshot()
	if snap.Flyer.Velocity != -7 || len(snap.Projectiles) != 0 {
		t.Errorf("tap without ammo should flap: v=%v projectiles=%d", snap.Flyer.Velocity, len(snap.Projectiles))
	}

	g.run.ammo = 1
	g.run.flyer.Velocity = 2
	g.Tap()
	snap = g.Snapshot()
	if len(snap.Projectiles) != 1 || snap.Flyer.Velocity != 2 {
		t.Errorf("tap with ammo should fire only: v=%v projectiles=%d", snap.Flyer.Velocity, len(snap.Projectiles))
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(5)
	g.Start()
	g.Advance(3)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in)
	if !res.State.Paused || res.Ticks != 0 {
		t.Fatalf("expected paused with no tick, got %+v", res)
	}

	if g.Advance(10) != 0 {
		t.Error("Advance should not run while paused")
	}
	g.ApplyImpulse()
	if g.Snapshot().Flyer.Velocity == -7 {
		t.Error("impulse applied while paused")
	}

	g.Step(in)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestPauseIgnoredBeforeStart(t *testing.T) {
	g := newTestGame(5)
	g.TogglePause()
	if g.State().Paused {
		t.Error("pause should only toggle while running")
	}
}

func TestTrailOnFlap(t *testing.T) {
	g := newTestGame(5)
	g.Start()
	g.ApplyImpulse()

	snap := g.Snapshot()
	if len(snap.Particles) != 3 {
		t.Fatalf("expected 3 particles, got %d", len(snap.Particles))
	}
	for _, p := range snap.Particles {
		if p.Size < 2 || p.Size > 6 || p.Speed < 1 || p.Speed > 4 || p.Life < 10 || p.Life > 20 {
			t.Errorf("particle out of range: %+v", p)
		}
	}

	g.Advance(21)
	if n := len(g.Snapshot().Particles); n != 0 {
		t.Errorf("particles should expire within 20 ticks, %d left", n)
	}
}

func TestClassicVariant(t *testing.T) {
	g := newClassicTestGame(5)
	g.Start()
	g.run.ammo = 3

	if g.FireProjectile() {
		t.Error("classic variant should not fire")
	}
	g.ApplyImpulse()
	if len(g.Snapshot().Particles) != 0 {
		t.Error("classic variant should not emit a trail")
	}

	g.run.score = 14
	passObstacle(g)
	g.Advance(1)
	snap := g.Snapshot()
	if snap.PipeSpeed != 3 || snap.PipeGap != 180 {
		t.Errorf("classic difficulty should stay fixed, got %v/%v", snap.PipeSpeed, snap.PipeGap)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []uint64 {
		g := newTestGame(12345)
		rng := rand.New(rand.NewSource(1)) //#nosec G404 -- test input
		hashes := make([]uint64, 0, 600)
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			switch rng.Intn(10) {
			case 0, 1:
				in.Set(core.ActionJump)
			case 2:
				in.Set(core.ActionFire)
			case 3:
				in.Set(core.ActionTap)
			}
			g.Step(in)
			snap := g.Snapshot()
			hashes = append(hashes, snap.Hash())
		}
		return hashes
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("determinism failed at step %d", i)
		}
	}
}

func TestBoundsUnderRandomInput(t *testing.T) {
	g := newTestGame(99)
	cfg := g.Config()
	rng := rand.New(rand.NewSource(99)) //#nosec G404 -- test input

	var prev Snapshot
	for i := 0; i < 5000; i++ {
		in := core.NewInputFrame()
		if rng.Intn(6) == 0 {
			in.Set(core.ActionJump)
		}
		if rng.Intn(20) == 0 {
			in.Set(core.ActionFire)
		}
		g.Step(in)
		snap := g.Snapshot()

		if snap.Flyer.Y < 0 || snap.Flyer.Y > cfg.MaxY() {
			t.Fatalf("step %d: flyer y %v out of bounds", i, snap.Flyer.Y)
		}
		if snap.Ammo < 0 {
			t.Fatalf("step %d: negative ammo", i)
		}
		if snap.Cooldown < 0 || snap.Cooldown > cfg.Missiles.Cooldown {
			t.Fatalf("step %d: cooldown %d out of range", i, snap.Cooldown)
		}
		if snap.PipeSpeed < 3 || snap.PipeSpeed > 8 || snap.PipeGap < 140 || snap.PipeGap > 180 {
			t.Fatalf("step %d: difficulty out of range: %v/%v", i, snap.PipeSpeed, snap.PipeGap)
		}

		// Within one run score, speed and tightness never go backwards
		if snap.Tick > prev.Tick && prev.Phase == PhaseRunning {
			if snap.Score < prev.Score {
				t.Fatalf("step %d: score decreased", i)
			}
			if snap.PipeSpeed < prev.PipeSpeed || snap.PipeGap > prev.PipeGap {
				t.Fatalf("step %d: difficulty eased", i)
			}
		}
		prev = snap
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(5)
	g.Start()
	g.Advance(5)

	snap := g.Snapshot()
	snap.Obstacles[0].X = -1000
	snap.Flyer.Y = -50

	again := g.Snapshot()
	if again.Obstacles[0].X == -1000 || again.Flyer.Y == -50 {
		t.Error("mutating a snapshot changed the game")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(5)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "FLAPPY") {
		t.Error("expected start overlay")
	}

	g.Start()
	g.Advance(30)
	g.Render(screen)

	// Ground starts at world y 550, which is row 22 on a 24-row screen
	if c := screen.GetCell(0, 22); c.Rune != GroundTopChar {
		t.Errorf("expected ground at row 22, got %q", c.Rune)
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("expected score in HUD, got %q", screen.Row(0))
	}
	if strings.Contains(screen.String(), "FLAPPY") {
		t.Error("start overlay should be gone while running")
	}
	if !strings.ContainsRune(screen.String(), BodyChar) {
		t.Error("expected the flyer to be drawn")
	}
}

func TestAutopilotSurvives(t *testing.T) {
	g := newTestGame(2024)
	snap := Simulate(g, DefaultAutopilot(), 3000)

	if snap.Score < 2 {
		t.Errorf("autopilot should clear a few pipes, scored %d", snap.Score)
	}
}

func TestHardPresetNeverWidensGap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	yaml := "difficulty:\n  base_gap: 85\n  gap_floor: 80\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	SetConfigPath(path)
	SetDifficultyPreset("hard")
	defer func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	}()

	cfg, err := LoadConfig(VariantExtended)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Difficulty.GapFloor > cfg.Difficulty.BaseGap {
		t.Fatalf("gap floor %g above base gap %g", cfg.Difficulty.GapFloor, cfg.Difficulty.BaseGap)
	}

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.Start()
	g.run.score = 5
	g.Advance(1)

	if gap := g.Snapshot().PipeGap; gap > 85 {
		t.Errorf("gap grew from 85 to %v", gap)
	}
}

func TestSnapshotBeforeResetIsEmpty(t *testing.T) {
	g := New()

	snap := g.Snapshot()
	if snap.Phase != PhaseNotStarted || snap.Tick != 0 || len(snap.Obstacles) != 0 {
		t.Errorf("expected an empty snapshot, got %+v", snap)
	}
	if g.run != nil {
		t.Error("Snapshot should not build a run")
	}

	screen := core.NewScreen(20, 5)
	g.Render(screen)
	if strings.TrimSpace(screen.String()) != "" {
		t.Errorf("expected a blank screen before Reset, got %q", screen.String())
	}
	if g.run != nil {
		t.Error("Render should not build a run")
	}
}
