package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBullet_AdvanceAndExpire(t *testing.T) {
	b := &Bullet{Position: mgl64.Vec3{0, 0, -49.9}, Speed: 0.2, Alive: true}

	if b.Expired(ExitDepth) {
		t.Fatal("Expected bullet inside the field not to be expired")
	}
	b.Advance()
	if b.Position.Z() > -50.09 || b.Position.Z() < -50.11 {
		t.Errorf("Expected depth -50.1, got %f", b.Position.Z())
	}
	if !b.Expired(ExitDepth) {
		t.Error("Expected bullet past the exit plane to be expired")
	}
}

func TestBulletList_SpawnAddsToScene(t *testing.T) {
	scene := newFakeScene()
	l := NewBulletList(scene, ExitDepth)

	b := l.Spawn(mgl64.Vec3{1, 2, 0}, 0.3)

	if l.Len() != 1 || !b.Alive {
		t.Fatal("Expected one live bullet")
	}
	if scene.count(BulletObject) != 1 {
		t.Errorf("Expected bullet in scene, have %d", scene.count(BulletObject))
	}
	if scene.pos[b.object] != (mgl64.Vec3{1, 2, 0}) {
		t.Errorf("Expected scene position at origin, got %v", scene.pos[b.object])
	}
}

func TestBulletList_AdvanceDropsExpiredInOrder(t *testing.T) {
	scene := newFakeScene()
	l := NewBulletList(scene, ExitDepth)

	first := l.Spawn(mgl64.Vec3{0, 0, -10}, 0.2)
	gone := l.Spawn(mgl64.Vec3{0, 0, -49.95}, 0.2)
	last := l.Spawn(mgl64.Vec3{0, 0, -20}, 0.2)

	if removed := l.Advance(); removed != 1 {
		t.Fatalf("Expected 1 expired bullet, got %d", removed)
	}

	all := l.All()
	if len(all) != 2 || all[0] != first || all[1] != last {
		t.Errorf("Expected survivors in spawn order, got %v", all)
	}
	if gone.Alive {
		t.Error("Expected expired bullet to be dead")
	}
	if scene.count(BulletObject) != 2 {
		t.Errorf("Expected 2 bullets in scene, got %d", scene.count(BulletObject))
	}
}

func TestBulletList_KillTwiceIsSafe(t *testing.T) {
	scene := newFakeScene()
	l := NewBulletList(scene, ExitDepth)
	b := l.Spawn(mgl64.Vec3{}, 0.2)

	l.Kill(b)
	l.Kill(b)

	if l.Len() != 1 {
		t.Error("Expected dead bullet to stay listed until RemoveDead")
	}
	if n := l.RemoveDead(); n != 1 || l.Len() != 0 {
		t.Errorf("Expected 1 removed and empty list, got %d and %d", n, l.Len())
	}
}

func TestBulletList_Clear(t *testing.T) {
	scene := newFakeScene()
	l := NewBulletList(scene, ExitDepth)
	for i := 0; i < 5; i++ {
		l.Spawn(mgl64.Vec3{}, 0.2)
	}

	l.Clear()

	if l.Len() != 0 || scene.count(BulletObject) != 0 {
		t.Errorf("Expected empty list and scene, got %d and %d", l.Len(), scene.count(BulletObject))
	}
}
