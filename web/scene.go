//go:build js
// +build js

package web

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/ufo-defense/game"
)

// Camera frustum
const (
	cameraFOV  = 65
	cameraNear = 0.1
	cameraFar  = 1000
)

// ModelPaths are the GLTF files loaded at startup, relative to the page.
var ModelPaths = map[game.ObjectKind]string{
	game.ShipObject:  "models/Spaceship.glb",
	game.AlienObject: "models/ufo.glb",
}

type sceneObject struct {
	kind  game.ObjectKind
	group *js.Object
}

// Scene is the three.js implementation of game.Scene. Every object is a
// group wrapping either a clone of a loaded model or a fallback mesh, so
// the model's own orientation survives position and tilt updates.
type Scene struct {
	three    *js.Object
	scene    *js.Object
	camera   *js.Object
	renderer *js.Object

	models  map[game.ObjectKind]*js.Object
	objects map[game.ObjectID]*sceneObject
	next    game.ObjectID

	bulletGeometry *js.Object
	bulletMaterial *js.Object

	beam         *js.Object
	beamMaterial *js.Object

	stars          *js.Object
	starPositions  *js.Object
	starAttributes *js.Object
	starCount      int
}

// NewScene creates the renderer and appends its canvas to container.
func NewScene(container *js.Object, width, height int) *Scene {
	three := js.Global.Get("THREE")
	s := &Scene{
		three:   three,
		scene:   three.Get("Scene").New(),
		models:  make(map[game.ObjectKind]*js.Object),
		objects: make(map[game.ObjectID]*sceneObject),
	}
	s.scene.Set("background", three.Get("Color").New(Theme.BackgroundColor))

	s.camera = three.Get("PerspectiveCamera").New(cameraFOV, float64(width)/float64(height), cameraNear, cameraFar)
	s.camera.Get("position").Call("set", game.CameraOffsetX, game.CameraOffsetY, game.CameraDepth)

	s.renderer = three.Get("WebGLRenderer").New(js.M{"antialias": true})
	s.renderer.Call("setPixelRatio", js.Global.Get("devicePixelRatio"))
	s.renderer.Call("setSize", width, height)
	container.Call("appendChild", s.renderer.Get("domElement"))

	s.scene.Call("add", three.Get("AmbientLight").New(Theme.AmbientColor, Theme.AmbientIntensity))
	sun := three.Get("DirectionalLight").New(Theme.AmbientColor, Theme.SunIntensity)
	sun.Get("position").Call("set", 0, 5, 0)
	s.scene.Call("add", sun)

	size := Theme.BulletSize
	s.bulletGeometry = three.Get("BoxGeometry").New(size, size, size)
	s.bulletMaterial = three.Get("MeshBasicMaterial").New(js.M{"color": Theme.BulletColor})

	s.beamMaterial = three.Get("MeshBasicMaterial").New(js.M{"color": Theme.BeamColor})
	s.beam = three.Get("Mesh").New(
		three.Get("CylinderGeometry").New(Theme.BeamRadius, Theme.BeamRadius, 1, 8),
		s.beamMaterial,
	)
	s.beam.Get("rotation").Set("x", math.Pi/2)
	s.beam.Set("visible", false)
	s.scene.Call("add", s.beam)

	return s
}

// LoadModels loads every GLTF in paths and blocks until each load has
// reported back. A failed load is logged and its kind keeps the fallback
// mesh. It must not be called from a JS callback.
func (s *Scene) LoadModels(paths map[game.ObjectKind]string) {
	type loaded struct {
		kind  game.ObjectKind
		model *js.Object
		err   string
	}

	ctor := s.three.Get("GLTFLoader")
	if !defined(ctor) {
		game.DebugWarn("GLTFLoader missing, using fallback meshes")
		return
	}
	loader := ctor.New()

	done := make(chan loaded, len(paths))
	for kind, path := range paths {
		kind, path := kind, path
		loader.Call("load", path,
			func(gltf *js.Object) {
				done <- loaded{kind: kind, model: gltf.Get("scene")}
			},
			nil,
			func(err *js.Object) {
				done <- loaded{kind: kind, err: path + ": " + err.String()}
			},
		)
	}

	for range paths {
		r := <-done
		if r.err != "" {
			game.DebugWarn("model load failed:", r.err)
			continue
		}
		s.models[r.kind] = s.prepareModel(r.kind, r.model)
		game.Debug("model loaded:", r.kind)
	}
}

func (s *Scene) prepareModel(kind game.ObjectKind, model *js.Object) *js.Object {
	switch kind {
	case game.ShipObject:
		sc := Theme.ShipModelScale
		model.Get("scale").Call("set", sc, sc, sc)
		model.Get("rotation").Call("set", 0, math.Pi, 0)
	case game.AlienObject:
		sc := Theme.AlienModelScale
		model.Get("scale").Call("set", sc, sc, sc)
	}
	return model
}

// build returns the visible body of a new object.
func (s *Scene) build(kind game.ObjectKind) *js.Object {
	if kind == game.BulletObject {
		return s.three.Get("Mesh").New(s.bulletGeometry, s.bulletMaterial)
	}
	if m, ok := s.models[kind]; ok {
		return m.Call("clone")
	}

	var mesh *js.Object
	switch kind {
	case game.ShipObject:
		mesh = s.three.Get("Mesh").New(
			s.three.Get("ConeGeometry").New(0.3, 0.8, 8),
			s.three.Get("MeshStandardMaterial").New(js.M{"color": Theme.ShipColor}),
		)
		mesh.Get("rotation").Set("x", -math.Pi/2)
	default:
		mesh = s.three.Get("Mesh").New(
			s.three.Get("SphereGeometry").New(0.5, 16, 8),
			s.three.Get("MeshStandardMaterial").New(js.M{"color": Theme.AlienColor}),
		)
		mesh.Get("scale").Set("y", 0.4)
	}
	return mesh
}

func (s *Scene) Add(kind game.ObjectKind) game.ObjectID {
	group := s.three.Get("Group").New()
	group.Call("add", s.build(kind))
	s.scene.Call("add", group)

	s.next++
	s.objects[s.next] = &sceneObject{kind: kind, group: group}
	return s.next
}

func (s *Scene) Remove(id game.ObjectID) {
	o, ok := s.objects[id]
	if !ok {
		return
	}
	s.scene.Call("remove", o.group)
	delete(s.objects, id)
}

func (s *Scene) Move(id game.ObjectID, pos mgl64.Vec3, tilt float64) {
	o, ok := s.objects[id]
	if !ok {
		return
	}
	o.group.Get("position").Call("set", pos.X(), pos.Y(), pos.Z())
	if o.kind == game.ShipObject {
		o.group.Get("rotation").Set("z", tilt)
	}
}

func (s *Scene) SetBeam(beam *game.Beam) {
	if beam == nil {
		s.beam.Set("visible", false)
		return
	}
	color := Theme.BeamColor
	if beam.Locked {
		color = Theme.BeamLockedColor
	}
	s.beamMaterial.Get("color").Call("setHex", color)

	mid := beam.Origin.Sub(mgl64.Vec3{0, 0, beam.Length / 2})
	s.beam.Get("position").Call("set", mid.X(), mid.Y(), mid.Z())
	s.beam.Get("scale").Set("y", beam.Length)
	s.beam.Set("visible", true)
}

func (s *Scene) MoveCamera(pos mgl64.Vec3) {
	s.camera.Get("position").Call("set", pos.X(), pos.Y(), pos.Z())
}

// SetStars uploads star positions. The point cloud is rebuilt only when
// the star count changes.
func (s *Scene) SetStars(stars []mgl64.Vec3) {
	if s.stars == nil || s.starCount != len(stars) {
		s.buildStars(len(stars))
	}
	for i, p := range stars {
		s.starPositions.SetIndex(i*3, p.X())
		s.starPositions.SetIndex(i*3+1, p.Y())
		s.starPositions.SetIndex(i*3+2, p.Z())
	}
	s.starAttributes.Set("needsUpdate", true)
}

func (s *Scene) buildStars(n int) {
	if s.stars != nil {
		s.scene.Call("remove", s.stars)
		s.stars.Get("geometry").Call("dispose")
	}
	s.starCount = n
	s.starPositions = js.Global.Get("Float32Array").New(n * 3)
	s.starAttributes = s.three.Get("BufferAttribute").New(s.starPositions, 3)

	geometry := s.three.Get("BufferGeometry").New()
	geometry.Call("setAttribute", "position", s.starAttributes)
	material := s.three.Get("PointsMaterial").New(js.M{
		"color": Theme.StarColor,
		"size":  Theme.StarSize,
	})
	s.stars = s.three.Get("Points").New(geometry, material)
	s.scene.Call("add", s.stars)
}

func (s *Scene) Render() {
	s.renderer.Call("render", s.scene, s.camera)
}

// Resize adapts the camera aspect and the drawing buffer to a new window
// size.
func (s *Scene) Resize(width, height int) {
	if height == 0 {
		return
	}
	s.camera.Set("aspect", float64(width)/float64(height))
	s.camera.Call("updateProjectionMatrix")
	s.renderer.Call("setSize", width, height)
}

// Objects returns the number of live objects, for the stats panel.
func (s *Scene) Objects() int {
	return len(s.objects)
}
