//go:build js
// +build js

package web

// Theme holds the colours and sizes of the scene and the stats panel.
var Theme = struct {
	// Scene colors, as three.js hex numbers
	BackgroundColor int
	ShipColor       int
	AlienColor      int
	BulletColor     int
	BeamColor       int
	BeamLockedColor int
	StarColor       int

	// Lights
	AmbientColor     int
	AmbientIntensity float64
	SunIntensity     float64

	// Model scale for the loaded GLTF meshes
	ShipModelScale  float64
	AlienModelScale float64

	StarSize   float64
	BeamRadius float64
	BulletSize float64

	// Stats panel
	PanelBackground string
	PanelBorder     string
	PanelTitle      string
	PanelLabel      string
	PanelSeparator  string
	PanelFont       string
	PanelTitleFont  string
}{
	BackgroundColor: 0x000000,
	ShipColor:       0x99ff00,
	AlienColor:      0x6622ff,
	BulletColor:     0xff0000,
	BeamColor:       0xffffff,
	BeamLockedColor: 0xff0000,
	StarColor:       0xffffff,

	AmbientColor:     0xffffff,
	AmbientIntensity: 1,
	SunIntensity:     15,

	ShipModelScale:  0.003,
	AlienModelScale: 0.2,

	StarSize:   0.01,
	BeamRadius: 0.01,
	BulletSize: 0.1,

	PanelBackground: "rgba(0, 0, 0, 0.75)",
	PanelBorder:     "#00aaff",
	PanelTitle:      "#00aaff",
	PanelLabel:      "#cccccc",
	PanelSeparator:  "#666666",
	PanelFont:       "12px monospace",
	PanelTitleFont:  "bold 14px monospace",
}
