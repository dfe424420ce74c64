package config

// SettingsConfig is the root config for game.json
type SettingsConfig struct {
	Display DisplayConfig `json:"display"`
	Player  PlayerConfig  `json:"player"`
	Sizes   SizesConfig   `json:"sizes"`
	Rules   RulesConfig   `json:"rules"`
	Menu    MenuConfig    `json:"menu"`
	Save    SaveConfig    `json:"save"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// PlayerConfig configures arrow-key movement
type PlayerConfig struct {
	Speed  float64 `json:"speed"` // absolute speed per axis (pixels/sec)
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Bounce float64 `json:"bounce"` // restitution against world bounds
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SizesConfig holds the box size of every non-player entity
type SizesConfig struct {
	Key   SizeConfig `json:"key"`
	Door  SizeConfig `json:"door"`
	Enemy SizeConfig `json:"enemy"`
}

// RulesConfig configures the scene state machine
type RulesConfig struct {
	KeyScore     int `json:"keyScore"`
	DoorCount    int `json:"doorCount"`
	Attempts     int `json:"attempts"`
	WinDelayMs   int `json:"winDelayMs"`
	LoseDelayMs  int `json:"loseDelayMs"`
	ResetDelayMs int `json:"resetDelayMs"`
}

// MenuConfig places the start button (centre + size)
type MenuConfig struct {
	StartButton RectConfig `json:"startButton"`
}

type RectConfig struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
	W int `json:"w" yaml:"w"`
	H int `json:"h" yaml:"h"`
}

// SaveConfig configures the persistent stats store
type SaveConfig struct {
	AppName string `json:"appName"`
}
