package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultHandSize    = 20
	defaultTurnTimeout = 30
	defaultMaxPlayers  = 5
	defaultSoundDir    = "assets/sounds"
)

var defaultPlayers = []string{"Player1", "Player2", "Player3"}

// Config 客户端配置
type Config struct {
	Game GameConfig `yaml:"game"`
	UI   UIConfig   `yaml:"ui"`
	Log  LogConfig  `yaml:"log"`
}

// GameConfig 牌局配置
type GameConfig struct {
	Players     []string `yaml:"players"`      // 按座位顺序的玩家名
	HandSize    int      `yaml:"hand_size"`    // 每人起手牌数
	TurnTimeout int      `yaml:"turn_timeout"` // 出牌超时（秒），负数表示不限时
	Seed        uint64   `yaml:"seed"`         // 洗牌种子，0 表示随机
	MaxPlayers  int      `yaml:"max_players"`  // 最多玩家数
}

// UIConfig 终端界面配置
type UIConfig struct {
	Sound    bool   `yaml:"sound"`
	SoundDir string `yaml:"sound_dir"`
}

// LogConfig 日志配置
type LogConfig struct {
	Dir string `yaml:"dir"` // 为空时使用 ~/.dasar
}

// TurnTimeoutDuration 返回出牌超时时长，不限时返回 0
func (c *GameConfig) TurnTimeoutDuration() time.Duration {
	if c.TurnTimeout <= 0 {
		return 0
	}
	return time.Duration(c.TurnTimeout) * time.Second
}

// Load 加载配置文件，缺省项使用默认值，环境变量优先
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg, nil
}

// Default 返回默认配置（同样接受环境变量覆盖）
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg
}

func (c *Config) applyDefaults() {
	if len(c.Game.Players) == 0 {
		c.Game.Players = append([]string(nil), defaultPlayers...)
	}
	if c.Game.HandSize == 0 {
		c.Game.HandSize = defaultHandSize
	}
	if c.Game.TurnTimeout == 0 {
		c.Game.TurnTimeout = defaultTurnTimeout
	}
	if c.Game.MaxPlayers == 0 {
		c.Game.MaxPlayers = defaultMaxPlayers
	}
	if c.UI.SoundDir == "" {
		c.UI.SoundDir = defaultSoundDir
	}
}

// ParsePlayers 解析逗号分隔的玩家名，去掉首尾空白并跳过空名字
func ParsePlayers(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// applyEnv 用环境变量覆盖配置，格式错误的值会被忽略
func (c *Config) applyEnv() {
	if names := ParsePlayers(os.Getenv("GAME_PLAYERS")); len(names) > 0 {
		c.Game.Players = names
	}
	if v, err := strconv.Atoi(os.Getenv("GAME_TURN_TIMEOUT")); err == nil {
		c.Game.TurnTimeout = v
	}
	if v, err := strconv.ParseUint(os.Getenv("GAME_SEED"), 10, 64); err == nil {
		c.Game.Seed = v
	}
	if v, err := strconv.ParseBool(os.Getenv("UI_SOUND")); err == nil {
		c.UI.Sound = v
	}
	if v := os.Getenv("LOG_DIR"); v != "" {
		c.Log.Dir = v
	}
}
