package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/dasar/internal/config"
	"github.com/palemoky/dasar/internal/logger"
	"github.com/palemoky/dasar/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	players := flag.String("players", "", "玩家名，用逗号分隔，如 Ani,Budi,Citra")
	seed := flag.Uint64("seed", 0, "洗牌种子，0 表示随机")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}
	if names := config.ParsePlayers(*players); len(names) > 0 {
		cfg.Game.Players = names
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	if err := logger.Init(cfg.Log.Dir); err != nil {
		log.Printf("初始化日志失败: %v", err)
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	p := tea.NewProgram(ui.NewGame(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("启动游戏时出错: %v", err)
	}
}
