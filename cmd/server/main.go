package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/voxel-game/internal/api"
	"github.com/annel0/voxel-game/internal/config"
	"github.com/annel0/voxel-game/internal/logging"
	"github.com/annel0/voxel-game/internal/observability"
	"github.com/annel0/voxel-game/internal/vec"
	"github.com/annel0/voxel-game/internal/world"
	_ "github.com/annel0/voxel-game/internal/world/block/implementations"
)

const tickInterval = 50 * time.Millisecond

func main() {
	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("server"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🌍 Запуск воксельного симулятора мира...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load("")
	if err != nil {
		logging.Error("❌ Ошибка чтения конфигурации: %v", err)
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{} // используем дефолты
	}

	seed := cfg.World.GetSeed()
	radius := cfg.World.GetLoadRadius()
	restAddr := fmt.Sprintf(":%d", cfg.Server.GetRESTPort())

	logging.Info("📡 Конфигурация: seed=%d, радиус загрузки=%d чанков, REST API=%s", seed, radius, restAddr)

	// === ИНИЦИАЛИЗАЦИЯ КОМПОНЕНТОВ ===

	// Создаем мир
	logging.Debug("Создание мира...")
	params := world.DefaultTerrainParams()
	params.Frequency = cfg.World.GetNoiseFrequency()
	params.Amplitude = cfg.World.GetNoiseAmplitude()
	wm := world.NewWorldManagerWithParams(seed, params)
	logging.Info("✅ Мир %s создан (seed=%d)", wm.ID(), seed)

	// Подключаем метрики симуляции
	metrics := observability.NewSimMetrics("voxel")
	wm.SetEventObserver(metrics)

	// Запускаем обработку событий мира
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wm.Run(ctx)

	// Предзагружаем область вокруг точки появления
	spawn := vec.Vec2{X: 0, Z: 0}
	logging.Debug("Предзагрузка области вокруг (%d,%d)...", spawn.X, spawn.Z)
	start := time.Now()
	generated := wm.EnsureLoaded(spawn, radius)
	logging.Info("✅ Сгенерировано %d чанков (%d блоков) за %v", generated, wm.BlockCount(), time.Since(start))

	// Запускаем REST API
	restServer := api.NewRestServer(api.Config{Port: restAddr, World: wm})
	restServer.Start()

	logging.Info("✅ Все сервисы запущены")
	logging.Info("   ❤️  Health check: http://localhost%s/health", restAddr)
	logging.Info("   📊 Метрики: http://localhost%s/metrics", restAddr)
	logging.Info("   🧱 Открытые блоки: http://localhost%s/api/world/exposed", restAddr)

	// Канал для получения сигналов ОС
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// === ЦИКЛ СИМУЛЯЦИИ ===
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

loop:
	for {
		select {
		case sig := <-sigCh:
			logging.Info("📡 Получен сигнал %v, завершение работы...", sig)
			break loop

		case <-ticker.C:
			wm.ProcessTick(tickInterval.Seconds())

			// Наблюдатель неподвижен, вызов идемпотентен и ничего не делает,
			// пока точка обзора не сменит чанк
			wm.EnsureLoaded(spawn, radius)

			// Мгновенные показатели обновляем раз в секунду
			if wm.CurrentTick()%20 == 0 {
				exposed := len(wm.ExposedBlocks())
				metrics.UpdateWorldGauges(wm.LoadedChunkCount(), wm.BlockCount(), exposed)
			}
		}
	}

	// === GRACEFUL SHUTDOWN ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Stop(shutdownCtx); err != nil {
		logging.Error("Ошибка остановки REST сервера: %v", err)
	}
	wm.Stop()

	logging.Info("👋 Симулятор остановлен")
}
