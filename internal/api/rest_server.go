package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/annel0/voxel-game/internal/logging"
	"github.com/annel0/voxel-game/internal/middleware"
	"github.com/annel0/voxel-game/internal/vec"
	"github.com/annel0/voxel-game/internal/world"
	"github.com/annel0/voxel-game/internal/world/block"
)

// RestServer представляет отладочный REST API сервер мира.
// Сервер только читает и инспектирует состояние; единственная
// мутация — выбор текущего типа блока для установки.
type RestServer struct {
	router     *gin.Engine
	world      *world.WorldManager
	httpServer *http.Server
	port       string
}

// Config содержит конфигурацию REST сервера
type Config struct {
	Port  string              // порт для запуска сервера, например ":8088"
	World *world.WorldManager // мир для инспекции
}

// NewRestServer создает новый REST API сервер
func NewRestServer(config Config) *RestServer {
	if config.Port == "" {
		config.Port = ":8088"
	}

	// Устанавливаем режим релиза для gin
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	loggerMw := middleware.NewRequestLogger()
	router.Use(loggerMw.Handler())

	promMw := middleware.NewPrometheusMiddleware("voxel_api")
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router)

	server := &RestServer{
		router: router,
		world:  config.World,
		port:   config.Port,
	}

	server.setupRoutes()

	return server
}

// setupRoutes настраивает маршруты REST API
func (rs *RestServer) setupRoutes() {
	rs.router.GET("/health", rs.handleHealth)

	api := rs.router.Group("/api")
	{
		api.GET("/stats", rs.handleStats)

		worldGroup := api.Group("/world")
		{
			worldGroup.GET("/exposed", rs.handleExposed)
			worldGroup.GET("/block", rs.handleBlock)
			worldGroup.GET("/selected", rs.handleGetSelected)
			worldGroup.PUT("/selected", rs.handlePutSelected)
		}
	}
}

// Start запускает HTTP сервер в фоне
func (rs *RestServer) Start() {
	rs.httpServer = &http.Server{
		Addr:    rs.port,
		Handler: rs.router,
	}

	go func() {
		if err := rs.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Error("Ошибка REST сервера: %v", err)
		}
	}()

	logging.Info("REST API запущен на %s", rs.port)
}

// Stop останавливает HTTP сервер
func (rs *RestServer) Stop(ctx context.Context) error {
	if rs.httpServer == nil {
		return nil
	}
	return rs.httpServer.Shutdown(ctx)
}

// handleHealth возвращает состояние сервиса
func (rs *RestServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"world_id": rs.world.ID().String(),
	})
}

// handleStats возвращает сводку состояния мира
func (rs *RestServer) handleStats(c *gin.Context) {
	selected := rs.world.SelectedKind()
	selectedName := ""
	if descriptor, exists := block.Get(selected); exists {
		selectedName = descriptor.Name()
	}

	c.JSON(http.StatusOK, gin.H{
		"world_id":      rs.world.ID().String(),
		"seed":          rs.world.Seed(),
		"tick":          rs.world.CurrentTick(),
		"loaded_chunks": rs.world.LoadedChunkCount(),
		"blocks":        rs.world.BlockCount(),
		"selected_kind": gin.H{"id": selected, "name": selectedName},
	})
}

// exposedEntry — один открытый блок в ответе API
type exposedEntry struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
	Kind  uint16 `json:"kind"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// maxExposedLimit — верхняя граница limit: запрос не может заставить
// сервер аллоцировать срез произвольного размера
const maxExposedLimit = 100_000

// handleExposed возвращает открытые блоки мира (срез, ограниченный limit)
func (rs *RestServer) handleExposed(c *gin.Context) {
	limit := 1000
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit должен быть положительным числом"})
			return
		}
		limit = min(parsed, maxExposedLimit)
	}

	entries := make([]exposedEntry, 0, min(limit, 1024))
	total := 0
	rs.world.ForEachExposed(func(pos vec.Vec3, id block.BlockID) bool {
		total++
		if len(entries) >= limit {
			return true // продолжаем считать total
		}

		entry := exposedEntry{X: pos.X, Y: pos.Y, Z: pos.Z, Kind: uint16(id)}
		if descriptor, exists := block.Get(id); exists {
			entry.Name = descriptor.Name()
			color := descriptor.Color()
			entry.Color = fmt.Sprintf("#%02x%02x%02x", color.R, color.G, color.B)
		}
		entries = append(entries, entry)
		return true
	})

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"blocks": entries,
	})
}

// handleBlock возвращает тип блока в указанной позиции
func (rs *RestServer) handleBlock(c *gin.Context) {
	x, errX := strconv.Atoi(c.Query("x"))
	y, errY := strconv.Atoi(c.Query("y"))
	z, errZ := strconv.Atoi(c.Query("z"))
	if errX != nil || errY != nil || errZ != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "параметры x, y, z обязательны и должны быть целыми"})
		return
	}

	pos := vec.Vec3{X: x, Y: y, Z: z}
	id := rs.world.GetBlock(pos)

	name := ""
	if descriptor, exists := block.Get(id); exists {
		name = descriptor.Name()
	}

	c.JSON(http.StatusOK, gin.H{
		"x":    x,
		"y":    y,
		"z":    z,
		"kind": id,
		"name": name,
	})
}

// handleGetSelected возвращает текущий выбранный тип блока
func (rs *RestServer) handleGetSelected(c *gin.Context) {
	selected := rs.world.SelectedKind()
	name := ""
	if descriptor, exists := block.Get(selected); exists {
		name = descriptor.Name()
	}
	c.JSON(http.StatusOK, gin.H{"id": selected, "name": name})
}

// selectedRequest — тело запроса смены выбранного типа блока
type selectedRequest struct {
	Kind uint16 `json:"kind" binding:"required"`
}

// handlePutSelected меняет текущий выбранный тип блока
func (rs *RestServer) handlePutSelected(c *gin.Context) {
	var req selectedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "тело запроса должно содержать поле kind"})
		return
	}

	if err := rs.world.SelectKind(block.BlockID(req.Kind)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": req.Kind})
}
