package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/annel0/voxel-game/internal/world"
)

// SimMetrics регистрирует Prometheus-метрики симуляции мира.
// Реализует world.EventObserver и подписывается на события мира.
//
// Метрики:
// * voxel_chunks_generated_total — counter
// * voxel_blocks_placed_total / voxel_blocks_broken_total — counters
// * voxel_chunk_generation_duration_seconds — histogram
// * voxel_loaded_chunks / voxel_world_blocks / voxel_exposed_blocks — gauges
// * voxel_ticks_total — counter
type SimMetrics struct {
	chunksGenerated    prometheus.Counter
	blocksPlaced       prometheus.Counter
	blocksBroken       prometheus.Counter
	generationDuration prometheus.Histogram
	loadedChunks       prometheus.Gauge
	worldBlocks        prometheus.Gauge
	exposedBlocks      prometheus.Gauge
	ticks              prometheus.Counter
}

// NewSimMetrics создаёт метрики и регистрирует их в дефолтном регистре
func NewSimMetrics(namespace string) *SimMetrics {
	sm := &SimMetrics{
		chunksGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_generated_total",
			Help:      "Общее число сгенерированных чанков.",
		}),
		blocksPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_placed_total",
			Help:      "Общее число блоков, установленных игроком.",
		}),
		blocksBroken: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_broken_total",
			Help:      "Общее число блоков, разрушенных игроком.",
		}),
		generationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chunk_generation_duration_seconds",
			Help:      "Длительность генерации одного чанка.",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		}),
		loadedChunks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "loaded_chunks",
			Help:      "Текущее количество сгенерированных чанков.",
		}),
		worldBlocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "world_blocks",
			Help:      "Текущее количество непустых блоков в мире.",
		}),
		exposedBlocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "exposed_blocks",
			Help:      "Количество открытых блоков по последнему пересчёту видимости.",
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Общее число обработанных тиков симуляции.",
		}),
	}

	prometheus.MustRegister(
		sm.chunksGenerated, sm.blocksPlaced, sm.blocksBroken,
		sm.generationDuration, sm.loadedChunks, sm.worldBlocks,
		sm.exposedBlocks, sm.ticks,
	)
	return sm
}

// ObserveEvent обновляет счётчики по событию мира
func (sm *SimMetrics) ObserveEvent(event world.Event) {
	switch e := event.(type) {
	case world.ChunkEvent:
		sm.chunksGenerated.Inc()
		sm.generationDuration.Observe(e.Duration.Seconds())
	case world.BlockEvent:
		if e.EventType == world.EventTypeBlockPlaced {
			sm.blocksPlaced.Inc()
		} else if e.EventType == world.EventTypeBlockBroken {
			sm.blocksBroken.Inc()
		}
	case world.TickEvent:
		sm.ticks.Inc()
	}
}

// UpdateWorldGauges обновляет мгновенные показатели состояния мира
func (sm *SimMetrics) UpdateWorldGauges(loadedChunks, worldBlocks, exposedBlocks int) {
	sm.loadedChunks.Set(float64(loadedChunks))
	sm.worldBlocks.Set(float64(worldBlocks))
	sm.exposedBlocks.Set(float64(exposedBlocks))
}
