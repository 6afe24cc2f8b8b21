package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Server ServerConfig `yaml:"server"`
}

// WorldConfig содержит параметры мира и генерации ландшафта
type WorldConfig struct {
	Seed           int64   `yaml:"seed"`
	LoadRadius     int     `yaml:"load_radius"`
	NoiseFrequency float64 `yaml:"noise_frequency"`
	NoiseAmplitude float64 `yaml:"noise_amplitude"`
}

// ServerConfig содержит сетевые параметры отладочного REST API
type ServerConfig struct {
	RESTPort int `yaml:"rest_port"`
}

// GetSeed возвращает сид мира с поддержкой fallback значений
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}

	if envVal := os.Getenv("VOXEL_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return seed
		}
	}

	return 1337
}

// GetLoadRadius возвращает радиус загрузки чанков (в чанках)
func (w *WorldConfig) GetLoadRadius() int {
	if w.LoadRadius > 0 {
		return w.LoadRadius
	}
	return 3
}

// GetNoiseFrequency возвращает частоту шума генерации
func (w *WorldConfig) GetNoiseFrequency() float64 {
	if w.NoiseFrequency > 0 {
		return w.NoiseFrequency
	}
	return 0.05
}

// GetNoiseAmplitude возвращает амплитуду шума генерации
func (w *WorldConfig) GetNoiseAmplitude() float64 {
	if w.NoiseAmplitude > 0 {
		return w.NoiseAmplitude
	}
	return 15
}

// GetRESTPort возвращает порт REST API с поддержкой fallback значений
func (s *ServerConfig) GetRESTPort() int {
	return getPortWithEnvFallback(s.RESTPort, "VOXEL_REST_PORT", 8088)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	// Используем дефолтное значение
	return defaultPort
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV VOXEL_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
