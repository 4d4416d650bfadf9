package config

import (
	"strconv"
	"time"
)

// HTTPConfig представляет конфигурацию HTTP сервера.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"JOBDESK_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"JOBDESK_HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"JOBDESK_HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"JOBDESK_HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

// Address возвращает адрес прослушивания HTTP сервера.
func (c *HTTPConfig) Address() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// LoggingConfig представляет конфигурацию логирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"JOBDESK_LOG_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"JOBDESK_LOG_MODE" env-default:"development"`
}

// ShutdownConfig представляет конфигурацию корректного завершения.
type ShutdownConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"JOBDESK_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// SessionConfig представляет конфигурацию токенов доступа HTTP фасада.
type SessionConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JOBDESK_JWT_SECRET" env-default:"jobdesk-dev-secret"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"JOBDESK_TOKEN_TTL" env-default:"24h"`
}

// SeedConfig представляет пути к стартовым данным. Файл администраторов
// читается при входе; каталоги вакансий и резюме подмешиваются в выдачу
// и никогда не пишутся обратно.
type SeedConfig struct {
	AdminPath     string `yaml:"admin_path" env:"JOBDESK_SEED_ADMIN" env-default:"seed/admin.json"`
	VacanciesPath string `yaml:"vacancies_path" env:"JOBDESK_SEED_VACANCIES" env-default:"seed/vacancies.json"`
	ResumesPath   string `yaml:"resumes_path" env:"JOBDESK_SEED_RESUMES" env-default:"seed/resumes.json"`
}
