package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        // Адрес и порт запуска сервиса
	DatabaseURI string        // URI подключения к БД
	LogLevel    string        // Уровень логирования
	JWTSecret   string        // Секретный ключ для JWT
	JWTTokenTTL time.Duration // Время жизни токена сессии дашборда

	// Доступ к дашборду
	AdminPasscode     string // Пасскод (хешируется при старте, если хеш не задан)
	AdminPasscodeHash string // bcrypt-хеш пасскода

	// Email-уведомления (EmailJS-совместимый API)
	EmailBaseURL    string
	EmailServiceID  string
	EmailTemplateID string
	EmailUserID     string

	// Пул отправки уведомлений
	NotifyWorkers   int // Количество воркеров
	NotifyQueueSize int // Размер очереди уведомлений
}

// EmailEnabled сообщает, настроена ли отправка уведомлений
func (c *Config) EmailEnabled() bool {
	return c.EmailServiceID != "" && c.EmailTemplateID != "" && c.EmailUserID != ""
}

// Load загружает конфигурацию из переменных окружения и флагов.
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:        "info",
		JWTTokenTTL:     12 * time.Hour,
		EmailBaseURL:    "https://api.emailjs.com",
		NotifyWorkers:   2,
		NotifyQueueSize: 100,
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	// JWT секрет (только из env, не из флагов для безопасности)
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if envTTL, ok := os.LookupEnv("JWT_TOKEN_TTL"); ok {
		if ttl, err := time.ParseDuration(envTTL); err == nil && ttl > 0 {
			cfg.JWTTokenTTL = ttl
		}
	}

	// Уровень логирования
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	// Пасскод дашборда: предпочтительно готовый bcrypt-хеш
	cfg.AdminPasscodeHash = os.Getenv("ADMIN_PASSCODE_HASH")
	cfg.AdminPasscode = os.Getenv("ADMIN_PASSCODE")

	// Настройки email-уведомлений
	if envEmailURL, ok := os.LookupEnv("EMAIL_BASE_URL"); ok {
		cfg.EmailBaseURL = envEmailURL
	}
	cfg.EmailServiceID = os.Getenv("EMAIL_SERVICE_ID")
	cfg.EmailTemplateID = os.Getenv("EMAIL_TEMPLATE_ID")
	cfg.EmailUserID = os.Getenv("EMAIL_USER_ID")

	// Пул уведомлений из env
	if envWorkers, ok := os.LookupEnv("NOTIFY_WORKERS"); ok {
		if n, err := strconv.Atoi(envWorkers); err == nil && n > 0 {
			cfg.NotifyWorkers = n
		}
	}

	if envQueueSize, ok := os.LookupEnv("NOTIFY_QUEUE_SIZE"); ok {
		if n, err := strconv.Atoi(envQueueSize); err == nil && n > 0 {
			cfg.NotifyQueueSize = n
		}
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if cfg.AdminPasscodeHash == "" && cfg.AdminPasscode == "" {
		return nil, fmt.Errorf("admin passcode is required (use ADMIN_PASSCODE_HASH or ADMIN_PASSCODE env)")
	}

	return cfg, nil
}
