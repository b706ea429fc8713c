package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

type (
	APP struct {
		Name      string
		Host      string
		Port      string
		Env       string
		JWTSecret string
	}
	Log struct {
		Level string
		Dev   bool
	}
	Store struct {
		Driver string
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
	}
	Mongo struct {
		URI      string
		Database string
	}
	Registry struct {
		InstitutionURL string
		HeadquarterURL string
		Timeout        time.Duration
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}

	Config struct {
		App      APP
		Log      Log
		Store    Store
		DB       DB
		Mongo    Mongo
		Registry Registry
		MQ       MQ
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func Load() Config {
	app := APP{
		Name:      getEnv("SERVICE_NAME", "vg-ms-user"),
		Host:      getEnv("SERVICE_HOST", ""),
		Port:      getEnv("SERVICE_PORT", "8080"),
		Env:       getEnv("SERVICE_ENV", ""),
		JWTSecret: getEnv("SERVICE_JWT_SECRET", ""),
	}
	lg := Log{
		Level: getEnv("LOG_LEVEL", "info"),
		Dev:   getEnv("LOG_DEV", "") == "1",
	}
	store := Store{
		Driver: getEnv("STORE_DRIVER", StoreDriverPostgres),
	}
	db := DB{
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", ""),
	}
	mongo := Mongo{
		URI:      getEnv("MONGO_URI", ""),
		Database: getEnv("MONGO_DATABASE", "vg_ms_user"),
	}
	registry := Registry{
		InstitutionURL: getEnv("INSTITUTION_API_BASE_URL", "https://lab.vallegrande.edu.pe/school/ms-institution/api/v1"),
		HeadquarterURL: getEnv("HEADQUARTER_API_BASE_URL", "https://lab.vallegrande.edu.pe/school/ms-institution/api/v1"),
		Timeout:        getDuration("REGISTRY_TIMEOUT", 10*time.Second),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", ""),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", "vgmsuser.events"),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", "topic"),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", "vgmsuser.audit"),
	}

	return Config{
		App:      app,
		Log:      lg,
		Store:    store,
		DB:       db,
		Mongo:    mongo,
		Registry: registry,
		MQ:       mq,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s",
		url.UserPassword(c.DB.User, c.DB.Password).String(),
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) MongoURI() (string, error) {
	if c.Mongo.URI == "" || c.Mongo.Database == "" {
		return "", fmt.Errorf("incomplete Mongo config: uri and database are required")
	}
	return c.Mongo.URI, nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
