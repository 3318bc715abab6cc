// internal/pkg/config/config.go
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config 汇集了单个服务进程启动所需的全部配置。
// 来源优先级：环境变量 > yaml 配置文件 > 内置默认值。
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	MySQL struct {
		DSN string `yaml:"dsn"`
	} `yaml:"mysql"`

	Redis struct {
		Addr string `yaml:"addr"`
	} `yaml:"redis"`

	Jaeger struct {
		Endpoint string `yaml:"endpoint"`
	} `yaml:"jaeger"`

	// Services 是各兄弟服务的基础地址。
	// 远程实体查询统一拼接 <base_url>/api/<entity>/<id>，不经过注册中心。
	Services struct {
		UserBaseURL    string `yaml:"user_base_url"`
		ProductBaseURL string `yaml:"product_base_url"`
		OrderBaseURL   string `yaml:"order_base_url"`
	} `yaml:"services"`
}

// Load 读取配置。path 为空或文件不存在时只使用环境变量和默认值。
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config file %s", path)
			}
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.MySQL.DSN = "root:root@tcp(localhost:3306)/emporium?charset=utf8mb4&parseTime=True&loc=Local"
	cfg.Redis.Addr = "localhost:6379"
	cfg.Jaeger.Endpoint = "http://localhost:14268/api/traces"
	cfg.Services.UserBaseURL = "http://localhost:8700"
	cfg.Services.ProductBaseURL = "http://localhost:8500"
	cfg.Services.OrderBaseURL = "http://localhost:8300"
	return cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("APP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	cfg.MySQL.DSN = getEnv("MYSQL_DSN", cfg.MySQL.DSN)
	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Jaeger.Endpoint = getEnv("JAEGER_ENDPOINT", cfg.Jaeger.Endpoint)
	cfg.Services.UserBaseURL = getEnv("USER_SERVICE_URL", cfg.Services.UserBaseURL)
	cfg.Services.ProductBaseURL = getEnv("PRODUCT_SERVICE_URL", cfg.Services.ProductBaseURL)
	cfg.Services.OrderBaseURL = getEnv("ORDER_SERVICE_URL", cfg.Services.OrderBaseURL)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
