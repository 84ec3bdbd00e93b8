package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Server   *Server   `json:"server" yaml:"server"`
	MySQL    *MySQL    `json:"mysql" yaml:"mysql"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
	Jwt      *Jwt      `json:"jwt" yaml:"jwt"`
	Services *Services `json:"services" yaml:"services"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}

	conf.applyEnv()
	conf.mustValidate()

	return &conf
}

// applyEnv 环境变量覆盖敏感配置
func (c *Config) applyEnv() {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Jwt.Secret = v
	}
	if v := os.Getenv("MYSQL_DSN"); v != "" {
		c.MySQL.DSN = v
	}
	if v := os.Getenv("RECIPE_SERVICE_URL"); v != "" {
		c.Services.RecipeBaseURL = v
	}
	if v := os.Getenv("USER_SERVICE_URL"); v != "" {
		c.Services.UserBaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Redis.Address = v
	}
}

// mustValidate 必填项缺失直接终止启动
func (c *Config) mustValidate() {
	switch {
	case c.Jwt == nil || c.Jwt.Secret == "":
		panic("config: jwt secret must be set (JWT_SECRET)")
	case c.MySQL == nil || c.MySQL.DSN == "":
		panic("config: mysql dsn must be set (MYSQL_DSN)")
	case c.Services == nil || c.Services.RecipeBaseURL == "":
		panic("config: recipe service url must be set (RECIPE_SERVICE_URL)")
	case c.Services.UserBaseURL == "":
		panic("config: user service url must be set (USER_SERVICE_URL)")
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
