package config

import (
	"fmt"
	"strings"
)

// Redis Redis配置信息
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
}

// Addr 环境变量可能直接给 host:port 形式，带端口的原样返回
func (r *Redis) Addr() string {
	if strings.Contains(r.Address, ":") {
		return r.Address
	}
	return fmt.Sprintf("%s:%d", r.Address, r.Port)
}
