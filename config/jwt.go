package config

// Jwt 令牌签名配置
type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
}
