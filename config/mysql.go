package config

// MySQL 数据库配置信息
type MySQL struct {
	DSN string `json:"dsn" yaml:"dsn"`
}

func (m *MySQL) Dsn() string {
	return m.DSN
}
