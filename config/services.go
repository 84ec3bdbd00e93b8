package config

// Services 外部存在性校验服务
type Services struct {
	RecipeBaseURL  string `json:"recipe_base_url" yaml:"recipe_base_url"`
	UserBaseURL    string `json:"user_base_url" yaml:"user_base_url"`
	TimeoutSeconds int    `json:"timeout_seconds" yaml:"timeout_seconds"`
}
