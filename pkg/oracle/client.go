package oracle

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"Savora/config"
	"Savora/pkg/log"

	"go.uber.org/zap"
)

// Result 存在性三态：远端 200 为 Exists，404 为 NotFound，
// 其余状态码、连接失败和超时一律 Unknown，宽严由调用方决定
type Result int

const (
	Exists Result = iota
	NotFound
	Unknown
)

func (r Result) String() string {
	switch r {
	case Exists:
		return "exists"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

type Checker interface {
	CheckRecipe(ctx context.Context, recipeID uint64) Result
	CheckUser(ctx context.Context, userID uint64) Result
}

var _ Checker = (*Client)(nil)

// Client 进程级共享的存在性校验客户端，复用同一个连接池
type Client struct {
	http      *http.Client
	recipeURL string
	userURL   string
	timeout   time.Duration
}

func New(conf *config.Config) *Client {
	timeout := time.Duration(conf.Services.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		http:      &http.Client{},
		recipeURL: conf.Services.RecipeBaseURL,
		userURL:   conf.Services.UserBaseURL,
		timeout:   timeout,
	}
}

func (c *Client) CheckRecipe(ctx context.Context, recipeID uint64) Result {
	return c.check(ctx, fmt.Sprintf("%s/%d", c.recipeURL, recipeID))
}

func (c *Client) CheckUser(ctx context.Context, userID uint64) Result {
	return c.check(ctx, fmt.Sprintf("%s/%d", c.userURL, userID))
}

func (c *Client) check(ctx context.Context, url string) Result {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Unknown
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.L.Warn("existence check failed", zap.String("url", url), zap.Error(err))
		return Unknown
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return Exists
	case http.StatusNotFound:
		return NotFound
	default:
		log.L.Warn("existence check unexpected status",
			zap.String("url", url), zap.Int("status", resp.StatusCode))
		return Unknown
	}
}
