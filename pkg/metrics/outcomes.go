package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ActionLike     = "like"
	ActionUnlike   = "unlike"
	ActionFollow   = "follow"
	ActionUnfollow = "unfollow"
	ActionSave     = "save"
	ActionUnsave   = "unsave"
)

const sourceAPI = "api"

var (
	LikesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "likes_total",
			Help: "Total number of likes",
		},
		[]string{"action", "source", "status"},
	)
	CommentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comments_total",
			Help: "Total number of comments",
		},
		[]string{"source", "status"},
	)
	FollowsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "follows_total",
			Help: "Total number of follows",
		},
		[]string{"action", "source", "status"},
	)
	SavedItemsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "saved_items_total",
			Help: "Total number of saved items",
		},
		[]string{"action", "source", "status"},
	)
)

func init() {
	prometheus.MustRegister(LikesTotal)
	prometheus.MustRegister(CommentsTotal)
	prometheus.MustRegister(FollowsTotal)
	prometheus.MustRegister(SavedItemsTotal)
}

// Recorder 业务结果打点。写操作在 service 层用 defer 调一次，
// 成功失败都必须且只命中一次；这里只增计数，永远不影响主流程
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (r *Recorder) RecordComment(err error) {
	CommentsTotal.WithLabelValues(sourceAPI, status(err)).Inc()
}

func (r *Recorder) RecordLike(action string, err error) {
	LikesTotal.WithLabelValues(action, sourceAPI, status(err)).Inc()
}

func (r *Recorder) RecordFollow(action string, err error) {
	FollowsTotal.WithLabelValues(action, sourceAPI, status(err)).Inc()
}

func (r *Recorder) RecordSaved(action string, err error) {
	SavedItemsTotal.WithLabelValues(action, sourceAPI, status(err)).Inc()
}
