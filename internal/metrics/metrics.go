package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ciaan_posts_created_total",
		Help: "Posts created since process start.",
	})
	LikesToggled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ciaan_likes_toggled_total",
		Help: "Like toggles applied (likes and unlikes both count).",
	})
	CommentsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ciaan_comments_added_total",
		Help: "Comments appended to posts.",
	})
)
