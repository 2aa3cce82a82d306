package router

import (
	"github.com/gin-gonic/gin"

	"paperhub/internal/handlers"
	"paperhub/internal/metrics"
	"paperhub/internal/widget"
)

// Deps is what the handlers are built from.
type Deps struct {
	Backend handlers.Backend
	Binder  *widget.Binder
	Health  map[string]handlers.Pinger
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	// Handlers
	documentHandler := handlers.NewDocumentHandler(deps.Backend, deps.Binder)
	threadHandler := handlers.NewThreadHandler(deps.Backend, deps.Binder)
	voteHandler := handlers.NewVoteHandler(deps.Backend, deps.Binder)
	commentHandler := handlers.NewCommentHandler(deps.Backend, deps.Binder)
	healthHandler := handlers.NewHealthHandler(deps.Health)
	sessionHandler := handlers.NewSessionHandler()

	// 页面 (Pages)
	r.GET("/paper/:paperId", documentHandler.Show)                    // 论文头部与讨论列表
	r.GET("/paper/:paperId/discussion/:threadId", threadHandler.Show) // 讨论详情与评论

	// 投票 (Votes), role: document | thread | comment | reply
	r.POST("/vote/:role/up", voteHandler.Upvote)     // 赞同
	r.POST("/vote/:role/down", voteHandler.Downvote) // 反对

	// 评论 (Comments)
	comment := r.Group("/paper/:paperId/discussion/:threadId/comment/:commentId")
	{
		comment.POST("/reply", commentHandler.Reply) // 回复评论
		comment.POST("/edit", commentHandler.Edit)   // 编辑评论或回复
	}

	// 会话 (Session)
	r.POST("/session/token", sessionHandler.SetToken) // 保存或清除 API 令牌

	// 运维 (Ops)
	r.GET("/health", healthHandler.Check)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}
