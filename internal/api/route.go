package api

import (
	"Beacon/internal/api/middleware"
	"Beacon/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.GET("/batch/simple", group.UserHandler.GetUserSimpleInfoByIds)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.POST("/cancel", group.UserHandler.CancelUser)
			}
		}

		channelGroup := apiGroup.Group("/channels")
		{
			channelGroup.GET("", group.ChannelHandler.ListChannels)
			channelGroup.GET("/:channel_id", group.ChannelHandler.GetChannel)
			channelGroup.GET("/:channel_id/contents", group.ContentHandler.ListContentsByChannel)

			authGroup := channelGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.ChannelHandler.CreateChannel)
				authGroup.PUT("/:channel_id", group.ChannelHandler.UpdateChannel)
				authGroup.DELETE("/:channel_id", group.ChannelHandler.DeleteChannel)
			}
		}

		contentGroup := apiGroup.Group("/contents")
		{
			contentGroup.GET("/:content_id", group.ContentHandler.GetContent)

			authGroup := contentGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.ContentHandler.PublishContent)
				authGroup.DELETE("/:content_id", group.ContentHandler.DeleteContent)
			}
		}

		followGroup := apiGroup.Group("/follows")
		{
			followGroup.GET("/followers/:channel_id", group.FollowHandler.GetFollowers)
			followGroup.GET("/followers/:channel_id/count", group.FollowHandler.GetFollowerCount)

			authGroup := followGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:channel_id", group.FollowHandler.Follow)
				authGroup.DELETE("/:channel_id", group.FollowHandler.Unfollow)
				authGroup.GET("/following", group.FollowHandler.GetFollowing)
				authGroup.GET("/isfollow/:channel_id", group.FollowHandler.GetIsFollowing)
				authGroup.GET("/feed", group.FollowHandler.GetFeed)
			}
		}

		alertGroup := apiGroup.Group("/alerts")
		{
			alertGroup.GET("", group.AlertHandler.GetAllVotes)
			alertGroup.GET("/content/:content_id", group.AlertHandler.GetVotesByContent)
			alertGroup.GET("/score/:content_id", group.AlertHandler.GetScore)

			authGroup := alertGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:content_id", group.AlertHandler.CastVote)
				authGroup.DELETE("/:content_id", group.AlertHandler.RetractVote)
			}
		}
	}

	return r
}
