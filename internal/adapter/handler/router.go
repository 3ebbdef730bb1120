package handler

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Router holds all handlers
type Router struct {
	healthHandler  *Health
	meetingHandler *Meeting
	taskHandler    *Task
}

// NewRouter creates a new router with all handlers
func NewRouter(healthHandler *Health, meetingHandler *Meeting, taskHandler *Task) *Router {
	return &Router{
		healthHandler:  healthHandler,
		meetingHandler: meetingHandler,
		taskHandler:    taskHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.healthHandler.Root)
	e.GET("/health", rt.healthHandler.Check)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	rt.setupMeetingRoutes(api)
	rt.setupTaskRoutes(api)
}

// setupMeetingRoutes configures meeting routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")
	meetings.POST("", rt.meetingHandler.UploadMeeting)
	meetings.GET("", rt.meetingHandler.ListMeetings)
	meetings.GET("/:id", rt.meetingHandler.GetMeeting)
	meetings.DELETE("/:id", rt.meetingHandler.DeleteMeeting)
	meetings.GET("/:id/actions", rt.meetingHandler.ListMeetingActions)
}

// setupTaskRoutes configures task routes
func (rt *Router) setupTaskRoutes(g *echo.Group) {
	tasks := g.Group("/tasks")
	tasks.GET("", rt.taskHandler.ListTasks)
	tasks.GET("/:id", rt.taskHandler.GetTask)
	tasks.PATCH("/:id", rt.taskHandler.UpdateTask)
	tasks.DELETE("/:id", rt.taskHandler.DeleteTask)
}
