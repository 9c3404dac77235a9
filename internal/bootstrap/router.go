package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/kizzylord/portfolio-backend/internal/api/http"
	"github.com/kizzylord/portfolio-backend/internal/api/http/middleware"
	"github.com/kizzylord/portfolio-backend/internal/blogposts"
	"github.com/kizzylord/portfolio-backend/internal/contactinfo"
	"github.com/kizzylord/portfolio-backend/internal/projects"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	projects.Register(r.Group("/projects"), projects.NewRepo(dep.DB))
	blogposts.Register(r.Group("/blog_posts"), blogposts.NewRepo(dep.DB))
	contactinfo.Register(r.Group("/contact_info"), contactinfo.NewRepo(dep.DB))

	return r
}
