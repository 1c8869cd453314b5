package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"regexp"
	"strconv"
	"time"

	"carlink/src/boot"
	"carlink/src/lib"
	"carlink/src/middlewares"
	"carlink/src/types"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
	engineiotypes "github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

const (
	apiPrefix string = "/api"
)

// respondError translates the controller error taxonomy to an HTTP
// response. Unexpected errors hide their detail outside local/dev runs.
func respondError(ctx *gin.Context, err error) {
	status := types.StatusForError(err)
	if status == http.StatusInternalServerError {
		body := gin.H{"message": "Internal server error"}
		if os.Getenv("API_ENV") != "production" {
			body["error"] = err.Error()
		}
		ctx.JSON(status, body)
		return
	}
	body := gin.H{"message": err.Error()}
	var validationErr *types.ValidationError
	if errors.As(err, &validationErr) && len(validationErr.MissingFields) > 0 {
		body["missingFields"] = validationErr.MissingFields
	}
	var captchaErr *types.CaptchaError
	if errors.As(err, &captchaErr) && len(captchaErr.Details) > 0 {
		body["errors"] = captchaErr.Details
	}
	ctx.JSON(status, body)
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middlewares.SecureHeaders)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func apiGroup(g *gin.Engine) *gin.RouterGroup {
	api := g.Group(apiPrefix)
	return api
}

func setupSocketServer(r *gin.Engine) *socket.Server {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	c.SetPingInterval(time.Second)
	c.SetPingTimeout(200 * time.Millisecond)
	c.SetMaxHttpBufferSize(1_000_000)
	c.SetConnectTimeout(time.Second)
	c.SetCors(&engineiotypes.Cors{
		Origin:      "*",
		Credentials: true,
	})

	wss := socket.NewServer(nil, nil)
	wss.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		fmt.Println("[newclient]: ", string(client.Id()), client.Nsp().Name())
		client.On("subscribe", func(args ...any) {
			if len(args) == 0 {
				return
			}
			raw := fmt.Sprintf("%v", args[0])
			atoi, err := strconv.Atoi(raw)
			if err != nil {
				log.Printf("invalid subscribe payload from client %s: %v\n", string(client.Id()), args[0])
				return
			}
			client.Join(lib.UserRoom(uint(atoi)))
			client.Emit("subscribed", raw)
		})
		client.On("unsubscribe", func(args ...any) {
			if len(args) == 0 {
				return
			}
			raw := fmt.Sprintf("%v", args[0])
			atoi, err := strconv.Atoi(raw)
			if err != nil {
				return
			}
			client.Leave(lib.UserRoom(uint(atoi)))
		})
	})

	r.GET("/socket.io/*any", gin.WrapH(wss.ServeHandler(c)))
	r.POST("/socket.io/*any", gin.WrapH(wss.ServeHandler(c)))
	return wss
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			panic(err)
		}
	}

	boot.InitDb()
	lib.GetRedisClient()

	router := setupRouter()
	wss := lib.NewSocketServer(setupSocketServer(router))
	if wss != nil {
		log.Println("WS server listening for connections...")
	}

	appHost := os.Getenv("APP_HOST")
	if apiEnv == "local" {
		router.Use(cors.Default())
	} else {
		cc := cors.DefaultConfig()
		cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
		cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
		cc.AllowOriginFunc = func(origin string) bool {
			match, _ := regexp.MatchString(appHost, origin)
			return match
		}
		cc.AllowCredentials = true
		cc.AllowAllOrigins = false
		router.Use(cors.New(cc))
	}

	api := apiGroup(router)
	authHandlers(api)
	bookingHandlers(api)
	profileHandlers(api)
	carHandlers(api)
	feedbackHandlers(api)
	notificationHandlers(api)

	admin := api.Group("/admin")
	admin.Use(middlewares.AuthMiddleware)
	adminNotificationHandlers(admin)

	notifyClientRoute(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	if err := router.Run(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("error starting server: %s", err.Error())
	}
}
