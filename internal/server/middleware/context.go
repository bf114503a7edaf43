package middleware

import (
	"github.com/MicahParks/keyfunc/v3"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"

	"github.com/emerginginv/traceaid/internal/realtime"
)

// AppUser is the authenticated caller, resolved by AuthMiddleware.
type AppUser struct {
	UserID         int64
	OrganizationID int64
	Role           string
	Permissions    []string
}

// App carries the process-wide dependencies handlers need. Everything is
// injected here; there are no ambient singletons besides the logger.
type App struct {
	DBConn         *pgxpool.Pool
	Queue          *amqp091.Channel
	Key            *keyfunc.Keyfunc
	S3             *s3.Client
	Realtime       *realtime.Hub
	MasterAPIKey   string
	MasterUserID   int64
	MasterOrgID    int64
	MasterUserRole string
}

type AppContext struct {
	echo.Context
	App  *App
	User *AppUser
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{c, app, nil})
		}
	}
}
