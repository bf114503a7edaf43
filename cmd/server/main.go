package main

import (
	"github.com/emerginginv/traceaid/internal/server"
	"github.com/emerginginv/traceaid/internal/util"
	"github.com/emerginginv/traceaid/pkg/logger"
	"github.com/emerginginv/traceaid/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: util.GetEnvBool("DEBUG", false),
	}))

	server.Init()
}
