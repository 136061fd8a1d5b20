package main

import (
	"github.com/policyvault/policy-service/config"
	"github.com/policyvault/policy-service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
