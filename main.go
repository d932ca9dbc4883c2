package main

import (
	"github.com/revtext/backend/config"
	"github.com/revtext/backend/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
