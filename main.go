package main

import (
	"log"

	"github.com/Crafty4/web1/configs"
	"github.com/Crafty4/web1/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.Connect(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg)

	log.Println("listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
