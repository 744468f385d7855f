// Command token issues an access token for an existing user, for local
// development and manual API testing. Account registration and login live
// outside this service.
//
// Usage: token <user-uuid>
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/Berlkot/django-proj-kek-2025/internal/auth"
	"github.com/Berlkot/django-proj-kek-2025/internal/config"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: token <user-uuid>")
		os.Exit(2)
	}
	userID, err := uuid.Parse(os.Args[1])
	if err != nil {
		log.Fatalf("parse user id: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := jwt.GenerateAccessToken(userID)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(token)
}
