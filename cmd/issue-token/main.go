// Command issue-token prints a signed bearer token for local testing of the
// workflow API.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/3eLLenKa/journal-review/internal/auth"
	"github.com/3eLLenKa/journal-review/internal/config"
	"github.com/3eLLenKa/journal-review/internal/domain"
)

func main() {
	id := flag.String("id", "", "user id")
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "email")
	role := flag.String("role", string(domain.RoleEditor), "role: author, reviewer, editor, chief_editor or admin")
	flag.Parse()

	cfg := config.MustLoad()

	issuer, err := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatalf("failed to create token issuer: %v", err)
	}

	r, err := domain.ParseRole(*role)
	if err != nil {
		log.Fatalf("invalid role: %v", err)
	}

	token, err := issuer.Sign(domain.Actor{ID: *id, Name: *name, Email: *email, Role: r})
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}
	fmt.Println(token)
}
