// seed crea las cuentas demo en el backend de almacenamiento configurado.
//
// Uso: go run ./cmd/seed
// Respeta STORAGE_DRIVER / STORAGE_SQLITE_PATH / DATABASE_URL igual que la API.
// Las cuentas que ya existen se omiten.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Facturador-api/internal/domain/entity"
	"github.com/jhoicas/Facturador-api/internal/domain/repository"
	"github.com/jhoicas/Facturador-api/internal/infrastructure/postgres"
	infrasqlite "github.com/jhoicas/Facturador-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Facturador-api/pkg/config"
)

type demoAccount struct {
	email    string
	password string
	name     string
	role     string
}

// Las cuentas históricas del sistema, una por operador.
var demoAccounts = []demoAccount{
	{"vss@facturador.local", "vss1234", "VSS", entity.RoleAdmin},
	{"sv@facturador.local", "sv1234", "SV", entity.RoleFacturador},
	{"mani@facturador.local", "mani1234", "Mani", entity.RoleFacturador},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	var userRepo repository.UserRepository
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
			os.Exit(1)
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			fmt.Fprintf(os.Stderr, "esquema PostgreSQL: %v\n", err)
			os.Exit(1)
		}
		userRepo = postgres.NewUserRepository(pool)
	default:
		db, err := infrasqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "abrir SQLite: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()
		userRepo = infrasqlite.NewUserRepository(db)
	}

	for _, acc := range demoAccounts {
		existing, err := userRepo.FindByEmail(acc.email)
		if err != nil {
			fmt.Fprintf(os.Stderr, "buscar %s: %v\n", acc.email, err)
			os.Exit(1)
		}
		if existing != nil {
			fmt.Printf("omitido %s (ya existe)\n", acc.email)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
			os.Exit(1)
		}
		now := time.Now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Email:        acc.email,
			PasswordHash: string(hash),
			Name:         acc.name,
			Role:         acc.role,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(user); err != nil {
			fmt.Fprintf(os.Stderr, "crear %s: %v\n", acc.email, err)
			os.Exit(1)
		}
		fmt.Printf("creado %s (%s)\n", acc.email, acc.role)
	}
}
