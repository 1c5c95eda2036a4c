// seed carga datos de demostración: una empresa, un superusuario, un
// empleado, tipos de producto, productos y un historial corto de
// movimientos coherente con el stock proyectado.
//
// Uso: go run ./cmd/seed
// Idempotencia simple: si el usuario admin ya existe no hace nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignaciodev/inventario-api/internal/application/inventory"
	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/entity"
	"github.com/ignaciodev/inventario-api/internal/infrastructure/postgres"
	"github.com/ignaciodev/inventario-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	if existing, err := userRepo.FindByUsername(ctx, "admin"); err != nil {
		fmt.Fprintf(os.Stderr, "consultar usuarios: %v\n", err)
		os.Exit(1)
	} else if existing != nil {
		fmt.Println("los datos de demostración ya existen, nada que hacer")
		return
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	typeRepo := postgres.NewProductTypeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	applyMovement := inventory.NewApplyMovementUseCase(postgres.NewTxRunner(pool), productRepo)

	now := time.Now()
	inicio := now.AddDate(0, -1, 0)
	proximo := now.AddDate(0, 1, 0)

	company := &entity.Company{
		ID:                  uuid.NewString(),
		RUT:                 "76.123.456-7",
		RazonSocial:         "Comercial Los Andes SpA",
		Nombre:              "Los Andes",
		Email:               "contacto@losandes.cl",
		Telefono:            "+56 9 1234 5678",
		PlanContratado:      "basico",
		EstadoServicio:      entity.ServicioActivo,
		FechaInicioContrato: &inicio,
		FechaProximoPago:    &proximo,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := companyRepo.Create(ctx, company); err != nil {
		fmt.Fprintf(os.Stderr, "crear empresa: %v\n", err)
		os.Exit(1)
	}

	if err := createUser(ctx, userRepo, "admin", "admin123", "Administrador", true, nil); err != nil {
		fmt.Fprintf(os.Stderr, "crear superusuario: %v\n", err)
		os.Exit(1)
	}
	if err := createUser(ctx, userRepo, "vendedor", "vendedor123", "Juana Pérez", false, &company.ID); err != nil {
		fmt.Fprintf(os.Stderr, "crear empleado: %v\n", err)
		os.Exit(1)
	}

	perecedero := &entity.ProductType{
		ID:           uuid.NewString(),
		Nombre:       "Alimentos",
		Descripcion:  "Productos perecederos refrigerados",
		EsPerecedero: true,
		CreatedAt:    now,
	}
	duradero := &entity.ProductType{
		ID:          uuid.NewString(),
		Nombre:      "Abarrotes",
		Descripcion: "Productos de larga duración",
		CreatedAt:   now,
	}
	for _, t := range []*entity.ProductType{perecedero, duradero} {
		if err := typeRepo.Create(ctx, t); err != nil {
			fmt.Fprintf(os.Stderr, "crear tipo %s: %v\n", t.Nombre, err)
			os.Exit(1)
		}
	}

	vence := now.AddDate(0, 0, 5)
	products := []*entity.Product{
		{
			ID:           uuid.NewString(),
			CompanyID:    company.ID,
			TypeID:       &duradero.ID,
			Codigo:       "ARR-001",
			Nombre:       "Arroz grado 1 (1 kg)",
			PrecioVenta:  decimal.NewFromInt(1890),
			PrecioCompra: decimal.NewFromInt(1200),
			StockInicial: 100,
			StockActual:  100,
			StockMinimo:  20,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:               uuid.NewString(),
			CompanyID:        company.ID,
			TypeID:           &perecedero.ID,
			Codigo:           "LCH-001",
			Nombre:           "Leche entera (1 L)",
			FechaVencimiento: &vence,
			PrecioVenta:      decimal.NewFromInt(1150),
			PrecioCompra:     decimal.NewFromInt(790),
			StockInicial:     48,
			StockActual:      48,
			StockMinimo:      12,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	}
	for _, p := range products {
		if err := productRepo.Create(ctx, p); err != nil {
			fmt.Fprintf(os.Stderr, "crear producto %s: %v\n", p.Codigo, err)
			os.Exit(1)
		}
	}

	// Historial corto por el camino normal: queda en el libro y el stock
	// proyectado se mantiene cuadrado.
	scope := domain.ScopeCompany(company.ID)
	movimientos := []struct {
		producto string
		tipo     entity.MovementType
		cantidad int64
	}{
		{products[0].ID, entity.MovementIngreso, 50},
		{products[0].ID, entity.MovementSalida, 30},
		{products[1].ID, entity.MovementSalida, 12},
		{products[1].ID, entity.MovementAjuste, 2},
	}
	for _, m := range movimientos {
		if _, err := applyMovement.Apply(ctx, scope, inventory.ApplyMovementInput{
			ProductoID: m.producto,
			Tipo:       string(m.tipo),
			Cantidad:   m.cantidad,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "registrar movimiento %s/%s: %v\n", m.producto, m.tipo, err)
			os.Exit(1)
		}
	}

	fmt.Println("datos de demostración creados: empresa Los Andes, usuarios admin/vendedor")
}

func createUser(ctx context.Context, repo *postgres.UserRepo, username, password, nombre string, super bool, companyID *string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	return repo.Create(ctx, &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Nombre:       nombre,
		IsSuperuser:  super,
		CompanyID:    companyID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
