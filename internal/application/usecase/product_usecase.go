package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ignaciodev/inventario-api/internal/application/dto"
	"github.com/ignaciodev/inventario-api/internal/domain"
	"github.com/ignaciodev/inventario-api/internal/domain/entity"
	"github.com/ignaciodev/inventario-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos. Nunca modifica stock_actual después de
// la creación: eso es territorio exclusivo del motor de inventario.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	typeRepo    repository.ProductTypeRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, typeRepo repository.ProductTypeRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, typeRepo: typeRepo}
}

// Create valida y persiste un producto nuevo en la empresa del caller.
// El stock inicial queda congelado en stock_inicial; los cambios posteriores
// entran solo por movimientos.
func (uc *ProductUseCase) Create(ctx context.Context, scope domain.TenantScope, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if scope.Empty() || scope.All {
		// Crear requiere una empresa concreta: el superusuario debe operar
		// con el scope de la empresa destino.
		return nil, domain.ErrForbidden
	}
	if verr := validateProductInput(in.Codigo, in.Nombre, in.PrecioVenta, in.PrecioCompra, in.StockActual); verr != nil {
		return nil, verr
	}

	venc, verr := parseOptionalDate("fecha_vencimiento", in.FechaVencimiento)
	if verr != nil {
		return nil, verr
	}
	if in.Tipo != nil {
		pt, err := uc.typeRepo.GetByID(ctx, *in.Tipo)
		if err != nil {
			return nil, err
		}
		if pt == nil {
			return nil, domain.NewValidationError("tipo", "tipo de producto inexistente")
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		CompanyID:        scope.CompanyID,
		TypeID:           in.Tipo,
		Codigo:           strings.TrimSpace(in.Codigo),
		Nombre:           strings.TrimSpace(in.Nombre),
		FechaVencimiento: venc,
		PrecioVenta:      in.PrecioVenta,
		PrecioCompra:     in.PrecioCompra,
		StockInicial:     in.StockActual,
		StockActual:      in.StockActual,
		StockMinimo:      in.StockMinimo,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos editables. stock_actual y stock_inicial no se
// tocan aquí aunque vengan en el request.
func (uc *ProductUseCase) Update(ctx context.Context, scope domain.TenantScope, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if verr := validateProductInput(product.Codigo, in.Nombre, in.PrecioVenta, in.PrecioCompra, 0); verr != nil {
		return nil, verr
	}
	venc, verr := parseOptionalDate("fecha_vencimiento", in.FechaVencimiento)
	if verr != nil {
		return nil, verr
	}

	product.Nombre = strings.TrimSpace(in.Nombre)
	product.TypeID = in.Tipo
	product.FechaVencimiento = venc
	product.PrecioVenta = in.PrecioVenta
	product.PrecioCompra = in.PrecioCompra
	product.StockMinimo = in.StockMinimo
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto visible en el scope.
func (uc *ProductUseCase) GetByID(ctx context.Context, scope domain.TenantScope, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos del scope con búsqueda y orden.
func (uc *ProductUseCase) List(ctx context.Context, scope domain.TenantScope, in dto.ListProductsRequest) ([]dto.ProductResponse, error) {
	if scope.Empty() {
		return []dto.ProductResponse{}, nil
	}
	in.DefaultPage()

	filter := repository.ProductFilter{
		Search:  in.Search,
		OrderBy: "nombre",
		Limit:   in.Limit,
		Offset:  in.Offset,
	}
	if in.Ordering != "" {
		field := strings.TrimPrefix(in.Ordering, "-")
		switch field {
		case "nombre", "codigo", "stock_actual", "precio_venta":
			filter.OrderBy = field
			filter.Desc = strings.HasPrefix(in.Ordering, "-")
		default:
			return nil, domain.NewValidationError("ordering", "campos válidos: nombre, codigo, stock_actual, precio_venta")
		}
	}

	products, err := uc.productRepo.List(ctx, scope, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Delete elimina el producto y, en cascada, sus movimientos (único camino por
// el que desaparecen entradas del libro).
func (uc *ProductUseCase) Delete(ctx context.Context, scope domain.TenantScope, id string) error {
	return uc.productRepo.Delete(ctx, scope, id)
}

func validateProductInput(codigo, nombre string, precioVenta, precioCompra decimal.Decimal, stock int64) *domain.ValidationError {
	var verr *domain.ValidationError
	add := func(field, msg string) {
		if verr == nil {
			verr = domain.NewValidationError(field, msg)
		} else {
			verr.Add(field, msg)
		}
	}
	if strings.TrimSpace(codigo) == "" {
		add("codigo", "el código es obligatorio")
	}
	if strings.TrimSpace(nombre) == "" {
		add("nombre", "el nombre es obligatorio")
	}
	if precioVenta.IsNegative() {
		add("precio_venta", "el precio de venta no puede ser negativo")
	}
	if precioCompra.IsNegative() {
		add("precio_compra", "el precio de compra no puede ser negativo")
	}
	if stock < 0 {
		add("stock_actual", "el stock no puede ser negativo")
	}
	return verr
}

func parseOptionalDate(field string, s *string) (*time.Time, *domain.ValidationError) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, domain.NewValidationError(field, "formato esperado YYYY-MM-DD")
	}
	return &t, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:           p.ID,
		Empresa:      p.CompanyID,
		Tipo:         p.TypeID,
		Codigo:       p.Codigo,
		Nombre:       p.Nombre,
		PrecioVenta:  p.PrecioVenta,
		PrecioCompra: p.PrecioCompra,
		StockActual:  p.StockActual,
		StockMinimo:  p.StockMinimo,
		CreatedAt:    p.CreatedAt,
	}
	if p.FechaVencimiento != nil {
		s := p.FechaVencimiento.Format("2006-01-02")
		resp.FechaVencimiento = &s
	}
	return resp
}
