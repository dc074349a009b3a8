package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-console/internal/application/dto"
	"github.com/jhoicas/stocksync-console/internal/application/mutation"
	"github.com/jhoicas/stocksync-console/internal/application/ports"
	"github.com/jhoicas/stocksync-console/internal/application/view"
	"github.com/jhoicas/stocksync-console/internal/domain/entity"
	"github.com/jhoicas/stocksync-console/internal/infrastructure/api"
	"github.com/jhoicas/stocksync-console/pkg/logger"
)

// ProductPageData lo que la página de productos necesita en una sola carga:
// el listado más las categorías y proveedores para los selects del formulario.
type ProductPageData struct {
	Products   []entity.Product  `json:"products"`
	Categories []entity.Category `json:"categories"`
	Suppliers  []entity.Supplier `json:"suppliers"`
}

// ProductHandler la página de gestión de productos.
type ProductHandler struct {
	svc  *api.ProductService
	view *view.View[ProductPageData]
	flow *mutation.Flow
}

// NewProductHandler construye el handler. La carga combina tres listados; el
// fallo de cualquiera degrada la página completa, igual que en la interfaz.
func NewProductHandler(
	svc *api.ProductService,
	categories *api.CategoryService,
	suppliers *api.SupplierService,
	notifier ports.Notifier,
	log *logger.Logger,
) *ProductHandler {
	load := func(ctx context.Context) (ProductPageData, error) {
		products, err := svc.List(ctx)
		if err != nil {
			return ProductPageData{}, err
		}
		cats, err := categories.List(ctx)
		if err != nil {
			return ProductPageData{}, err
		}
		sups, err := suppliers.List(ctx)
		if err != nil {
			return ProductPageData{}, err
		}
		return ProductPageData{Products: products, Categories: cats, Suppliers: sups}, nil
	}

	v := view.New("products", load, notifier, log)
	return &ProductHandler{
		svc:  svc,
		view: v,
		flow: mutation.NewFlow(v, notifier, log),
	}
}

// List ejecuta el ciclo completo de carga y devuelve el snapshot de la vista.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.view.Refresh(c.UserContext()))
}

// Create da de alta un producto.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if msg, ok := validateProduct(in); !ok {
		return validation(c, msg)
	}

	err := h.flow.Submit(c.UserContext(), "Producto creado.", func(ctx context.Context) error {
		return h.svc.Create(ctx, in)
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
}

// Update edita el producto seleccionado.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := mutation.RequireSelection(id); err != nil {
		return errorJSON(c, err)
	}

	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if msg, ok := validateProduct(in); !ok {
		return validation(c, msg)
	}
	in.ID = id

	err := h.flow.Submit(c.UserContext(), "Producto actualizado.", func(ctx context.Context) error {
		return h.svc.Update(ctx, in)
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Delete elimina el producto seleccionado.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := mutation.RequireSelection(id); err != nil {
		return errorJSON(c, err)
	}

	err := h.flow.Submit(c.UserContext(), "Producto eliminado.", func(ctx context.Context) error {
		return h.svc.Delete(ctx, id)
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func validateProduct(in dto.ProductRequest) (string, bool) {
	if in.ProductName == "" {
		return "productName es requerido", false
	}
	if in.CategoryID <= 0 || in.SupplierID <= 0 {
		return "categoryId y supplierId son requeridos", false
	}
	if in.PricePerUnit.IsNegative() || in.PricePerUnitPurchased.IsNegative() {
		return "los precios no pueden ser negativos", false
	}
	if in.StockQuantity < 0 {
		return "stockQuantity no puede ser negativo", false
	}
	return "", true
}
