package services

import (
	"context"

	"marketplace/entity"
	"marketplace/repository"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID          uint            `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	ProveedorID uint            `json:"proveedorId"`
	Imagenes    []string        `json:"imagenes"`
}

type ProductService struct {
	products *repository.ProductRepository
	images   *repository.ProductImageRepository
}

func NewProductService(products *repository.ProductRepository, images *repository.ProductImageRepository) *ProductService {
	return &ProductService{products: products, images: images}
}

func toProductResponse(p *entity.Product, imgs []entity.ProductImage) ProductResponse {
	urls := make([]string, 0, len(imgs))
	for _, img := range imgs {
		urls = append(urls, img.URLImagen)
	}
	return ProductResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Stock:       p.Stock,
		ProveedorID: p.ProviderID,
		Imagenes:    urls,
	}
}

func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	ps, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	imgs, err := s.images.ListByProducts(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]ProductResponse, 0, len(ps))
	for i := range ps {
		out = append(out, toProductResponse(&ps[i], imgs[ps[i].ID]))
	}
	return out, nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "product not found")
	}
	imgs, err := s.images.ListByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p, imgs)
	return &out, nil
}
