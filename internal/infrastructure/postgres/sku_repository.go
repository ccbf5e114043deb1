package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/catalog-api/internal/domain"
	"github.com/tu-usuario/catalog-api/internal/domain/entity"
	"github.com/tu-usuario/catalog-api/internal/domain/repository"
)

var _ repository.SkuRepository = (*SkuRepo)(nil)

// SkuRepo implementación del puerto SkuRepository sobre PostgreSQL (usable con pool o tx).
type SkuRepo struct {
	q Querier
}

// NewSkuRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSkuRepository(q Querier) *SkuRepo {
	return &SkuRepo{q: q}
}

const skuSelect = `
	SELECT s.id, s.sku_code, s.name, s.attributes, s.price, s.quantity, s.product_id,
	       p.name AS product_name, s.created_at, s.updated_at
	FROM skus s
	JOIN products p ON p.id = s.product_id`

// Create persiste un nuevo SKU. El índice único global de sku_code es el
// respaldo del pre-chequeo del usecase.
func (r *SkuRepo) Create(sku *entity.Sku) error {
	query := `
		INSERT INTO skus (id, sku_code, name, attributes, price, quantity, product_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		sku.ID, sku.SkuCode, sku.Name, sku.Attributes, sku.Price, sku.Quantity,
		sku.ProductID, sku.CreatedAt, sku.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// GetByIDAndProduct obtiene un SKU restringido a su producto dueño.
// Devuelve (nil, nil) si no existe o pertenece a otro producto.
func (r *SkuRepo) GetByIDAndProduct(id, productID string) (*entity.Sku, error) {
	var s entity.Sku
	err := r.q.QueryRow(context.Background(),
		skuSelect+` WHERE s.id = $1 AND s.product_id = $2`, id, productID,
	).Scan(
		&s.ID, &s.SkuCode, &s.Name, &s.Attributes, &s.Price, &s.Quantity,
		&s.ProductID, &s.ProductName, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return &s, nil
}

// ListByProduct lista todos los SKUs de un producto, más recientes primero.
func (r *SkuRepo) ListByProduct(productID string) ([]*entity.Sku, error) {
	rows, err := r.q.Query(context.Background(),
		skuSelect+` WHERE s.product_id = $1 ORDER BY s.created_at DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sku
	for rows.Next() {
		var s entity.Sku
		if err := rows.Scan(&s.ID, &s.SkuCode, &s.Name, &s.Attributes, &s.Price, &s.Quantity,
			&s.ProductID, &s.ProductName, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ExistsByCode verifica la unicidad global de sku_code (no por producto).
func (r *SkuRepo) ExistsByCode(skuCode string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM skus WHERE sku_code = $1)`, skuCode,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists sku by code: %w", err)
	}
	return exists, nil
}

// ExistsByCodeExcluding igual que ExistsByCode pero excluyendo el propio SKU (para updates).
func (r *SkuRepo) ExistsByCodeExcluding(skuCode, excludeID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM skus WHERE sku_code = $1 AND id <> $2)`, skuCode, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists sku by code excluding: %w", err)
	}
	return exists, nil
}

// CountByProduct cuenta los SKUs de un producto.
func (r *SkuRepo) CountByProduct(productID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM skus WHERE product_id = $1`, productID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count skus by product: %w", err)
	}
	return count, nil
}

// Update actualiza un SKU existente. La referencia al producto es inmutable.
func (r *SkuRepo) Update(sku *entity.Sku) error {
	query := `
		UPDATE skus SET sku_code = $2, name = $3, attributes = $4, price = $5, quantity = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sku.ID, sku.SkuCode, sku.Name, sku.Attributes, sku.Price, sku.Quantity, sku.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update sku: %w", err)
	}
	return nil
}

// Delete elimina un SKU por ID.
func (r *SkuRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM skus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sku: %w", err)
	}
	return nil
}

// DeleteByProduct elimina todos los SKUs de un producto (cascada de borrado de producto).
func (r *SkuRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM skus WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete skus by product: %w", err)
	}
	return nil
}
