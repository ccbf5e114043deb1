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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// Las lecturas llenan CategoryName y SkuCount en una sola consulta con join,
// en lugar de navegar colecciones.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productSelect = `
	SELECT p.id, p.name, p.description, p.base_price, p.brand, p.category_id,
	       c.name AS category_name,
	       (SELECT COUNT(*) FROM skus s WHERE s.product_id = p.id) AS sku_count,
	       p.created_at, p.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id`

// Create persiste un nuevo producto. El índice único (category_id, name)
// es el respaldo del pre-chequeo del usecase.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, base_price, brand, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.BasePrice,
		product.Brand, product.CategoryID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), productSelect+` WHERE p.id = $1`, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.BasePrice, &p.Brand, &p.CategoryID,
		&p.CategoryName, &p.SkuCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// filterClause arma el WHERE de los filtros opcionales y sus argumentos.
// Name es substring case-insensitive (ILIKE); CategoryID igualdad exacta.
func filterClause(filter repository.ProductFilter) (string, []any) {
	clause := ` WHERE 1=1`
	var args []any
	if filter.Name != "" {
		args = append(args, filter.Name)
		clause += fmt.Sprintf(` AND p.name ILIKE '%%' || $%d || '%%'`, len(args))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		clause += fmt.Sprintf(` AND p.category_id = $%d`, len(args))
	}
	return clause, args
}

// ListFiltered lista productos filtrados, más recientes primero.
func (r *ProductRepo) ListFiltered(filter repository.ProductFilter) ([]*entity.Product, error) {
	clause, args := filterClause(filter)
	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf("%s%s ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d",
		productSelect, clause, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.BasePrice, &p.Brand, &p.CategoryID,
			&p.CategoryName, &p.SkuCount, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountFiltered cuenta los productos que cumplen los mismos filtros del listado.
func (r *ProductRepo) CountFiltered(filter repository.ProductFilter) (int64, error) {
	clause, args := filterClause(filter)
	var count int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM products p`+clause, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// ExistsByNameAndCategory verifica la unicidad (name, category_id).
func (r *ProductRepo) ExistsByNameAndCategory(name, categoryID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM products WHERE name = $1 AND category_id = $2)`,
		name, categoryID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists product by name and category: %w", err)
	}
	return exists, nil
}

// ExistsByNameAndCategoryExcluding igual que ExistsByNameAndCategory pero
// excluyendo el propio producto (para updates).
func (r *ProductRepo) ExistsByNameAndCategoryExcluding(name, categoryID, excludeID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM products WHERE name = $1 AND category_id = $2 AND id <> $3)`,
		name, categoryID, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists product by name and category excluding: %w", err)
	}
	return exists, nil
}

// CountByCategory cuenta los productos de una categoría (guard de borrado y productCount).
func (r *ProductRepo) CountByCategory(categoryID string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return count, nil
}

// CountGroupedByCategory devuelve el conteo de productos por categoría en una sola consulta.
func (r *ProductRepo) CountGroupedByCategory() (map[string]int64, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT category_id, COUNT(*) FROM products GROUP BY category_id`)
	if err != nil {
		return nil, fmt.Errorf("count products grouped: %w", err)
	}
	defer rows.Close()
	counts := make(map[string]int64)
	for rows.Next() {
		var categoryID string
		var count int64
		if err := rows.Scan(&categoryID, &count); err != nil {
			return nil, fmt.Errorf("scan product count: %w", err)
		}
		counts[categoryID] = count
	}
	return counts, rows.Err()
}

// Update actualiza un producto existente, incluida la reasignación de categoría.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, base_price = $4, brand = $5, category_id = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.BasePrice,
		product.Brand, product.CategoryID, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID. Los SKUs los borra el usecase dentro
// de la misma transacción; la FK CASCADE es solo respaldo.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
