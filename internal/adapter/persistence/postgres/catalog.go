package postgres

import (
	"context"
	"errors"

	"taller_mecanico/internal/domain/entities"
	"taller_mecanico/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

const vehicleColumns = `id, plate, model, COALESCE(client_id, ''), created_at, updated_at`

func scanVehicle(row pgx.Row) (entities.Vehicle, error) {
	var v entities.Vehicle
	err := row.Scan(&v.ID, &v.Plate, &v.Model, &v.ClientID, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Vehicle{}, nil
	}
	return v, err
}

func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}

func (r *CatalogRepository) CreateVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO vehicles (id, plate, model, client_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, v.ID, v.Plate, v.Model, nullableID(v.ClientID), v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return entities.Vehicle{}, translate("create vehicle", err)
	}
	return v, nil
}

func (r *CatalogRepository) GetVehicle(ctx context.Context, id string) (entities.Vehicle, error) {
	v, err := scanVehicle(r.pool.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id))
	return v, translate("get vehicle", err)
}

func (r *CatalogRepository) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, translate("list vehicles", err)
	}
	defer rows.Close()

	out := []entities.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, translate("scan vehicle", err)
		}
		out = append(out, v)
	}
	return out, translate("list vehicles", rows.Err())
}

func (r *CatalogRepository) UpdateVehicle(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	updated, err := scanVehicle(r.pool.QueryRow(ctx, `
		UPDATE vehicles SET plate = $2, model = $3, client_id = $4, updated_at = $5
		WHERE id = $1
		RETURNING `+vehicleColumns,
		v.ID, v.Plate, v.Model, nullableID(v.ClientID), v.UpdatedAt))
	return updated, translate("update vehicle", err)
}

func (r *CatalogRepository) DeleteVehicle(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return false, translate("delete vehicle", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CatalogRepository) CreateClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO clients (id, name, phone, email, created_at) VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.Name, c.Phone, c.Email, c.CreatedAt)
	if err != nil {
		return entities.Client{}, translate("create client", err)
	}
	return c, nil
}

func scanClient(row pgx.Row) (entities.Client, error) {
	var c entities.Client
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Client{}, nil
	}
	return c, err
}

func (r *CatalogRepository) GetClient(ctx context.Context, id string) (entities.Client, error) {
	c, err := scanClient(r.pool.QueryRow(ctx, `SELECT id, name, phone, email, created_at FROM clients WHERE id = $1`, id))
	return c, translate("get client", err)
}

func (r *CatalogRepository) ListClients(ctx context.Context) ([]entities.Client, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, phone, email, created_at FROM clients ORDER BY lower(name), id`)
	if err != nil {
		return nil, translate("list clients", err)
	}
	defer rows.Close()

	out := []entities.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, translate("scan client", err)
		}
		out = append(out, c)
	}
	return out, translate("list clients", rows.Err())
}

func (r *CatalogRepository) CreatePart(ctx context.Context, p entities.SparePart) (entities.SparePart, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO spare_parts (id, name, price, created_at) VALUES ($1, $2, $3, $4)
	`, p.ID, p.Name, p.Price, p.CreatedAt)
	if err != nil {
		return entities.SparePart{}, translate("create part", err)
	}
	return p, nil
}

func scanPart(row pgx.Row) (entities.SparePart, error) {
	var p entities.SparePart
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.SparePart{}, nil
	}
	return p, err
}

func (r *CatalogRepository) GetPart(ctx context.Context, id string) (entities.SparePart, error) {
	p, err := scanPart(r.pool.QueryRow(ctx, `SELECT id, name, price, created_at FROM spare_parts WHERE id = $1`, id))
	return p, translate("get part", err)
}

func (r *CatalogRepository) ListParts(ctx context.Context) ([]entities.SparePart, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, price, created_at FROM spare_parts ORDER BY lower(name), id`)
	if err != nil {
		return nil, translate("list parts", err)
	}
	defer rows.Close()

	out := []entities.SparePart{}
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, translate("scan part", err)
		}
		out = append(out, p)
	}
	return out, translate("list parts", rows.Err())
}
