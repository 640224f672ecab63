package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/todo-api/internal/core/domain"
)

// AddressRepository implements ports.AddressRepository on Postgres.
type AddressRepository struct {
	pool *pgxpool.Pool
}

func NewAddressRepository(pool *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{pool: pool}
}

// CreateForUser inserts the address and points users.address_id at it in one
// transaction. The deferred rollback is a no-op after commit, so the
// transaction is released on every exit path.
func (r *AddressRepository) CreateForUser(ctx context.Context, ownerID int64, address *domain.Address) (*domain.Address, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO address (address1, address2, city, state, country, postalcode, apt_num)
		 VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)
		 RETURNING id`,
		address.Address1, address.Address2, address.City, address.State,
		address.Country, address.PostalCode, address.AptNum).
		Scan(&address.ID)
	if err != nil {
		return nil, fmt.Errorf("insert address: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE users SET address_id = $2, updated_at = now() WHERE id = $1`,
		ownerID, address.ID)
	if err != nil {
		return nil, fmt.Errorf("link address: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrUserNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return address, nil
}

func (r *AddressRepository) FindByOwner(ctx context.Context, ownerID int64) (*domain.Address, error) {
	var a domain.Address
	err := r.pool.QueryRow(ctx,
		`SELECT a.id, a.address1, COALESCE(a.address2, ''), a.city, a.state, a.country, a.postalcode, a.apt_num
		 FROM address a
		 JOIN users u ON u.address_id = a.id
		 WHERE u.id = $1`, ownerID).
		Scan(&a.ID, &a.Address1, &a.Address2, &a.City, &a.State, &a.Country, &a.PostalCode, &a.AptNum)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAddressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find address: %w", err)
	}
	return &a, nil
}
