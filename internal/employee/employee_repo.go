package employee

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindByEmpID(ctx context.Context, empID string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindAll(ctx context.Context) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// conn returns a session bound to ctx that runs on the transaction when one is set.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindByEmpID(ctx context.Context, empID string) (*Employee, error) {
	return r.findOne(ctx, "emp_id = ?", empID)
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	return r.findOne(ctx, "email = ?", email)
}

// findOne returns nil, nil when no row matches.
func (r *repository) findOne(ctx context.Context, query string, arg string) (*Employee, error) {
	var e Employee
	err := r.conn(ctx).Where(query, arg).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var emps []Employee
	err := r.conn(ctx).
		Order("created_at ASC").
		Find(&emps).Error
	return emps, err
}
