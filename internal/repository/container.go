package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/linskybing/forms-platform/pkg/fault"
	"gorm.io/gorm"
)

const defaultAcquireTimeout = 30 * time.Second

var readSnapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

type Repos struct {
	Form FormRepo
	User UserRepo

	db             *gorm.DB
	acquireTimeout time.Duration
}

// NewFromParts builds a container around db with caller-supplied repos,
// for services that only need some of them.
func NewFromParts(db *gorm.DB, formRepo FormRepo, userRepo UserRepo) *Repos {
	return &Repos{
		Form:           formRepo,
		User:           userRepo,
		db:             db,
		acquireTimeout: defaultAcquireTimeout,
	}
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Form:           NewFormRepo(db),
		User:           NewUserRepo(db),
		db:             db,
		acquireTimeout: defaultAcquireTimeout,
	}
}

// SetAcquireTimeout bounds how long ExecTx and Read wait for a pooled
// connection before failing with fault.KindPoolUnavailable.
func (r *Repos) SetAcquireTimeout(d time.Duration) {
	if d > 0 {
		r.acquireTimeout = d
	}
}

// WithTx rebinds every repo to tx. Unset repos stay unset.
func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	out := &Repos{
		db:             tx,
		acquireTimeout: r.acquireTimeout,
	}
	if r.Form != nil {
		out.Form = r.Form.WithTx(tx)
	}
	if r.User != nil {
		out.User = r.User.WithTx(tx)
	}
	return out
}

// ExecTx runs fn inside one transaction on a single pooled connection. fn's
// error rolls the transaction back and is returned unchanged.
func (r *Repos) ExecTx(ctx context.Context, fn func(*Repos) error) error {
	return r.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			return fn(r.WithTx(tx))
		})
	})
}

// Read runs fn in a read-only repeatable-read transaction, so every query
// of fn sees the same snapshot.
func (r *Repos) Read(ctx context.Context, fn func(*Repos) error) error {
	return r.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			return fn(r.WithTx(tx))
		}, readSnapshot)
	})
}

func (r *Repos) withConn(ctx context.Context, fn func(conn *gorm.DB) error) error {
	actx, cancel := context.WithTimeout(ctx, r.acquireTimeout)
	defer cancel()

	acquired := false
	err := r.db.WithContext(actx).Connection(func(conn *gorm.DB) error {
		acquired = true
		return fn(conn.WithContext(ctx))
	})
	if err != nil && !acquired {
		if errors.Is(err, context.Canceled) {
			return fault.Persistence("request cancelled", err)
		}
		return fault.PoolUnavailable(err)
	}
	return err
}
