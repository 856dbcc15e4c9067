package repository

import (
	"context"
	"errors"
	"showtracker/model"
	"time"

	"gorm.io/gorm"
)

type IAccountRepository interface {
	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
	GetAccountById(ctx context.Context, id string) (*model.Account, error)
	UpdatePasswordHash(ctx context.Context, id string, hash string) error
	UpdateDisplayName(ctx context.Context, id string, displayName string) error
}

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *AccountRepository) CreateAccount(ctx context.Context, account *model.Account) error {
	err := r.db.WithContext(ctx).Create(account).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return model.ErrEmailAlreadyExist
	}
	return err
}

func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *AccountRepository) GetAccountById(ctx context.Context, id string) (*model.Account, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *AccountRepository) first(ctx context.Context, query string, arg interface{}) (*model.Account, error) {
	var result model.Account
	err := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where(query, arg).
		First(&result).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *AccountRepository) UpdatePasswordHash(ctx context.Context, id string, hash string) error {
	return r.update(ctx, id, map[string]interface{}{"passwordHash": hash})
}

func (r *AccountRepository) UpdateDisplayName(ctx context.Context, id string, displayName string) error {
	return r.update(ctx, id, map[string]interface{}{"displayName": displayName})
}

func (r *AccountRepository) update(ctx context.Context, id string, columns map[string]interface{}) error {
	columns["updatedAt"] = time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", id).
		UpdateColumns(columns)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrAccountNotFound
	}
	return nil
}
