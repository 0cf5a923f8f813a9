package repository

import (
	"context"

	"github.com/courtesjuan/OakTownTechnologyServer/internal/model"

	"gorm.io/gorm"
)

type ClientRepository interface {
	List(ctx context.Context) ([]model.Client, error)
	FindByID(ctx context.Context, id uint) (*model.Client, error)
	Create(ctx context.Context, client *model.Client) error
	Update(ctx context.Context, client *model.Client) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type clientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := GetDB(ctx, r.db).Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) FindByID(ctx context.Context, id uint) (*model.Client, error) {
	var client model.Client
	if err := GetDB(ctx, r.db).First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	return GetDB(ctx, r.db).Create(client).Error
}

// Update writes every display column unconditionally (the API replaces the
// whole record) and reports rows affected so the caller can detect a missing
// id.
func (r *clientRepository) Update(ctx context.Context, client *model.Client) (int64, error) {
	res := GetDB(ctx, r.db).Model(&model.Client{}).Where("id = ?", client.ID).Updates(map[string]interface{}{
		"first_name":    client.FirstName,
		"last_name":     client.LastName,
		"email":         client.Email,
		"phone":         client.Phone,
		"address_line1": client.AddressLine1,
		"address_line2": client.AddressLine2,
		"city":          client.City,
		"state":         client.State,
		"zip":           client.Zip,
		"country":       client.Country,
	})
	return res.RowsAffected, res.Error
}

func (r *clientRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := GetDB(ctx, r.db).Delete(&model.Client{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
