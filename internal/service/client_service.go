package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtesjuan/OakTownTechnologyServer/internal/model"
	"github.com/courtesjuan/OakTownTechnologyServer/internal/repository"

	"gorm.io/gorm"
)

// ErrClientNotFound reports that the referenced client id does not exist.
var ErrClientNotFound = errors.New("client not found")

// SaveClientRequest is the shared body shape of client POST and PUT. All
// fields are optional free-form text, matching the original schema.
type SaveClientRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Country      string `json:"country"`
}

type ClientService interface {
	ListClients(ctx context.Context) ([]model.Client, error)
	GetClient(ctx context.Context, id uint) (*model.Client, error)
	CreateClient(ctx context.Context, req SaveClientRequest) (uint, error)
	UpdateClient(ctx context.Context, id uint, req SaveClientRequest) (int64, error)
	DeleteClient(ctx context.Context, id uint) (int64, error)
}

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) ListClients(ctx context.Context) ([]model.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) GetClient(ctx context.Context, id uint) (*model.Client, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	return client, nil
}

func (s *clientService) CreateClient(ctx context.Context, req SaveClientRequest) (uint, error) {
	client := toClientModel(0, req)
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return 0, fmt.Errorf("failed to create client: %w", err)
	}
	return client.ID, nil
}

func (s *clientService) UpdateClient(ctx context.Context, id uint, req SaveClientRequest) (int64, error) {
	rows, err := s.clientRepo.Update(ctx, toClientModel(id, req))
	if err != nil {
		return 0, fmt.Errorf("failed to update client: %w", err)
	}
	if rows == 0 {
		return 0, ErrClientNotFound
	}
	return rows, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id uint) (int64, error) {
	rows, err := s.clientRepo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete client: %w", err)
	}
	if rows == 0 {
		return 0, ErrClientNotFound
	}
	return rows, nil
}

func toClientModel(id uint, req SaveClientRequest) *model.Client {
	return &model.Client{
		ID:           id,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		Country:      req.Country,
	}
}
