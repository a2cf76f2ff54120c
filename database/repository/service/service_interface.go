package serviceRepo

import "pawbooker/models"

// ServiceRepository defines read/write access to the service catalog.
type ServiceRepository interface {
	GetByID(id string) (*models.Service, error)
	GetAll() ([]models.Service, error)
	Create(service *models.Service) error
}
