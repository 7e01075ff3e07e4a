package services

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/app/services/cms_store"
	"booking-service/internal/pkg/constvars"
	"context"
)

type serviceCmsClient struct {
	requester *cms_store.Requester
}

func NewServiceCmsClient(requester *cms_store.Requester) contracts.ServiceCmsClient {
	return &serviceCmsClient{requester: requester}
}

func (c *serviceCmsClient) FindServiceByID(ctx context.Context, instanceID, serviceID string) (*models.Service, error) {
	row, err := c.requester.GetRowByID(ctx, instanceID, constvars.CollectionServices, serviceID)
	if err != nil {
		return nil, err
	}

	name, err := cms_store.OptionalTextField(*row, constvars.FieldName)
	if err != nil {
		return nil, err
	}
	serviceType, err := cms_store.OptionalTextField(*row, constvars.FieldType)
	if err != nil {
		return nil, err
	}

	return &models.Service{
		ID:   row.ID,
		Name: name,
		Type: serviceType,
	}, nil
}
