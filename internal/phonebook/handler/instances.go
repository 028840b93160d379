package handler

import (
	"context"

	"phonebookd/internal/phonebook/models"
	"phonebookd/internal/phonebook/ports"
	"phonebookd/internal/phonebook/registry"
)

// ManagerInstances adapts a registry.Manager to Instances.
type ManagerInstances struct {
	manager *registry.Manager
}

func NewManagerInstances(manager *registry.Manager) *ManagerInstances {
	return &ManagerInstances{manager: manager}
}

func (m *ManagerInstances) Phonebook(modemID string) (Phonebook, error) {
	svc, err := m.manager.Get(modemID)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func (m *ManagerInstances) Attach(ctx context.Context, modem ports.ModemInfo, driver string) (models.Status, error) {
	svc, err := m.manager.Create(ctx, modem, driver)
	if err != nil {
		return models.Status{}, err
	}
	return svc.Status(), nil
}

func (m *ManagerInstances) Detach(ctx context.Context, modemID string) error {
	return m.manager.Remove(ctx, modemID)
}

func (m *ManagerInstances) List() []models.Status {
	return m.manager.List()
}
