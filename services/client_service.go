package services

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"hotel-premium-backend/models"
	"hotel-premium-backend/utils"
)

// ClientLookup resolves client ids for the reservation manager.
type ClientLookup interface {
	LookupClient(id uint) (models.Client, bool)
}

// ClientService owns the client registry. Identifying documents are unique
// across the registry.
type ClientService struct {
	mu      sync.RWMutex
	clients map[uint]*models.Client
	order   []uint
	nextID  uint
	audit   AuditSink
	log     *zap.Logger
}

func NewClientService(audit AuditSink, log *zap.Logger) *ClientService {
	return &ClientService{
		clients: make(map[uint]*models.Client),
		audit:   audit,
		log:     log,
	}
}

func validateClient(c models.Client) error {
	if err := utils.ValidateName(c.FirstName, "first name"); err != nil {
		return err
	}
	if err := utils.ValidateName(c.LastName, "last name"); err != nil {
		return err
	}
	if err := utils.ValidateDocument(c.DocumentNumber, c.DocumentType); err != nil {
		return err
	}
	if err := utils.ValidatePhone(c.Phone); err != nil {
		return err
	}
	return utils.ValidateEmail(c.Email)
}

// Add validates and registers a new client.
func (s *ClientService) Add(client models.Client) (models.Client, error) {
	if err := validateClient(client); err != nil {
		return models.Client{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findByDocumentLocked(client.DocumentNumber) != nil {
		return models.Client{}, utils.Conflictf("a client with document %s already exists", client.DocumentNumber)
	}
	s.nextID++
	client.ID = s.nextID
	client.CreatedAt = time.Now()
	stored := client
	s.clients[client.ID] = &stored
	s.order = append(s.order, client.ID)

	s.audit.Record("CLIENT registered", "reception",
		fmt.Sprintf("%s - Doc: %s", client.FullName(), client.DocumentNumber))
	return client, nil
}

func (s *ClientService) findByDocumentLocked(document string) *models.Client {
	for _, id := range s.order {
		if s.clients[id].DocumentNumber == document {
			return s.clients[id]
		}
	}
	return nil
}

// LookupClient implements ClientLookup.
func (s *ClientService) LookupClient(id uint) (models.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	client, ok := s.clients[id]
	if !ok {
		return models.Client{}, false
	}
	return *client, true
}

func (s *ClientService) GetByID(id uint) (models.Client, error) {
	client, ok := s.LookupClient(id)
	if !ok {
		return models.Client{}, utils.NotFoundf("client with id %d not found", id)
	}
	return client, nil
}

func (s *ClientService) GetByDocument(document string) (models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if client := s.findByDocumentLocked(document); client != nil {
		return *client, nil
	}
	return models.Client{}, utils.NotFoundf("client with document %s not found", document)
}

func (s *ClientService) GetAll() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.clients[id])
	}
	return out
}

// Update replaces an existing client, re-running validation and the
// duplicate-document check against everyone else.
func (s *ClientService) Update(client models.Client) error {
	if err := validateClient(client); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[client.ID]; !ok {
		return utils.NotFoundf("client with id %d not found", client.ID)
	}
	if other := s.findByDocumentLocked(client.DocumentNumber); other != nil && other.ID != client.ID {
		return utils.Conflictf("another client with document %s already exists", client.DocumentNumber)
	}
	client.CreatedAt = s.clients[client.ID].CreatedAt
	stored := client
	s.clients[client.ID] = &stored
	return nil
}

func (s *ClientService) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[id]; !ok {
		return utils.NotFoundf("client with id %d not found", id)
	}
	delete(s.clients, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
