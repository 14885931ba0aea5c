package supporting

import (
	"fmt"

	"github.com/revoa-app/support-api/infrastructure/integrator/shopify"
	shopifydomain "github.com/revoa-app/support-api/infrastructure/integrator/shopify/domain"
	"github.com/revoa-app/support-api/infrastructure/repository"
	"github.com/revoa-app/support-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// OrderSupporter executa as operações de suporte sobre pedidos de uma loja
type OrderSupporter interface {
	GetOrder(storeID, orderID string) (*shopifydomain.Order, error)
	CancelOrder(storeID, orderID string) (*shopifydomain.Order, error)
	RefundOrder(storeID, orderID string, refund *domain.RefundOrderRequest) (*shopifydomain.Refund, error)
	UpdateShippingAddress(storeID, orderID string, address *domain.ShippingAddressRequest) (*shopifydomain.Order, error)
}

type Service struct {
	storeRepository repository.StoreRepository
	shopifyService  shopify.ShopifyIntegrator
}

func NewService(storeRepo repository.StoreRepository, shopifyService shopify.ShopifyIntegrator) OrderSupporter {
	return &Service{
		storeRepository: storeRepo,
		shopifyService:  shopifyService,
	}
}

// resolveStore busca a loja e garante que ela ainda está conectada
func (s *Service) resolveStore(storeID, orderID string) (*domain.Store, error) {
	if storeID == "" {
		return nil, ErrStoreIDRequired
	}

	if orderID == "" {
		return nil, ErrOrderIDRequired
	}

	store, err := s.storeRepository.GetStoreByID(storeID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar a loja: %w", err)
	}

	if store == nil {
		return nil, ErrStoreNotFound
	}

	if store.Status != domain.StoreStatusConnected {
		return nil, ErrStoreDisconnected
	}

	return store, nil
}

func (s *Service) GetOrder(storeID, orderID string) (*shopifydomain.Order, error) {
	store, err := s.resolveStore(storeID, orderID)
	if err != nil {
		return nil, err
	}

	return s.shopifyService.GetOrder(store, orderID)
}

func (s *Service) CancelOrder(storeID, orderID string) (*shopifydomain.Order, error) {
	store, err := s.resolveStore(storeID, orderID)
	if err != nil {
		return nil, err
	}

	order, err := s.shopifyService.CancelOrder(store, orderID)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"store_id": storeID,
		"order_id": orderID,
	}).Info("support: pedido cancelado")

	return order, nil
}

func (s *Service) RefundOrder(storeID, orderID string, refund *domain.RefundOrderRequest) (*shopifydomain.Refund, error) {
	store, err := s.resolveStore(storeID, orderID)
	if err != nil {
		return nil, err
	}

	if refund == nil || refund.Amount <= 0 || refund.Currency == "" {
		return nil, ErrInvalidRefund
	}

	created, err := s.shopifyService.RefundOrder(store, orderID, refund)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"store_id": storeID,
		"order_id": orderID,
		"amount":   refund.Amount,
	}).Info("support: reembolso criado")

	return created, nil
}

func (s *Service) UpdateShippingAddress(storeID, orderID string, address *domain.ShippingAddressRequest) (*shopifydomain.Order, error) {
	store, err := s.resolveStore(storeID, orderID)
	if err != nil {
		return nil, err
	}

	return s.shopifyService.UpdateShippingAddress(store, orderID, address)
}
