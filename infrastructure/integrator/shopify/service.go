package shopify

import (
	shopifydomain "github.com/revoa-app/support-api/infrastructure/integrator/shopify/domain"
	"github.com/revoa-app/support-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/revoa-app/support-api/internal/config"
	"github.com/revoa-app/support-api/internal/domain"
)

type ShopifyIntegrator interface {
	GetOrder(store *domain.Store, orderID string) (*shopifydomain.Order, error)
	CancelOrder(store *domain.Store, orderID string) (*shopifydomain.Order, error)
	RefundOrder(store *domain.Store, orderID string, refund *domain.RefundOrderRequest) (*shopifydomain.Refund, error)
	UpdateShippingAddress(store *domain.Store, orderID string, address *domain.ShippingAddressRequest) (*shopifydomain.Order, error)
}

type ShopifyService struct {
	cfg    *config.Config
	Client shopifyclient.Client
}

func New(cfg *config.Config, client shopifyclient.Client) ShopifyIntegrator {
	return &ShopifyService{
		cfg:    cfg,
		Client: client,
	}
}

func credentialsFor(store *domain.Store) shopifyclient.StoreCredentials {
	return shopifyclient.StoreCredentials{
		ShopDomain:  store.ShopDomain,
		AccessToken: store.AccessToken,
	}
}

func (s *ShopifyService) GetOrder(store *domain.Store, orderID string) (*shopifydomain.Order, error) {
	return s.Client.GetOrder(credentialsFor(store), orderID)
}

func (s *ShopifyService) CancelOrder(store *domain.Store, orderID string) (*shopifydomain.Order, error) {
	return s.Client.CancelOrder(credentialsFor(store), orderID)
}

func (s *ShopifyService) RefundOrder(store *domain.Store, orderID string, refund *domain.RefundOrderRequest) (*shopifydomain.Refund, error) {
	return s.Client.RefundOrder(credentialsFor(store), orderID, refund.Amount, refund.Currency, refund.Reason, refund.Notify)
}

func (s *ShopifyService) UpdateShippingAddress(store *domain.Store, orderID string, address *domain.ShippingAddressRequest) (*shopifydomain.Order, error) {
	shippingAddress := &shopifydomain.ShippingAddress{
		FirstName: address.FirstName,
		LastName:  address.LastName,
		Address1:  address.Address1,
		Address2:  address.Address2,
		City:      address.City,
		Province:  address.Province,
		Country:   address.Country,
		Zip:       address.Zip,
		Phone:     address.Phone,
	}

	return s.Client.UpdateShippingAddress(credentialsFor(store), orderID, shippingAddress)
}
